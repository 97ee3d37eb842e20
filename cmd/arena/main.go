package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"time"

	"chess-arena/arena"
	"chess-arena/engine"
)

func main() {
	playersFlag := flag.String("players", "random,first,swarm,capture,capture+check,montecarlo:20,minimax:2",
		"comma-separated strategies ("+strings.Join(engine.StrategyNames(), ", ")+")")
	games := flag.Int("games", 1000, "number of games")
	maxPlies := flag.Int("maxplies", arena.DefaultMaxPlies, "plies before a game is drawn")
	workers := flag.Int("workers", 0, "games played at once (0 = GOMAXPROCS)")
	k := flag.Float64("k", arena.DefaultK, "Elo K factor")
	seed := flag.Int64("seed", 0, "tournament seed (0 = time based)")
	openings := flag.String("openings", "", "opening book file, one 'name: SAN moves' line each; 'default' for the built-in book")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	players, err := engine.ParseStrategies(*playersFlag)
	if err != nil {
		log.Fatalf("players: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var book *arena.Openings
	switch *openings {
	case "":
	case "default":
		book = arena.DefaultOpenings()
	default:
		f, err := os.Open(*openings)
		if err != nil {
			log.Fatalf("openings: %v", err)
		}
		book, err = arena.ParseOpenings(f)
		f.Close()
		if err != nil {
			log.Fatalf("openings %s: %v", *openings, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tour := arena.Tournament{
		Players:  players,
		Games:    *games,
		MaxPlies: *maxPlies,
		Workers:  *workers,
		K:        *k,
		Seed:     *seed,
		Openings: book,
	}
	if *verbose {
		tour.OnGame = func(r arena.GameRecord) {
			log.Printf("game %d: %s vs %s [%s] %s", r.Index, r.White, r.Black, r.Opening, r.Result)
		}
	}

	start := time.Now()
	standings, err := tour.Run(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Printf("tournament stopped: %v", err)
	}

	played := standings.Results() / 2
	fmt.Printf("%d games played in %v (%d g/s), seed %d\n", played, elapsed.Round(time.Millisecond),
		int64(math.Round(float64(played)/elapsed.Seconds())), *seed)
	for _, p := range standings {
		fmt.Printf("\n%s\n", p.Name())
		fmt.Printf("  elo: %d\n", int64(math.Round(p.Elo.Score)))
		fmt.Printf("  games: (w: %d, l: %d, d: %d)\n", p.Wins, p.Losses, p.Draws)
	}
}
