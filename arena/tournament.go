package arena

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"chess-arena/engine"
)

var ErrTooFewPlayers = errors.New("a tournament needs at least two players")

// Player is one entrant with its rating and record.
type Player struct {
	Strategy engine.Strategy
	Elo      Elo
	Wins     int
	Losses   int
	Draws    int
}

func (p Player) Name() string { return p.Strategy.Name() }

func (p Player) Games() int { return p.Wins + p.Losses + p.Draws }

// Standings are sorted by Elo, best first.
type Standings []Player

// Results counts every player's games; each game counts twice.
func (s Standings) Results() int {
	total := 0
	for _, p := range s {
		total += p.Games()
	}
	return total
}

// Tournament plays Games games between randomly drawn pairs of distinct
// players, with colours and openings drawn at random too. Every game gets
// its own seed from Seed, so the records only depend on Seed; with more than
// one worker the order of Elo updates, and so the ratings, may vary.
type Tournament struct {
	Players  []engine.Strategy
	Games    int
	MaxPlies int     // DefaultMaxPlies when zero
	Workers  int     // GOMAXPROCS when zero
	K        float64 // DefaultK when zero
	Seed     int64
	Openings *Openings

	// OnGame, when set, is called after every game while the standings
	// lock is held.
	OnGame func(GameRecord)
}

// GameRecord describes one finished tournament game.
type GameRecord struct {
	Index   int
	White   string
	Black   string
	Opening string
	Result  GameResult
}

type pairing struct {
	white, black int
	opening      Opening
	seed         int64
}

// schedule draws every pairing up front from the tournament seed.
func (t Tournament) schedule() []pairing {
	rng := rand.New(rand.NewSource(t.Seed))
	n := len(t.Players)
	games := make([]pairing, t.Games)
	for i := range games {
		a := rng.Intn(n)
		b := rng.Intn(n - 1)
		if b == a {
			b = n - 1
		}
		if rng.Intn(2) == 1 {
			a, b = b, a
		}
		games[i] = pairing{white: a, black: b, opening: t.Openings.Pick(rng), seed: rng.Int63()}
	}
	return games
}

// Run plays the whole tournament. It stops early, returning the standings
// so far, when ctx is done or a game fails.
func (t Tournament) Run(ctx context.Context) (Standings, error) {
	if len(t.Players) < 2 {
		return nil, ErrTooFewPlayers
	}
	k := t.K
	if k == 0 {
		k = DefaultK
	}
	workers := t.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	players := make([]Player, len(t.Players))
	for i, s := range t.Players {
		players[i] = Player{Strategy: s, Elo: NewElo()}
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range t.schedule() {
		i, p := i, p
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			white, black := t.Players[p.white], t.Players[p.black]
			res, err := PlayGame(ctx, white, black, p.opening.Board, t.MaxPlies, rand.New(rand.NewSource(p.seed)))
			if err != nil {
				return fmt.Errorf("game %d (%s vs %s): %w", i, white.Name(), black.Name(), err)
			}

			mu.Lock()
			defer mu.Unlock()
			w, b := &players[p.white], &players[p.black]
			switch res.Outcome {
			case WhiteWins:
				w.Elo.Win(&b.Elo, k)
				w.Wins++
				b.Losses++
			case BlackWins:
				b.Elo.Win(&w.Elo, k)
				b.Wins++
				w.Losses++
			default:
				w.Draws++
				b.Draws++
			}
			if t.OnGame != nil {
				t.OnGame(GameRecord{Index: i, White: white.Name(), Black: black.Name(), Opening: p.opening.Name, Result: res})
			}
			return nil
		})
	}
	err := g.Wait()

	standings := Standings(players)
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Elo.Score > standings[j].Elo.Score
	})
	return standings, err
}
