package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"chess-arena/board"
	"chess-arena/engine"
)

func main() {
	strategyFlag := flag.String("strategy", "alphabeta:3", "strategy to time ("+strings.Join(engine.StrategyNames(), ", ")+")")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "position to search (empty = initial position)")
	seedFlag := flag.Int64("seed", 1, "random seed")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	s, err := engine.ParseStrategy(*strategyFlag)
	if err != nil {
		log.Fatalf("strategy: %v", err)
	}
	fen := board.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	pos, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("position: %v", err)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	// Search strategies report their node counts.
	var stats engine.SearchStats
	switch st := s.(type) {
	case engine.Minimax:
		st.Stats = &stats
		s = st
	case engine.AlphaBeta:
		st.Stats = &stats
		s = st
	}

	fmt.Printf("searchbench: fen=%q strategy=%s repeat=%d\n", fen, s.Name(), *repeatFlag)
	rng := rand.New(rand.NewSource(*seedFlag))
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		ms := board.Generate(pos)
		iterStart := time.Now()
		m, ok := s.ChooseMove(&ms, rng)
		iterElapsed := time.Since(iterStart)
		if !ok {
			fmt.Printf("iteration %d: no move  time=%v\n", i+1, iterElapsed)
			continue
		}
		fmt.Printf("iteration %d: bestmove %v (%s)  time=%v\n", i+1, m, board.SAN(pos, m), iterElapsed)
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))
	if stats.Nodes > 0 {
		fmt.Println(stats)
	}
}
