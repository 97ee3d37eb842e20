package engine

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"chess-arena/board"
)

const (
	// A rollout decided after d plies weighs rolloutDepthCap/d, and
	// everything from rolloutDepthCap plies on weighs 1.
	rolloutDepthCap = 20

	DefaultRollouts = 20
	DefaultMaxPlies = 2048
)

// MonteCarlo scores every candidate move with Rollouts random games and plays
// the best one. A won rollout adds rolloutDepthCap/min(rolloutDepthCap, plies)
// and a lost one subtracts it, so quick results dominate. Rollouts reaching
// MaxPlies (DefaultMaxPlies when zero) are draws.
//
// Candidates are evaluated on up to Workers goroutines (GOMAXPROCS when
// zero). Each candidate draws its own seed from rng before any work starts,
// so the choice only depends on the caller's seed.
type MonteCarlo struct {
	Rollouts int
	Workers  int
	MaxPlies int
}

func NewMonteCarlo(rollouts int) (MonteCarlo, error) {
	if rollouts <= 0 {
		return MonteCarlo{}, fmt.Errorf("%w: rollouts must be positive, got %d", ErrInvalidParameter, rollouts)
	}
	return MonteCarlo{Rollouts: rollouts}, nil
}

func (mc MonteCarlo) Name() string { return fmt.Sprintf("montecarlo:%d", mc.rollouts()) }

func (mc MonteCarlo) rollouts() int {
	if mc.Rollouts <= 0 {
		return DefaultRollouts
	}
	return mc.Rollouts
}

func (mc MonteCarlo) maxPlies() int {
	if mc.MaxPlies <= 0 {
		return DefaultMaxPlies
	}
	return mc.MaxPlies
}

func (mc MonteCarlo) ChooseMove(ms *board.MoveSet, rng *rand.Rand) (board.Move, bool) {
	moves := ms.Moves()
	if len(moves) == 0 {
		return board.Move{}, false
	}
	b := ms.Board()

	seeds := make([]int64, len(moves))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}
	workers := mc.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	scores := make([]float64, len(moves))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			r := rand.New(rand.NewSource(seeds[i]))
			scores[i] = mc.score(b.MustPlay(m), b.ToMove(), r)
			return nil
		})
	}
	_ = g.Wait()

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return moves[best], true
}

// score sums the rollouts from after, seen from mover who just played.
func (mc MonteCarlo) score(after board.Board, mover board.Color, rng *rand.Rand) float64 {
	var total float64
	for i := 0; i < mc.rollouts(); i++ {
		winner, plies, decided := Rollout(after, mc.maxPlies(), rng)
		if !decided {
			continue
		}
		// The candidate move itself is the first ply.
		w := float64(rolloutDepthCap) / float64(Min(rolloutDepthCap, plies+1))
		if winner == mover {
			total += w
		} else {
			total -= w
		}
	}
	return total
}

// Rollout plays uniformly random moves from b until the side to move can
// take the enemy king, which wins without playing the capture, or has no
// move, which loses. It returns the winner and the number of plies played;
// decided is false when maxPlies ran out first.
func Rollout(b board.Board, maxPlies int, rng *rand.Rand) (winner board.Color, plies int, decided bool) {
	for plies = 0; plies < maxPlies; plies++ {
		us := b.ToMove()
		if !b.HasKing(us) {
			return us.Opponent(), plies, true
		}
		ms := board.Generate(b)
		if ms.IsEmpty() {
			return us.Opponent(), plies, true
		}
		if _, ok := kingCapture(&ms); ok {
			return us, plies, true
		}
		m, _ := randomMove(&ms, rng)
		b = b.MustPlay(m)
	}
	us := b.ToMove()
	if !b.HasKing(us) {
		return us.Opponent(), plies, true
	}
	return 0, plies, false
}
