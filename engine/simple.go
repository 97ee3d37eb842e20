package engine

import (
	"math/rand"

	"chess-arena/board"
)

// Random takes the enemy king whenever it can and otherwise plays a uniformly
// random move.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) ChooseMove(ms *board.MoveSet, rng *rand.Rand) (board.Move, bool) {
	if m, ok := kingCapture(ms); ok {
		return m, true
	}
	return randomMove(ms, rng)
}

// FirstMove always plays the first generated move.
type FirstMove struct{}

func (FirstMove) Name() string { return "first" }

func (FirstMove) ChooseMove(ms *board.MoveSet, _ *rand.Rand) (board.Move, bool) {
	return ms.Nth(0)
}

// Swarm moves whichever piece lands closest to the enemy king, measured in
// Manhattan distance. Ties go to the first generated move.
type Swarm struct{}

func (Swarm) Name() string { return "swarm" }

func (Swarm) ChooseMove(ms *board.MoveSet, _ *rand.Rand) (board.Move, bool) {
	b := ms.Board()
	king := b.KingPos(b.ToMove().Opponent())
	return bestBy(ms, func(m board.Move) (int, bool) {
		return -distance(king, m.Dst), true
	})
}

func distance(a, b board.Pos) int {
	return Abs(a.Col()-b.Col()) + Abs(a.Row()-b.Row())
}
