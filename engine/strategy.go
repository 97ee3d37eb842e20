// Package engine holds the move-selection strategies that play king-capture
// chess on top of the board package.
package engine

import (
	"errors"
	"math/rand"

	"chess-arena/board"
)

var (
	ErrUnknownStrategy  = errors.New("unknown strategy")
	ErrDepthOutOfRange  = errors.New("search depth out of range")
	ErrInvalidParameter = errors.New("invalid strategy parameter")
)

// Strategy picks one move out of a generated MoveSet.
//
// ChooseMove returns false only when ms is empty. rng is the only source of
// randomness a strategy may use, so a fixed seed reproduces a game.
type Strategy interface {
	Name() string
	ChooseMove(ms *board.MoveSet, rng *rand.Rand) (board.Move, bool)
}

// kingCapture returns the first move landing on the enemy king, if any.
func kingCapture(ms *board.MoveSet) (board.Move, bool) {
	b := ms.Board()
	them := b.ToMove().Opponent()
	if !b.HasKing(them) {
		return board.Move{}, false
	}
	if moves := ms.MovesTo(b.KingPos(them)); len(moves) > 0 {
		return moves[0], true
	}
	return board.Move{}, false
}

// randomMove samples uniformly from every move in ms.
func randomMove(ms *board.MoveSet, rng *rand.Rand) (board.Move, bool) {
	n := ms.Count()
	if n == 0 {
		return board.Move{}, false
	}
	return ms.Nth(rng.Intn(n))
}

// bestBy returns the first move with the highest key. Moves for which key
// reports false are skipped.
func bestBy(ms *board.MoveSet, key func(board.Move) (int, bool)) (board.Move, bool) {
	var best board.Move
	bestKey, found := 0, false
	ms.EachMove(func(m board.Move) bool {
		k, ok := key(m)
		if ok && (!found || k > bestKey) {
			best, bestKey, found = m, k, true
		}
		return true
	})
	return best, found
}
