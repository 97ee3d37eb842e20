package engine

import (
	"math/rand"

	"chess-arena/board"
)

// Capture is the greedy capturer: most valuable victim first, least valuable
// attacker on ties. With SearchCheck it first looks one ply ahead for moves
// that leave the enemy king in reach. Without any capture it plays randomly.
type Capture struct {
	SearchCheck bool
}

func (c Capture) Name() string {
	if c.SearchCheck {
		return "capture+check"
	}
	return "capture"
}

// attackerSpan is larger than any piece score, so a victim point always
// outweighs the whole attacker range.
const attackerSpan = 1024

// mvvLva orders captures by victim score, then by cheapest attacker.
func mvvLva(victim, attacker board.Piece) int {
	return victim.Score()*attackerSpan - attacker.Score()
}

func (c Capture) ChooseMove(ms *board.MoveSet, rng *rand.Rand) (board.Move, bool) {
	if ms.IsEmpty() {
		return board.Move{}, false
	}
	if m, ok := kingCapture(ms); ok {
		return m, true
	}
	b := ms.Board()
	us, them := b.ToMove(), b.ToMove().Opponent()

	if c.SearchCheck {
		check, ok := bestBy(ms, func(m board.Move) (int, bool) {
			next := b.MustPlay(m)
			if !next.HasKing(them) || !board.CanReach(next, us, next.KingPos(them)) {
				return 0, false
			}
			return -b.PieceAt(m.Src).Score(), true
		})
		if ok {
			return check, true
		}
	}

	capture, ok := bestBy(ms, func(m board.Move) (int, bool) {
		victim := b.PieceAt(m.Dst)
		if victim.IsEmpty() {
			return 0, false
		}
		return mvvLva(victim, b.PieceAt(m.Src)), true
	})
	if ok {
		return capture, true
	}
	return randomMove(ms, rng)
}
