package board

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is returned for malformed move text.
var ErrInvalidMove = errors.New("invalid move")

// Move is a source/destination pair. It only means something relative to
// the Board whose MoveSet produced it.
type Move struct {
	Src Pos
	Dst Pos
}

// String produces the coordinate form of the move (e.g. "e2e4").
func (m Move) String() string { return m.Src.String() + m.Dst.String() }

// ParseMove converts a four character coordinate string such as "e2e4" into a Move.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w %q: want 4 characters, got %d", ErrInvalidMove, s, len(s))
	}
	src, err := ParsePos(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: source: %v", ErrInvalidMove, s, err)
	}
	dst, err := ParsePos(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: destination: %v", ErrInvalidMove, s, err)
	}
	return Move{Src: src, Dst: dst}, nil
}
