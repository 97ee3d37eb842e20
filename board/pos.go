package board

import (
	"errors"
	"fmt"
)

// Pos is a board square (0-63). Index = col + 8*row, so a1 is 0 and h8 is 63.
type Pos uint8

// NewPos builds a square from a column and a row. It panics if either is outside [0,8).
func NewPos(col, row int) Pos {
	p, ok := TryPos(col, row)
	if !ok {
		panic(fmt.Sprintf("board.NewPos: (%d, %d) is off the board", col, row))
	}
	return p
}

// TryPos returns the square at (col, row) and false when the coordinates are off the board.
// Offset tables lean on this instead of explicit bounds checks.
func TryPos(col, row int) (Pos, bool) {
	if col < 0 || col >= 8 || row < 0 || row >= 8 {
		return 0, false
	}
	return Pos(col + row*8), true
}

// PosFromIndex converts an index in [0,64) into a square.
func PosFromIndex(index int) Pos {
	if index < 0 || index >= 64 {
		panic(fmt.Sprintf("board.PosFromIndex: index %d out of range", index))
	}
	return Pos(index)
}

// Index returns the square index in [0,64).
func (p Pos) Index() int { return int(p) }

// Col returns the file, 0 for a and 7 for h.
func (p Pos) Col() int { return int(p) % 8 }

// Row returns the rank, 0 for rank 1.
func (p Pos) Row() int { return int(p) / 8 }

// String renders the square in algebraic form (e.g. "e4").
func (p Pos) String() string {
	return string([]byte{'a' + byte(p.Col()), '1' + byte(p.Row())})
}

var errBadSquare = errors.New("invalid algebraic square")

// ParsePos parses an algebraic square such as "e4".
func ParsePos(s string) (Pos, error) {
	if len(s) != 2 {
		return 0, errBadSquare
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, errBadSquare
	}
	return Pos(int(file-'a') + int(rank-'1')*8), nil
}
