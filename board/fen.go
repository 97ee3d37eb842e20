package board

import (
	"errors"
	"fmt"
	"strings"
)

// FENStartPos is the seed string of the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// MaxPiecesPerSide bounds how many pieces a seeded side may have; a MoveSet
// holds one entry per piece.
const MaxPiecesPerSide = moveSetCapacity

// ErrInvalidFEN is returned when a seed string cannot be used.
var ErrInvalidFEN = errors.New("invalid FEN")

// ParseFEN builds a Board from piece placement and side to move, e.g.
// "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w". Further standard FEN
// fields (castling, en passant, clocks) are accepted and ignored.
//
// Unrecognised placement characters count as one empty square. A missing or
// unknown side-to-move field is an error, as is a side with more than
// MaxPiecesPerSide pieces.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return Board{}, fmt.Errorf("%w: need placement and side to move, got %d field(s)", ErrInvalidFEN, len(fields))
	}

	var toMove Color
	switch fields[1] {
	case "w":
		toMove = White
	case "b":
		toMove = Black
	default:
		return Board{}, fmt.Errorf("%w: side to move must be 'w' or 'b', got %q", ErrInvalidFEN, fields[1])
	}

	b := EmptyBoard(toMove)
	ranks := strings.Split(fields[0], "/")
	for i, rankStr := range ranks {
		if i >= 8 {
			break
		}
		row := 7 - i
		col := 0
		for j := 0; j < len(rankStr) && col < 8; j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			b.Set(NewPos(col, row), pieceFromChar(ch))
			col++
		}
	}

	for _, c := range [2]Color{White, Black} {
		if n := b.occupancy[c].Count(); n > MaxPiecesPerSide {
			return Board{}, fmt.Errorf("%w: %s has %d pieces, at most %d allowed", ErrInvalidFEN, c, n, MaxPiecesPerSide)
		}
	}
	return b, nil
}

// MustParseFEN is ParseFEN for trusted literals; it panics on error.
func MustParseFEN(fen string) Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// FEN renders the placement and side-to-move fields.
func (b Board) FEN() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.pieces[NewPos(col, row)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}
