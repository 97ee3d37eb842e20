package board

import (
	"math/bits"
	"strings"
)

// BitBoard is a set of squares, one bit per square. Bit i corresponds to Pos(i).
type BitBoard uint64

const (
	fileA BitBoard = 0x0101010101010101
	fileH BitBoard = fileA << 7
)

// EmptyBitBoard is the set with no squares.
const EmptyBitBoard BitBoard = 0

// FromPos returns a set holding only p.
func FromPos(p Pos) BitBoard { return 1 << uint(p) }

// RowMask returns all squares on the given rank.
func RowMask(row int) BitBoard { return 0xFF << (uint(row) * 8) }

// ColMask returns all squares on the given file.
func ColMask(col int) BitBoard { return fileA << uint(col) }

func (b BitBoard) IsEmpty() bool { return b == 0 }

// Contains reports whether p is in the set.
func (b BitBoard) Contains(p Pos) bool { return b&FromPos(p) != 0 }

func (b BitBoard) With(p Pos) BitBoard    { return b | FromPos(p) }
func (b BitBoard) Without(p Pos) BitBoard { return b &^ FromPos(p) }

// Add inserts p in place.
func (b *BitBoard) Add(p Pos) { *b |= FromPos(p) }

// Remove deletes p in place.
func (b *BitBoard) Remove(p Pos) { *b &^= FromPos(p) }

func (b BitBoard) Union(o BitBoard) BitBoard      { return b | o }
func (b BitBoard) Intersect(o BitBoard) BitBoard  { return b & o }
func (b BitBoard) Difference(o BitBoard) BitBoard { return b &^ o }

// Up shifts every square one rank toward rank 8. Squares on rank 8 fall off.
func (b BitBoard) Up() BitBoard { return b << 8 }

// Down shifts every square one rank toward rank 1. Squares on rank 1 fall off.
func (b BitBoard) Down() BitBoard { return b >> 8 }

// ShiftRows moves the set n ranks up (n > 0) or down (n < 0), dropping what leaves the board.
func (b BitBoard) ShiftRows(n int) BitBoard {
	switch {
	case n >= 8 || n <= -8:
		return 0
	case n >= 0:
		return b << (uint(n) * 8)
	default:
		return b >> (uint(-n) * 8)
	}
}

// East shifts every square one file toward h without wrapping onto the next rank.
func (b BitBoard) East() BitBoard { return (b &^ fileH) << 1 }

// West shifts every square one file toward a without wrapping onto the previous rank.
func (b BitBoard) West() BitBoard { return (b &^ fileA) >> 1 }

// Count returns the number of squares in the set.
func (b BitBoard) Count() int { return bits.OnesCount64(uint64(b)) }

// Lowest returns the lowest-index square in the set. The set must not be empty.
func (b BitBoard) Lowest() Pos { return Pos(bits.TrailingZeros64(uint64(b))) }

// Highest returns the highest-index square in the set. The set must not be empty.
func (b BitBoard) Highest() Pos { return Pos(63 - bits.LeadingZeros64(uint64(b))) }

// Pop removes and returns the lowest-index square. The set must not be empty.
func (b *BitBoard) Pop() Pos {
	p := b.Lowest()
	*b &= *b - 1
	return p
}

// ForEach calls fn for every square in ascending order. Iteration stops when fn returns false.
func (b BitBoard) ForEach(fn func(Pos) bool) {
	for b != 0 {
		if !fn(b.Pop()) {
			return
		}
	}
}

// Positions returns the squares of the set in ascending order.
func (b BitBoard) Positions() []Pos {
	out := make([]Pos, 0, b.Count())
	for b != 0 {
		out = append(out, b.Pop())
	}
	return out
}

// String draws the set as an 8x8 grid, rank 8 on top.
func (b BitBoard) String() string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(" +-----------------+\n")
	for row := 7; row >= 0; row-- {
		sb.WriteByte('1' + byte(row))
		sb.WriteByte('|')
		for col := 0; col < 8; col++ {
			if b.Contains(NewPos(col, row)) {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" 0")
			}
		}
		sb.WriteString(" |")
		sb.WriteByte('1' + byte(row))
		sb.WriteByte('\n')
	}
	sb.WriteString(" +-----------------+\n")
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
