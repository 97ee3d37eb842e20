package board

import "fmt"

// moveSetCapacity is one slot per piece; no side starts with more than 16
// and nothing in this engine adds pieces.
const moveSetCapacity = 16

// moveMask is every destination of the piece on src.
type moveMask struct {
	src Pos
	dst BitBoard
}

// MoveSet is the pseudo-legal move set of one side on one Board: one
// destination bitboard per source square that has somewhere to go.
// Entries are ordered by ascending source square.
type MoveSet struct {
	board   Board
	entries [moveSetCapacity]moveMask
	n       int
}

func (ms *MoveSet) add(src Pos, dst BitBoard) {
	if ms.n == len(ms.entries) {
		panic(fmt.Sprintf("board.MoveSet: more than %d moving pieces (adding %s)", moveSetCapacity, src))
	}
	ms.entries[ms.n] = moveMask{src: src, dst: dst}
	ms.n++
}

// Board returns the position the moves were generated from.
func (ms *MoveSet) Board() Board { return ms.board }

// IsEmpty reports whether there is no move at all.
func (ms *MoveSet) IsEmpty() bool { return ms.n == 0 }

// Len returns the number of source squares with at least one destination.
func (ms *MoveSet) Len() int { return ms.n }

// Sources returns the squares of the pieces that can move.
func (ms *MoveSet) Sources() BitBoard {
	var src BitBoard
	for i := 0; i < ms.n; i++ {
		src.Add(ms.entries[i].src)
	}
	return src
}

// Destinations returns the destinations of the piece on src.
func (ms *MoveSet) Destinations(src Pos) BitBoard {
	for i := 0; i < ms.n; i++ {
		if ms.entries[i].src == src {
			return ms.entries[i].dst
		}
	}
	return EmptyBitBoard
}

// AllDestinations returns the union of every destination.
func (ms *MoveSet) AllDestinations() BitBoard {
	var all BitBoard
	for i := 0; i < ms.n; i++ {
		all |= ms.entries[i].dst
	}
	return all
}

// Count returns the number of individual moves.
func (ms *MoveSet) Count() int {
	total := 0
	for i := 0; i < ms.n; i++ {
		total += ms.entries[i].dst.Count()
	}
	return total
}

// EachMove calls fn for every move, by ascending source then destination.
// Iteration stops when fn returns false.
func (ms *MoveSet) EachMove(fn func(Move) bool) {
	for i := 0; i < ms.n; i++ {
		e := ms.entries[i]
		for dst := e.dst; !dst.IsEmpty(); {
			if !fn(Move{Src: e.src, Dst: dst.Pop()}) {
				return
			}
		}
	}
}

// Moves returns every move in EachMove order.
func (ms *MoveSet) Moves() []Move {
	out := make([]Move, 0, ms.Count())
	ms.EachMove(func(m Move) bool {
		out = append(out, m)
		return true
	})
	return out
}

// MovesTo returns the moves landing on dst, by ascending source.
func (ms *MoveSet) MovesTo(dst Pos) []Move {
	var out []Move
	for i := 0; i < ms.n; i++ {
		if ms.entries[i].dst.Contains(dst) {
			out = append(out, Move{Src: ms.entries[i].src, Dst: dst})
		}
	}
	return out
}

// Nth returns the i-th move in EachMove order.
func (ms *MoveSet) Nth(i int) (Move, bool) {
	if i < 0 {
		return Move{}, false
	}
	for k := 0; k < ms.n; k++ {
		e := ms.entries[k]
		if c := e.dst.Count(); i >= c {
			i -= c
			continue
		}
		dst := e.dst
		for ; i > 0; i-- {
			dst.Pop()
		}
		return Move{Src: e.src, Dst: dst.Lowest()}, true
	}
	return Move{}, false
}

// Contains reports whether m is one of the generated moves.
func (ms *MoveSet) Contains(m Move) bool {
	return ms.Destinations(m.Src).Contains(m.Dst)
}

// Filter returns a copy holding only the moves keep accepts. Sources left
// without destinations are dropped.
func (ms *MoveSet) Filter(keep func(Move) bool) MoveSet {
	out := MoveSet{board: ms.board}
	for i := 0; i < ms.n; i++ {
		e := ms.entries[i]
		var dst BitBoard
		for all := e.dst; !all.IsEmpty(); {
			to := all.Pop()
			if keep(Move{Src: e.src, Dst: to}) {
				dst.Add(to)
			}
		}
		if !dst.IsEmpty() {
			out.add(e.src, dst)
		}
	}
	return out
}
