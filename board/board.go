package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIllegalMove is returned by Play when a move breaks its preconditions.
var ErrIllegalMove = errors.New("illegal move")

// Board is a full game state. It is a value: Play returns a new Board and
// never touches the receiver, so derived positions can be shared across goroutines.
type Board struct {
	// Piece placement for each square (NoPiece when empty)
	pieces [64]Piece

	// Occupancy bitboards for each side: occupancy[White], occupancy[Black]
	occupancy [2]BitBoard

	// Cached king squares. Only trustworthy while HasKing reports true.
	kings [2]Pos

	toMove Color
}

// EmptyBoard returns a board with no pieces and the given side to move.
func EmptyBoard(toMove Color) Board {
	return Board{toMove: toMove}
}

// NewBoard returns the standard initial position with White to move.
func NewBoard() Board {
	b := EmptyBoard(White)
	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < 8; col++ {
		b.Set(NewPos(col, 0), NewPiece(back[col], White))
		b.Set(NewPos(col, 1), NewPiece(Pawn, White))
		b.Set(NewPos(col, 6), NewPiece(Pawn, Black))
		b.Set(NewPos(col, 7), NewPiece(back[col], Black))
	}
	return b
}

// Set places p on pos, replacing whatever was there, and keeps the occupancy
// and king cache in sync. Setting NoPiece clears the square.
func (b *Board) Set(pos Pos, p Piece) {
	b.removePiece(pos)
	b.addPiece(pos, p)
}

// addPiece places a piece on an empty square and updates occupancy and the king cache.
func (b *Board) addPiece(pos Pos, p Piece) {
	if p.IsEmpty() {
		return
	}
	b.pieces[pos] = p
	b.occupancy[p.Color()].Add(pos)
	if p.Kind() == King {
		b.kings[p.Color()] = pos
	}
}

// removePiece clears a square and returns what stood on it.
func (b *Board) removePiece(pos Pos) Piece {
	p := b.pieces[pos]
	if p.IsEmpty() {
		return NoPiece
	}
	b.pieces[pos] = NoPiece
	b.occupancy[p.Color()].Remove(pos)
	return p
}

// PieceAt returns the piece on pos, or NoPiece for an empty square.
func (b Board) PieceAt(pos Pos) Piece { return b.pieces[pos] }

// PiecesFor returns the squares occupied by color.
func (b Board) PiecesFor(c Color) BitBoard { return b.occupancy[c] }

// Occupied returns every occupied square.
func (b Board) Occupied() BitBoard { return b.occupancy[White] | b.occupancy[Black] }

// ToMove reports which side plays next.
func (b Board) ToMove() Color { return b.toMove }

// KingPos returns the cached king square of color. The value is stale once
// the king has been captured; call HasKing first.
func (b Board) KingPos(c Color) Pos { return b.kings[c] }

// HasKing reports whether color still has its king on the cached square.
func (b Board) HasKing(c Color) bool {
	return b.pieces[b.kings[c]].Is(King, c)
}

// Material sums the piece scores of color.
func (b Board) Material(c Color) int {
	score := 0
	for occ := b.occupancy[c]; !occ.IsEmpty(); {
		score += b.pieces[occ.Pop()].Score()
	}
	return score
}

// checkMove validates the preconditions every build enforces before a move is applied.
func (b Board) checkMove(m Move) error {
	mover := b.pieces[m.Src]
	if mover.IsEmpty() {
		return fmt.Errorf("%w %s: no piece on %s", ErrIllegalMove, m, m.Src)
	}
	if mover.Color() != b.toMove {
		return fmt.Errorf("%w %s: %s is not %s to move", ErrIllegalMove, m, m.Src, b.toMove)
	}
	if m.Src == m.Dst {
		return fmt.Errorf("%w %s: source equals destination", ErrIllegalMove, m)
	}
	if b.occupancy[b.toMove].Contains(m.Dst) {
		return fmt.Errorf("%w %s: destination holds own piece", ErrIllegalMove, m)
	}
	return nil
}

// Play returns the position after m. The move should come from this board's
// MoveSet; moves whose source is not a piece of the side to move, or which
// land on an own piece, are rejected with ErrIllegalMove.
func (b Board) Play(m Move) (Board, error) {
	if err := b.checkMove(m); err != nil {
		return b, err
	}
	b.apply(m)
	return b, nil
}

// MustPlay is Play for moves taken from a generated MoveSet. It panics on an illegal move.
func (b Board) MustPlay(m Move) Board {
	next, err := b.Play(m)
	if err != nil {
		panic("board.MustPlay: " + err.Error())
	}
	return next
}

// apply moves the piece, drops any captured piece and flips the side to move.
// A captured king is not special-cased: HasKing notices it from the piece array.
func (b *Board) apply(m Move) {
	moving := b.removePiece(m.Src)
	_ = b.removePiece(m.Dst)
	b.addPiece(m.Dst, moving)
	b.toMove = b.toMove.Opponent()
}

// Validate checks the occupancy bitboards and the king cache against the piece array.
func (b Board) Validate() error {
	var occ [2]BitBoard
	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p.IsEmpty() {
			if p != NoPiece {
				return fmt.Errorf("square %s holds a colored empty piece", Pos(sq))
			}
			continue
		}
		occ[p.Color()].Add(Pos(sq))
	}
	if occ != b.occupancy {
		return fmt.Errorf("occupancy mismatch: pieces give %x/%x, cached %x/%x",
			uint64(occ[White]), uint64(occ[Black]), uint64(b.occupancy[White]), uint64(b.occupancy[Black]))
	}
	if occ[White]&occ[Black] != 0 {
		return errors.New("a square is occupied by both colors")
	}
	for _, c := range [2]Color{White, Black} {
		kings := BitBoard(0)
		for sq := occ[c]; !sq.IsEmpty(); {
			p := sq.Pop()
			if b.pieces[p].Kind() == King {
				kings.Add(p)
			}
		}
		if !kings.IsEmpty() && !kings.Contains(b.kings[c]) {
			return fmt.Errorf("%s king cache points at %s, kings on %v", c, b.kings[c], kings.Positions())
		}
	}
	return nil
}

// String draws the board with rank 8 on top, as in the FEN placement order.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(" +-----------------+\n")
	for row := 7; row >= 0; row-- {
		sb.WriteByte('1' + byte(row))
		sb.WriteByte('|')
		for col := 0; col < 8; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.pieces[NewPos(col, row)].Char())
		}
		sb.WriteString(" |")
		sb.WriteByte('1' + byte(row))
		sb.WriteByte('\n')
	}
	sb.WriteString(" +-----------------+\n")
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
