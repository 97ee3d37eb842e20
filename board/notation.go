package board

import "strings"

// SAN renders m in a long-algebraic flavour of SAN: piece letter (none for
// pawns), source, 'x' for captures, destination and '+' when the mover could
// take the enemy king on its next turn. Moves that cannot be played on b are
// rendered in coordinate form.
func SAN(b Board, m Move) string {
	next, err := b.Play(m)
	if err != nil {
		return m.String()
	}
	mover := b.PieceAt(m.Src)

	var sb strings.Builder
	if k := mover.Kind(); k != Pawn {
		sb.WriteByte(k.Letter() - ('a' - 'A'))
	}
	sb.WriteString(m.Src.String())
	if !b.PieceAt(m.Dst).IsEmpty() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.Dst.String())

	them := mover.Color().Opponent()
	if next.HasKing(them) && CanReach(next, mover.Color(), next.KingPos(them)) {
		sb.WriteByte('+')
	}
	return sb.String()
}
