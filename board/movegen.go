package board

// Precomputed target masks for knights and kings from each square.
var knightMoves [64]BitBoard
var kingMoves [64]BitBoard

// direction is a single step on the board; index delta is dc + 8*dr.
type direction struct{ dc, dr int }

// increasing reports whether squares along the ray have growing indices, in
// which case the nearest blocker is the lowest set bit.
func (d direction) increasing() bool { return d.dc+8*d.dr > 0 }

// Rook directions: 0=N, 1=S, 2=E, 3=W
var rookDirs = [4]direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW
var bishopDirs = [4]direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// For each square and direction, the squares on that ray (excluding the origin).
var rookRays [64][4]BitBoard
var bishopRays [64][4]BitBoard

// Rank a pawn of each color starts on, and may double-push from.
var pawnStartRow = [2]int{White: 1, Black: 6}

func init() {
	initStepTables()
	initRays()
}

// initStepTables precomputes knight and king destinations.
func initStepTables() {
	knightOffsets := [8]direction{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets := [8]direction{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	for sq := 0; sq < 64; sq++ {
		from := Pos(sq)
		for _, off := range knightOffsets {
			if to, ok := TryPos(from.Col()+off.dc, from.Row()+off.dr); ok {
				knightMoves[sq].Add(to)
			}
		}
		for _, off := range kingOffsets {
			if to, ok := TryPos(from.Col()+off.dc, from.Row()+off.dr); ok {
				kingMoves[sq].Add(to)
			}
		}
	}
}

// initRays walks every direction from every square until it leaves the board.
func initRays() {
	for sq := 0; sq < 64; sq++ {
		from := Pos(sq)
		for d := 0; d < 4; d++ {
			rookRays[sq][d] = castRay(from, rookDirs[d])
			bishopRays[sq][d] = castRay(from, bishopDirs[d])
		}
	}
}

func castRay(from Pos, d direction) BitBoard {
	var ray BitBoard
	col, row := from.Col(), from.Row()
	for {
		col, row = col+d.dc, row+d.dr
		p, ok := TryPos(col, row)
		if !ok {
			return ray
		}
		ray.Add(p)
	}
}

// slide returns the squares reachable along the four rays, each ray cut just
// after its first occupied square. The blocker itself is included; the caller
// strips own pieces afterwards.
func slide(rays *[64][4]BitBoard, dirs *[4]direction, sq Pos, occ BitBoard) BitBoard {
	var attacks BitBoard
	for d := 0; d < 4; d++ {
		ray := rays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			var first Pos
			if dirs[d].increasing() {
				first = blockers.Lowest()
			} else {
				first = blockers.Highest()
			}
			ray &^= rays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

func rookTargets(sq Pos, occ BitBoard) BitBoard   { return slide(&rookRays, &rookDirs, sq, occ) }
func bishopTargets(sq Pos, occ BitBoard) BitBoard { return slide(&bishopRays, &bishopDirs, sq, occ) }

// pawnTargets covers pushes and diagonal captures. Captures only land on enemy pieces.
func pawnTargets(sq Pos, c Color, own, enemy BitBoard) BitBoard {
	empty := ^(own | enemy)
	from := FromPos(sq)
	step := from.Up
	if c == Black {
		step = from.Down
	}
	advance := step()
	moves := advance & empty
	if moves != 0 && sq.Row() == pawnStartRow[c] {
		moves |= advance.ShiftRows(forward(c)) & empty
	}
	moves |= (advance.East() | advance.West()) & enemy
	return moves
}

// forward is the rank direction pawns of c advance in.
func forward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// targets returns the destinations of the piece on sq, own pieces excluded.
func targets(p Piece, sq Pos, own, enemy BitBoard) BitBoard {
	var moves BitBoard
	switch p.Kind() {
	case Pawn:
		moves = pawnTargets(sq, p.Color(), own, enemy)
	case Knight:
		moves = knightMoves[sq]
	case King:
		moves = kingMoves[sq]
	case Rook:
		moves = rookTargets(sq, own|enemy)
	case Bishop:
		moves = bishopTargets(sq, own|enemy)
	case Queen:
		occ := own | enemy
		moves = rookTargets(sq, occ) | bishopTargets(sq, occ)
	}
	return moves &^ own
}

// Generate returns the pseudo-legal moves of the side to move.
func Generate(b Board) MoveSet { return GenerateFor(b, b.toMove) }

// GenerateFor returns the pseudo-legal moves of color, whether or not it is
// that side's turn. Moves for the side not to move are for reachability
// queries only; Play rejects them.
func GenerateFor(b Board, c Color) MoveSet {
	ms := MoveSet{board: b}
	own := b.occupancy[c]
	enemy := b.occupancy[c.Opponent()]
	for pieces := own; !pieces.IsEmpty(); {
		src := pieces.Pop()
		if dst := targets(b.pieces[src], src, own, enemy); !dst.IsEmpty() {
			ms.add(src, dst)
		}
	}
	return ms
}

// Reachable returns every square some piece of color can move to.
func Reachable(b Board, c Color) BitBoard {
	var reach BitBoard
	own := b.occupancy[c]
	enemy := b.occupancy[c.Opponent()]
	for pieces := own; !pieces.IsEmpty(); {
		src := pieces.Pop()
		reach |= targets(b.pieces[src], src, own, enemy)
	}
	return reach
}

// CanReach reports whether some piece of color can move to target.
func CanReach(b Board, c Color, target Pos) bool {
	return Reachable(b, c).Contains(target)
}

// CanCaptureKing reports whether the side to move can take the enemy king right now.
func CanCaptureKing(b Board) bool {
	enemy := b.toMove.Opponent()
	return b.HasKing(enemy) && CanReach(b, b.toMove, b.kings[enemy])
}

// Perft counts pseudo-legal move sequences of the given length. A position
// whose side to move has lost its king has no continuations.
func Perft(b Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if !b.HasKing(b.toMove) {
		return 0
	}
	var nodes uint64
	ms := Generate(b)
	if depth == 1 {
		return uint64(ms.Count())
	}
	ms.EachMove(func(m Move) bool {
		nodes += Perft(b.MustPlay(m), depth-1)
		return true
	})
	return nodes
}

// PerftDivide returns, for each root move, the number of leaf nodes reachable
// from it at the given depth. Useful for debugging.
func PerftDivide(b Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	ms := Generate(b)
	ms.EachMove(func(m Move) bool {
		result[m] = Perft(b.MustPlay(m), depth-1)
		return true
	})
	return result
}
