package board

// Kind is a colorless piece type.
type Kind uint8

const (
	None   Kind = 0
	Pawn   Kind = 1
	Rook   Kind = 2
	Knight Kind = 3
	Bishop Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

// kingScore dominates the rest of the material so that losing the king
// outweighs any combination of other captures.
const kingScore = 641

var kindScores = [7]int{None: 0, Pawn: 1, Rook: 5, Knight: 3, Bishop: 3, Queen: 10, King: kingScore}

// Score returns the material value of the kind.
func (k Kind) Score() int { return kindScores[k&7] }

func (k Kind) Letter() byte { return ".prnbqk"[k&7] }

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece packs a kind and a color:
//   - piece & 7 gives the kind
//   - piece & 8 != 0 marks Black
//
// The zero value is the empty square.
type Piece uint8

// NoPiece occupies every empty square.
const NoPiece Piece = 0

// NewPiece combines a kind and a side. NewPiece(None, c) is NoPiece for either color.
func NewPiece(k Kind, c Color) Piece {
	if k == None {
		return NoPiece
	}
	return Piece(k) | Piece(c)<<3
}

// Kind returns the piece type.
func (p Piece) Kind() Kind { return Kind(p & 7) }

// Color returns the owning side. NoPiece reports White; check IsEmpty first.
func (p Piece) Color() Color { return Color(p>>3) & 1 }

func (p Piece) IsEmpty() bool { return p.Kind() == None }

// Is reports whether p is a piece of kind k owned by c.
func (p Piece) Is(k Kind, c Color) bool { return !p.IsEmpty() && p == NewPiece(k, c) }

// Score returns the material value of the piece.
func (p Piece) Score() int { return p.Kind().Score() }

// Char returns the FEN letter: uppercase for White, lowercase for Black, '.' when empty.
func (p Piece) Char() byte {
	c := p.Kind().Letter()
	if !p.IsEmpty() && p.Color() == White {
		c -= 'a' - 'A'
	}
	return c
}

// pieceFromChar converts a FEN letter to a piece. Unknown letters are empty squares.
func pieceFromChar(ch byte) Piece {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	switch ch {
	case 'p':
		return NewPiece(Pawn, color)
	case 'r':
		return NewPiece(Rook, color)
	case 'n':
		return NewPiece(Knight, color)
	case 'b':
		return NewPiece(Bishop, color)
	case 'q':
		return NewPiece(Queen, color)
	case 'k':
		return NewPiece(King, color)
	default:
		return NoPiece
	}
}
