package arena

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/notnil/chess"

	"chess-arena/board"
)

var ErrBadOpening = errors.New("bad opening line")

// Opening is a named line of SAN moves and the position it reaches.
type Opening struct {
	Name  string
	Moves []string
	Board board.Board
}

// Openings is a book of start positions. A nil or empty book only holds the
// standard initial position.
type Openings struct {
	lines []Opening
}

// NewOpening replays moves from the initial position with full chess rules,
// so the book cannot hold an illegal line.
func NewOpening(name string, moves []string) (Opening, error) {
	game := chess.NewGame()
	for i, san := range moves {
		m, err := chess.AlgebraicNotation{}.Decode(game.Position(), san)
		if err != nil {
			return Opening{}, fmt.Errorf("%w: %s: move %d %q: %v", ErrBadOpening, name, i+1, san, err)
		}
		if err := game.Move(m); err != nil {
			return Opening{}, fmt.Errorf("%w: %s: move %d %q: %v", ErrBadOpening, name, i+1, san, err)
		}
	}
	b, err := board.ParseFEN(game.Position().String())
	if err != nil {
		return Opening{}, fmt.Errorf("%w: %s: %v", ErrBadOpening, name, err)
	}
	return Opening{Name: name, Moves: moves, Board: b}, nil
}

// ParseOpenings reads one opening per line as "name: e4 e5 Nf3". Blank lines
// and lines starting with '#' are skipped; a line without a name is named
// after its moves.
func ParseOpenings(r io.Reader) (*Openings, error) {
	book := &Openings{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, moves, found := strings.Cut(line, ":")
		if !found {
			name, moves = line, line
		}
		o, err := NewOpening(strings.TrimSpace(name), strings.Fields(moves))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		book.lines = append(book.lines, o)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return book, nil
}

const defaultBook = `
Open Game: e4 e5
Italian Game: e4 e5 Nf3 Nc6 Bc4
Sicilian Defence: e4 c5
French Defence: e4 e6 d4 d5
Caro-Kann Defence: e4 c6 d4 d5
Queen's Gambit: d4 d5 c4
King's Indian Defence: d4 Nf6 c4 g6
English Opening: c4
Reti Opening: Nf3 d5
`

// DefaultOpenings is a small book of common first moves.
func DefaultOpenings() *Openings {
	book, err := ParseOpenings(strings.NewReader(defaultBook))
	if err != nil {
		panic(err)
	}
	return book
}

// Len returns the number of lines in the book.
func (o *Openings) Len() int {
	if o == nil {
		return 0
	}
	return len(o.lines)
}

// Lines returns the book in file order.
func (o *Openings) Lines() []Opening {
	if o == nil {
		return nil
	}
	return o.lines
}

// Pick returns a uniformly chosen start position.
func (o *Openings) Pick(rng *rand.Rand) Opening {
	if o.Len() == 0 {
		return Opening{Name: "Initial position", Board: board.NewBoard()}
	}
	return o.lines[rng.Intn(len(o.lines))]
}
