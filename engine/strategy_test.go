package engine

import (
	"math/rand"
	"testing"

	"chess-arena/board"
)

func allStrategies() []Strategy {
	return []Strategy{
		Random{},
		FirstMove{},
		Swarm{},
		Capture{},
		Capture{SearchCheck: true},
		MonteCarlo{Rollouts: 2, Workers: 2, MaxPlies: 50},
		Minimax{Depth: 1},
		AlphaBeta{Depth: 2},
	}
}

func choose(t *testing.T, s Strategy, fen string, seed int64) (board.Move, bool) {
	t.Helper()
	b := mustFEN(t, fen)
	ms := board.Generate(b)
	return s.ChooseMove(&ms, rand.New(rand.NewSource(seed)))
}

func TestEveryStrategyReturnsNoneWithoutMoves(t *testing.T) {
	for _, s := range allStrategies() {
		if m, ok := choose(t, s, "6PK/6PP/8/8/8/8/8/k7 w", 1); ok {
			t.Errorf("%s returned %s for an empty move set", s.Name(), m)
		}
	}
}

func TestEveryStrategyReturnsAGeneratedMove(t *testing.T) {
	b := board.NewBoard()
	ms := board.Generate(b)
	for _, s := range allStrategies() {
		m, ok := s.ChooseMove(&ms, rand.New(rand.NewSource(5)))
		if !ok || !ms.Contains(m) {
			t.Errorf("%s returned %v (%v), not a generated move", s.Name(), m, ok)
		}
	}
}

func TestRandomAlwaysTakesTheKing(t *testing.T) {
	// Plenty of alternatives, only one king capture.
	fen := "4k3/8/8/8/8/8/PPPP1PPP/4R1K1 w"
	for seed := int64(0); seed < 64; seed++ {
		m, ok := choose(t, Random{}, fen, seed)
		if !ok || m.String() != "e1e8" {
			t.Fatalf("seed %d: Random chose %v", seed, m)
		}
	}
}

func TestRandomCoversEveryMove(t *testing.T) {
	b := board.NewBoard()
	ms := board.Generate(b)
	rng := rand.New(rand.NewSource(11))
	seen := map[board.Move]bool{}
	for i := 0; i < 2000; i++ {
		m, _ := Random{}.ChooseMove(&ms, rng)
		seen[m] = true
	}
	if len(seen) != ms.Count() {
		t.Fatalf("Random reached %d of %d moves", len(seen), ms.Count())
	}
}

func TestFirstMove(t *testing.T) {
	m, ok := choose(t, FirstMove{}, board.FENStartPos, 0)
	if !ok || m.String() != "b1a3" {
		t.Fatalf("FirstMove chose %v", m)
	}
}

func TestSwarmClosesIn(t *testing.T) {
	// The rook can land next to the king on e7 or on the king itself.
	m, ok := choose(t, Swarm{}, "4k3/8/8/8/8/8/8/4R1K1 w", 0)
	if !ok || m.String() != "e1e8" {
		t.Fatalf("Swarm chose %v", m)
	}
	m, _ = choose(t, Swarm{}, "7k/8/8/8/8/8/8/K7 w", 0)
	if m.String() != "a1b2" {
		t.Fatalf("Swarm chose %v, want a1b2", m)
	}
}

func TestCapturePrefersValuableVictims(t *testing.T) {
	cases := []struct {
		name, fen, want string
	}{
		{"queen over rook", "4k3/8/8/3q1r2/4P3/8/8/6K1 w", "e4d5"},
		{"cheapest attacker", "4k3/8/8/3q4/4P3/8/8/3R2K1 w", "e4d5"},
		{"king before queen", "4k3/8/8/3q4/2P5/8/8/4R1K1 w", "e1e8"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range []Strategy{Capture{}, Capture{SearchCheck: true}} {
				m, ok := choose(t, s, tc.fen, 0)
				if !ok || m.String() != tc.want {
					t.Fatalf("%s chose %v, want %s", s.Name(), m, tc.want)
				}
			}
		})
	}
}

func TestCaptureSearchCheck(t *testing.T) {
	fen := "4k3/8/8/8/8/8/p7/R5K1 w"
	if m, _ := choose(t, Capture{}, fen, 0); m.String() != "a1a2" {
		t.Fatalf("capture chose %v, want a1a2", m)
	}
	if m, _ := choose(t, Capture{SearchCheck: true}, fen, 0); m.String() != "a1e1" {
		t.Fatalf("capture+check chose %v, want a1e1", m)
	}
}

func TestCaptureFallsBackToRandom(t *testing.T) {
	b := board.NewBoard()
	ms := board.Generate(b)
	for seed := int64(0); seed < 8; seed++ {
		got, _ := Capture{}.ChooseMove(&ms, rand.New(rand.NewSource(seed)))
		want, _ := Random{}.ChooseMove(&ms, rand.New(rand.NewSource(seed)))
		if got != want {
			t.Fatalf("seed %d: capture %s, random %s", seed, got, want)
		}
	}
}

func TestMvvLvaOrdering(t *testing.T) {
	pawn := board.NewPiece(board.Pawn, board.White)
	queen := board.NewPiece(board.Queen, board.White)
	king := board.NewPiece(board.King, board.White)
	rook := board.NewPiece(board.Rook, board.Black)
	knight := board.NewPiece(board.Knight, board.Black)

	if mvvLva(rook, king) <= mvvLva(knight, pawn) {
		t.Fatalf("a rook taken by the king must beat a knight taken by a pawn")
	}
	if mvvLva(rook, pawn) <= mvvLva(rook, queen) {
		t.Fatalf("cheaper attacker must win the tie")
	}
}

func TestGenericHelpers(t *testing.T) {
	if Min(3, -2) != -2 || Max(3, -2) != 3 {
		t.Fatalf("Min/Max")
	}
	if Abs(-4) != 4 || Abs(2.5) != 2.5 {
		t.Fatalf("Abs")
	}
	if Clamp(9, 0, MaxDepth) != MaxDepth || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatalf("Clamp")
	}
}
