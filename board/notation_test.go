package board_test

import (
	"testing"

	"chess-arena/board"
)

func TestSAN(t *testing.T) {
	cases := []struct {
		fen, move, want string
	}{
		{board.FENStartPos, "e2e4", "e2e4"},
		{board.FENStartPos, "g1f3", "Ng1f3"},
		{"4k3/8/8/8/8/8/3p4/4R1K1 w", "e1e7", "Re1e7+"},
		{"4k3/8/8/8/8/8/8/3pK3 w", "e1d1", "Ke1xd1"},
		{"4k3/8/8/8/8/2p5/1P6/4K3 w", "b2c3", "b2xc3"},
		{"4k3/8/8/8/8/8/8/4R1K1 w", "e1e8", "Re1xe8"},
	}
	for _, tc := range cases {
		b := mustFEN(t, tc.fen)
		if got := board.SAN(b, mustMove(t, tc.move)); got != tc.want {
			t.Errorf("SAN(%s, %s) = %q, want %q", tc.fen, tc.move, got, tc.want)
		}
	}
}

func TestSANFallsBackForUnplayableMoves(t *testing.T) {
	if got := board.SAN(board.NewBoard(), mustMove(t, "e4e5")); got != "e4e5" {
		t.Fatalf("SAN of an empty-square move = %q", got)
	}
}
