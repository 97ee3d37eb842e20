package board_test

import (
	"sort"
	"testing"

	"chess-arena/board"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
)

func moveStrings(ms *board.MoveSet) []string {
	var out []string
	ms.EachMove(func(m board.Move) bool {
		out = append(out, m.String())
		return true
	})
	sort.Strings(out)
	return out
}

func TestMoveGenerationInitial(t *testing.T) {
	b := mustFEN(t, board.FENStartPos)
	ms := board.Generate(b)
	if got := ms.Count(); got != 20 {
		t.Fatalf("initial position: expected 20 moves, got %d: %v", got, moveStrings(&ms))
	}
	// 8 pawns + 2 knights can move.
	if ms.Len() != 10 {
		t.Errorf("expected 10 moving pieces, got %d", ms.Len())
	}

	black := board.GenerateFor(b, board.Black)
	if black.Count() != 20 {
		t.Errorf("black also has 20 moves, got %d", black.Count())
	}
}

func TestRookOnEmptyBoard(t *testing.T) {
	b := mustFEN(t, "8/8/8/8/3R4/8/8/8 w")
	ms := board.Generate(b)
	dst := ms.Destinations(sq(t, "d4"))
	if dst.Count() != 14 {
		t.Fatalf("rook on d4: expected 14 destinations, got %d: %v", dst.Count(), dst.Positions())
	}
	if dst.Contains(sq(t, "d4")) {
		t.Fatalf("rook may not move onto its own square")
	}
}

func TestSlidersStopAtFirstBlocker(t *testing.T) {
	// Rook d4, own pawn d6, enemy knight f4.
	b := mustFEN(t, "8/8/3P4/8/3R1n2/8/8/8 w")
	dst := board.Generate(b).Destinations(sq(t, "d4"))
	for _, s := range []string{"d5", "e4", "f4", "d1", "a4"} {
		if !dst.Contains(sq(t, s)) {
			t.Errorf("rook should reach %s", s)
		}
	}
	for _, s := range []string{"d6", "d7", "g4", "h4"} {
		if dst.Contains(sq(t, s)) {
			t.Errorf("rook should not reach %s", s)
		}
	}

	// Bishop c1 with enemy on e3 and own piece on b2.
	b = mustFEN(t, "8/8/8/8/8/4p3/1P6/2B5 w")
	dst = board.Generate(b).Destinations(sq(t, "c1"))
	if got := dst.Positions(); len(got) != 2 || got[0].String() != "d2" || got[1].String() != "e3" {
		t.Errorf("bishop c1 destinations = %v, want [d2 e3]", got)
	}

	// Queen is the union of both patterns.
	b = mustFEN(t, "8/8/8/8/3Q4/8/8/8 w")
	if got := board.Generate(b).Destinations(sq(t, "d4")).Count(); got != 27 {
		t.Errorf("queen on d4: expected 27 destinations, got %d", got)
	}
}

func TestKnightAndKingOffsets(t *testing.T) {
	b := mustFEN(t, "8/8/8/8/8/8/8/N6K w")
	ms := board.Generate(b)
	if got := ms.Destinations(sq(t, "a1")).Count(); got != 2 {
		t.Errorf("knight a1: expected 2 destinations, got %d", got)
	}
	if got := ms.Destinations(sq(t, "h1")).Count(); got != 3 {
		t.Errorf("king h1: expected 3 destinations, got %d", got)
	}

	b = mustFEN(t, "8/8/8/8/4N3/8/8/8 w")
	if got := board.Generate(b).Destinations(sq(t, "e4")).Count(); got != 8 {
		t.Errorf("knight e4: expected 8 destinations, got %d", got)
	}
}

func TestPawnMoves(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"single and double push", "8/8/8/8/8/8/4P3/8 w", "e2", []string{"e3", "e4"}},
		{"double push blocked on far square", "8/8/8/8/4n3/8/4P3/8 w", "e2", []string{"e3"}},
		{"push blocked on near square", "8/8/8/8/8/4n3/4P3/8 w", "e2", nil},
		{"no double push off start rank", "8/8/8/8/8/4P3/8/8 w", "e3", []string{"e4"}},
		{"captures only enemies", "8/8/8/8/8/3p1P2/4P3/8 w", "e2", []string{"d3", "e3", "e4"}},
		{"no capture wrap on a-file", "8/8/8/8/8/1p5p/P7/8 w", "a2", []string{"a3", "a4", "b3"}},
		{"black pushes down", "8/4p3/8/8/8/8/8/8 b", "e7", []string{"e5", "e6"}},
		{"black captures", "8/8/8/3p4/2P1P3/8/8/8 b", "d5", []string{"c4", "d4", "e4"}},
		{"last rank pawn is stuck", "4P3/8/8/8/8/8/8/8 w", "e8", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustFEN(t, tc.fen)
			got := board.Generate(b).Destinations(sq(t, tc.from)).Positions()
			if len(got) != len(tc.want) {
				t.Fatalf("destinations = %v, want %v", got, tc.want)
			}
			var names []string
			for _, p := range got {
				names = append(names, p.String())
			}
			sort.Strings(names)
			for i := range names {
				if names[i] != tc.want[i] {
					t.Fatalf("destinations = %v, want %v", names, tc.want)
				}
			}
		})
	}
}

func TestBoxedInKingHasNoMoves(t *testing.T) {
	// White king on h8 walled in by its own pawns; the g8 pawn is on the
	// last rank and the others are blocked by it and the king.
	b := mustFEN(t, "6PK/6PP/8/8/8/8/8/k7 w")
	ms := board.Generate(b)
	if !ms.IsEmpty() {
		t.Fatalf("expected no moves, got %v", moveStrings(&ms))
	}
	if ms.Count() != 0 || !ms.AllDestinations().IsEmpty() {
		t.Fatalf("empty move set should have no destinations")
	}
	if _, ok := ms.Nth(0); ok {
		t.Fatalf("Nth(0) on an empty set should fail")
	}
	if board.CanCaptureKing(b) {
		t.Fatalf("no move is not the same as a king capture")
	}
}

func TestCanCaptureKing(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/4R1K1 w")
	if !board.CanCaptureKing(b) {
		t.Fatalf("rook on e1 should reach the king on e8")
	}
	if board.CanReach(b, board.Black, sq(t, "g1")) {
		t.Fatalf("black king cannot reach g1")
	}
	blocked := mustFEN(t, "4k3/8/8/4p3/8/8/8/4R1K1 w")
	if board.CanCaptureKing(blocked) {
		t.Fatalf("pawn on e5 blocks the rook")
	}
	if !board.Reachable(blocked, board.White).Contains(sq(t, "e5")) {
		t.Fatalf("rook should reach the pawn on e5")
	}
}

func TestPerftInitialPosition(t *testing.T) {
	b := board.NewBoard()
	for depth, want := range []uint64{1, 20, 400, 8902} {
		if got := board.Perft(b, depth); got != want {
			t.Fatalf("perft depth %d: got %d want %d", depth, got, want)
		}
	}
	div := board.PerftDivide(b, 2)
	if len(div) != 20 || div[mustMove(t, "e2e4")] != 20 {
		t.Fatalf("PerftDivide(2) = %v", div)
	}
}

// These positions have no castling rights, no en passant square and no pawn
// about to promote, where pseudo-legal generation is shared with GooseEngineMG.
var differentialFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 2 3",
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b - - 2 3",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 b - - 0 10",
}

func TestPseudoLegalGenerationMatchesGooseEngine(t *testing.T) {
	for _, fen := range differentialFENs {
		ref, err := goosemg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("goosemg.ParseFEN(%q): %v", fen, err)
		}
		var want []string
		for _, m := range ref.GeneratePseudoMoves() {
			want = append(want, board.Move{Src: board.Pos(m.From()), Dst: board.Pos(m.To())}.String())
		}
		sort.Strings(want)

		ms := board.Generate(mustFEN(t, fen))
		got := moveStrings(&ms)
		if len(got) != len(want) {
			t.Fatalf("%s: got %d moves, reference %d\n got: %v\nwant: %v", fen, len(got), len(want), got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("%s: move lists differ at %d: %s vs %s", fen, i, got[i], want[i])
			}
		}
	}
}
