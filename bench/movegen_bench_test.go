package bench

import (
	"testing"

	"chess-arena/board"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
)

const (
	fenKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w"
	fenPos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w"
)

func benchGenerate(b *testing.B, fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ms := board.Generate(pos)
		_ = ms.Count()
	}
}

func BenchmarkGenerate_Initial(b *testing.B)  { benchGenerate(b, board.FENStartPos) }
func BenchmarkGenerate_Kiwipete(b *testing.B) { benchGenerate(b, fenKiwipete) }
func BenchmarkGenerate_Pos6(b *testing.B)     { benchGenerate(b, fenPos6) }

// Same positions through GooseEngineMG's pseudo-legal generator, as a baseline.
func benchGooseGenerate(b *testing.B, fen string) {
	pos, err := goosemg.ParseFEN(fen + " - - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]goosemg.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.GeneratePseudoMovesInto(buf)
		buf = buf[:0]
	}
}

func BenchmarkGooseGenerate_Initial(b *testing.B)  { benchGooseGenerate(b, board.FENStartPos) }
func BenchmarkGooseGenerate_Kiwipete(b *testing.B) { benchGooseGenerate(b, fenKiwipete) }

func BenchmarkPlayAllMoves_Initial(b *testing.B) {
	pos := board.NewBoard()
	ms := board.Generate(pos)
	moves := ms.Moves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			_ = pos.MustPlay(m)
		}
	}
}

func BenchmarkReachable_Kiwipete(b *testing.B) {
	pos := board.MustParseFEN(fenKiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.CanCaptureKing(pos)
	}
}
