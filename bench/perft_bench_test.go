package bench

import (
	"testing"

	"chess-arena/board"
)

func benchPerft(b *testing.B, fen string, depth int) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, fenKiwipete, 3)
}
