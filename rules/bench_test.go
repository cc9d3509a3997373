package rules_test

import (
	"testing"

	"chess-rules/rules"
)

func benchPerft(b *testing.B, fen string, depth int) {
	pos := mustParse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rules.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D3(b *testing.B) {
	benchPerft(b, rules.FENStartPos, 3)
}

func BenchmarkPerft_Kiwipete_D2(b *testing.B) {
	benchPerft(b, kiwipete, 2)
}

func benchLegalMoves(b *testing.B, fen string) {
	pos := mustParse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.LegalMoves()
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, rules.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	benchLegalMoves(b, kiwipete)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	benchLegalMoves(b, "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")
}

func BenchmarkIsSquareAttacked(b *testing.B) {
	pos := mustParse(b, kiwipete)
	target := sq(4, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.Board.IsSquareAttacked(target, rules.Black)
	}
}

func BenchmarkApplyMove(b *testing.B) {
	pos := rules.StartingPosition()
	m := rules.Move{From: sq(4, 1), To: sq(4, 3)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rules.ApplyMove(pos.Board, pos.State, m); err != nil {
			b.Fatal(err)
		}
	}
}
