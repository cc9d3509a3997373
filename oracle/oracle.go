// Package oracle computes reference perft counts with the dragontoothmg
// bitboard move generator. It is independent of package rules and is used to
// cross-check it.
package oracle

import (
	"github.com/dylhunn/dragontoothmg"
)

// Perft counts leaf nodes of the legal move tree below fen.
func Perft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return perft(&board, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

// Divide returns the perft count below each root move of fen, keyed by the
// lowercase coordinate form of the move ("e2e4", "a7a8q").
func Divide(fen string, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	board := dragontoothmg.ParseFen(fen)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		result[moveString(m)] = perft(&board, depth-1)
		unapply()
	}
	return result
}

// LegalMoves returns the coordinate form of every legal move in fen.
func LegalMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, moveString(m))
	}
	return out
}

// moveString renders m in the same coordinate form as rules.Move.String.
func moveString(m dragontoothmg.Move) string {
	from, to := m.From(), m.To()
	s := []byte{'a' + from%8, '1' + from/8, 'a' + to%8, '1' + to/8}
	switch m.Promote() {
	case dragontoothmg.Queen:
		s = append(s, 'q')
	case dragontoothmg.Rook:
		s = append(s, 'r')
	case dragontoothmg.Bishop:
		s = append(s, 'b')
	case dragontoothmg.Knight:
		s = append(s, 'n')
	}
	return string(s)
}
