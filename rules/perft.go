package rules

// Perft counts the leaf nodes of the legal move tree of the given depth.
// It exercises generation, legality filtering and ApplyMove together and is
// compared against published node counts.
func Perft(pos Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next, _, err := pos.Play(m)
		if err != nil {
			// Generated moves always start on an occupied square.
			panic(err)
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move's coordinate form.
func PerftDivide(pos Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range pos.LegalMoves() {
		next, _, err := pos.Play(m)
		if err != nil {
			panic(err)
		}
		result[m.String()] = Perft(next, depth-1)
	}
	return result
}
