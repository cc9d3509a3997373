package rules

// LegalMoves returns the legal moves of the piece of color c on from. The
// result is empty, not an error, when from holds no piece of that color or
// the piece has no legal move.
//
// Each pseudo-legal candidate is tried on a clone of the board; it is kept
// only if a king of color c exists afterwards and is not attacked. Positions
// without such a king therefore yield no legal moves.
func LegalMoves(board Board, state RulesState, from Square, c Color) []Move {
	p := board.Get(from)
	if p.IsNone() || p.Color != c {
		return nil
	}
	var res []Move
	for _, m := range PseudoMoves(&board, state, from) {
		if leavesKingSafe(&board, m, c) {
			res = append(res, m)
		}
	}
	return res
}

// leavesKingSafe relocates m on a copy of board and reports whether the king
// of color c is then present and unattacked.
func leavesKingSafe(board *Board, m Move, c Color) bool {
	trial := board.Clone()
	if err := trial.MovePiece(m); err != nil {
		return false
	}
	ks, ok := trial.KingSquare(c)
	if !ok {
		return false
	}
	return !trial.IsSquareAttacked(ks, c.Opposite())
}

// AllLegalMoves returns the legal moves of every piece of color c, scanning
// squares rank by rank from a1. An empty result means c is checkmated or
// stalemated; telling the two apart is left to the caller (see InCheck).
func AllLegalMoves(board Board, state RulesState, c Color) []Move {
	var res []Move
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if p := board.cells[r][f]; p.IsNone() || p.Color != c {
				continue
			}
			res = append(res, LegalMoves(board, state, Sq(f, r), c)...)
		}
	}
	return res
}
