package rules

// PseudoMoves returns the moves of the piece on from that obey movement
// geometry and occupancy, including castling, en passant and promotion, but
// ignoring whether the mover's king is left attacked. The result is nil when
// from is empty. Callers must not depend on the order of the result.
func PseudoMoves(board *Board, state RulesState, from Square) []Move {
	p := board.Get(from)
	switch p.Type {
	case Rook:
		return board.RookMoves(from, p.Color)
	case Bishop:
		return board.BishopMoves(from, p.Color)
	case Queen:
		return board.QueenMoves(from, p.Color)
	case Knight:
		return board.KnightMoves(from, p.Color)
	case King:
		return appendCastles(board, state, from, p.Color, board.KingMoves(from, p.Color))
	case Pawn:
		moves := appendEnPassant(board, state, from, p.Color, board.PawnMoves(from, p.Color))
		return expandPromotions(moves, p.Color)
	}
	return nil
}

// appendCastles adds castling moves for a king of color c standing on from.
// The king may not castle out of, through, or (via the legality filter) into
// check, and the matching rook must still be in its corner.
func appendCastles(board *Board, state RulesState, from Square, c Color, moves []Move) []Move {
	back := c.backRank()
	if from != Sq(4, back) {
		return moves
	}
	rights := state.Castling.For(c)
	if !rights.K && !rights.Q {
		return moves
	}
	opp := c.Opposite()
	if board.IsSquareAttacked(from, opp) {
		return moves
	}
	rook := Piece{Type: Rook, Color: c}

	if rights.K && board.Get(Sq(7, back)) == rook &&
		board.emptyFiles(back, 5, 6) &&
		board.safeFiles(back, opp, 5, 6) {
		moves = append(moves, Move{From: from, To: Sq(6, back), Flags: FlagCastleK})
	}
	if rights.Q && board.Get(Sq(0, back)) == rook &&
		board.emptyFiles(back, 3, 2, 1) &&
		board.safeFiles(back, opp, 3, 2) {
		moves = append(moves, Move{From: from, To: Sq(2, back), Flags: FlagCastleQ})
	}
	return moves
}

func (b *Board) emptyFiles(rank int, files ...int) bool {
	for _, f := range files {
		if !b.Get(Sq(f, rank)).IsNone() {
			return false
		}
	}
	return true
}

func (b *Board) safeFiles(rank int, by Color, files ...int) bool {
	for _, f := range files {
		if b.IsSquareAttacked(Sq(f, rank), by) {
			return false
		}
	}
	return true
}

// appendEnPassant adds the en passant capture for a pawn of color c on from
// when the state's target is one of its diagonal destinations.
func appendEnPassant(board *Board, state RulesState, from Square, c Color, moves []Move) []Move {
	// The target must sit behind a pawn of the opponent that just double-pushed.
	opp := c.Opposite()
	if !state.HasEnPassant() || state.EnPassant.Rank != opp.pawnRank()+opp.forward() {
		return moves
	}
	dir := c.forward()
	for _, df := range [2]int{-1, 1} {
		to := from.offset(df, dir)
		if to != state.EnPassant || !board.Get(to).IsNone() {
			continue
		}
		victim := board.Get(to.offset(0, -dir))
		if victim.Type == Pawn && victim.Color != c {
			moves = append(moves, Move{From: from, To: to, Flags: FlagEnPassant | FlagCapture})
		}
	}
	return moves
}

// expandPromotions replaces each pawn move onto the last rank with one move
// per promotion piece.
func expandPromotions(moves []Move, c Color) []Move {
	last := c.Opposite().backRank()
	out := moves[:0:0]
	for _, m := range moves {
		if m.To.Rank != last {
			out = append(out, m)
			continue
		}
		for _, pt := range promotionTypes {
			pm := m
			pm.Promotion = pt
			pm.Flags |= FlagPromotion
			out = append(out, pm)
		}
	}
	return out
}
