package rules

// IsSquareAttacked reports whether any piece of color by attacks target.
// This is pure attack geometry: the attacker's own king safety is ignored,
// and target may be empty or hold a piece of either color.
func (b *Board) IsSquareAttacked(target Square, by Color) bool {
	// Knights
	for _, o := range knightOffsets {
		if p := b.Get(target.offset(o[0], o[1])); p.Type == Knight && p.Color == by {
			return true
		}
	}

	// Kings
	for _, o := range kingOffsets {
		if p := b.Get(target.offset(o[0], o[1])); p.Type == King && p.Color == by {
			return true
		}
	}

	// Pawns attack diagonally forward, so look one rank back from the
	// attacker's point of view.
	back := -by.forward()
	for _, df := range [2]int{-1, 1} {
		if p := b.Get(target.offset(df, back)); p.Type == Pawn && p.Color == by {
			return true
		}
	}

	// Sliders: only the first piece along each ray matters.
	if b.rayHits(target, by, straightDirs, Rook) || b.rayHits(target, by, diagonalDirs, Bishop) {
		return true
	}
	return false
}

// rayHits reports whether the first piece along any of dirs from target is
// a slider of color by of type slider or a queen.
func (b *Board) rayHits(target Square, by Color, dirs [4][2]int, slider PieceType) bool {
	for _, d := range dirs {
		for sq := target.offset(d[0], d[1]); sq.Valid(); sq = sq.offset(d[0], d[1]) {
			p := b.Get(sq)
			if p.IsNone() {
				continue
			}
			if p.Color == by && (p.Type == slider || p.Type == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether the king of color c is attacked. A board without
// such a king is never in check.
func (b *Board) InCheck(c Color) bool {
	ks, ok := b.KingSquare(c)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(ks, c.Opposite())
}
