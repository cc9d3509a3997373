package rules

// Direction offsets as (file, rank) deltas.
var (
	straightDirs  = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// rayMoves walks each direction until the edge or the first occupied square,
// which is included only when it holds an enemy piece.
func (b *Board) rayMoves(from Square, c Color, dirs [4][2]int, dst []Move) []Move {
	for _, d := range dirs {
		for to := from.offset(d[0], d[1]); to.Valid(); to = to.offset(d[0], d[1]) {
			occ := b.Get(to)
			if occ.IsNone() {
				dst = append(dst, Move{From: from, To: to})
				continue
			}
			if occ.Color != c {
				dst = append(dst, Move{From: from, To: to, Flags: FlagCapture})
			}
			break
		}
	}
	return dst
}

// stepMoves filters a fixed offset set by bounds and own-color occupancy.
func (b *Board) stepMoves(from Square, c Color, offsets [8][2]int) []Move {
	var res []Move
	for _, o := range offsets {
		to := from.offset(o[0], o[1])
		if !to.Valid() {
			continue
		}
		occ := b.Get(to)
		switch {
		case occ.IsNone():
			res = append(res, Move{From: from, To: to})
		case occ.Color != c:
			res = append(res, Move{From: from, To: to, Flags: FlagCapture})
		}
	}
	return res
}

// RookMoves returns pseudo-legal orthogonal moves for a rook of color c on from.
func (b *Board) RookMoves(from Square, c Color) []Move {
	return b.rayMoves(from, c, straightDirs, nil)
}

// BishopMoves returns pseudo-legal diagonal moves for a bishop of color c on from.
func (b *Board) BishopMoves(from Square, c Color) []Move {
	return b.rayMoves(from, c, diagonalDirs, nil)
}

// QueenMoves is the union of RookMoves and BishopMoves, rook moves first.
func (b *Board) QueenMoves(from Square, c Color) []Move {
	return b.rayMoves(from, c, diagonalDirs, b.RookMoves(from, c))
}

// KnightMoves returns the knight jumps from from; blockers are ignored.
func (b *Board) KnightMoves(from Square, c Color) []Move {
	return b.stepMoves(from, c, knightOffsets)
}

// KingMoves returns the one-step king moves. Castling is added by PseudoMoves.
func (b *Board) KingMoves(from Square, c Color) []Move {
	return b.stepMoves(from, c, kingOffsets)
}

// PawnMoves returns pushes and diagonal captures for a pawn of color c.
// Promotion and en passant are added by PseudoMoves.
func (b *Board) PawnMoves(from Square, c Color) []Move {
	var res []Move
	dir := c.forward()
	one := from.offset(0, dir)
	if one.Valid() && b.Get(one).IsNone() {
		res = append(res, Move{From: from, To: one})
		two := from.offset(0, 2*dir)
		if from.Rank == c.pawnRank() && b.Get(two).IsNone() {
			res = append(res, Move{From: from, To: two})
		}
	}
	for _, df := range [2]int{-1, 1} {
		to := from.offset(df, dir)
		if !to.Valid() {
			continue
		}
		if occ := b.Get(to); !occ.IsNone() && occ.Color != c {
			res = append(res, Move{From: from, To: to, Flags: FlagCapture})
		}
	}
	return res
}
