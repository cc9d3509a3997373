package rules

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid of pieces indexed [rank][file]. It is a plain value:
// assigning or returning a Board copies every cell.
type Board struct {
	cells [8][8]Piece
}

// Get returns the piece on sq, or NoPiece when sq is empty or off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.cells[sq.Rank][sq.File]
}

// Set overwrites the cell at sq. Pass NoPiece to clear it.
func (b *Board) Set(sq Square, p Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("set %d,%d: %w", sq.File, sq.Rank, ErrOutOfBounds)
	}
	b.cells[sq.Rank][sq.File] = p
	return nil
}

// clear empties a square known to be on the board.
func (b *Board) clear(sq Square) { b.cells[sq.Rank][sq.File] = NoPiece }

// put places a piece on a square known to be on the board.
func (b *Board) put(sq Square, p Piece) { b.cells[sq.Rank][sq.File] = p }

// Clone returns an independent copy of the board.
func (b *Board) Clone() Board { return *b }

// MovePiece relocates the piece at m.From to m.To with no legality checks.
// An en passant move also removes the pawn it passed. Castling rook moves
// and promotion are not handled here; see ApplyMove.
func (b *Board) MovePiece(m Move) error {
	if !m.From.Valid() || !m.To.Valid() {
		return fmt.Errorf("move %s: %w", m, ErrOutOfBounds)
	}
	p := b.Get(m.From)
	if p.IsNone() {
		return fmt.Errorf("move %s: %w", m, ErrNoPieceAtSource)
	}
	b.clear(m.From)
	if m.Has(FlagEnPassant) {
		if behind := m.To.offset(0, -p.Color.forward()); behind.Valid() {
			b.clear(behind)
		}
	}
	b.put(m.To, p)
	return nil
}

// KingSquare scans the board for the king of color c.
func (b *Board) KingSquare(c Color) (Square, bool) {
	king := Piece{Type: King, Color: c}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if b.cells[r][f] == king {
				return Square{File: f, Rank: r}, true
			}
		}
	}
	return NoSquare, false
}

// Draw returns an ASCII diagram with rank 8 at the top, useful for debugging.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 7; r >= 0; r-- {
		sb.WriteByte('1' + byte(r))
		for f := 0; f < 8; f++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.cells[r][f].fenChar())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the piece placement field of FEN.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.cells[r][f]
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.fenChar())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
