package rules

import (
	"encoding/json"
	"fmt"
)

// SideRights holds one color's castling rights.
type SideRights struct {
	K bool `json:"K"` // king side
	Q bool `json:"Q"` // queen side
}

// CastlingRights holds both colors' castling rights.
type CastlingRights struct {
	White SideRights `json:"white"`
	Black SideRights `json:"black"`
}

// For returns the rights of color c.
func (cr CastlingRights) For(c Color) SideRights {
	if c == White {
		return cr.White
	}
	return cr.Black
}

func (cr *CastlingRights) side(c Color) *SideRights {
	if c == White {
		return &cr.White
	}
	return &cr.Black
}

// RulesState is the per-turn game state that is not visible on the board.
// It is a plain value; ApplyMove always returns a new one. Start a game from
// InitialState or ParseFEN rather than a literal: the zero Square in
// EnPassant is a1, which is never a target and is treated as none.
type RulesState struct {
	Castling CastlingRights `json:"castling"`
	// EnPassant is the square skipped by the previous double pawn push, or NoSquare.
	EnPassant      Square `json:"enPassantTarget"`
	HalfmoveClock  int    `json:"halfmoveClock"`
	FullmoveNumber int    `json:"fullmoveNumber"`
}

// HasEnPassant reports whether an en passant capture target is set. Only
// squares on rank 3 or 6 can be skipped by a double push; anything else,
// including the zero Square, counts as no target.
func (s RulesState) HasEnPassant() bool {
	return s.EnPassant.Valid() && (s.EnPassant.Rank == 2 || s.EnPassant.Rank == 5)
}

// UnmarshalJSON decodes a state. Omitted fields take their InitialState
// values for the en passant target and fullmove number, and are empty
// otherwise.
func (s *RulesState) UnmarshalJSON(data []byte) error {
	type plain RulesState
	v := plain{EnPassant: NoSquare, FullmoveNumber: 1}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = RulesState(v)
	return nil
}

// InitialState returns the state of a new game.
func InitialState() RulesState {
	return RulesState{
		Castling: CastlingRights{
			White: SideRights{K: true, Q: true},
			Black: SideRights{K: true, Q: true},
		},
		EnPassant:      NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}

// Result is the outcome of ApplyMove.
type Result struct {
	Board    Board      `json:"board"`
	State    RulesState `json:"state"`
	Captured Piece      `json:"captured"` // NoPiece (null) when nothing was captured
}

// ApplyMove plays m and returns the next board and state. The inputs are not
// modified. The move is trusted: it must come from LegalMoves, otherwise the
// result is structurally updated but not a legal chess position.
func ApplyMove(board Board, state RulesState, m Move) (Result, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return Result{}, fmt.Errorf("apply %s: %w", m, ErrOutOfBounds)
	}
	piece := board.Get(m.From)
	if piece.IsNone() {
		return Result{}, fmt.Errorf("apply %s: %w", m, ErrNoPieceAtSource)
	}

	next := board.Clone()
	var captured Piece
	if m.Has(FlagEnPassant) {
		capSq := m.To.offset(0, -piece.Color.forward())
		captured = next.Get(capSq)
		if capSq.Valid() {
			next.clear(capSq)
		}
	} else {
		captured = next.Get(m.To)
	}

	next.clear(m.From)
	moved := piece
	if m.Promotion != NoPieceType && piece.Type == Pawn {
		moved = Piece{Type: m.Promotion, Color: piece.Color}
	}
	next.put(m.To, moved)

	if m.IsCastle() {
		back := piece.Color.backRank()
		rookFrom, rookTo := Sq(7, back), Sq(5, back)
		if m.Has(FlagCastleQ) {
			rookFrom, rookTo = Sq(0, back), Sq(3, back)
		}
		if rook := next.Get(rookFrom); rook.Type == Rook {
			next.clear(rookFrom)
			next.put(rookTo, rook)
		}
	}

	ns := state
	revokeRights(&ns.Castling, piece.Color, m.From, m.To)

	ns.EnPassant = NoSquare
	if isDoublePush(piece, m.From, m.To) {
		ns.EnPassant = m.From.offset(0, piece.Color.forward())
	}

	if piece.Type == Pawn || !captured.IsNone() {
		ns.HalfmoveClock = 0
	} else {
		ns.HalfmoveClock++
	}
	if piece.Color == Black {
		ns.FullmoveNumber++
	}

	return Result{Board: next, State: ns, Captured: captured}, nil
}

// revokeRights clears castling rights affected by a piece of color c leaving
// from and landing on to. Rights are only ever cleared.
func revokeRights(cr *CastlingRights, c Color, from, to Square) {
	own := cr.side(c)
	if back := c.backRank(); from.Rank == back {
		switch from.File {
		case 4:
			own.K, own.Q = false, false
		case 7:
			own.K = false
		case 0:
			own.Q = false
		}
	}

	// Landing on the opponent's rook corner captures (or follows the
	// capture of) its unmoved rook.
	opp := c.Opposite()
	theirs := cr.side(opp)
	if to.Rank == opp.backRank() {
		switch to.File {
		case 7:
			theirs.K = false
		case 0:
			theirs.Q = false
		}
	}
}

func isDoublePush(p Piece, from, to Square) bool {
	return p.Type == Pawn &&
		from.File == to.File &&
		from.Rank == p.Color.pawnRank() &&
		to.Rank == from.Rank+2*p.Color.forward()
}
