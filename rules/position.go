package rules

import (
	"encoding/json"
	"fmt"
)

// Placement pairs a square with the piece standing on it. A list of
// placements is how boards cross a serialization boundary.
type Placement struct {
	Square Square `json:"square"`
	Piece  Piece  `json:"piece"`
}

// FromPlacements builds a board from a list of placements. Later entries
// overwrite earlier ones on the same square.
func FromPlacements(ps []Placement) (Board, error) {
	var b Board
	for _, pl := range ps {
		if pl.Piece.IsNone() {
			return Board{}, fmt.Errorf("placement on %s has no piece type", pl.Square)
		}
		if err := b.Set(pl.Square, pl.Piece); err != nil {
			return Board{}, err
		}
	}
	return b, nil
}

// Placements lists the occupied squares in rank-major order from a1.
func (b *Board) Placements() []Placement {
	var ps []Placement
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if p := b.cells[r][f]; !p.IsNone() {
				ps = append(ps, Placement{Square: Sq(f, r), Piece: p})
			}
		}
	}
	return ps
}

// MarshalJSON encodes the board as its placement list.
func (b Board) MarshalJSON() ([]byte, error) {
	ps := b.Placements()
	if ps == nil {
		ps = []Placement{}
	}
	return json.Marshal(ps)
}

// UnmarshalJSON decodes a placement list with the rules of FromPlacements.
func (b *Board) UnmarshalJSON(data []byte) error {
	var ps []Placement
	if err := json.Unmarshal(data, &ps); err != nil {
		return err
	}
	nb, err := FromPlacements(ps)
	if err != nil {
		return err
	}
	*b = nb
	return nil
}

var backRankOrder = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard initial arrangement.
func StartingBoard() Board {
	var b Board
	for f, pt := range backRankOrder {
		b.put(Sq(f, 0), Piece{Type: pt, Color: White})
		b.put(Sq(f, 1), Piece{Type: Pawn, Color: White})
		b.put(Sq(f, 6), Piece{Type: Pawn, Color: Black})
		b.put(Sq(f, 7), Piece{Type: pt, Color: Black})
	}
	return b
}
