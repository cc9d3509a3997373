package rules

import (
	"fmt"
	"strings"
)

// MoveFlag marks the special properties of a generated move.
type MoveFlag uint8

const (
	FlagCapture MoveFlag = 1 << iota
	FlagEnPassant
	FlagCastleK
	FlagCastleQ
	FlagPromotion

	FlagNone MoveFlag = 0
)

var moveFlagNames = []struct {
	flag MoveFlag
	name string
}{
	{FlagCapture, "capture"},
	{FlagEnPassant, "enPassant"},
	{FlagCastleK, "castleK"},
	{FlagCastleQ, "castleQ"},
	{FlagPromotion, "promotion"},
}

func (f MoveFlag) String() string {
	var parts []string
	for _, n := range moveFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// MarshalText writes the flag names joined by "|", e.g. "capture|enPassant".
func (f MoveFlag) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *MoveFlag) UnmarshalText(text []byte) error {
	var out MoveFlag
	if len(text) > 0 {
	next:
		for _, part := range strings.Split(string(text), "|") {
			for _, n := range moveFlagNames {
				if n.name == part {
					out |= n.flag
					continue next
				}
			}
			return fmt.Errorf("unknown move flag %q", part)
		}
	}
	*f = out
	return nil
}

// Move is a relocation from one square to another. Flags are set by the
// generator and trusted by ApplyMove.
type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
	Flags     MoveFlag  `json:"flags,omitempty"`
}

// Has reports whether every bit of f is set on the move.
func (m Move) Has(f MoveFlag) bool { return m.Flags&f == f }

// IsCastle reports whether the move castles to either side.
func (m Move) IsCastle() bool { return m.Flags&(FlagCastleK|FlagCastleQ) != 0 }

// String produces coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(Piece{Type: m.Promotion, Color: Black}.fenChar())
	}
	return s
}
