package rules

import (
	"encoding/json"
	"fmt"
)

// Color is the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the rank delta a pawn of this color advances by.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// backRank is rank 0 for White and rank 7 for Black.
func (c Color) backRank() int {
	if c == White {
		return 0
	}
	return 7
}

// pawnRank is the rank pawns of this color start on.
func (c Color) pawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q", text)
	}
	return nil
}

// PieceType is a colorless piece kind. NoPieceType marks an empty square or
// a move without promotion.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var pieceTypeNames = [...]string{
	NoPieceType: "",
	King:        "king",
	Queen:       "queen",
	Rook:        "rook",
	Bishop:      "bishop",
	Knight:      "knight",
	Pawn:        "pawn",
}

func (pt PieceType) String() string {
	if int(pt) < len(pieceTypeNames) {
		return pieceTypeNames[pt]
	}
	return fmt.Sprintf("piece(%d)", pt)
}

func (pt PieceType) MarshalText() ([]byte, error) { return []byte(pt.String()), nil }

func (pt *PieceType) UnmarshalText(text []byte) error {
	for i, name := range pieceTypeNames {
		if name == string(text) {
			*pt = PieceType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece type %q", text)
}

// promotionTypes lists what a pawn may become, strongest first.
var promotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// Piece is an immutable (type, color) pair. The zero value is NoPiece.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// NoPiece is the absent piece.
var NoPiece = Piece{}

// IsNone reports whether p is the absent piece.
func (p Piece) IsNone() bool { return p.Type == NoPieceType }

type pieceJSON Piece

// MarshalJSON encodes NoPiece as null.
func (p Piece) MarshalJSON() ([]byte, error) {
	if p.IsNone() {
		return []byte("null"), nil
	}
	return json.Marshal(pieceJSON(p))
}

func (p *Piece) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = NoPiece
		return nil
	}
	var v pieceJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Piece(v)
	return nil
}

// fenChar is the FEN letter for the piece, uppercase for White.
func (p Piece) fenChar() byte {
	var ch byte
	switch p.Type {
	case King:
		ch = 'k'
	case Queen:
		ch = 'q'
	case Rook:
		ch = 'r'
	case Bishop:
		ch = 'b'
	case Knight:
		ch = 'n'
	case Pawn:
		ch = 'p'
	default:
		return '.'
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// pieceFromFEN converts a FEN letter to a piece; NoPiece if unrecognized.
func pieceFromFEN(ch byte) Piece {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	var pt PieceType
	switch ch {
	case 'k':
		pt = King
	case 'q':
		pt = Queen
	case 'r':
		pt = Rook
	case 'b':
		pt = Bishop
	case 'n':
		pt = Knight
	case 'p':
		pt = Pawn
	default:
		return NoPiece
	}
	return Piece{Type: pt, Color: color}
}

func (p Piece) String() string {
	if p.IsNone() {
		return "none"
	}
	return p.Color.String() + " " + p.Type.String()
}

// Square is a (file, rank) coordinate. Rank 0 is White's back rank.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// NoSquare is the absent square, e.g. when no en passant target exists.
var NoSquare = Square{File: -1, Rank: -1}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square { return Square{File: file, Rank: rank} }

// Valid reports whether the square lies on the 8x8 board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// offset returns the square shifted by (df, dr); the result may be invalid.
func (s Square) offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns algebraic coordinates ("e4") or "-" for an off-board square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File), '1' + byte(s.Rank)})
}

// parseSquare reads algebraic coordinates such as "e3".
func parseSquare(str string) (Square, bool) {
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return NoSquare, false
	}
	return Square{File: int(str[0] - 'a'), Rank: int(str[1] - '1')}, true
}

type squareJSON Square

// MarshalJSON encodes off-board squares as null.
func (s Square) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(squareJSON(s))
}

func (s *Square) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoSquare
		return nil
	}
	var v squareJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Square(v)
	return nil
}
