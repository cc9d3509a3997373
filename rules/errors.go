package rules

import "errors"

var (
	// ErrOutOfBounds is returned by writes to a square outside the 8x8 grid.
	ErrOutOfBounds = errors.New("square out of bounds")
	// ErrNoPieceAtSource is returned when asked to move from an empty square.
	ErrNoPieceAtSource = errors.New("no piece at source square")
	// ErrInvalidFEN wraps every ParseFEN failure; the message names the field.
	ErrInvalidFEN = errors.New("invalid FEN")
)
