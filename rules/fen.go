package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position bundles everything needed to continue a game.
type Position struct {
	Board      Board
	State      RulesState
	SideToMove Color
}

// StartingPosition returns the initial position with White to move.
func StartingPosition() Position {
	return Position{Board: StartingBoard(), State: InitialState(), SideToMove: White}
}

func fenError(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidFEN, field, fmt.Sprintf(format, args...))
}

// ParseFEN parses a FEN record. The halfmove and fullmove fields may be
// omitted and default to 0 and 1.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return Position{}, fenError("record", "want 4 to 6 fields, got %d", len(fields))
	}
	pos := Position{State: RulesState{EnPassant: NoSquare, FullmoveNumber: 1}}

	// 1. Piece placement, rank 8 first.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fenError("placement", "want 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := pieceFromFEN(ch)
			if p.IsNone() {
				return Position{}, fenError("placement", "unrecognized piece %q", ch)
			}
			if file >= 8 {
				return Position{}, fenError("placement", "rank %d overflows", rank+1)
			}
			pos.Board.put(Sq(file, rank), p)
			file++
		}
		if file != 8 {
			return Position{}, fenError("placement", "rank %d has %d files", rank+1, file)
		}
	}

	// 2. Side to move.
	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return Position{}, fenError("side", "want w or b, got %q", fields[1])
	}

	// 3. Castling rights.
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.State.Castling.White.K = true
			case 'Q':
				pos.State.Castling.White.Q = true
			case 'k':
				pos.State.Castling.Black.K = true
			case 'q':
				pos.State.Castling.Black.Q = true
			default:
				return Position{}, fenError("castling", "unexpected %q", ch)
			}
		}
	}

	// 4. En passant target.
	if fields[3] != "-" {
		sq, ok := parseSquare(fields[3])
		if !ok || (sq.Rank != 2 && sq.Rank != 5) {
			return Position{}, fenError("en passant", "bad square %q", fields[3])
		}
		pos.State.EnPassant = sq
	}

	// 5-6. Clocks.
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, fenError("halfmove", "not a non-negative number: %q", fields[4])
		}
		pos.State.HalfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, fenError("fullmove", "not a positive number: %q", fields[5])
		}
		pos.State.FullmoveNumber = n
	}
	return pos, nil
}

// FEN renders the position as a six-field FEN record.
func (p Position) FEN() string {
	var sb strings.Builder
	sb.WriteString(p.Board.String())

	if p.SideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	cr := p.State.Castling
	n := sb.Len()
	if cr.White.K {
		sb.WriteByte('K')
	}
	if cr.White.Q {
		sb.WriteByte('Q')
	}
	if cr.Black.K {
		sb.WriteByte('k')
	}
	if cr.Black.Q {
		sb.WriteByte('q')
	}
	if sb.Len() == n {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.State.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.State.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.State.FullmoveNumber))
	return sb.String()
}

// Play applies m for the side to move and returns the resulting position.
func (p Position) Play(m Move) (Position, Piece, error) {
	res, err := ApplyMove(p.Board, p.State, m)
	if err != nil {
		return Position{}, NoPiece, err
	}
	return Position{Board: res.Board, State: res.State, SideToMove: p.SideToMove.Opposite()}, res.Captured, nil
}

// LegalMoves returns every legal move for the side to move.
func (p Position) LegalMoves() []Move {
	return AllLegalMoves(p.Board, p.State, p.SideToMove)
}
