package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GameStatus summarizes the side to move's situation. It is derived from the
// position on demand; the engine never stores or enforces a terminal state.
type GameStatus int

const (
	InProgress GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.ToMove
	return IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.ToMove
	return !IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// Status classifies the position for the side to move.
func Status(pos *chess.Position) GameStatus {
	inCheck := IsInCheck(pos, pos.ToMove)
	hasMoves := HasLegalMoves(pos, pos.ToMove)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return InProgress
	}
}
