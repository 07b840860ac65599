package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given side's king is attacked.
// A position without that king reports false.
func IsInCheck(pos *chess.Position, side chess.Side) bool {
	king, ok := findKing(&pos.Board, side)
	if !ok {
		return false // No king found
	}
	return SquareAttacked(pos, king, side.Opposite())
}

// findKing finds the king of the given side on the board.
func findKing(board *chess.Board, side chess.Side) (chess.Square, bool) {
	return board.Find(side, chess.King)
}

// SquareAttacked returns true if sq is in the attack set of any piece of
// the given side.
func SquareAttacked(pos *chess.Position, sq chess.Square, by chess.Side) bool {
	for _, from := range pos.Board.Occupied(by) {
		if containsSquare(AttackSet(pos, from), sq) {
			return true
		}
	}
	return false
}

// AttackSet returns the squares threatened by the piece on from.
//
// It differs from PseudoLegalMoves in two ways so that check detection never
// recurses into legality: a pawn attacks both diagonal-forward squares
// whether or not anything stands there, and a king attacks only its eight
// neighbours, never a castling destination.
func AttackSet(pos *chess.Position, from chess.Square) []chess.Square {
	piece := pos.Board.Get(from)

	switch piece.Kind {
	case chess.Pawn:
		return pawnAttacks(from, piece.Side)
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return pieceMoves(&pos.Board, from, piece)
	case chess.King:
		return stepMoves(&pos.Board, from, piece.Side, kingOffsets)
	case chess.NoPiece:
		return nil
	}
	return nil
}

// Attackers returns the squares of every piece of the given side attacking sq.
func Attackers(pos *chess.Position, sq chess.Square, by chess.Side) []chess.Square {
	var attackers []chess.Square
	for _, from := range pos.Board.Occupied(by) {
		if containsSquare(AttackSet(pos, from), sq) {
			attackers = append(attackers, from)
		}
	}
	return attackers
}
