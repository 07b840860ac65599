// Package engine provides chess move generation, check detection and move
// application over chess.Position values.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PseudoLegalMoves returns the destinations the piece on from could reach by
// its movement and capture rules, ignoring whether its own king would be left
// in check. An empty square yields no moves.
func PseudoLegalMoves(pos *chess.Position, from chess.Square) []chess.Square {
	piece := pos.Board.Get(from)

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(pos, from, piece)
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return pieceMoves(&pos.Board, from, piece)
	case chess.King:
		moves := stepMoves(&pos.Board, from, piece.Side, kingOffsets)
		return append(moves, castlingMoves(pos, from, piece)...)
	case chess.NoPiece:
		return nil
	}
	return nil
}

// pieceMoves generates moves for knights and sliding pieces. These never
// depend on castling or en-passant state, so check detection can use them
// directly as attack sets.
func pieceMoves(board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	switch piece.Kind {
	case chess.Knight:
		return stepMoves(board, from, piece.Side, knightOffsets)
	case chess.Bishop:
		return slidingMoves(board, from, piece.Side, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, from, piece.Side, straightDirs)
	case chess.Queen:
		return slidingMoves(board, from, piece.Side, queenDirs)
	}
	return nil
}
