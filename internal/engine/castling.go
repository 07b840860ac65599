package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingMoves returns the king destinations for every castling move
// currently available. The king may not castle out of check, through an
// attacked square, or into check.
func castlingMoves(pos *chess.Position, from chess.Square, king chess.Piece) []chess.Square {
	if king.HasMoved || from != chess.KingHome(king.Side) {
		return nil
	}

	var moves []chess.Square
	for _, kingside := range []bool{true, false} {
		if canCastle(pos, king.Side, kingside) {
			moves = append(moves, castleKingTarget(king.Side, kingside))
		}
	}
	return moves
}

// canCastle checks every castling condition for one side and wing.
func canCastle(pos *chess.Position, side chess.Side, kingside bool) bool {
	if !pos.Castling.Has(chess.CastlingRight(side, kingside)) {
		return false
	}

	kingSq := chess.KingHome(side)
	rookSq := chess.RookHome(side, kingside)
	rook := pos.Board.Get(rookSq)
	if !rook.Is(side, chess.Rook) || rook.HasMoved {
		return false
	}
	if !isPathClear(&pos.Board, kingSq, rookSq) {
		return false
	}

	// Start, transit and destination squares must all be safe.
	step := sign(rookSq.Col - kingSq.Col)
	enemy := side.Opposite()
	for i := 0; i <= 2; i++ {
		if SquareAttacked(pos, kingSq.Offset(0, i*step), enemy) {
			return false
		}
	}
	return true
}

// castleKingTarget returns the square the king lands on when castling.
func castleKingTarget(side chess.Side, kingside bool) chess.Square {
	if kingside {
		return chess.KingHome(side).Offset(0, 2)
	}
	return chess.KingHome(side).Offset(0, -2)
}

// applyCastleRook moves the rook that accompanies a two-column king move and
// returns the castle class. The rook ends beside the king's destination on
// the side it came from.
func applyCastleRook(board *chess.Board, kingFrom, kingTo chess.Square) chess.MoveClass {
	kingside := kingTo.Col > kingFrom.Col
	side := board.Get(kingFrom).Side
	rookFrom := chess.RookHome(side, kingside)
	rookTo := kingTo.Offset(0, -sign(kingTo.Col-kingFrom.Col))

	rook := board.Clear(rookFrom)
	rook.HasMoved = true
	board.Set(rookTo, rook)

	if kingside {
		return chess.KingsideCastle
	}
	return chess.QueensideCastle
}

// revokeCastlingRights removes the rights a move invalidates: any king move
// loses both of that side's rights, a rook leaving its home square loses its
// right, and capturing a rook on its home square removes the opponent's right.
func revokeCastlingRights(rights chess.CastlingRights, move chess.AppliedMove) chess.CastlingRights {
	switch move.Piece.Kind {
	case chess.King:
		rights = rights.Revoke(chess.SideRights(move.Piece.Side))
	case chess.Rook:
		rights = rights.Revoke(rookRight(move.Piece.Side, move.From))
	}

	if move.Captured.Kind == chess.Rook {
		rights = rights.Revoke(rookRight(move.Captured.Side, move.CapturedOn))
	}
	return rights
}

// rookRight returns the castling right tied to a rook home square, or none.
func rookRight(side chess.Side, sq chess.Square) chess.CastlingRights {
	switch sq {
	case chess.RookHome(side, true):
		return chess.CastlingRight(side, true)
	case chess.RookHome(side, false):
		return chess.CastlingRight(side, false)
	}
	return chess.NoCastlingRights
}
