package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pawn advances, captures and en-passant captures.
func pawnMoves(pos *chess.Position, from chess.Square, pawn chess.Piece) []chess.Square {
	var moves []chess.Square
	board := &pos.Board
	dir := pawn.Side.Forward()

	// Forward move
	one := from.Offset(dir, 0)
	if one.OnBoard() && board.IsEmpty(one) {
		moves = append(moves, one)

		// Double push from starting rank
		two := from.Offset(2*dir, 0)
		if from.Row == pawn.Side.PawnRank() && board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	// Captures
	for _, to := range pawnAttacks(from, pawn.Side) {
		target := board.Get(to)
		if !target.IsEmpty() && target.Side != pawn.Side {
			moves = append(moves, to)
			continue
		}
		if isEnPassantCapture(pos, from, to, pawn) {
			moves = append(moves, to)
		}
	}

	return moves
}

// pawnAttacks returns the two diagonal-forward squares of a pawn, whatever
// stands on them.
func pawnAttacks(from chess.Square, side chess.Side) []chess.Square {
	dir := side.Forward()
	attacks := make([]chess.Square, 0, 2)
	for _, dc := range []int{-1, 1} {
		if to := from.Offset(dir, dc); to.OnBoard() {
			attacks = append(attacks, to)
		}
	}
	return attacks
}

// isEnPassantCapture reports whether a pawn moving from -> to captures en
// passant: to must be the current target and the enemy pawn that just
// advanced two squares must stand beside the capturing pawn.
func isEnPassantCapture(pos *chess.Position, from, to chess.Square, pawn chess.Piece) bool {
	if pawn.Kind != chess.Pawn {
		return false
	}
	target, ok := pos.EnPassantTarget()
	if !ok || to != target || !pos.Board.IsEmpty(to) {
		return false
	}
	if to.Row != from.Row+pawn.Side.Forward() || abs(to.Col-from.Col) != 1 {
		return false
	}
	victim := pos.Board.Get(chess.Sq(from.Row, to.Col))
	return victim.Is(pawn.Side.Opposite(), chess.Pawn)
}

// isDoublePush reports whether a pawn move advances two squares.
func isDoublePush(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.Pawn && abs(to.Row-from.Row) == 2
}
