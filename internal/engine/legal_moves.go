package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the pseudo-legal destinations of the piece on from that
// do not leave its own king in check. It does not look at whose turn it is;
// Game.LegalMoves adds that restriction.
func LegalMoves(pos *chess.Position, from chess.Square) []chess.Square {
	pseudo := PseudoLegalMoves(pos, from)
	if len(pseudo) == 0 {
		return nil
	}

	legal := pseudo[:0]
	for _, to := range pseudo {
		if !movePutsOwnKingInCheck(pos, from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// movePutsOwnKingInCheck plays the move on a copy of the position and asks
// whether the mover's king is attacked afterwards. pos itself is untouched,
// so every probe starts from the same state.
func movePutsOwnKingInCheck(pos *chess.Position, from, to chess.Square) bool {
	side := pos.Board.Get(from).Side
	probe := *pos
	applyMove(&probe, from, to)
	return IsInCheck(&probe, side)
}

// AllLegalMoves returns every legal move of the side to move, ordered by
// origin square from a1 to h8.
func AllLegalMoves(pos *chess.Position) []chess.MovePair {
	var moves []chess.MovePair
	for _, from := range pos.Board.Occupied(pos.ToMove) {
		for _, to := range LegalMoves(pos, from) {
			moves = append(moves, chess.MovePair{From: from, To: to})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given side has at least one legal move.
func HasLegalMoves(pos *chess.Position, side chess.Side) bool {
	for _, from := range pos.Board.Occupied(side) {
		for _, to := range PseudoLegalMoves(pos, from) {
			if !movePutsOwnKingInCheck(pos, from, to) {
				return true
			}
		}
	}
	return false
}
