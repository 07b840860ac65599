package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove checks that from holds a piece of the side to move and that to
// is one of its legal destinations, then applies the move. On error the
// position is left unchanged.
func ApplyMove(pos *chess.Position, from, to chess.Square) (chess.AppliedMove, error) {
	if err := checkSelection(pos, from); err != nil {
		return chess.AppliedMove{}, err
	}
	if !to.OnBoard() {
		return chess.AppliedMove{}, &errors.MoveError{Err: errors.ErrInvalidSquare, From: from.String(), To: to.String()}
	}
	if !containsSquare(LegalMoves(pos, from), to) {
		return chess.AppliedMove{}, &errors.MoveError{Err: errors.ErrIllegalMove, From: from.String(), To: to.String()}
	}
	return applyMove(pos, from, to), nil
}

// checkSelection reports why from cannot be moved by the side to move, if so.
func checkSelection(pos *chess.Position, from chess.Square) error {
	if !from.OnBoard() {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, From: from.String()}
	}
	piece := pos.Board.Get(from)
	if piece.IsEmpty() {
		return &errors.MoveError{Err: errors.ErrEmptySquare, From: from.String()}
	}
	if piece.Side != pos.ToMove {
		return &errors.MoveError{Err: errors.ErrWrongSide, From: from.String()}
	}
	return nil
}

// applyMove performs a move without validating it and returns the record.
// Side effects happen in this order: castling rook, en-passant capture,
// en-passant target, capture bookkeeping, relocation, castling rights,
// promotion, clocks and turn.
func applyMove(pos *chess.Position, from, to chess.Square) chess.AppliedMove {
	board := &pos.Board
	piece := board.Get(from)
	side := piece.Side

	move := chess.AppliedMove{
		Class: chess.PieceMove,
		Piece: piece,
		From:  from,
		To:    to,
	}

	// Castling moves the rook as well
	if piece.Kind == chess.King && abs(to.Col-from.Col) == 2 {
		move.Class = applyCastleRook(board, from, to)
	}

	// Handle en passant capture: the victim is beside the origin, not on to
	if piece.Kind == chess.Pawn {
		move.Class = chess.PawnMove
		if isEnPassantCapture(pos, from, to, piece) {
			victim := chess.Sq(from.Row, to.Col)
			move.Captured = board.Clear(victim)
			move.CapturedOn = victim
			move.Class = chess.EnPassantPawnMove
		}
	}

	// Set en passant square if double pawn push
	if isDoublePush(piece, from, to) {
		pos.EnPassant = true
		pos.EPSquare = chess.Sq((from.Row+to.Row)/2, from.Col)
	} else {
		pos.ClearEnPassant()
	}

	if target := board.Get(to); !target.IsEmpty() {
		move.Captured = target
		move.CapturedOn = to
	}

	// Move the piece
	board.Clear(from)
	moved := piece
	moved.HasMoved = true
	board.Set(to, moved)

	pos.Castling = revokeCastlingRights(pos.Castling, move)

	// Handle promotion
	if piece.Kind == chess.Pawn && to.Row == side.PromotionRank() {
		board.Set(to, chess.Piece{Kind: chess.Queen, Side: side, HasMoved: true})
		move.Promotion = chess.Queen
		move.Class = chess.PawnMoveWithPromotion
	}

	// Pawn move or capture resets the clock
	if piece.Kind == chess.Pawn || move.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if side == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = side.Opposite()

	return move
}
