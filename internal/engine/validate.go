package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ValidatePosition checks that a position is one the engine can reason
// about and returns every problem found, or nil. Positions built by
// NewInitialPosition or reached by legal moves always pass.
func ValidatePosition(pos *chess.Position) error {
	var result *multierror.Error

	for _, side := range []chess.Side{chess.White, chess.Black} {
		if n := pos.Board.Count(side, chess.King); n != 1 {
			result = multierror.Append(result, fmt.Errorf("%s has %d kings, want 1", side, n))
		}
	}

	for col := 0; col < chess.BoardSize; col++ {
		for _, row := range []int{0, chess.BoardSize - 1} {
			sq := chess.Sq(row, col)
			if pos.Board.Get(sq).Kind == chess.Pawn {
				result = multierror.Append(result, fmt.Errorf("pawn on back rank %s", sq))
			}
		}
	}

	if IsInCheck(pos, pos.ToMove.Opposite()) {
		result = multierror.Append(result, fmt.Errorf("%s is in check but it is %s to move",
			pos.ToMove.Opposite(), pos.ToMove))
	}

	if err := validateCastlingRights(pos); err != nil {
		result = multierror.Append(result, err)
	}
	if err := validateEnPassant(pos); err != nil {
		result = multierror.Append(result, err)
	}

	if result == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errors.ErrInvalidPosition, result)
}

// validateCastlingRights checks that every held right has its king and rook
// on their home squares.
func validateCastlingRights(pos *chess.Position) error {
	var result *multierror.Error
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, kingside := range []bool{true, false} {
			right := chess.CastlingRight(side, kingside)
			if !pos.Castling.Has(right) {
				continue
			}
			if !pos.Board.Get(chess.KingHome(side)).Is(side, chess.King) {
				result = multierror.Append(result, fmt.Errorf("castling right %s without king on %s",
					right, chess.KingHome(side)))
			}
			rookSq := chess.RookHome(side, kingside)
			if !pos.Board.Get(rookSq).Is(side, chess.Rook) {
				result = multierror.Append(result, fmt.Errorf("castling right %s without rook on %s",
					right, rookSq))
			}
		}
	}
	return result.ErrorOrNil()
}

// validateEnPassant checks that the en-passant target sits behind a pawn of
// the side that just moved.
func validateEnPassant(pos *chess.Position) error {
	ep, ok := pos.EnPassantTarget()
	if !ok {
		return nil
	}
	mover := pos.ToMove.Opposite()
	if ep.Row != mover.PawnRank()+mover.Forward() {
		return fmt.Errorf("en passant target %s on wrong rank", ep)
	}
	if !pos.Board.Get(ep.Offset(mover.Forward(), 0)).Is(mover, chess.Pawn) {
		return fmt.Errorf("en passant target %s without a pawn in front", ep)
	}
	return nil
}
