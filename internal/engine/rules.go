package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Halfmove clock thresholds for the fifty- and seventy-five-move rules.
const (
	FiftyMoveLimit       = 100
	SeventyFiveMoveLimit = 150
)

// DrawRuleResult contains the results of draw rule detection. The engine
// reports these conditions; it never ends a game because of them.
type DrawRuleResult struct {
	// FiftyMoveRule is true if the current position has had 50 moves
	// (100 half-moves) without a pawn move or capture.
	FiftyMoveRule bool

	// SeventyFiveMoveRule is true if a position was reached where 75 moves
	// (150 half-moves) have been made without a pawn move or capture.
	SeventyFiveMoveRule bool

	// ThreefoldRepetition is true if the current position has occurred
	// at least three times.
	ThreefoldRepetition bool

	// FivefoldRepetition is true if any position occurred 5 or more times.
	FivefoldRepetition bool

	// InsufficientMaterial is true if the current position has insufficient
	// mating material for either side.
	InsufficientMaterial bool

	// MaterialOdds is true if the game started with unequal material.
	MaterialOdds bool
}

// Claimable reports whether a player could claim a draw.
func (r DrawRuleResult) Claimable() bool {
	return r.FiftyMoveRule || r.ThreefoldRepetition
}

// Automatic reports whether the position is drawn without a claim.
func (r DrawRuleResult) Automatic() bool {
	return r.SeventyFiveMoveRule || r.FivefoldRepetition || r.InsufficientMaterial
}

// AnalyzeDrawRules replays a game and reports the draw conditions it meets.
func AnalyzeDrawRules(g *Game) DrawRuleResult {
	result := DrawRuleResult{}

	start := g.StartPosition()
	result.MaterialOdds = !isStandardMaterial(&start.Board)

	table := hashing.NewRepetitionTable()
	positions := g.Positions()
	for i := range positions {
		table.Add(&positions[i])
		if positions[i].HalfmoveClock >= SeventyFiveMoveLimit {
			result.SeventyFiveMoveRule = true
		}
	}

	current := &positions[len(positions)-1]
	result.FiftyMoveRule = current.HalfmoveClock >= FiftyMoveLimit
	result.ThreefoldRepetition = table.Count(current) >= 3
	result.FivefoldRepetition = table.MaxCount() >= 5
	result.InsufficientMaterial = HasInsufficientMaterial(current)

	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := pos.Board.Get(sq)

			switch piece.Kind {
			case chess.NoPiece, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if piece.Side == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(sq)
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(sq)
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 1
}

// standardMaterial is the piece count each side starts a normal game with.
var standardMaterial = map[chess.PieceKind]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for kind, expected := range standardMaterial {
			if board.Count(side, kind) != expected {
				return false
			}
		}
	}
	return true
}
