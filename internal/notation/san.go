package notation

import (
	"fmt"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SANMoves renders a move history in standard algebraic notation, with
// check and mate suffixes. start is the position the history was played
// from.
func SANMoves(start chess.Position, history []chess.AppliedMove) ([]string, error) {
	opt, err := nchess.FEN(engine.ToFEN(&start))
	if err != nil {
		return nil, errors.Wrap(err, "load start position")
	}
	game := nchess.NewGame(opt)
	encoder := nchess.AlgebraicNotation{}

	san := make([]string, 0, len(history))
	for i, move := range history {
		m := findMove(game, move)
		if m == nil {
			return nil, &errors.MoveError{
				Err:  fmt.Errorf("%w: no matching move in reference game", errors.ErrIllegalMove),
				From: move.From.String(),
				To:   move.To.String(),
				Ply:  i + 1,
			}
		}
		san = append(san, encoder.Encode(game.Position(), m))
		if err := game.Move(m); err != nil {
			return nil, errors.Wrapf(err, "ply %d", i+1)
		}
	}
	return san, nil
}

// GameSAN renders the history of g in standard algebraic notation.
func GameSAN(g *engine.Game) ([]string, error) {
	return SANMoves(g.StartPosition(), g.History())
}

// findMove picks the reference move matching an applied move. Promotions
// always match the queen.
func findMove(game *nchess.Game, move chess.AppliedMove) *nchess.Move {
	from, to := move.From.String(), move.To.String()
	for _, m := range game.ValidMoves() {
		if m.S1().String() != from || m.S2().String() != to {
			continue
		}
		if m.Promo() != nchess.NoPieceType && m.Promo() != nchess.Queen {
			continue
		}
		return m
	}
	return nil
}
