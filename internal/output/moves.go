package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MovesWriter lists the legal moves of the side to move in coordinate
// notation, sorted, wrapped to the configured line length.
type MovesWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// WriteGame writes the move list. A position without legal moves prints
// its status instead.
func (mw *MovesWriter) WriteGame(g *engine.Game) error {
	moves := g.AllLegalMoves()
	if len(moves) == 0 {
		_, err := fmt.Fprintf(mw.w, "no legal moves (%s)\n", g.Status())
		return err
	}

	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	sort.Strings(texts)

	ow := NewOutputWriter(mw.w, int(mw.cfg.MaxLineLength))
	for _, text := range texts {
		ow.Write(text)
	}
	ow.NewLine()
	return ow.Err()
}

// WriteSquareMoves writes the legal destinations of the piece on sq, e.g.
// "g1: f3 h3". Selection errors are returned, not printed.
func WriteSquareMoves(w io.Writer, g *engine.Game, sq chess.Square) error {
	targets, err := g.Select(sq)
	if err != nil {
		return err
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].String() < targets[j].String()
	})

	ow := NewOutputWriter(w, 0)
	ow.Write(sq.String() + ":")
	for _, t := range targets {
		ow.Write(t.String())
	}
	ow.NewLine()
	return ow.Err()
}
