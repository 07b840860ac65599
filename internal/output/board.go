package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// BoardWriter writes a text diagram of the current position followed by a
// status line.
type BoardWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// WriteGame writes the diagram and status.
func (bw *BoardWriter) WriteGame(g *engine.Game) error {
	pos := g.Position()
	if _, err := io.WriteString(bw.w, FormatBoard(&pos, bw.cfg)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(bw.w, statusLine(g))
	return err
}

// FormatBoard renders the board with rank 8 at the top. Empty squares are
// dots; White pieces are uppercase. With ShowMoved, pieces that have moved
// carry a trailing '*'.
func FormatBoard(pos *chess.Position, cfg *config.OutputConfig) string {
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		var line strings.Builder
		if cfg.Coordinates {
			line.WriteByte(byte(chess.RankBase + row))
			line.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				line.WriteByte(' ')
			}
			piece := pos.Board.Get(chess.Sq(row, col))
			line.WriteByte(piece.Symbol())
			if cfg.ShowMoved {
				if piece.HasMoved && !piece.IsEmpty() {
					line.WriteByte('*')
				} else {
					line.WriteByte(' ')
				}
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}

	if cfg.Coordinates {
		var files strings.Builder
		files.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				files.WriteByte(' ')
			}
			files.WriteByte(byte(chess.FileBase + col))
			if cfg.ShowMoved {
				files.WriteByte(' ')
			}
		}
		sb.WriteString(strings.TrimRight(files.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// statusLine is e.g. "White to move" or "Black to move: checkmate".
func statusLine(g *engine.Game) string {
	line := g.ToMove().String() + " to move"
	if status := g.Status(); status != engine.InProgress {
		line += ": " + status.String()
	}
	return line
}
