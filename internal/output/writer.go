// Package output renders games as board diagrams, FEN, PGN, JSON or move
// lists.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameWriter writes a game in one output format.
type GameWriter interface {
	WriteGame(g *engine.Game) error
}

// NewGameWriter returns the writer for cfg.Format.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	switch cfg.Format {
	case config.FEN:
		return &FENWriter{w: w}
	case config.PGN:
		return NewPGNWriter(w, cfg)
	case config.JSON:
		return &JSONWriter{w: w, cfg: cfg}
	case config.Moves:
		return &MovesWriter{w: w, cfg: cfg}
	default:
		return &BoardWriter{w: w, cfg: cfg}
	}
}

// WriteGame writes g to w in the format selected by cfg.
func WriteGame(w io.Writer, g *engine.Game, cfg *config.OutputConfig) error {
	return NewGameWriter(w, cfg).WriteGame(g)
}

// FENWriter writes the FEN of the current position.
type FENWriter struct {
	w io.Writer
}

// WriteGame writes one FEN line.
func (fw *FENWriter) WriteGame(g *engine.Game) error {
	_, err := fmt.Fprintln(fw.w, g.FEN())
	return err
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break as the line
// length allows.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error the underlying writer reported.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}
