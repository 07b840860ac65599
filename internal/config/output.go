package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat represents the ways a game can be printed.
type OutputFormat int

const (
	Board OutputFormat = iota // Text board diagram
	FEN                       // FEN of the final position
	PGN                       // Movetext in standard algebraic notation
	JSON                      // Position and history as JSON
	Moves                     // Legal moves of the side to move
)

var formatNames = []string{"board", "fen", "pgn", "json", "moves"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return Board, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies what is printed after the moves are applied
	Format OutputFormat

	// Coordinates adds file letters and rank numbers around the board
	Coordinates bool

	// ShowMoved marks pieces that have moved in the board diagram
	ShowMoved bool

	// IndentJSON pretty-prints JSON output
	IndentJSON bool

	// MaxLineLength is the maximum line length for PGN movetext
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Board,
		Coordinates:   true,
		IndentJSON:    true,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < Board || o.Format > Moves {
		return fmt.Errorf("output format %d out of range: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength != 0 && o.MaxLineLength < 10 {
		return fmt.Errorf("max line length %d is too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
