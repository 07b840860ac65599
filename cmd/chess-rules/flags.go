// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position and moves
	startFEN    = flag.String("fen", "", "Start position in FEN (default: standard initial position)")
	squareMoves = flag.String("moves", "", "List the legal moves of the piece on this square after play")
	strict      = flag.Bool("strict", false, "Reject start positions that fail validation")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "board", "Output format: board, fen, pgn, json, moves")
	lineLength   = flag.Int("w", 80, "Maximum line length for pgn and moves output")
	noCoords     = flag.Bool("nocoords", false, "Omit rank and file labels from the board diagram")
	showMoved    = flag.Bool("showmoved", false, "Mark pieces that have moved in the board diagram")
	compactJSON  = flag.Bool("compact", false, "Write JSON on a single line")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes to this depth, divided by root move")
	perftWorkers = flag.Int("workers", runtime.NumCPU(), "Goroutines used by -perft")

	// Logging
	logFile   = flag.String("l", "", "Log file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	cfg.StartFEN = *startFEN
	cfg.Strict = *strict

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}

	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *perftWorkers

	return cfg.Validate()
}

// applyOutputFlags configures output format and layout options.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowMoved = *showMoved
	cfg.Output.IndentJSON = !*compactJSON
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	return nil
}
