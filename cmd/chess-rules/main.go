// chess-rules plays coordinate moves through the rules engine and prints
// the resulting position, legal moves or game record.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logOut := setupLogFile(cfg)
	out := setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, flag.Args(), os.Stdin)
	stop()

	// os.Exit skips deferred calls, so the files are closed here.
	if closeErr := closeFiles(out, logOut); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", closeErr)
		if err == nil {
			os.Exit(1)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags and
// returns the file it opened, if any.
func setupLogFile(cfg *config.Config) *os.File {
	if *logFile == "" {
		return nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return file
}

// setupOutputFile configures the output file based on command-line flags
// and returns the file it opened, if any.
func setupOutputFile(cfg *config.Config) *os.File {
	if *outputFile == "" {
		return nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return file
}

// closeFiles closes every non-nil file and reports all close errors.
func closeFiles(files ...*os.File) error {
	var result *multierror.Error
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "close %s", f.Name()))
		}
	}
	return result.ErrorOrNil()
}

// run sets up the start position, plays the moves named by args (or read
// from stdin when args is "-") and writes the requested output.
func run(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	if cfg.Perft.Enabled() {
		return runPerft(ctx, cfg, g)
	}

	text, err := moveText(args, stdin)
	if err != nil {
		return err
	}
	moves, err := notation.ParseMoves(text)
	if err != nil {
		return err
	}
	if err := playMoves(cfg, g, moves); err != nil {
		return err
	}
	reportSummary(cfg, g)

	if *squareMoves != "" {
		sq, err := chess.ParseSquare(*squareMoves)
		if err != nil {
			return errors.Wrap(err, "-moves")
		}
		return output.WriteSquareMoves(cfg.OutputFile, g, sq)
	}
	return output.WriteGame(cfg.OutputFile, g, &cfg.Output)
}

// newGame creates the game for cfg.StartFEN and validates its start
// position, failing in strict mode and warning otherwise.
func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.StartFEN == "" {
		return engine.NewGame(), nil
	}

	g, err := engine.NewGameFromFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	start := g.StartPosition()
	if err := engine.ValidatePosition(&start); err != nil {
		if cfg.Strict {
			return nil, err
		}
		cfg.Logf(1, "Warning: %v", err)
	}
	return g, nil
}

// moveText joins the move arguments, or reads them all from stdin when
// the only argument is "-".
func moveText(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "read moves")
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

// playMoves applies moves in order and stops at the first illegal one.
func playMoves(cfg *config.Config, g *engine.Game, moves []chess.MovePair) error {
	for _, m := range moves {
		applied, err := g.Apply(m.From, m.To)
		if err != nil {
			return err
		}
		cfg.Logf(2, "%d. %s %s", g.Ply(), applied, g.Status())
	}
	return nil
}

// reportSummary logs the state of the game after play.
func reportSummary(cfg *config.Config, g *engine.Game) {
	cfg.Logf(1, "%d plies played, %s to move (%s)", g.Ply(), g.ToMove(), g.Status())

	draws := engine.AnalyzeDrawRules(g)
	switch {
	case draws.Automatic():
		cfg.Logf(1, "Position is drawn: %s", describeDraw(draws))
	case draws.Claimable():
		cfg.Logf(1, "Draw can be claimed: %s", describeDraw(draws))
	}
}

func describeDraw(r engine.DrawRuleResult) string {
	var reasons []string
	if r.InsufficientMaterial {
		reasons = append(reasons, "insufficient material")
	}
	if r.FivefoldRepetition {
		reasons = append(reasons, "fivefold repetition")
	} else if r.ThreefoldRepetition {
		reasons = append(reasons, "threefold repetition")
	}
	if r.SeventyFiveMoveRule {
		reasons = append(reasons, "seventy-five move rule")
	} else if r.FiftyMoveRule {
		reasons = append(reasons, "fifty move rule")
	}
	return strings.Join(reasons, ", ")
}

// runPerft prints a perft divide of the start position.
func runPerft(ctx context.Context, cfg *config.Config, g *engine.Game) error {
	pos := g.Position()
	results, err := engine.DividePerft(ctx, &pos, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return errors.Wrap(err, "perft")
	}
	for _, r := range results {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", engine.TotalNodes(results))
	cfg.Logf(1, "perft(%d) with %d workers", cfg.Perft.Depth, cfg.Perft.Workers)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves (e2e4, e7e8q) and prints the result.\n")
	fmt.Fprintf(os.Stderr, "Use - as the only argument to read moves from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  board  Text diagram of the final position (default)\n")
	fmt.Fprintf(os.Stderr, "  fen    FEN of the final position\n")
	fmt.Fprintf(os.Stderr, "  pgn    Game record in standard algebraic notation\n")
	fmt.Fprintf(os.Stderr, "  json   Positions and moves as JSON\n")
	fmt.Fprintf(os.Stderr, "  moves  Legal moves of the side to move\n")
}
