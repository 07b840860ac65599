package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// testConfig returns a config writing to buffers.
func testConfig(format config.OutputFormat) (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutputFormat(format).
		WithOutput(&out).
		WithLog(&log).
		Build()
	return cfg, &out, &log
}

func TestRunPlaysMoves(t *testing.T) {
	cfg, out, log := testConfig(config.FEN)
	err := run(context.Background(), cfg, []string{"e2e4", "e7e5", "g1f3"}, nil)
	testutil.AssertNoError(t, err)

	want := engine.NewGame()
	for _, m := range []string{"e2e4", "e7e5", "g1f3"} {
		_, err := want.Apply(sq(m[:2]), sq(m[2:]))
		testutil.AssertNoError(t, err)
	}
	testutil.AssertEqual(t, out.String(), want.FEN()+"\n")
	testutil.AssertContains(t, log.String(), "3 plies played, Black to move (in progress)")
}

func TestRunReadsStdin(t *testing.T) {
	cfg, out, _ := testConfig(config.PGN)
	stdin := strings.NewReader("f2f3 e7e5\ng2g4 d8h4\n")
	testutil.AssertNoError(t, run(context.Background(), cfg, []string{"-"}, stdin))
	testutil.AssertContains(t, out.String(), "1. f3 e5 2. g4 Qh4# 0-1")
}

func TestRunIllegalMove(t *testing.T) {
	cfg, out, _ := testConfig(config.Board)
	err := run(context.Background(), cfg, []string{"e2e4", "e2e4"}, nil)
	testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)

	cfg, _, _ = testConfig(config.Board)
	err = run(context.Background(), cfg, []string{"e2e5"}, nil)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, out.Len(), 0)
}

func TestRunBadMoveText(t *testing.T) {
	cfg, _, _ := testConfig(config.Board)
	err := run(context.Background(), cfg, []string{"e2e4", "castle"}, nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)
}

func TestRunStartPositionValidation(t *testing.T) {
	// White king missing.
	fen := "4k3/8/8/8/8/8/8/8 w - - 0 1"

	t.Run("strict", func(t *testing.T) {
		cfg, _, _ := testConfig(config.FEN)
		cfg.StartFEN = fen
		cfg.Strict = true
		err := run(context.Background(), cfg, nil, nil)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
	})

	t.Run("lenient", func(t *testing.T) {
		cfg, out, log := testConfig(config.FEN)
		cfg.StartFEN = fen
		testutil.AssertNoError(t, run(context.Background(), cfg, nil, nil))
		testutil.AssertEqual(t, out.String(), fen+"\n")
		testutil.AssertContains(t, log.String(), "Warning:")
	})

	t.Run("malformed", func(t *testing.T) {
		cfg, _, _ := testConfig(config.FEN)
		cfg.StartFEN = "not a fen"
		err := run(context.Background(), cfg, nil, nil)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	})
}

func TestRunSquareMoves(t *testing.T) {
	defer saveRestoreString(squareMoves, "b8")()
	cfg, out, _ := testConfig(config.Board)
	testutil.AssertNoError(t, run(context.Background(), cfg, []string{"e2e4"}, nil))
	testutil.AssertEqual(t, out.String(), "b8: a6 c6\n")
}

func TestRunSquareMovesBadSquare(t *testing.T) {
	defer saveRestoreString(squareMoves, "z9")()
	cfg, _, _ := testConfig(config.Board)
	err := run(context.Background(), cfg, nil, nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)
}

func TestRunPerft(t *testing.T) {
	cfg, out, _ := testConfig(config.Board)
	cfg.Perft.Depth = 2
	cfg.Perft.Workers = 3
	testutil.AssertNoError(t, run(context.Background(), cfg, nil, nil))

	text := out.String()
	testutil.AssertContains(t, text, "e2e4: 20\n")
	testutil.AssertContains(t, text, "Nodes searched: 400\n")
	testutil.AssertEqual(t, strings.Count(text, ": 20\n"), 20)
}

func TestRunPerftCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg, _, _ := testConfig(config.Board)
	cfg.Perft.Depth = 3
	err := run(ctx, cfg, nil, nil)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestReportSummaryDraws(t *testing.T) {
	cfg, _, log := testConfig(config.Board)
	cfg.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	testutil.AssertNoError(t, run(context.Background(), cfg, []string{"e1d1"}, nil))
	testutil.AssertContains(t, log.String(), "Position is drawn: insufficient material")

	cfg, _, log = testConfig(config.Board)
	moves := strings.Fields("g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8")
	testutil.AssertNoError(t, run(context.Background(), cfg, moves, nil))
	testutil.AssertContains(t, log.String(), "Draw can be claimed: threefold repetition")
}

func TestRunVerboseLogsEveryMove(t *testing.T) {
	cfg, _, log := testConfig(config.FEN)
	cfg.Verbosity = 2
	testutil.AssertNoError(t, run(context.Background(), cfg, []string{"e2e4", "e7e5"}, nil))
	testutil.AssertContains(t, log.String(), "1. e2e4 in progress\n")
	testutil.AssertContains(t, log.String(), "2. e7e5 in progress\n")

	cfg, _, log = testConfig(config.FEN)
	cfg.Verbosity = 0
	testutil.AssertNoError(t, run(context.Background(), cfg, []string{"e2e4"}, nil))
	testutil.AssertEqual(t, log.Len(), 0)
}

func sq(name string) chess.Square {
	return chess.MustSquare(name)
}

func TestCloseFiles(t *testing.T) {
	testutil.AssertNoError(t, closeFiles(nil, nil))

	dir := t.TempDir()
	good, err := os.Create(filepath.Join(dir, "out.txt"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, closeFiles(good, nil))

	closed, err := os.Create(filepath.Join(dir, "log.txt"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, closed.Close())

	err = closeFiles(nil, closed)
	testutil.AssertErrorIs(t, err, os.ErrClosed)
	testutil.AssertContains(t, err.Error(), "log.txt")
}

func TestSetupOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.fen")
	defer saveRestoreString(outputFile, path)()

	cfg, _, _ := testConfig(config.FEN)
	f := setupOutputFile(cfg)
	if f == nil {
		t.Fatal("setupOutputFile() returned no file")
	}
	testutil.AssertNoError(t, run(context.Background(), cfg, []string{"e2e4"}, nil))
	testutil.AssertNoError(t, closeFiles(f))

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(data), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1\n")

	defer saveRestoreString(outputFile, "")()
	testutil.AssertNil(t, setupOutputFile(cfg))
}
