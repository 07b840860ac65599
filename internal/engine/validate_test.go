package engine

import (
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestValidatePosition_Valid(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		pos := MustParseFEN(fen)
		testutil.AssertNoError(t, ValidatePosition(&pos), fen)
	}
}

func TestValidatePosition_Problems(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantErrors int
	}{
		{"extra white king", "4k3/8/8/8/8/8/8/KK6 w - - 0 1", 1},
		{"no kings", "8/8/8/8/8/8/8/8 w - - 0 1", 2},
		{"pawn on back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", 1},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4RK2 w - - 0 1", 1},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", 1},
		{"castling without king or rook", "4k3/8/8/8/8/8/8/3K4 w Q - 0 1", 2},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 w - e6 0 1", 1},
		{"en passant on wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e3 0 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			err := ValidatePosition(&pos)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)

			var merr *multierror.Error
			if !errors.As(err, &merr) {
				t.Fatalf("error %v is not a *multierror.Error", err)
			}
			testutil.AssertEqual(t, len(merr.Errors), tt.wantErrors, "%v", merr.Errors)
		})
	}
}

func TestValidatePosition_ReachedPositionsPass(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4 d7d5 e4d5 g8f6 f1b5 c7c6 d5c6 d8a5 c6b7 a5b5 b7a8")
	for i, pos := range g.Positions() {
		pos := pos
		testutil.AssertNoError(t, ValidatePosition(&pos), "position %d", i)
	}
	final := g.Position()
	testutil.AssertTrue(t, final.Board.Get(sq("a8")).Is(chess.White, chess.Queen))
}
