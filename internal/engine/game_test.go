package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewGame(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertEqual(t, g.FEN(), InitialFEN)
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, g.Status(), InProgress)
	testutil.AssertFalse(t, g.IsInCheck(chess.White))
	testutil.AssertFalse(t, g.IsInCheck(chess.Black))
	testutil.AssertEqual(t, len(g.History()), 0)
	testutil.AssertEqual(t, len(g.AllLegalMoves()), 20)

	_, ok := g.LastMove()
	testutil.AssertFalse(t, ok)
}

func TestNewGameFromFEN_Invalid(t *testing.T) {
	_, err := NewGameFromFEN("not a fen")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestGameLegalMovesRespectsTurn(t *testing.T) {
	g := NewGame()

	testutil.AssertSameSquares(t, g.LegalMoves(sq("e7")), nil)
	testutil.AssertSameSquares(t, g.LegalMoves(sq("e4")), nil)
	testutil.AssertSameSquares(t, g.LegalMoves(sq("e2")), []string{"e3", "e4"})
}

func TestGameSelect(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")

	tests := []struct {
		name    string
		square  chess.Square
		want    []string
		wantErr error
	}{
		{"own piece", sq("g8"), []string{"f6", "h6"}, nil},
		{"empty square", sq("e5"), nil, errors.ErrEmptySquare},
		{"opponent piece", sq("e4"), nil, errors.ErrWrongSide},
		{"off board", chess.Sq(3, 9), nil, errors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Select(tt.square)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				var moveErr *errors.MoveError
				if errors.As(err, &moveErr) {
					testutil.AssertEqual(t, moveErr.Ply, 2)
				} else {
					t.Errorf("error %v is not a *MoveError", err)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertSameSquares(t, got, tt.want)
		})
	}
}

func TestGameApplyIllegalLeavesGameUnchanged(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")
	before := g.Clone()

	_, err := g.Apply(sq("e7"), sq("e4"))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "ply 2")
	testutil.AssertContains(t, err.Error(), "e7-e4")

	testutil.AssertEqual(t, g.Position(), before.Position())
	testutil.AssertEqual(t, g.History(), before.History())
}

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	play(t, g, "f2f3 e7e5 g2g4 d8h4")

	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertTrue(t, g.IsInCheck(chess.White))
	testutil.AssertFalse(t, g.IsInCheck(chess.Black))
	testutil.AssertEqual(t, g.Status(), Checkmate)
	testutil.AssertEqual(t, len(g.AllLegalMoves()), 0)

	pos := g.Position()
	testutil.AssertTrue(t, IsCheckmate(&pos))
	testutil.AssertFalse(t, IsStalemate(&pos))
	testutil.AssertSameSquares(t, Attackers(&pos, sq("e1"), chess.Black), []string{"h4"})

	_, err := g.Apply(sq("e2"), sq("e3"))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want GameStatus
	}{
		{"initial", InitialFEN, InProgress},
		{"check", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", Check},
		{"back rank mate", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			testutil.AssertEqual(t, Status(&pos), tt.want)
		})
	}
}

func TestGameIsInCheckEitherSide(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantWhite bool
		wantBlack bool
	}{
		{"black to move in check", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", false, true},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4RK2 w - - 0 1", false, true},
		{"white in check", "4r1k1/8/8/8/8/8/8/4K3 w - - 0 1", true, false},
		{"nobody in check", InitialFEN, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameFromFEN(t, tt.fen)
			testutil.AssertEqual(t, g.IsInCheck(chess.White), tt.wantWhite, "White")
			testutil.AssertEqual(t, g.IsInCheck(chess.Black), tt.wantBlack, "Black")
		})
	}
}

func TestGameHistoryReplay(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4 c7c5 g1f3 d7d6 f1b5 c8d7 e1g1 a7a6 b5d7 d8d7")

	history := g.History()
	testutil.AssertEqual(t, len(history), 10)
	testutil.AssertEqual(t, history[8].Class, chess.PieceMove)
	testutil.AssertEqual(t, history[6].Class, chess.KingsideCastle)

	replayed, err := g.ReplayHistory()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, replayed.Position(), g.Position())
	testutil.AssertEqual(t, replayed.History(), history)

	positions := g.Positions()
	testutil.AssertEqual(t, len(positions), 11)
	testutil.AssertEqual(t, positions[0], chess.NewInitialPosition())
	testutil.AssertEqual(t, positions[10], g.Position())

	last, ok := g.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last.String(), "d8d7")
}

func TestReplayStopsAtIllegalMove(t *testing.T) {
	moves := []chess.MovePair{
		{From: sq("e2"), To: sq("e4")},
		{From: sq("e2"), To: sq("e3")},
		{From: sq("d2"), To: sq("d4")},
	}

	g, err := Replay(chess.NewInitialPosition(), moves)
	testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)
	testutil.AssertEqual(t, g.Ply(), 1)
}

func TestGameHistoryIsCopy(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")

	history := g.History()
	history[0].From = sq("a1")

	testutil.AssertEqual(t, g.History()[0].From, sq("e2"))
}

func TestGameCloneIsIndependent(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4 e7e5")

	clone := g.Clone()
	play(t, clone, "g1f3")

	testutil.AssertEqual(t, g.Ply(), 2)
	testutil.AssertEqual(t, clone.Ply(), 3)
	pos := g.Position()
	testutil.AssertTrue(t, pos.Board.Get(sq("g1")).Is(chess.White, chess.Knight))
	testutil.AssertEqual(t, clone.StartPosition(), g.StartPosition())
}

func TestLegalityProbesDoNotMutate(t *testing.T) {
	pos := MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := pos

	AllLegalMoves(&pos)
	HasLegalMoves(&pos, chess.Black)
	IsInCheck(&pos, chess.White)

	testutil.AssertEqual(t, pos, before)
}
