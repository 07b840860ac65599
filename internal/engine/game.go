package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is a sequence of positions reached by legal moves from a starting
// position. The zero value is not usable; create games with NewGame,
// NewGameFromFEN or NewGameFromPosition.
type Game struct {
	start   chess.Position
	pos     chess.Position
	history []chess.AppliedMove
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	return NewGameFromPosition(chess.NewInitialPosition())
}

// NewGameFromFEN creates a game starting at the position described by fen.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "new game")
	}
	return NewGameFromPosition(pos), nil
}

// NewGameFromPosition creates a game starting at pos.
func NewGameFromPosition(pos chess.Position) *Game {
	return &Game{start: pos, pos: pos}
}

// Position returns a copy of the current position.
func (g *Game) Position() chess.Position {
	return g.pos
}

// StartPosition returns a copy of the position the game started from.
func (g *Game) StartPosition() chess.Position {
	return g.start
}

// ToMove returns the side whose turn it is.
func (g *Game) ToMove() chess.Side {
	return g.pos.ToMove
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// LegalMoves returns the legal destinations of the piece on sq. It is empty
// when sq is empty or holds a piece of the side not to move.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	if checkSelection(&g.pos, sq) != nil {
		return nil
	}
	return LegalMoves(&g.pos, sq)
}

// AllLegalMoves returns every legal move of the side to move.
func (g *Game) AllLegalMoves() []chess.MovePair {
	return AllLegalMoves(&g.pos)
}

// Select is LegalMoves with the reason for an empty answer spelled out:
// ErrInvalidSquare, ErrEmptySquare or ErrWrongSide.
func (g *Game) Select(sq chess.Square) ([]chess.Square, error) {
	if err := checkSelection(&g.pos, sq); err != nil {
		return nil, g.annotate(err)
	}
	return LegalMoves(&g.pos, sq), nil
}

// Apply plays the move from -> to if it is legal for the side to move and
// records it in the history. On error the game is unchanged.
func (g *Game) Apply(from, to chess.Square) (chess.AppliedMove, error) {
	move, err := ApplyMove(&g.pos, from, to)
	if err != nil {
		return chess.AppliedMove{}, g.annotate(err)
	}
	g.history = append(g.history, move)
	return move, nil
}

// annotate stamps the ply the error happened at onto move errors.
func (g *Game) annotate(err error) error {
	var moveErr *errors.MoveError
	if errors.As(err, &moveErr) {
		moveErr.Ply = len(g.history) + 1
	}
	return err
}

// IsInCheck reports whether side's king is attacked in the current position.
func (g *Game) IsInCheck(side chess.Side) bool {
	return IsInCheck(&g.pos, side)
}

// Status classifies the current position for the side to move.
func (g *Game) Status() GameStatus {
	return Status(&g.pos)
}

// History returns a copy of the moves played, oldest first.
func (g *Game) History() []chess.AppliedMove {
	history := make([]chess.AppliedMove, len(g.history))
	copy(history, g.history)
	return history
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (chess.AppliedMove, bool) {
	if len(g.history) == 0 {
		return chess.AppliedMove{}, false
	}
	return g.history[len(g.history)-1], true
}

// FEN returns the FEN string of the current position.
func (g *Game) FEN() string {
	return ToFEN(&g.pos)
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	clone := &Game{start: g.start, pos: g.pos}
	clone.history = make([]chess.AppliedMove, len(g.history))
	copy(clone.history, g.history)
	return clone
}

// Positions returns every position of the game from the start through the
// current one by replaying the history.
func (g *Game) Positions() []chess.Position {
	positions := make([]chess.Position, 0, len(g.history)+1)
	pos := g.start
	positions = append(positions, pos)
	for _, move := range g.history {
		applyMove(&pos, move.From, move.To)
		positions = append(positions, pos)
	}
	return positions
}

// Replay applies a sequence of moves to a fresh game from start, stopping at
// the first illegal move.
func Replay(start chess.Position, moves []chess.MovePair) (*Game, error) {
	g := NewGameFromPosition(start)
	for _, m := range moves {
		if _, err := g.Apply(m.From, m.To); err != nil {
			return g, err
		}
	}
	return g, nil
}

// ReplayHistory replays the game's own history from its start position and
// returns the result. The final position equals g.Position() when the
// history is consistent.
func (g *Game) ReplayHistory() (*Game, error) {
	moves := make([]chess.MovePair, len(g.history))
	for i, move := range g.history {
		moves[i] = chess.MovePair{From: move.From, To: move.To}
	}
	return Replay(g.start, moves)
}
