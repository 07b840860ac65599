// Package notation converts moves between the engine's square pairs and
// text: coordinate notation for input, standard algebraic notation for
// output.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseMove parses a move in coordinate notation such as "e2e4", "e2-e4"
// or "e7e8q". Promotion is always to a queen, so the only accepted suffix
// is "q"; it is optional.
func ParseMove(text string) (chess.MovePair, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(s) == 5 {
		if s[4] != 'q' && s[4] != 'Q' {
			return chess.MovePair{}, errors.Wrapf(errors.ErrIllegalMove, "promotion in %q: only queen promotion is supported", text)
		}
		s = s[:4]
	}
	if len(s) != 4 {
		return chess.MovePair{}, errors.Wrapf(errors.ErrInvalidSquare, "move %q", text)
	}

	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return chess.MovePair{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := chess.ParseSquare(s[2:])
	if err != nil {
		return chess.MovePair{}, errors.Wrapf(err, "move %q", text)
	}
	return chess.MovePair{From: from, To: to}, nil
}

// ParseMoves parses whitespace-separated coordinate moves.
func ParseMoves(text string) ([]chess.MovePair, error) {
	fields := strings.Fields(text)
	moves := make([]chess.MovePair, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves returns the moves in coordinate notation separated by spaces.
func FormatMoves(moves []chess.AppliedMove) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
