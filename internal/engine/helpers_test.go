package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// sq is shorthand for chess.MustSquare.
func sq(name string) chess.Square {
	return chess.MustSquare(name)
}

// play applies space-separated coordinate moves ("e2e4 e7e5") to g and
// fails the test on the first illegal one.
func play(t *testing.T, g *Game, moves string) {
	t.Helper()
	for _, m := range strings.Fields(moves) {
		if _, err := g.Apply(sq(m[:2]), sq(m[2:4])); err != nil {
			t.Fatalf("Apply(%s) error = %v", m, err)
		}
	}
}

// gameFromFEN creates a game or fails the test.
func gameFromFEN(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error = %v", fen, err)
	}
	return g
}
