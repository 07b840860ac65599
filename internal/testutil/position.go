package testutil

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Squares parses algebraic square names and panics on a bad one.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		squares[i] = chess.MustSquare(name)
	}
	return squares
}

// Place builds a position with side to move and the listed pieces and
// nothing else: no castling rights and no en-passant target. Each piece is
// written as a FEN letter followed by a square, e.g. "Ke1" or "pd7";
// uppercase letters are White. Pieces count as moved unless they are pawns
// on their starting rank.
func Place(toMove chess.Side, pieces ...string) chess.Position {
	pos := chess.Position{ToMove: toMove, MoveNumber: 1}
	for _, entry := range pieces {
		if len(entry) != 3 {
			panic(fmt.Sprintf("testutil: bad piece placement %q", entry))
		}
		piece, ok := pieceFromLetter(entry[0])
		if !ok {
			panic(fmt.Sprintf("testutil: bad piece letter in %q", entry))
		}
		sq := chess.MustSquare(entry[1:])
		piece.HasMoved = piece.Kind != chess.Pawn || sq.Row != piece.Side.PawnRank()
		pos.Board.Set(sq, piece)
	}
	return pos
}

func pieceFromLetter(c byte) (chess.Piece, bool) {
	side := chess.White
	if c >= 'a' && c <= 'z' {
		side = chess.Black
		c -= 'a' - 'A'
	}
	for _, kind := range []chess.PieceKind{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King} {
		if kind.Letter() == c {
			return chess.NewPiece(side, kind), true
		}
	}
	return chess.Piece{}, false
}
