// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction in rows).
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// BackRank returns the row holding the side's king and rooks at the start.
func (s Side) BackRank() int {
	if s == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the row the side's pawns start on.
func (s Side) PawnRank() int {
	return s.BackRank() + s.Forward()
}

// PromotionRank returns the row on which the side's pawns promote.
func (s Side) PromotionRank() int {
	return s.Opposite().BackRank()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the content of a board cell. The zero value is an empty cell.
type Piece struct {
	Kind     PieceKind
	Side     Side
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(side Side, kind PieceKind) Piece {
	return Piece{Kind: kind, Side: side}
}

// W creates an unmoved white piece.
func W(kind PieceKind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind PieceKind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Is reports whether the piece has the given side and kind, ignoring HasMoved.
func (p Piece) Is(side Side, kind PieceKind) bool {
	return p.Kind == kind && p.Side == side && kind != NoPiece
}

// Symbol returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty cell.
func (p Piece) Symbol() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Side == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// Square is a board coordinate. Row 0 is White's back rank, Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by the given row and column deltas.
// The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic coordinate, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte(FileBase + s.Col), byte(RankBase + s.Row)})
}

// ParseSquare parses an algebraic coordinate such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	file, rank := text[0], text[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	sq := Square{Row: int(rank) - RankBase, Col: int(file) - FileBase}
	if !sq.OnBoard() {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustSquare parses an algebraic coordinate and panics on failure.
// Intended for constants and tests.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case PawnMove:
		return "pawn"
	case PawnMoveWithPromotion:
		return "promotion"
	case EnPassantPawnMove:
		return "en passant"
	case PieceMove:
		return "piece"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	default:
		return "unknown"
	}
}
