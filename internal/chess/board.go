package chess

// Board is the 8x8 grid of cells, indexed Squares[row][col].
// It is a plain value: assigning a Board copies every cell.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// Get returns the piece at sq. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties sq and returns whatever stood there.
func (b *Board) Clear(sq Square) Piece {
	piece := b.Get(sq)
	b.Set(sq, Piece{})
	return piece
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.OnBoard() && b.Squares[sq.Row][sq.Col].IsEmpty()
}

// Find returns the first square holding a piece of the given side and kind.
func (b *Board) Find(side Side, kind PieceKind) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(side, kind) {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// Count returns how many pieces of the given side and kind are on the board.
func (b *Board) Count(side Side, kind PieceKind) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(side, kind) {
				n++
			}
		}
	}
	return n
}

// Occupied returns the squares holding pieces of the given side, scanning
// rank by rank from a1 to h8.
func (b *Board) Occupied(side Side) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Side == side {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// SetupInitialPosition places the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[White.BackRank()][col] = W(backRank[col])
		b.Squares[White.PawnRank()][col] = W(Pawn)
		b.Squares[Black.PawnRank()][col] = B(Pawn)
		b.Squares[Black.BackRank()][col] = B(backRank[col])
	}
}

// Position is the complete rules state apart from move history: the grid,
// the side to move, castling rights, the en-passant target and the clocks.
// It holds no references, so copying a Position yields an independent state.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Side

	// Remaining castling rights; they only ever shrink.
	Castling CastlingRights

	// Is en passant capture possible? If so EPSquare is the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	pos := Position{
		ToMove:     White,
		Castling:   AllCastlingRights,
		MoveNumber: 1,
	}
	pos.Board.SetupInitialPosition()
	return pos
}

// EnPassantTarget returns the en-passant target square, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.EPSquare, p.EnPassant
}

// ClearEnPassant closes the en-passant window.
func (p *Position) ClearEnPassant() {
	p.EnPassant = false
	p.EPSquare = Square{}
}
