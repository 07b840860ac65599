package chess

// AppliedMove records one move as it was executed.
type AppliedMove struct {
	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The piece that moved, as it stood before the move.
	Piece Piece

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured (empty if no capture).
	Captured Piece

	// Where the captured piece stood. Differs from To only for en passant.
	CapturedOn Square

	// The piece kind promoted to (NoPiece if not a promotion).
	Promotion PieceKind
}

// IsCapture returns true if this move is a capture.
func (m AppliedMove) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m AppliedMove) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m AppliedMove) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsEnPassant returns true if this move captured en passant.
func (m AppliedMove) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m AppliedMove) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// MovePair represents a source-destination square pair for move generation.
type MovePair struct {
	From Square
	To   Square
}

// String returns the pair in coordinate notation, e.g. "g1f3".
func (p MovePair) String() string {
	return p.From.String() + p.To.String()
}
