package chess

// CastlingRights is a compact set of the four castling rights.
// Rights can be revoked but there is no operation that grants one back.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastlingRights  CastlingRights = 0
	AllCastlingRights                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the single right for a side and wing.
func CastlingRight(side Side, kingside bool) CastlingRights {
	switch {
	case side == White && kingside:
		return WhiteKingside
	case side == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// SideRights returns both rights belonging to a side.
func SideRights(side Side) CastlingRights {
	return CastlingRight(side, true) | CastlingRight(side, false)
}

// Has reports whether every right in mask is still held.
func (r CastlingRights) Has(mask CastlingRights) bool {
	return mask != 0 && r&mask == mask
}

// Revoke returns the rights with every right in mask removed.
func (r CastlingRights) Revoke(mask CastlingRights) CastlingRights {
	return r &^ mask
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	var buf []byte
	if r.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if r.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if r.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if r.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// Rook home columns and king start column for standard chess.
const (
	KingStartCol     = 4
	KingsideRookCol  = BoardSize - 1
	QueensideRookCol = 0
)

// RookHome returns the home square of the rook that castles on the given wing.
func RookHome(side Side, kingside bool) Square {
	if kingside {
		return Sq(side.BackRank(), KingsideRookCol)
	}
	return Sq(side.BackRank(), QueensideRookCol)
}

// KingHome returns the king's starting square.
func KingHome(side Side) Square {
	return Sq(side.BackRank(), KingStartCol)
}
