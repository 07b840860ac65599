package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// zobristKeys holds one random key per (side, kind, square), one for the side
// to move, one per castling right and one per en-passant file.
type zobristKeys struct {
	pieces    [2][7][chess.BoardSize * chess.BoardSize]uint64
	blackMove uint64
	castling  [4]uint64
	epFile    [chess.BoardSize]uint64
}

var keys = newZobristKeys(0x9E3779B97F4A7C15)

// splitmix64 is a small deterministic generator so hashes are stable across
// runs and processes.
type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func newZobristKeys(seed uint64) *zobristKeys {
	rng := splitmix64(seed)
	k := &zobristKeys{}
	for side := range k.pieces {
		for kind := range k.pieces[side] {
			for sq := range k.pieces[side][kind] {
				k.pieces[side][kind][sq] = rng.next()
			}
		}
	}
	k.blackMove = rng.next()
	for i := range k.castling {
		k.castling[i] = rng.next()
	}
	for i := range k.epFile {
		k.epFile[i] = rng.next()
	}
	return k
}

// GenerateZobristHash returns the Zobrist hash of a position. Two positions
// hash equal when they have the same placement, side to move, castling rights
// and capturable en-passant file. Clocks and HasMoved flags are ignored.
func GenerateZobristHash(pos *chess.Position) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.Board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				continue
			}
			hash ^= keys.pieces[piece.Side][piece.Kind][row*chess.BoardSize+col]
		}
	}

	if pos.ToMove == chess.Black {
		hash ^= keys.blackMove
	}
	for i, right := range []chess.CastlingRights{
		chess.WhiteKingside, chess.WhiteQueenside, chess.BlackKingside, chess.BlackQueenside,
	} {
		if pos.Castling.Has(right) {
			hash ^= keys.castling[i]
		}
	}
	if ep, ok := pos.EnPassantTarget(); ok && epCapturable(pos, ep) {
		hash ^= keys.epFile[ep.Col]
	}
	return hash
}

// epCapturable reports whether a pawn of the side to move stands next to the
// pawn that just double-stepped. A target nobody can use does not change the
// position for repetition purposes.
func epCapturable(pos *chess.Position, ep chess.Square) bool {
	victimRow := ep.Row - pos.ToMove.Forward()
	for _, dc := range []int{-1, 1} {
		if pos.Board.Get(chess.Sq(victimRow, ep.Col+dc)).Is(pos.ToMove, chess.Pawn) {
			return true
		}
	}
	return false
}

// WeakHash returns a cheap placement-only checksum. It is used as a secondary
// check alongside the Zobrist hash.
func WeakHash(pos *chess.Position) uint32 {
	var sum uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.Board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				continue
			}
			code := uint32(piece.Kind) + uint32(piece.Side)*8
			sum += code * uint32(row*chess.BoardSize+col+1)
		}
	}
	return sum
}
