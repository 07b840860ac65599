package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// ParseFEN creates a position from a FEN string. Only the placement field is
// required; missing trailing fields take their initial-position defaults.
//
// FEN does not record which pieces have moved, so HasMoved is inferred: a
// king or rook is unmoved when a castling right still depends on it, and a
// pawn is unmoved while it stands on its starting rank.
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Position{}, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement"}
	}

	pos := chess.Position{ToMove: chess.White, MoveNumber: 1}

	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts); err != nil {
		return chess.Position{}, err
	}

	inferHasMoved(&pos)
	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: placement}
	}

	for i, rankText := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: string(c)}
			default:
				kind := ConvertFENCharToPiece(byte(c))
				if kind == chess.NoPiece {
					return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: string(c)}
				}
				if col >= chess.BoardSize {
					return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: rankText}
				}
				side := chess.White
				if unicode.IsLower(c) {
					side = chess.Black
				}
				board.Set(chess.Sq(row, col), chess.NewPiece(side, kind))
				col++
			}
		}
		if col != chess.BoardSize {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: rankText}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side", Value: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	pos.Castling = chess.NoCastlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	// Start from every right and revoke the ones the field does not name.
	named := chess.NoCastlingRights
	for _, c := range parts[2] {
		switch c {
		case 'K':
			named |= chess.WhiteKingside
		case 'Q':
			named |= chess.WhiteQueenside
		case 'k':
			named |= chess.BlackKingside
		case 'q':
			named |= chess.BlackQueenside
		default:
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Value: parts[2]}
		}
	}
	pos.Castling = chess.AllCastlingRights.Revoke(chess.AllCastlingRights &^ named)
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	pos.ClearEnPassant()
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Value: parts[3]}
	}
	pos.EnPassant = true
	pos.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Value: parts[4]}
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Value: parts[5]}
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// inferHasMoved fills in HasMoved from the castling rights and pawn ranks.
func inferHasMoved(pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := pos.Board.Get(sq)
			switch piece.Kind {
			case chess.Pawn:
				piece.HasMoved = row != piece.Side.PawnRank()
			case chess.King:
				piece.HasMoved = sq != chess.KingHome(piece.Side) ||
					pos.Castling&chess.SideRights(piece.Side) == chess.NoCastlingRights
			case chess.Rook:
				piece.HasMoved = !pos.Castling.Has(rookRight(piece.Side, sq))
			default:
				continue
			}
			pos.Board.Set(sq, piece)
		}
	}
}

// ToFEN converts a position to a FEN string.
func ToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	if ep, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// MustParseFEN parses a FEN string and panics on failure.
// Intended for constants and tests.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}
