package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables as (row, col) deltas.
var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// slidingMoves casts a ray in each direction until it leaves the board or
// meets a piece. An enemy piece ends the ray and is included; a friendly
// one ends it and is not.
func slidingMoves(board *chess.Board, from chess.Square, side chess.Side, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Side != side {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// stepMoves returns the on-board squares at the given offsets that are not
// occupied by a piece of the moving side.
func stepMoves(board *chess.Board, from chess.Square, side chess.Side, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Side != side {
			moves = append(moves, to)
		}
	}
	return moves
}

// isPathClear checks that every square strictly between from and to is empty.
// The squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !sq.OnBoard() || !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}
	return true
}
