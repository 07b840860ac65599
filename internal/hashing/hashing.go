// Package hashing provides position hashing and repetition counting.
package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PositionSignature identifies a position for repetition tracking.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// Signature computes the signature of a position.
func Signature(pos *chess.Position) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(pos),
		WeakHash: WeakHash(pos),
	}
}

// RepetitionTable counts how often each position has occurred.
type RepetitionTable struct {
	counts map[PositionSignature]int
	// maxCount tracks the highest count seen so far
	maxCount int
	// total is the number of positions added
	total int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[PositionSignature]int),
	}
}

// Add records an occurrence of pos and returns how many times it has now
// been seen, including this one.
func (t *RepetitionTable) Add(pos *chess.Position) int {
	sig := Signature(pos)
	t.counts[sig]++
	t.total++
	n := t.counts[sig]
	if n > t.maxCount {
		t.maxCount = n
	}
	return n
}

// Count returns how many times pos has been recorded.
func (t *RepetitionTable) Count(pos *chess.Position) int {
	return t.counts[Signature(pos)]
}

// MaxCount returns the highest occurrence count of any position.
func (t *RepetitionTable) MaxCount() int {
	return t.maxCount
}

// UniqueCount returns the number of distinct positions.
func (t *RepetitionTable) UniqueCount() int {
	return len(t.counts)
}

// Total returns the number of positions added.
func (t *RepetitionTable) Total() int {
	return t.total
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[PositionSignature]int)
	t.maxCount = 0
	t.total = 0
}
