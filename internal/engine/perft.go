package engine

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Depth 0 counts the position itself.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := *pos
		applyMove(&child, m.From, m.To)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  chess.MovePair
	Nodes uint64
}

// Divide returns the perft count below each root move, in move order.
func Divide(pos *chess.Position, depth int) []DivideResult {
	if depth <= 0 {
		return nil
	}
	moves := AllLegalMoves(pos)
	results := make([]DivideResult, len(moves))
	for i, m := range moves {
		child := *pos
		applyMove(&child, m.From, m.To)
		results[i] = DivideResult{Move: m, Nodes: Perft(&child, depth-1)}
	}
	return results
}

// DividePerft is Divide with the root moves spread over a worker pool.
// The results are identical to Divide.
func DividePerft(ctx context.Context, pos *chess.Position, depth, workers int) ([]DivideResult, error) {
	if depth <= 0 {
		return nil, nil
	}

	moves := AllLegalMoves(pos)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		child := *pos
		applyMove(&child, m.From, m.To)
		items[i] = worker.WorkItem{Position: child, Move: m, Depth: depth - 1, Index: i}
	}

	processed, err := worker.Run(ctx, items, perftWorkItem, worker.WithWorkers(workers))
	if err != nil {
		return nil, err
	}

	results := make([]DivideResult, len(processed))
	for i, res := range processed {
		results[i] = DivideResult{Move: res.Move, Nodes: res.Nodes}
	}
	return results, nil
}

func perftWorkItem(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: Perft(&item.Position, item.Depth),
	}
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(results []DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
