package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds perft runs; deeper trees take hours.
const MaxPerftDepth = 8

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Depth is the perft depth; 0 disables perft
	Depth int

	// Workers is the number of goroutines counting root subtrees
	Workers int
}

// NewPerftConfig creates a PerftConfig with perft disabled and one worker
// per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
