package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the depth accepted on the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Depth is the deepest ply counted; every depth from 1 is reported.
	Depth int

	// Divide prints the node count below each root move at Depth.
	Divide bool

	// Workers splits the root across goroutines; 0 uses GOMAXPROCS and 1
	// runs sequentially.
	Workers int

	// Verify compares every position with the reference generator instead
	// of counting.
	Verify bool

	// HashEntries caps the transposition table shared by all depths.
	// 0 disables it.
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		Workers: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("depth %d outside 1-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("hash entries %d is negative: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	return nil
}
