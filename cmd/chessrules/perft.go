package main

import (
	"context"
	"time"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// runPerft reports perft counts for every depth up to cfg.Perft.Depth, or
// checks the move lists against the reference generator when Verify is set.
func runPerft(ctx context.Context, cfg *config.Config, logger log.Interface) error {
	g, err := setupGame(cfg, logger)
	if err != nil {
		return err
	}
	b := g.Board()
	if cfg.Output.ShowBoard {
		if err := output.WriteBoard(cfg.OutputFile, b); err != nil {
			return err
		}
	}

	if cfg.Perft.Verify {
		return runVerify(ctx, cfg, g.History(), logger)
	}

	var table *perft.Table
	if cfg.Perft.HashEntries > 0 {
		table = perft.NewTable(cfg.Perft.HashEntries)
	}

	w := newReportWriter(cfg)
	for d := 1; d <= cfg.Perft.Depth; d++ {
		start := time.Now()
		counts, err := count(ctx, b, d, cfg.Perft.Workers, table)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		logger.WithFields(log.Fields{
			"depth":   d,
			"nodes":   counts.Nodes,
			"elapsed": elapsed,
		}).Debug("perft depth done")

		if err := w.WriteDepth(d, counts, elapsed); err != nil {
			return err
		}
	}

	if table != nil {
		hits, misses := table.Stats()
		logger.WithFields(log.Fields{
			"entries": table.Len(),
			"hits":    hits,
			"misses":  misses,
		}).Debug("transposition table")
	}

	if cfg.Perft.Divide {
		entries, err := perft.Divide(ctx, b, cfg.Perft.Depth)
		if err != nil {
			return err
		}
		if err := w.WriteDivide(cfg.Perft.Depth, entries); err != nil {
			return err
		}
	}
	return w.Close()
}

func runVerify(ctx context.Context, cfg *config.Config, setup []chess.Move, logger log.Interface) error {
	start := time.Now()
	if err := perft.Verify(ctx, setup, cfg.Perft.Depth); err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"depth":   cfg.Perft.Depth,
		"setup":   notation.FormatMoves(setup),
		"elapsed": time.Since(start),
	}).Info("move generation matches reference")
	return nil
}

// count runs sequentially for a single worker and on the pool otherwise.
// table may be nil.
func count(ctx context.Context, b *engine.Board, depth, workers int, table *perft.Table) (perft.Counts, error) {
	if workers == 1 {
		return perft.RunCached(ctx, b, depth, table)
	}
	return perft.RunParallelCached(ctx, b, depth, workers, table)
}

func newReportWriter(cfg *config.Config) output.ReportWriter {
	if cfg.Output.JSONFormat {
		return output.NewJSONWriter(cfg.OutputFile)
	}
	return output.NewTextWriter(cfg.OutputFile)
}
