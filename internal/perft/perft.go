// Package perft counts the leaves of the legal move tree, the standard way
// of checking a move generator against published reference numbers.
package perft

import (
	"context"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Counts holds the statistics of the moves made at the last ply.
type Counts struct {
	Nodes      uint64 `json:"nodes"`
	Captures   uint64 `json:"captures"`
	EnPassant  uint64 `json:"en_passant"`
	Castles    uint64 `json:"castles"`
	Promotions uint64 `json:"promotions"`
	Checks     uint64 `json:"checks"`
	Checkmates uint64 `json:"checkmates"`
}

// Add accumulates o into c.
func (c *Counts) Add(o Counts) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
	c.Checks += o.Checks
	c.Checkmates += o.Checkmates
}

// DivideEntry is the subtree size below one root move.
type DivideEntry struct {
	Move   chess.Move
	Counts Counts
}

// Table caches subtree counts by position and remaining depth.
type Table = hashing.Table[Counts]

// NewTable creates a Table holding at most maxEntries subtrees; 0 means
// unlimited.
func NewTable(maxEntries int) *Table {
	return hashing.NewTable[Counts](maxEntries)
}

// Run walks the legal move tree of b to the given depth. Depth 0 counts the
// position itself as a single node. b is not modified.
func Run(b *engine.Board, depth int) Counts {
	c, _ := RunCached(context.Background(), b, depth, nil)
	return c
}

// RunCached is Run with transpositions answered from table. A nil table
// disables caching. The table may be shared across calls and goroutines.
// The walk stops early once ctx is done and returns ctx.Err().
func RunCached(ctx context.Context, b *engine.Board, depth int, table *Table) (Counts, error) {
	var c Counts
	if depth <= 0 {
		c.Nodes = 1
		return c, nil
	}
	walker{ctx, table}.walk(b, depth, &c)
	if err := ctx.Err(); err != nil {
		return Counts{}, err
	}
	return c, nil
}

// Divide runs perft separately below every legal root move, in generation
// order. It stops with ctx.Err() once ctx is done.
func Divide(ctx context.Context, b *engine.Board, depth int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, nil
	}
	w := walker{ctx: ctx}
	moves := b.GenerateLegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, mv := range moves {
		var c Counts
		w.expand(b, mv, depth, &c)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, DivideEntry{Move: mv, Counts: c})
	}
	return entries, nil
}

// RunParallel splits the tree at the root and expands each root move on a
// worker pool. workers < 1 uses GOMAXPROCS. The totals equal Run's.
func RunParallel(ctx context.Context, b *engine.Board, depth, workers int) (Counts, error) {
	return RunParallelCached(ctx, b, depth, workers, nil)
}

// RunParallelCached is RunParallel with all workers sharing table.
func RunParallelCached(ctx context.Context, b *engine.Board, depth, workers int, table *Table) (Counts, error) {
	if depth <= 1 {
		return RunCached(ctx, b, depth, table)
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	w := walker{ctx, table}
	pool := worker.NewPoolWithOptions(w.expandItem, worker.WithWorkers(workers))
	pool.Start()

	root := *b
	go func() {
		for i, mv := range root.GenerateLegalMoves() {
			pool.Submit(worker.WorkItem{Index: i, Board: root, Move: mv, Depth: depth})
		}
		pool.Close()
	}()

	var total Counts
	done := ctx.Done()
	for {
		select {
		case <-done:
			pool.Stop()
			done = nil
		case res, ok := <-pool.Results():
			if !ok {
				if err := ctx.Err(); err != nil {
					return Counts{}, err
				}
				return total, nil
			}
			total.Add(res.Payload.(Counts))
		}
	}
}

// walker descends the move tree, consulting table when it is set. It
// abandons the tree once ctx is done, leaving partial counts.
type walker struct {
	ctx   context.Context
	table *Table
}

func (w walker) expandItem(item worker.WorkItem) worker.ProcessResult {
	var c Counts
	w.expand(&item.Board, item.Move, item.Depth, &c)
	return worker.ProcessResult{Index: item.Index, Move: item.Move, Payload: c}
}

func (w walker) walk(b *engine.Board, depth int, c *Counts) {
	// The two plies above the leaves finish in microseconds.
	if depth > 2 && w.ctx.Err() != nil {
		return
	}
	// Leaf subtrees are cheaper to count than to hash.
	if w.table == nil || depth < 2 {
		for _, mv := range b.GenerateLegalMoves() {
			w.expand(b, mv, depth, c)
		}
		return
	}

	sig := hashing.Key(b)
	if cached, ok := w.table.Lookup(sig, depth); ok {
		c.Add(cached)
		return
	}
	var sub Counts
	for _, mv := range b.GenerateLegalMoves() {
		w.expand(b, mv, depth, &sub)
	}
	if w.ctx.Err() != nil {
		return
	}
	w.table.Store(sig, depth, sub)
	c.Add(sub)
}

// expand plays mv on a copy of b and either classifies it (depth 1) or
// descends into the resulting position.
func (w walker) expand(b *engine.Board, mv chess.Move, depth int, c *Counts) {
	child := *b
	if err := child.MakeMove(mv); err != nil {
		return
	}
	if depth > 1 {
		w.walk(&child, depth-1, c)
		return
	}

	c.Nodes++
	if b.IsCapture(mv) {
		c.Captures++
	}
	if b.IsEnPassant(mv) {
		c.EnPassant++
	}
	if b.IsCastle(mv) {
		c.Castles++
	}
	if b.IsPromotion(mv) {
		c.Promotions++
	}
	if child.InCheck() {
		c.Checks++
		if !child.HasLegalMoves() {
			c.Checkmates++
		}
	}
}
