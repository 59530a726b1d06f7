// Package worker runs perft subtrees on a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one root move to expand: Board is the position before Move,
// Depth the number of plies still to search below it.
type WorkItem struct {
	Index int
	Board engine.Board
	Move  chess.Move
	Depth int
}

// ProcessResult carries the outcome of a WorkItem back to the submitter.
type ProcessResult struct {
	Index   int
	Move    chess.Move
	Payload interface{} // typed by the consumer
	Err     error
}

// ProcessFunc expands a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to numWorkers goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	work        chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool running processFunc.
// Default: 1 worker, buffer size of 32.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  32,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full. Results must be
// drained concurrently or Submit can deadlock.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes workers skip everything still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of processed items, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
