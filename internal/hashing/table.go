package hashing

import (
	"sync"
	"sync/atomic"
)

type entryKey struct {
	hash  uint64
	depth int
}

type entry[V any] struct {
	check uint64
	value V
}

// Table caches one value per (position, depth) pair. It is safe for
// concurrent use.
type Table[V any] struct {
	mu          sync.RWMutex
	entries     map[entryKey]entry[V]
	maxCapacity int
	hits        atomic.Uint64
	misses      atomic.Uint64
}

// NewTable creates an empty table. maxCapacity of 0 means unlimited.
func NewTable[V any](maxCapacity int) *Table[V] {
	return &Table[V]{
		entries:     make(map[entryKey]entry[V]),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the value stored for sig at depth. Concurrent lookups do
// not block each other.
func (t *Table[V]) Lookup(sig Signature, depth int) (V, bool) {
	t.mu.RLock()
	e, ok := t.entries[entryKey{sig.Hash, depth}]
	t.mu.RUnlock()
	if !ok || e.check != sig.Check {
		t.misses.Add(1)
		var zero V
		return zero, false
	}
	t.hits.Add(1)
	return e.value, true
}

// Store records value for sig at depth. Once the table is full, new keys
// are dropped; an existing key is overwritten.
func (t *Table[V]) Store(sig Signature, depth int, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := entryKey{sig.Hash, depth}
	if _, ok := t.entries[key]; !ok && t.isFull() {
		return
	}
	t.entries[key] = entry[V]{check: sig.Check, value: value}
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table[V]) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isFull()
}

func (t *Table[V]) isFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Stats returns the number of lookups that hit and missed.
func (t *Table[V]) Stats() (hits, misses uint64) {
	return t.hits.Load(), t.misses.Load()
}

// Reset clears the table and its statistics.
func (t *Table[V]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[entryKey]entry[V])
	t.hits.Store(0)
	t.misses.Store(0)
}
