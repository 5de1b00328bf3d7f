// Package memoryledger provides an in-process implementation of the ledger
// port. It backs tests and single-node deployments; the mutex gives the
// per-key write serialization the port demands, and range scans copy a
// snapshot under the read lock so iteration never observes partial writes.
package memoryledger

import (
	"context"
	"slices"
	"sync"

	"tradefinance/internal/core/ports"
)

// MemoryLedger is a sorted in-memory key-value store.
type MemoryLedger struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		entries: make(map[string][]byte),
	}
}

var _ ports.Ledger = (*MemoryLedger)(nil)

// Get returns the value stored under key.
func (l *MemoryLedger) Get(_ context.Context, key string) ([]byte, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	value, ok := l.entries[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(value), true, nil
}

// Put stores value under key, overwriting any previous value.
func (l *MemoryLedger) Put(_ context.Context, key string, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[key] = slices.Clone(value)
	return nil
}

// Range returns an iterator over keys in [startKey, endKey) in ascending
// order. Empty bounds are open; the snapshot is taken under the read lock.
func (l *MemoryLedger) Range(_ context.Context, startKey, endKey string) (ports.LedgerIterator, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.entries))
	for key := range l.entries {
		if startKey != "" && key < startKey {
			continue
		}
		if endKey != "" && key >= endKey {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	values := make([][]byte, len(keys))
	for i, key := range keys {
		values[i] = slices.Clone(l.entries[key])
	}

	return &snapshotIterator{keys: keys, values: values, pos: -1}, nil
}

// snapshotIterator walks a copied snapshot; it never fails.
type snapshotIterator struct {
	keys   []string
	values [][]byte
	pos    int
}

func (it *snapshotIterator) Next() bool {
	if it.pos+1 >= len(it.keys) {
		return false
	}
	it.pos++
	return true
}

func (it *snapshotIterator) Key() string {
	return it.keys[it.pos]
}

func (it *snapshotIterator) Value() []byte {
	return it.values[it.pos]
}

func (it *snapshotIterator) Err() error {
	return nil
}

func (it *snapshotIterator) Close() error {
	return nil
}
