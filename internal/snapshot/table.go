package snapshot

import (
	"sync"

	"tickerfeed/internal/model"
)

// Table is the mutex-guarded symbol → latest update mapping.
// Last write wins by arrival order within a flush window.
type Table struct {
	mu      sync.Mutex
	entries map[string]model.TickerUpdate
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]model.TickerUpdate),
	}
}

// Upsert records the update as the latest pending value for its symbol,
// replacing any prior entry that has not been flushed yet.
func (t *Table) Upsert(u model.TickerUpdate) {
	t.mu.Lock()
	t.entries[u.Symbol] = u
	t.mu.Unlock()
}

// Drain atomically takes ownership of all pending entries and resets the
// table. Concurrent upserts land in the fresh map.
func (t *Table) Drain() map[string]model.TickerUpdate {
	t.mu.Lock()
	drained := t.entries
	t.entries = make(map[string]model.TickerUpdate)
	t.mu.Unlock()
	return drained
}

// Len returns the number of pending entries.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
