package status

import (
	"slices"
	"strings"
	"sync"
)

// Table holds named cells of type T, keyed "<subsystem>.<name>"
// Writers resolve a cell once at construction and then touch it without the table lock
type Table[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

// NewTable returns an empty table
func NewTable[T any]() *Table[T] {
	return &Table[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, creating a zero cell on first use
func (t *Table[T]) Get(key string) *T {
	if c, ok := t.Lookup(key); ok {
		return c
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.cells[key]
	if !ok {
		c = new(T)
		t.cells[key] = c
	}
	return c
}

// Lookup returns the cell for key without creating it
func (t *Table[T]) Lookup(key string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.cells[key]
	return c, ok
}

// Each visits cells whose key starts with prefix, in key order; "" visits all
func (t *Table[T]) Each(prefix string, fn func(key string, cell *T)) {
	t.mu.RLock()
	keys := make([]string, 0, len(t.cells))
	for k := range t.cells {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	cells := make([]*T, len(keys))
	slices.Sort(keys)
	for i, k := range keys {
		cells[i] = t.cells[k]
	}
	t.mu.RUnlock()

	for i, k := range keys {
		fn(k, cells[i])
	}
}

// Len returns the number of cells
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cells)
}
