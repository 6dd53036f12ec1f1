package database

import "sync"

// Table is a keyed, insertion-ordered set of rows guarded by its own lock.
type Table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[string]T)}
}

// Get retrieves a row by key.
func (t *Table[T]) Get(key string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[key]
	return row, ok
}

// Has reports whether key is present.
func (t *Table[T]) Has(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[key]
	return ok
}

// Put stores or replaces a row.
func (t *Table[T]) Put(key string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[key]; !exists {
		t.order = append(t.order, key)
	}
	t.rows[key] = row
}

// Insert stores row only if key is free and reports whether it did.
func (t *Table[T]) Insert(key string, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[key]; exists {
		return false
	}
	t.order = append(t.order, key)
	t.rows[key] = row
	return true
}

// Scan returns rows accepted by filter in insertion order. A nil filter accepts all rows.
func (t *Table[T]) Scan(filter func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	res := make([]T, 0, len(t.order))
	for _, key := range t.order {
		row := t.rows[key]
		if filter == nil || filter(row) {
			res = append(res, row)
		}
	}
	return res
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
