// Package rows holds the immutable cell storage behind a cursor and the
// builder that validates and accumulates it.
package rows

// Store is a finalized rectangular table of cell values. A nil cell is null.
// Implementations are never mutated after construction, so a Store may be
// shared between cursors.
type Store interface {
	// Count returns the number of rows.
	Count() int
	// Get returns the value at (row, column). Callers guarantee both indexes
	// are within bounds.
	Get(row, column int) any
}

// Empty is the shared store with no rows.
var Empty Store = emptyStore{}

type emptyStore struct{}

func (emptyStore) Count() int { return 0 }

func (emptyStore) Get(int, int) any { return nil }

type table struct {
	data [][]any
}

func (t *table) Count() int {
	return len(t.data)
}

func (t *table) Get(row, column int) any {
	return t.data[row][column]
}

// Row copies a single row out of a store.
func Row(s Store, row, columns int) []any {
	out := make([]any, columns)
	for c := 0; c < columns; c++ {
		out[c] = s.Get(row, c)
	}
	return out
}
