package database

// Row represents the current row of a table scan.
type Row interface {
	// Get returns the value of a column by name (case-insensitive), nil for
	// null.
	Get(column string) (interface{}, error)
	// Primitive returns the row as an ordered parser.Record.
	Primitive() interface{}
}

// RowIterator allows iterating over rows in a table.
type RowIterator interface {
	// Next advances the iterator. Returns false if no more rows or error.
	Next() bool
	// Row returns the current row.
	Row() Row
	// Error returns any error that occurred during iteration.
	Error() error
	// Close releases resources.
	Close() error
}
