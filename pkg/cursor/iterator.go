package cursor

import "iter"

// Iterator walks a cursor forward by calling MoveToNext. It does not copy
// rows: Cursor returns the same underlying cursor at every step.
type Iterator struct {
	cursor *Cursor
	err    error
}

// Iterate returns an iterator starting at the current position. Moving to
// the first row beforehand therefore skips it. When Next returns false the
// cursor is after the last row.
func (c *Cursor) Iterate() (*Iterator, error) {
	if err := c.checkState(); err != nil {
		return nil, err
	}
	return &Iterator{cursor: c}, nil
}

func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	ok, err := it.cursor.MoveToNext()
	if err != nil {
		it.err = err
		return false
	}
	return ok
}

func (it *Iterator) Cursor() *Cursor {
	return it.cursor
}

// Error returns the error that stopped the iteration, if any (a cursor
// closed while iterating).
func (it *Iterator) Error() error {
	return it.err
}

// Rows is the range-over-func form of Iterate:
//
//	seq, err := c.Rows()
//	for row := range seq {
//		id, _ := row.Int64(0)
//	}
func (c *Cursor) Rows() (iter.Seq[*Cursor], error) {
	it, err := c.Iterate()
	if err != nil {
		return nil, err
	}
	return func(yield func(*Cursor) bool) {
		for it.Next() {
			if !yield(it.Cursor()) {
				return
			}
		}
	}, nil
}
