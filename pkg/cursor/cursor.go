// Package cursor implements a positional, forward and backward iterable
// result-set cursor over an in-memory table.
//
// A Cursor starts before the first row (position -1). Movement clamps to
// the before-first (-1) and after-last (Count) positions and reports
// whether it landed on a valid row. Cells can only be read on a valid row.
//
// Cursors sharing a schema and a row store are independent of each other;
// a single Cursor is not safe for concurrent use.
package cursor

import (
	"fmt"
	"slices"

	"github.com/bisegni/cursormock/pkg/rows"
	"github.com/bisegni/cursormock/pkg/schema"
)

// Cursor is a positional reader over a schema and a row store.
type Cursor struct {
	schema    schema.Schema
	rows      rows.Store
	observers []Observer
	index     int
	closed    bool
}

type freezer interface {
	Freeze()
}

// New wraps s and st in a cursor positioned before the first row. A nil
// store is treated as rows.Empty. If the schema supports freezing it is
// frozen here: from now on it is shared and must not change.
func New(s schema.Schema, st rows.Store) *Cursor {
	if st == nil {
		st = rows.Empty
	}
	if f, ok := s.(freezer); ok {
		f.Freeze()
	}
	return &Cursor{
		schema: s,
		rows:   st,
		index:  -1,
	}
}

// Schema returns the schema the cursor reads with.
func (c *Cursor) Schema() schema.Schema {
	return c.schema
}

// Count returns the number of rows.
func (c *Cursor) Count() int {
	return c.rows.Count()
}

// Position returns the current position, -1 before the first row and
// Count() after the last one.
func (c *Cursor) Position() int {
	return c.index
}

// Move moves the cursor by offset rows relative to the current position.
func (c *Cursor) Move(offset int) (bool, error) {
	return c.MoveToPosition(c.index + offset)
}

// MoveToPosition moves to an absolute position. Targets past the end land
// after the last row, negative targets land before the first; both report
// false. Moving to the current valid position reports true.
func (c *Cursor) MoveToPosition(position int) (bool, error) {
	if err := c.checkState(); err != nil {
		return false, err
	}

	count := c.Count()
	switch {
	case position >= count:
		c.index = count
		return false, nil
	case position < 0:
		c.index = -1
		return false, nil
	case position == c.index:
		return true, nil
	default:
		c.index = position
		return true, nil
	}
}

func (c *Cursor) MoveToFirst() (bool, error) {
	return c.MoveToPosition(0)
}

func (c *Cursor) MoveToLast() (bool, error) {
	return c.MoveToPosition(c.Count() - 1)
}

func (c *Cursor) MoveToNext() (bool, error) {
	return c.MoveToPosition(c.index + 1)
}

func (c *Cursor) MoveToPrevious() (bool, error) {
	return c.MoveToPosition(c.index - 1)
}

func (c *Cursor) IsFirst() bool {
	return c.index == 0 && c.Count() > 0
}

func (c *Cursor) IsLast() bool {
	count := c.Count()
	return count > 0 && c.index == count-1
}

func (c *Cursor) IsBeforeFirst() bool {
	return c.Count() == 0 || c.index == -1
}

func (c *Cursor) IsAfterLast() bool {
	count := c.Count()
	return count == 0 || c.index == count
}

func (c *Cursor) ColumnIndex(name string) int {
	return c.schema.ColumnIndex(name)
}

// ColumnIndexOrError is ColumnIndex failing with ErrColumnNotFound instead of -1.
func (c *Cursor) ColumnIndexOrError(name string) (int, error) {
	index := c.ColumnIndex(name)
	if index < 0 {
		return -1, fmt.Errorf("%w: cannot find a `%s` column", ErrColumnNotFound, name)
	}
	return index, nil
}

func (c *Cursor) ColumnName(index int) (string, bool) {
	return c.schema.ColumnName(index)
}

func (c *Cursor) ColumnNames() []string {
	return c.schema.ColumnNames()
}

func (c *Cursor) ColumnCount() int {
	return c.schema.ColumnCount()
}

// Close marks the cursor closed and notifies every observer registered at
// the time of the call, once each. Closing again notifies them again.
func (c *Cursor) Close() {
	c.closed = true
	for _, o := range slices.Clone(c.observers) {
		o.OnInvalidated()
	}
}

func (c *Cursor) IsClosed() bool {
	return c.closed
}

func (c *Cursor) checkState() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

func (c *Cursor) checkPosition() error {
	if err := c.checkState(); err != nil {
		return err
	}
	if c.index == -1 || c.index >= c.Count() {
		return &PositionError{Position: c.index, Count: c.Count()}
	}
	return nil
}
