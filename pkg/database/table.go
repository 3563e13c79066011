package database

import (
	"github.com/bisegni/cursormock/pkg/cursor"
	"github.com/bisegni/cursormock/pkg/parser"
	"github.com/bisegni/cursormock/pkg/rows"
	"github.com/bisegni/cursormock/pkg/schema"
)

// Table is a named, finalized pair of schema and rows. Every Open returns an
// independent cursor; the schema and store are shared read-only.
type Table struct {
	Name   string
	schema schema.Schema
	store  rows.Store
}

// NewTable wraps a schema and a store. The schema is frozen if it supports it.
func NewTable(name string, s schema.Schema, st rows.Store) *Table {
	if st == nil {
		st = rows.Empty
	}
	if f, ok := s.(interface{ Freeze() }); ok {
		f.Freeze()
	}
	return &Table{Name: name, schema: s, store: st}
}

// FromBuilder finalizes b into a table.
func FromBuilder(name string, b *rows.Builder) *Table {
	return NewTable(name, b.Schema(), b.Build())
}

func (t *Table) Schema() schema.Schema {
	return t.schema
}

func (t *Table) Store() rows.Store {
	return t.store
}

func (t *Table) Count() int {
	return t.store.Count()
}

// Open returns a new cursor positioned before the first row.
func (t *Table) Open() *cursor.Cursor {
	return cursor.New(t.schema, t.store)
}

// Iterate scans the table through a fresh cursor.
func (t *Table) Iterate() (RowIterator, error) {
	c := t.Open()
	it, err := c.Iterate()
	if err != nil {
		return nil, err
	}
	return &cursorIterator{cursor: c, it: it}, nil
}

// Records returns every row as an ordered record keyed by column name.
func (t *Table) Records() ([]parser.Record, error) {
	it, err := t.Iterate()
	if err != nil {
		return nil, err
	}
	defer it.Close()

	records := make([]parser.Record, 0, t.Count())
	for it.Next() {
		records = append(records, it.Row().Primitive().(parser.Record))
	}
	return records, it.Error()
}

type cursorIterator struct {
	cursor *cursor.Cursor
	it     *cursor.Iterator
}

func (it *cursorIterator) Next() bool {
	return it.it.Next()
}

func (it *cursorIterator) Row() Row {
	return &CursorRow{cursor: it.cursor}
}

func (it *cursorIterator) Error() error {
	return it.it.Error()
}

func (it *cursorIterator) Close() error {
	it.cursor.Close()
	return nil
}

// CursorRow implements Row for the current position of a cursor.
type CursorRow struct {
	cursor *cursor.Cursor
}

// NewCursorRow reads the row c is positioned on.
func NewCursorRow(c *cursor.Cursor) *CursorRow {
	return &CursorRow{cursor: c}
}

func (r *CursorRow) Get(column string) (interface{}, error) {
	index, err := r.cursor.ColumnIndexOrError(column)
	if err != nil {
		return nil, err
	}
	return r.cursor.Value(index)
}

func (r *CursorRow) Primitive() interface{} {
	record := make(parser.Record, 0, r.cursor.ColumnCount())
	for i, name := range r.cursor.ColumnNames() {
		value, _ := r.cursor.Value(i)
		record = append(record, parser.Field{Key: name, Value: value})
	}
	return record
}
