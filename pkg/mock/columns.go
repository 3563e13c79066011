// Package mock provides the entry points for assembling cursors in tests:
// from a list of column names or from the fields of a struct type.
//
//	c := mock.ForColumns("id", "name").
//		MustAddRow(int64(1), "Jimmy").
//		Build()
package mock

import (
	"github.com/bisegni/cursormock/pkg/cursor"
	"github.com/bisegni/cursormock/pkg/rows"
	"github.com/bisegni/cursormock/pkg/schema"
)

// Columns builds a cursor from column names. Column types are detected from
// the first non-null value added to each column.
type Columns struct {
	schema  *schema.Columns
	builder *rows.Builder
}

func ForColumns(first string, others ...string) *Columns {
	s := schema.Raw(first, others...)
	return &Columns{
		schema:  s,
		builder: rows.NewBuilder(s),
	}
}

// AddRow validates and appends a row.
func (c *Columns) AddRow(values ...any) error {
	return c.builder.AddRow(values...)
}

// MustAddRow is AddRow for fixtures known to be valid. It panics on error
// and returns c to chain calls.
func (c *Columns) MustAddRow(values ...any) *Columns {
	if err := c.builder.AddRow(values...); err != nil {
		panic(err)
	}
	return c
}

func (c *Columns) Schema() schema.Schema {
	return c.schema
}

// Store finalizes the rows added so far.
func (c *Columns) Store() rows.Store {
	return c.builder.Build()
}

// Build returns a cursor over the rows added so far. The schema is frozen
// afterwards: rows that would fix a new column type are rejected.
func (c *Columns) Build() *cursor.Cursor {
	return cursor.New(c.schema, c.builder.Build())
}
