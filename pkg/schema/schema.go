// Package schema describes the columns of a mocked result set.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bisegni/cursormock/pkg/column"
)

var (
	// ErrArityMismatch is returned when column names and type slots differ in length.
	ErrArityMismatch = errors.New("column names and column types must have the same length")

	// ErrColumnIndexOutOfRange is returned when a column index is outside the schema bounds.
	ErrColumnIndexOutOfRange = errors.New("column index is out of schema bounds")
)

// Schema holds the column information a cursor exposes.
type Schema interface {
	// ColumnIndex returns the index of the first column whose name matches
	// (case-insensitively), or -1.
	ColumnIndex(name string) int
	// ColumnName returns the name at index, false if index is out of bounds.
	ColumnName(index int) (string, bool)
	// ColumnNames returns a copy of the column names in order.
	ColumnNames() []string
	ColumnCount() int
	// ColumnType returns the fixed type of a column, or the zero Type if
	// none has been fixed yet.
	ColumnType(index int) (column.Type, error)
}

// Mutable is a Schema whose column types can be fixed after creation.
// Builders use it to detect column types from the first non-null value.
type Mutable interface {
	Schema
	// SetColumnType fixes the type of the column at index. Callers guarantee
	// the index is valid.
	SetColumnType(index int, t column.Type)
}

// Columns is the default Schema implementation. It also implements Mutable.
type Columns struct {
	names  []string
	types  []column.Type
	frozen bool
}

// New creates a schema from parallel name and type slices. Unset types are
// the zero column.Type.
func New(names []string, types []column.Type) (*Columns, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("%w: names %v (%d), types %v (%d)",
			ErrArityMismatch, names, len(names), types, len(types))
	}
	c := &Columns{
		names: make([]string, len(names)),
		types: make([]column.Type, len(types)),
	}
	copy(c.names, names)
	copy(c.types, types)
	return c, nil
}

// Raw creates a schema from column names with every type unset.
func Raw(first string, others ...string) *Columns {
	names := make([]string, 0, len(others)+1)
	names = append(names, first)
	names = append(names, others...)
	return &Columns{
		names: names,
		types: make([]column.Type, len(names)),
	}
}

func (c *Columns) ColumnIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, n := range c.names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

func (c *Columns) ColumnName(index int) (string, bool) {
	if index < 0 || index >= len(c.names) {
		return "", false
	}
	return c.names[index], true
}

func (c *Columns) ColumnNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Columns) ColumnCount() int {
	return len(c.names)
}

func (c *Columns) ColumnType(index int) (column.Type, error) {
	if index < 0 || index >= len(c.types) {
		return 0, fmt.Errorf("%w: index %d, columns %d", ErrColumnIndexOutOfRange, index, len(c.types))
	}
	return c.types[index], nil
}

// SetColumnType fixes a column type. It panics once the schema is frozen:
// cursors share the schema by reference and rely on it not changing.
func (c *Columns) SetColumnType(index int, t column.Type) {
	if c.frozen {
		panic("schema: SetColumnType called on a frozen schema")
	}
	c.types[index] = t
}

// Freeze marks the point after which column types no longer change.
func (c *Columns) Freeze() {
	c.frozen = true
}

// Frozen reports whether Freeze has been called.
func (c *Columns) Frozen() bool {
	return c.frozen
}

// Equal reports whether two schemas have the same names and types in order.
func Equal(a, b Schema) bool {
	if a.ColumnCount() != b.ColumnCount() {
		return false
	}
	for i := 0; i < a.ColumnCount(); i++ {
		an, _ := a.ColumnName(i)
		bn, _ := b.ColumnName(i)
		if an != bn {
			return false
		}
		at, _ := a.ColumnType(i)
		bt, _ := b.ColumnType(i)
		if at != bt {
			return false
		}
	}
	return true
}
