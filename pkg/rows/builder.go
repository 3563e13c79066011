package rows

import (
	"errors"
	"fmt"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/schema"
)

var (
	// ErrRowArity is returned when a row has more values than the schema has columns.
	ErrRowArity = errors.New("row has more values than the schema holds")

	// ErrColumnTypeMismatch is returned when a value conflicts with a fixed column type.
	ErrColumnTypeMismatch = errors.New("column type mismatch")

	// ErrSchemaFrozen is returned when a row would fix a column type of a
	// schema that is already shared with a cursor.
	ErrSchemaFrozen = errors.New("schema is frozen")
)

// TypeMismatchError describes a value whose type differs from its column type.
type TypeMismatchError struct {
	Value    any
	Index    int
	Actual   column.Type
	Expected column.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value `%v` at `%d` has type `%s`, expected: `%s`",
		e.Value, e.Index, e.Actual, e.Expected)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrColumnTypeMismatch
}

type freezable interface {
	Frozen() bool
}

type typeFix struct {
	index int
	typ   column.Type
}

// Builder accumulates rows for a schema and produces a Store.
//
// Every non-null value is classified and checked against the schema column
// type. When the schema implements schema.Mutable and a column has no type
// yet, the first accepted non-null value fixes it. A row is validated as a
// whole before anything is committed, so a failed AddRow leaves both the
// schema and the accumulated rows untouched.
//
// A Builder is meant for sequential use by a single owner.
type Builder struct {
	schema  schema.Schema
	mutable schema.Mutable
	columns int
	rows    [][]any
}

// NewBuilder creates a builder for s. The column count is fixed here.
func NewBuilder(s schema.Schema) *Builder {
	b := &Builder{
		schema:  s,
		columns: s.ColumnCount(),
		rows:    make([][]any, 0, 3),
	}
	if m, ok := s.(schema.Mutable); ok {
		b.mutable = m
	}
	return b
}

// AddRow appends a row. Missing trailing values are null; calling AddRow with
// no values inserts an all-null row. Pointers are stored dereferenced.
func (b *Builder) AddRow(values ...any) error {
	if len(values) > b.columns {
		return fmt.Errorf("%w. Expected: %d, actual: %d", ErrRowArity, b.columns, len(values))
	}

	row := make([]any, b.columns)
	var fixes []typeFix

	for i, raw := range values {
		value := column.Unbox(raw)
		if value == nil {
			continue
		}

		typ, err := column.Classify(value)
		if err != nil {
			return fmt.Errorf("value at `%d`: %w", i, err)
		}

		expected, err := b.schema.ColumnType(i)
		if err != nil {
			return err
		}

		if !expected.Valid() && b.mutable != nil {
			fixes = append(fixes, typeFix{index: i, typ: typ})
		} else if expected != typ {
			return &TypeMismatchError{Value: value, Index: i, Actual: typ, Expected: expected}
		}
		row[i] = value
	}

	if len(fixes) > 0 {
		if f, ok := b.schema.(freezable); ok && f.Frozen() {
			return fmt.Errorf("%w: cannot fix type of column %d", ErrSchemaFrozen, fixes[0].index)
		}
		for _, fix := range fixes {
			b.mutable.SetColumnType(fix.index, fix.typ)
		}
	}

	b.rows = append(b.rows, row)
	return nil
}

// Len returns the number of accepted rows.
func (b *Builder) Len() int {
	return len(b.rows)
}

// Schema returns the schema rows are validated against.
func (b *Builder) Schema() schema.Schema {
	return b.schema
}

// Build finalizes the accepted rows. With no rows it returns Empty.
func (b *Builder) Build() Store {
	if len(b.rows) == 0 {
		return Empty
	}
	data := make([][]any, len(b.rows))
	copy(data, b.rows)
	return &table{data: data}
}
