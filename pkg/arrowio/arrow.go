// Package arrowio converts tables to and from Apache Arrow tables and
// Parquet files.
//
// Imported columns get their type from the Arrow schema up front, so every
// row is validated against a fixed schema:
//
//	INT16, INT32, INT64                 -> INTEGER
//	FLOAT32, FLOAT64                    -> FLOAT
//	STRING, LARGE_STRING                -> TEXT
//	BINARY, LARGE_BINARY                -> BLOB
//	NULL                                -> unset
//
// Exported columns use INT64, FLOAT64, STRING, BINARY and NULL.
package arrowio

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/cursor"
	"github.com/bisegni/cursormock/pkg/database"
	"github.com/bisegni/cursormock/pkg/logging"
	"github.com/bisegni/cursormock/pkg/rows"
	"github.com/bisegni/cursormock/pkg/schema"
)

// fixedSchema hides the Mutable capability: column types come from the
// Arrow schema and are never detected from values.
type fixedSchema struct {
	schema.Schema
}

// ColumnType maps an Arrow data type onto a column type. The zero Type is
// returned for the NULL data type.
func ColumnType(dt arrow.DataType) (column.Type, error) {
	switch dt.ID() {
	case arrow.INT16, arrow.INT32, arrow.INT64:
		return column.Integer, nil
	case arrow.FLOAT32, arrow.FLOAT64:
		return column.Float, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return column.Text, nil
	case arrow.BINARY, arrow.LARGE_BINARY:
		return column.Blob, nil
	case arrow.NULL:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: arrow %s", column.ErrUnsupportedType, dt)
	}
}

// DataType maps a column type onto the Arrow data type used for export.
func DataType(t column.Type) arrow.DataType {
	switch t {
	case column.Integer:
		return arrow.PrimitiveTypes.Int64
	case column.Float:
		return arrow.PrimitiveTypes.Float64
	case column.Text:
		return arrow.BinaryTypes.String
	case column.Blob:
		return arrow.BinaryTypes.Binary
	default:
		return arrow.Null
	}
}

// FromArrow copies an Arrow table into a new table.
func FromArrow(name string, tbl arrow.Table) (*database.Table, error) {
	sc := tbl.Schema()
	if sc.NumFields() == 0 {
		return nil, fmt.Errorf("table '%s': %w", name, database.ErrNoColumns)
	}

	names := make([]string, sc.NumFields())
	types := make([]column.Type, sc.NumFields())
	for i, field := range sc.Fields() {
		t, err := ColumnType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", field.Name, err)
		}
		names[i] = field.Name
		types[i] = t
	}

	columns, err := schema.New(names, types)
	if err != nil {
		return nil, err
	}
	columns.Freeze()
	b := rows.NewBuilder(fixedSchema{columns})

	tr := array.NewTableReader(tbl, max(tbl.NumRows(), 1))
	defer tr.Release()

	row := 0
	for tr.Next() {
		rec := tr.Record()
		for r := 0; r < int(rec.NumRows()); r++ {
			values := make([]any, rec.NumCols())
			for c, col := range rec.Columns() {
				values[c] = cellValue(col, r)
			}
			if err := b.AddRow(values...); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
			row++
		}
	}
	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("error reading table: %w", err)
	}

	logging.WithTable(name).Debug("arrow table imported", "rows", b.Len(), "columns", len(names))
	return database.NewTable(name, columns, b.Build()), nil
}

// cellValue returns the Go value at pos, nil for null. Blobs are copied out
// of the Arrow buffers.
func cellValue(col arrow.Array, pos int) any {
	if col.IsNull(pos) {
		return nil
	}

	switch a := col.(type) {
	case *array.Int16:
		return a.Value(pos)
	case *array.Int32:
		return a.Value(pos)
	case *array.Int64:
		return a.Value(pos)
	case *array.Float32:
		return a.Value(pos)
	case *array.Float64:
		return a.Value(pos)
	case *array.String:
		return a.Value(pos)
	case *array.LargeString:
		return a.Value(pos)
	case *array.Binary:
		return bytes.Clone(a.Value(pos))
	case *array.LargeBinary:
		return bytes.Clone(a.Value(pos))
	default:
		return nil
	}
}

// Schema returns the Arrow schema a table is exported with.
func Schema(t *database.Table) *arrow.Schema {
	s := t.Schema()
	fields := make([]arrow.Field, s.ColumnCount())
	for i := range fields {
		name, _ := s.ColumnName(i)
		typ, _ := s.ColumnType(i)
		fields[i] = arrow.Field{Name: name, Type: DataType(typ), Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// ToArrow copies a table into a single-record Arrow table. The caller must
// Release the result.
func ToArrow(t *database.Table, mem memory.Allocator) (arrow.Table, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	sc := Schema(t)

	b := array.NewRecordBuilder(mem, sc)
	defer b.Release()

	c := t.Open()
	defer c.Close()

	it, err := c.Iterate()
	if err != nil {
		return nil, err
	}
	for it.Next() {
		for i, fb := range b.Fields() {
			if err := appendCell(fb, c, i); err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", c.Position(), i, err)
			}
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}

	rec := b.NewRecord()
	defer rec.Release()
	return array.NewTableFromRecords(sc, []arrow.Record{rec}), nil
}

func appendCell(fb array.Builder, c *cursor.Cursor, col int) error {
	isNull, err := c.IsNull(col)
	if err != nil {
		return err
	}
	if isNull {
		fb.AppendNull()
		return nil
	}

	switch b := fb.(type) {
	case *array.Int64Builder:
		v, err := c.Int64(col)
		if err != nil {
			return err
		}
		b.Append(v)
	case *array.Float64Builder:
		v, err := c.Float64(col)
		if err != nil {
			return err
		}
		b.Append(v)
	case *array.StringBuilder:
		v, _, err := c.String(col)
		if err != nil {
			return err
		}
		b.Append(v)
	case *array.BinaryBuilder:
		v, err := c.Blob(col)
		if err != nil {
			return err
		}
		b.Append(v)
	default:
		return fmt.Errorf("unsupported arrow builder %T", fb)
	}
	return nil
}
