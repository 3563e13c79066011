package cursor

import (
	"fmt"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/schema"
)

// Value returns the raw cell value of the current row, nil for null.
func (c *Cursor) Value(col int) (any, error) {
	if err := c.checkPosition(); err != nil {
		return nil, err
	}
	if col < 0 || col >= c.schema.ColumnCount() {
		return nil, fmt.Errorf("%w: index %d, columns %d",
			schema.ErrColumnIndexOutOfRange, col, c.schema.ColumnCount())
	}
	return c.rows.Get(c.index, col), nil
}

// Blob returns the cell as a byte slice, nil for null.
func (c *Cursor) Blob(col int) ([]byte, error) {
	v, err := c.Value(col)
	if err != nil || v == nil {
		return nil, err
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a blob", ErrValueKind, v)
	}
	return b, nil
}

// String returns the cell as text. A null cell returns "" and ok false.
func (c *Cursor) String(col int) (s string, ok bool, err error) {
	v, err := c.Value(col)
	if err != nil || v == nil {
		return "", false, err
	}
	s, isString := v.(string)
	if !isString {
		return "", false, fmt.Errorf("%w: %T is not text", ErrValueKind, v)
	}
	return s, true, nil
}

func (c *Cursor) Int16(col int) (int16, error) {
	v, err := c.number(col)
	if err != nil || v == nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return int16(n), nil
	case int16:
		return n, nil
	case int32:
		return int16(n), nil
	case int64:
		return int16(n), nil
	case float32:
		return int16(n), nil
	default:
		return int16(v.(float64)), nil
	}
}

func (c *Cursor) Int32(col int) (int32, error) {
	v, err := c.number(col)
	if err != nil || v == nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return int32(n), nil
	case int16:
		return int32(n), nil
	case int32:
		return n, nil
	case int64:
		return int32(n), nil
	case float32:
		return int32(n), nil
	default:
		return int32(v.(float64)), nil
	}
}

func (c *Cursor) Int64(col int) (int64, error) {
	v, err := c.number(col)
	if err != nil || v == nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float32:
		return int64(n), nil
	default:
		return int64(v.(float64)), nil
	}
}

func (c *Cursor) Float32(col int) (float32, error) {
	v, err := c.number(col)
	if err != nil || v == nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return float32(n), nil
	case int16:
		return float32(n), nil
	case int32:
		return float32(n), nil
	case int64:
		return float32(n), nil
	case float32:
		return n, nil
	default:
		return float32(v.(float64)), nil
	}
}

func (c *Cursor) Float64(col int) (float64, error) {
	v, err := c.number(col)
	if err != nil || v == nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	default:
		return v.(float64), nil
	}
}

// IsNull reports whether the cell is null.
func (c *Cursor) IsNull(col int) (bool, error) {
	v, err := c.Value(col)
	if err != nil {
		return false, err
	}
	return v == nil, nil
}

// Type returns CellNull for a null cell, otherwise the cell marker of the
// column type (CellNull if the column never got a type).
func (c *Cursor) Type(col int) (column.CellType, error) {
	v, err := c.Value(col)
	if err != nil {
		return column.CellNull, err
	}
	if v == nil {
		return column.CellNull, nil
	}
	typ, err := c.schema.ColumnType(col)
	if err != nil {
		return column.CellNull, err
	}
	return typ.CellType(), nil
}

// number returns the cell if it is null or one of the numeric kinds.
func (c *Cursor) number(col int) (any, error) {
	v, err := c.Value(col)
	if err != nil || v == nil {
		return nil, err
	}
	switch v.(type) {
	case int, int16, int32, int64, float32, float64:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}
