// Package fixture reads and writes tables in a small line-oriented text
// format:
//
//	# people seen at the door
//	columns id INTEGER, name, photo
//	row 1, "Alice", x'89504e47'
//	row 2, null
//	row
//
// The header lists the column names, each optionally followed by its type.
// Columns without a type get it from their first non-null value. Every
// "row" line adds a row; missing trailing values are null. Values are
// integers, floats (with a decimal point or an exponent), double-quoted
// strings, x'..' hex blobs and null. Keywords are case-insensitive and "#"
// starts a comment.
package fixture

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/database"
	"github.com/bisegni/cursormock/pkg/logging"
	"github.com/bisegni/cursormock/pkg/rows"
	"github.com/bisegni/cursormock/pkg/schema"
)

// Extension is the file extension of fixture files.
const Extension = ".cursor"

// Load reads a fixture file into a table named after the file.
func Load(path string) (*database.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()
	return Parse(database.TableName(path), f)
}

// Parse reads a fixture from r.
func Parse(name string, r io.Reader) (*database.Table, error) {
	ast, err := fixtureParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return ast.Table(name)
}

// ParseString parses a fixture held in a string.
func ParseString(name, src string) (*database.Table, error) {
	return Parse(name, strings.NewReader(src))
}

// Table validates the rows of the fixture and builds a table.
func (f *ASTFixture) Table(name string) (*database.Table, error) {
	names := make([]string, len(f.Columns))
	types := make([]column.Type, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
		if c.Type != nil {
			t, err := column.ParseType(strings.ToUpper(*c.Type))
			if err != nil {
				return nil, err
			}
			types[i] = t
		}
	}

	s, err := schema.New(names, types)
	if err != nil {
		return nil, err
	}

	b := rows.NewBuilder(s)
	for _, row := range f.Rows {
		values := make([]any, len(row.Values))
		for i, v := range row.Values {
			value, err := v.Value()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", row.Pos, err)
			}
			// Integer literals are accepted by FLOAT columns.
			if n, ok := value.(int64); ok && i < s.ColumnCount() {
				if t, _ := s.ColumnType(i); t == column.Float {
					value = float64(n)
				}
			}
			values[i] = value
		}
		if err := b.AddRow(values...); err != nil {
			return nil, fmt.Errorf("%s: %w", row.Pos, err)
		}
	}

	logging.WithTable(name).Debug("fixture loaded", "rows", b.Len(), "columns", len(names))
	return database.FromBuilder(name, b), nil
}

// Value converts a literal to its cell value.
func (v *ASTValue) Value() (any, error) {
	switch {
	case v.Null:
		return nil, nil
	case v.Float != nil:
		return *v.Float, nil
	case v.Int != nil:
		return *v.Int, nil
	case v.String != nil:
		return *v.String, nil
	case v.Blob != nil:
		digits := (*v.Blob)[2 : len(*v.Blob)-1]
		data, err := hex.DecodeString(digits)
		if err != nil {
			return nil, fmt.Errorf("invalid blob literal %s: %w", *v.Blob, err)
		}
		return data, nil
	default:
		return nil, nil
	}
}
