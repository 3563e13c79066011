package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/logging"
	"github.com/bisegni/cursormock/pkg/parser"
	"github.com/bisegni/cursormock/pkg/rows"
	"github.com/bisegni/cursormock/pkg/schema"
)

// ErrNoColumns is returned when no column names are given and none can be
// found in the records.
var ErrNoColumns = errors.New("no columns found")

// LoadJSON reads a JSON or JSONL file (see parser.NewParser for the
// accepted inputs) into a table. With no explicit columns the column order
// is the first-seen key order across records; with explicit columns other
// keys are ignored.
func LoadJSON(filename string, columns []string) (*Table, error) {
	p, err := parser.NewParser(filename)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	records, err := p.ReadAll()
	if err != nil {
		return nil, err
	}
	return FromRecords(TableName(filename), records, columns)
}

// FromRecords builds a table from decoded records. Column types are
// detected from the values.
func FromRecords(name string, records []parser.Record, columns []string) (*Table, error) {
	if len(columns) == 0 {
		columns = collectColumns(records)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table '%s': %w", name, ErrNoColumns)
	}

	floats := floatColumns(records, columns)
	s := schema.Raw(columns[0], columns[1:]...)
	b := rows.NewBuilder(s)
	for i, record := range records {
		values := make([]any, len(columns))
		for c, key := range columns {
			raw, _ := record.Get(key)
			value, err := cellValue(raw, floats[c])
			if err != nil {
				return nil, fmt.Errorf("record %d, key %q: %w", i, key, err)
			}
			values[c] = value
		}
		if err := b.AddRow(values...); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	logging.WithTable(name).Debug("table loaded", "rows", b.Len(), "columns", len(columns))
	return FromBuilder(name, b), nil
}

// TableName derives a table name from a file name.
func TableName(filename string) string {
	if filename == "" || filename == "-" {
		return "stdin"
	}
	if filename[0] == '{' || filename[0] == '[' {
		return "inline"
	}
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func collectColumns(records []parser.Record) []string {
	seen := map[string]bool{}
	var columns []string
	for _, record := range records {
		for _, key := range record.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	return columns
}

// floatColumns reports, per column, whether any record holds a number
// that is not an integer. Such columns read all their numbers as float64.
func floatColumns(records []parser.Record, columns []string) []bool {
	floats := make([]bool, len(columns))
	for c, key := range columns {
		for _, record := range records {
			raw, _ := record.Get(key)
			if n, ok := raw.(json.Number); ok {
				if _, err := n.Int64(); err != nil {
					floats[c] = true
					break
				}
			}
		}
	}
	return floats
}

// cellValue maps a decoded JSON value onto a cell value. Numbers become
// int64 when integral, float64 otherwise or when asFloat is set.
func cellValue(raw interface{}, asFloat bool) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case json.Number:
		if !asFloat {
			if i, err := v.Int64(); err == nil {
				return i, nil
			}
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %s: %w", v, err)
		}
		return f, nil
	case bool:
		return nil, fmt.Errorf("%w: JSON boolean", column.ErrUnsupportedType)
	case []interface{}:
		return nil, fmt.Errorf("%w: JSON array", column.ErrUnsupportedType)
	default:
		return nil, fmt.Errorf("%w: JSON %T", column.ErrUnsupportedType, v)
	}
}
