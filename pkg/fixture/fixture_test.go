package fixture

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/rows"
)

const sample = `# sample fixture
COLUMNS id, text, time
row 1, "text1"
row null, "text2", 123.0
row
Row NULL, null, 321.0   # trailing comment
`

func TestParse(t *testing.T) {
	table, err := ParseString("sample", sample)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if table.Count() != 4 || table.Schema().ColumnCount() != 3 {
		t.Fatalf("Count() = %d, ColumnCount() = %d", table.Count(), table.Schema().ColumnCount())
	}

	expected := [][]column.CellType{
		{column.CellInteger, column.CellText, column.CellNull},
		{column.CellNull, column.CellText, column.CellFloat},
		{column.CellNull, column.CellNull, column.CellNull},
		{column.CellNull, column.CellNull, column.CellFloat},
	}

	c := table.Open()
	for r, row := range expected {
		if ok, err := c.MoveToPosition(r); !ok || err != nil {
			t.Fatalf("MoveToPosition(%d) = %v, %v", r, ok, err)
		}
		for col, want := range row {
			if got, _ := c.Type(col); got != want {
				t.Errorf("row %d: Type(%d) = %v, want %v", r, col, got, want)
			}
		}
	}

	c.MoveToLast()
	if v, _ := c.Float64(2); v != 321 {
		t.Errorf("Float64(2) = %v, want 321", v)
	}
}

func TestParseValues(t *testing.T) {
	src := `columns i INTEGER, f FLOAT, s, b
row -7, 2, "quote \" and\ttab", x'00ff10'
row +3, 1e3, "", x''
`
	table, err := ParseString("values", src)
	if err != nil {
		t.Fatal(err)
	}

	c := table.Open()
	c.MoveToFirst()
	if v, _ := c.Int64(0); v != -7 {
		t.Errorf("Int64(0) = %d", v)
	}
	if v, _ := c.Value(1); v != float64(2) {
		t.Errorf("integer literal in FLOAT column = %#v, want float64(2)", v)
	}
	if v, _, _ := c.String(2); v != "quote \" and\ttab" {
		t.Errorf("String(2) = %q", v)
	}
	if v, _ := c.Blob(3); !bytes.Equal(v, []byte{0x00, 0xff, 0x10}) {
		t.Errorf("Blob(3) = %x", v)
	}

	c.MoveToNext()
	if v, _ := c.Int64(0); v != 3 {
		t.Errorf("Int64(0) = %d", v)
	}
	if v, _ := c.Float64(1); v != 1000 {
		t.Errorf("Float64(1) = %v", v)
	}
	if v, ok, _ := c.String(2); !ok || v != "" {
		t.Errorf("empty string must not be null, got %q, %v", v, ok)
	}
	if isNull, _ := c.IsNull(3); isNull {
		t.Error("empty blob must not be null")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"type mismatch", "columns id\nrow 1\nrow \"two\"\n", rows.ErrColumnTypeMismatch},
		{"preset mismatch", "columns id TEXT\nrow 1\n", rows.ErrColumnTypeMismatch},
		{"arity", "columns id\nrow 1, 2\n", rows.ErrRowArity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString("bad", tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseString() error = %v, want %v", err, tt.want)
			}
		})
	}

	syntax := []string{
		"",
		"row 1",
		"columns\n",
		"columns a\nrow true\n",
		"columns a\nrow 1,\n",
	}
	for _, src := range syntax {
		if _, err := ParseString("bad", src); err == nil {
			t.Errorf("expected syntax error for %q", src)
		}
	}
}

func TestParseErrorHasLine(t *testing.T) {
	_, err := ParseString("lines", "columns id\nrow 1\nrow 2\nrow \"x\"\n")
	if err == nil || !strings.Contains(err.Error(), "lines:4") {
		t.Errorf("expected error at lines:4, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	src := `columns id INTEGER, "display name" TEXT, score FLOAT, data BLOB, unset
row 1, "Alice", 9.5, x'0102'
row 2, null, 3.0
row
`
	table, err := ParseString("people", src)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, table); err != nil {
		t.Fatal(err)
	}
	if buf.String() != src {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), src)
	}

	path := filepath.Join(t.TempDir(), "people"+Extension)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "people" || loaded.Count() != 3 {
		t.Errorf("Load() = %s with %d rows", loaded.Name, loaded.Count())
	}
}
