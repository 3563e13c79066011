package rows

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/schema"
)

// fixedSchema is a read-only schema with preset types, no mutable capability.
type fixedSchema struct {
	names []string
	types []column.Type
}

func (s *fixedSchema) ColumnIndex(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (s *fixedSchema) ColumnName(index int) (string, bool) {
	if index < 0 || index >= len(s.names) {
		return "", false
	}
	return s.names[index], true
}

func (s *fixedSchema) ColumnNames() []string { return s.names }

func (s *fixedSchema) ColumnCount() int { return len(s.names) }

func (s *fixedSchema) ColumnType(index int) (column.Type, error) {
	if index < 0 || index >= len(s.types) {
		return 0, schema.ErrColumnIndexOutOfRange
	}
	return s.types[index], nil
}

func TestBuilderNoRows(t *testing.T) {
	st := NewBuilder(schema.Raw("id")).Build()
	if st != Empty {
		t.Errorf("Build() with no rows should return Empty, got %T", st)
	}
	if st.Count() != 0 {
		t.Errorf("Count() = %d, want 0", st.Count())
	}
}

func TestBuilderArityExceeded(t *testing.T) {
	b := NewBuilder(&fixedSchema{})
	if err := b.AddRow(1); !errors.Is(err, ErrRowArity) {
		t.Fatalf("AddRow() error = %v, want ErrRowArity", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, rejected row must not be added", b.Len())
	}
}

func TestBuilderFixedTypeMismatch(t *testing.T) {
	b := NewBuilder(&fixedSchema{names: []string{"id"}, types: []column.Type{column.Text}})

	err := b.AddRow(int64(34))
	if !errors.Is(err, ErrColumnTypeMismatch) {
		t.Fatalf("AddRow() error = %v, want ErrColumnTypeMismatch", err)
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *TypeMismatchError, got %T", err)
	}
	if mismatch.Index != 0 || mismatch.Actual != column.Integer || mismatch.Expected != column.Text {
		t.Errorf("unexpected mismatch details: %+v", mismatch)
	}
}

func TestBuilderUnsetTypeOnReadOnlySchema(t *testing.T) {
	// Without the mutable capability an unset column cannot accept values.
	b := NewBuilder(&fixedSchema{names: []string{"id"}, types: []column.Type{0}})
	if err := b.AddRow(int64(1)); !errors.Is(err, ErrColumnTypeMismatch) {
		t.Fatalf("AddRow() error = %v, want ErrColumnTypeMismatch", err)
	}
}

func TestBuilderEmptyRow(t *testing.T) {
	b := NewBuilder(&fixedSchema{names: []string{"id"}, types: []column.Type{column.Text}})
	if err := b.AddRow(); err != nil {
		t.Fatal(err)
	}
	st := b.Build()
	if st.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", st.Count())
	}
	if st.Get(0, 0) != nil {
		t.Errorf("Get(0, 0) = %v, want nil", st.Get(0, 0))
	}
}

func TestBuilderMultipleRows(t *testing.T) {
	s := &fixedSchema{
		names: []string{"id", "name"},
		types: []column.Type{column.Integer, column.Text},
	}
	b := NewBuilder(s)

	rows := [][]any{
		{},
		{int64(12)},
		{nil, "name_value"},
		{int64(14), "14L"},
	}
	for _, r := range rows {
		if err := b.AddRow(r...); err != nil {
			t.Fatalf("AddRow(%v) failed: %v", r, err)
		}
	}

	st := b.Build()
	expected := [][]any{
		{nil, nil},
		{int64(12), nil},
		{nil, "name_value"},
		{int64(14), "14L"},
	}
	if st.Count() != len(expected) {
		t.Fatalf("Count() = %d, want %d", st.Count(), len(expected))
	}
	for r, row := range expected {
		for c, want := range row {
			if got := st.Get(r, c); got != want {
				t.Errorf("Get(%d, %d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestBuilderDetectsTypes(t *testing.T) {
	s := schema.Raw("id", "name", "time")
	b := NewBuilder(s)

	if err := b.AddRow(int64(1)); err != nil {
		t.Fatal(err)
	}
	if err := b.AddRow(nil, nil, int64(1700000000)); err != nil {
		t.Fatal(err)
	}

	expected := []column.Type{column.Integer, 0, column.Integer}
	for i, want := range expected {
		if got, _ := s.ColumnType(i); got != want {
			t.Errorf("ColumnType(%d) = %v, want %v", i, got, want)
		}
	}

	err := b.AddRow("a string")
	if !errors.Is(err, ErrColumnTypeMismatch) {
		t.Fatalf("AddRow(string) error = %v, want ErrColumnTypeMismatch", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, previously accepted rows must stay", b.Len())
	}
}

func TestBuilderRowIsAtomic(t *testing.T) {
	s := schema.Raw("a", "b")
	b := NewBuilder(s)

	if err := b.AddRow(nil, "text"); err != nil {
		t.Fatal(err)
	}

	// column a is unset, column b is TEXT: the mismatch on b must not fix a.
	err := b.AddRow(int64(1), int64(2))
	if !errors.Is(err, ErrColumnTypeMismatch) {
		t.Fatalf("AddRow() error = %v, want ErrColumnTypeMismatch", err)
	}
	if got, _ := s.ColumnType(0); got.Valid() {
		t.Errorf("column a type = %v, a rejected row must not fix types", got)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBuilderUnsupportedValue(t *testing.T) {
	b := NewBuilder(schema.Raw("flag"))
	if err := b.AddRow(true); !errors.Is(err, column.ErrUnsupportedType) {
		t.Fatalf("AddRow(bool) error = %v, want ErrUnsupportedType", err)
	}
}

func TestBuilderUnboxesPointers(t *testing.T) {
	b := NewBuilder(schema.Raw("id", "name"))
	id := int64(5)
	var name *string

	if err := b.AddRow(&id, name); err != nil {
		t.Fatal(err)
	}
	st := b.Build()
	if got := st.Get(0, 0); got != int64(5) {
		t.Errorf("Get(0, 0) = %v (%T), want int64(5)", got, got)
	}
	if got := st.Get(0, 1); got != nil {
		t.Errorf("Get(0, 1) = %v, want nil", got)
	}
}

func TestBuilderFrozenSchema(t *testing.T) {
	s := schema.Raw("id")
	b := NewBuilder(s)
	s.Freeze()

	if err := b.AddRow(int64(1)); !errors.Is(err, ErrSchemaFrozen) {
		t.Fatalf("AddRow() error = %v, want ErrSchemaFrozen", err)
	}
	// Null rows never need to fix a type.
	if err := b.AddRow(); err != nil {
		t.Fatalf("AddRow() on frozen schema failed: %v", err)
	}
}

func TestStoreRowCopy(t *testing.T) {
	b := NewBuilder(schema.Raw("id", "data"))
	if err := b.AddRow(1, []byte{1, 2}); err != nil {
		t.Fatal(err)
	}
	row := Row(b.Build(), 0, 2)
	if row[0] != 1 || !bytes.Equal(row[1].([]byte), []byte{1, 2}) {
		t.Errorf("Row() = %v", row)
	}
}
