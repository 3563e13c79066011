package mock

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/bisegni/cursormock/pkg/column"
	"github.com/bisegni/cursormock/pkg/cursor"
	"github.com/bisegni/cursormock/pkg/rows"
)

type allTypes struct {
	ShortValue     int16
	IntValue       int32
	LongValue      int64
	FloatValue     float32
	DoubleValue    float64
	StringValue    string
	ByteArrayValue []byte
}

type allTypesBoxed struct {
	ShortValue  *int16
	IntValue    *int32
	LongValue   *int64
	FloatValue  *float32
	DoubleValue *float64
}

type tagged struct {
	ID       int64  `cursor:"_id"`
	Name     string `cursor:"name,omitempty"`
	Password string `cursor:"-"`
	internal int
}

func ptr[T any](v T) *T {
	return &v
}

func first(t *testing.T, c *cursor.Cursor) {
	t.Helper()
	ok, err := c.MoveToFirst()
	if err != nil || !ok {
		t.Fatalf("MoveToFirst() = %v, %v", ok, err)
	}
}

func TestForColumns(t *testing.T) {
	c := ForColumns("id", "name").
		MustAddRow(int64(1), "Jimmy").
		MustAddRow(int64(2)).
		Build()

	if c.Count() != 2 || c.ColumnCount() != 2 {
		t.Fatalf("Count() = %d, ColumnCount() = %d", c.Count(), c.ColumnCount())
	}
	first(t, c)
	if name, ok, _ := c.String(1); !ok || name != "Jimmy" {
		t.Errorf("String(1) = %q, %v", name, ok)
	}
	c.MoveToNext()
	if isNull, _ := c.IsNull(1); !isNull {
		t.Error("missing trailing value must be null")
	}
}

func TestForColumnsTypeMismatch(t *testing.T) {
	b := ForColumns("id")
	if err := b.AddRow(1); err != nil {
		t.Fatal(err)
	}

	err := b.AddRow("not an integer")
	var mismatch *rows.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("AddRow() error = %v, want *TypeMismatchError", err)
	}
	if mismatch.Expected != column.Integer || mismatch.Actual != column.Text {
		t.Errorf("mismatch = %+v", mismatch)
	}

	c := b.Build()
	if c.Count() != 1 {
		t.Errorf("Count() = %d, rejected row must not be stored", c.Count())
	}
}

func TestMustAddRowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAddRow should panic on an invalid row")
		}
	}()
	ForColumns("id").MustAddRow(1, 2)
}

func TestForColumnsFrozenAfterBuild(t *testing.T) {
	b := ForColumns("id", "name").MustAddRow(1)
	b.Build()

	if err := b.AddRow(2); err != nil {
		t.Errorf("row matching fixed types should still be accepted: %v", err)
	}
	if err := b.AddRow(3, "late"); !errors.Is(err, rows.ErrSchemaFrozen) {
		t.Errorf("AddRow() error = %v, want ErrSchemaFrozen", err)
	}
}

func TestForStructAllTypes(t *testing.T) {
	b, err := ForStruct[allTypes]()
	if err != nil {
		t.Fatal(err)
	}
	err = b.Add(&allTypes{
		ShortValue:     1,
		IntValue:       2,
		LongValue:      3,
		FloatValue:     4,
		DoubleValue:    5,
		StringValue:    "6",
		ByteArrayValue: []byte{1, 0, 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	c := b.Build()
	if c.Count() != 1 || c.ColumnCount() != 7 {
		t.Fatalf("Count() = %d, ColumnCount() = %d", c.Count(), c.ColumnCount())
	}
	for _, name := range []string{"shortValue", "intValue", "longValue", "floatValue", "doubleValue", "stringValue", "byteArrayValue"} {
		if _, err := c.ColumnIndexOrError(name); err != nil {
			t.Errorf("ColumnIndexOrError(%q): %v", name, err)
		}
	}

	first(t, c)
	if v, _ := c.Int16(c.ColumnIndex("ShortValue")); v != 1 {
		t.Errorf("ShortValue = %d", v)
	}
	if v, _ := c.Int32(c.ColumnIndex("IntValue")); v != 2 {
		t.Errorf("IntValue = %d", v)
	}
	if v, _ := c.Int64(c.ColumnIndex("LongValue")); v != 3 {
		t.Errorf("LongValue = %d", v)
	}
	if v, _ := c.Float32(c.ColumnIndex("FloatValue")); v != 4 {
		t.Errorf("FloatValue = %v", v)
	}
	if v, _ := c.Float64(c.ColumnIndex("DoubleValue")); v != 5 {
		t.Errorf("DoubleValue = %v", v)
	}
	if v, _, _ := c.String(c.ColumnIndex("StringValue")); v != "6" {
		t.Errorf("StringValue = %q", v)
	}
	if v, _ := c.Blob(c.ColumnIndex("ByteArrayValue")); !bytes.Equal(v, []byte{1, 0, 1}) {
		t.Errorf("ByteArrayValue = %v", v)
	}
}

func TestForStructBoxed(t *testing.T) {
	b, err := ForStruct[allTypesBoxed]()
	if err != nil {
		t.Fatal(err)
	}
	values := []*allTypesBoxed{
		{ShortValue: ptr[int16](1), IntValue: ptr[int32](2), LongValue: ptr[int64](3), FloatValue: ptr[float32](4), DoubleValue: ptr(5.0)},
		{},
		nil,
	}
	if err := b.AddAll(values); err != nil {
		t.Fatal(err)
	}

	c := b.Build()
	if c.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", c.Count())
	}
	first(t, c)
	if v, _ := c.Int64(2); v != 3 {
		t.Errorf("LongValue = %d", v)
	}
	if typ, _ := c.Type(4); typ != column.CellFloat {
		t.Errorf("Type(4) = %v, want FLOAT", typ)
	}

	for c.MoveToNext(); !c.IsAfterLast(); c.MoveToNext() {
		for col := 0; col < c.ColumnCount(); col++ {
			if isNull, _ := c.IsNull(col); !isNull {
				t.Errorf("row %d col %d should be null", c.Position(), col)
			}
		}
	}
}

func TestForStructTags(t *testing.T) {
	b, err := ForStruct[*tagged]()
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Add(ptr(&tagged{ID: 7, Name: "seven", Password: "secret", internal: 1})); err != nil {
		t.Fatal(err)
	}

	want := []string{"_id", "name"}
	if got := b.Schema().ColumnNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnNames() = %v, want %v", got, want)
	}

	c := b.Build()
	first(t, c)
	if v, _ := c.Int64(0); v != 7 {
		t.Errorf("_id = %d", v)
	}
}

func TestForStructErrors(t *testing.T) {
	type empty struct{}
	type hidden struct {
		a int
		b string
	}

	tests := []struct {
		name  string
		build func() error
		want  error
	}{
		{"not a struct", func() error { _, err := ForStruct[int](); return err }, ErrNotStruct},
		{"no fields", func() error { _, err := ForStruct[empty](); return err }, ErrNoFields},
		{"all filtered", func() error { _, err := ForStruct[hidden](); return err }, ErrNoEligibleFields},
		{"ignore all", func() error {
			_, err := ForStruct[allTypes](WithProcessor(ignoreAll{}))
			return err
		}, ErrNoEligibleFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.build(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestForStructUnsupportedField(t *testing.T) {
	type flags struct {
		Enabled bool
	}
	b, err := ForStruct[flags]()
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Add(&flags{Enabled: true}); !errors.Is(err, column.ErrUnsupportedType) {
		t.Errorf("Add() error = %v, want ErrUnsupportedType", err)
	}
}

type ignoreAll struct{ DefaultProcessor }

func (ignoreAll) Ignore(reflect.StructField) bool { return true }

// upperProcessor serializes bool fields and fails on a sentinel value.
type upperProcessor struct{ DefaultProcessor }

var errBroken = errors.New("broken")

func (p upperProcessor) Value(f reflect.StructField, v reflect.Value) (any, error) {
	if v.Kind() == reflect.Bool {
		if v.Bool() {
			return int64(1), nil
		}
		return int64(0), nil
	}
	if v.Kind() == reflect.String && v.String() == "broken" {
		return nil, errBroken
	}
	return p.DefaultProcessor.Value(f, v)
}

func TestCustomProcessor(t *testing.T) {
	type item struct {
		Name   string
		Active bool
	}
	b, err := ForStruct[item](WithProcessor(upperProcessor{}))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Add(&item{Name: "a", Active: true}); err != nil {
		t.Fatal(err)
	}

	err = b.Add(&item{Name: "broken"})
	if !errors.Is(err, ErrExtraction) || !errors.Is(err, errBroken) {
		t.Errorf("Add() error = %v, want ErrExtraction wrapping errBroken", err)
	}

	c := b.Build()
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
	first(t, c)
	if v, _ := c.Int64(1); v != 1 {
		t.Errorf("Active = %d, want 1", v)
	}
}

func TestWithNilProcessor(t *testing.T) {
	b, err := ForStruct[*tagged](WithProcessor(nil))
	if err != nil {
		t.Fatalf("ForStruct(WithProcessor(nil)) failed: %v", err)
	}
	if got := b.Schema().ColumnNames(); !reflect.DeepEqual(got, []string{"_id", "name"}) {
		t.Errorf("ColumnNames() = %v, want the default processor columns", got)
	}
}
