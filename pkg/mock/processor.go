package mock

import (
	"errors"
	"reflect"
	"strings"
)

// ErrExtraction wraps failures of Processor.Value.
var ErrExtraction = errors.New("cannot extract field value")

// TagName is the struct tag read by DefaultProcessor.
const TagName = "cursor"

// Processor decides how the fields of a struct become columns.
type Processor interface {
	// Ignore reports whether the field should not become a column.
	Ignore(field reflect.StructField) bool
	// ColumnName returns the column name for a field.
	ColumnName(field reflect.StructField) string
	// Value returns the cell value of the field. The result must be one of
	// the natively supported kinds (or nil); other values are serialized here.
	Value(field reflect.StructField, value reflect.Value) (any, error)
}

// DefaultProcessor skips unexported fields and fields tagged `cursor:"-"`.
// Columns are named after the tag or, without one, the field name. Values
// are returned as they are held by the field.
type DefaultProcessor struct{}

func (DefaultProcessor) Ignore(field reflect.StructField) bool {
	if !field.IsExported() {
		return true
	}
	name, _, _ := strings.Cut(field.Tag.Get(TagName), ",")
	return name == "-"
}

func (DefaultProcessor) ColumnName(field reflect.StructField) string {
	if name, _, _ := strings.Cut(field.Tag.Get(TagName), ","); name != "" {
		return name
	}
	return field.Name
}

func (DefaultProcessor) Value(_ reflect.StructField, value reflect.Value) (any, error) {
	if !value.CanInterface() {
		return nil, ErrExtraction
	}
	return value.Interface(), nil
}
