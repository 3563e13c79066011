package mock

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/bisegni/cursormock/pkg/cursor"
	"github.com/bisegni/cursormock/pkg/rows"
	"github.com/bisegni/cursormock/pkg/schema"
)

var (
	// ErrNotStruct is returned by ForStruct when T is not a struct type.
	ErrNotStruct = errors.New("type is not a struct")

	// ErrNoFields is returned by ForStruct for a struct type without fields.
	ErrNoFields = errors.New("struct has no fields")

	// ErrNoEligibleFields is returned when the processor ignores every field.
	ErrNoEligibleFields = errors.New("all struct fields were filtered")
)

// Option configures ForStruct.
type Option func(*options)

type options struct {
	processor Processor
}

// WithProcessor replaces DefaultProcessor. A nil p keeps the default.
func WithProcessor(p Processor) Option {
	return func(o *options) {
		if p != nil {
			o.processor = p
		}
	}
}

// Structs builds a cursor with one row per struct value. The schema columns
// are the fields kept by the processor, in declaration order.
type Structs[T any] struct {
	processor Processor
	fields    []reflect.StructField
	schema    *schema.Columns
	builder   *rows.Builder
}

// ForStruct derives a schema from the fields of T. T may be a struct type or
// a pointer to one.
func ForStruct[T any](opts ...Option) (*Structs[T], error) {
	o := options{processor: DefaultProcessor{}}
	for _, opt := range opts {
		opt(&o)
	}

	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}
	if t.NumField() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFields, t)
	}

	var fields []reflect.StructField
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if o.processor.Ignore(f) {
			continue
		}
		fields = append(fields, f)
		names = append(names, o.processor.ColumnName(f))
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoEligibleFields, t)
	}

	s := schema.Raw(names[0], names[1:]...)
	return &Structs[T]{
		processor: o.processor,
		fields:    fields,
		schema:    s,
		builder:   rows.NewBuilder(s),
	}, nil
}

// Add flattens v into a row. A nil v adds a row of nulls.
func (b *Structs[T]) Add(v *T) error {
	if v == nil {
		return b.builder.AddRow()
	}

	holder := reflect.ValueOf(v).Elem()
	if holder.Kind() == reflect.Pointer {
		if holder.IsNil() {
			return b.builder.AddRow()
		}
		holder = holder.Elem()
	}

	values := make([]any, len(b.fields))
	for i, f := range b.fields {
		value, err := b.processor.Value(f, holder.FieldByIndex(f.Index))
		if err != nil {
			if !errors.Is(err, ErrExtraction) {
				err = fmt.Errorf("%w: %w", ErrExtraction, err)
			}
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		values[i] = value
	}
	return b.builder.AddRow(values...)
}

// AddAll adds every value in order and stops at the first error.
func (b *Structs[T]) AddAll(vs []*T) error {
	for i, v := range vs {
		if err := b.Add(v); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

func (b *Structs[T]) Schema() schema.Schema {
	return b.schema
}

func (b *Structs[T]) Build() *cursor.Cursor {
	return cursor.New(b.schema, b.builder.Build())
}
