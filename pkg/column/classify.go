// Package column defines the native cell types of a mocked result set and
// the classifier that maps Go values onto them.
package column

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedType is returned when a value has no column type mapping.
var ErrUnsupportedType = errors.New("type is not natively supported by a cursor")

// Classify maps a non-nil value to its column type.
//
// Supported kinds are:
//
//	int, int16, int32, int64 (and pointers to them)  -> Integer
//	float32, float64 (and pointers to them)          -> Float
//	string, *string                                  -> Text
//	[]byte                                           -> Blob
//
// Every other kind fails with ErrUnsupportedType, including bool, int8,
// byte and unsigned integers. A nil pointer of a supported kind classifies
// as its pointee type.
func Classify(value any) (Type, error) {
	switch value.(type) {
	case int, int16, int32, int64, *int, *int16, *int32, *int64:
		return Integer, nil
	case float32, float64, *float32, *float64:
		return Float, nil
	case string, *string:
		return Text, nil
	case []byte:
		return Blob, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// ClassifyType maps a static Go type to its column type using the same
// table as Classify.
func ClassifyType(t reflect.Type) (Type, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	}
	if t.Kind() == reflect.Pointer {
		switch t.Elem().Kind() {
		case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Float32, reflect.Float64, reflect.String:
			t = t.Elem()
		}
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer, nil
	case reflect.Float32, reflect.Float64:
		return Float, nil
	case reflect.String:
		return Text, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return Blob, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// Unbox dereferences pointers of supported kinds. A nil pointer becomes a
// nil interface; every other value is returned unchanged.
func Unbox(value any) any {
	switch v := value.(type) {
	case *int:
		if v == nil {
			return nil
		}
		return *v
	case *int16:
		if v == nil {
			return nil
		}
		return *v
	case *int32:
		if v == nil {
			return nil
		}
		return *v
	case *int64:
		if v == nil {
			return nil
		}
		return *v
	case *float32:
		if v == nil {
			return nil
		}
		return *v
	case *float64:
		if v == nil {
			return nil
		}
		return *v
	case *string:
		if v == nil {
			return nil
		}
		return *v
	case []byte:
		if v == nil {
			return nil
		}
		return v
	default:
		return value
	}
}
