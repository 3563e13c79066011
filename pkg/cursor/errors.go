package cursor

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by state-changing and reading calls after Close.
	ErrClosed = errors.New("cursor already closed")

	// ErrPositionOutOfRange is returned when a cell is read while the cursor
	// is before the first or after the last row.
	ErrPositionOutOfRange = errors.New("cursor position out of bounds")

	// ErrColumnNotFound is returned by ColumnIndexOrError for unknown names.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("argument must not be nil")

	// ErrObserverNotComparable is returned for observers that cannot be
	// compared, such as func or slice types.
	ErrObserverNotComparable = errors.New("observer type is not comparable")

	// ErrUnsupportedOperation is returned by host-interface methods this
	// cursor deliberately does not implement.
	ErrUnsupportedOperation = errors.New("method is not implemented by the cursor mock")

	// ErrNotNumeric is returned by numeric getters for a non-numeric cell.
	ErrNotNumeric = errors.New("cell value is not numeric")

	// ErrValueKind is returned by String and Blob when the cell holds another kind.
	ErrValueKind = errors.New("cell value has a different kind")
)

// PositionError reports a cell read at an invalid position.
type PositionError struct {
	Position int
	Count    int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("Index %d requested, with a size of %d", e.Position, e.Count)
}

func (e *PositionError) Unwrap() error {
	return ErrPositionOutOfRange
}

func notImplemented(method string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, method)
}
