package cursor

import (
	"fmt"
	"reflect"
	"slices"
)

// Observer is notified when the cursor it is registered with is invalidated.
// Registration has set semantics, so implementations must be comparable
// (typically a pointer).
type Observer interface {
	OnInvalidated()
}

// RegisterObserver adds o. Registering the same observer twice is a no-op.
func (c *Cursor) RegisterObserver(o Observer) error {
	if err := checkObserver(o); err != nil {
		return err
	}
	if slices.Contains(c.observers, o) {
		return nil
	}
	c.observers = append(c.observers, o)
	return nil
}

// UnregisterObserver removes o. Unknown observers are ignored. It may be
// called from OnInvalidated.
func (c *Cursor) UnregisterObserver(o Observer) error {
	if err := checkObserver(o); err != nil {
		return err
	}
	if i := slices.Index(c.observers, o); i >= 0 {
		c.observers = slices.Delete(c.observers, i, i+1)
	}
	return nil
}

func checkObserver(o Observer) error {
	if o == nil {
		return ErrNilArgument
	}
	if t := reflect.TypeOf(o); !t.Comparable() {
		return fmt.Errorf("%w: %s", ErrObserverNotComparable, t)
	}
	return nil
}
