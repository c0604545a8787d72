package collectgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a value is read or removed from an empty
	// container (dequeue, pop, front, back, peek, extract).
	ErrEmpty = errors.New("container is empty")

	// ErrNotFound is returned by hashmap.At when the key is absent.
	ErrNotFound = errors.New("key not found")
)

// IndexError indicates an out-of-range index passed to an index-based
// operation. The container is left unchanged.
//
// Use errors.As to inspect the offending index and the container size at the
// time of the call.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for size %d", e.Index, e.Size)
}

// AllocationError indicates that growth or rehash would exceed the capacity
// ceiling for the element type. The container is left in its prior valid
// state.
type AllocationError struct {
	Requested int
	Limit     int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocation of %d elements exceeds limit %d", e.Requested, e.Limit)
}
