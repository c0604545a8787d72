// Package slot implements the tagged slot buffer backing the array-based
// containers.
//
// A Buffer owns a fixed-capacity run of slots, each either uninitialized or
// live. Containers construct values into slots, assign over live slots, and
// destroy slots when values leave the container. Destroying zeroes the slot
// so the garbage collector can reclaim whatever the value referenced; this is
// the Go rendering of placement construction and explicit destruction over
// raw storage.
//
// Lifetime violations (reading or assigning a slot that is not live,
// constructing over a live slot, destroying twice) are programmer errors on
// the container side and panic, the same way an out-of-range slice index
// does.
package slot

import (
	"fmt"
	"math"
	"unsafe"
)

// Buffer is a fixed-capacity buffer of tagged slots. The zero value is an
// empty buffer with capacity 0; use New for a usable one.
type Buffer[T any] struct {
	values []T
	live   []bool
}

// New allocates a buffer of capacity uninitialized slots.
// capacity must be non-negative and at most MaxCapacity[T]().
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 || capacity > MaxCapacity[T]() {
		panic(fmt.Sprintf("slot: invalid buffer capacity %d", capacity))
	}
	return &Buffer[T]{
		values: make([]T, capacity),
		live:   make([]bool, capacity),
	}
}

// MaxCapacity returns the largest slot count for which capacity times the
// element size still fits the platform's int, so capacity arithmetic cannot
// overflow. Zero-sized element types are capped the same as one-byte types.
func MaxCapacity[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size < 1 {
		size = 1
	}
	return math.MaxInt / size
}

// Cap returns the number of slots.
func (b *Buffer[T]) Cap() int {
	return len(b.values)
}

// Live reports whether the slot at i holds a constructed value.
func (b *Buffer[T]) Live(i int) bool {
	return b.live[i]
}

// Value returns the value in the live slot at i.
func (b *Buffer[T]) Value(i int) T {
	b.mustBeLive(i)
	return b.values[i]
}

// Construct places v into the uninitialized slot at i and marks it live.
func (b *Buffer[T]) Construct(i int, v T) {
	if b.live[i] {
		panic(fmt.Sprintf("slot: construct over live slot %d", i))
	}
	b.values[i] = v
	b.live[i] = true
}

// Assign overwrites the live slot at i with v.
func (b *Buffer[T]) Assign(i int, v T) {
	b.mustBeLive(i)
	b.values[i] = v
}

// Destroy moves the value out of the live slot at i, zeroes the slot, and
// marks it uninitialized.
func (b *Buffer[T]) Destroy(i int) T {
	b.mustBeLive(i)
	v := b.values[i]
	var zero T
	b.values[i] = zero // release references held by the value
	b.live[i] = false
	return v
}

// Swap exchanges the values of the live slots at i and j.
func (b *Buffer[T]) Swap(i, j int) {
	b.mustBeLive(i)
	b.mustBeLive(j)
	b.values[i], b.values[j] = b.values[j], b.values[i]
}

func (b *Buffer[T]) mustBeLive(i int) {
	if !b.live[i] {
		panic(fmt.Sprintf("slot: access to uninitialized slot %d", i))
	}
}
