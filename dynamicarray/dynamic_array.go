// Package dynamicarray implements a contiguous growable array with manual
// capacity management.
//
// The array owns a tagged slot buffer of capacity C >= size slots; slots
// [0, size) are live, slots [size, C) are uninitialized. Capacity doubles
// when full and halves when occupancy drops to a quarter, never below the
// default floor. Every reallocation builds the replacement buffer fully
// before swapping it in, so a failed grow or shrink leaves the array
// untouched.
package dynamicarray

import (
	"iter"

	"github.com/hupe1980/collectgo"
	"github.com/hupe1980/collectgo/internal/slot"
)

// DefaultCapacity is the slot count of a freshly created array and the floor
// below which shrinking never goes.
const DefaultCapacity = 5

// DynamicArray is a growable array of T. The zero value is not usable; use
// New.
type DynamicArray[T any] struct {
	buf      *slot.Buffer[T]
	size     int
	observer collectgo.Observer
}

// New creates an empty array with the default capacity.
func New[T any](opts ...Option) *DynamicArray[T] {
	o := options{
		capacity: DefaultCapacity,
		observer: collectgo.NoopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	maxCap := slot.MaxCapacity[T]()
	if o.capacity > maxCap {
		o.capacity = maxCap
	}

	return &DynamicArray[T]{
		buf:      slot.New[T](o.capacity),
		observer: o.observer,
	}
}

// FromSlice creates an array holding a copy of values.
func FromSlice[T any](values []T, opts ...Option) *DynamicArray[T] {
	a := New[T](append([]Option{WithCapacity(len(values))}, opts...)...)
	for i, v := range values {
		a.buf.Construct(i, v)
	}
	a.size = len(values)
	return a
}

// Size returns the number of live elements.
func (a *DynamicArray[T]) Size() int {
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *DynamicArray[T]) Capacity() int {
	return a.buf.Cap()
}

// IsEmpty reports whether the array holds no elements.
func (a *DynamicArray[T]) IsEmpty() bool {
	return a.size == 0
}

// Get returns the element at index i.
func (a *DynamicArray[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, &collectgo.IndexError{Index: i, Size: a.size}
	}
	a.observer.RecordGet(i)
	return a.buf.Value(i), nil
}

// Set overwrites the element at index i.
func (a *DynamicArray[T]) Set(i int, v T) error {
	if i < 0 || i >= a.size {
		return &collectgo.IndexError{Index: i, Size: a.size}
	}
	a.buf.Assign(i, v)
	a.observer.RecordSet(i)
	return nil
}

// Swap exchanges the elements at indices i and j.
func (a *DynamicArray[T]) Swap(i, j int) error {
	if i < 0 || i >= a.size {
		return &collectgo.IndexError{Index: i, Size: a.size}
	}
	if j < 0 || j >= a.size {
		return &collectgo.IndexError{Index: j, Size: a.size}
	}
	a.buf.Swap(i, j)
	a.observer.RecordSwap(i, j)
	return nil
}

// Add appends v to the end of the array.
func (a *DynamicArray[T]) Add(v T) error {
	return a.InsertAt(a.size, v)
}

// InsertAt inserts v at index i, shifting elements [i, size) one slot right.
// i == size appends.
func (a *DynamicArray[T]) InsertAt(i int, v T) error {
	if i < 0 || i > a.size {
		return &collectgo.IndexError{Index: i, Size: a.size}
	}
	if a.size == a.buf.Cap() {
		if err := a.grow(); err != nil {
			return err
		}
	}

	// Shift right back-to-front: each destination slot is uninitialized by
	// the time it is constructed into.
	for j := a.size; j > i; j-- {
		a.buf.Construct(j, a.buf.Destroy(j-1))
	}
	a.buf.Construct(i, v)
	a.size++

	return nil
}

// RemoveAt removes and returns the element at index i, shifting elements
// [i+1, size) one slot left.
func (a *DynamicArray[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, &collectgo.IndexError{Index: i, Size: a.size}
	}

	v := a.buf.Destroy(i)
	for j := i; j < a.size-1; j++ {
		a.buf.Construct(j, a.buf.Destroy(j+1))
	}
	a.size--

	a.maybeShrink()

	return v, nil
}

// Clear removes all elements and resets the array to its default capacity.
func (a *DynamicArray[T]) Clear() {
	a.buf = slot.New[T](DefaultCapacity)
	a.size = 0
}

// ToSlice returns a copy of the live elements in index order.
func (a *DynamicArray[T]) ToSlice() []T {
	out := make([]T, a.size)
	for i := range a.size {
		out[i] = a.buf.Value(i)
	}
	return out
}

// Clone returns a deep structural copy sharing no storage with the original.
// The observer is not carried over.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	clone := New[T](WithCapacity(a.buf.Cap()))
	for i := range a.size {
		clone.buf.Construct(i, a.buf.Value(i))
	}
	clone.size = a.size
	return clone
}

// Values returns an iterator over the elements in index order.
func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.size {
			if !yield(a.buf.Value(i)) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs in index order.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.size {
			if !yield(i, a.buf.Value(i)) {
				return
			}
		}
	}
}

// grow doubles the capacity, clamped to the per-type ceiling, and moves all
// elements into the new buffer before committing it.
func (a *DynamicArray[T]) grow() error {
	capacity := a.buf.Cap()
	maxCap := slot.MaxCapacity[T]()
	if capacity >= maxCap {
		return &collectgo.AllocationError{Requested: capacity + 1, Limit: maxCap}
	}

	newCap := capacity * 2
	if newCap > maxCap || newCap < capacity { // clamp, guard multiply overflow
		newCap = maxCap
	}

	a.rebuild(newCap)

	return nil
}

// maybeShrink halves the capacity once occupancy drops to a quarter, keeping
// at least the default floor.
func (a *DynamicArray[T]) maybeShrink() {
	capacity := a.buf.Cap()
	if capacity <= DefaultCapacity || a.size > capacity/4 {
		return
	}

	newCap := max(a.size, capacity/2)
	newCap = max(newCap, DefaultCapacity)

	a.rebuild(newCap)
}

// rebuild is the allocate/construct/commit sequence shared by grow and
// shrink: the replacement buffer is fully built before the swap, so the
// array is never observable in a half-moved state.
func (a *DynamicArray[T]) rebuild(newCap int) {
	next := slot.New[T](newCap)
	for i := range a.size {
		next.Construct(i, a.buf.Value(i))
	}
	a.buf = next
}
