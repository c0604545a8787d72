// Package queue implements a FIFO queue as a ring buffer over the same
// tagged slot storage the dynamic array is built on.
//
// Logical index i lives at physical slot (front + i) mod capacity. Growth
// and shrink rebuild the buffer in FIFO order with front reset to 0; shrink
// checks run only every ShrinkCheckInterval dequeues to amortize the rebuild
// and avoid grow/shrink oscillation under bursty traffic.
package queue

import (
	"iter"

	"github.com/hupe1980/collectgo"
	"github.com/hupe1980/collectgo/dynamicarray"
	"github.com/hupe1980/collectgo/internal/slot"
)

// ShrinkCheckInterval is the number of dequeues between shrink checks.
const ShrinkCheckInterval = 16

// Queue is a FIFO queue of T. The zero value is not usable; use New.
type Queue[T any] struct {
	buf      *slot.Buffer[T]
	front    int
	size     int
	dequeues int
}

// New creates an empty queue with the dynamic array's default capacity.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		buf: slot.New[T](dynamicarray.DefaultCapacity),
	}
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return q.size
}

// Capacity returns the number of allocated slots.
func (q *Queue[T]) Capacity() int {
	return q.buf.Cap()
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Enqueue appends v at the logical back of the queue.
//
// The cheapest safe path is taken: construct in place when the back slot is
// uninitialized, assign when it still holds a stale value, or grow when the
// buffer is full. A failed grow leaves the queue untouched.
func (q *Queue[T]) Enqueue(v T) error {
	if q.size == q.buf.Cap() {
		if err := q.grow(); err != nil {
			return err
		}
	}

	back := (q.front + q.size) % q.buf.Cap()
	if q.buf.Live(back) {
		q.buf.Assign(back, v)
	} else {
		q.buf.Construct(back, v)
	}
	q.size++

	return nil
}

// Dequeue removes and returns the logical front element.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collectgo.ErrEmpty
	}

	v := q.buf.Destroy(q.front)
	q.front = (q.front + 1) % q.buf.Cap()
	q.size--

	q.dequeues++
	if q.dequeues%ShrinkCheckInterval == 0 {
		q.maybeShrink()
	}

	return v, nil
}

// Front returns the logical front element without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return q.buf.Value(q.front), nil
}

// Back returns the most recently enqueued element without removing it.
func (q *Queue[T]) Back() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	back := (q.front + q.size - 1) % q.buf.Cap()
	return q.buf.Value(back), nil
}

// Clear removes all elements and resets the queue to its default capacity.
func (q *Queue[T]) Clear() {
	q.buf = slot.New[T](dynamicarray.DefaultCapacity)
	q.front = 0
	q.size = 0
	q.dequeues = 0
}

// ToSlice returns a copy of the queued elements in FIFO order.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, q.size)
	for i := range q.size {
		out[i] = q.buf.Value((q.front + i) % q.buf.Cap())
	}
	return out
}

// Values returns an iterator over the elements in FIFO order.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range q.size {
			if !yield(q.buf.Value((q.front + i) % q.buf.Cap())) {
				return
			}
		}
	}
}

// grow doubles the capacity, clamped to the per-type ceiling.
func (q *Queue[T]) grow() error {
	capacity := q.buf.Cap()
	maxCap := slot.MaxCapacity[T]()
	if capacity >= maxCap {
		return &collectgo.AllocationError{Requested: capacity + 1, Limit: maxCap}
	}

	newCap := capacity * 2
	if newCap > maxCap || newCap < capacity {
		newCap = maxCap
	}

	q.rebuild(newCap)

	return nil
}

// maybeShrink halves the capacity once occupancy drops to a quarter, keeping
// at least the default floor.
func (q *Queue[T]) maybeShrink() {
	capacity := q.buf.Cap()
	if capacity <= dynamicarray.DefaultCapacity || q.size > capacity/4 {
		return
	}

	newCap := max(q.size, capacity/2)
	newCap = max(newCap, dynamicarray.DefaultCapacity)

	q.rebuild(newCap)
}

// rebuild moves all elements in FIFO order into slots [0, size) of a fresh
// buffer, then commits it with front reset to 0.
func (q *Queue[T]) rebuild(newCap int) {
	next := slot.New[T](newCap)
	for i := range q.size {
		next.Construct(i, q.buf.Value((q.front+i)%q.buf.Cap()))
	}
	q.buf = next
	q.front = 0
}
