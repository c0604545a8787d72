// Package stack implements a LIFO stack as a thin adapter over the dynamic
// array, inheriting its growth and shrink policy.
package stack

import (
	"iter"

	"github.com/hupe1980/collectgo"
	"github.com/hupe1980/collectgo/dynamicarray"
)

// Stack is a LIFO stack of T. The zero value is not usable; use New.
type Stack[T any] struct {
	arr *dynamicarray.DynamicArray[T]
}

// New creates an empty stack.
func New[T any](opts ...dynamicarray.Option) *Stack[T] {
	return &Stack[T]{arr: dynamicarray.New[T](opts...)}
}

// Size returns the number of stacked elements.
func (s *Stack[T]) Size() int {
	return s.arr.Size()
}

// Capacity returns the number of allocated slots.
func (s *Stack[T]) Capacity() int {
	return s.arr.Capacity()
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.arr.IsEmpty()
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) error {
	return s.arr.Add(v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	if s.arr.IsEmpty() {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return s.arr.RemoveAt(s.arr.Size() - 1)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.arr.IsEmpty() {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return s.arr.Get(s.arr.Size() - 1)
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	s.arr.Clear()
}

// ToSlice returns a copy of the elements from bottom to top.
func (s *Stack[T]) ToSlice() []T {
	return s.arr.ToSlice()
}

// Values returns an iterator over the elements from top to bottom, the order
// in which Pop would return them.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.arr.Size() - 1; i >= 0; i-- {
			v, err := s.arr.Get(i)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}
