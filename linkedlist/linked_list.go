// Package linkedlist implements a doubly linked list.
//
// Each node's next link owns the remainder of the chain; prev links are
// non-owning back references for reverse navigation. Index-based access
// walks from whichever end is closer, bounding the cost by min(i, size-i);
// unlinking is O(1) once a node is located because both neighbors are at
// hand.
package linkedlist

import (
	"iter"

	"github.com/hupe1980/collectgo"
)

type node[T comparable] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// LinkedList is a doubly linked list of T. The zero value is an empty list
// ready for use.
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates an empty list.
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// FromSlice creates a list holding a copy of values in order.
func FromSlice[T comparable](values []T) *LinkedList[T] {
	l := New[T]()
	for _, v := range values {
		l.AddLast(v)
	}
	return l
}

// Size returns the number of stored elements.
func (l *LinkedList[T]) Size() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// AddFirst prepends v.
func (l *LinkedList[T]) AddFirst(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// AddLast appends v.
func (l *LinkedList[T]) AddLast(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// InsertAt inserts v at index i; i == size appends.
func (l *LinkedList[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.size {
		return &collectgo.IndexError{Index: i, Size: l.size}
	}
	switch i {
	case 0:
		l.AddFirst(v)
	case l.size:
		l.AddLast(v)
	default:
		at := l.nodeAt(i)
		n := &node[T]{value: v, prev: at.prev, next: at}
		at.prev.next = n
		at.prev = n
		l.size++
	}
	return nil
}

// Get returns the element at index i.
func (l *LinkedList[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, &collectgo.IndexError{Index: i, Size: l.size}
	}
	return l.nodeAt(i).value, nil
}

// First returns the first element.
func (l *LinkedList[T]) First() (T, error) {
	if l.head == nil {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return l.head.value, nil
}

// Last returns the last element.
func (l *LinkedList[T]) Last() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return l.tail.value, nil
}

// RemoveFirst removes and returns the first element.
func (l *LinkedList[T]) RemoveFirst() (T, error) {
	if l.head == nil {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return l.unlink(l.head), nil
}

// RemoveLast removes and returns the last element.
func (l *LinkedList[T]) RemoveLast() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return l.unlink(l.tail), nil
}

// RemoveAt removes and returns the element at index i.
func (l *LinkedList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, &collectgo.IndexError{Index: i, Size: l.size}
	}
	return l.unlink(l.nodeAt(i)), nil
}

// Remove deletes the first occurrence of v, reporting whether one was found.
func (l *LinkedList[T]) Remove(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			l.unlink(n)
			return true
		}
	}
	return false
}

// RemoveAll deletes every occurrence of v and returns the count removed.
func (l *LinkedList[T]) RemoveAll(v T) int {
	count := 0
	n := l.head
	for n != nil {
		next := n.next
		if n.value == v {
			l.unlink(n)
			count++
		}
		n = next
	}
	return count
}

// Contains reports whether v is present.
func (l *LinkedList[T]) Contains(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}
	return false
}

// Clear removes all elements.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// ToSlice returns a copy of the elements in list order.
func (l *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Clone returns a structural copy sharing no nodes with the original.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	clone := New[T]()
	for n := l.head; n != nil; n = n.next {
		clone.AddLast(n.value)
	}
	return clone
}

// Values returns an iterator over the elements from head to tail.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from tail to head.
func (l *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// nodeAt walks from the closer end. i must be in [0, size).
func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	if i < l.size/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i = l.size - 1 - i; i > 0; i-- {
		n = n.prev
	}
	return n
}

// unlink detaches n and returns its value.
func (l *LinkedList[T]) unlink(n *node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
	return n.value
}
