// Package heap implements node-linked binary min- and max-heaps.
//
// The heap is a complete binary tree: every level full except possibly the
// last, which fills left to right. Nodes are addressed by their 1-based
// level-order index, translated to a root path bit by bit, so both the
// insertion point and the last node are reachable without auxiliary storage.
// Sifting swaps values, not nodes, which keeps the shape walk trivial.
//
// Min and max heaps differ only in the comparison direction.
package heap

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/collectgo"
	"github.com/hupe1980/collectgo/queue"
)

type node[T any] struct {
	value T

	// parent is a non-owning back reference for upward navigation; only the
	// child links own nodes.
	parent *node[T]
	left   *node[T]
	right  *node[T]
}

// Heap is a binary heap of ordered values. The zero value is a usable empty
// min-heap; NewMin and NewMax are the intended constructors.
type Heap[T constraints.Ordered] struct {
	root *node[T]
	size int
	max  bool
}

// NewMin creates a heap whose root is the smallest value.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{}
}

// NewMax creates a heap whose root is the largest value.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{max: true}
}

// Size returns the number of stored values.
func (h *Heap[T]) Size() int {
	return h.size
}

// IsEmpty reports whether the heap holds no values.
func (h *Heap[T]) IsEmpty() bool {
	return h.size == 0
}

// Insert adds v, attaching a node at level-order index size+1 and sifting
// its value up until heap order holds.
func (h *Heap[T]) Insert(v T) {
	n := &node[T]{value: v}
	h.size++
	if h.size == 1 {
		h.root = n
		return
	}

	parent := h.nodeAt(h.size >> 1)
	n.parent = parent
	if h.size&1 == 0 {
		parent.left = n
	} else {
		parent.right = n
	}

	h.siftUp(n)
}

// ExtractRoot removes and returns the root value (the minimum of a min-heap,
// the maximum of a max-heap).
func (h *Heap[T]) ExtractRoot() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, collectgo.ErrEmpty
	}

	v := h.root.value
	if h.size == 1 {
		h.root = nil
		h.size = 0
		return v, nil
	}

	last := h.nodeAt(h.size)
	h.root.value = last.value

	parent := last.parent
	if parent.right == last {
		parent.right = nil
	} else {
		parent.left = nil
	}
	last.parent = nil
	h.size--

	h.siftDown(h.root)

	return v, nil
}

// PeekRoot returns the root value without removing it.
func (h *Heap[T]) PeekRoot() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return h.root.value, nil
}

// Clear removes all values.
func (h *Heap[T]) Clear() {
	h.root = nil
	h.size = 0
}

// IsValid recursively checks heap order at every node: no child sorts above
// its parent. Intended for tests and debugging, not used by the operations.
func (h *Heap[T]) IsValid() bool {
	return h.validFrom(h.root)
}

// Values returns an iterator over the values in level order, the heap's
// natural rendering order.
func (h *Heap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if h.root == nil {
			return
		}
		q := queue.New[*node[T]]()
		_ = q.Enqueue(h.root) // enqueue cannot hit the capacity ceiling for node pointers
		for !q.IsEmpty() {
			n, err := q.Dequeue()
			if err != nil {
				return
			}
			if !yield(n.value) {
				return
			}
			if n.left != nil {
				_ = q.Enqueue(n.left)
			}
			if n.right != nil {
				_ = q.Enqueue(n.right)
			}
		}
	}
}

// above reports whether a belongs strictly closer to the root than b.
func (h *Heap[T]) above(a, b T) bool {
	if h.max {
		return a > b
	}
	return a < b
}

// nodeAt walks the bit path for a 1-based level-order index.
func (h *Heap[T]) nodeAt(index int) *node[T] {
	n := h.root
	for right := range pathTo(index) {
		if right {
			n = n.right
		} else {
			n = n.left
		}
	}
	return n
}

func (h *Heap[T]) siftUp(n *node[T]) {
	for n.parent != nil && h.above(n.value, n.parent.value) {
		n.value, n.parent.value = n.parent.value, n.value
		n = n.parent
	}
}

func (h *Heap[T]) siftDown(n *node[T]) {
	for {
		best := n
		if n.left != nil && h.above(n.left.value, best.value) {
			best = n.left
		}
		if n.right != nil && h.above(n.right.value, best.value) {
			best = n.right
		}
		if best == n {
			return
		}
		n.value, best.value = best.value, n.value
		n = best
	}
}

func (h *Heap[T]) validFrom(n *node[T]) bool {
	if n == nil {
		return true
	}
	if n.left != nil && h.above(n.left.value, n.value) {
		return false
	}
	if n.right != nil && h.above(n.right.value, n.value) {
		return false
	}
	return h.validFrom(n.left) && h.validFrom(n.right)
}
