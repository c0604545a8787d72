// Package binarytree implements a node-linked binary tree with level-order
// insertion, and a binary search tree that narrows the insertion rule to
// ordered placement.
//
// Child links own their subtrees; every node's parent link is a non-owning
// back reference used only for navigation, never for lifetime. The trees are
// intentionally unbalanced: search-tree height can degrade to O(n) under
// sorted insertion.
package binarytree

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/collectgo/queue"
)

// Node is a tree node. Its links are read-only to callers; structure is
// mutated through tree operations only.
type Node[T constraints.Ordered] struct {
	value  T
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
}

// Value returns the node's value.
func (n *Node[T]) Value() T { return n.value }

// Parent returns the parent node, or nil at the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// BinaryTree is an unordered binary tree filled in level order. The zero
// value is an empty tree ready for use.
type BinaryTree[T constraints.Ordered] struct {
	root *Node[T]
	size int
}

// New creates an empty level-order binary tree.
func New[T constraints.Ordered]() *BinaryTree[T] {
	return &BinaryTree[T]{}
}

// Size returns the number of nodes.
func (t *BinaryTree[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no nodes.
func (t *BinaryTree[T]) IsEmpty() bool {
	return t.size == 0
}

// Root returns the root node, or nil.
func (t *BinaryTree[T]) Root() *Node[T] {
	return t.root
}

// Insert places v at the first gap found by a breadth-first scan: the first
// node missing a left child, else the first missing a right child. The tree
// shape therefore stays complete.
func (t *BinaryTree[T]) Insert(v T) {
	n := &Node[T]{value: v}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}

	q := queue.New[*Node[T]]()
	_ = q.Enqueue(t.root) // enqueue cannot hit the capacity ceiling for node pointers
	for !q.IsEmpty() {
		cur, err := q.Dequeue()
		if err != nil {
			return
		}
		if cur.left == nil {
			cur.left = n
			n.parent = cur
			return
		}
		_ = q.Enqueue(cur.left)
		if cur.right == nil {
			cur.right = n
			n.parent = cur
			return
		}
		_ = q.Enqueue(cur.right)
	}
}

// FindNode returns the first node holding v in level order, or nil.
func (t *BinaryTree[T]) FindNode(v T) *Node[T] {
	if t.root == nil {
		return nil
	}
	q := queue.New[*Node[T]]()
	_ = q.Enqueue(t.root)
	for !q.IsEmpty() {
		cur, err := q.Dequeue()
		if err != nil {
			return nil
		}
		if cur.value == v {
			return cur
		}
		if cur.left != nil {
			_ = q.Enqueue(cur.left)
		}
		if cur.right != nil {
			_ = q.Enqueue(cur.right)
		}
	}
	return nil
}

// Contains reports whether v is present.
func (t *BinaryTree[T]) Contains(v T) bool {
	return t.FindNode(v) != nil
}

// Clear removes all nodes.
func (t *BinaryTree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Height returns the number of levels; an empty tree has height 0.
func (t *BinaryTree[T]) Height() int {
	return height(t.root)
}

// InOrder returns the values of an in-order traversal.
func (t *BinaryTree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	inOrder(t.root, &out)
	return out
}

// PreOrder returns the values of a pre-order traversal.
func (t *BinaryTree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	preOrder(t.root, &out)
	return out
}

// PostOrder returns the values of a post-order traversal.
func (t *BinaryTree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	postOrder(t.root, &out)
	return out
}

// LevelOrder returns the values in breadth-first order.
func (t *BinaryTree[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	for v := range t.Values() {
		out = append(out, v)
	}
	return out
}

// Values returns an iterator over the values in level order.
func (t *BinaryTree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		q := queue.New[*Node[T]]()
		_ = q.Enqueue(t.root)
		for !q.IsEmpty() {
			cur, err := q.Dequeue()
			if err != nil {
				return
			}
			if !yield(cur.value) {
				return
			}
			if cur.left != nil {
				_ = q.Enqueue(cur.left)
			}
			if cur.right != nil {
				_ = q.Enqueue(cur.right)
			}
		}
	}
}

func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

func inOrder[T constraints.Ordered](n *Node[T], out *[]T) {
	if n == nil {
		return
	}
	inOrder(n.left, out)
	*out = append(*out, n.value)
	inOrder(n.right, out)
}

func preOrder[T constraints.Ordered](n *Node[T], out *[]T) {
	if n == nil {
		return
	}
	*out = append(*out, n.value)
	preOrder(n.left, out)
	preOrder(n.right, out)
}

func postOrder[T constraints.Ordered](n *Node[T], out *[]T) {
	if n == nil {
		return
	}
	postOrder(n.left, out)
	postOrder(n.right, out)
	*out = append(*out, n.value)
}
