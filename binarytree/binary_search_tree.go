package binarytree

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/collectgo"
)

// BinarySearchTree narrows BinaryTree's insertion rule to ordered placement:
// for every node, all left-subtree values sort strictly before it and all
// right-subtree values strictly after. Duplicates are silently ignored.
//
// Calling the embedded level-order Insert would violate the ordering
// invariant; use the search tree's own mutation methods.
type BinarySearchTree[T constraints.Ordered] struct {
	BinaryTree[T]
}

// NewSearchTree creates an empty binary search tree.
func NewSearchTree[T constraints.Ordered]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{}
}

// Insert places v by ordered descent. Inserting a value that is already
// present leaves the tree unchanged.
func (t *BinarySearchTree[T]) Insert(v T) {
	if t.root == nil {
		t.root = &Node[T]{value: v}
		t.size++
		return
	}

	cur := t.root
	for {
		switch {
		case v == cur.value:
			return
		case v < cur.value:
			if cur.left == nil {
				cur.left = &Node[T]{value: v, parent: cur}
				t.size++
				return
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = &Node[T]{value: v, parent: cur}
				t.size++
				return
			}
			cur = cur.right
		}
	}
}

// FindNode returns the node holding v, located by ordered descent, or nil.
func (t *BinarySearchTree[T]) FindNode(v T) *Node[T] {
	cur := t.root
	for cur != nil {
		switch {
		case v == cur.value:
			return cur
		case v < cur.value:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Contains reports whether v is present.
func (t *BinarySearchTree[T]) Contains(v T) bool {
	return t.FindNode(v) != nil
}

// Remove deletes v, reporting whether it was present. A leaf is detached; a
// node with one child has the child spliced into its parent slot; a node
// with two children takes its in-order successor's value and the successor
// is removed from the right subtree instead.
func (t *BinarySearchTree[T]) Remove(v T) bool {
	n := t.FindNode(v)
	if n == nil {
		return false
	}

	if n.left != nil && n.right != nil {
		succ := minNode(n.right)
		n.value = succ.value
		n = succ // the successor has no left child
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = n.parent
	}
	switch {
	case n.parent == nil:
		t.root = child
	case n.parent.left == n:
		n.parent.left = child
	default:
		n.parent.right = child
	}
	n.parent, n.left, n.right = nil, nil, nil
	t.size--

	return true
}

// Min returns the smallest stored value.
func (t *BinarySearchTree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	return minNode(t.root).value, nil
}

// Max returns the largest stored value.
func (t *BinarySearchTree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, collectgo.ErrEmpty
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur.value, nil
}

// IsValidBST recursively checks that every node's value lies strictly
// between the tightest bounds inherited from its ancestors. A validation
// predicate for tests; not used by the operations.
func (t *BinarySearchTree[T]) IsValidBST() bool {
	return validBST(t.root, nil, nil)
}

func minNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func validBST[T constraints.Ordered](n *Node[T], lo, hi *T) bool {
	if n == nil {
		return true
	}
	if lo != nil && n.value <= *lo {
		return false
	}
	if hi != nil && n.value >= *hi {
		return false
	}
	v := n.value
	return validBST(n.left, lo, &v) && validBST(n.right, &v, hi)
}
