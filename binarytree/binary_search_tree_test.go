package binarytree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/collectgo"
)

func TestBSTInsertOrdering(t *testing.T) {
	tr := NewSearchTree[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tr.Insert(v)
	}

	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, tr.InOrder())
	assert.True(t, tr.IsValidBST())
	assert.Equal(t, 7, tr.Size())
}

func TestBSTDuplicatesIgnored(t *testing.T) {
	tr := NewSearchTree[int]()
	tr.Insert(5)
	tr.Insert(5)
	tr.Insert(5)

	assert.Equal(t, 1, tr.Size())
	assert.Equal(t, []int{5}, tr.InOrder())
}

func TestBSTContains(t *testing.T) {
	tr := NewSearchTree[int]()
	for _, v := range []int{8, 3, 10, 1, 6} {
		tr.Insert(v)
	}

	assert.True(t, tr.Contains(6))
	assert.False(t, tr.Contains(7))

	n := tr.FindNode(3)
	require.NotNil(t, n)
	assert.Equal(t, 3, n.Value())
}

func TestBSTRemoveLeaf(t *testing.T) {
	tr := NewSearchTree[int]()
	for _, v := range []int{5, 3, 8} {
		tr.Insert(v)
	}

	assert.True(t, tr.Remove(3))
	assert.Equal(t, []int{5, 8}, tr.InOrder())
	assert.True(t, tr.IsValidBST())
	assert.False(t, tr.Remove(3))
}

func TestBSTRemoveOneChild(t *testing.T) {
	tr := NewSearchTree[int]()
	for _, v := range []int{5, 3, 2} {
		tr.Insert(v)
	}

	assert.True(t, tr.Remove(3))
	assert.Equal(t, []int{2, 5}, tr.InOrder())
	assert.True(t, tr.IsValidBST())

	// The spliced child must point back at its new parent.
	n := tr.FindNode(2)
	require.NotNil(t, n)
	require.NotNil(t, n.Parent())
	assert.Equal(t, 5, n.Parent().Value())
}

func TestBSTRemoveTwoChildren(t *testing.T) {
	tr := NewSearchTree[int]()
	for _, v := range []int{50, 30, 70, 60, 80, 65} {
		tr.Insert(v)
	}

	// 70 has two children; its in-order successor 80 takes its place.
	assert.True(t, tr.Remove(70))
	assert.Equal(t, []int{30, 50, 60, 65, 80}, tr.InOrder())
	assert.True(t, tr.IsValidBST())
}

func TestBSTRemoveRoot(t *testing.T) {
	tr := NewSearchTree[int]()
	for _, v := range []int{50, 30, 70} {
		tr.Insert(v)
	}

	assert.True(t, tr.Remove(50))
	assert.Equal(t, []int{30, 70}, tr.InOrder())
	assert.True(t, tr.IsValidBST())
	assert.Equal(t, 2, tr.Size())
}

func TestBSTMinMax(t *testing.T) {
	tr := NewSearchTree[int]()
	for _, v := range []int{5, 1, 9, 3} {
		tr.Insert(v)
	}

	lo, err := tr.Min()
	require.NoError(t, err)
	hi, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)

	empty := NewSearchTree[int]()
	_, err = empty.Min()
	assert.ErrorIs(t, err, collectgo.ErrEmpty)
	_, err = empty.Max()
	assert.ErrorIs(t, err, collectgo.ErrEmpty)
}

func TestBSTDegradesWithoutRebalancing(t *testing.T) {
	tr := NewSearchTree[int]()
	for i := 1; i <= 10; i++ {
		tr.Insert(i)
	}
	// Sorted insertion builds a right spine.
	assert.Equal(t, 10, tr.Height())
	assert.True(t, tr.IsValidBST())
}

// Randomized model check: the ordering invariant and membership must hold
// after any interleaving of inserts and removals.
func TestBSTRandomizedInsertRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	tr := NewSearchTree[int]()
	ref := map[int]struct{}{}

	for step := 0; step < 5000; step++ {
		v := rng.Intn(300)
		if rng.Intn(2) == 0 {
			tr.Insert(v)
			ref[v] = struct{}{}
		} else {
			_, inRef := ref[v]
			require.Equal(t, inRef, tr.Remove(v))
			delete(ref, v)
		}
		if step%250 == 0 {
			require.True(t, tr.IsValidBST())
		}
	}

	require.Equal(t, len(ref), tr.Size())
	want := make([]int, 0, len(ref))
	for v := range ref {
		want = append(want, v)
	}
	sort.Ints(want)
	assert.Equal(t, want, tr.InOrder())
	require.True(t, tr.IsValidBST())
}
