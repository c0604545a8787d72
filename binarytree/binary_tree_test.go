package binarytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrderInsertFillsGaps(t *testing.T) {
	tr := New[int]()
	for i := 1; i <= 7; i++ {
		tr.Insert(i)
	}

	// 1..7 inserted in level order give a perfect three-level tree.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tr.LevelOrder())
	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, 7, tr.Size())

	root := tr.Root()
	require.NotNil(t, root)
	assert.Equal(t, 1, root.Value())
	assert.Equal(t, 2, root.Left().Value())
	assert.Equal(t, 3, root.Right().Value())
	assert.Equal(t, 4, root.Left().Left().Value())
}

func TestParentBackReferences(t *testing.T) {
	tr := New[int]()
	for i := 1; i <= 5; i++ {
		tr.Insert(i)
	}

	root := tr.Root()
	assert.Nil(t, root.Parent())
	assert.Same(t, root, root.Left().Parent())
	assert.Same(t, root.Left(), root.Left().Right().Parent())
}

func TestFindNodeAndContains(t *testing.T) {
	tr := New[int]()
	for _, v := range []int{10, 20, 30} {
		tr.Insert(v)
	}

	n := tr.FindNode(20)
	require.NotNil(t, n)
	assert.Equal(t, 20, n.Value())

	assert.True(t, tr.Contains(30))
	assert.False(t, tr.Contains(99))
	assert.Nil(t, tr.FindNode(99))
}

func TestTraversals(t *testing.T) {
	tr := New[int]()
	for i := 1; i <= 5; i++ {
		tr.Insert(i)
	}
	//       1
	//      2 3
	//     4 5

	assert.Equal(t, []int{4, 2, 5, 1, 3}, tr.InOrder())
	assert.Equal(t, []int{1, 2, 4, 5, 3}, tr.PreOrder())
	assert.Equal(t, []int{4, 5, 2, 3, 1}, tr.PostOrder())
}

func TestValuesIterator(t *testing.T) {
	tr := New[int]()
	for i := 1; i <= 6; i++ {
		tr.Insert(i)
	}

	var got []int
	for v := range tr.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)

	// Early break must not hang or panic.
	for range tr.Values() {
		break
	}
}

func TestClear(t *testing.T) {
	tr := New[int]()
	tr.Insert(1)
	tr.Clear()

	assert.Equal(t, 0, tr.Size())
	assert.True(t, tr.IsEmpty())
	assert.Nil(t, tr.Root())

	tr.Insert(5)
	assert.Equal(t, []int{5}, tr.LevelOrder())
}

func TestEmptyTree(t *testing.T) {
	tr := New[string]()
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Height())
	assert.Empty(t, tr.LevelOrder())
	assert.False(t, tr.Contains("x"))
}
