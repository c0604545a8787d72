package hashmap

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/collectgo"
)

func TestInsertAtRoundTrip(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Insert("a", 1))
	require.NoError(t, m.Insert("b", 2))

	v, err := m.At("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = m.At("missing")
	assert.ErrorIs(t, err, collectgo.ErrNotFound)
}

func TestInsertOverwrites(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Insert("k", 1))
	require.NoError(t, m.Insert("k", 2))

	assert.Equal(t, 1, m.Len())
	v, err := m.At("k")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestRemove(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Insert("k", 1))

	assert.True(t, m.Remove("k"))
	assert.False(t, m.Remove("k"))
	assert.False(t, m.Contains("k"))
	assert.Equal(t, 0, m.Len())
}

func TestTombstoneReuse(t *testing.T) {
	// A constant hasher collides every key into one probe chain.
	m := New[int, string](WithHasher[int](func(int) uint64 { return 0 }))

	require.NoError(t, m.Insert(1, "one"))
	require.NoError(t, m.Insert(2, "two"))
	require.NoError(t, m.Insert(3, "three"))

	// Remove the middle of the probe chain; later keys must stay reachable.
	require.True(t, m.Remove(2))
	v, err := m.At(3)
	require.NoError(t, err)
	assert.Equal(t, "three", v)

	// Reinsertion must reuse the tombstone, not corrupt lookups.
	require.NoError(t, m.Insert(4, "four"))
	for k, want := range map[int]string{1: "one", 3: "three", 4: "four"} {
		v, err := m.At(k)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.False(t, m.Contains(2))

	require.NoError(t, m.Insert(2, "again"))
	v, err = m.At(2)
	require.NoError(t, err)
	assert.Equal(t, "again", v)
}

func TestRemoveThenReinsert(t *testing.T) {
	m := New[int, int]()
	for k := range 100 {
		require.NoError(t, m.Insert(k, k))
	}
	for k := range 100 {
		require.True(t, m.Remove(k))
		assert.False(t, m.Contains(k))
		require.NoError(t, m.Insert(k, k*10))
		v, err := m.At(k)
		require.NoError(t, err)
		assert.Equal(t, k*10, v)
	}
	assert.Equal(t, 100, m.Len())
}

func TestRehashPreservesEntries(t *testing.T) {
	m := New[int, int]()
	initial := m.Capacity()

	const n = 1000
	for k := range n {
		require.NoError(t, m.Insert(k, k*2))
	}

	assert.Greater(t, m.Capacity(), initial)
	assert.Equal(t, n, m.Len())
	for k := range n {
		v, err := m.At(k)
		require.NoError(t, err)
		require.Equal(t, k*2, v)
	}
}

func TestLoadFactorBound(t *testing.T) {
	m := New[int, int]()
	for k := range 10000 {
		require.NoError(t, m.Insert(k, k))
		require.LessOrEqual(t, m.Len()*loadFactorDen, m.Capacity()*loadFactorNum,
			"load factor exceeded at %d entries", m.Len())
	}
}

func TestTombstonePressureRebuild(t *testing.T) {
	// Churn a small fixed set of keys: live occupancy stays tiny, but
	// tombstones accumulate until the table must rebuild. Probing must
	// terminate throughout.
	m := New[int, int]()
	for round := range 1000 {
		k := round % 8
		require.NoError(t, m.Insert(k, round))
		require.True(t, m.Remove(k))
	}
	assert.Equal(t, 0, m.Len())
	require.NoError(t, m.Insert(1, 1))
	assert.True(t, m.Contains(1))
}

func TestClear(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Insert("a", 1))
	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Contains("a"))
	require.NoError(t, m.Insert("a", 2))
	v, err := m.At("a")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestKeysAndAll(t *testing.T) {
	m := New[string, int]()
	want := map[string]int{"x": 1, "y": 2, "z": 3}
	for k, v := range want {
		require.NoError(t, m.Insert(k, v))
	}

	assert.ElementsMatch(t, []string{"x", "y", "z"}, m.Keys())

	got := map[string]int{}
	for k, v := range m.All() {
		got[k] = v
	}
	assert.Equal(t, want, got)
}

func TestClone(t *testing.T) {
	m := New[string, int]()
	require.NoError(t, m.Insert("a", 1))

	c := m.Clone()
	require.NoError(t, c.Insert("a", 9))
	require.NoError(t, c.Insert("b", 2))

	v, err := m.At("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.False(t, m.Contains("b"))
	assert.Equal(t, 2, c.Len())
}

func TestWithCapacity(t *testing.T) {
	m := New[int, int](WithCapacity[int](100))
	assert.GreaterOrEqual(t, m.Capacity(), 100)
	// Power of two.
	assert.Zero(t, m.Capacity()&(m.Capacity()-1))
}

// Randomized model check against the built-in map across inserts, removals
// and rehashes.
func TestRandomizedAgainstBuiltinMap(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	m := New[int, int]()
	ref := map[int]int{}

	for step := range 20000 {
		k := rng.Intn(512)
		switch rng.Intn(3) {
		case 0, 1:
			require.NoError(t, m.Insert(k, step))
			ref[k] = step
		case 2:
			_, inRef := ref[k]
			require.Equal(t, inRef, m.Remove(k))
			delete(ref, k)
		}
	}

	require.Equal(t, len(ref), m.Len())
	for k, want := range ref {
		v, err := m.At(k)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestMix64Avalanche(t *testing.T) {
	// Sequential inputs must not map to sequential outputs.
	seen := map[uint64]struct{}{}
	for i := uint64(0); i < 1000; i++ {
		h := mix64(i)
		_, dup := seen[h]
		require.False(t, dup)
		seen[h] = struct{}{}
		if i > 0 {
			assert.NotEqual(t, mix64(i-1)+1, h)
		}
	}
}

func BenchmarkInsert(b *testing.B) {
	m := New[string, int]()
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Insert(keys[i%len(keys)], i)
	}
}

func BenchmarkAt(b *testing.B) {
	m := New[int, int]()
	for k := range 4096 {
		_ = m.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.At(i % 4096)
	}
}
