// Package hashmap implements an open-addressing hash table with linear
// probing and tombstone deletion.
//
// All entries live directly in the bucket array. Each bucket is tagged
// empty, occupied, or tombstone; for any present key, probing from its home
// bucket reaches the key before hitting an empty bucket. Removal marks the
// bucket as a tombstone so probe chains that pass through it stay intact,
// and insert reuses the first tombstone seen on its probe path to keep
// future chains short. Rehashing drops all tombstones.
package hashmap

import (
	"hash/maphash"
	"iter"

	"github.com/hupe1980/collectgo"
	"github.com/hupe1980/collectgo/internal/slot"
)

const (
	defaultCapacity = 16

	// Load factor numerator/denominator: occupancy is kept at or below 7/10.
	loadFactorNum = 7
	loadFactorDen = 10
)

type bucketState uint8

const (
	bucketEmpty bucketState = iota
	bucketOccupied
	bucketTombstone
)

type bucket[K comparable, V any] struct {
	state bucketState
	key   K
	value V
}

// HashMap is an open-addressing hash table from K to V. The zero value is
// not usable; use New.
type HashMap[K comparable, V any] struct {
	buckets    []bucket[K, V]
	size       int
	tombstones int
	hasher     func(K) uint64
}

// New creates an empty map.
func New[K comparable, V any](opts ...Option[K]) *HashMap[K, V] {
	o := options[K]{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasher == nil {
		o.hasher = defaultHasher[K](maphash.MakeSeed())
	}

	if maxCap := slot.MaxCapacity[bucket[K, V]](); o.capacity > maxCap/2 {
		o.capacity = maxCap / 2
	}
	capacity := nextPow2(max(o.capacity, defaultCapacity))

	return &HashMap[K, V]{
		buckets: make([]bucket[K, V], capacity),
		hasher:  o.hasher,
	}
}

// Len returns the number of stored entries.
func (m *HashMap[K, V]) Len() int {
	return m.size
}

// Capacity returns the bucket count.
func (m *HashMap[K, V]) Capacity() int {
	return len(m.buckets)
}

// IsEmpty reports whether the map holds no entries.
func (m *HashMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Insert stores v under k, overwriting any previous value for the key.
// Exactly one bucket per key exists afterwards.
func (m *HashMap[K, V]) Insert(k K, v V) error {
	if err := m.ensureRoom(); err != nil {
		return err
	}

	idx := m.home(k)
	firstTomb := -1
	for {
		b := &m.buckets[idx]
		switch b.state {
		case bucketOccupied:
			if b.key == k {
				b.value = v
				return nil
			}
		case bucketTombstone:
			if firstTomb < 0 {
				firstTomb = idx
			}
		case bucketEmpty:
			target := idx
			if firstTomb >= 0 {
				target = firstTomb
				m.tombstones--
			}
			m.buckets[target] = bucket[K, V]{state: bucketOccupied, key: k, value: v}
			m.size++
			return nil
		}
		idx = (idx + 1) & (len(m.buckets) - 1)
	}
}

// At returns the value stored under k, or ErrNotFound.
func (m *HashMap[K, V]) At(k K) (V, error) {
	if b := m.lookup(k); b != nil {
		return b.value, nil
	}
	var zero V
	return zero, collectgo.ErrNotFound
}

// Get returns the value stored under k and whether it was present.
func (m *HashMap[K, V]) Get(k K) (V, bool) {
	if b := m.lookup(k); b != nil {
		return b.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present.
func (m *HashMap[K, V]) Contains(k K) bool {
	return m.lookup(k) != nil
}

// Remove deletes the entry for k, reporting whether it was present. The
// bucket becomes a tombstone so probe chains through it stay reachable.
func (m *HashMap[K, V]) Remove(k K) bool {
	b := m.lookup(k)
	if b == nil {
		return false
	}

	var zeroK K
	var zeroV V
	b.state = bucketTombstone
	b.key = zeroK // release references held by key and value
	b.value = zeroV
	m.size--
	m.tombstones++

	return true
}

// Clear removes all entries and resets the table to its default size.
func (m *HashMap[K, V]) Clear() {
	m.buckets = make([]bucket[K, V], defaultCapacity)
	m.size = 0
	m.tombstones = 0
}

// Keys returns the stored keys in probe-table order.
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for i := range m.buckets {
		if m.buckets[i].state == bucketOccupied {
			keys = append(keys, m.buckets[i].key)
		}
	}
	return keys
}

// All returns an iterator over key/value pairs in probe-table order.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			if m.buckets[i].state == bucketOccupied {
				if !yield(m.buckets[i].key, m.buckets[i].value) {
					return
				}
			}
		}
	}
}

// Clone returns a structural copy. Values are copied shallowly.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	clone := &HashMap[K, V]{
		buckets:    make([]bucket[K, V], len(m.buckets)),
		size:       m.size,
		tombstones: m.tombstones,
		hasher:     m.hasher,
	}
	copy(clone.buckets, m.buckets)
	return clone
}

func (m *HashMap[K, V]) home(k K) int {
	return int(mix64(m.hasher(k)) & uint64(len(m.buckets)-1))
}

// lookup probes linearly from the home bucket. Tombstones are stepped over;
// an empty bucket ends the chain.
func (m *HashMap[K, V]) lookup(k K) *bucket[K, V] {
	idx := m.home(k)
	for {
		b := &m.buckets[idx]
		switch b.state {
		case bucketOccupied:
			if b.key == k {
				return b
			}
		case bucketEmpty:
			return nil
		case bucketTombstone:
			// keep probing
		}
		idx = (idx + 1) & (len(m.buckets) - 1)
	}
}

// ensureRoom rehashes before an insert would push occupancy past the load
// factor. Live entries past the threshold double the table; tombstone
// pressure alone rebuilds at the same size, since rehashing drops them.
func (m *HashMap[K, V]) ensureRoom() error {
	threshold := len(m.buckets) * loadFactorNum / loadFactorDen
	if m.size+1 > threshold {
		return m.rehash(len(m.buckets) * 2)
	}
	if m.size+m.tombstones+1 > threshold {
		return m.rehash(len(m.buckets))
	}
	return nil
}

// rehash builds the replacement table completely, reinserting every occupied
// bucket, then swaps it in. A failed rehash leaves the map untouched.
func (m *HashMap[K, V]) rehash(newCap int) error {
	maxCap := slot.MaxCapacity[bucket[K, V]]()
	if newCap > maxCap || newCap < len(m.buckets) {
		return &collectgo.AllocationError{Requested: newCap, Limit: maxCap}
	}

	next := &HashMap[K, V]{
		buckets: make([]bucket[K, V], newCap),
		hasher:  m.hasher,
	}
	for i := range m.buckets {
		if m.buckets[i].state == bucketOccupied {
			// Capacity is already sufficient; the raw insert cannot recurse
			// into another rehash.
			next.place(m.buckets[i].key, m.buckets[i].value)
		}
	}

	m.buckets = next.buckets
	m.tombstones = 0

	return nil
}

// place inserts into a table known to have a free bucket and no duplicates.
func (m *HashMap[K, V]) place(k K, v V) {
	idx := m.home(k)
	for m.buckets[idx].state == bucketOccupied {
		idx = (idx + 1) & (len(m.buckets) - 1)
	}
	m.buckets[idx] = bucket[K, V]{state: bucketOccupied, key: k, value: v}
	m.size++
}

// nextPow2 rounds n up to a power of two, minimum 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
