package hashmap

import "hash/maphash"

// mix64 is a splitmix64-style avalanche finalizer. maphash output is already
// well distributed, but running the finalizer keeps the table robust against
// weak user-supplied hashers and breaks up clustering from sequential or
// aligned integer keys before the index reduction.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// defaultHasher hashes any comparable key with a per-table maphash seed.
func defaultHasher[K comparable](seed maphash.Seed) func(K) uint64 {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
