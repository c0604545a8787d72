package hashmap

type options[K comparable] struct {
	capacity int
	hasher   func(K) uint64
}

// Option configures a HashMap at construction time.
type Option[K comparable] func(*options[K])

// WithCapacity pre-sizes the table to at least n buckets, rounded up to a
// power of two.
func WithCapacity[K comparable](n int) Option[K] {
	return func(o *options[K]) {
		if n > o.capacity {
			o.capacity = n
		}
	}
}

// WithHasher replaces the default maphash-based hasher. Supply one for key
// types whose natural hashing is known to cluster, or to make table layout
// deterministic across runs for tests.
//
// The hash output is still passed through the avalanche finalizer before
// index reduction, so a weak hasher degrades gracefully.
func WithHasher[K comparable](h func(K) uint64) Option[K] {
	return func(o *options[K]) {
		if h != nil {
			o.hasher = h
		}
	}
}
