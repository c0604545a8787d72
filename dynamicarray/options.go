package dynamicarray

import "github.com/hupe1980/collectgo"

type options struct {
	capacity int
	observer collectgo.Observer
}

// Option configures a DynamicArray at construction time.
type Option func(*options)

// WithCapacity pre-allocates room for at least n elements. Values below the
// default capacity are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > o.capacity {
			o.capacity = n
		}
	}
}

// WithObserver installs a per-step access observer. Every Get, Set and Swap
// reports its index to the observer; algorithm visualizers use this to replay
// sort/search traces.
//
// If nil is passed, the no-op observer is kept.
func WithObserver(obs collectgo.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
