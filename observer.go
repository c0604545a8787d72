package collectgo

// Observer receives a callback for every element access performed by an
// instrumented container. Algorithm visualizers and step counters implement
// this interface to replay sort/search traces.
//
// Callbacks are invoked synchronously on the calling goroutine; an expensive
// implementation slows the container down accordingly.
type Observer interface {
	// RecordGet is called after an element at index i is read.
	RecordGet(i int)

	// RecordSet is called after an element at index i is written.
	RecordSet(i int)

	// RecordSwap is called after the elements at i and j are exchanged.
	RecordSwap(i, j int)
}

var (
	_ Observer = NoopObserver{}
	_ Observer = (*CountingObserver)(nil)
)

// NoopObserver is an Observer that discards all callbacks.
// Use this when instrumentation is not needed.
type NoopObserver struct{}

func (NoopObserver) RecordGet(int)       {}
func (NoopObserver) RecordSet(int)       {}
func (NoopObserver) RecordSwap(int, int) {}

// CountingObserver tallies accesses in memory. Useful for tests and for
// reporting comparison/step counts without an external monitoring system.
type CountingObserver struct {
	Gets  int
	Sets  int
	Swaps int
}

func (o *CountingObserver) RecordGet(int)       { o.Gets++ }
func (o *CountingObserver) RecordSet(int)       { o.Sets++ }
func (o *CountingObserver) RecordSwap(int, int) { o.Swaps++ }
