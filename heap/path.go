package heap

import (
	"iter"
	"math/bits"
)

// pathTo yields the turns on the root-to-node path for a 1-based level-order
// index: false is a left turn, true a right turn.
//
// The index's most significant bit stands for "start at the root"; every bit
// after it, read high to low, selects the child to descend into. Index 1 is
// the root itself and yields no turns. This is pure arithmetic and does not
// depend on the node representation.
func pathTo(index int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		if index < 2 {
			return
		}
		for mask := 1 << (bits.Len(uint(index)) - 2); mask > 0; mask >>= 1 {
			if !yield(index&mask != 0) {
				return
			}
		}
	}
}
