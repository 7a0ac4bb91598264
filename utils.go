package swiss

import (
	"fmt"
	"math/bits"
)

// Returns the next power of 2 for the given value `v`.
func nextPowerOf2(v uint64) uint64 {
	return uint64(1) << bits.Len64(v-1)
}

// capacityFor plans the slot count for the given maximum number of keys:
// ceil(maxSize*16/15) padded to at least one group and rounded up to the
// next power of two. The 16/15 expansion bounds the load factor at 15/16.
func capacityFor(maxSize int) (int, error) {
	if maxSize >= maxCapacity {
		return 0, fmt.Errorf("%w: %d expected elements with load factor 15/16", ErrCapacityExceeded, maxSize)
	}

	expanded := (uint64(maxSize)*16 + 14) / 15
	expanded = max(groupSize, nextPowerOf2(expanded))

	if expanded >= maxCapacity {
		return 0, fmt.Errorf("%w: %d expected elements with load factor 15/16", ErrCapacityExceeded, maxSize)
	}

	return int(expanded), nil
}
