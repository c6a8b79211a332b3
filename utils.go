package probemap

import (
	"math/bits"
	"unsafe"
)

// Returns the next power of 2 for the given value `v`, capped at MaxCapacity.
func NextPowerOf2(v int) int {
	switch {
	case v <= 1:
		return 1
	case v >= MaxCapacity:
		return MaxCapacity
	}

	return 1 << bits.Len(uint(v-1))
}

// Estimates capacity (number of slots) from the given memory size in bytes.
// The result is a power of two, so passing it to WithCapacity keeps the slot
// array within size.
func CapacityFromSize[K any, V any](size uintptr) int {
	numSlots := size / unsafe.Sizeof(slot[K, V]{})
	if numSlots == 0 {
		return 0
	}

	return 1 << (bits.Len(uint(numSlots)) - 1)
}
