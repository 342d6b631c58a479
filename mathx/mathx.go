// Package mathx provides the small numeric helpers that the container, text
// and stream packages build on: power-of-two tests, bit scans, overflow-free
// averaging and the semi-exponential buffer growth policy.
package mathx

import (
	"math"
	"math/bits"
)

// Integer is the constraint shared by the helpers in this package.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Saturate clamps value into the inclusive [lo, hi] range.
func Saturate[T Integer](value, lo, hi T) T {
	if value < lo {
		value = lo
	}
	if value > hi {
		value = hi
	}
	return value
}

// IsPowerOfTwo reports whether value is a power of two (1, 2, 4, 8, ...).
func IsPowerOfTwo[T Integer](value T) bool {
	return value >= 1 && value&(value-1) == 0
}

// FloorPowerOfTwo returns the greatest power of two that is less than or
// equal to value. Values below 1 are returned unchanged.
func FloorPowerOfTwo[T Integer](value T) T {
	if value < 1 {
		return value
	}
	return T(1) << (bits.Len64(uint64(value)) - 1)
}

// CeilPowerOfTwo returns the least power of two that is greater than or
// equal to value. The result is undefined when the next power of two cannot
// be represented by T.
func CeilPowerOfTwo[T Integer](value T) T {
	if value <= 2 {
		return value
	}
	if IsPowerOfTwo(value) {
		return value
	}
	return T(1) << bits.Len64(uint64(value))
}

// Log2 returns the integer base-two logarithm of value, or -1 when value
// is zero.
func Log2(value uint64) int {
	return bits.Len64(value) - 1
}

// Average computes the average of two values without intermediate overflow.
func Average[T Integer](a, b T) T {
	return a/2 + b/2 + (a%2+b%2)/2
}

// maxCapacity is the platform length ceiling shared by the containers.
const maxCapacity = math.MaxInt

// growthCeiling is the largest capacity the growth formula may be applied
// to; requests at or above it are returned verbatim.
var growthCeiling = FloorPowerOfTwo(maxCapacity)

// nextCapacity computes the successor of a capacity in the growth sequence:
// small or non-power-of-two capacities round up to the next power of two
// (with an extra 50% margin when the rounding captured less than a third of
// additional headroom), while established power-of-two capacities grow by
// half.
func nextCapacity(capacity int) int {
	if capacity < 16 || !IsPowerOfTwo(capacity) {
		next := CeilPowerOfTwo(capacity + 1)
		if next-capacity < capacity/3 {
			return next + next/2
		}
		return next
	}
	return capacity + capacity/2
}

// NextCapacity computes the next buffer capacity given the requested and
// current capacities. The initial parameter names the capacity a fresh
// buffer starts from (non-zero for types with inline storage); while the
// buffer still has its initial capacity the request is granted verbatim, so
// the first heap allocation is exactly as large as needed.
//
// The returned capacity is always at least requested and, below the
// platform ceiling, strictly greater than an insufficient current capacity.
func NextCapacity(requested, current, initial int) int {
	if current == initial {
		return requested
	}
	next := nextCapacity(current)
	if requested <= next {
		return next
	}
	if IsPowerOfTwo(requested) {
		return requested
	}
	pred := FloorPowerOfTwo(requested)
	pred += pred / 2
	if pred >= requested {
		return pred
	}
	return CeilPowerOfTwo(requested)
}

// GrowCapacity is the growth policy used by the containers: it expands the
// requested capacity via NextCapacity unless the request is already at the
// platform's size ceiling, in which case it is returned unchanged.
func GrowCapacity(requested, current int) int {
	if requested < growthCeiling {
		return NextCapacity(requested, current, 0)
	}
	return requested
}
