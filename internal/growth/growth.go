// Package growth decides how many element slots a buffer should hold.
//
// Two modes are provided. Double is used when a single element is appended and
// the buffer is full: the capacity doubles, which keeps appends amortized O(1)
// without recomputing a target size on every call. Exact is used when the
// required size is known up front (reserve, resize, concatenate, shrink) and
// jumps straight to the smallest covering power of two.
package growth

import (
	"errors"
	"math/bits"
)

// MaxCapacity is the largest power of two representable as an int.
const MaxCapacity = 1 << (bits.UintSize - 2)

// ErrCapacityOverflow is returned when a requested capacity exceeds MaxCapacity.
var ErrCapacityOverflow = errors.New("growth: capacity overflow")

// NextPow2 returns the smallest power of two >= n.
// NextPow2(0) and NextPow2(1) are both 1. n must not exceed MaxCapacity.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1)) //nolint:gosec // n > 1
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Double returns the capacity after a doubling step.
// An unbacked buffer (capacity 0) grows to 1.
func Double(capacity int) (int, error) {
	if capacity <= 0 {
		return 1, nil
	}
	if capacity >= MaxCapacity {
		return 0, ErrCapacityOverflow
	}
	return capacity * 2, nil
}

// Exact returns the capacity needed to hold required elements.
func Exact(required int) (int, error) {
	if required > MaxCapacity {
		return 0, ErrCapacityOverflow
	}
	return NextPow2(required), nil
}
