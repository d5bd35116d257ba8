package xvec

import "fmt"

// Contract violations (unchecked access out of range, Front/Back/PopBack on
// an empty vector) panic when built with -tags debug and are otherwise left
// to Go's own bounds checks.

func (v *Vector[T]) checkIndex(op string, i int) {
	if debugChecks && uint(i) >= uint(v.size) { //nolint:gosec // negative i wraps and fails the check
		panic(fmt.Sprintf("xvec: %s: index %d out of range [0:%d)", op, i, v.size))
	}
}

func (v *Vector[T]) checkNotEmpty(op string) {
	if debugChecks && v.size == 0 {
		panic(fmt.Sprintf("xvec: %s on empty vector", op))
	}
}
