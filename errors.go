package xvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/xvec/internal/alloc"
	"github.com/hupe1980/xvec/internal/elem"
	"github.com/hupe1980/xvec/internal/growth"
)

var (
	// ErrOutOfRange is returned by checked access when the index is not in [0, Len).
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidLength is returned when a count or capacity argument is negative.
	ErrInvalidLength = errors.New("invalid length")

	// ErrAllocationFailed is returned when a buffer cannot be obtained. The
	// cause (capacity overflow, memory budget, mapping failure) is wrapped.
	ErrAllocationFailed = alloc.ErrAllocationFailed

	// ErrCapacityOverflow is wrapped by ErrAllocationFailed when a requested
	// capacity is not representable.
	ErrCapacityOverflow = growth.ErrCapacityOverflow

	// ErrLifecycleMismatch is returned when WithLifecycle was given hooks for
	// an element type other than the vector's.
	ErrLifecycleMismatch = errors.New("lifecycle element type mismatch")
)

// IndexError reports a checked access outside [0, Len).
//
// It matches ErrOutOfRange via errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// ElementError reports a failing element hook (copy, fill, move, construct).
//
// Index is the position within the range being constructed. The hook's
// own error can be accessed via errors.Unwrap.
type ElementError = elem.Error

func allocationError(err error) error {
	if errors.Is(err, ErrAllocationFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
}
