package alloc

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/xvec/internal/conv"
	"github.com/hupe1980/xvec/internal/growth"
	"github.com/hupe1980/xvec/internal/mmap"
	"github.com/hupe1980/xvec/resource"
)

// ErrAllocationFailed is returned when a buffer cannot be obtained.
var ErrAllocationFailed = errors.New("allocation failed")

// Config controls where buffers come from.
type Config struct {
	// Controller charges buffer bytes against a shared memory budget.
	// Nil means unlimited.
	Controller *resource.Controller

	// OffHeapThreshold is the buffer size in bytes from which eligible
	// element types are backed by an anonymous mapping. Zero or negative
	// disables off-heap buffers.
	OffHeapThreshold int
}

// Buffer is an exclusively owned block of slots. The zero value is an
// unbacked buffer with no capacity.
type Buffer[T any] struct {
	slots   []T
	mapping *mmap.Mapping
	rc      *resource.Controller
	bytes   int64
}

// Allocate obtains a buffer with exactly capacity slots, all holding the
// zero value. offHeap permits an anonymous mapping when the buffer reaches
// cfg.OffHeapThreshold; callers pass it only for pointer-free element types
// without lifecycle hooks.
func Allocate[T any](cfg Config, capacity int, offHeap bool) (Buffer[T], error) {
	if capacity < 0 {
		return Buffer[T]{}, fmt.Errorf("%w: negative capacity %d", ErrAllocationFailed, capacity)
	}
	if capacity == 0 {
		return Buffer[T]{}, nil
	}
	if capacity > growth.MaxCapacity {
		return Buffer[T]{}, fmt.Errorf("%w: %w", ErrAllocationFailed, growth.ErrCapacityOverflow)
	}

	var zero T
	size, err := conv.MulInt(capacity, int(unsafe.Sizeof(zero)))
	if err != nil {
		return Buffer[T]{}, fmt.Errorf("%w: %w", ErrAllocationFailed, growth.ErrCapacityOverflow)
	}

	if err := cfg.Controller.AcquireMemory(int64(size)); err != nil {
		return Buffer[T]{}, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	b := Buffer[T]{rc: cfg.Controller, bytes: int64(size)}

	if offHeap && size > 0 && cfg.OffHeapThreshold > 0 && size >= cfg.OffHeapThreshold {
		m, err := mmap.MapAnon(size)
		switch {
		case err == nil:
			b.mapping = m
			b.slots = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(m.Bytes()))), capacity) //nolint:gosec // mapping is page aligned and sized for capacity slots
			return b, nil
		case errors.Is(err, mmap.ErrUnsupported):
			// fall back to the heap
		default:
			cfg.Controller.ReleaseMemory(int64(size))
			return Buffer[T]{}, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
		}
	}

	b.slots = make([]T, capacity)
	return b, nil
}

// Slots returns all capacity slots. The slice is invalid after Release.
func (b *Buffer[T]) Slots() []T { return b.slots }

// Cap returns the number of slots.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// OffHeap reports whether the slots live in an anonymous mapping.
func (b *Buffer[T]) OffHeap() bool { return b.mapping != nil }

// Bytes returns the number of bytes charged for this buffer.
func (b *Buffer[T]) Bytes() int64 { return b.bytes }

// Release returns the memory and its budget and leaves b unbacked.
// Slots must not hold live elements. Release is idempotent.
func (b *Buffer[T]) Release() {
	if b.mapping != nil {
		_ = b.mapping.Close()
	}
	b.rc.ReleaseMemory(b.bytes)
	*b = Buffer[T]{}
}
