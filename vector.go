package xvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/xvec/internal/alloc"
	"github.com/hupe1980/xvec/internal/elem"
	"github.com/hupe1980/xvec/internal/growth"
)

// MaxCapacity is the largest capacity a vector can reach.
const MaxCapacity = growth.MaxCapacity

// Vector is a contiguous, growable sequence that owns its elements.
//
// Capacity is always a power of two, except for a vector whose buffer was
// moved away or freed, which has capacity zero. The zero value is such an
// unbacked vector and is ready to use.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	buf  alloc.Buffer[T]
	size int
	ops  *elem.Ops[T]
	env  *env

	counters counters
}

type counters struct {
	allocations   int64
	reallocations int64
	rollbacks     int64
}

// New creates an empty vector with capacity 1.
func New[T any](opts ...Option) (*Vector[T], error) {
	return newVector[T](opts, 1)
}

// NewSized creates a vector holding count copies of value. Capacity is the
// smallest power of two that fits count.
func NewSized[T any](count int, value T, opts ...Option) (*Vector[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidLength, count)
	}
	capacity, err := growth.Exact(count)
	if err != nil {
		return nil, allocationError(err)
	}

	v, err := newVector[T](opts, capacity)
	if err != nil {
		return nil, err
	}
	if err := v.ops.FillInto(v.buf.Slots()[:count], &value); err != nil {
		v.buf.Release()
		return nil, err
	}
	v.size = count
	return v, nil
}

// FromSlice creates a vector holding copies of the elements of s.
func FromSlice[T any](s []T, opts ...Option) (*Vector[T], error) {
	capacity, err := growth.Exact(len(s))
	if err != nil {
		return nil, allocationError(err)
	}

	v, err := newVector[T](opts, capacity)
	if err != nil {
		return nil, err
	}
	if err := v.ops.CopyInto(v.buf.Slots()[:len(s)], s); err != nil {
		v.buf.Release()
		return nil, err
	}
	v.size = len(s)
	return v, nil
}

// Of creates a vector from a literal list of values.
//
//	v, _ := xvec.Of(1, 2, 3)
func Of[T any](values ...T) (*Vector[T], error) {
	return FromSlice(values)
}

func newVector[T any](optFns []Option, capacity int) (*Vector[T], error) {
	v := &Vector[T]{env: defaultEnv}
	if len(optFns) > 0 {
		o := applyOptions(optFns)
		ops, err := resolveOps[T](o)
		if err != nil {
			return nil, err
		}
		v.ops = ops
		v.env = newEnv(o)
	} else {
		v.ops = elem.New(elem.Hooks[T]{})
	}

	buf, err := v.allocate(capacity)
	if err != nil {
		return nil, err
	}
	v.buf = buf
	return v, nil
}

// init prepares a zero Vector for use.
func (v *Vector[T]) init() {
	if v.ops == nil {
		v.ops = elem.New(elem.Hooks[T]{})
	}
	if v.env == nil {
		v.env = defaultEnv
	}
}

func (v *Vector[T]) allocate(capacity int) (alloc.Buffer[T], error) {
	b, err := alloc.Allocate[T](v.env.alloc, capacity, v.ops.OffHeapEligible())
	if err != nil {
		v.env.metrics.RecordAllocFailure(capacity, err)
		v.env.logger.LogAllocFailure(capacity, err)
		return b, err
	}
	v.counters.allocations++
	return b, nil
}

func (v *Vector[T]) rollback(op string, err error) {
	v.counters.rollbacks++
	v.env.metrics.RecordRollback(op, err)
	v.env.logger.LogRollback(op, v.size, err)
}

// atOffset rebases the index of an element error from a sub-range to a
// vector position.
func atOffset(err error, off int) error {
	var ee *ElementError
	if off != 0 && errors.As(err, &ee) {
		ee.Index += off
	}
	return err
}

// Trivial reports whether the element type has no lifecycle hooks, so bulk
// operations use the builtin copy instead of per-element hooks.
func (v *Vector[T]) Trivial() bool {
	v.init()
	return v.ops.Trivial()
}

// PlainMemory reports whether elements are trivial and hold no Go pointers.
// The storage of such a vector may be viewed as bytes or placed off-heap.
func (v *Vector[T]) PlainMemory() bool {
	v.init()
	return v.ops.OffHeapEligible()
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Get returns the element at i. i must be in [0, Len).
func (v *Vector[T]) Get(i int) T {
	v.checkIndex("Get", i)
	return v.buf.Slots()[i]
}

// Ref returns a pointer to the element at i. i must be in [0, Len).
// The pointer is invalidated by any operation that reallocates.
func (v *Vector[T]) Ref(i int) *T {
	v.checkIndex("Ref", i)
	return &v.buf.Slots()[i]
}

// At returns the element at i, or an *IndexError if i is not in [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &IndexError{Index: i, Len: v.size}
	}
	return v.buf.Slots()[i], nil
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	v.checkNotEmpty("Front")
	return v.buf.Slots()[0]
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	v.checkNotEmpty("Back")
	return v.buf.Slots()[v.size-1]
}

// Data returns the live elements as a slice sharing the vector's storage.
// The slice is invalidated by any operation that reallocates and by Free.
// Its capacity equals its length, so appending to it never touches the
// vector's reserved slots.
func (v *Vector[T]) Data() []T {
	return v.buf.Slots()[:v.size:v.size]
}

// Move transfers the buffer and its elements to a new vector in O(1).
// v is left empty with capacity zero and keeps its options.
func (v *Vector[T]) Move() *Vector[T] {
	v.init()
	moved := &Vector[T]{
		buf:      v.buf,
		size:     v.size,
		ops:      v.ops,
		env:      v.env,
		counters: v.counters,
	}
	v.buf = alloc.Buffer[T]{}
	v.size = 0
	v.counters = counters{}
	return moved
}

// MoveFrom frees v's elements and takes over src's buffer, elements, and
// options. src is left empty with capacity zero. MoveFrom(v) is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == nil || src == v {
		return
	}
	v.Free()
	*v = *src
	src.buf = alloc.Buffer[T]{}
	src.size = 0
	src.counters = counters{}
}

// Swap exchanges the contents and options of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	if other == nil || other == v {
		return
	}
	*v, *other = *other, *v
}

// Free destroys all elements and releases the buffer, returning its bytes
// to the memory controller. The vector is left empty with capacity zero and
// may be reused.
func (v *Vector[T]) Free() {
	if v.ops != nil {
		v.ops.Destroy(v.buf.Slots()[:v.size])
	}
	v.size = 0
	v.buf.Release()
}
