package xvec

import (
	"fmt"
	"time"

	"github.com/hupe1980/xvec/internal/growth"
)

// Append copy-constructs x at the end of the vector. When the vector is
// full its capacity doubles.
//
// On error the vector is unchanged, including its capacity.
func (v *Vector[T]) Append(x T) error {
	v.init()
	at := v.size
	if at < v.buf.Cap() {
		if err := v.ops.CopyOne(&v.buf.Slots()[at], &x, at); err != nil {
			v.rollback("append", err)
			return err
		}
		v.size++
		return nil
	}

	newCap, err := growth.Double(v.buf.Cap())
	if err != nil {
		return allocationError(err)
	}
	return v.reallocate(newCap, "append", 1, func(rest []T) error {
		return v.ops.CopyOne(&rest[0], &x, at)
	})
}

// Adopt appends x without copying it: the vector takes ownership of x and
// will destroy it. The caller must not use or destroy x afterwards. If
// Adopt returns an error, x remains owned by the caller.
func (v *Vector[T]) Adopt(x T) error {
	v.init()
	if v.size < v.buf.Cap() {
		v.buf.Slots()[v.size] = x
		v.size++
		return nil
	}

	newCap, err := growth.Double(v.buf.Cap())
	if err != nil {
		return allocationError(err)
	}
	return v.reallocate(newCap, "adopt", 1, func(rest []T) error {
		rest[0] = x
		return nil
	})
}

// Emplace constructs a new last element in place. construct receives the
// zero-valued slot; if it returns an error the slot is discarded and the
// vector is unchanged. A nil construct appends the zero value.
func (v *Vector[T]) Emplace(construct func(slot *T) error) error {
	v.init()
	if construct == nil {
		construct = func(*T) error { return nil }
	}

	at := v.size
	if at < v.buf.Cap() {
		if err := v.ops.Construct(&v.buf.Slots()[at], at, construct); err != nil {
			v.rollback("emplace", err)
			return err
		}
		v.size++
		return nil
	}

	newCap, err := growth.Double(v.buf.Cap())
	if err != nil {
		return allocationError(err)
	}
	return v.reallocate(newCap, "emplace", 1, func(rest []T) error {
		return v.ops.Construct(&rest[0], at, construct)
	})
}

// PopBack destroys the last element. The vector must not be empty; in
// release builds PopBack on an empty vector does nothing.
func (v *Vector[T]) PopBack() {
	v.checkNotEmpty("PopBack")
	if v.size == 0 {
		return
	}
	v.size--
	v.ops.Destroy(v.buf.Slots()[v.size : v.size+1])
}

// Concat appends copies of all elements of other. other may be v itself.
// Capacity grows to the smallest power of two that fits the result.
func (v *Vector[T]) Concat(other *Vector[T]) error {
	v.init()
	if other == nil || other.size == 0 {
		return nil
	}

	n := other.size
	src := other.buf.Slots()[:n]
	if n > growth.MaxCapacity-v.size {
		return allocationError(growth.ErrCapacityOverflow)
	}
	at := v.size
	need := at + n

	if need <= v.buf.Cap() {
		if err := v.ops.CopyInto(v.buf.Slots()[at:need], src); err != nil {
			err = atOffset(err, at)
			v.rollback("concat", err)
			return err
		}
		v.size = need
		return nil
	}

	newCap, err := growth.Exact(need)
	if err != nil {
		return allocationError(err)
	}
	// src stays readable during migration even when other == v: relocation
	// leaves the old buffer intact until commit.
	return v.reallocate(newCap, "concat", n, func(rest []T) error {
		return atOffset(v.ops.CopyInto(rest[:n], src), at)
	})
}

// Clear destroys all elements. Capacity is kept.
func (v *Vector[T]) Clear() {
	if v.ops == nil {
		return
	}
	v.ops.Destroy(v.buf.Slots()[:v.size])
	v.size = 0
}

// Reserve ensures capacity for at least n elements. If n exceeds the
// current capacity the buffer is replaced by one of NextPow2(n) slots.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: reserve %d", ErrInvalidLength, n)
	}
	v.init()
	if n <= v.buf.Cap() {
		return nil
	}

	newCap, err := growth.Exact(n)
	if err != nil {
		return allocationError(err)
	}
	return v.reallocate(newCap, "reserve", 0, nil)
}

// Resize changes the length to n. Extra elements are destroyed; missing
// ones are copy-constructed from value. Shrinking keeps capacity.
func (v *Vector[T]) Resize(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: resize %d", ErrInvalidLength, n)
	}
	v.init()

	at := v.size
	if n <= at {
		v.ops.Destroy(v.buf.Slots()[n:at])
		v.size = n
		return nil
	}

	add := n - at
	if n <= v.buf.Cap() {
		if err := v.ops.FillInto(v.buf.Slots()[at:n], &value); err != nil {
			err = atOffset(err, at)
			v.rollback("resize", err)
			return err
		}
		v.size = n
		return nil
	}

	newCap, err := growth.Exact(n)
	if err != nil {
		return allocationError(err)
	}
	return v.reallocate(newCap, "resize", add, func(rest []T) error {
		return atOffset(v.ops.FillInto(rest[:add], &value), at)
	})
}

// ShrinkToFit reduces capacity to NextPow2(Len) when that is smaller.
func (v *Vector[T]) ShrinkToFit() error {
	if v.buf.Cap() == 0 {
		return nil
	}
	target := growth.NextPow2(v.size)
	if target >= v.buf.Cap() {
		return nil
	}
	return v.reallocate(target, "shrink", 0, nil)
}

// reallocate moves the live elements into a new buffer of newCap slots and
// lets tail construct added more elements behind them. Either everything
// commits or the vector is left exactly as it was.
func (v *Vector[T]) reallocate(newCap int, op string, added int, tail func(rest []T) error) error {
	start := time.Now()

	nb, err := v.allocate(newCap)
	if err != nil {
		return err
	}

	live := v.buf.Slots()[:v.size]
	if err := v.ops.Migrate(nb.Slots(), live, tail); err != nil {
		nb.Release()
		v.rollback(op, err)
		return err
	}

	oldCap := v.buf.Cap()
	v.ops.Forget(live)
	v.buf.Release()
	v.buf = nb
	v.size += added
	v.counters.reallocations++

	if newCap >= oldCap {
		v.env.metrics.RecordGrow(oldCap, newCap, time.Since(start))
	} else {
		v.env.metrics.RecordShrink(oldCap, newCap)
	}
	v.env.logger.LogReallocate(oldCap, newCap, v.size, op)
	return nil
}
