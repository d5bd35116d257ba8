package xvec

import (
	"time"

	"github.com/hupe1980/xvec/internal/growth"
)

// Clone returns a deep copy of v with the same capacity and options.
// Elements are copy-constructed. Cloning an unbacked vector yields an empty
// vector with capacity 1.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.init()
	c := &Vector[T]{ops: v.ops, env: v.env}

	buf, err := c.allocate(max(v.buf.Cap(), 1))
	if err != nil {
		return nil, err
	}
	if err := c.ops.CopyInto(buf.Slots()[:v.size], v.buf.Slots()[:v.size]); err != nil {
		buf.Release()
		c.rollback("clone", err)
		return nil, err
	}
	c.buf = buf
	c.size = v.size
	return c, nil
}

// Assign replaces the contents of v with copies of src's elements.
//
// When v's capacity already fits src the buffer is reused; otherwise v is
// reallocated to src's capacity. Either way, if a copy fails v keeps its
// previous elements and capacity. Elements are copied with v's lifecycle.
// Assign(v) is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == v {
		return nil
	}
	v.init()
	if src == nil {
		v.Clear()
		return nil
	}

	n := src.size
	from := src.buf.Slots()[:n]
	if n <= v.buf.Cap() {
		return v.assignInPlace(from)
	}

	start := time.Now()
	newCap := max(src.buf.Cap(), growth.NextPow2(n))
	nb, err := v.allocate(newCap)
	if err != nil {
		return err
	}
	if err := v.ops.CopyInto(nb.Slots()[:n], from); err != nil {
		nb.Release()
		v.rollback("assign", err)
		return err
	}

	oldCap := v.buf.Cap()
	v.ops.Destroy(v.buf.Slots()[:v.size])
	v.buf.Release()
	v.buf = nb
	v.size = n
	v.counters.reallocations++
	v.env.metrics.RecordGrow(oldCap, newCap, time.Since(start))
	v.env.logger.LogReallocate(oldCap, newCap, n, "assign")
	return nil
}

// assignInPlace overwrites the live buffer with copies of from.
// len(from) must not exceed the capacity.
func (v *Vector[T]) assignInPlace(from []T) error {
	slots := v.buf.Slots()
	n := len(from)

	if !v.ops.CopyCanFail() {
		v.ops.Destroy(slots[:v.size])
		_ = v.ops.CopyInto(slots[:n], from)
		v.size = n
		return nil
	}

	// Copies that may fail are staged first: the overlapping prefix into a
	// scratch slice, the tail directly into free slots. Old elements are
	// destroyed only once every copy has succeeded.
	m := min(n, v.size)
	scratch := make([]T, m)
	if err := v.ops.CopyInto(scratch, from[:m]); err != nil {
		v.rollback("assign", err)
		return err
	}
	if n > v.size {
		if err := v.ops.CopyInto(slots[v.size:n], from[v.size:]); err != nil {
			v.ops.Destroy(scratch)
			err = atOffset(err, v.size)
			v.rollback("assign", err)
			return err
		}
	}

	v.ops.Destroy(slots[:v.size])
	copy(slots[:m], scratch)
	v.size = n
	return nil
}
