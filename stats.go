package xvec

// Stats is a snapshot of a vector's buffer state and history.
type Stats struct {
	Len int
	Cap int

	// Allocations counts buffers obtained by this vector, including the
	// initial one.
	Allocations int64
	// Reallocations counts buffer replacements (growth, shrink, assign).
	Reallocations int64
	// Rollbacks counts failed operations that were undone.
	Rollbacks int64

	// BytesReserved is the size of the current buffer.
	BytesReserved int64
	// OffHeap reports whether the current buffer is an anonymous mapping.
	OffHeap bool
}

// Stats returns a snapshot of the vector's buffer state.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:           v.size,
		Cap:           v.buf.Cap(),
		Allocations:   v.counters.allocations,
		Reallocations: v.counters.reallocations,
		Rollbacks:     v.counters.rollbacks,
		BytesReserved: v.buf.Bytes(),
		OffHeap:       v.buf.OffHeap(),
	}
}
