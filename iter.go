package xvec

import "iter"

// All returns an iterator over index-value pairs in order.
//
// Elements are read from the vector on every step. Mutating the vector
// while iterating is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Slots()[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.Slots()[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if i >= v.size {
				continue
			}
			if !yield(i, v.buf.Slots()[i]) {
				return
			}
		}
	}
}
