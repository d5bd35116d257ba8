// Package conv provides checked integer conversions and arithmetic.
//
// Buffer sizes are computed as capacity * sizeof(element) and persisted
// headers carry fixed-width counts. Both paths go through this package so an
// overflow surfaces as an error instead of a silently truncated allocation.
//
// For conversions that are provably safe by construction (loop indices,
// values already bounded by growth.MaxCapacity), use direct casts instead.
package conv
