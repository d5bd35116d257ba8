package elem

// copyTrivial relocates or copies src into dst with a single memmove.
// Overlapping ranges are handled by the builtin.
func copyTrivial[T any](dst, src []T) {
	copy(dst, src)
}

// fillTrivial writes v into every slot of dst. After the first slot is set,
// each step copies the already-filled prefix into the remainder, doubling the
// covered region, so n slots take O(log n) block copies.
func fillTrivial[T any](dst []T, v T) {
	if len(dst) == 0 {
		return
	}
	dst[0] = v
	for filled := 1; filled < len(dst); {
		filled += copy(dst[filled:], dst[:filled])
	}
}
