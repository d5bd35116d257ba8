// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Overview
//
// An anonymous mapping is a zero-filled, read-write region obtained directly
// from the operating system. Memory in it is invisible to the Go garbage
// collector, so it must only ever hold pointer-free data.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // valid until Close
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//   - Other platforms: MapAnon returns ErrUnsupported and callers fall back
//     to heap memory.
//
// # Lifetime
//
// Close is idempotent and is the only way a mapping is unmapped. A mapping
// that is dropped without Close leaks its address space; it is never
// unmapped behind the back of a slice still pointing into it.
package mmap
