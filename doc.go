// Package xvec provides Vector, a contiguous, growable, owning sequence
// container with predictable growth and strong error safety.
//
// # Quick Start
//
//	v, _ := xvec.New[int]()
//	for i := range 10 {
//	    _ = v.Append(i)
//	}
//	fmt.Println(v.Len(), v.Cap()) // 10 16
//
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//	v.Free()
//
// # Growth
//
// Capacity is always a power of two. A single Append or Emplace on a full
// vector doubles the capacity. Operations that know their target size
// (NewSized, FromSlice, Reserve, Resize, Concat, ShrinkToFit) jump straight
// to the smallest power of two that fits.
//
// # Element Lifecycle
//
// Element types may carry behavior that runs when an element is copied,
// relocated, or removed. Hooks are discovered from methods or configured
// explicitly:
//
//	type Conn struct{ fd int }
//	func (c Conn) Clone() (Conn, error) { return dup(c) }
//	func (c *Conn) Destroy()            { closeFD(c.fd) }
//
//	v, _ := xvec.New[Conn]() // Clone and Destroy are used automatically
//
//	w, _ := xvec.New[Handle](xvec.WithLifecycle(xvec.Lifecycle[Handle]{
//	    Copy:    copyHandle,
//	    Destroy: releaseHandle,
//	}))
//
// Element types without hooks are trivial: copies and fills run as bulk
// memory operations.
//
// # Error Safety
//
// Every operation that returns an error leaves the vector exactly as it was:
// same length, same capacity, same elements. When growth fails midway, the
// partially built buffer is torn down and the old one is kept. Errors are
// one of:
//
//   - ErrAllocationFailed (capacity overflow, memory budget, mapping failure)
//   - *ElementError wrapping the error of a failing hook
//   - *IndexError from At, matching ErrOutOfRange
//   - ErrInvalidLength for negative counts
//
// # Memory Budget
//
// A resource.Controller shared through WithMemoryController caps the bytes
// held by all vectors using it. Element types without pointers or hooks can
// additionally be kept off the Go heap with WithOffHeapThreshold.
//
// # Contract Checks
//
// Unchecked access (Get, Ref), Front, Back, and PopBack require a valid
// index or a non-empty vector. Building with -tags debug turns violations
// into descriptive panics.
package xvec
