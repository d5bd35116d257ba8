// Package elem manages the lifecycle of elements stored in raw slot buffers.
//
// A slot buffer is a []T whose prefix holds live elements and whose suffix is
// reserved but not live. Ops constructs, copies, relocates, and destroys
// ranges of slots and guarantees that a failed bulk operation leaves no live
// element behind in the destination range: everything constructed before the
// failure is destroyed (or, for relocated elements, forgotten) before the
// error is returned.
//
// # Hooks
//
// Element types with observable lifecycle behavior supply hooks:
//
//   - Copy(dst, src *T) error: copy-construct *dst from *src.
//   - Move(dst, src *T) error: relocate *src into *dst. Ownership flips only
//     when the surrounding operation commits, so *src must stay intact.
//   - Destroy(v *T): release a live element.
//
// Hooks may also be discovered from the type itself: a Clone() (T, error)
// method on T supplies Copy and a Destroy() method on *T supplies Destroy.
//
// # Trivial types
//
// A type without hooks is trivial. Copying it is copying its bytes, so bulk
// operations collapse into the builtin copy and a doubling fill (see fast.go).
// Trivial types that also hold no Go pointers may live in off-heap memory.
package elem
