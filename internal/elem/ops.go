package elem

import "reflect"

// Hooks customizes element lifecycle. Nil fields fall back to plain
// assignment (Copy, Move) or to no observable destruction (Destroy).
type Hooks[T any] struct {
	Copy    func(dst, src *T) error
	Move    func(dst, src *T) error
	Destroy func(v *T)
}

// Cloner is implemented by element types that deep-copy themselves.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented (on the pointer) by element types that release
// resources when removed from a buffer.
type Destroyer interface {
	Destroy()
}

// Ops applies a resolved set of hooks to ranges of slots.
// An Ops is immutable and may be shared by any number of buffers.
type Ops[T any] struct {
	copyFn    func(dst, src *T) error
	moveFn    func(dst, src *T) error
	destroyFn func(v *T)

	trivial     bool
	pointerFree bool
}

// New resolves hooks for T. Explicit hooks win over methods found on T.
func New[T any](h Hooks[T]) *Ops[T] {
	o := &Ops[T]{
		copyFn:    h.Copy,
		moveFn:    h.Move,
		destroyFn: h.Destroy,
	}

	var zero T
	if o.copyFn == nil {
		if _, ok := any(zero).(Cloner[T]); ok {
			o.copyFn = cloneCopy[T]
		}
	}
	if o.destroyFn == nil {
		if _, ok := any(&zero).(Destroyer); ok {
			o.destroyFn = destroyMethod[T]
		}
	}

	o.trivial = o.copyFn == nil && o.moveFn == nil && o.destroyFn == nil
	o.pointerFree = !HasPointers(reflect.TypeFor[T]())
	return o
}

func cloneCopy[T any](dst, src *T) error {
	v, err := any(*src).(Cloner[T]).Clone()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func destroyMethod[T any](v *T) {
	any(v).(Destroyer).Destroy()
}

// Trivial reports whether T has no observable copy, move, or destroy behavior.
func (o *Ops[T]) Trivial() bool { return o.trivial }

// PointerFree reports whether T holds no Go pointers.
func (o *Ops[T]) PointerFree() bool { return o.pointerFree }

// OffHeapEligible reports whether buffers of T may live outside the Go heap.
func (o *Ops[T]) OffHeapEligible() bool { return o.trivial && o.pointerFree }

// Destructible reports whether destroying an element is observable.
func (o *Ops[T]) Destructible() bool { return o.destroyFn != nil }

// CopyCanFail reports whether copy-construction runs a hook that may fail.
func (o *Ops[T]) CopyCanFail() bool { return o.copyFn != nil }

// CopyOne copy-constructs *dst from *src. On failure *dst is left not live.
// index is reported in the returned *Error.
func (o *Ops[T]) CopyOne(dst, src *T, index int) error {
	if o.copyFn == nil {
		*dst = *src
		return nil
	}
	if err := o.copyFn(dst, src); err != nil {
		o.forgetOne(dst)
		return &Error{Op: "copy", Index: index, Err: err}
	}
	return nil
}

// Construct runs fn to construct the element in *slot. On failure *slot is
// left not live.
func (o *Ops[T]) Construct(slot *T, index int, fn func(slot *T) error) error {
	if err := fn(slot); err != nil {
		o.forgetOne(slot)
		return &Error{Op: "construct", Index: index, Err: err}
	}
	return nil
}

// CopyInto copy-constructs dst[i] from src[i] for every i < len(src).
// dst must hold at least len(src) non-live slots and must not overlap src
// unless T's copy is trivial. On failure no slot of dst is live.
func (o *Ops[T]) CopyInto(dst, src []T) error {
	if o.copyFn == nil {
		copyTrivial(dst, src)
		return nil
	}
	for i := range src {
		if err := o.copyFn(&dst[i], &src[i]); err != nil {
			o.Destroy(dst[:i])
			o.forgetOne(&dst[i])
			return &Error{Op: "copy", Index: i, Err: err}
		}
	}
	return nil
}

// FillInto copy-constructs every slot of dst from *v.
// On failure no slot of dst is live.
func (o *Ops[T]) FillInto(dst []T, v *T) error {
	if o.copyFn == nil {
		fillTrivial(dst, *v)
		return nil
	}
	for i := range dst {
		if err := o.copyFn(&dst[i], v); err != nil {
			o.Destroy(dst[:i])
			o.forgetOne(&dst[i])
			return &Error{Op: "fill", Index: i, Err: err}
		}
	}
	return nil
}

// Relocate moves src into dst[:len(src)]. The elements in src stay intact and
// keep ownership until the caller commits by forgetting them. On failure the
// relocated prefix of dst is forgotten without being destroyed.
func (o *Ops[T]) Relocate(dst, src []T) error {
	if o.moveFn == nil {
		copyTrivial(dst, src)
		return nil
	}
	for i := range src {
		if err := o.moveFn(&dst[i], &src[i]); err != nil {
			o.Forget(dst[:i+1])
			return &Error{Op: "move", Index: i, Err: err}
		}
	}
	return nil
}

// Migrate relocates live into the front of dst and then lets tail construct
// additional elements in dst[len(live):]. tail may be nil. tail must leave its
// range without live elements when it fails; Migrate then forgets the
// relocated prefix, so on any failure dst holds nothing live and live is
// untouched.
func (o *Ops[T]) Migrate(dst, live []T, tail func(rest []T) error) error {
	n := len(live)
	if err := o.Relocate(dst[:n], live); err != nil {
		return err
	}
	if tail != nil {
		if err := tail(dst[n:]); err != nil {
			o.Forget(dst[:n])
			return err
		}
	}
	return nil
}

// Destroy destroys every element in s and leaves the slots not live.
func (o *Ops[T]) Destroy(s []T) {
	if o.destroyFn != nil {
		for i := range s {
			o.destroyFn(&s[i])
		}
	}
	o.Forget(s)
}

// Forget marks slots as not live without running Destroy. Slots are zeroed
// when T holds pointers so the garbage collector can reclaim their referents.
func (o *Ops[T]) Forget(s []T) {
	if !o.pointerFree {
		clear(s)
	}
}

func (o *Ops[T]) forgetOne(p *T) {
	if !o.pointerFree {
		var zero T
		*p = zero
	}
}
