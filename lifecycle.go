package xvec

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/xvec/internal/elem"
)

// Lifecycle customizes how a vector copies, relocates, and destroys its
// elements. Nil hooks keep the default behavior.
//
// Without a Lifecycle, hooks are discovered from the element type:
//
//   - a method Clone() (T, error) on T is used to copy-construct,
//   - a method Destroy() on *T is called when an element is removed.
//
// Element types without any hook are trivial and take bulk memory paths.
type Lifecycle[T any] struct {
	// Copy copy-constructs *dst from *src. *dst holds the zero value.
	// When Copy fails it must leave nothing in *dst that needs destroying.
	Copy func(dst, src *T) error

	// Move relocates *src into *dst while the vector migrates to a new
	// buffer. *src must be left intact: it stays the owner until the whole
	// migration succeeds, and is discarded without Destroy afterwards.
	Move func(dst, src *T) error

	// Destroy releases a live element.
	Destroy func(v *T)
}

// WithLifecycle configures element hooks for vectors of T. Explicit hooks
// take precedence over Clone/Destroy methods on T.
func WithLifecycle[T any](l Lifecycle[T]) Option {
	return func(o *options) {
		o.lifecycle = l
	}
}

func resolveOps[T any](o options) (*elem.Ops[T], error) {
	var hooks elem.Hooks[T]
	if o.lifecycle != nil {
		l, ok := o.lifecycle.(Lifecycle[T])
		if !ok {
			return nil, fmt.Errorf("%w: want Lifecycle[%v], got %T",
				ErrLifecycleMismatch, reflect.TypeFor[T](), o.lifecycle)
		}
		hooks = elem.Hooks[T]{Copy: l.Copy, Move: l.Move, Destroy: l.Destroy}
	}
	return elem.New(hooks), nil
}
