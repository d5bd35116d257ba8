package elem

import "fmt"

// Error reports an element hook failure during a bulk operation.
//
// Index is the position within the range the operation was constructing.
// The original hook error can be accessed via errors.Unwrap.
type Error struct {
	Op    string
	Index int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("element %s failed at index %d: %v", e.Op, e.Index, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
