package heap

import "errors"

// Sentinel errors, matching the pack's strict errors.New idiom (see tsp/types.go).
var (
	// ErrIndexOutOfRange is returned when an element index falls outside [0,n).
	ErrIndexOutOfRange = errors.New("heap: index out of range")

	// ErrAlreadyPresent is returned by Insert when the element is already in the heap.
	ErrAlreadyPresent = errors.New("heap: element already present")

	// ErrNotPresent is returned by ChangeKey/Delete when the element is not in the heap.
	ErrNotPresent = errors.New("heap: element not present")

	// ErrEmpty is returned by ExtractMin/FindMin when the heap holds no elements.
	ErrEmpty = errors.New("heap: empty")

	// ErrInvalidArity is returned by New when arity < 2.
	ErrInvalidArity = errors.New("heap: arity must be >= 2")
)
