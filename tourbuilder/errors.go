package tourbuilder

import "errors"

// Sentinel errors. Mirrors the strict, un-wrapped sentinel style used
// throughout the pack (see tsp/types.go): callers branch with errors.Is,
// never by matching message text.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tourbuilder: matrix is not square")

	// ErrDimensionMismatch indicates an unexpected shape among tour/matrix arguments.
	ErrDimensionMismatch = errors.New("tourbuilder: dimension mismatch")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tourbuilder: negative distance encountered")

	// ErrIncompleteGraph is returned when a vertex has no finite edge to some
	// other vertex, making a Hamiltonian cycle impossible to certify.
	ErrIncompleteGraph = errors.New("tourbuilder: incomplete distance matrix")

	// ErrStartOutOfRange indicates a start vertex outside [0,n).
	ErrStartOutOfRange = errors.New("tourbuilder: start vertex out of range")

	// ErrMatchingNotImplemented is returned by blossomMatch: true minimum-weight
	// perfect matching is not available; callers fall back to greedyMatch.
	ErrMatchingNotImplemented = errors.New("tourbuilder: blossom matching not implemented")
)
