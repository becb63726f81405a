package linkern

import "errors"

// Error kinds from spec.md §7's taxonomy. TimeLimit and LengthBound are
// ordinary stop reasons (see StopReason), not errors.
var (
	// ErrInvalidInput covers n < 3, a malformed initial tour, or an
	// out-of-range candidate entry.
	ErrInvalidInput = errors.New("linkern: invalid input")
	// ErrAllocationFailure is returned when a fixed-size array the solver
	// needs (heap, don't-look bits, queue) cannot be allocated.
	ErrAllocationFailure = errors.New("linkern: allocation failure")
	// ErrOracleFailure wraps a distance-oracle error encountered mid-search;
	// the current descent is abandoned without corrupting the tour.
	ErrOracleFailure = errors.New("linkern: oracle failure")
	// ErrInternalInvariantViolation signals a flipper or heap invariant
	// broke; this should never occur and indicates a bug in this package.
	ErrInternalInvariantViolation = errors.New("linkern: internal invariant violation")
)
