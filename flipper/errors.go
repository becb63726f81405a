package flipper

import "errors"

var (
	// ErrTooFewCities is returned by Init when n < 1.
	ErrTooFewCities = errors.New("flipper: too few cities")
	// ErrIndexOutOfRange is returned when a city id falls outside [0, n).
	ErrIndexOutOfRange = errors.New("flipper: city index out of range")
	// ErrSameCity is returned by Flip when a == b.
	ErrSameCity = errors.New("flipper: flip endpoints coincide")
	// ErrInternalInvariantViolation signals the segment arena ran out of
	// capacity or the segment ring was found inconsistent; this should
	// never occur and indicates a bug in this package rather than bad input.
	ErrInternalInvariantViolation = errors.New("flipper: internal invariant violation")
)
