package candidate

import "errors"

// Sentinel errors, matching the pack's strict errors.New idiom.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("candidate: matrix is not square")

	// ErrInvalidK indicates a non-positive neighbor count K was requested.
	ErrInvalidK = errors.New("candidate: K must be >= 1")

	// ErrNilGraph indicates a nil *core.Graph was passed to FromGraph.
	ErrNilGraph = errors.New("candidate: graph is nil")

	// ErrTooFewCities indicates fewer than 2 cities were supplied.
	ErrTooFewCities = errors.New("candidate: fewer than 2 cities")

	// ErrDisconnected indicates the built candidate graph does not span
	// every city, surfaced by CheckConnected.
	ErrDisconnected = errors.New("candidate: candidate graph is disconnected")

	// ErrIndexOutOfRange indicates a city id outside [0,n) was queried.
	ErrIndexOutOfRange = errors.New("candidate: city index out of range")
)
