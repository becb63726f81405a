package candidate

// CandidateSet is an immutable per-city list of nearest-neighbor candidates,
// sorted ascending by distance. Once built it is shared read-only by the LK
// step engine, the kick engine, and the iterator (spec C3).
type CandidateSet struct {
	n    int
	k    int
	list [][]int32 // list[i] = candidate ids for city i, ascending by distance
}

// N returns the number of cities the set was built over.
func (cs *CandidateSet) N() int { return cs.n }

// K returns the configured maximum neighbor count per city.
func (cs *CandidateSet) K() int { return cs.k }

// Candidates returns city i's candidate neighbors, ascending by distance.
// The returned slice must not be mutated by the caller.
func (cs *CandidateSet) Candidates(i int) ([]int32, error) {
	if i < 0 || i >= cs.n {
		return nil, ErrIndexOutOfRange
	}
	return cs.list[i], nil
}

// Options configures candidate-set construction.
type Options struct {
	// K is the maximum number of neighbors retained per city. Default 8,
	// matching spec §3's "default k=8" (a quadrant-quadrupled 4*quadtry).
	K int

	// RunMetricClosure requests a metric closure (shortest-path distances)
	// before ranking neighbors, instead of ranking raw matrix/graph edges.
	RunMetricClosure bool
}

// DefaultOptions returns the package's default construction policy.
func DefaultOptions() Options {
	return Options{K: 8, RunMetricClosure: false}
}

func validateK(k int) error {
	if k < 1 {
		return ErrInvalidK
	}
	return nil
}

// candidateEntry pairs a neighbor id with its distance, for sorting.
type candidateEntry struct {
	id int32
	d  float64
}
