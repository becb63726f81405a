package candidate

import (
	"sort"

	"github.com/katalvlaran/linkern/matrix"
)

// FromMatrix builds a CandidateSet from a dense distance matrix: for each
// city i, the K nearest other cities by d(i,j), ascending. When
// opts.RunMetricClosure is set, dist is metric-closed in place first via
// matrix.FloydWarshall (the same knob the teacher's tsp package exposes as
// Options.RunMetricClosure), so candidates reflect shortest-path distances
// rather than raw entries.
func FromMatrix(dist matrix.Matrix, opts Options) (*CandidateSet, error) {
	n := dist.Rows()
	if n != dist.Cols() {
		return nil, ErrNonSquare
	}
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if err := validateK(opts.K); err != nil {
		return nil, err
	}

	if opts.RunMetricClosure {
		if err := matrix.FloydWarshall(dist); err != nil {
			return nil, err
		}
	}

	k := opts.K
	if k > n-1 {
		k = n - 1
	}

	list := make([][]int32, n)
	entries := make([]candidateEntry, 0, n-1)
	for i := 0; i < n; i++ {
		entries = entries[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			w, err := dist.At(i, j)
			if err != nil {
				return nil, err
			}
			entries = append(entries, candidateEntry{id: int32(j), d: w})
		}
		sort.SliceStable(entries, func(a, b int) bool { return entries[a].d < entries[b].d })
		row := make([]int32, k)
		for idx := 0; idx < k; idx++ {
			row[idx] = entries[idx].id
		}
		list[i] = row
	}

	return &CandidateSet{n: n, k: k, list: list}, nil
}
