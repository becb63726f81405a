package candidate

import (
	"math"
	"sort"

	"github.com/katalvlaran/linkern/core"
	"github.com/katalvlaran/linkern/dijkstra"
)

// FromGraph builds a CandidateSet from a *core.Graph: cities are the
// graph's vertices (in g.Vertices() order, which is sorted ascending),
// ranked by edge weight. When opts.RunMetricClosure is set, distances are
// closed via one dijkstra.Dijkstra run per vertex (closeSparseGraph) rather
// than a dense Floyd–Warshall pass, since a candidate-set graph input is
// typically far sparser than the complete graphs FromMatrix expects.
func FromGraph(g *core.Graph, opts Options) (*CandidateSet, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	verts := g.Vertices()
	n := len(verts)
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if err := validateK(opts.K); err != nil {
		return nil, err
	}

	idOf := make(map[string]int, n)
	for i, id := range verts {
		idOf[id] = i
	}

	var dense [][]float64
	var err error
	if opts.RunMetricClosure {
		dense, err = closeSparseGraph(g, verts, idOf)
	} else {
		dense, err = directDistances(g, verts, idOf)
	}
	if err != nil {
		return nil, err
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
			if math.IsInf(dense[i][j], 1) {
				continue
			}
			entries = append(entries, candidateEntry{id: int32(j), d: dense[i][j]})
		}
		sort.SliceStable(entries, func(a, b int) bool { return entries[a].d < entries[b].d })
		lim := k
		if lim > len(entries) {
			lim = len(entries)
		}
		row := make([]int32, lim)
		for idx := 0; idx < lim; idx++ {
			row[idx] = entries[idx].id
		}
		list[i] = row
	}

	return &CandidateSet{n: n, k: k, list: list}, nil
}

// directDistances reads g's edge weights directly into a dense n×n table,
// +Inf where no edge exists (0 on the diagonal).
func directDistances(g *core.Graph, verts []string, idOf map[string]int) ([][]float64, error) {
	n := len(verts)
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
		for j := range dense[i] {
			if i != j {
				dense[i][j] = math.Inf(1)
			}
		}
	}
	for _, id := range verts {
		i := idOf[id]
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			other := e.To
			if other == id {
				other = e.From
			}
			j, ok := idOf[other]
			if !ok {
				continue
			}
			w := float64(e.Weight)
			if w < dense[i][j] {
				dense[i][j] = w
				dense[j][i] = w
			}
		}
	}
	return dense, nil
}

// closeSparseGraph computes all-pairs shortest paths by running
// dijkstra.Dijkstra once per vertex, the metric-closure path for graph
// inputs too sparse for a dense Floyd–Warshall pass to be the natural fit.
func closeSparseGraph(g *core.Graph, verts []string, idOf map[string]int) ([][]float64, error) {
	n := len(verts)
	dense := make([][]float64, n)
	for _, id := range verts {
		i := idOf[id]
		distMap, _, err := dijkstra.Dijkstra(g, dijkstra.Source(id))
		if err != nil {
			return nil, err
		}
		row := make([]float64, n)
		for _, other := range verts {
			j := idOf[other]
			d, ok := distMap[other]
			if !ok || d == math.MaxInt64 {
				row[j] = math.Inf(1)
				continue
			}
			row[j] = float64(d)
		}
		dense[i] = row
	}
	return dense, nil
}
