// Package tourbuilder — quick-Borůvka-style double-tree initial tour.
//
// MST builds a minimum spanning tree over the distance matrix via
// prim_kruskal.Prim (mirroring tsp.SolveWithGraph's matrix→*core.Graph
// conversion pattern), then walks it in DFS preorder via algorithms.DFS.
// A DFS preorder walk of a tree is exactly the tree's doubled-edge Eulerian
// tour with repeats shortcut away, so no separate Eulerian/shortcut pass is
// needed here (unlike Christofides, whose multigraph is not a tree).
//
// This is the classical double-tree 2-approximation on metric instances,
// and the closest honest analog this pack's primitives offer to the
// original solver's default "quick-Borůvka" initial-tour builder.
package tourbuilder

import (
	"math"
	"strconv"

	"github.com/katalvlaran/linkern/algorithms"
	"github.com/katalvlaran/linkern/core"
	"github.com/katalvlaran/linkern/matrix"
	"github.com/katalvlaran/linkern/prim_kruskal"
)

// vertexID renders a matrix index as the string vertex id core.Graph expects.
func vertexID(i int) string { return strconv.Itoa(i) }

// MST builds a Hamiltonian cycle from a minimum spanning tree, walked in
// DFS preorder from `start`.
func MST(dist matrix.Matrix, start int) ([]int, float64, error) {
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return nil, 0, ErrNonSquare
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []int{start, start}, 0, nil
	}

	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, 0, ErrDimensionMismatch
		}
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			w, err := edgeCost(dist.At, u, v)
			if err != nil {
				return nil, 0, err
			}
			// core.Graph weights are int64: scale to micro-units and round so
			// Prim orders edges by distance; distances closer than 1e-6 tie.
			if _, aerr := g.AddEdge(vertexID(u), vertexID(v), int64(math.Round(w*1e6))); aerr != nil {
				return nil, 0, ErrDimensionMismatch
			}
		}
	}

	mstEdges, _, err := prim_kruskal.Prim(g, vertexID(start))
	if err != nil {
		return nil, 0, ErrIncompleteGraph
	}

	tree := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		if err = tree.AddVertex(vertexID(i)); err != nil {
			return nil, 0, ErrDimensionMismatch
		}
	}
	for _, e := range mstEdges {
		if _, aerr := tree.AddEdge(e.From, e.To, e.Weight); aerr != nil {
			return nil, 0, ErrDimensionMismatch
		}
	}

	res, err := algorithms.DFS(tree, vertexID(start), nil)
	if err != nil {
		return nil, 0, ErrIncompleteGraph
	}
	if len(res.Order) != n {
		return nil, 0, ErrIncompleteGraph
	}

	tour := make([]int, 0, n+1)
	for _, v := range res.Order {
		idx, perr := strconv.Atoi(v.ID)
		if perr != nil {
			return nil, 0, ErrDimensionMismatch
		}
		tour = append(tour, idx)
	}
	tour = append(tour, start)

	cost, err := TourCost(dist, tour)
	if err != nil {
		return nil, 0, err
	}
	if verr := ValidateTour(tour, n, start); verr != nil {
		return nil, 0, verr
	}
	return tour, cost, nil
}
