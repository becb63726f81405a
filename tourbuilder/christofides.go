// Package tourbuilder — Christofides 1.5-approximation.
//
// Christofides computes a 1.5-approximate Hamiltonian cycle for the
// symmetric, metric Travelling Salesman Problem via the classic pipeline:
//
//  1. Minimum Spanning Tree (MST) on the complete metric graph.
//  2. Minimum-weight perfect matching on odd-degree vertices of the MST.
//  3. Eulerian circuit on the resulting multigraph.
//  4. Shortcutting the Eulerian walk to a Hamiltonian cycle (skip revisits).
//
// Mathematical guarantee:
//   - For metric symmetric TSP (triangle inequality, non-negative, symmetric),
//     the returned tour length ≤ 1.5 · OPT, provided step (2) is a true
//     minimum-weight perfect matching. The greedy fallback keeps the pipeline
//     valid and deterministic but drops the formal 1.5 factor.
//
// Contracts:
//   - dist is square n×n, n ≥ 2,
//   - diagonal ≈ 0, no negative weights, no NaN,
//   - symmetric (callers of this package are expected to enforce symmetry
//     before invoking Christofides; it does not re-derive it).
package tourbuilder

import (
	"errors"

	"github.com/katalvlaran/linkern/matrix"
)

// MatchingAlgo selects the odd-degree matching strategy used by Christofides.
type MatchingAlgo int

const (
	// BlossomMatch requests a true minimum-weight perfect matching, falling
	// back to GreedyMatch when no Blossom implementation is wired in.
	BlossomMatch MatchingAlgo = iota
	// GreedyMatch requests the deterministic O(k²) greedy matching directly.
	GreedyMatch
)

// Christofides runs the MST + matching + Eulerian + shortcut pipeline on a
// symmetric, metric dense distance matrix, returning a closed tour
// (len n+1, tour[0]==tour[n]==start) and its stabilized (1e-9) total cost.
func Christofides(dist matrix.Matrix, start int, algo MatchingAlgo) ([]int, float64, error) {
	n := dist.Rows()
	if err := validateStartVertex(n, start); err != nil {
		return nil, 0, err
	}

	// 1) Minimum Spanning Tree on the metric graph.
	_, mstAdj, err := MinimumSpanningTree(dist)
	if err != nil {
		return nil, 0, err
	}

	// 2) Collect odd-degree vertices of the MST.
	odd := make([]int, 0, n/2+1)
	for v := 0; v < n; v++ {
		if (len(mstAdj[v]) & 1) == 1 {
			odd = append(odd, v)
		}
	}

	// 3) Add a minimum-weight perfect matching among odd-degree vertices,
	//    mutating mstAdj in place to form the Eulerian multigraph.
	switch algo {
	case BlossomMatch:
		if mErr := blossomMatch(odd, dist, mstAdj); mErr != nil {
			if errors.Is(mErr, ErrMatchingNotImplemented) {
				greedyMatch(odd, dist, mstAdj)
			} else {
				return nil, 0, mErr
			}
		}
	case GreedyMatch:
		greedyMatch(odd, dist, mstAdj)
	default:
		greedyMatch(odd, dist, mstAdj)
	}

	// 4) Eulerian circuit on the multigraph (Hierholzer).
	euler := EulerianCircuit(mstAdj, start)

	// 5) Shortcut revisits to obtain a Hamiltonian tour; canonicalize direction.
	tour, err := ShortcutEulerianToHamiltonian(euler, n, start)
	if err != nil {
		return nil, 0, err
	}
	_ = CanonicalizeOrientationInPlace(tour)

	// 6) Stabilized tour cost with strict edge validation.
	cost, err := TourCost(dist, tour)
	if err != nil {
		return nil, 0, err
	}

	if verr := ValidateTour(tour, n, start); verr != nil {
		return nil, 0, verr
	}

	return tour, cost, nil
}
