// Package tourbuilder — nearest-neighbor initial tour.
package tourbuilder

import "github.com/katalvlaran/linkern/matrix"

// NearestNeighbor builds a Hamiltonian cycle by repeatedly walking to the
// closest unvisited city, starting from `start`. It is the weakest of the
// four builders but the cheapest: O(n²) time, O(n) memory, no allocation
// beyond the visited set and the output tour.
//
// Ties are broken by smaller vertex id, keeping the result deterministic.
func NearestNeighbor(dist matrix.Matrix, start int) ([]int, float64, error) {
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

	visited := make([]bool, n)
	tour := make([]int, 0, n+1)
	cur := start
	visited[cur] = true
	tour = append(tour, cur)

	for len(tour) < n {
		best := -1
		var bestW float64
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			w, err := edgeCost(dist.At, cur, v)
			if err != nil {
				return nil, 0, err
			}
			if best == -1 || w < bestW {
				best = v
				bestW = w
			}
		}
		if best == -1 {
			return nil, 0, ErrIncompleteGraph
		}
		visited[best] = true
		tour = append(tour, best)
		cur = best
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
