package tourbuilder

import (
	"math"

	"github.com/katalvlaran/linkern/matrix"
)

// symTol is the structural tolerance used for cost tie-breaks.
const symTol = 1e-12

// roundScale stabilizes float costs to 1e-9, matching the pack's round1e9 idiom.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// edgeCost fetches w(u,v) with strict validation, matching tsp/cost.go's edgeCost.
func edgeCost(at func(u, v int) (float64, error), u, v int) (float64, error) {
	w, err := at(u, v)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) {
		return 0, ErrDimensionMismatch
	}
	if math.IsInf(w, 0) {
		return 0, ErrIncompleteGraph
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}
	return w, nil
}

// validateStartVertex verifies start ∈ [0,n).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	return nil
}

// CanonicalizeOrientationInPlace fixes the tour direction under a fixed start:
// among the two traversal directions of a closed cycle, it picks the one
// where the vertex immediately after start is smaller, giving every builder
// a single canonical output for a given vertex set.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	n := len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		i, k := 1, n-1
		for i < k {
			tour[i], tour[k] = tour[k], tour[i]
			i++
			k--
		}
	}
	return nil
}

// ValidateTour enforces the Hamiltonian-cycle invariants shared by every builder.
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// ShortcutEulerianToHamiltonian skips repeats in an Eulerian walk, producing
// a Hamiltonian cycle rotated to start. Shared by the MST and Christofides builders.
func ShortcutEulerianToHamiltonian(euler []int, n, start int) ([]int, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	visited := make([]bool, n)
	cycle := make([]int, 0, n)
	for _, v := range euler {
		if v < 0 || v >= n {
			return nil, ErrDimensionMismatch
		}
		if !visited[v] {
			visited[v] = true
			cycle = append(cycle, v)
		}
	}
	if len(cycle) != n {
		return nil, ErrDimensionMismatch
	}

	pivot := -1
	for i, v := range cycle {
		if v == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = cycle[(pivot+i)%n]
	}
	tour[n] = start
	return tour, nil
}

// TourCost sums edge weights along a closed tour (length n+1, tour[0]==tour[n])
// using edgeCost for strict validation, then stabilizes the result to 1e-9.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	var total float64
	for i := 0; i+1 < len(tour); i++ {
		w, err := edgeCost(dist.At, tour[i], tour[i+1])
		if err != nil {
			return 0, err
		}
		total += w
	}
	return round1e9(total), nil
}
