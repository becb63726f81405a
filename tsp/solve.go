// Package tsp - unified dispatcher for the TSP solver facade.
//
// This file provides the canonical entry points to solve a TSP instance:
//
//   - SolveWithGraph: accept *core.Graph, build an adjacency matrix (optionally
//     with metric closure), derive stable vertex IDs, then delegate to SolveWithMatrix.
//   - SolveWithMatrix: accept a distance matrix + optional IDs, build a seed
//     tour with the requested construction heuristic (tourbuilder), then
//     refine it with iterated Lin–Kernighan (linkern) unless refinement is
//     disabled.
//
// Design principles:
//   - Deterministic: seed routing to construction/kick RNGs; no time-based randomness.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a sentinel suffices.
//   - Stable cost: all returned costs are rounded to 1e−9 to prevent FP drift.
package tsp

import (
	"github.com/katalvlaran/linkern/candidate"
	"github.com/katalvlaran/linkern/core"
	"github.com/katalvlaran/linkern/linkern"
	"github.com/katalvlaran/linkern/matrix"
	"github.com/katalvlaran/linkern/tourbuilder"
)

// SolveWithGraph converts g into a distance matrix (according to its flags),
// optionally applies metric closure (opts.RunMetricClosure), and delegates
// to SolveWithMatrix.
//
// Contracts:
//   - g must be non-nil.
//   - Graph configuration (directed/weighted/loops/multi) is respected via matrix options.
//   - IDs are reconstructed from matrix vertex indices for round-trip fidelity.
//
// Errors: those from validateAll and underlying builders; see types.go.
//
// Complexity:
//   - Building adjacency: O(V^2 + E) (matrix init + edge pass).
//   - Delegation cost: per chosen construction strategy plus LK refinement.
func SolveWithGraph(g *core.Graph, opts Options) (TSResult, error) {
	// Nil graph => invalid shape for building matrices.
	if g == nil {
		return TSResult{}, ErrDimensionMismatch
	}

	// Build matrix options from graph flags + facade policy.
	var mopts = matrix.NewMatrixOptions(
		matrix.WithDirected(g.Directed()),
		matrix.WithWeighted(g.Weighted()),
		matrix.WithAllowLoops(g.Looped()),
		matrix.WithAllowMulti(true),
		matrix.WithMetricClosure(opts.RunMetricClosure),
	)

	am, err := matrix.NewAdjacencyMatrix(g, mopts)
	if err != nil {
		// NewAdjacencyMatrix returns matrix-level errors; forward them as-is.
		// Upstream validateAll will surface tsp sentinels when we dispatch via SolveWithMatrix.
		return TSResult{}, err
	}

	// Recover stable vertex ordering ids[idx] = id.
	var (
		n   = len(am.Data)
		ids = make([]string, n)
	)
	// Index is id -> index, so invert it.
	var (
		id  string
		idx int
	)
	for id, idx = range am.Index {
		ids[idx] = id
	}

	// Copy the dense weight rows into a matrix.Dense (the dispatcher's matrix.Matrix).
	dense, derr := matrix.NewDense(n, n)
	if derr != nil {
		return TSResult{}, derr
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if serr := dense.Set(i, j, am.Data[i][j]); serr != nil {
				return TSResult{}, serr
			}
		}
	}

	// Delegate to matrix dispatcher (unified validation is done there).
	return SolveWithMatrix(dense, ids, opts)
}

// SolveWithMatrix validates inputs, builds a seed tour with the requested
// construction strategy, and refines it with iterated Lin–Kernighan unless
// opts.EnableLocalSearch is false.
//
// Contracts:
//   - dist must be a square matrix; n ≥ 2 for non-trivial TSP.
//   - ids may be nil; if provided, len(ids)==n with unique, non-empty strings.
//   - Symmetry is enforced when required by the construction strategy or opts.Symmetric.
//
// Errors: strict sentinels from types.go (e.g., ErrNonSquare, ErrAsymmetry,
// ErrIncompleteGraph, ErrUnsupportedAlgorithm, ErrATSPNotSupportedByAlgo).
//
// Complexity: validation O(n^2); construction per strategy (see tourbuilder);
// refinement O(rounds · n) amortized per LK descent.
func SolveWithMatrix(dist matrix.Matrix, ids []string, opts Options) (TSResult, error) {
	// Stage 1 - unified validation (Options + matrix + ids).
	n, err := validateAll(dist, ids, opts)
	if err != nil {
		return TSResult{}, err
	}

	// Stage 2 - build the seed tour.
	seed, _, err := buildInitialTour(dist, opts)
	if err != nil {
		return TSResult{}, err
	}

	if !opts.EnableLocalSearch {
		cost, cerr := TourCost(dist, seed)
		if cerr != nil {
			return TSResult{}, cerr
		}
		return TSResult{Tour: seed, Cost: round1e9(cost)}, nil
	}

	// Stage 3 - build the candidate-neighbor set and hand the seed tour to LK.
	cands, err := candidate.FromMatrix(dist, candidate.Options{K: opts.CandidateK})
	if err != nil {
		return TSResult{}, err
	}

	initial := make([]int32, n)
	for i := 0; i < n; i++ {
		initial[i] = int32(seed[i])
	}

	cfg := linkern.DefaultConfig()
	cfg.N = n
	cfg.Oracle = &linkern.MatrixOracle{M: dist}
	cfg.Candidates = cands
	cfg.InitialTour = initial
	cfg.Rng = linkern.NewRandState(int32(opts.Seed))
	cfg.Kick = opts.Kick
	cfg.StallCount = opts.StallCount
	cfg.RepeatCount = opts.RepeatCount
	cfg.LengthBound = opts.LengthBound
	if opts.TimeLimit > 0 {
		cfg.TimeBound = opts.TimeLimit.Seconds()
	}

	lkRes, err := linkern.Solve(cfg)
	if err != nil {
		return TSResult{}, err
	}

	refined := make([]int, n)
	for i, c := range lkRes.Tour {
		refined[i] = int(c)
	}
	closed, err := RotateTourToStart(refined, opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}
	_ = CanonicalizeOrientationInPlace(closed)
	if verr := ValidateTour(closed, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}

	cost, err := TourCost(dist, closed)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{
		Tour:    closed,
		Cost:    round1e9(cost),
		Stopped: lkRes.Stopped,
		Rounds:  lkRes.Rounds,
	}, nil
}

// buildInitialTour dispatches to the tourbuilder construction heuristic
// selected by opts.TourInit, returning a closed tour (len n+1, tour[0]==
// tour[n]==opts.StartVertex) and its cost.
func buildInitialTour(dist matrix.Matrix, opts Options) ([]int, float64, error) {
	switch opts.TourInit {
	case InitNearestNeighbor:
		return tourbuilder.NearestNeighbor(dist, opts.StartVertex)
	case InitGreedyEdge:
		return tourbuilder.GreedyEdge(dist, opts.StartVertex)
	case InitChristofides:
		return tourbuilder.Christofides(dist, opts.StartVertex, opts.MatchingAlgo)
	case InitMST:
		return tourbuilder.MST(dist, opts.StartVertex)
	default:
		return nil, 0, ErrUnsupportedAlgorithm
	}
}
