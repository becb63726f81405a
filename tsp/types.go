// Package tsp defines common types, configuration options, and sentinel errors used by
// the unified TSP solver facade (construction heuristic + Lin–Kernighan refinement).
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants for tours.
//   - Extensibility: a single Options struct covers both graph and matrix entry points.
//   - Determinism: all random-driven components are controlled by a Seed.
//   - Zero surprises: sensible defaults (MST construction + LK refinement).
package tsp

import (
	"errors"
	"time"

	"github.com/katalvlaran/linkern/linkern"
	"github.com/katalvlaran/linkern/tourbuilder"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, algorithm governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i] for a symmetric-TSP solver.
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrNonZeroDiagonal indicates some dist[i][i] ≠ 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self-distance")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle exists
	// (one or more edges missing, represented by math.Inf(1)).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix (no Hamiltonian cycle possible)")

	// ErrDimensionMismatch indicates an unexpected matrix/tour shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrMatchingNotImplemented is returned when Christofides construction
	// falls back because no true minimum-weight perfect matching is wired in.
	ErrMatchingNotImplemented = errors.New("tsp: blossom matching not implemented")
)

// Planner/engine governance sentinels.
var (
	// ErrUnsupportedAlgorithm is returned when Options.TourInit selects an unavailable strategy.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported construction strategy")

	// ErrATSPNotSupportedByAlgo signals that the chosen construction strategy handles only symmetric TSP.
	ErrATSPNotSupportedByAlgo = errors.New("tsp: construction strategy does not support ATSP")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Construction strategy
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// InitStrategy selects the construction heuristic that builds the seed tour
// handed to the Lin–Kernighan refinement stage.
type InitStrategy int

const (
	// InitNearestNeighbor builds a seed tour greedily by nearest unvisited city.
	InitNearestNeighbor InitStrategy = iota

	// InitGreedyEdge builds a seed tour by repeatedly adding the cheapest edge
	// that does not create a premature cycle or a degree-3 vertex.
	InitGreedyEdge

	// InitChristofides builds a seed tour via MST + odd-degree matching +
	// Eulerian shortcut. Requires a symmetric, metric instance.
	InitChristofides

	// InitMST builds a seed tour by a preorder walk of the minimum spanning tree.
	InitMST
)

// MatchingAlgo selects the perfect-matching strategy InitChristofides uses on
// the MST's odd-degree vertices.
type MatchingAlgo = tourbuilder.MatchingAlgo

const (
	// BlossomMatch requests a true minimum-weight perfect matching, falling
	// back to GreedyMatch when no Blossom implementation is wired in.
	BlossomMatch = tourbuilder.BlossomMatch
	// GreedyMatch requests the deterministic O(k²) greedy matching directly.
	GreedyMatch = tourbuilder.GreedyMatch
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// TSResult encapsulates the output of a TSP solve.
type TSResult struct {
	// Tour is an ordered sequence of vertex indices representing the Hamiltonian cycle.
	// Invariants:
	//   len(Tour) == n + 1
	//   Tour[0] == Tour[n] == StartVertex
	//   each vertex in [0..n-1] appears exactly once in Tour[0:n]
	Tour []int

	// Cost is the total distance along the cycle, computed from the provided distance matrix.
	Cost float64

	// Stopped reports why Lin–Kernighan refinement ended. Zero value
	// (linkern.StoppedRepeatExhausted) when EnableLocalSearch is false, since
	// no refinement ran.
	Stopped linkern.StopReason

	// Rounds is the number of kick-and-reoptimize rounds LK performed.
	Rounds int
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs
const (
	// DefaultCandidateK is the default per-city candidate-neighbor count fed
	// to the LK engine (spec §3's default k=8).
	DefaultCandidateK = 8

	// DefaultStallCount is the number of consecutive full queue drains
	// without an improving flip before an LK descent is declared converged.
	DefaultStallCount = 1

	// DefaultRepeatCount is the number of kick-and-reoptimize rounds run
	// after the first descent.
	DefaultRepeatCount = 100
)

// Options defines configurable parameters for the TSP facade.
// Zero value is not meaningful; use DefaultOptions() and override fields as needed.
type Options struct {
	// StartVertex selects the start/end vertex index [0..n-1]. Default: 0.
	StartVertex int

	// TourInit selects the construction heuristic for the seed tour. Default: InitMST.
	TourInit InitStrategy

	// Symmetric controls matrix validation:
	//   true  → require dist[i][j] == dist[j][i] (TSP),
	//   false → allow asymmetry (ATSP) for strategies that support it.
	// Default: true.
	Symmetric bool

	// MatchingAlgo chooses between GreedyMatch or BlossomMatch when TourInit==InitChristofides.
	MatchingAlgo MatchingAlgo

	// RunMetricClosure, if true, runs Floyd–Warshall (matrix input) or
	// repeated Dijkstra (graph input) to replace +Inf with shortest paths
	// before solving, enabling partially connected graphs to become metric-closed.
	RunMetricClosure bool

	// EnableLocalSearch applies Lin–Kernighan refinement to the construction
	// tour. When false, the facade returns the raw construction tour as-is.
	// Default: true.
	EnableLocalSearch bool

	// CandidateK bounds the per-city candidate-neighbor list LK scans. Default: 8.
	CandidateK int

	// Kick selects the double-bridge perturbation bias LK uses between descents.
	Kick linkern.KickType

	// StallCount is the number of consecutive full queue drains without an
	// improving flip before a single LK descent is considered converged.
	StallCount int

	// RepeatCount bounds the number of kick-and-reoptimize rounds LK performs
	// after the first descent.
	RepeatCount int

	// TimeLimit optionally bounds wall-clock time spent in LK refinement.
	// Zero means "no limit".
	TimeLimit time.Duration

	// LengthBound, if positive, stops LK refinement early once the best tour
	// found reaches this length or shorter.
	LengthBound int64

	// Seed controls deterministic behavior of randomized components (kick selection).
	// Default: 0 (fixed seed → deterministic).
	Seed int64
}

// DefaultOptions returns a fully populated Options struct with safe, production-ready defaults:
//   - Start at vertex 0
//   - MST (double-tree) construction, Lin–Kernighan refinement enabled
//   - No metric closure by default
//   - Symmetric matrix required
//   - Deterministic RNG (Seed=0), no time limit
func DefaultOptions() Options {
	return Options{
		StartVertex:       0,
		TourInit:          InitMST,
		Symmetric:         true,
		MatchingAlgo:      BlossomMatch,
		RunMetricClosure:  false,
		EnableLocalSearch: true,
		CandidateK:        DefaultCandidateK,
		Kick:              linkern.KickRandom,
		StallCount:        DefaultStallCount,
		RepeatCount:       DefaultRepeatCount,
		TimeLimit:         0,
		LengthBound:       0,
		Seed:              0,
	}
}
