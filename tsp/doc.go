// Package tsp provides a Travelling Salesman Problem (TSP/ATSP) solver facade
// over distance matrices and graphs, with a consistent API, strict sentinel
// errors, deterministic behavior, and stable cost rounding (1e-9). The
// package builds a seed tour with a construction heuristic, then refines it
// with iterated Lin–Kernighan local search.
//
// # What & Why
//
// Given an n×n distance matrix dist (or a *core.Graph, converted internally),
// tsp computes a Hamiltonian cycle (tour) visiting all vertices once and
// returning to the start.
//
//   - Construction (tourbuilder): NearestNeighbor, GreedyEdge, Christofides
//     (symmetric metric only), MST (double-tree 2-approximation).
//   - Refinement (linkern): iterated Lin–Kernighan over a candidate-neighbor
//     set (candidate), using double-bridge kicks to escape local optima.
//
// # Algorithms & Complexity
//
//	NearestNeighbor — greedy nearest-unvisited walk
//	  Time: O(n²)
//
//	GreedyEdge — sorted candidate edges + union-find
//	  Time: O(n²·log n)
//
//	Christofides (1.5-approx) — symmetric metric TSP only
//	  Pipeline: MST → minimum perfect matching (Blossom when available; else
//	            Greedy) → Eulerian circuit → shortcut to tour.
//	  Time: typically O(n²) on dense metric instances.
//
//	MST (double-tree) — 2-approximation
//	  Pipeline: Prim MST → DFS preorder walk.
//	  Time: O(n²) on a dense matrix.
//
//	Iterated Lin–Kernighan (linkern.Solve) — local search refinement
//	  Candidate lists bound per-city neighbor scans (candidate.FromMatrix/
//	  FromGraph, default K=8). Each round perturbs the current best tour with
//	  a kick (opts.Kick), then re-descends with LK moves until StallCount
//	  consecutive non-improving passes; RepeatCount bounds total rounds.
//	  Never returns a tour worse than the one it started from.
//
// # Determinism & Stability
//
//   - No time-based randomness. Kick city selection derives from opts.Seed
//     via linkern.RandState; Seed==0 gives a fixed stream. Construction
//     builders use no RNG and break ties by vertex id.
//   - Costs are rounded to 1e-9 (round1e9) to avoid FP drift across
//     implementations.
//   - CanonicalizeOrientationInPlace fixes tour direction under a fixed start
//     vertex so equivalent tours compare equal.
//
// # Input Requirements
//
//	dist must be a square n×n matrix, n≥2.  Diagonal ≈ 0 (|a_ii| ≤ 1e-12).
//	No negatives.  NaN is invalid.  +Inf denotes a missing edge (rejected
//	unless opts.RunMetricClosure==true, in which case Floyd–Warshall closure
//	is applied before the candidate set is built).
//
//	Symmetry (dist[i][j]==dist[j][i]) is required when:
//	  - opts.TourInit == InitChristofides
//	  - or opts.Symmetric == true (explicit user request)
//
// # Options
//
//	type Options struct {
//	    StartVertex       int           // start/end vertex [0..n-1] (default 0)
//	    TourInit          InitStrategy  // NearestNeighbor / GreedyEdge / Christofides / MST
//	    Symmetric         bool          // require symmetry where needed (true by default)
//	    MatchingAlgo      MatchingAlgo  // Christofides: GreedyMatch or BlossomMatch
//	    RunMetricClosure  bool          // allow solving partially connected graphs via closure
//	    EnableLocalSearch bool          // run Lin–Kernighan refinement after construction
//	    CandidateK        int           // candidate-neighbor list size for LK (default 8)
//	    Kick              linkern.KickType // perturbation family for LK rounds
//	    StallCount        int           // consecutive non-improving passes before a kick
//	    RepeatCount       int           // total kick-then-improve rounds
//	    TimeLimit         time.Duration // soft wall-clock budget for LK (0=none)
//	    LengthBound       int64         // stop LK early once this tour length is reached
//	    Seed              int64         // deterministic RNG seed (0=stable default)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange,
//	ErrMatchingNotImplemented, ErrUnsupportedAlgorithm,
//	ErrATSPNotSupportedByAlgo.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type TSResult struct {
//	    Tour    []int            // len==n+1, Tour[0]==Tour[n]==StartVertex
//	    Cost    float64          // rounded to 1e-9
//	    Stopped linkern.StopReason // why LK refinement stopped (zero value if disabled)
//	    Rounds  int              // kick rounds actually run
//	}
//
// # Mathematics (references)
//
//	2-opt Δ:  (a→c)+(b→d)−(a→b)−(c→d)
//	Double-bridge kick: 4-opt move that 2-opt/3-opt cannot undo in one step,
//	used by linkern to escape local optima between LK descents.
//	Costs are stabilized by round1e9 for cross-platform reproducibility.
package tsp
