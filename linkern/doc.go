// Package linkern implements an iterated Lin–Kernighan local search over a
// flipper.Flipper tour: a candidate-list-driven, bounded sequential-
// exchange descent with don't-look bits and a FIFO work queue (the LK
// step), wrapped in an outer loop that perturbs a converged tour with a
// double-bridge kick and accepts or reverts by length (the iterator), per
// spec §4.5–§4.7.
//
// The LK step (searchChain in lk.go) is an iterative, explicit-stack DFS
// rather than a recursive one (spec §9): level 1 tries a plain candidate-
// ordered 2-opt close; when that isn't profitable the move is committed
// anyway and the search continues from the newly exposed edge, backtracking
// (undoing the tentative flip) whenever a frame runs out of candidates or
// the fixed depth bound (5) is reached. Backtrack bounds per level (5 at
// level 1, 5 at level 2, 1 beyond) and the use of flipper.Sequence to
// reject a candidate that would not extend the chain forward both follow
// spec §4.5 directly.
package linkern
