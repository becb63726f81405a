// Package flipper implements a two-level segmented doubly linked list
// maintaining a cyclic permutation of n cities under the "flip" operation
// (reversal of a contiguous tour arc).
//
// The structure matches the classic Lin–Kernighan data structure: cities
// ("children") are grouped into segments of roughly G = round(sqrt(n))
// cities each; segments form a ring and each carries a reversal bit so
// that reversing a long arc touches only the O(sqrt(n)) segments it spans
// (plus the at most two segments straddling its endpoints, split so the
// arc boundary always falls on a segment boundary) rather than every city
// in the arc.
//
// Per spec, every public operation restores these invariants before
// returning:
//   - every city belongs to exactly one segment and appears exactly once
//     in the cycle produced by repeated Next calls;
//   - Next and Prev are mutual inverses;
//   - Sequence is a consistent cyclic total order.
//
// Simplification note: segments are split on demand (Flip splits at most
// the two segments holding its endpoints), but never incrementally merged; when
// the live segment count grows past a threshold this package performs a
// full rebuild (materialize the tour, re-chunk into fresh G-sized
// segments) rather than the fine-grained pairwise merge/split scheme of a
// production Lin–Kernighan implementation. This trades strict worst-case
// O(sqrt(n)) amortized cost for a rebuild that is easier to reason about
// and verify without a live test run; correctness of Next/Prev/Sequence/
// Flip is unaffected.
package flipper
