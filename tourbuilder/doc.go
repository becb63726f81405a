// Package tourbuilder supplies initial-tour collaborators for the linkern
// Lin–Kernighan engine.
//
// The core LK engine (package linkern) treats the initial tour as a pure
// input — it accepts any Hamiltonian cycle and never constructs one itself
// (see linkern's design notes). This package is the concrete collaborator
// that fills that role end to end, offering four builders of increasing
// sophistication (and increasing cost):
//
//   - NearestNeighbor: classic greedy nearest-neighbor walk. O(n²), weakest
//     quality, useful as a baseline or when n is too large for anything else.
//   - GreedyEdge: greedy-edge construction (repeatedly add the cheapest edge
//     that keeps every vertex degree ≤ 2 and forms no sub-cycle early).
//     O(n² log n), usually noticeably shorter than nearest-neighbor.
//   - MST: "quick-Borůvka" style double-tree builder — minimum spanning tree
//     (via prim_kruskal.Prim over a *core.Graph) walked in DFS preorder and
//     shortcut to a Hamiltonian cycle. A 2-approximation on metric instances.
//   - Christofides: MST + minimum-weight odd-degree matching + Eulerian
//     circuit + shortcut. A 1.5-approximation on metric symmetric instances;
//     the strongest and most expensive of the four.
//
// All builders work over a dense matrix.Matrix distance table (consistent
// with the rest of the pack) and return a closed tour: length n+1,
// tour[0]==tour[n]==start, every vertex in [0,n) appearing exactly once in
// tour[0:n].
package tourbuilder
