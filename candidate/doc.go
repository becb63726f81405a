// Package candidate builds per-city candidate neighbor lists: the sorted,
// bounded edge set the Lin–Kernighan step engine scans instead of the full
// O(n²) city set.
//
// A CandidateSet maps each city to an ascending-by-distance slice of up to
// K neighbor ids, built once and treated as immutable thereafter (mirroring
// the flipper and distance oracle, which are likewise write-once/read-many
// collaborators of the LK engine). Two builders are provided:
//
//   - FromMatrix: dense k-nearest-neighbor over a matrix.Matrix distance
//     table, optionally metric-closed first (matrix.FloydWarshall) so that
//     candidates reflect shortest-path distances rather than raw entries.
//   - FromGraph: k-nearest-neighbor over a *core.Graph, closing sparse
//     inputs with per-vertex Dijkstra runs (package dijkstra) rather than a
//     dense O(n³) Floyd–Warshall pass.
//
// CheckConnected verifies the resulting candidate graph spans every city
// (via algorithms.BFS) before it is handed to the LK engine — a
// disconnected candidate graph can strand cities the engine can never
// reach via flip/kick moves.
package candidate
