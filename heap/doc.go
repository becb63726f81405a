// Package heap implements a fixed-universe indexed d-ary min-heap.
//
// Unlike the lazy decrease-key idiom used by this module's dijkstra and
// prim_kruskal packages (push a duplicate entry, let stale copies go
// unvisited), IndexedHeap performs a true O(log n) decrease-key: every
// element i in the fixed universe [0,n) occupies at most one heap slot,
// tracked by a position array so membership and position lookups are O(1).
// The LK step engine needs exactly this: it repeatedly tightens a city's
// key as better partial gains are discovered, and must know in O(1)
// whether a city is already queued.
//
// Ties are broken by insertion order (an element's sequence number at the
// time of its first insert), giving deterministic extraction order for
// equal keys — required by spec §8's determinism property.
package heap
