package linkern

import "math"

// minKickCities is the smallest tour size a double bridge meaningfully
// applies to (four non-degenerate segments); smaller tours skip the kick.
const minKickCities = 8

// closeKickTrials bounds how many candidate cut-position triples KickClose
// samples before keeping the one with the smallest total cut-edge length.
const closeKickTrials = 6

// walkMaxSteps bounds how far KickGeometric wanders the candidate graph
// from its anchor city before settling on the next cut city (KickWalk
// always takes a single step).
const walkMaxSteps = 3

// kick applies a double-bridge perturbation to the current tour and
// returns the cities whose incident edges changed, for the caller to wake
// in the LK engine. It always restores Hamiltonicity: the tour is
// materialized via Cycle, its four segments are reordered A,B,C,D -> A,C,B,D
// (the standard double-bridge reconnection), and the flipper is rebuilt
// from the result via Init.
//
// Flipper's only mutation primitive is Flip (arc reversal); a double
// bridge swaps two middle segments without reversing either one, which
// cannot be expressed as a single Flip and would otherwise need a
// three-flip composition. Rebuilding from a materialized array is the
// same trade flipper.maybeRebalance already makes: it costs O(n) instead
// of O(sqrt(n)) per kick, but its correctness doesn't depend on a subtle
// multi-flip derivation that can't be checked by running it.
func (e *engine) kick(kt KickType, rng *RandState) ([]int32, error) {
	if e.n < minKickCities {
		return nil, nil
	}
	cur := make([]int32, e.n)
	if err := e.flip.Cycle(cur); err != nil {
		return nil, err
	}

	p1, p2, p3, err := e.cutPositions(kt, rng, cur)
	if err != nil {
		return nil, err
	}

	segA := append([]int32(nil), cur[0:p1]...)
	segB := append([]int32(nil), cur[p1:p2]...)
	segC := append([]int32(nil), cur[p2:p3]...)
	segD := append([]int32(nil), cur[p3:]...)

	newOrder := make([]int32, 0, e.n)
	newOrder = append(newOrder, segA...)
	newOrder = append(newOrder, segC...)
	newOrder = append(newOrder, segB...)
	newOrder = append(newOrder, segD...)

	affected := []int32{
		segA[len(segA)-1], segC[0],
		segC[len(segC)-1], segB[0],
		segB[len(segB)-1], segD[0],
	}

	if err := e.flip.Init(newOrder); err != nil {
		return nil, err
	}
	return affected, nil
}

// cutPositions picks three interior cut positions 0 < p1 < p2 < p3 < n
// splitting cur into four non-empty segments, per spec §4.6's four kick
// variants:
//
//	KickRandom picks all three positions uniformly.
//	KickGeometric walks the candidate graph from a uniformly chosen first
//	  city to find the other two cut cities (a bounded random walk, biasing
//	  cuts toward cities that are already close together in the candidate
//	  sense).
//	KickWalk is the same candidate-graph walk, one step at a time, so cuts
//	  stay local to one tour region.
//	KickClose samples several candidate cut-position triples and keeps the
//	  one minimizing the sum of the four cut edges.
func (e *engine) cutPositions(kt KickType, rng *RandState, cur []int32) (int, int, int, error) {
	n := e.n
	switch kt {
	case KickGeometric:
		pos := buildPosIndex(cur)
		a1 := cur[1+rng.Intn(n-1)]
		a2, err := e.walkCandidates(a1, rng, 1+rng.Intn(walkMaxSteps))
		if err != nil {
			return 0, 0, 0, err
		}
		a3, err := e.walkCandidates(a2, rng, 1+rng.Intn(walkMaxSteps))
		if err != nil {
			return 0, 0, 0, err
		}
		return e.orderedCutPositions(rng, cur, pos, a1, a2, a3)
	case KickWalk:
		pos := buildPosIndex(cur)
		a1 := cur[1+rng.Intn(n-1)]
		a2, err := e.walkCandidates(a1, rng, 1)
		if err != nil {
			return 0, 0, 0, err
		}
		a3, err := e.walkCandidates(a2, rng, 1)
		if err != nil {
			return 0, 0, 0, err
		}
		return e.orderedCutPositions(rng, cur, pos, a1, a2, a3)
	case KickClose:
		return e.closeCutPositions(rng, cur)
	default: // KickRandom
		p1, p2, p3 := randomSpread(rng, n)
		return p1, p2, p3, nil
	}
}

// walkCandidates takes a bounded random walk of length steps over the
// candidate graph starting at from, returning wherever it lands. A city
// with no eligible candidates (K==0, or a degenerate set) ends the walk
// early at its current position.
func (e *engine) walkCandidates(from int32, rng *RandState, steps int) (int32, error) {
	cur := from
	for i := 0; i < steps; i++ {
		cands, err := e.cand.Candidates(int(cur))
		if err != nil {
			return 0, err
		}
		if len(cands) == 0 {
			break
		}
		cur = cands[rng.Intn(len(cands))]
	}
	return cur, nil
}

// buildPosIndex returns pos such that pos[cur[i]] == i, letting a city id
// be mapped back to its tour position after a candidate-graph walk.
func buildPosIndex(cur []int32) []int32 {
	pos := make([]int32, len(cur))
	for i, c := range cur {
		pos[c] = int32(i)
	}
	return pos
}

// orderedCutPositions turns three candidate-graph-chosen cities into valid
// cut positions: it sorts them into tour-forward order relative to cur[0]
// using flipper.Sequence (rather than trusting the walk's visiting order,
// which has no relation to tour order), then maps the sorted cities back
// to positions. A degenerate pick (a repeated city, or one landing on
// cur[0]) falls back to a plain random spread.
func (e *engine) orderedCutPositions(rng *RandState, cur []int32, pos []int32, a1, a2, a3 int32) (int, int, int, error) {
	ref := cur[0]
	if a1 == ref || a2 == ref || a3 == ref || a1 == a2 || a2 == a3 || a1 == a3 {
		p1, p2, p3 := randomSpread(rng, e.n)
		return p1, p2, p3, nil
	}

	order := [3]int32{a1, a2, a3}
	// Insertion sort by tour-forward distance from ref, via Sequence.
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 {
			before, err := e.flip.Sequence(ref, order[j], order[j-1])
			if err != nil {
				return 0, 0, 0, err
			}
			if !before {
				break
			}
			order[j], order[j-1] = order[j-1], order[j]
			j--
		}
	}

	p1, p2, p3 := int(pos[order[0]]), int(pos[order[1]]), int(pos[order[2]])
	if !(0 < p1 && p1 < p2 && p2 < p3 && p3 < e.n) {
		p1, p2, p3 = randomSpread(rng, e.n)
	}
	return p1, p2, p3, nil
}

// closeCutPositions samples closeKickTrials random cut-position triples
// and keeps the one minimizing the sum of the four cut edges (the three
// interior cuts plus the wraparound edge between the last and first
// city), per spec §4.6's "choose the four cut points to minimize the sum
// of the four cut edges" while staying well separated along the tour
// (each trial is itself a well-spread random split, same as KickRandom).
func (e *engine) closeCutPositions(rng *RandState, cur []int32) (int, int, int, error) {
	n := e.n
	wrap, err := e.oracle.Dist(int(cur[n-1]), int(cur[0]))
	if err != nil {
		return 0, 0, 0, err
	}

	bestP1, bestP2, bestP3 := randomSpread(rng, n)
	bestCost := int64(math.MaxInt64)
	for trial := 0; trial < closeKickTrials; trial++ {
		p1, p2, p3 := randomSpread(rng, n)
		cost, err := e.cutEdgeSum(cur, p1, p2, p3, wrap)
		if err != nil {
			return 0, 0, 0, err
		}
		if cost < bestCost {
			bestCost = cost
			bestP1, bestP2, bestP3 = p1, p2, p3
		}
	}
	return bestP1, bestP2, bestP3, nil
}

// cutEdgeSum returns the total length of the four tour edges a double
// bridge at p1,p2,p3 would cut: the three interior boundaries plus the
// precomputed wraparound edge.
func (e *engine) cutEdgeSum(cur []int32, p1, p2, p3 int, wrap int64) (int64, error) {
	d1, err := e.oracle.Dist(int(cur[p1-1]), int(cur[p1]))
	if err != nil {
		return 0, err
	}
	d2, err := e.oracle.Dist(int(cur[p2-1]), int(cur[p2]))
	if err != nil {
		return 0, err
	}
	d3, err := e.oracle.Dist(int(cur[p3-1]), int(cur[p3]))
	if err != nil {
		return 0, err
	}
	return d1 + d2 + d3 + wrap, nil
}

// randomSpread draws three interior positions 0 < p1 < p2 < p3 < n
// uniformly at random, the plain KickRandom distribution reused by every
// variant's fallback path.
func randomSpread(rng *RandState, n int) (int, int, int) {
	p1 := 1 + rng.Intn(n-3)
	p2 := p1 + 1 + rng.Intn(n-p1-2)
	p3 := p2 + 1 + rng.Intn(n-p2-1)
	return p1, p2, p3
}
