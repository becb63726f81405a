package flipper

import "math"

// Flipper maintains a cyclic permutation of n cities (ids 0..n-1) as a
// two-level segmented doubly linked list: cities ("children") are grouped
// into segments of roughly G cities, segments form a ring, and each
// segment carries a reversal bit so Flip can reverse a long arc by
// touching only the segments it spans rather than every city in it.
type Flipper struct {
	n int
	g int32 // target segment size

	// child (city) level, indexed by city id, length n.
	cNext  []int32 // local (unreversed) successor within the owning segment, -1 at local end
	cPrev  []int32 // local predecessor, -1 at local start
	cSeg   []int32 // owning segment id
	cSeqNo []int32 // 0-based local position within the owning segment

	// segment level, arena of capacity n, indexed by segment id.
	segNext  []int32 // next segment around the ring (tour-forward order)
	segPrev  []int32
	segRev   []bool
	segOrder []int32 // dense rank 0..liveSegs-1 around the ring, renumbered after structural changes
	segFirst []int32 // local-first city id
	segLast  []int32 // local-last city id
	segSize  []int32

	freeList  []int32
	nextFresh int32
	liveSegs  int32
	anchorSeg int32 // an arbitrary live segment, anchors order numbering and Cycle's start
}

// Init resets the flipper to the cyclic tour given by cyc (cyc[i] is the
// i-th city visited; cyc must be a permutation of 0..len(cyc)-1).
func (f *Flipper) Init(cyc []int32) error {
	n := len(cyc)
	if n < 1 {
		return ErrTooFewCities
	}
	f.n = n
	f.g = segmentTarget(n)

	f.cNext = make([]int32, n)
	f.cPrev = make([]int32, n)
	f.cSeg = make([]int32, n)
	f.cSeqNo = make([]int32, n)

	f.segNext = make([]int32, n)
	f.segPrev = make([]int32, n)
	f.segRev = make([]bool, n)
	f.segOrder = make([]int32, n)
	f.segFirst = make([]int32, n)
	f.segLast = make([]int32, n)
	f.segSize = make([]int32, n)

	f.freeList = f.freeList[:0]
	f.buildSegmentsFrom(cyc)
	return nil
}

// segmentTarget returns round(sqrt(n)), floored at 1.
func segmentTarget(n int) int32 {
	g := int32(math.Round(math.Sqrt(float64(n))))
	if g < 1 {
		g = 1
	}
	return g
}

// buildSegmentsFrom chunks cyc into fresh segments of size ~f.g, in order,
// and rings them together. Used by Init and by the periodic rebuild.
func (f *Flipper) buildSegmentsFrom(cyc []int32) {
	n := len(cyc)
	g := int(f.g)
	numSegs := (n + g - 1) / g
	if numSegs < 1 {
		numSegs = 1
	}

	segIDs := make([]int32, numSegs)
	for s := 0; s < numSegs; s++ {
		segIDs[s] = int32(s)
	}
	f.nextFresh = int32(numSegs)
	f.liveSegs = int32(numSegs)
	f.anchorSeg = 0

	pos := 0
	for s := 0; s < numSegs; s++ {
		remaining := n - pos
		segsLeft := numSegs - s
		size := remaining / segsLeft
		if size < 1 {
			size = 1
		}
		if s == numSegs-1 {
			size = remaining
		}
		sid := segIDs[s]
		f.segFirst[sid] = cyc[pos]
		for i := 0; i < size; i++ {
			city := cyc[pos+i]
			f.cSeg[city] = sid
			f.cSeqNo[city] = int32(i)
			if i > 0 {
				f.cPrev[city] = cyc[pos+i-1]
			} else {
				f.cPrev[city] = -1
			}
			if i < size-1 {
				f.cNext[city] = cyc[pos+i+1]
			} else {
				f.cNext[city] = -1
			}
		}
		f.segLast[sid] = cyc[pos+size-1]
		f.segSize[sid] = int32(size)
		f.segRev[sid] = false
		f.segOrder[sid] = int32(s)
		f.segNext[sid] = segIDs[(s+1)%numSegs]
		f.segPrev[sid] = segIDs[(s-1+numSegs)%numSegs]
		pos += size
	}
}

// N returns the number of cities.
func (f *Flipper) N() int { return f.n }

func (f *Flipper) checkCity(x int32) error {
	if x < 0 || int(x) >= f.n {
		return ErrIndexOutOfRange
	}
	return nil
}

func (f *Flipper) effFirst(s int32) int32 {
	if f.segRev[s] {
		return f.segLast[s]
	}
	return f.segFirst[s]
}

func (f *Flipper) effLast(s int32) int32 {
	if f.segRev[s] {
		return f.segFirst[s]
	}
	return f.segLast[s]
}

// eidx returns x's 0-based position within its segment's effective
// (tour-forward) order.
func (f *Flipper) eidx(x int32) int32 {
	s := f.cSeg[x]
	if f.segRev[s] {
		return f.segSize[s] - 1 - f.cSeqNo[x]
	}
	return f.cSeqNo[x]
}

// Next returns the city following x in tour-forward order.
func (f *Flipper) Next(x int32) (int32, error) {
	if err := f.checkCity(x); err != nil {
		return 0, err
	}
	s := f.cSeg[x]
	if x != f.effLast(s) {
		if f.segRev[s] {
			return f.cPrev[x], nil
		}
		return f.cNext[x], nil
	}
	ns := f.segNext[s]
	return f.effFirst(ns), nil
}

// Prev returns the city preceding x in tour-forward order.
func (f *Flipper) Prev(x int32) (int32, error) {
	if err := f.checkCity(x); err != nil {
		return 0, err
	}
	s := f.cSeg[x]
	if x != f.effFirst(s) {
		if f.segRev[s] {
			return f.cNext[x], nil
		}
		return f.cPrev[x], nil
	}
	ps := f.segPrev[s]
	return f.effLast(ps), nil
}

// rank returns a dense, segment-granular position for x: segOrder is the
// segment's rank around the ring and eidx is the within-segment offset;
// segSize never exceeds n so (n+1) safely separates the two components.
func (f *Flipper) rank(x int32) int64 {
	s := f.cSeg[x]
	return int64(f.segOrder[s])*int64(f.n+1) + int64(f.eidx(x))
}

// Sequence reports whether walking forward from a reaches b strictly
// before c (a, b, c must be pairwise distinct).
func (f *Flipper) Sequence(a, b, c int32) (bool, error) {
	for _, x := range [3]int32{a, b, c} {
		if err := f.checkCity(x); err != nil {
			return false, err
		}
	}
	m := int64(f.liveSegs) * int64(f.n+1)
	ra, rb, rc := f.rank(a), f.rank(b), f.rank(c)
	db := ((rb - ra) % m + m) % m
	dc := ((rc - ra) % m + m) % m
	return db < dc, nil
}

// Cycle writes the tour-forward visiting order starting from an arbitrary
// city into out, which must have length f.N().
func (f *Flipper) Cycle(out []int32) error {
	if len(out) != f.n {
		return ErrIndexOutOfRange
	}
	start := f.effFirst(f.anchorSeg)
	cur := start
	for i := 0; i < f.n; i++ {
		out[i] = cur
		nxt, err := f.Next(cur)
		if err != nil {
			return err
		}
		cur = nxt
	}
	return nil
}

// allocSeg returns a fresh segment id, reusing a freed one when available.
func (f *Flipper) allocSeg() (int32, error) {
	if len(f.freeList) > 0 {
		id := f.freeList[len(f.freeList)-1]
		f.freeList = f.freeList[:len(f.freeList)-1]
		f.liveSegs++
		return id, nil
	}
	if int(f.nextFresh) >= len(f.segNext) {
		return 0, ErrInternalInvariantViolation
	}
	id := f.nextFresh
	f.nextFresh++
	f.liveSegs++
	return id, nil
}

func (f *Flipper) freeSeg(id int32) {
	f.freeList = append(f.freeList, id)
	f.liveSegs--
}

// link sets u's ring successor to v (and v's ring predecessor to u).
func (f *Flipper) link(u, v int32) {
	f.segNext[u] = v
	f.segPrev[v] = u
}

// renumberOrders walks the ring from anchorSeg and reassigns dense order
// ranks; called after any structural change to the ring.
func (f *Flipper) renumberOrders() {
	cur := f.anchorSeg
	var i int32
	for {
		f.segOrder[cur] = i
		i++
		cur = f.segNext[cur]
		if cur == f.anchorSeg {
			break
		}
	}
}

// assignRange walks the local chain from first to last (local order, via
// cNext), assigning it to segment id sid with 0-based seqno and the given
// reversal flag, and records the segment's metadata.
func (f *Flipper) assignRange(sid, first, last int32, size int32, rev bool) {
	f.segFirst[sid] = first
	f.segLast[sid] = last
	f.segSize[sid] = size
	f.segRev[sid] = rev

	cur := first
	for i := int32(0); i < size; i++ {
		f.cSeg[cur] = sid
		f.cSeqNo[cur] = i
		cur = f.cNext[cur]
	}
}
