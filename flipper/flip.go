package flipper

// rebalanceFactor bounds live segment growth: once liveSegs exceeds this
// multiple of the ideal segment count, Flip triggers a full rebuild.
const rebalanceFactor = 3

// splitBefore ensures x is the effective-first city of its segment,
// splitting that segment into two fresh ones around x when it is not.
func (f *Flipper) splitBefore(x int32) error {
	s := f.cSeg[x]
	if f.effFirst(s) == x {
		return nil
	}
	q := f.cSeqNo[x]
	size := f.segSize[s]
	rev := f.segRev[s]

	var preFirst, preLast, xFirst, xLast int32
	var preSize, xSize int32
	if !rev {
		preFirst, preLast, preSize = f.segFirst[s], f.cPrev[x], q
		xFirst, xLast, xSize = x, f.segLast[s], size-q
		f.cNext[preLast] = -1
		f.cPrev[xFirst] = -1
	} else {
		preFirst, preLast, preSize = f.cNext[x], f.segLast[s], size-q-1
		xFirst, xLast, xSize = f.segFirst[s], x, q+1
		f.cNext[x] = -1
		f.cPrev[preFirst] = -1
	}

	newPre, err := f.allocSeg()
	if err != nil {
		return err
	}
	newX, err := f.allocSeg()
	if err != nil {
		return err
	}
	f.assignRange(newPre, preFirst, preLast, preSize, rev)
	f.assignRange(newX, xFirst, xLast, xSize, rev)

	outerPrev, outerNext := f.segPrev[s], f.segNext[s]
	f.link(outerPrev, newPre)
	f.link(newPre, newX)
	f.link(newX, outerNext)
	if f.anchorSeg == s {
		f.anchorSeg = newPre
	}
	f.freeSeg(s)
	f.renumberOrders()
	return nil
}

// splitAfter ensures y is the effective-last city of its segment.
func (f *Flipper) splitAfter(y int32) error {
	s := f.cSeg[y]
	if f.effLast(s) == y {
		return nil
	}
	q := f.cSeqNo[y]
	size := f.segSize[s]
	rev := f.segRev[s]

	var yFirst, yLast, postFirst, postLast int32
	var ySize, postSize int32
	if !rev {
		yFirst, yLast, ySize = f.segFirst[s], y, q+1
		postFirst, postLast, postSize = f.cNext[y], f.segLast[s], size-q-1
		f.cNext[y] = -1
		f.cPrev[postFirst] = -1
	} else {
		yFirst, yLast, ySize = y, f.segLast[s], size-q
		postFirst, postLast, postSize = f.segFirst[s], f.cPrev[y], q
		f.cNext[postLast] = -1
		f.cPrev[y] = -1
	}

	newY, err := f.allocSeg()
	if err != nil {
		return err
	}
	newPost, err := f.allocSeg()
	if err != nil {
		return err
	}
	f.assignRange(newY, yFirst, yLast, ySize, rev)
	f.assignRange(newPost, postFirst, postLast, postSize, rev)

	outerPrev, outerNext := f.segPrev[s], f.segNext[s]
	f.link(outerPrev, newY)
	f.link(newY, newPost)
	f.link(newPost, outerNext)
	if f.anchorSeg == s {
		f.anchorSeg = newY
	}
	f.freeSeg(s)
	f.renumberOrders()
	return nil
}

// segCountForward counts segments walking the ring forward from from to
// to inclusive.
func (f *Flipper) segCountForward(from, to int32) int32 {
	count := int32(1)
	cur := from
	for cur != to {
		cur = f.segNext[cur]
		count++
		if count > f.liveSegs+1 {
			return count // ring inconsistency guard; Flip will surface it
		}
	}
	return count
}

// Flip reverses the tour-forward arc from a to b inclusive: the edges
// (prev(a), a) and (b, next(b)) are replaced by (prev(a), b) and
// (a, next(b)); the cities strictly between a and b keep their relative
// order but traverse in the opposite direction.
func (f *Flipper) Flip(a, b int32) error {
	if err := f.checkCity(a); err != nil {
		return err
	}
	if err := f.checkCity(b); err != nil {
		return err
	}
	if a == b {
		return ErrSameCity
	}

	prevA, err := f.Prev(a)
	if err != nil {
		return err
	}
	if prevA == b {
		// a..b spans the whole cycle: reverse the traversal direction of
		// every segment and of the segment ring itself.
		s := f.anchorSeg
		for {
			f.segRev[s] = !f.segRev[s]
			f.segNext[s], f.segPrev[s] = f.segPrev[s], f.segNext[s]
			s = f.segPrev[s]
			if s == f.anchorSeg {
				break
			}
		}
		f.renumberOrders()
		return nil
	}

	if err = f.splitBefore(a); err != nil {
		return err
	}
	if err = f.splitAfter(b); err != nil {
		return err
	}

	sFirst, sLast := f.cSeg[a], f.cSeg[b]
	outerPrev, outerNext := f.segPrev[sFirst], f.segNext[sLast]

	chain := make([]int32, 0, int(f.liveSegs))
	cur := sFirst
	for {
		chain = append(chain, cur)
		if cur == sLast {
			break
		}
		cur = f.segNext[cur]
	}

	for _, sid := range chain {
		f.segRev[sid] = !f.segRev[sid]
	}
	f.link(outerPrev, chain[len(chain)-1])
	for i := len(chain) - 1; i > 0; i-- {
		f.link(chain[i], chain[i-1])
	}
	f.link(chain[0], outerNext)
	if f.anchorSeg == sFirst || f.anchorSeg == sLast {
		f.anchorSeg = outerPrev
	}
	f.renumberOrders()

	return f.maybeRebalance()
}

// maybeRebalance performs a full rebuild once the live segment count has
// drifted too far from the ideal chunk count, bounding future Next/Prev/
// Sequence/Flip cost. See the simplification note in doc.go.
func (f *Flipper) maybeRebalance() error {
	ideal := (int32(f.n) + f.g - 1) / f.g
	if ideal < 1 {
		ideal = 1
	}
	if f.liveSegs <= ideal*rebalanceFactor {
		return nil
	}
	out := make([]int32, f.n)
	if err := f.Cycle(out); err != nil {
		return err
	}
	f.freeList = f.freeList[:0]
	f.buildSegmentsFrom(out)
	return nil
}
