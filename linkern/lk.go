package linkern

import (
	"github.com/katalvlaran/linkern/candidate"
	"github.com/katalvlaran/linkern/flipper"
	"github.com/katalvlaran/linkern/heap"
)

// Backtrack bounds per level (spec §4.5's customary LK bounds) and the
// deepest level the sequential-exchange search descends to before a branch
// must close or be abandoned.
const (
	level1Backtrack = 5
	level2Backtrack = 5
	deepBacktrack   = 1
	maxLKDepth      = 5
)

// backtrackBound returns how many candidates a level-ℓ frame evaluates
// before giving up and backtracking to its parent frame.
func backtrackBound(level int) int {
	switch level {
	case 1:
		return level1Backtrack
	case 2:
		return level2Backtrack
	default:
		return deepBacktrack
	}
}

// engine runs the bounded sequential-exchange descent over a flipper tour:
// a don't-look-bit set, a FIFO work queue of cities to (re)examine, and a
// small per-descent heap ranking the handful of candidates considered at
// each level of the search by tentative gain (spec's "heap owned by the LK
// step for the duration of a single search descent").
type engine struct {
	n      int
	oracle Oracle
	cand   *candidate.CandidateSet
	flip   *flipper.Flipper

	dontLook []bool
	inQueue  []bool
	queue    []int32

	pq *heap.IndexedHeap

	length int64
}

func newEngine(n int, oracle Oracle, cand *candidate.CandidateSet, flp *flipper.Flipper, length int64) (*engine, error) {
	pq, err := heap.New(n, 4)
	if err != nil {
		return nil, ErrAllocationFailure
	}
	return &engine{
		n:        n,
		oracle:   oracle,
		cand:     cand,
		flip:     flp,
		dontLook: make([]bool, n),
		inQueue:  make([]bool, n),
		queue:    make([]int32, 0, n),
		pq:       pq,
		length:   length,
	}, nil
}

// resetWork clears the don't-look bits, in-queue flags and work queue back
// to empty in place, without reallocating their backing arrays, so the
// descent that follows a kick performs no allocation (spec §5: flipper,
// heap, don't-look bits, Q and candidate lists are allocated once at init;
// the steady-state search allocates nothing).
func (e *engine) resetWork() {
	for i := range e.dontLook {
		e.dontLook[i] = false
		e.inQueue[i] = false
	}
	e.queue = e.queue[:0]
}

// enqueueAll clears every don't-look bit and queues every city; used to
// seed the first descent.
func (e *engine) enqueueAll() {
	e.queue = e.queue[:0]
	for c := 0; c < e.n; c++ {
		e.dontLook[c] = false
		e.inQueue[c] = true
		e.queue = append(e.queue, int32(c))
	}
}

// wake clears the don't-look bit on each city and (re)queues it; called
// on the endpoints of a committed move or a kick so they are reconsidered.
func (e *engine) wake(cities ...int32) {
	for _, c := range cities {
		e.dontLook[c] = false
		if !e.inQueue[c] {
			e.inQueue[c] = true
			e.queue = append(e.queue, c)
		}
	}
}

func (e *engine) pop() int32 {
	c := e.queue[0]
	e.queue = e.queue[1:]
	e.inQueue[c] = false
	return c
}

// runInnerLoop drains the queue until stallCount consecutive full passes
// complete with no improving flip, or the queue empties (spec §4.5/§4.7:
// "stallcount consecutive full Q-drains without any improving flip").
func (e *engine) runInnerLoop(stallCount int) error {
	stall := 0
	for stall < stallCount && len(e.queue) > 0 {
		passSize := len(e.queue)
		improvedAny := false
		for i := 0; i < passSize && len(e.queue) > 0; i++ {
			t1 := e.pop()
			if e.dontLook[t1] {
				continue
			}
			improved, err := e.improveFrom(t1)
			if err != nil {
				return err
			}
			if improved {
				improvedAny = true
			} else {
				e.dontLook[t1] = true
			}
		}
		if improvedAny {
			stall = 0
		} else {
			stall++
		}
	}
	return nil
}

// improveFrom tries both tour edges incident to t1 (to Next(t1) and to
// Prev(t1)) as the edge to break, returning true on the first committed
// improving sequential exchange.
func (e *engine) improveFrom(t1 int32) (bool, error) {
	nx, err := e.flip.Next(t1)
	if err != nil {
		return false, err
	}
	pv, err := e.flip.Prev(t1)
	if err != nil {
		return false, err
	}
	for _, dir := range [2]struct {
		t2     int32
		isNext bool
	}{{nx, true}, {pv, false}} {
		improved, err := e.searchChain(t1, dir.t2, dir.isNext)
		if err != nil {
			return false, err
		}
		if improved {
			return true, nil
		}
	}
	return false, nil
}

// candEntry pairs a candidate t3 with its distance from the level's loose
// end, kept alongside so the winner can be re-read without recomputing the
// oracle call.
type candEntry struct {
	t3  int32
	d23 int64
}

// lkFrame is one level of the bounded sequential-exchange search: the edge
// (t1, loose) is tentatively being broken, entries holds its ranked,
// cutoff-filtered candidates, and applied/flipA/flipB/stepGain record what
// was actually committed to the flipper so the frame can be undone on
// backtrack.
type lkFrame struct {
	loose  int32
	isNext bool
	d1     int64

	entries []candEntry
	ei      int

	applied      bool
	flipA, flipB int32
	stepGain     int64
}

// buildFrame ranks loose's candidates through e.pq: candidates arrive
// pre-sorted by distance, so the heap only needs to drain them, but every
// level of the search still goes through the same per-descent heap spec
// §4.2 names rather than trusting the candidate list's order directly. At
// most backtrackBound(level) candidates are kept, and the scan stops as
// soon as one is no closer than the edge currently being removed — no
// farther candidate could yield positive gain (spec §4.5's cutoff rule,
// generalized to whichever edge the current level is tentatively cutting).
func (e *engine) buildFrame(t1, loose int32, isNext bool, level int) (*lkFrame, error) {
	d1, err := e.oracle.Dist(int(t1), int(loose))
	if err != nil {
		return nil, err
	}
	cands, err := e.cand.Candidates(int(loose))
	if err != nil {
		return nil, err
	}

	bound := backtrackBound(level)
	raw := make([]candEntry, 0, bound)
	e.pq.Reset()
	for _, t3 := range cands {
		if len(raw) >= bound {
			break
		}
		if t3 == t1 || t3 == loose {
			continue
		}
		d23, err := e.oracle.Dist(int(loose), int(t3))
		if err != nil {
			return nil, err
		}
		if d23 >= d1 {
			break // candidates are ascending by distance; no gain beyond here
		}
		id := len(raw)
		raw = append(raw, candEntry{t3: t3, d23: d23})
		if err := e.pq.Insert(id, float64(d23-d1)); err != nil {
			return nil, ErrInternalInvariantViolation
		}
	}

	entries := make([]candEntry, 0, len(raw))
	for e.pq.Len() > 0 {
		id, _, err := e.pq.ExtractMin()
		if err != nil {
			return nil, ErrInternalInvariantViolation
		}
		entries = append(entries, raw[id])
	}

	return &lkFrame{loose: loose, isNext: isNext, d1: d1, entries: entries}, nil
}

// nextIsForward reports whether t4 sits immediately after t1 in tour-
// forward order, orienting the next level's frame once t4 has just been
// wired directly onto t1 by a commit.
func (e *engine) nextIsForward(t1, t4 int32) (bool, error) {
	nx, err := e.flip.Next(t1)
	if err != nil {
		return false, err
	}
	return nx == t4, nil
}

// searchChain runs the bounded, iterative sequential-exchange search (an
// explicit stack of lkFrame, per spec §9's note to implement the bounded
// DFS iteratively rather than recursively): level 1 is a plain candidate-
// ordered 2-opt attempt; when closing there isn't profitable, the move is
// committed anyway and the search continues from the newly exposed edge
// (t1, t4), accumulating gain across levels, until either the running gain
// turns positive on closing (accept) or the current frame runs out of
// candidates or maxLKDepth is reached (backtrack: undo the tentative flip
// and resume the parent frame's next candidate).
//
// Every commit is realized as a real 2-opt flip, so the flipper holds a
// valid tour at every point of the search, including mid-backtrack;
// flipper.Sequence still gates each candidate to reject one that would not
// extend the chain forward from the edge being cut, rather than trusting
// the flip mechanics alone to keep the exchange sequential.
func (e *engine) searchChain(t1, t2 int32, isNext bool) (bool, error) {
	f0, err := e.buildFrame(t1, t2, isNext, 1)
	if err != nil {
		return false, err
	}

	stack := []*lkFrame{f0}
	touched := make([]int32, 0, 2*maxLKDepth+2)
	touched = append(touched, t1, t2)
	cumGain := int64(0)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		level := len(stack)

		if top.ei >= len(top.entries) {
			if top.applied {
				if err := e.flip.Flip(top.flipB, top.flipA); err != nil {
					return false, err
				}
				e.length += top.stepGain
				cumGain -= top.stepGain
				touched = touched[:len(touched)-2]
			}
			stack = stack[:len(stack)-1]
			continue
		}

		ent := top.entries[top.ei]
		top.ei++
		t3, d23 := ent.t3, ent.d23

		var t4 int32
		if top.isNext {
			t4, err = e.flip.Prev(t3)
		} else {
			t4, err = e.flip.Next(t3)
		}
		if err != nil {
			return false, err
		}
		if t4 == t1 || t4 == top.loose {
			continue
		}

		var flipA, flipB int32
		if top.isNext {
			flipA, flipB = top.loose, t4
		} else {
			flipA, flipB = t1, t3
		}
		if flipA == flipB {
			continue
		}

		// t3 must lie strictly between t1 and the loose end on the side
		// the chain is extending; otherwise this candidate would not
		// continue a single sequential path and the flip would disconnect
		// the tour instead of producing one cycle.
		var ok bool
		if top.isNext {
			ok, err = e.flip.Sequence(t1, top.loose, t3)
		} else {
			ok, err = e.flip.Sequence(top.loose, t1, t3)
		}
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}

		d34, err := e.oracle.Dist(int(t3), int(t4))
		if err != nil {
			return false, err
		}
		d41, err := e.oracle.Dist(int(t4), int(t1))
		if err != nil {
			return false, err
		}
		stepGain := top.d1 + d34 - d23 - d41
		totalGain := cumGain + stepGain

		if totalGain > 0 {
			if err := e.flip.Flip(flipA, flipB); err != nil {
				return false, err
			}
			e.length -= stepGain
			e.wake(append(touched, t3, t4)...)
			return true, nil
		}

		if level >= maxLKDepth {
			continue
		}

		if err := e.flip.Flip(flipA, flipB); err != nil {
			return false, err
		}
		e.length -= stepGain
		top.applied = true
		top.flipA, top.flipB = flipA, flipB
		top.stepGain = stepGain
		cumGain = totalGain
		touched = append(touched, t3, t4)

		newIsNext, err := e.nextIsForward(t1, t4)
		if err != nil {
			return false, err
		}
		child, err := e.buildFrame(t1, t4, newIsNext, level+1)
		if err != nil {
			return false, err
		}
		stack = append(stack, child)
	}

	return false, nil
}
