package heap

// IndexedHeap is a fixed-universe indexed d-ary min-heap over element ids
// [0,n). Every id occupies at most one slot; Pos gives its O(1) heap
// position (or -1 if absent), so membership, decrease-key, and delete are
// all real operations rather than lazy duplicate-push tricks.
//
// Complexity: Insert/ChangeKey/Delete/ExtractMin are O(log_d n); FindMin
// and Contains are O(1). Arity d trades comparisons-per-level (larger d,
// fewer levels, more comparisons per sift) against tree height; d=4 is a
// reasonable default for cache-line-sized nodes.
type IndexedHeap struct {
	arity int
	slots []int     // slots[pos] = element id occupying that heap position
	pos   []int     // pos[id] = position in slots, or -1 if id is absent
	key   []float64 // key[id] = current key of id (meaningful only while present)
	seq   []int64   // seq[id] = insertion sequence, for deterministic tie-break
	next  int64     // next sequence number to hand out
	size  int       // number of elements currently in the heap
}

// New builds an IndexedHeap over the fixed universe [0,n) with the given
// branching factor (arity >= 2). All backing arrays are allocated once;
// no further allocation occurs across Insert/ChangeKey/Delete/ExtractMin.
func New(n, arity int) (*IndexedHeap, error) {
	if arity < 2 {
		return nil, ErrInvalidArity
	}
	if n < 0 {
		return nil, ErrIndexOutOfRange
	}
	h := &IndexedHeap{
		arity: arity,
		slots: make([]int, 0, n),
		pos:   make([]int, n),
		key:   make([]float64, n),
		seq:   make([]int64, n),
	}
	for i := range h.pos {
		h.pos[i] = -1
	}
	return h, nil
}

// Len returns the number of elements currently in the heap.
func (h *IndexedHeap) Len() int { return h.size }

// Contains reports whether id currently occupies a heap slot. O(1).
func (h *IndexedHeap) Contains(id int) bool {
	if id < 0 || id >= len(h.pos) {
		return false
	}
	return h.pos[id] != -1
}

// Insert adds id with the given key. Returns ErrAlreadyPresent if id is
// already in the heap (use ChangeKey instead).
func (h *IndexedHeap) Insert(id int, key float64) error {
	if id < 0 || id >= len(h.pos) {
		return ErrIndexOutOfRange
	}
	if h.pos[id] != -1 {
		return ErrAlreadyPresent
	}
	h.key[id] = key
	h.seq[id] = h.next
	h.next++
	h.slots = append(h.slots, id)
	p := len(h.slots) - 1
	h.pos[id] = p
	h.size++
	h.siftUp(p)
	return nil
}

// ChangeKey updates id's key to newKey (may increase or decrease it) and
// restores heap order. Returns ErrNotPresent if id is not in the heap.
func (h *IndexedHeap) ChangeKey(id int, newKey float64) error {
	if id < 0 || id >= len(h.pos) {
		return ErrIndexOutOfRange
	}
	p := h.pos[id]
	if p == -1 {
		return ErrNotPresent
	}
	old := h.key[id]
	h.key[id] = newKey
	if newKey < old {
		h.siftUp(p)
	} else if newKey > old {
		h.siftDown(p)
	}
	return nil
}

// Delete removes id from the heap, if present. Returns ErrNotPresent otherwise.
func (h *IndexedHeap) Delete(id int) error {
	if id < 0 || id >= len(h.pos) {
		return ErrIndexOutOfRange
	}
	p := h.pos[id]
	if p == -1 {
		return ErrNotPresent
	}
	last := len(h.slots) - 1
	h.swap(p, last)
	h.slots = h.slots[:last]
	h.pos[id] = -1
	h.size--
	if p <= last-1 {
		// A different element may now sit at p; restore order both ways
		// since we don't know whether it moved up or down in key order.
		h.siftDown(p)
		h.siftUp(p)
	}
	return nil
}

// FindMin returns the element with the smallest key without removing it.
// Returns ErrEmpty if the heap holds no elements.
func (h *IndexedHeap) FindMin() (int, float64, error) {
	if h.size == 0 {
		return 0, 0, ErrEmpty
	}
	id := h.slots[0]
	return id, h.key[id], nil
}

// ExtractMin removes and returns the element with the smallest key,
// breaking ties by earliest insertion order. Returns ErrEmpty if empty.
func (h *IndexedHeap) ExtractMin() (int, float64, error) {
	id, k, err := h.FindMin()
	if err != nil {
		return 0, 0, err
	}
	_ = h.Delete(id)
	return id, k, nil
}

// Reset clears the heap back to empty, keeping its backing arrays (the
// universe size n is unchanged) so steady-state search performs no
// further allocation, per spec §5's single-allocation-at-init policy.
func (h *IndexedHeap) Reset() {
	for _, id := range h.slots {
		h.pos[id] = -1
	}
	h.slots = h.slots[:0]
	h.size = 0
}

// less reports whether element a should sit above element b in the heap,
// i.e. a has a strictly smaller key, or an equal key and an earlier
// insertion sequence (deterministic tie-break, spec §4.2/"Ties broken by
// insertion order").
func (h *IndexedHeap) less(a, b int) bool {
	if h.key[a] != h.key[b] {
		return h.key[a] < h.key[b]
	}
	return h.seq[a] < h.seq[b]
}

func (h *IndexedHeap) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.pos[h.slots[i]] = i
	h.pos[h.slots[j]] = j
}

func (h *IndexedHeap) parent(p int) int { return (p - 1) / h.arity }

func (h *IndexedHeap) firstChild(p int) int { return p*h.arity + 1 }

func (h *IndexedHeap) siftUp(p int) {
	for p > 0 {
		par := h.parent(p)
		if !h.less(h.slots[p], h.slots[par]) {
			break
		}
		h.swap(p, par)
		p = par
	}
}

func (h *IndexedHeap) siftDown(p int) {
	n := len(h.slots)
	for {
		first := h.firstChild(p)
		if first >= n {
			break
		}
		smallest := first
		last := first + h.arity
		if last > n {
			last = n
		}
		for c := first + 1; c < last; c++ {
			if h.less(h.slots[c], h.slots[smallest]) {
				smallest = c
			}
		}
		if !h.less(h.slots[smallest], h.slots[p]) {
			break
		}
		h.swap(p, smallest)
		p = smallest
	}
}
