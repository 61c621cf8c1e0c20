package fheap

import "github.com/katalvlaran/selfadjust/adt"

// maxRank bounds the rank-bucket table used by DeleteMin's consolidation
// pass, which has slots for ranks 0..maxRank. A rank-r tree holds at least
// F(r+2) items (Fibonacci numbers), so a rank above 32 needs a heap of at
// least F(35) = 9,227,465 items.
const maxRank = 32

// Fheap holds a collection of Fibonacci heaps over 1..n. A heap is
// identified by the index of its current minimum-key root. The zero value
// is not usable; construct with New.
type Fheap struct {
	adt.Base
	key      []int64
	rank     []int
	parent   []int
	child    []int
	mark     []bool
	sibNext  []int // sibNext[x]/sibPrev[x]: circular sibling ring (root list
	sibPrev  []int // or child list) that x currently belongs to.
	rvec     []int // scratch: rank -> root, reused by DeleteMin
	scratch  []int // scratch: consolidation work queue, reused by DeleteMin
}

// New returns an Fheap over 1..n with every index a singleton heap of key
// 0.
func New(n int) *Fheap {
	h := &Fheap{Base: adt.NewBase(n)}
	h.makeSpace()
	h.Clear()

	return h
}

func (h *Fheap) makeSpace() {
	size := h.N() + 1
	h.key = make([]int64, size)
	h.rank = make([]int, size)
	h.parent = make([]int, size)
	h.child = make([]int, size)
	h.mark = make([]bool, size)
	h.sibNext = make([]int, size)
	h.sibPrev = make([]int, size)
	h.rvec = make([]int, maxRank+1)
	h.scratch = make([]int, 0, h.N())
}

// Clear resets every index to a singleton heap of key 0.
func (h *Fheap) Clear() {
	for i := 0; i <= h.N(); i++ {
		h.sibNext[i] = i
		h.sibPrev[i] = i
	}
	for i := 1; i <= h.N(); i++ {
		h.child[i] = 0
		h.parent[i] = 0
		h.rank[i] = 0
		h.key[i] = 0
		h.mark[i] = false
	}
	for i := range h.rvec {
		h.rvec[i] = 0
	}
}

// Resize discards all contents and rebuilds the structure for capacity n.
func (h *Fheap) Resize(n int) {
	h.SetN(n)
	h.makeSpace()
	h.Clear()
}

// Expand grows capacity to n, preserving existing heaps. No-op if n <=
// N().
func (h *Fheap) Expand(n int) {
	if n <= h.N() {
		return
	}
	oldN := h.N()
	oldKey, oldRank, oldParent, oldChild, oldMark := h.key, h.rank, h.parent, h.child, h.mark
	oldNext, oldPrev := h.sibNext, h.sibPrev
	h.SetN(n)
	h.makeSpace()
	for i := 1; i <= oldN; i++ {
		h.key[i] = oldKey[i]
		h.rank[i] = oldRank[i]
		h.parent[i] = oldParent[i]
		h.child[i] = oldChild[i]
		h.mark[i] = oldMark[i]
		h.sibNext[i] = oldNext[i]
		h.sibPrev[i] = oldPrev[i]
	}
}

// Key returns the key of item i.
func (h *Fheap) Key(i int) int64 {
	adt.AssertValid(&h.Base, i, "fheap")

	return h.key[i]
}

// Rank returns the rank of item i, mainly for diagnostics and invariant
// checks.
func (h *Fheap) Rank(i int) int {
	adt.AssertValid(&h.Base, i, "fheap")

	return h.rank[i]
}

// Marked reports whether item i is currently marked (it has lost one child
// since becoming a child itself), mainly for diagnostics.
func (h *Fheap) Marked(i int) bool {
	adt.AssertValid(&h.Base, i, "fheap")

	return h.mark[i]
}

// ringJoin splices the cycle containing j in immediately after i. A no-op
// if either argument is 0.
func (h *Fheap) ringJoin(i, j int) {
	if i == 0 || j == 0 {
		return
	}
	ni, pj := h.sibNext[i], h.sibPrev[j]
	h.sibPrev[ni] = pj
	h.sibNext[pj] = ni
	h.sibNext[i] = j
	h.sibPrev[j] = i
}

// ringRemove detaches i from its cycle, leaving it a singleton ring.
func (h *Fheap) ringRemove(i int) {
	pi, ni := h.sibPrev[i], h.sibNext[i]
	h.sibNext[pi] = ni
	h.sibPrev[ni] = pi
	h.sibNext[i] = i
	h.sibPrev[i] = i
}

// Meld combines heaps h1 and h2 by splicing their root rings together and
// returns whichever root has the smaller key. Either argument may be 0, the
// empty heap. O(1).
func (h *Fheap) Meld(h1, h2 int) int {
	if h1 == 0 {
		return h2
	}
	if h2 == 0 {
		return h1
	}
	adt.AssertValid(&h.Base, h1, "fheap")
	adt.AssertValid(&h.Base, h2, "fheap")
	h.ringJoin(h1, h2)
	if h.key[h1] <= h.key[h2] {
		return h1
	}

	return h2
}

// Insert melds singleton item i, under key x, into heap and returns the
// combined heap's root.
func (h *Fheap) Insert(i, heap int, x int64) int {
	adt.AssertValid(&h.Base, i, "fheap")
	adt.Assert(h.sibNext[i] == i && h.sibPrev[i] == i && h.child[i] == 0 && h.parent[i] == 0,
		"fheap: Insert requires a singleton item")
	h.key[i] = x

	return h.Meld(i, heap)
}

// DecreaseKey subtracts delta (>= 0) from item i's key and, if i has a
// parent, cuts i free into the root ring whether or not heap order was
// violated, cascading the cut up through any already-marked ancestor. Returns the
// canonical element of the heap that results. O(1) amortized.
func (h *Fheap) DecreaseKey(i int, delta int64, heap int) int {
	adt.AssertValid(&h.Base, i, "fheap")
	adt.AssertValid(&h.Base, heap, "fheap")
	adt.Assert(delta >= 0, "fheap: DecreaseKey requires a non-negative delta")

	pi := h.parent[i]
	h.key[i] -= delta
	if pi == 0 {
		if h.key[i] < h.key[heap] {
			return i
		}

		return heap
	}

	if h.rank[pi] == 1 {
		h.child[pi] = 0
	} else {
		h.child[pi] = h.sibPrev[i]
	}
	h.rank[pi]--
	h.ringRemove(i)
	h.parent[i] = 0
	heap = h.Meld(i, heap)

	if h.parent[pi] == 0 {
		return heap
	}
	if !h.mark[pi] {
		h.mark[pi] = true
	} else {
		heap = h.DecreaseKey(pi, 0, heap)
	}

	return heap
}

// DeleteMin removes the minimum-key item from heap (i.e. heap itself),
// promotes its children into the root ring, and consolidates the
// remaining roots by rank until no two share one, returning the new
// minimum. Returns 0 if heap was the sole remaining item. O(log n)
// amortized.
func (h *Fheap) DeleteMin(heap int) int {
	adt.AssertValid(&h.Base, heap, "fheap")

	h.ringJoin(heap, h.child[heap])
	h.child[heap] = 0
	h.rank[heap] = 0
	if h.sibPrev[heap] == heap {
		return 0
	}

	i := h.sibPrev[heap]
	h.ringRemove(heap)

	root := i
	h.parent[i] = 0
	h.scratch = h.scratch[:0]
	h.scratch = append(h.scratch, i)
	for j := h.sibNext[i]; j != i; j = h.sibNext[j] {
		if h.key[j] < h.key[root] {
			root = j
		}
		h.parent[j] = 0
		h.scratch = append(h.scratch, j)
	}

	mr := -1
	head := 0
	for head < len(h.scratch) {
		x := h.scratch[head]
		head++
		adt.Assert(h.rank[x] <= maxRank, "fheap: rank exceeds the rank-bucket table")
		bucket := h.rvec[h.rank[x]]
		switch {
		case mr < h.rank[x]:
			for mr++; mr < h.rank[x]; mr++ {
				h.rvec[mr] = 0
			}
			h.rvec[h.rank[x]] = x
		case bucket == 0:
			h.rvec[h.rank[x]] = x
		case h.key[x] < h.key[bucket]:
			h.ringRemove(bucket)
			h.ringJoin(h.child[x], bucket)
			h.child[x] = bucket
			h.rvec[h.rank[x]] = 0
			h.rank[x]++
			h.parent[bucket] = x
			h.mark[bucket] = false
			h.scratch = append(h.scratch, x)
		default:
			h.ringRemove(x)
			h.ringJoin(h.child[bucket], x)
			h.child[bucket] = x
			h.rvec[h.rank[x]] = 0
			h.rank[bucket]++
			h.parent[x] = bucket
			h.mark[x] = false
			if root == x {
				root = bucket
			}
			h.scratch = append(h.scratch, bucket)
		}
	}
	for k := 0; k <= mr; k++ {
		h.rvec[k] = 0
	}

	return root
}

// Remove deletes item i from the heap it belongs to (canonical element
// heap) and returns the resulting heap's root. Implemented as a
// DecreaseKey that drives i's key below the current minimum, followed by
// DeleteMin.
func (h *Fheap) Remove(i, heap int) int {
	adt.AssertValid(&h.Base, i, "fheap")
	adt.AssertValid(&h.Base, heap, "fheap")

	k := h.key[i]
	heap = h.DecreaseKey(i, h.key[i]-h.key[heap]+1, heap)
	heap = h.DeleteMin(heap)
	h.key[i] = k

	return heap
}
