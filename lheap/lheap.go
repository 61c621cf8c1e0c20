package lheap

import "github.com/katalvlaran/selfadjust/adt"

// Lheap holds a collection of leftist heaps over 1..n. The empty heap is
// denoted by the index 0; every other heap is identified by its current
// root. The zero value is not usable; construct with New.
type Lheap struct {
	adt.Base
	key   []int64
	rank  []int
	left  []int
	right []int
}

// New returns an Lheap over 1..n with every index a singleton heap (rank 1,
// key 0).
func New(n int) *Lheap {
	h := &Lheap{Base: adt.NewBase(n)}
	h.makeSpace()
	h.Clear()

	return h
}

func (h *Lheap) makeSpace() {
	size := h.N() + 1
	h.key = make([]int64, size)
	h.rank = make([]int, size)
	h.left = make([]int, size)
	h.right = make([]int, size)
}

// Clear resets every index to a singleton heap of key 0.
func (h *Lheap) Clear() {
	for i := 1; i <= h.N(); i++ {
		h.left[i] = 0
		h.right[i] = 0
		h.rank[i] = 1
		h.key[i] = 0
	}
	h.rank[0] = 0
}

// Resize discards all contents and rebuilds the structure for capacity n.
func (h *Lheap) Resize(n int) {
	h.SetN(n)
	h.makeSpace()
	h.Clear()
}

// Expand grows capacity to n, preserving existing heaps. No-op if n <= N().
func (h *Lheap) Expand(n int) {
	if n <= h.N() {
		return
	}
	oldN := h.N()
	oldKey, oldRank, oldLeft, oldRight := h.key, h.rank, h.left, h.right
	h.SetN(n)
	h.makeSpace()
	for i := 1; i <= oldN; i++ {
		h.key[i] = oldKey[i]
		h.rank[i] = oldRank[i]
		h.left[i] = oldLeft[i]
		h.right[i] = oldRight[i]
	}
}

// Key returns the key of item i.
func (h *Lheap) Key(i int) int64 {
	adt.AssertValid(&h.Base, i, "lheap")

	return h.key[i]
}

// SetKey assigns k as i's key.
func (h *Lheap) SetKey(i int, k int64) {
	adt.AssertValid(&h.Base, i, "lheap")
	h.key[i] = k
}

// Rank returns the rank of item i, mainly for diagnostics and invariant
// checks.
func (h *Lheap) Rank(i int) int {
	adt.AssertValid(&h.Base, i, "lheap")

	return h.rank[i]
}

// FindMin returns the item of smallest key in heap h, i.e. h itself: the
// root of a leftist heap is always its minimum.
func (h *Lheap) FindMin(heap int) int { return heap }

// Meld combines heaps h1 and h2 into one and returns its root. Either
// argument may be 0, the empty heap.
func (h *Lheap) Meld(h1, h2 int) int {
	if h1 == 0 {
		return h2
	}
	if h2 == 0 {
		return h1
	}
	adt.AssertValid(&h.Base, h1, "lheap")
	adt.AssertValid(&h.Base, h2, "lheap")

	if h.key[h1] > h.key[h2] {
		h1, h2 = h2, h1
	}
	h.right[h1] = h.Meld(h.right[h1], h2)
	if h.rank[h.left[h1]] < h.rank[h.right[h1]] {
		h.left[h1], h.right[h1] = h.right[h1], h.left[h1]
	}
	h.rank[h1] = h.rank[h.right[h1]] + 1

	return h1
}

// Insert melds singleton item i, under key k, into heap h and returns the
// combined heap's root.
func (h *Lheap) Insert(i int, k int64, heap int) int {
	adt.AssertValid(&h.Base, i, "lheap")
	adt.Assert(h.left[i] == 0 && h.right[i] == 0 && h.rank[i] == 1,
		"lheap: Insert requires a singleton item")
	h.key[i] = k

	return h.Meld(i, heap)
}

// DeleteMin removes the item with smallest key from heap, i.e. heap itself,
// and returns the root of the resulting heap (heap is left a singleton).
func (h *Lheap) DeleteMin(heap int) int {
	adt.AssertValid(&h.Base, heap, "lheap")
	next := h.Meld(h.left[heap], h.right[heap])
	h.left[heap], h.right[heap] = 0, 0
	h.rank[heap] = 1

	return next
}

// Heapify combines a list of heaps (given as a slice of their canonical
// elements) into a single heap by repeated pairwise melding and returns its
// root, or 0 if the list is empty. Runs in O(k log k) on a list of k heaps.
func (h *Lheap) Heapify(heaps []int) int {
	if len(heaps) == 0 {
		return 0
	}
	queue := append([]int(nil), heaps...)
	for len(queue) > 1 {
		merged := h.Meld(queue[0], queue[1])
		queue = append(queue[2:], merged)
	}

	return queue[0]
}
