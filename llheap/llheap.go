package llheap

import "github.com/katalvlaran/selfadjust/adt"

// DeletedFunc reports whether a real item has been logically removed from
// whatever heap currently contains it. It is called only with real item
// indexes (1..n), never with a dummy node. A nil DeletedFunc means no real
// item is ever considered deleted by the predicate (dummy nodes are still
// always deleted).
type DeletedFunc func(item int) bool

// Llheap holds a collection of lazy leftist heaps over the real items
// 1..n. Internally it also owns n "dummy" nodes (indexes n+1..2n) used to
// represent the pending result of a lazy Lmeld; callers never see dummy
// indexes. The zero value is not usable; construct with New.
type Llheap struct {
	adt.Base              // covers 2*realN indexes: real items, then dummies
	realN     int         // number of real items (adt.Base.N() == 2*realN)
	isDeleted DeletedFunc
	key       []int64
	rank      []int
	left      []int
	right     []int
	dummy     int   // head of the free dummy-node list, threaded via left
	scratch   []int // reused purge/heapify work list
}

// New returns an Llheap over n real items (1..n) with deletion driven by
// isDeleted. isDeleted may be nil, meaning only dummy nodes are ever
// considered deleted.
func New(n int, isDeleted DeletedFunc) *Llheap {
	h := &Llheap{Base: adt.NewBase(2 * n), realN: n, isDeleted: isDeleted}
	h.makeSpace()
	h.resetAll()

	return h
}

func (h *Llheap) makeSpace() {
	size := h.N() + 1
	h.key = make([]int64, size)
	h.rank = make([]int, size)
	h.left = make([]int, size)
	h.right = make([]int, size)
	h.scratch = make([]int, 0, h.realN)
}

func (h *Llheap) resetAll() {
	for i := 1; i <= h.N(); i++ {
		h.left[i] = 0
		h.right[i] = 0
		h.rank[i] = 1
		h.key[i] = 0
	}
	// Thread the dummy nodes (realN+1..2*realN) into a free list via left.
	for i := h.realN + 1; i < h.N(); i++ {
		h.left[i] = i + 1
	}
	if h.realN > 0 {
		h.dummy = h.realN + 1
		h.left[h.N()] = 0
	} else {
		h.dummy = 0
	}
	h.rank[0] = 0
}

// Clear resets every real item and every dummy node to their initial
// unlinked state.
func (h *Llheap) Clear() { h.resetAll() }

func (h *Llheap) deleted(x int) bool {
	if x > h.realN {
		return true
	}

	return h.isDeleted != nil && h.isDeleted(x)
}

// Key returns the key of real item i.
func (h *Llheap) Key(i int) int64 {
	adt.Assert(i >= 1 && i <= h.realN, "llheap: Key requires a real item")

	return h.key[i]
}

// SetKey assigns k as real item i's key.
func (h *Llheap) SetKey(i int, k int64) {
	adt.Assert(i >= 1 && i <= h.realN, "llheap: SetKey requires a real item")
	h.key[i] = k
}

func (h *Llheap) meld(h1, h2 int) int {
	if h1 == 0 {
		return h2
	}
	if h2 == 0 {
		return h1
	}
	if h.key[h1] > h.key[h2] {
		h1, h2 = h2, h1
	}
	h.right[h1] = h.meld(h.right[h1], h2)
	if h.rank[h.left[h1]] < h.rank[h.right[h1]] {
		h.left[h1], h.right[h1] = h.right[h1], h.left[h1]
	}
	h.rank[h1] = h.rank[h.right[h1]] + 1

	return h1
}

func (h *Llheap) heapify(items []int) int {
	if len(items) == 0 {
		return 0
	}
	queue := items
	for len(queue) > 1 {
		merged := h.meld(queue[0], queue[1])
		queue = append(queue[2:], merged)
	}

	return queue[0]
}

// Lmeld lazily combines h1 and h2: it allocates a dummy node pointing at
// both and returns it, in O(1). The two heaps are not otherwise inspected,
// so Lmeld never notices or purges deleted items; that happens on the next
// FindMin or Insert.
func (h *Llheap) Lmeld(h1, h2 int) int {
	adt.Assert(h.dummy != 0, "llheap: Lmeld has exhausted its dummy-node pool")
	d := h.dummy
	h.dummy = h.left[d]
	h.left[d], h.right[d] = h1, h2

	return d
}

// purge walks down from root, collecting non-deleted nodes into the
// scratch list and recycling every deleted node it passes through: dummy
// nodes return to the free list, and deleted real items are turned back
// into rank-1 singletons.
func (h *Llheap) purge(root int) {
	if root == 0 {
		return
	}
	if !h.deleted(root) {
		h.scratch = append(h.scratch, root)

		return
	}
	left, right := h.left[root], h.right[root]
	if root > h.realN {
		h.left[root] = h.dummy
		h.dummy = root
		h.right[root] = 0
	} else {
		h.left[root], h.right[root] = 0, 0
		h.rank[root] = 1
	}
	h.purge(left)
	h.purge(right)
}

// FindMin purges deleted nodes out of heap and returns the root of the
// resulting, normalised heap (its minimum-key real item).
func (h *Llheap) FindMin(heap int) int {
	h.scratch = h.scratch[:0]
	h.purge(heap)

	return h.heapify(h.scratch)
}

// Insert melds singleton real item i, under key k, into heap after first
// normalising heap via FindMin's purge/heapify.
func (h *Llheap) Insert(i int, k int64, heap int) int {
	adt.Assert(i >= 1 && i <= h.realN, "llheap: Insert requires a real item")
	adt.Assert(h.left[i] == 0 && h.right[i] == 0 && h.rank[i] == 1,
		"llheap: Insert requires a singleton item")
	h.key[i] = k
	normalised := h.FindMin(heap)

	return h.meld(i, normalised)
}

// MakeHeap builds a heap directly from a list of singleton real items,
// bypassing Lmeld/purge entirely (there is nothing to purge: every item in
// items is assumed not yet deleted).
func (h *Llheap) MakeHeap(items []int) int {
	list := append([]int(nil), items...)

	return h.heapify(list)
}
