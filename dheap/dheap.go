package dheap

import "github.com/katalvlaran/selfadjust/adt"

// HeapD is an array-based d-ary heap over the items 1..n. An item is either
// absent from the heap or present at exactly one position; Member reports
// which. The zero value is not usable; construct with New.
type HeapD struct {
	adt.Base
	d    int     // branching factor
	hn   int     // number of items currently in the heap
	h    []int   // h[1..hn]: items, in heap order
	pos  []int   // pos[i]: position of item i in h, or 0 if absent
	key  []int64 // key[i]: key of item i
}

// New returns a HeapD over 1..n with branching factor d (minimum 2) and no
// items present.
func New(n, d int) *HeapD {
	adt.Assert(d >= 2, "dheap: New requires branching factor d >= 2")
	h := &HeapD{Base: adt.NewBase(n), d: d}
	h.makeSpace()
	h.Clear()

	return h
}

func (h *HeapD) makeSpace() {
	size := h.N() + 1
	h.h = make([]int, size)
	h.pos = make([]int, size)
	h.key = make([]int64, size)
}

// Clear empties the heap; item keys are left untouched but no item is a
// member any more.
func (h *HeapD) Clear() {
	for i := 1; i <= h.N(); i++ {
		h.pos[i] = 0
	}
	h.h[0], h.pos[0], h.hn = 0, 0, 0
}

// Resize discards all contents and rebuilds the structure for capacity n,
// keeping the current branching factor.
func (h *HeapD) Resize(n int) {
	h.SetN(n)
	h.makeSpace()
	h.Clear()
}

// Expand grows capacity to n, preserving heap membership and keys. No-op
// if n <= N().
func (h *HeapD) Expand(n int) {
	if n <= h.N() {
		return
	}
	oldHn := h.hn
	oldH, oldKey := h.h, h.key
	h.SetN(n)
	h.makeSpace()
	for p := 1; p <= oldHn; p++ {
		x := oldH[p]
		h.h[p] = x
		h.pos[x] = p
		h.key[x] = oldKey[x]
	}
	h.hn = oldHn
}

func (h *HeapD) parentPos(i int) int { return (i + (h.d - 2)) / h.d }
func (h *HeapD) leftPos(i int) int   { return h.d*(i-1) + 2 }
func (h *HeapD) rightPos(i int) int  { return h.d*i + 1 }

// FindMin returns the item with the smallest key, or 0 if the heap is
// empty. O(1).
func (h *HeapD) FindMin() int {
	if h.hn == 0 {
		return 0
	}

	return h.h[1]
}

// Key returns the key of item i.
func (h *HeapD) Key(i int) int64 {
	adt.AssertValid(&h.Base, i, "dheap")

	return h.key[i]
}

// Member reports whether item i is currently in the heap.
func (h *HeapD) Member(i int) bool {
	adt.AssertValid(&h.Base, i, "dheap")

	return h.pos[i] != 0
}

// Empty reports whether the heap has no items.
func (h *HeapD) Empty() bool { return h.hn == 0 }

// Size returns the number of items currently in the heap.
func (h *HeapD) Size() int { return h.hn }

func (h *HeapD) minChild(x int) int {
	minc := h.leftPos(x)
	if minc > h.hn {
		return 0
	}
	last := h.rightPos(x)
	if last > h.hn {
		last = h.hn
	}
	for y := minc + 1; y <= last; y++ {
		if h.key[h.h[y]] < h.key[h.h[minc]] {
			minc = y
		}
	}

	return minc
}

func (h *HeapD) siftup(i, x int) {
	px := h.parentPos(x)
	for x > 1 && h.key[i] < h.key[h.h[px]] {
		h.h[x] = h.h[px]
		h.pos[h.h[x]] = x
		x = px
		px = h.parentPos(x)
	}
	h.h[x] = i
	h.pos[i] = x
}

func (h *HeapD) siftdown(i, x int) {
	cx := h.minChild(x)
	for cx != 0 && h.key[h.h[cx]] < h.key[i] {
		h.h[x] = h.h[cx]
		h.pos[h.h[x]] = x
		x = cx
		cx = h.minChild(x)
	}
	h.h[x] = i
	h.pos[i] = x
}

// Insert adds item i, which must not already be a member, under key k.
func (h *HeapD) Insert(i int, k int64) {
	adt.AssertValid(&h.Base, i, "dheap")
	adt.Assert(!h.Member(i), "dheap: Insert requires i not already a member")
	h.key[i] = k
	h.hn++
	h.siftup(i, h.hn)
}

// Remove deletes member item i from the heap.
func (h *HeapD) Remove(i int) {
	adt.Assert(h.Member(i), "dheap: Remove requires i to be a member")
	j := h.h[h.hn]
	h.hn--
	if i != j {
		if h.key[j] <= h.key[i] {
			h.siftup(j, h.pos[i])
		} else {
			h.siftdown(j, h.pos[i])
		}
	}
	h.pos[i] = 0
}

// DeleteMin removes and returns the item with the smallest key, or 0 if
// the heap is empty.
func (h *HeapD) DeleteMin() int {
	if h.hn == 0 {
		return 0
	}
	i := h.h[1]
	h.Remove(i)

	return i
}

// ChangeKey assigns k as member item i's new key, repositioning it.
func (h *HeapD) ChangeKey(i int, k int64) {
	adt.Assert(h.Member(i), "dheap: ChangeKey requires i to be a member")
	ki := h.key[i]
	h.key[i] = k
	if k == ki {
		return
	}
	if k < ki {
		h.siftup(i, h.pos[i])
	} else {
		h.siftdown(i, h.pos[i])
	}
}

// HeapDD extends HeapD with an O(1) AddToKeys: every reported key is the
// stored key plus a single shared offset, so shifting every key in the
// heap at once never has to touch more than that one offset.
type HeapDD struct {
	*HeapD
	delta int64
}

// NewDD returns a HeapDD over 1..n with branching factor d and no items
// present.
func NewDD(n, d int) *HeapDD {
	return &HeapDD{HeapD: New(n, d)}
}

// Clear empties the heap and resets the shift offset to 0.
func (h *HeapDD) Clear() {
	h.HeapD.Clear()
	h.delta = 0
}

// Resize discards all contents, resets the offset to 0, and rebuilds the
// structure for capacity n.
func (h *HeapDD) Resize(n int) {
	h.HeapD.Resize(n)
	h.delta = 0
}

// Key returns the reported key of item i: its stored key plus the current
// shift offset.
func (h *HeapDD) Key(i int) int64 {
	adt.AssertValid(&h.Base, i, "dheap")

	return h.key[i] + h.delta
}

// Insert adds item i under reported key k (stored internally as k - the
// current offset).
func (h *HeapDD) Insert(i int, k int64) {
	h.HeapD.Insert(i, k-h.delta)
}

// ChangeKey assigns k as member item i's new reported key.
func (h *HeapDD) ChangeKey(i int, k int64) {
	h.HeapD.ChangeKey(i, k-h.delta)
}

// AddToKeys adds x to the reported key of every item in the heap, in O(1).
func (h *HeapDD) AddToKeys(x int64) { h.delta += x }
