package listpair

import "github.com/katalvlaran/selfadjust/adt"

// ListPair partitions 1..n into an "in" side and an "out" side.
type ListPair struct {
	adt.Base
	vec   []int // vec[1..n]: permutation of the index universe
	loc   []int // loc[x]: position of x within vec
	numIn int    // vec[1..numIn] is the in-set; vec[numIn+1..n] is the out-set
}

// NewAllOut returns a ListPair over 1..n with every index starting on the
// out side (the natural starting state for a free-index pool).
func NewAllOut(n int) *ListPair {
	lp := &ListPair{Base: adt.NewBase(n)}
	lp.makeSpace()
	lp.reset(false)

	return lp
}

// NewAllIn returns a ListPair over 1..n with every index starting on the in
// side.
func NewAllIn(n int) *ListPair {
	lp := &ListPair{Base: adt.NewBase(n)}
	lp.makeSpace()
	lp.reset(true)

	return lp
}

func (lp *ListPair) makeSpace() {
	size := lp.N() + 1
	lp.vec = make([]int, size)
	lp.loc = make([]int, size)
}

func (lp *ListPair) reset(allIn bool) {
	for i := 1; i <= lp.N(); i++ {
		lp.vec[i] = i
		lp.loc[i] = i
	}
	if allIn {
		lp.numIn = lp.N()
	} else {
		lp.numIn = 0
	}
}

// Clear moves every index to the out side.
func (lp *ListPair) Clear() { lp.reset(false) }

// Resize discards all contents; every index starts on the out side.
func (lp *ListPair) Resize(n int) {
	lp.SetN(n)
	lp.makeSpace()
	lp.reset(false)
}

// Expand grows capacity to n, preserving the current partition; new indexes
// start on the out side. No-op if n <= N().
func (lp *ListPair) Expand(n int) {
	if n <= lp.N() {
		return
	}
	oldN, oldNumIn := lp.N(), lp.numIn
	oldVec := lp.vec
	lp.SetN(n)
	lp.makeSpace()

	// Rebuild: existing in-set first, then existing out-set, then new (out) indexes.
	pos := 1
	for i := 1; i <= oldNumIn; i++ {
		x := oldVec[i]
		lp.vec[pos] = x
		lp.loc[x] = pos
		pos++
	}
	lp.numIn = oldNumIn
	for i := oldNumIn + 1; i <= oldN; i++ {
		x := oldVec[i]
		lp.vec[pos] = x
		lp.loc[x] = pos
		pos++
	}
	for i := oldN + 1; i <= n; i++ {
		lp.vec[pos] = i
		lp.loc[i] = pos
		pos++
	}
}

// IsIn reports whether x is currently on the in side.
func (lp *ListPair) IsIn(x int) bool {
	adt.AssertValid(&lp.Base, x, "listpair")

	return lp.loc[x] <= lp.numIn
}

// FirstIn returns the first index on the in side, or 0 if the in side is
// empty.
func (lp *ListPair) FirstIn() int {
	if lp.numIn == 0 {
		return 0
	}

	return lp.vec[1]
}

// NextIn returns the next index on the in side after x, or 0 if x is the
// last one.
func (lp *ListPair) NextIn(x int) int {
	adt.AssertValid(&lp.Base, x, "listpair")
	p := lp.loc[x]
	if p < lp.numIn {
		return lp.vec[p+1]
	}

	return 0
}

// FirstOut returns the first index on the out side, or 0 if the out side is
// empty.
func (lp *ListPair) FirstOut() int {
	if lp.numIn == lp.N() {
		return 0
	}

	return lp.vec[lp.numIn+1]
}

// NextOut returns the next index on the out side after x, or 0 if x is the
// last one.
func (lp *ListPair) NextOut(x int) int {
	adt.AssertValid(&lp.Base, x, "listpair")
	p := lp.loc[x]
	if p < lp.N() {
		return lp.vec[p+1]
	}

	return 0
}

// Swap moves x to the opposite side it currently occupies. O(1).
func (lp *ListPair) Swap(x int) {
	adt.AssertValid(&lp.Base, x, "listpair")
	p := lp.loc[x]
	if p <= lp.numIn {
		// x is in; move it to out by swapping with the last in-set slot.
		other := lp.vec[lp.numIn]
		lp.vec[p], lp.vec[lp.numIn] = other, x
		lp.loc[other], lp.loc[x] = p, lp.numIn
		lp.numIn--
	} else {
		// x is out; move it to in by swapping with the first out-set slot.
		lp.numIn++
		other := lp.vec[lp.numIn]
		lp.vec[p], lp.vec[lp.numIn] = other, x
		lp.loc[other], lp.loc[x] = p, lp.numIn
	}
}

// MoveToIn moves x to the in side; no-op if it is already there.
func (lp *ListPair) MoveToIn(x int) {
	if !lp.IsIn(x) {
		lp.Swap(x)
	}
}

// MoveToOut moves x to the out side; no-op if it is already there.
func (lp *ListPair) MoveToOut(x int) {
	if lp.IsIn(x) {
		lp.Swap(x)
	}
}
