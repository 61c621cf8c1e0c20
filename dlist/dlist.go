package dlist

import "github.com/katalvlaran/selfadjust/adt"

// Dlist holds a partition of 1..n into circular doubly-linked lists.
// The zero value is not usable; construct with New.
type Dlist struct {
	adt.Base
	nxt    []int
	prv    []int
	isHead []bool
}

// New returns a Dlist over 1..n, with every index starting as its own
// singleton list (and therefore its own head).
func New(n int) *Dlist {
	d := &Dlist{Base: adt.NewBase(n)}
	d.makeSpace()
	d.Clear()

	return d
}

func (d *Dlist) makeSpace() {
	size := d.N() + 1
	d.nxt = make([]int, size)
	d.prv = make([]int, size)
	d.isHead = make([]bool, size)
}

// Clear resets every index to a singleton list.
func (d *Dlist) Clear() {
	for i := 1; i <= d.N(); i++ {
		d.nxt[i] = i
		d.prv[i] = i
		d.isHead[i] = true
	}
}

// Resize discards all contents and rebuilds the structure for capacity n.
func (d *Dlist) Resize(n int) {
	d.SetN(n)
	d.makeSpace()
	d.Clear()
}

// Expand grows capacity to n, preserving existing list membership. No-op if
// n <= N().
func (d *Dlist) Expand(n int) {
	if n <= d.N() {
		return
	}
	oldN := d.N()
	oldNxt, oldPrv, oldHead := d.nxt, d.prv, d.isHead
	d.SetN(n)
	d.makeSpace()
	for i := 1; i <= oldN; i++ {
		d.nxt[i] = oldNxt[i]
		d.prv[i] = oldPrv[i]
		d.isHead[i] = oldHead[i]
	}
	for i := oldN + 1; i <= n; i++ {
		d.nxt[i] = i
		d.prv[i] = i
		d.isHead[i] = true
	}
}

// First returns the head of the list named id, or 0 if id is 0 (the empty
// list convention).
func (d *Dlist) First(id int) int {
	if id == 0 {
		return 0
	}
	adt.AssertValid(&d.Base, id, "dlist")
	adt.Assert(d.isHead[id], "dlist: First called with a non-head index")

	return id
}

// Next returns the successor of x within its list, or 0 if x is the last
// element (i.e. its successor is the list's head).
func (d *Dlist) Next(x int) int {
	adt.AssertValid(&d.Base, x, "dlist")
	nx := d.nxt[x]
	if d.isHead[nx] {
		return 0
	}

	return nx
}

// Join concatenates the lists named id1 and id2 and returns the id of the
// combined list. Either id may be 0, meaning an empty list. The caller must
// guarantee id1 and id2 name distinct lists.
func (d *Dlist) Join(id1, id2 int) int {
	if id1 == 0 {
		return id2
	}
	if id2 == 0 {
		return id1
	}
	adt.AssertValid(&d.Base, id1, "dlist")
	adt.AssertValid(&d.Base, id2, "dlist")
	adt.Assert(d.isHead[id1] && d.isHead[id2], "dlist: Join requires two list heads")
	adt.Assert(id1 != id2, "dlist: Join requires distinct lists")

	tail1, tail2 := d.prv[id1], d.prv[id2]
	d.nxt[tail1], d.prv[id2] = id2, tail1
	d.nxt[tail2], d.prv[id1] = id1, tail2
	d.isHead[id2] = false

	return id1
}

// Remove detaches x from its list, turning it into a singleton list. If x
// was the head of a multi-element list, its successor becomes the new head.
func (d *Dlist) Remove(x int) {
	adt.AssertValid(&d.Base, x, "dlist")
	if d.nxt[x] == x {
		return // already a singleton
	}
	wasHead := d.isHead[x]
	px, nx := d.prv[x], d.nxt[x]
	d.nxt[px] = nx
	d.prv[nx] = px
	if wasHead {
		d.isHead[nx] = true
	}
	d.nxt[x] = x
	d.prv[x] = x
	d.isHead[x] = true
}
