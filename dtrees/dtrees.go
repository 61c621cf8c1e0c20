package dtrees

import (
	"github.com/katalvlaran/selfadjust/adt"
	"github.com/katalvlaran/selfadjust/pathset"
)

// Dtrees holds a forest of rooted trees over 1..n, each node initially its
// own singleton tree. Trees are decomposed into preferred paths kept in an
// underlying Pathset. Each path's successor (the real parent of the path's
// topmost node, or 0 when that node is a tree root) is stored as the
// Pathset's per-path value, so it stays anchored at the path's canonical
// element no matter how splaying restructures the path. parentOf mirrors
// the logical parent of every node; path restructuring never changes
// logical parents, so it is touched only by Link and Cut.
type Dtrees struct {
	adt.Base
	ps       *pathset.Pathset
	parentOf []int
}

// New returns a Dtrees over 1..n with every index its own singleton tree.
func New(n int) *Dtrees {
	d := &Dtrees{Base: adt.NewBase(n), ps: pathset.New(n)}
	d.makeSpace()

	return d
}

func (d *Dtrees) makeSpace() {
	d.parentOf = make([]int, d.N()+1)
}

// Clear resets every index to a singleton tree of cost 0.
func (d *Dtrees) Clear() {
	d.ps.Clear()
	for i := 1; i <= d.N(); i++ {
		d.parentOf[i] = 0
	}
}

// Resize discards all contents and rebuilds the structure for capacity n.
func (d *Dtrees) Resize(n int) {
	d.SetN(n)
	d.ps.Resize(n)
	d.makeSpace()
}

// Expand grows capacity to n, preserving existing trees. No-op if n <= N().
func (d *Dtrees) Expand(n int) {
	if n <= d.N() {
		return
	}
	oldN := d.N()
	oldParentOf := d.parentOf
	d.SetN(n)
	d.ps.Expand(n)
	d.makeSpace()
	for i := 1; i <= oldN; i++ {
		d.parentOf[i] = oldParentOf[i]
	}
}

// SetCost assigns c as u's cost. u must currently be an isolated singleton
// tree.
func (d *Dtrees) SetCost(u int, c int64) {
	adt.AssertValid(&d.Base, u, "dtrees")
	d.ps.SetCost(u, c)
}

// NodeCost returns u's currently stored cost, without restructuring the
// forest.
func (d *Dtrees) NodeCost(u int) int64 {
	adt.AssertValid(&d.Base, u, "dtrees")

	return d.ps.NodeCost(u)
}

// Parent returns u's parent in its tree, or 0 if u is a tree root. O(1).
func (d *Dtrees) Parent(u int) int {
	adt.AssertValid(&d.Base, u, "dtrees")

	return d.parentOf[u]
}

// expose rebuilds the preferred path from u up to its tree's root, so that
// a single Pathset path spans u and every one of its ancestors, and returns
// that path's canonical element. It walks root-ward one successor link at a
// time: the stale preferred segment below the successor node is bumped out
// of its path (and re-anchored to that node via the path value), and the
// path built so far takes its place.
func (d *Dtrees) expose(u int) int {
	adt.AssertValid(&d.Base, u, "dtrees")

	d.ps.FindPath(u)
	below, above := d.ps.Split(u)
	if below != 0 {
		d.ps.SetPval(below, u)
	}
	last := d.ps.Join(0, u, above)

	for {
		w := d.ps.Pval(last)
		if w == 0 {
			break
		}
		d.ps.SetPval(last, 0)
		d.ps.FindPath(w)
		stale, realAbove := d.ps.Split(w)
		if stale != 0 {
			d.ps.SetPval(stale, w)
		}
		last = d.ps.Join(last, w, realAbove)
	}

	return last
}

// FindRoot returns u's tree root.
func (d *Dtrees) FindRoot(u int) int {
	adt.AssertValid(&d.Base, u, "dtrees")

	return d.ps.FindTail(d.expose(u))
}

// FindCost returns the minimum-cost node among u and its ancestors up to
// the tree root (the one closest to the root among ties), and that cost.
func (d *Dtrees) FindCost(u int) (node int, cost int64) {
	adt.AssertValid(&d.Base, u, "dtrees")

	return d.ps.FindPathCost(d.expose(u))
}

// AddCost adds c to the cost of every node from u up to the tree root.
func (d *Dtrees) AddCost(u int, c int64) {
	adt.AssertValid(&d.Base, u, "dtrees")
	d.ps.AddPathCost(d.expose(u), c)
}

// Link makes t's tree a child of u, joining them into one tree with t
// hanging directly off u. t must be a tree root, and u must lie in a
// different tree.
func (d *Dtrees) Link(t, u int) {
	adt.AssertValid(&d.Base, t, "dtrees")
	adt.AssertValid(&d.Base, u, "dtrees")
	adt.Assert(t != u, "dtrees: Link requires distinct trees")

	tail := d.ps.FindTail(d.expose(t))
	adt.Assert(tail == t, "dtrees: Link requires t to be a tree root")
	d.parentOf[t] = u
	d.ps.SetPval(t, u)
}

// Cut detaches u's subtree from its parent, making u the root of its own
// tree. u must not already be a tree root.
func (d *Dtrees) Cut(u int) {
	adt.AssertValid(&d.Base, u, "dtrees")

	d.expose(u)
	d.ps.FindPath(u)
	_, above := d.ps.Split(u) // nothing precedes u on a freshly exposed path
	adt.Assert(above != 0, "dtrees: Cut requires u not be a tree root")
	d.ps.SetPval(above, 0)
	d.ps.SetPval(u, 0)
	d.parentOf[u] = 0
}
