package pathset

import (
	"math"

	"github.com/katalvlaran/selfadjust/adt"
)

const noChild = math.MaxInt64

// Pathset holds a collection of vertex-disjoint paths over 1..n, each
// represented as a splay tree whose in-order sequence is the path's node
// order. A path is identified by its root; operations that restructure a
// path return its new root. The zero value is not usable; construct with
// New.
//
// Every node stores dcost and dmin rather than an absolute cost: the node's
// true cost is dcost(u) plus the sum of dmin over u and its ancestors up to
// the path's root. A root's dmin is therefore always an absolute value (the
// minimum true cost anywhere in its path), which is what lets
// AddPathCost run in O(1) by updating the root alone.
//
// Each path also carries one integer "path value", read and written via
// Pval/SetPval against the path's canonical element. Whenever splaying
// moves a path's root, the value moves with it, so a caller's per-path
// bookkeeping (dtrees keeps each path's successor link here) survives
// restructuring. Split and Join create new roots whose values the caller
// must set itself.
type Pathset struct {
	adt.Base
	left   []int
	right  []int
	parent []int
	dcost  []int64
	dmin   []int64
	pval   []int
}

// New returns a Pathset over 1..n with every index a singleton path of cost
// 0.
func New(n int) *Pathset {
	p := &Pathset{Base: adt.NewBase(n)}
	p.makeSpace()
	p.Clear()

	return p
}

func (p *Pathset) makeSpace() {
	size := p.N() + 1
	p.left = make([]int, size)
	p.right = make([]int, size)
	p.parent = make([]int, size)
	p.dcost = make([]int64, size)
	p.dmin = make([]int64, size)
	p.pval = make([]int, size)
}

// Clear resets every index to a singleton path of cost 0.
func (p *Pathset) Clear() {
	for i := 1; i <= p.N(); i++ {
		p.left[i] = 0
		p.right[i] = 0
		p.parent[i] = 0
		p.dcost[i] = 0
		p.dmin[i] = 0
		p.pval[i] = 0
	}
}

// Resize discards all contents and rebuilds the structure for capacity n.
func (p *Pathset) Resize(n int) {
	p.SetN(n)
	p.makeSpace()
	p.Clear()
}

// Expand grows capacity to n, preserving existing paths. No-op if n <=
// N().
func (p *Pathset) Expand(n int) {
	if n <= p.N() {
		return
	}
	oldN := p.N()
	oldLeft, oldRight, oldParent, oldDcost, oldDmin, oldPval := p.left, p.right, p.parent, p.dcost, p.dmin, p.pval
	p.SetN(n)
	p.makeSpace()
	for i := 1; i <= oldN; i++ {
		p.left[i] = oldLeft[i]
		p.right[i] = oldRight[i]
		p.parent[i] = oldParent[i]
		p.dcost[i] = oldDcost[i]
		p.dmin[i] = oldDmin[i]
		p.pval[i] = oldPval[i]
	}
}

// SetCost assigns c as u's cost. u must currently be an isolated singleton
// node (not part of any multi-node path).
func (p *Pathset) SetCost(u int, c int64) {
	adt.AssertValid(&p.Base, u, "pathset")
	adt.Assert(p.left[u] == 0 && p.right[u] == 0 && p.parent[u] == 0,
		"pathset: SetCost requires an isolated node")
	p.dcost[u] = 0
	p.dmin[u] = c
}

// Pval returns the path value stored at path, which must be a path's
// canonical element for the value to be meaningful.
func (p *Pathset) Pval(path int) int {
	adt.AssertValid(&p.Base, path, "pathset")

	return p.pval[path]
}

// SetPval stores v as the value of the path whose canonical element is
// path.
func (p *Pathset) SetPval(path, v int) {
	adt.AssertValid(&p.Base, path, "pathset")
	p.pval[path] = v
}

// NodeCost returns u's true cost by summing dmin from u up to its path's
// root. Read-only diagnostic; does not restructure the tree.
func (p *Pathset) NodeCost(u int) int64 {
	adt.AssertValid(&p.Base, u, "pathset")
	sum := int64(0)
	v := u
	for {
		sum += p.dmin[v]
		if p.parent[v] == 0 {
			break
		}
		v = p.parent[v]
	}

	return p.dcost[u] + sum
}

func minOf(vals ...int64) int64 {
	m := int64(noChild)
	for _, v := range vals {
		if v < m {
			m = v
		}
	}

	return m
}

// rotate performs a single splay-tree rotation promoting x over its parent
// y, updating dcost/dmin on x, y, and the subtrees hanging below them (x's
// outer child, the child that crosses from x to y, and y's other child) so
// that every node's true cost is unchanged.
func (p *Pathset) rotate(x int) {
	y := p.parent[x]
	if y == 0 {
		return
	}
	z := p.parent[y]
	xIsLeft := p.left[y] == x

	var outer, inner, sibling int
	if xIsLeft {
		outer, inner, sibling = p.left[x], p.right[x], p.right[y]
	} else {
		outer, inner, sibling = p.right[x], p.left[x], p.left[y]
	}

	dx := p.dmin[x] // x's dmin, relative to y, before rotation
	oldDminY := p.dmin[y]

	innerRel, siblingRel := int64(noChild), int64(noChild)
	if inner != 0 {
		innerRel = p.dmin[inner] + dx
	}
	if sibling != 0 {
		siblingRel = p.dmin[sibling]
	}
	newDminY := minOf(p.dcost[y], innerRel, siblingRel)
	newDcostY := p.dcost[y] - newDminY
	if inner != 0 {
		p.dmin[inner] = innerRel - newDminY
	}
	if sibling != 0 {
		p.dmin[sibling] = siblingRel - newDminY
	}

	newDcostX := p.dcost[x] + dx
	if outer != 0 {
		p.dmin[outer] += dx
	}

	p.dcost[y] = newDcostY
	p.dmin[y] = newDminY
	p.dcost[x] = newDcostX
	p.dmin[x] = oldDminY

	// Standard splay-tree pointer rotation.
	if xIsLeft {
		p.left[y] = p.right[x]
		if p.right[x] != 0 {
			p.parent[p.right[x]] = y
		}
		p.right[x] = y
	} else {
		p.right[y] = p.left[x]
		if p.left[x] != 0 {
			p.parent[p.left[x]] = y
		}
		p.left[x] = y
	}
	p.parent[x] = z
	if z == 0 {
		// x replaces y as the path's canonical element; the path value
		// rides along.
		p.pval[x] = p.pval[y]
	} else {
		if p.left[z] == y {
			p.left[z] = x
		} else {
			p.right[z] = x
		}
	}
	p.parent[y] = x
}

func (p *Pathset) splaystep(x int) {
	y := p.parent[x]
	if y == 0 {
		return
	}
	z := p.parent[y]
	if z != 0 {
		if x == p.left[p.left[z]] || x == p.right[p.right[z]] {
			p.rotate(y)
		} else {
			p.rotate(x)
		}
	}
	p.rotate(x)
}

func (p *Pathset) splay(x int) int {
	for p.parent[x] != 0 {
		p.splaystep(x)
	}

	return x
}

// FindPath splays u to the root of its path and returns the new root, the
// path's canonical element.
func (p *Pathset) FindPath(u int) int {
	adt.AssertValid(&p.Base, u, "pathset")

	return p.splay(u)
}

// FindTail returns the last node (by in-order position) of path p, splaying
// it to the root.
func (p *Pathset) FindTail(path int) int {
	adt.AssertValid(&p.Base, path, "pathset")
	x := path
	for p.right[x] != 0 {
		x = p.right[x]
	}

	return p.splay(x)
}

// FindPathCost returns the node of minimum true cost in path (rightmost
// among ties) and its true cost, splaying that node to the root. path must
// be a root.
func (p *Pathset) FindPathCost(path int) (node int, cost int64) {
	adt.AssertValid(&p.Base, path, "pathset")
	adt.Assert(p.parent[path] == 0, "pathset: FindPathCost requires a root")

	cost = p.dmin[path]
	x := path
	for {
		if p.right[x] != 0 && p.dmin[p.right[x]] == 0 {
			x = p.right[x]
			continue
		}
		if p.dcost[x] == 0 {
			break
		}
		x = p.left[x]
	}

	return p.splay(x), cost
}

// AddPathCost adds c to the true cost of every node in path. path must be a
// root.
func (p *Pathset) AddPathCost(path int, c int64) {
	adt.AssertValid(&p.Base, path, "pathset")
	adt.Assert(p.parent[path] == 0, "pathset: AddPathCost requires a root")
	p.dmin[path] += c
}

// Split splays u to the root of its path, detaches it, and returns its left
// and right subtrees as two independent paths.
func (p *Pathset) Split(u int) (p1, p2 int) {
	adt.AssertValid(&p.Base, u, "pathset")
	p.splay(u)

	p1, p2 = p.left[u], p.right[u]
	oldDminU := p.dmin[u]
	trueCostU := p.dcost[u] + oldDminU

	if p1 != 0 {
		p.dmin[p1] += oldDminU
		p.parent[p1] = 0
	}
	if p2 != 0 {
		p.dmin[p2] += oldDminU
		p.parent[p2] = 0
	}
	p.left[u], p.right[u] = 0, 0
	p.dcost[u] = 0
	p.dmin[u] = trueCostU

	return p1, p2
}

// Join makes singleton u the root of a path with p1 and p2 as its left and
// right subtrees (the nodes of p1 must precede u, and u must precede the
// nodes of p2, in the combined path's in-order sequence) and returns u.
func (p *Pathset) Join(p1, u, p2 int) int {
	adt.AssertValid(&p.Base, u, "pathset")
	adt.Assert(p.left[u] == 0 && p.right[u] == 0 && p.parent[u] == 0,
		"pathset: Join requires a singleton node")

	p1Rel, p2Rel := int64(noChild), int64(noChild)
	if p1 != 0 {
		p1Rel = p.dmin[p1]
	}
	if p2 != 0 {
		p2Rel = p.dmin[p2]
	}
	newMin := minOf(p.dmin[u], p1Rel, p2Rel)

	p.dcost[u] = p.dmin[u] - newMin
	if p1 != 0 {
		p.dmin[p1] = p1Rel - newMin
		p.parent[p1] = u
	}
	if p2 != 0 {
		p.dmin[p2] = p2Rel - newMin
		p.parent[p2] = u
	}
	p.dmin[u] = newMin
	p.left[u], p.right[u] = p1, p2

	return u
}
