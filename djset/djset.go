package djset

import "github.com/katalvlaran/selfadjust/adt"

// Djset maintains a partition of 1..n into disjoint sets identified by their
// canonical (root) element. The zero value is not usable; construct with
// New.
type Djset struct {
	adt.Base
	parent []int
	rank   []int
}

// New returns a Djset over 1..n with every index in its own singleton set.
func New(n int) *Djset {
	d := &Djset{Base: adt.NewBase(n)}
	d.makeSpace()
	d.Clear()

	return d
}

func (d *Djset) makeSpace() {
	size := d.N() + 1
	d.parent = make([]int, size)
	d.rank = make([]int, size)
}

// Clear resets every index to a singleton set of rank 0.
func (d *Djset) Clear() {
	for i := 1; i <= d.N(); i++ {
		d.parent[i] = i
		d.rank[i] = 0
	}
}

// ClearOne resets x, which must already be a singleton set (its own
// canonical element with rank 0), back to that same state. It exists for
// callers that recycle one isolated class at a time and must not be used on
// a node that is still linked to others; doing so would strand those other
// nodes' path-compressed parent pointers.
func (d *Djset) ClearOne(x int) {
	adt.AssertValid(&d.Base, x, "djset")
	adt.Assert(d.parent[x] == x && d.rank[x] == 0, "djset: ClearOne requires an isolated singleton")
	d.parent[x] = x
	d.rank[x] = 0
}

// Resize discards all contents and rebuilds the structure for capacity n.
func (d *Djset) Resize(n int) {
	d.SetN(n)
	d.makeSpace()
	d.Clear()
}

// Expand grows capacity to n, preserving existing set membership. No-op if
// n <= N().
func (d *Djset) Expand(n int) {
	if n <= d.N() {
		return
	}
	oldN := d.N()
	oldParent, oldRank := d.parent, d.rank
	d.SetN(n)
	d.makeSpace()
	for i := 1; i <= oldN; i++ {
		d.parent[i] = oldParent[i]
		d.rank[i] = oldRank[i]
	}
	for i := oldN + 1; i <= n; i++ {
		d.parent[i] = i
		d.rank[i] = 0
	}
}

// Find returns the canonical element of x's set, compressing the path it
// walks so every visited node becomes a direct child of the root.
func (d *Djset) Find(x int) int {
	adt.AssertValid(&d.Base, x, "djset")

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Link unites the two sets named by canonical elements a and b via union by
// rank and returns the canonical element of the merged set. a and b must
// both already be canonical elements of distinct sets; callers normally
// pass Find(x) and Find(y).
func (d *Djset) Link(a, b int) int {
	adt.AssertValid(&d.Base, a, "djset")
	adt.AssertValid(&d.Base, b, "djset")
	adt.Assert(d.parent[a] == a, "djset: Link requires a canonical element")
	adt.Assert(d.parent[b] == b, "djset: Link requires a canonical element")
	adt.Assert(a != b, "djset: Link requires distinct sets")

	switch {
	case d.rank[a] < d.rank[b]:
		d.parent[a] = b
		return b
	case d.rank[a] > d.rank[b]:
		d.parent[b] = a
		return a
	default:
		d.parent[b] = a
		d.rank[a]++
		return a
	}
}

// Rank returns the rank of x (meaningful only while x remains a canonical
// element), mainly for diagnostics and tests.
func (d *Djset) Rank(x int) int {
	adt.AssertValid(&d.Base, x, "djset")

	return d.rank[x]
}
