package dtrees_test

import (
	"testing"

	"github.com/katalvlaran/selfadjust/dtrees"
	"github.com/stretchr/testify/assert"
)

// buildChain links 5 -> 4 -> 3 -> 2 -> 1 (1 is the root), all costs 0.
func buildChain(d *dtrees.Dtrees) {
	for i := 1; i <= 5; i++ {
		d.SetCost(i, 0)
	}
	d.Link(5, 4)
	d.Link(4, 3)
	d.Link(3, 2)
	d.Link(2, 1)
}

func TestDtrees_SingletonIsOwnRoot(t *testing.T) {
	d := dtrees.New(3)
	d.SetCost(1, 5)
	assert.Equal(t, 1, d.FindRoot(1))
	node, cost := d.FindCost(1)
	assert.Equal(t, 1, node)
	assert.Equal(t, int64(5), cost)
}

func TestDtrees_LinkBuildsChainRoot(t *testing.T) {
	d := dtrees.New(5)
	buildChain(d)

	for i := 1; i <= 5; i++ {
		assert.Equal(t, 1, d.FindRoot(i), "node %d", i)
	}
}

func TestDtrees_Parent(t *testing.T) {
	d := dtrees.New(5)
	buildChain(d)

	assert.Equal(t, 4, d.Parent(5))
	assert.Equal(t, 3, d.Parent(4))
	assert.Equal(t, 2, d.Parent(3))
	assert.Equal(t, 1, d.Parent(2))
	assert.Equal(t, 0, d.Parent(1))

	d.Cut(3)
	assert.Equal(t, 0, d.Parent(3))
	assert.Equal(t, 4, d.Parent(5))
}

// TestDtrees_PathCostScenario drives five singletons linked into a chain,
// two addcost calls, then findcost/cut/findroot verifying the forest splits
// and that every node's cost survives the split unchanged.
func TestDtrees_PathCostScenario(t *testing.T) {
	d := dtrees.New(5)
	buildChain(d)

	d.AddCost(5, 10) // nodes 5,4,3,2,1
	d.AddCost(3, 7)  // nodes 3,2,1

	want := map[int]int64{5: 10, 4: 10, 3: 17, 2: 17, 1: 17}
	for u, c := range want {
		assert.Equal(t, c, d.NodeCost(u), "node %d", u)
	}

	// Minimum on the path 5..1 is 10, shared by 5 and 4; the tie goes to
	// the node closest to the root.
	node, cost := d.FindCost(5)
	assert.Equal(t, 4, node)
	assert.Equal(t, int64(10), cost)

	d.Cut(3)

	assert.Equal(t, 3, d.FindRoot(5))
	assert.Equal(t, 1, d.FindRoot(2))

	for u, c := range want {
		assert.Equal(t, c, d.NodeCost(u), "node %d after cut", u)
	}

	node, cost = d.FindCost(5)
	assert.Equal(t, 4, node)
	assert.Equal(t, int64(10), cost)

	node, cost = d.FindCost(2)
	assert.Equal(t, 1, node)
	assert.Equal(t, int64(17), cost)
}

func TestDtrees_AddCostAppliesThroughRoot(t *testing.T) {
	d := dtrees.New(3)
	for i := 1; i <= 3; i++ {
		d.SetCost(i, 0)
	}
	d.Link(3, 2)
	d.Link(2, 1)

	d.AddCost(3, 4)
	assert.Equal(t, int64(4), d.NodeCost(3))
	assert.Equal(t, int64(4), d.NodeCost(2))
	assert.Equal(t, int64(4), d.NodeCost(1))

	node, cost := d.FindCost(1)
	assert.Equal(t, 1, node)
	assert.Equal(t, int64(4), cost)
}

// TestDtrees_PreferredPathSwitch makes a star so that exposing one leaf
// bumps the other leaf's path off the root, then checks both costs and the
// findcost result survive the switch.
func TestDtrees_PreferredPathSwitch(t *testing.T) {
	d := dtrees.New(3)
	for i := 1; i <= 3; i++ {
		d.SetCost(i, 0)
	}
	d.Link(2, 1)
	d.Link(3, 1)

	d.AddCost(2, 5) // nodes 2 and 1

	assert.Equal(t, int64(5), d.NodeCost(2))
	assert.Equal(t, int64(5), d.NodeCost(1))
	assert.Equal(t, int64(0), d.NodeCost(3))

	node, cost := d.FindCost(3)
	assert.Equal(t, 3, node)
	assert.Equal(t, int64(0), cost)

	assert.Equal(t, 1, d.FindRoot(2))
	assert.Equal(t, 1, d.FindRoot(3))
}

func TestDtrees_LinkCutRoundTrip(t *testing.T) {
	d := dtrees.New(4)
	for i := 1; i <= 4; i++ {
		d.SetCost(i, int64(i))
	}
	d.Link(2, 1)
	d.Link(3, 2)
	assert.Equal(t, 1, d.FindRoot(3))

	d.Cut(2)
	assert.Equal(t, 2, d.FindRoot(3))
	assert.Equal(t, 1, d.FindRoot(1))
	for i := 1; i <= 4; i++ {
		assert.Equal(t, int64(i), d.NodeCost(i), "node %d", i)
	}

	d.Link(2, 1) // relink restores the original tree
	assert.Equal(t, 1, d.FindRoot(3))
}

func TestDtrees_CutRequiresNonRoot(t *testing.T) {
	d := dtrees.New(2)
	assert.Panics(t, func() { d.Cut(1) })
}

func TestDtrees_LinkRequiresDistinctTrees(t *testing.T) {
	d := dtrees.New(1)
	assert.Panics(t, func() { d.Link(1, 1) })
}

func TestDtrees_LinkRequiresRoot(t *testing.T) {
	d := dtrees.New(3)
	d.Link(3, 2)
	assert.Panics(t, func() { d.Link(3, 1) })
}

func TestDtrees_Expand(t *testing.T) {
	d := dtrees.New(2)
	d.SetCost(1, 1)
	d.SetCost(2, 2)
	d.Link(2, 1)
	d.Expand(3)
	assert.Equal(t, 1, d.FindRoot(2))
	d.SetCost(3, 9)
	node, cost := d.FindCost(3)
	assert.Equal(t, 3, node)
	assert.Equal(t, int64(9), cost)
}
