package djset_test

import (
	"testing"

	"github.com/katalvlaran/selfadjust/djset"
	"github.com/stretchr/testify/assert"
)

func TestDjset_SingletonsByDefault(t *testing.T) {
	d := djset.New(5)
	for i := 1; i <= 5; i++ {
		assert.Equal(t, i, d.Find(i))
	}
}

func TestDjset_LinkUnitesSets(t *testing.T) {
	d := djset.New(4)
	root := d.Link(d.Find(1), d.Find(2))
	assert.Equal(t, d.Find(1), d.Find(2))
	assert.Equal(t, root, d.Find(1))
}

func TestDjset_LinkByRank(t *testing.T) {
	d := djset.New(4)
	// Build a rank-1 tree over {1,2}.
	r := d.Link(d.Find(1), d.Find(2))
	assert.Equal(t, 1, d.Rank(r))

	// Linking a rank-0 singleton under a rank-1 root keeps the rank-1 root on top.
	r2 := d.Link(r, d.Find(3))
	assert.Equal(t, r, r2)
	assert.Equal(t, d.Find(3), r)
}

func TestDjset_TransitiveUnion(t *testing.T) {
	d := djset.New(5)
	d.Link(d.Find(1), d.Find(2))
	d.Link(d.Find(2), d.Find(3))
	assert.Equal(t, d.Find(1), d.Find(3))
	assert.NotEqual(t, d.Find(1), d.Find(4))
}

func TestDjset_FindCompressesPath(t *testing.T) {
	d := djset.New(5)
	d.Link(d.Find(1), d.Find(2))
	d.Link(d.Find(2), d.Find(3))
	d.Link(d.Find(3), d.Find(4))
	root := d.Find(4)
	// after compression every member points straight at root
	assert.Equal(t, root, d.Find(1))
	assert.Equal(t, root, d.Find(2))
	assert.Equal(t, root, d.Find(3))
}

func TestDjset_ClearOne(t *testing.T) {
	d := djset.New(3)
	d.ClearOne(3) // 3 is already an isolated singleton
	assert.Equal(t, 3, d.Find(3))
}

func TestDjset_Expand(t *testing.T) {
	d := djset.New(2)
	d.Link(d.Find(1), d.Find(2))
	d.Expand(4)
	assert.Equal(t, d.Find(1), d.Find(2))
	assert.Equal(t, 3, d.Find(3))
	assert.Equal(t, 4, d.Find(4))
}

func TestDjset_Clear(t *testing.T) {
	d := djset.New(3)
	d.Link(d.Find(1), d.Find(2))
	d.Clear()
	for i := 1; i <= 3; i++ {
		assert.Equal(t, i, d.Find(i))
	}
}
