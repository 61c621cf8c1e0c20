package dlist_test

import (
	"testing"

	"github.com/katalvlaran/selfadjust/dlist"
	"github.com/stretchr/testify/assert"
)

func collect(d *dlist.Dlist, head int) []int {
	var out []int
	for x := d.First(head); x != 0; x = d.Next(x) {
		out = append(out, x)
	}

	return out
}

func TestDlist_SingletonsByDefault(t *testing.T) {
	d := dlist.New(5)
	for i := 1; i <= 5; i++ {
		assert.Equal(t, []int{i}, collect(d, i))
	}
}

func TestDlist_JoinAndTraverse(t *testing.T) {
	d := dlist.New(5)
	id := d.Join(1, 2)
	id = d.Join(id, 3)
	assert.Equal(t, []int{1, 2, 3}, collect(d, id))
}

func TestDlist_JoinWithEmpty(t *testing.T) {
	d := dlist.New(3)
	assert.Equal(t, 2, d.Join(0, 2))
	assert.Equal(t, 1, d.Join(1, 0))
}

func TestDlist_Remove(t *testing.T) {
	d := dlist.New(4)
	id := d.Join(1, 2)
	id = d.Join(id, 3)
	id = d.Join(id, 4)
	d.Remove(2)
	assert.Equal(t, []int{1, 3, 4}, collect(d, id))
	assert.Equal(t, []int{2}, collect(d, 2))
}

func TestDlist_RemoveHeadShiftsHead(t *testing.T) {
	d := dlist.New(3)
	id := d.Join(1, 2)
	id = d.Join(id, 3)
	d.Remove(id) // removes 1, the head
	assert.Equal(t, []int{2, 3}, collect(d, 2))
}

func TestDlist_Expand(t *testing.T) {
	d := dlist.New(2)
	id := d.Join(1, 2)
	d.Expand(4)
	assert.Equal(t, []int{1, 2}, collect(d, id))
	assert.Equal(t, []int{3}, collect(d, 3))
	assert.Equal(t, []int{4}, collect(d, 4))
}
