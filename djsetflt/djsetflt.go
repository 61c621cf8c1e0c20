package djsetflt

import (
	"github.com/katalvlaran/selfadjust/adt"
	"github.com/katalvlaran/selfadjust/djset"
	"github.com/katalvlaran/selfadjust/dlist"
)

// Djsetflt is a Djset whose classes also support O(class size) enumeration
// of their members. The zero value is not usable; construct with New.
type Djsetflt struct {
	adt.Base
	ds   *djset.Djset
	list *dlist.Dlist
}

// New returns a Djsetflt over 1..n with every index in its own singleton
// class.
func New(n int) *Djsetflt {
	return &Djsetflt{
		Base: adt.NewBase(n),
		ds:   djset.New(n),
		list: dlist.New(n),
	}
}

// Clear resets every index to a singleton class.
func (d *Djsetflt) Clear() {
	d.ds.Clear()
	d.list.Clear()
}

// ClearOne resets x, which must already be an isolated singleton class, back
// to that same state. See Djset.ClearOne for why it cannot be used to peel
// x out of a larger class.
func (d *Djsetflt) ClearOne(x int) {
	d.ds.ClearOne(x)
	d.list.Remove(x)
}

// Resize discards all contents and rebuilds the structure for capacity n.
func (d *Djsetflt) Resize(n int) {
	d.SetN(n)
	d.ds.Resize(n)
	d.list.Resize(n)
}

// Expand grows capacity to n, preserving existing class membership. No-op
// if n <= N().
func (d *Djsetflt) Expand(n int) {
	if n <= d.N() {
		return
	}
	d.SetN(n)
	d.ds.Expand(n)
	d.list.Expand(n)
}

// Find returns the canonical element of x's class.
func (d *Djsetflt) Find(x int) int { return d.ds.Find(x) }

// Link unites the classes named by canonical elements a and b, concatenates
// their member lists, and returns the canonical element of the merged
// class.
func (d *Djsetflt) Link(a, b int) int {
	adt.AssertValid(&d.Base, a, "djsetflt")
	adt.AssertValid(&d.Base, b, "djsetflt")

	merged := d.ds.Link(a, b)
	// dlist.Join returns its first argument as the combined list's head, so
	// the merged canonical element must be passed first to keep each
	// class's list head in sync with its Find/Link-reported root.
	if merged == a {
		d.list.Join(a, b)
	} else {
		d.list.Join(b, a)
	}

	return merged
}

// ClassList enumerates the members of canon's class, which must be the
// canonical element of its class (as returned by Find or Link). O(class
// size).
func (d *Djsetflt) ClassList(canon int) []int {
	adt.AssertValid(&d.Base, canon, "djsetflt")

	var members []int
	for x := d.list.First(canon); x != 0; x = d.list.Next(x) {
		members = append(members, x)
	}

	return members
}
