package treemap

import (
	"math"

	"github.com/katalvlaran/selfadjust/listpair"
	"github.com/katalvlaran/selfadjust/sasets"
)

// UndefVal is returned by Get for a key that is not present.
const UndefVal = math.MinInt32

// Treemap is an ordered map from uint64 keys to int64 values, keyed access
// going through a splay tree (package sasets) so that repeatedly-accessed
// keys stay cheap to reach. The zero value is not usable; construct with
// New.
type Treemap struct {
	tree *sasets.Sasets
	free *listpair.ListPair // "in" = node index in use, "out" = free
	val  []int64
	root int
}

// New returns an empty Treemap with capacity for n entries.
func New(n int) *Treemap {
	return &Treemap{
		tree: sasets.New(n),
		free: listpair.NewAllOut(n),
		val:  make([]int64, n+1),
	}
}

// Clear empties the map, keeping its capacity.
func (m *Treemap) Clear() {
	m.tree.Clear()
	m.free.Clear()
	m.root = 0
}

// Put stores val under key, replacing any value already stored for that
// key. It returns false, refusing the insertion, if key is new and no free
// node slot remains.
func (m *Treemap) Put(key uint64, val int64) bool {
	newRoot, found := m.tree.Access(key, m.root)
	m.root = newRoot
	if found != 0 {
		m.val[found] = val

		return true
	}

	idx := m.free.FirstOut()
	if idx == 0 {
		return false
	}
	m.free.Swap(idx)
	m.tree.SetKey(idx, key)
	m.val[idx] = val
	m.root, _ = m.tree.Insert(idx, m.root)

	return true
}

// Get returns the value stored for key, or UndefVal if key is absent.
func (m *Treemap) Get(key uint64) int64 {
	newRoot, found := m.tree.Access(key, m.root)
	m.root = newRoot
	if found == 0 {
		return UndefVal
	}

	return m.val[found]
}

// Remove deletes key from the map, if present, and returns true if it was
// present.
func (m *Treemap) Remove(key uint64) bool {
	newRoot, found := m.tree.Access(key, m.root)
	m.root = newRoot
	if found == 0 {
		return false
	}
	m.root = m.tree.Remove(found, m.root)
	m.free.Swap(found)

	return true
}
