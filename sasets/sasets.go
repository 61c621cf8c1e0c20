package sasets

import "github.com/katalvlaran/selfadjust/adt"

// Sasets holds a partition of 1..n into splay-tree search trees. A tree is
// identified by the index of its current root, which changes as splaying
// restructures it; callers must track the root returned by each operation.
// The zero value is not usable; construct with New.
type Sasets struct {
	adt.Base
	left   []int
	right  []int
	parent []int
	key    []uint64
}

// New returns a Sasets over 1..n with every index a singleton tree of key 0.
func New(n int) *Sasets {
	s := &Sasets{Base: adt.NewBase(n)}
	s.makeSpace()
	s.Clear()

	return s
}

func (s *Sasets) makeSpace() {
	size := s.N() + 1
	s.left = make([]int, size)
	s.right = make([]int, size)
	s.parent = make([]int, size)
	s.key = make([]uint64, size)
}

// Clear resets every index to a singleton tree of key 0.
func (s *Sasets) Clear() {
	for i := 1; i <= s.N(); i++ {
		s.left[i] = 0
		s.right[i] = 0
		s.parent[i] = 0
		s.key[i] = 0
	}
}

// Resize discards all contents and rebuilds the structure for capacity n.
func (s *Sasets) Resize(n int) {
	s.SetN(n)
	s.makeSpace()
	s.Clear()
}

// Expand grows capacity to n, preserving existing trees. No-op if n <= N().
func (s *Sasets) Expand(n int) {
	if n <= s.N() {
		return
	}
	oldN := s.N()
	oldLeft, oldRight, oldParent, oldKey := s.left, s.right, s.parent, s.key
	s.SetN(n)
	s.makeSpace()
	for i := 1; i <= oldN; i++ {
		s.left[i] = oldLeft[i]
		s.right[i] = oldRight[i]
		s.parent[i] = oldParent[i]
		s.key[i] = oldKey[i]
	}
}

// Key returns the key assigned to node i.
func (s *Sasets) Key(i int) uint64 {
	adt.AssertValid(&s.Base, i, "sasets")

	return s.key[i]
}

// SetKey assigns k as i's key. i must currently be an isolated singleton
// node (not yet inserted into any tree).
func (s *Sasets) SetKey(i int, k uint64) {
	adt.AssertValid(&s.Base, i, "sasets")
	adt.Assert(s.left[i] == 0 && s.right[i] == 0 && s.parent[i] == 0,
		"sasets: SetKey requires an isolated node")
	s.key[i] = k
}

// rotate performs a single splay-tree rotation that promotes x over its
// parent, preserving in-order key sequence.
func (s *Sasets) rotate(x int) {
	y := s.parent[x]
	if y == 0 {
		return
	}
	z := s.parent[y]
	if s.left[y] == x {
		s.left[y] = s.right[x]
		if s.right[x] != 0 {
			s.parent[s.right[x]] = y
		}
		s.right[x] = y
	} else {
		s.right[y] = s.left[x]
		if s.left[x] != 0 {
			s.parent[s.left[x]] = y
		}
		s.left[x] = y
	}
	s.parent[x] = z
	if z != 0 {
		if s.left[z] == y {
			s.left[z] = x
		} else {
			s.right[z] = x
		}
	}
	s.parent[y] = x
}

// splaystep performs one step of the splay operation on x: a zig if x's
// parent is the root, a zig-zig if x and its parent are both left (or both
// right) children, or a zig-zag otherwise.
func (s *Sasets) splaystep(x int) {
	y := s.parent[x]
	if y == 0 {
		return
	}
	z := s.parent[y]
	if z != 0 {
		if x == s.left[s.left[z]] || x == s.right[s.right[z]] {
			s.rotate(y)
		} else {
			s.rotate(x)
		}
	}
	s.rotate(x)
}

// splay moves x to the root of its tree via repeated splaystep and returns
// the new root (x itself).
func (s *Sasets) splay(x int) int {
	for s.parent[x] != 0 {
		s.splaystep(x)
	}

	return x
}

// Find splays x to the root of its tree and returns the new root.
func (s *Sasets) Find(x int) int {
	adt.AssertValid(&s.Base, x, "sasets")

	return s.splay(x)
}

// FindRoot returns the root of x's tree without restructuring it.
func (s *Sasets) FindRoot(x int) int {
	adt.AssertValid(&s.Base, x, "sasets")
	for s.parent[x] != 0 {
		x = s.parent[x]
	}

	return x
}

// Access searches the tree rooted at t for the item with key k, splays the
// last node visited, and returns the new root plus the matching node index
// (or 0 if no item has that key). t must be 0 (empty tree) only when the
// caller does not expect a match; a non-zero t must be a root.
func (s *Sasets) Access(k uint64, t int) (newRoot, found int) {
	if t == 0 {
		return 0, 0
	}
	adt.AssertValid(&s.Base, t, "sasets")

	x := t
	for {
		if k < s.key[x] && s.left[x] != 0 {
			x = s.left[x]
		} else if k > s.key[x] && s.right[x] != 0 {
			x = s.right[x]
		} else {
			break
		}
	}
	newRoot = s.splay(x)
	if s.key[x] == k {
		found = x
	}

	return newRoot, found
}

// Insert inserts singleton node i (its key must already be set via SetKey)
// into the tree rooted at t and returns the new root. If a node with i's
// key already exists, that node is splayed to the root instead and ok is
// false.
func (s *Sasets) Insert(i, t int) (newRoot int, ok bool) {
	adt.AssertValid(&s.Base, i, "sasets")
	if t == 0 {
		return i, true
	}
	adt.AssertValid(&s.Base, t, "sasets")
	adt.Assert(s.parent[t] == 0, "sasets: Insert requires a root")

	x := t
	for {
		if s.key[i] < s.key[x] && s.left[x] != 0 {
			x = s.left[x]
		} else if s.key[i] > s.key[x] && s.right[x] != 0 {
			x = s.right[x]
		} else {
			break
		}
	}
	switch {
	case s.key[i] < s.key[x]:
		s.left[x] = i
	case s.key[i] > s.key[x]:
		s.right[x] = i
	default:
		return s.splay(x), false
	}
	s.parent[i] = x

	return s.splay(i), true
}

// swap exchanges the tree positions of nodes i and j, relabeling every
// pointer that referenced either so that j occupies i's old slot and i
// occupies j's old slot. Used by Remove to relocate the node being deleted
// next to its in-order predecessor, which has at most one child.
func (s *Sasets) swap(i, j int) {
	pi, li, ri := s.parent[i], s.left[i], s.right[i]
	pj, lj, rj := s.parent[j], s.left[j], s.right[j]

	newParentJ, newLeftJ, newRightJ := pi, li, ri
	if newLeftJ == j {
		newLeftJ = i
	}
	if newRightJ == j {
		newRightJ = i
	}

	newParentI, newLeftI, newRightI := pj, lj, rj
	if newParentI == i {
		newParentI = j
	}
	if newLeftI == i {
		newLeftI = j
	}
	if newRightI == i {
		newRightI = j
	}

	if pi != 0 && pi != j {
		if s.left[pi] == i {
			s.left[pi] = j
		} else {
			s.right[pi] = j
		}
	}
	if pj != 0 && pj != i {
		if s.left[pj] == j {
			s.left[pj] = i
		} else {
			s.right[pj] = i
		}
	}
	if li != 0 && li != j {
		s.parent[li] = j
	}
	if ri != 0 && ri != j {
		s.parent[ri] = j
	}
	if lj != 0 && lj != i {
		s.parent[lj] = i
	}
	if rj != 0 && rj != i {
		s.parent[rj] = i
	}

	s.parent[j], s.left[j], s.right[j] = newParentJ, newLeftJ, newRightJ
	s.parent[i], s.left[i], s.right[i] = newParentI, newLeftI, newRightI
}

// Remove deletes i from the tree rooted at t and returns the new root. If i
// has two children, it is first swapped with its in-order predecessor so
// that the node actually spliced out has at most one child; the parent of
// the spliced position is then splayed to the root.
func (s *Sasets) Remove(i, t int) (newRoot int) {
	adt.AssertValid(&s.Base, i, "sasets")
	adt.AssertValid(&s.Base, t, "sasets")
	adt.Assert(s.parent[t] == 0, "sasets: Remove requires a root")

	if s.left[i] != 0 && s.right[i] != 0 {
		j := s.left[i]
		for s.right[j] != 0 {
			j = s.right[j]
		}
		s.swap(i, j)
	}

	var child int
	if s.left[i] != 0 {
		child = s.left[i]
	} else {
		child = s.right[i]
	}
	if child != 0 {
		s.parent[child] = s.parent[i]
	}

	if s.parent[i] != 0 {
		p := s.parent[i]
		if s.left[p] == i {
			s.left[p] = child
		} else {
			s.right[p] = child
		}
		newRoot = s.splay(p)
	} else {
		newRoot = child
	}
	s.parent[i], s.left[i], s.right[i] = 0, 0, 0

	return newRoot
}

// Split splays x to the root of its tree and returns its left and right
// subtrees (t1, t2) as two independent trees, with x itself detached (key
// retained, structurally a singleton).
func (s *Sasets) Split(x int) (t1, t2 int) {
	adt.AssertValid(&s.Base, x, "sasets")
	s.splay(x)
	t1, t2 = s.left[x], s.right[x]
	s.left[x], s.right[x], s.parent[x] = 0, 0, 0
	if t1 != 0 {
		s.parent[t1] = 0
	}
	if t2 != 0 {
		s.parent[t2] = 0
	}

	return t1, t2
}

// Join makes singleton x the root of a tree with t1 and t2 as its left and
// right subtrees, and returns x. The caller must guarantee every key in t1
// is less than key(x), which in turn is less than every key in t2.
func (s *Sasets) Join(t1, x, t2 int) int {
	adt.AssertValid(&s.Base, x, "sasets")
	adt.Assert(s.left[x] == 0 && s.right[x] == 0 && s.parent[x] == 0,
		"sasets: Join requires a singleton node")

	s.left[x], s.right[x] = t1, t2
	if t1 != 0 {
		s.parent[t1] = x
	}
	if t2 != 0 {
		s.parent[t2] = x
	}

	return x
}

// First returns the leftmost (minimum-key) node of the tree rooted at t, or
// 0 if t is 0.
func (s *Sasets) First(t int) int {
	if t == 0 {
		return 0
	}
	adt.AssertValid(&s.Base, t, "sasets")
	for s.left[t] != 0 {
		t = s.left[t]
	}

	return t
}

// Last returns the rightmost (maximum-key) node of the tree rooted at t, or
// 0 if t is 0.
func (s *Sasets) Last(t int) int {
	if t == 0 {
		return 0
	}
	adt.AssertValid(&s.Base, t, "sasets")
	for s.right[t] != 0 {
		t = s.right[t]
	}

	return t
}

// Next returns x's in-order successor within its tree, or 0 if x is last.
func (s *Sasets) Next(x int) int {
	adt.AssertValid(&s.Base, x, "sasets")
	if s.right[x] != 0 {
		return s.First(s.right[x])
	}
	y := s.parent[x]
	for y != 0 && x == s.right[y] {
		x, y = y, s.parent[y]
	}

	return y
}

// Prev returns x's in-order predecessor within its tree, or 0 if x is
// first.
func (s *Sasets) Prev(x int) int {
	adt.AssertValid(&s.Base, x, "sasets")
	if s.left[x] != 0 {
		return s.Last(s.left[x])
	}
	y := s.parent[x]
	for y != 0 && x == s.left[y] {
		x, y = y, s.parent[y]
	}

	return y
}
