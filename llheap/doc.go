// Package llheap implements the lazy leftist heap with implicit deletion.
// It is the same leftist-heap shape as package lheap, but
// deletion is driven entirely by a caller-supplied predicate rather than an
// explicit DeleteMin-style splice: Lmeld just drops a "dummy" node on top of
// two heaps in O(1), and the real work of discarding deleted nodes and
// rebuilding a valid leftist tree happens lazily, the next time FindMin or
// Insert actually needs a usable root.
//
// This package carries its own small leftist-meld primitive rather than
// embedding package lheap: the two structures differ in exactly the places
// sharing would have to special-case (dummy-node recycling inside purge,
// the deleted-item predicate threaded through every walk). The predicate
// itself is an explicit function value captured at construction time (see
// New) rather than any form of shared mutable state.
package llheap
