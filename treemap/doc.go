// Package treemap implements an ordered map keyed on 64-bit integers,
// backed directly by package sasets.
// Put/Get/Remove splay-access the underlying tree by key; a package
// listpair tracks which backing node indexes are free, pairing a single
// splay tree with a free-node pool.
package treemap
