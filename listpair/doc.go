// Package listpair maintains a partition of 1..n into two complementary
// sides, "in" and "out", with O(1) Swap to move an index
// between sides and O(1) membership tests.
//
// This is the structure behind hashmap's free/used pair-index pool and
// behind treemap's free-node list.
//
// Representation: a single permutation vec[1..n] of the index universe,
// split at a moving boundary so that vec[1..numIn] is the in-set and
// vec[numIn+1..n] is the out-set; loc[x] records x's current position in
// vec. Moving x between sides is a single swap with the element at the
// boundary, never a scan.
package listpair
