// Package sasets implements self-adjusting (splay) binary search trees over
// a partition of 1..n. Every access, insert, and remove ends
// by splaying the last node it visited to the root of its tree, giving
// amortized O(log n) operations without storing any balance information.
//
// Removal of a node with two children first exchanges the node's tree
// position with its in-order predecessor, so the node actually spliced out
// always has at most one child; the parent of the spliced position is then
// splayed, keeping the amortized accounting intact.
package sasets
