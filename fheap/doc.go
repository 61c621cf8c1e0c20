// Package fheap implements a collection of Fibonacci heaps over 1..n.
// A heap is identified by the index of its current
// minimum-key root. Root lists and per-node child lists are circular
// doubly-linked sibling rings, kept as plain pred/succ index arrays rather
// than through package dlist (whose Join/First model named-head partitions,
// not the arbitrary-entry rings a Fibonacci heap needs).
//
// Meld and Insert just splice root rings in O(1); DecreaseKey cuts a
// violating node free and cascades through marked ancestors; DeleteMin does
// the deferred work, consolidating the root ring through a rank-indexed
// bucket table until no two roots share a rank.
package fheap
