// Package lheap implements a collection of leftist heaps over 1..n.
// A heap is identified by the index of its current root,
// which Meld/Insert/DeleteMin return as they restructure it.
//
// Meld recurses down the right spine (the only spine a
// leftist tree guarantees is short) swapping children to keep
// rank(right) <= rank(left), which is what bounds that spine at O(log n)
// and makes Meld, Insert, and DeleteMin all run in O(log n) worst case.
package lheap
