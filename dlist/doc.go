// Package dlist partitions the integers 1..n into named circular
// doubly-linked lists. Every element belongs to exactly one
// list at a time; Join and Remove run in O(1) by splicing the underlying
// circular chains, never by walking a list's members.
//
// A list is identified externally by its head element: First returns it,
// Join returns the head of the combined list, and 0 denotes the empty list.
// Internally each list is a closed circular chain (the chain's last element
// links back to its head) but Next presents it as a conventional
// null-terminated sequence: it yields 0 once the caller reaches the head
// again, using a per-node "is this the current head" tag so that neither
// Join nor Remove ever needs to revisit every member of a list.
package dlist
