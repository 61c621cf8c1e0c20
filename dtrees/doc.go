// Package dtrees implements link-cut trees, a forest of rooted trees
// supporting amortized O(log n) root queries, cost queries, cost updates,
// linking, and cutting. Internally each tree is decomposed
// into vertex-disjoint "preferred paths," each represented as a pathset
// splay tree; each path carries a successor pointer to the real parent of
// its topmost node in whichever path lies above it, stored as the
// pathset's per-path value so it survives splay restructuring.
//
// Every public operation first rebuilds the preferred path from its
// argument up to that node's tree root (the expose step): at each ancestor
// reached by a successor link, the stale preferred segment below it is
// bumped out (made non-preferred, re-anchored to that ancestor) and the
// path accumulated so far takes its place. Once a node's whole ancestry
// lies on one path, root queries, path-minimum queries, and path-wide cost
// updates are single pathset operations.
package dtrees
