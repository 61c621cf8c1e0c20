// Package pathset represents a collection of vertex-disjoint paths as splay
// trees with relative (delta-encoded) costs, the structure Dtrees exposes as
// "preferred paths." A path's canonical element is the root of its splay
// tree, which changes as operations restructure it.
//
// Each node stores two deltas, dcost and dmin, instead of an absolute
// cost: dmin is the node's subtree minimum relative to its parent's, and
// dcost is the node's own cost relative to that minimum. Rotations rewrite
// only the deltas of the two rotated nodes and of their children, so
// every true cost survives restructuring, and a whole-path cost shift is a
// single update at the root. Each path also carries one caller-owned
// integer value that relocates with the root whenever splaying changes a
// path's canonical element; dtrees keeps its successor links there.
package pathset
