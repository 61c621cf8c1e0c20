// Package djset maintains a partition of 1..n into disjoint sets, also known
// as union-find. Each set is named by one of its members, the
// "canonical element," which Find returns after walking up the set's tree
// and compressing the path it walked.
//
// Union by rank keeps trees shallow, and path compression flattens them
// further on every Find, giving amortized-inverse-Ackermann operations.
// prim_kruskal.Kruskal builds its component tracking on this package.
package djset
