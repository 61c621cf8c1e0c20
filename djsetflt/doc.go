// Package djsetflt extends djset with an enumerable class list:
// every disjoint set also carries a cyclic list of its members, kept
// current by splicing the two joined classes' lists whenever Link merges
// them.
//
// Blossom collapsing and Euler partitions need to walk a whole class, which
// plain union-find cannot do without scanning the universe. Reuses
// selfadjust/djset for the union-by-rank/path-compression core and
// selfadjust/dlist for the per-class member list, rather than reimplementing
// either.
package djsetflt
