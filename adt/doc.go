// Package adt provides the minimal shared foundation that every index-based
// data structure in this module builds on: validated integer handles in the
// closed interval [1,n], with 0 reserved as the universal "no such element"
// sentinel.
//
// The index-based structures (dlist, listpair, djset, djsetflt, sasets,
// pathset, dtrees, lheap, llheap, fheap, dheap) embed a Base and get N,
// Valid and SetN from it, and use the panic-based Assert/AssertValid helpers
// for precondition violations: invalid handles and similar precondition
// violations are programmer errors, not recoverable errors. Each structure
// defines its own Resize and Expand; hashmap and treemap do not embed a Base.
//
// Growth contract: Expand(n') with n' > N() preserves logical contents and
// every previously issued index remains valid; Resize discards contents.
package adt
