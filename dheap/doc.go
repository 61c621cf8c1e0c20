// Package dheap implements an array-based d-ary heap and a
// delta-shifted variant that supports adding a constant to every key in
// O(1).
//
// HeapD keeps the items in a positional array h with an inverse map pos, so
// membership tests and in-place key changes are O(1) lookups followed by a
// single sift. HeapDD layers an offset delta on top: reported keys are
// stored keys plus delta, comparisons use stored keys only, so AddToKeys
// never has to touch an item. Keys are int64, matching every other heap in
// this module.
package dheap
