package adt

import (
	"fmt"
)

// Base is embedded by every index-based structure in this module. It owns
// nothing but the capacity n; concrete structures own their own parallel
// arrays and are responsible for growing/clearing them in lock-step with
// calls to Resize/Expand.
type Base struct {
	n int // valid indexes are 1..n; 0 is the reserved "none" sentinel
}

// NewBase returns a Base with capacity n. n must be >= 0.
func NewBase(n int) Base {
	if n < 0 {
		panic(fmt.Sprintf("adt: negative capacity %d", n))
	}

	return Base{n: n}
}

// N returns the current capacity (the largest valid index).
func (b *Base) N() int { return b.n }

// Valid reports whether i is a legal index, i.e. 1 <= i <= N().
// 0 is never valid as an element handle (it is the "none" sentinel) and is
// rejected here even though callers often compare against 0 directly before
// calling Valid.
func (b *Base) Valid(i int) bool { return i >= 1 && i <= b.n }

// SetN updates the stored capacity. It does not touch any of the caller's
// parallel arrays; callers use it as the final step of their own
// Resize/Expand implementations once their storage has been reallocated.
func (b *Base) SetN(n int) {
	if n < 0 {
		panic(fmt.Sprintf("adt: negative capacity %d", n))
	}
	b.n = n
}

// Assert panics with msg if cond is false. Used throughout this module for
// precondition violations: invalid handles, operations on a
// node that belongs to a different container, calling link on a non-root,
// and similar programmer errors that must abort rather than return an error.
func Assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

// AssertValid panics unless i is a valid index of b, naming the structure
// in the panic message for easier debugging.
func AssertValid(b *Base, i int, structName string) {
	if !b.Valid(i) {
		panic(fmt.Sprintf("%s: invalid index %d (n=%d)", structName, i, b.n))
	}
}

// IndexString formats an index for display: 0 prints as "-", any other
// index prints as its decimal value.
func IndexString(i int) string {
	if i == 0 {
		return "-"
	}

	return fmt.Sprintf("%d", i)
}
