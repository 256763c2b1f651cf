package seqs

import (
	"iter"

	"lockstep/cursors"
)

// Take yields at most the first n elements of [first, last).
func Take[C cursors.Cursor[C, R], R any](first, last C, n int) iter.Seq[R] {
	return func(yield func(R) bool) {
		if n <= 0 {
			return
		}
		if first.Category() == cursors.RandomAccess {
			for v := range cursors.All(first, drop(first, last, n)) {
				if !yield(v) {
					return
				}
			}
			return
		}
		taken := 0
		for c := first; taken < n && !c.Equal(last); c = c.Next() {
			if !yield(c.Get()) {
				return
			}
			taken++
		}
	}
}

// Skip drops the first n elements of [first, last) and yields the rest.
func Skip[C cursors.Cursor[C, R], R any](first, last C, n int) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range cursors.All(drop(first, last, n), last) {
			if !yield(v) {
				return
			}
		}
	}
}

// drop moves first forward by n, stopping at last.
// Random access cursors jump; everything else steps.
func drop[C cursors.Forwarder[C]](first, last C, n int) C {
	if n <= 0 {
		return first
	}
	if first.Category() == cursors.RandomAccess {
		return cursors.Advance(first, min(n, cursors.Distance(first, last)))
	}
	for ; n > 0 && !first.Equal(last); n-- {
		first = first.Next()
	}
	return first
}
