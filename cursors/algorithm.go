package cursors

import "iter"

// Distance returns the number of positions from first to last.
//
// Cursors reporting RandomAccess are measured in constant time with Diff.
// Anything else is walked with Next until it equals last, so last must be
// reachable from first.
func Distance[C Forwarder[C]](first, last C) int {
	if first.Category() == RandomAccess {
		if ra, ok := any(last).(interface{ Diff(C) int }); ok {
			return ra.Diff(first)
		}
	}
	n := 0
	for !first.Equal(last) {
		first = first.Next()
		n++
	}
	return n
}

// Advance returns c moved by n positions.
// A negative n requires a cursor with Prev; forward-only cursors panic.
func Advance[C Forwarder[C]](c C, n int) C {
	if c.Category() == RandomAccess {
		if ra, ok := any(c).(interface{ Add(int) C }); ok {
			return ra.Add(n)
		}
	}
	for ; n > 0; n-- {
		c = c.Next()
	}
	for ; n < 0; n++ {
		b, ok := any(c).(interface{ Prev() C })
		if !ok {
			panic("cursors.Advance: negative offset on a forward-only cursor")
		}
		c = b.Prev()
	}
	return c
}

// Next returns the successor of c.
func Next[C Forwarder[C]](c C) C {
	return c.Next()
}

// Prev returns the predecessor of c.
func Prev[C Bidirectioner[C]](c C) C {
	return c.Prev()
}

// All yields every element in [first, last).
func All[C Cursor[C, R], R any](first, last C) iter.Seq[R] {
	return func(yield func(R) bool) {
		for c := first; !c.Equal(last); c = c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// Backward yields every element in [first, last) starting from the back.
func Backward[C BidirectionalCursor[C, R], R any](first, last C) iter.Seq[R] {
	return func(yield func(R) bool) {
		for c := last; !c.Equal(first); {
			c = c.Prev()
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// Find returns the first cursor in [first, last) whose element satisfies
// predicate, or last when there is none.
func Find[C Cursor[C, R], R any](first, last C, predicate func(R) bool) C {
	for c := first; !c.Equal(last); c = c.Next() {
		if predicate(c.Get()) {
			return c
		}
	}
	return last
}

// CountFunc returns how many elements in [first, last) satisfy predicate.
func CountFunc[C Cursor[C, R], R any](first, last C, predicate func(R) bool) int {
	count := 0
	for c := first; !c.Equal(last); c = c.Next() {
		if predicate(c.Get()) {
			count++
		}
	}
	return count
}
