package cursors

// Reverse walks a bidirectional sequence back to front.
//
// A Reverse built from base refers to the element just before base, so
// MakeReverse(end) is the first element of the reversed sequence and
// MakeReverse(begin) is its end.
type Reverse[C BidirectionalCursor[C, R], R any] struct {
	base C
}

// MakeReverse wraps c.
func MakeReverse[C BidirectionalCursor[C, R], R any](c C) Reverse[C, R] {
	return Reverse[C, R]{base: c}
}

// Base returns the wrapped cursor.
func (r Reverse[C, R]) Base() C { return r.base }

func (r Reverse[C, R]) Get() R { return r.base.Prev().Get() }

func (r Reverse[C, R]) Next() Reverse[C, R] {
	r.base = r.base.Prev()
	return r
}

func (r Reverse[C, R]) Prev() Reverse[C, R] {
	r.base = r.base.Next()
	return r
}

func (r Reverse[C, R]) Equal(other Reverse[C, R]) bool {
	return r.base.Equal(other.base)
}

// Category is at most Bidirectional, whatever the base supports.
func (r Reverse[C, R]) Category() Category {
	return Cap(r.base.Category(), Bidirectional)
}
