package seqs

import (
	"iter"

	"lockstep/cursors"
	"lockstep/zips"
)

// First returns the element at first, or false when [first, last) is empty.
func First[C cursors.Cursor[C, R], R any](first, last C) (R, bool) {
	if first.Equal(last) {
		var zero R
		return zero, false
	}
	return first.Get(), true
}

// Last returns the final element of [first, last), or false when it is empty.
// It steps back once from last instead of walking the range.
func Last[C cursors.BidirectionalCursor[C, R], R any](first, last C) (R, bool) {
	if first.Equal(last) {
		var zero R
		return zero, false
	}
	return last.Prev().Get(), true
}

// Collect2 drains seq into one slice per component, the inverse of [Zip].
func Collect2[A, B any](seq iter.Seq[zips.Tuple2[A, B]]) ([]A, []B) {
	var as []A
	var bs []B
	for t := range seq {
		as = append(as, t.V1)
		bs = append(bs, t.V2)
	}
	return as, bs
}

func Collect3[A, B, C any](seq iter.Seq[zips.Tuple3[A, B, C]]) ([]A, []B, []C) {
	var as []A
	var bs []B
	var cs []C
	for t := range seq {
		as = append(as, t.V1)
		bs = append(bs, t.V2)
		cs = append(cs, t.V3)
	}
	return as, bs, cs
}
