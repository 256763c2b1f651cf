package seqs

import (
	"iter"

	"lockstep/zips"
)

// Zip pairs the elements of two sequences in lockstep.
// It stops as soon as either sequence is exhausted.
func Zip[A, B any](seq1 iter.Seq[A], seq2 iter.Seq[B]) iter.Seq[zips.Tuple2[A, B]] {
	return func(yield func(zips.Tuple2[A, B]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(zips.T2(v1, v2)) {
				return
			}
		}
	}
}

// Zip3 is Zip over three sequences.
func Zip3[A, B, C any](seq1 iter.Seq[A], seq2 iter.Seq[B], seq3 iter.Seq[C]) iter.Seq[zips.Tuple3[A, B, C]] {
	return func(yield func(zips.Tuple3[A, B, C]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()
		next3, stop3 := iter.Pull(seq3)
		defer stop3()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			v3, ok := next3()
			if !ok {
				return
			}
			if !yield(zips.T3(v1, v2, v3)) {
				return
			}
		}
	}
}

// ZipLongest pairs two sequences until both are exhausted.
// The shorter one is padded with fill1 or fill2.
func ZipLongest[A, B any](seq1 iter.Seq[A], seq2 iter.Seq[B], fill1 A, fill2 B) iter.Seq[zips.Tuple2[A, B]] {
	return func(yield func(zips.Tuple2[A, B]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok1 := next1()
			v2, ok2 := next2()
			if !ok1 && !ok2 {
				return
			}
			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			if !yield(zips.T2(v1, v2)) {
				return
			}
		}
	}
}

// Unzip spreads each tuple over the two loop variables of a range clause:
//
//	for name, age := range seqs.Unzip(people.Values()) { ... }
func Unzip[A, B any](seq iter.Seq[zips.Tuple2[A, B]]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for t := range seq {
			if !yield(t.V1, t.V2) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}
