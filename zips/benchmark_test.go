package zips_test

import (
	"testing"

	"lockstep/cursors"
	"lockstep/zips"
)

// BenchmarkTraversal compares a zipped walk with hand-written index loops.
func BenchmarkTraversal(b *testing.B) {
	size := 1_000_000
	xs := make([]int, size)
	ys := make([]float64, size)
	for i := 0; i < size; i++ {
		xs[i] = i
		ys[i] = float64(i)
	}

	b.Run("Index", func(b *testing.B) {
		for b.Loop() {
			sum := 0.0
			for i := range xs {
				sum += float64(xs[i]) * ys[i]
			}
			_ = sum
		}
	})

	b.Run("Zip2_Loop", func(b *testing.B) {
		end := zips.NewRandom2(cursors.CEnd(xs), cursors.CEnd(ys))
		for b.Loop() {
			sum := 0.0
			for z := zips.NewRandom2(cursors.CBegin(xs), cursors.CBegin(ys)); z.NotEqual(end); z.Advance() {
				t := z.Get()
				sum += float64(t.V1) * t.V2
			}
			_ = sum
		}
	})

	b.Run("Zip2_All", func(b *testing.B) {
		begin := zips.NewRandom2(cursors.CBegin(xs), cursors.CBegin(ys))
		end := zips.NewRandom2(cursors.CEnd(xs), cursors.CEnd(ys))
		for b.Loop() {
			sum := 0.0
			for t := range cursors.All(begin, end) {
				sum += float64(t.V1) * t.V2
			}
			_ = sum
		}
	})

	b.Run("Zip2_Distance", func(b *testing.B) {
		begin := zips.NewRandom2(cursors.CBegin(xs), cursors.CBegin(ys))
		end := zips.NewRandom2(cursors.CEnd(xs), cursors.CEnd(ys))
		for b.Loop() {
			_ = cursors.Distance(begin, end)
		}
	})
}
