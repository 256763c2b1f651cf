package fields

import (
	"fmt"
	"iter"
	"slices"

	"lockstep/cursors"
	"lockstep/zips"
)

// Array3 stores elements of three fields in three parallel columns.
type Array3[A, B, C any] struct {
	f1 []A
	f2 []B
	f3 []C
}

func NewArray3[A, B, C any]() *Array3[A, B, C] {
	return &Array3[A, B, C]{}
}

// NewArray3Filled returns an array of n elements, each a copy of (a, b, c).
func NewArray3Filled[A, B, C any](n int, a A, b B, c C) *Array3[A, B, C] {
	if n < 0 {
		panic("fields.NewArray3Filled: negative size")
	}
	arr := &Array3[A, B, C]{f1: make([]A, n), f2: make([]B, n), f3: make([]C, n)}
	for i := range n {
		arr.f1[i], arr.f2[i], arr.f3[i] = a, b, c
	}
	return arr
}

func (arr *Array3[A, B, C]) Len() int {
	return len(arr.f1)
}

func (arr *Array3[A, B, C]) Cap() int {
	return min(cap(arr.f1), cap(arr.f2), cap(arr.f3))
}

func (arr *Array3[A, B, C]) IsEmpty() bool {
	return len(arr.f1) == 0
}

func (arr *Array3[A, B, C]) Reserve(n int) {
	if n <= arr.Cap() {
		return
	}
	arr.f1 = slices.Grow(arr.f1, n-len(arr.f1))
	arr.f2 = slices.Grow(arr.f2, n-len(arr.f2))
	arr.f3 = slices.Grow(arr.f3, n-len(arr.f3))
}

func (arr *Array3[A, B, C]) Resize(n int) {
	if n < 0 {
		panic("fields.Array3.Resize: negative size")
	}
	arr.f1 = resize(arr.f1, n)
	arr.f2 = resize(arr.f2, n)
	arr.f3 = resize(arr.f3, n)
}

func (arr *Array3[A, B, C]) PushBack(a A, b B, c C) {
	arr.f1 = append(arr.f1, a)
	arr.f2 = append(arr.f2, b)
	arr.f3 = append(arr.f3, c)
}

func (arr *Array3[A, B, C]) PopBack() (a A, b B, c C, ok bool) {
	n := len(arr.f1)
	if n == 0 {
		return a, b, c, false
	}
	a, b, c = arr.f1[n-1], arr.f2[n-1], arr.f3[n-1]
	arr.Resize(n - 1)
	return a, b, c, true
}

func (arr *Array3[A, B, C]) Clear() {
	arr.Resize(0)
}

func (arr *Array3[A, B, C]) Release() {
	arr.f1, arr.f2, arr.f3 = nil, nil, nil
}

func (arr *Array3[A, B, C]) At(i int) (zips.Tuple3[*A, *B, *C], error) {
	if i < 0 || i >= len(arr.f1) {
		return zips.Tuple3[*A, *B, *C]{}, ErrIndexOutOfBounds
	}
	return zips.T3(&arr.f1[i], &arr.f2[i], &arr.f3[i]), nil
}

func (arr *Array3[A, B, C]) Set(i int, a A, b B, c C) error {
	if i < 0 || i >= len(arr.f1) {
		return ErrIndexOutOfBounds
	}
	arr.f1[i], arr.f2[i], arr.f3[i] = a, b, c
	return nil
}

func (arr *Array3[A, B, C]) Field1() []A { return arr.f1 }
func (arr *Array3[A, B, C]) Field2() []B { return arr.f2 }
func (arr *Array3[A, B, C]) Field3() []C { return arr.f3 }

func (arr *Array3[A, B, C]) Begin() zips.RandomZip3[cursors.Slice[A], *A, cursors.Slice[B], *B, cursors.Slice[C], *C] {
	return zips.NewRandom3(cursors.Begin(arr.f1), cursors.Begin(arr.f2), cursors.Begin(arr.f3))
}

func (arr *Array3[A, B, C]) End() zips.RandomZip3[cursors.Slice[A], *A, cursors.Slice[B], *B, cursors.Slice[C], *C] {
	return zips.NewRandom3(cursors.End(arr.f1), cursors.End(arr.f2), cursors.End(arr.f3))
}

func (arr *Array3[A, B, C]) CBegin() zips.RandomZip3[cursors.ReadOnly[A], A, cursors.ReadOnly[B], B, cursors.ReadOnly[C], C] {
	return zips.NewRandom3(cursors.CBegin(arr.f1), cursors.CBegin(arr.f2), cursors.CBegin(arr.f3))
}

func (arr *Array3[A, B, C]) CEnd() zips.RandomZip3[cursors.ReadOnly[A], A, cursors.ReadOnly[B], B, cursors.ReadOnly[C], C] {
	return zips.NewRandom3(cursors.CEnd(arr.f1), cursors.CEnd(arr.f2), cursors.CEnd(arr.f3))
}

// View12 returns a begin and end pair walking only the first two fields.
// Writes through the view land in the array.
func (arr *Array3[A, B, C]) View12() (begin, end zips.RandomZip2[cursors.Slice[A], *A, cursors.Slice[B], *B]) {
	return zips.NewRandom2(cursors.Begin(arr.f1), cursors.Begin(arr.f2)),
		zips.NewRandom2(cursors.End(arr.f1), cursors.End(arr.f2))
}

func (arr *Array3[A, B, C]) View13() (begin, end zips.RandomZip2[cursors.Slice[A], *A, cursors.Slice[C], *C]) {
	return zips.NewRandom2(cursors.Begin(arr.f1), cursors.Begin(arr.f3)),
		zips.NewRandom2(cursors.End(arr.f1), cursors.End(arr.f3))
}

func (arr *Array3[A, B, C]) View23() (begin, end zips.RandomZip2[cursors.Slice[B], *B, cursors.Slice[C], *C]) {
	return zips.NewRandom2(cursors.Begin(arr.f2), cursors.Begin(arr.f3)),
		zips.NewRandom2(cursors.End(arr.f2), cursors.End(arr.f3))
}

func (arr *Array3[A, B, C]) All() iter.Seq[zips.Tuple3[*A, *B, *C]] {
	return cursors.All(arr.Begin(), arr.End())
}

func (arr *Array3[A, B, C]) Values() iter.Seq[zips.Tuple3[A, B, C]] {
	return cursors.All(arr.CBegin(), arr.CEnd())
}

func (arr *Array3[A, B, C]) String() string {
	return fmt.Sprintf("%v", slices.Collect(arr.Values()))
}
