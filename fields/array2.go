package fields

import (
	"fmt"
	"iter"
	"slices"

	"lockstep/cursors"
	"lockstep/zips"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// Array2 stores elements of two fields in two parallel columns.
type Array2[A, B any] struct {
	f1 []A
	f2 []B
}

// NewArray2 returns an empty array with no allocated storage.
func NewArray2[A, B any]() *Array2[A, B] {
	return &Array2[A, B]{}
}

// NewArray2Filled returns an array of n elements, each a copy of (a, b).
func NewArray2Filled[A, B any](n int, a A, b B) *Array2[A, B] {
	if n < 0 {
		panic("fields.NewArray2Filled: negative size")
	}
	arr := &Array2[A, B]{f1: make([]A, n), f2: make([]B, n)}
	for i := range n {
		arr.f1[i] = a
		arr.f2[i] = b
	}
	return arr
}

func (arr *Array2[A, B]) Len() int {
	return len(arr.f1)
}

// Cap returns how many elements fit before the next reallocation.
func (arr *Array2[A, B]) Cap() int {
	return min(cap(arr.f1), cap(arr.f2))
}

func (arr *Array2[A, B]) IsEmpty() bool {
	return len(arr.f1) == 0
}

// Reserve makes room for at least n elements. It never shrinks.
func (arr *Array2[A, B]) Reserve(n int) {
	if n <= arr.Cap() {
		return
	}
	arr.f1 = slices.Grow(arr.f1, n-len(arr.f1))
	arr.f2 = slices.Grow(arr.f2, n-len(arr.f2))
}

// Resize sets the length to n. New elements are zero values; removed ones
// are cleared so they can be collected. Capacity is never reduced.
func (arr *Array2[A, B]) Resize(n int) {
	if n < 0 {
		panic("fields.Array2.Resize: negative size")
	}
	arr.f1 = resize(arr.f1, n)
	arr.f2 = resize(arr.f2, n)
}

func (arr *Array2[A, B]) PushBack(a A, b B) {
	arr.f1 = append(arr.f1, a)
	arr.f2 = append(arr.f2, b)
}

// PopBack removes the last element.
// It reports false when the array is empty.
func (arr *Array2[A, B]) PopBack() (a A, b B, ok bool) {
	n := len(arr.f1)
	if n == 0 {
		return a, b, false
	}
	a, b = arr.f1[n-1], arr.f2[n-1]
	arr.f1 = resize(arr.f1, n-1)
	arr.f2 = resize(arr.f2, n-1)
	return a, b, true
}

// Clear removes every element and keeps the storage.
func (arr *Array2[A, B]) Clear() {
	arr.Resize(0)
}

// Release removes every element and drops the storage.
func (arr *Array2[A, B]) Release() {
	arr.f1, arr.f2 = nil, nil
}

// At returns pointers to both fields of element i.
func (arr *Array2[A, B]) At(i int) (zips.Tuple2[*A, *B], error) {
	if i < 0 || i >= len(arr.f1) {
		return zips.Tuple2[*A, *B]{}, ErrIndexOutOfBounds
	}
	return zips.T2(&arr.f1[i], &arr.f2[i]), nil
}

func (arr *Array2[A, B]) Set(i int, a A, b B) error {
	if i < 0 || i >= len(arr.f1) {
		return ErrIndexOutOfBounds
	}
	arr.f1[i], arr.f2[i] = a, b
	return nil
}

// Field1 returns the first column. Writes to it update the array.
func (arr *Array2[A, B]) Field1() []A { return arr.f1 }

// Field2 returns the second column. Writes to it update the array.
func (arr *Array2[A, B]) Field2() []B { return arr.f2 }

// Begin returns a zip cursor at the first element yielding field pointers.
func (arr *Array2[A, B]) Begin() zips.RandomZip2[cursors.Slice[A], *A, cursors.Slice[B], *B] {
	return zips.NewRandom2(cursors.Begin(arr.f1), cursors.Begin(arr.f2))
}

// End returns a zip cursor one past the last element.
func (arr *Array2[A, B]) End() zips.RandomZip2[cursors.Slice[A], *A, cursors.Slice[B], *B] {
	return zips.NewRandom2(cursors.End(arr.f1), cursors.End(arr.f2))
}

// CBegin returns a read-only zip cursor at the first element.
func (arr *Array2[A, B]) CBegin() zips.RandomZip2[cursors.ReadOnly[A], A, cursors.ReadOnly[B], B] {
	return zips.NewRandom2(cursors.CBegin(arr.f1), cursors.CBegin(arr.f2))
}

// CEnd returns a read-only zip cursor one past the last element.
func (arr *Array2[A, B]) CEnd() zips.RandomZip2[cursors.ReadOnly[A], A, cursors.ReadOnly[B], B] {
	return zips.NewRandom2(cursors.CEnd(arr.f1), cursors.CEnd(arr.f2))
}

// All yields pointers to the fields of every element in order.
func (arr *Array2[A, B]) All() iter.Seq[zips.Tuple2[*A, *B]] {
	return cursors.All(arr.Begin(), arr.End())
}

// Values yields copies of every element in order.
func (arr *Array2[A, B]) Values() iter.Seq[zips.Tuple2[A, B]] {
	return cursors.All(arr.CBegin(), arr.CEnd())
}

// String implements fmt.Stringer for easier debugging.
func (arr *Array2[A, B]) String() string {
	return fmt.Sprintf("%v", slices.Collect(arr.Values()))
}

// resize sets the length of s to n, zeroing any dropped tail.
func resize[T any](s []T, n int) []T {
	if n <= len(s) {
		clear(s[n:])
		return s[:n]
	}
	old := len(s)
	s = slices.Grow(s, n-old)[:n]
	clear(s[old:])
	return s
}
