package lists

import (
	"fmt"
	"iter"
	"slices"

	"lockstep/cursors"
)

// ArrayList is a slice-backed list. Its cursors are random access.
//
// Cursors are invalidated by any operation that may reallocate or shift the
// backing array (Add, Insert, Remove, Clear).
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data = slices.Insert(al.data, index, value)
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[index]
	// slices.Delete zeroes the vacated tail so it can be GCed
	al.data = slices.Delete(al.data, index, index+1)
	return removed, nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// Begin returns a mutable cursor at the first element.
func (al *ArrayList[T]) Begin() cursors.Slice[T] {
	return cursors.Begin(al.data)
}

// End returns a mutable cursor one past the last element.
func (al *ArrayList[T]) End() cursors.Slice[T] {
	return cursors.End(al.data)
}

// CBegin returns a read-only cursor at the first element.
func (al *ArrayList[T]) CBegin() cursors.ReadOnly[T] {
	return cursors.CBegin(al.data)
}

// CEnd returns a read-only cursor one past the last element.
func (al *ArrayList[T]) CEnd() cursors.ReadOnly[T] {
	return cursors.CEnd(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}
