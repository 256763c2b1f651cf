package lists

import (
	"fmt"
	"iter"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// List is the index-based surface shared by ArrayList and LinkedList.
// Traversal goes through the cursors each implementation returns from
// Begin and End, whose category reflects the underlying structure.
type List[T any] interface {
	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Insert inserts an element at the specified index
	// Returns an error if index < 0 or index > Size()
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index
	// Returns an error if index is out of bounds
	Remove(index int) (T, error)

	// Set modifies the element at the specified index
	Set(index int, value T) error

	// Get retrieves the element at the specified index
	Get(index int) (T, error)

	Size() int
	IsEmpty() bool
	Clear()

	// Values yields the elements front to back
	Values() iter.Seq[T]
}

// IndexOf returns the index of the first element equal to v, or -1.
func IndexOf[T comparable](l List[T], v T) int {
	index := 0
	for e := range l.Values() {
		if e == v {
			return index
		}
		index++
	}
	return -1
}
