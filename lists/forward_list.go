package lists

import (
	"iter"

	"lockstep/cursors"
)

type fnode[T any] struct {
	next *fnode[T]
	val  T
}

// ForwardList is a singly linked list. Its cursors only move forward.
type ForwardList[T any] struct {
	head *fnode[T] // sentinel
	tail *fnode[T] // last node, or head when empty
	size int
}

func NewForwardList[T any]() *ForwardList[T] {
	head := &fnode[T]{}
	return &ForwardList[T]{head: head, tail: head}
}

// PushFront prepends value.
func (fl *ForwardList[T]) PushFront(value T) {
	fl.InsertAfter(ForwardCursor[T]{n: fl.head}, value)
}

// Add appends values.
func (fl *ForwardList[T]) Add(values ...T) {
	for _, v := range values {
		fl.InsertAfter(ForwardCursor[T]{n: fl.tail}, v)
	}
}

// InsertAfter inserts value after at and returns a cursor to it.
// BeforeBegin() is a valid position and prepends.
func (fl *ForwardList[T]) InsertAfter(at ForwardCursor[T], value T) ForwardCursor[T] {
	newNode := &fnode[T]{val: value, next: at.n.next}
	at.n.next = newNode
	if at.n == fl.tail {
		fl.tail = newNode
	}
	fl.size++
	return ForwardCursor[T]{n: newNode}
}

// PopFront removes the first element.
// It reports false when the list is empty.
func (fl *ForwardList[T]) PopFront() (val T, ok bool) {
	first := fl.head.next
	if first == nil {
		return val, false
	}
	fl.head.next = first.next
	if first == fl.tail {
		fl.tail = fl.head
	}
	fl.size--
	return first.val, true
}

func (fl *ForwardList[T]) Size() int {
	return fl.size
}

func (fl *ForwardList[T]) IsEmpty() bool {
	return fl.size == 0
}

func (fl *ForwardList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := fl.head.next; current != nil; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

// BeforeBegin returns a cursor at the head sentinel. It may only be
// advanced or passed to InsertAfter, never dereferenced.
func (fl *ForwardList[T]) BeforeBegin() ForwardCursor[T] {
	return ForwardCursor[T]{n: fl.head}
}

func (fl *ForwardList[T]) Begin() ForwardCursor[T] {
	return ForwardCursor[T]{n: fl.head.next}
}

// End is the nil position past the last node.
func (fl *ForwardList[T]) End() ForwardCursor[T] {
	return ForwardCursor[T]{}
}

// ForwardCursor is a forward-only cursor into a ForwardList.
type ForwardCursor[T any] struct {
	n *fnode[T]
}

func (c ForwardCursor[T]) Get() *T                           { return &c.n.val }
func (c ForwardCursor[T]) Next() ForwardCursor[T]            { return ForwardCursor[T]{n: c.n.next} }
func (c ForwardCursor[T]) Equal(other ForwardCursor[T]) bool { return c.n == other.n }
func (c ForwardCursor[T]) Category() cursors.Category        { return cursors.Forward }
