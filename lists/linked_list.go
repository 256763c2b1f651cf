package lists

import (
	"fmt"
	"iter"
	"strings"

	"lockstep/cursors"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list with head and tail sentinels.
// Its cursors are bidirectional and stay valid across insertions; only the
// cursor of a removed element is invalidated.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// linkAfter inserts newNode after at.
func (ll *LinkedList[T]) linkAfter(at *node[T], newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// unlink removes target and returns its value.
// The node's links are cleared so a stale cursor cannot walk the list.
func (ll *LinkedList[T]) unlink(target *node[T]) T {
	target.prev.next = target.next
	target.next.prev = target.prev
	res := target.val
	target.prev = nil
	target.next = nil
	var zero T
	target.val = zero
	ll.size--
	return res
}

// nodeAt returns the node at index, or the tail sentinel for index == size.
// Bounds checking is done by the caller.
func (ll *LinkedList[T]) nodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	// walk from whichever end is closer
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.linkAfter(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

// AddFirst prepends a value to the list.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.linkAfter(ll.headSentinel, &node[T]{val: value})
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return ErrIndexOutOfBounds
	}
	ll.linkAfter(ll.nodeAt(index).prev, &node[T]{val: value})
	return nil
}

func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.nodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	ll.nodeAt(index).val = value
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return ll.unlink(ll.nodeAt(index)), nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	var zero T
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := ll.size - 1
		for current := ll.tailSentinel.prev; current != ll.headSentinel; current = current.prev {
			if !yield(index, current.val) {
				return
			}
			index--
		}
	}
}

// Begin returns a cursor at the first element, or End() if the list is empty.
func (ll *LinkedList[T]) Begin() LinkedCursor[T] {
	return LinkedCursor[T]{n: ll.headSentinel.next}
}

// End returns a cursor at the tail sentinel. Prev on it reaches the last element.
func (ll *LinkedList[T]) End() LinkedCursor[T] {
	return LinkedCursor[T]{n: ll.tailSentinel}
}

// InsertBefore inserts value before at and returns a cursor to the new element.
// at may be End(), which appends.
func (ll *LinkedList[T]) InsertBefore(at LinkedCursor[T], value T) LinkedCursor[T] {
	newNode := &node[T]{val: value}
	ll.linkAfter(at.n.prev, newNode)
	return LinkedCursor[T]{n: newNode}
}

// Erase removes the element at c and returns a cursor to the element after it.
// c must point at an element of this list, not at End().
func (ll *LinkedList[T]) Erase(c LinkedCursor[T]) LinkedCursor[T] {
	next := c.n.next
	ll.unlink(c.n)
	return LinkedCursor[T]{n: next}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		fmt.Fprintf(&sb, "%v", current.val)
		if current.next != ll.tailSentinel {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// LinkedCursor is a bidirectional cursor into a LinkedList.
type LinkedCursor[T any] struct {
	n *node[T]
}

// Get returns a pointer to the element; writes through it update the list.
func (c LinkedCursor[T]) Get() *T { return &c.n.val }

func (c LinkedCursor[T]) Next() LinkedCursor[T] { return LinkedCursor[T]{n: c.n.next} }
func (c LinkedCursor[T]) Prev() LinkedCursor[T] { return LinkedCursor[T]{n: c.n.prev} }

func (c LinkedCursor[T]) Equal(other LinkedCursor[T]) bool { return c.n == other.n }

func (c LinkedCursor[T]) Category() cursors.Category { return cursors.Bidirectional }
