package cursors

import "fmt"

// Slice is a mutable random access cursor into a slice.
// Get returns a pointer to the element, so writes go to the backing array.
//
// Two Slice cursors compare by index only; comparing cursors of unrelated
// slices is meaningless.
type Slice[T any] struct {
	s []T
	i int
}

// Begin returns a cursor at the first element of s.
func Begin[S ~[]T, T any](s S) Slice[T] {
	return Slice[T]{s: s}
}

// End returns a cursor one past the last element of s.
func End[S ~[]T, T any](s S) Slice[T] {
	return Slice[T]{s: s, i: len(s)}
}

func (c Slice[T]) Get() *T                   { return &c.s[c.i] }
func (c Slice[T]) Next() Slice[T]            { c.i++; return c }
func (c Slice[T]) Prev() Slice[T]            { c.i--; return c }
func (c Slice[T]) Add(n int) Slice[T]        { c.i += n; return c }
func (c Slice[T]) Diff(other Slice[T]) int   { return c.i - other.i }
func (c Slice[T]) Less(other Slice[T]) bool  { return c.i < other.i }
func (c Slice[T]) Equal(other Slice[T]) bool { return c.i == other.i }
func (c Slice[T]) Category() Category        { return RandomAccess }

// Index returns the position of the cursor within its slice.
func (c Slice[T]) Index() int { return c.i }

func (c Slice[T]) String() string {
	if c.i < 0 || c.i >= len(c.s) {
		return fmt.Sprintf("Slice[%d/%d]", c.i, len(c.s))
	}
	return fmt.Sprintf("Slice[%d/%d: %v]", c.i, len(c.s), c.s[c.i])
}

// ReadOnly is a random access cursor into a slice that yields copies of the
// elements, so the sequence cannot be modified through it.
type ReadOnly[T any] struct {
	s []T
	i int
}

// CBegin returns a read-only cursor at the first element of s.
func CBegin[S ~[]T, T any](s S) ReadOnly[T] {
	return ReadOnly[T]{s: s}
}

// CEnd returns a read-only cursor one past the last element of s.
func CEnd[S ~[]T, T any](s S) ReadOnly[T] {
	return ReadOnly[T]{s: s, i: len(s)}
}

func (c ReadOnly[T]) Get() T                       { return c.s[c.i] }
func (c ReadOnly[T]) Next() ReadOnly[T]            { c.i++; return c }
func (c ReadOnly[T]) Prev() ReadOnly[T]            { c.i--; return c }
func (c ReadOnly[T]) Add(n int) ReadOnly[T]        { c.i += n; return c }
func (c ReadOnly[T]) Diff(other ReadOnly[T]) int   { return c.i - other.i }
func (c ReadOnly[T]) Less(other ReadOnly[T]) bool  { return c.i < other.i }
func (c ReadOnly[T]) Equal(other ReadOnly[T]) bool { return c.i == other.i }
func (c ReadOnly[T]) Category() Category           { return RandomAccess }

// Index returns the position of the cursor within its slice.
func (c ReadOnly[T]) Index() int { return c.i }

// String is a read-only random access cursor over the bytes of a string.
type String struct {
	s string
	i int
}

// StringBegin returns a cursor at the first byte of s.
func StringBegin(s string) String {
	return String{s: s}
}

// StringEnd returns a cursor one past the last byte of s.
func StringEnd(s string) String {
	return String{s: s, i: len(s)}
}

func (c String) Get() byte               { return c.s[c.i] }
func (c String) Next() String            { c.i++; return c }
func (c String) Prev() String            { c.i--; return c }
func (c String) Add(n int) String        { c.i += n; return c }
func (c String) Diff(other String) int   { return c.i - other.i }
func (c String) Less(other String) bool  { return c.i < other.i }
func (c String) Equal(other String) bool { return c.i == other.i }
func (c String) Category() Category      { return RandomAccess }

// Index returns the byte offset of the cursor.
func (c String) Index() int { return c.i }
