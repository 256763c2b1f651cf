package lists_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"lockstep/cursors"
	"lockstep/lists"
)

// RunListTests is a reusable test suite for the List interface.
func RunListTests(t *testing.T, name string, factory func(vals ...int) lists.List[int]) {
	t.Helper()

	t.Run(name+"/Basic", func(t *testing.T) {
		l := factory()
		require.True(t, l.IsEmpty())
		require.Equal(t, 0, l.Size())

		l.Add(10, 20, 30)
		require.False(t, l.IsEmpty())
		require.Equal(t, 3, l.Size())

		v, err := l.Get(1)
		require.NoError(t, err)
		require.Equal(t, 20, v)

		require.NoError(t, l.Set(1, 25))
		v, _ = l.Get(1)
		require.Equal(t, 25, v)

		l.Clear()
		require.True(t, l.IsEmpty())
		require.Equal(t, 0, l.Size())
	})

	t.Run(name+"/Insert_Remove", func(t *testing.T) {
		l := factory(1, 2, 3)

		require.NoError(t, l.Insert(1, 10))
		require.Equal(t, []int{1, 10, 2, 3}, slices.Collect(l.Values()))

		require.NoError(t, l.Insert(0, 0))
		require.NoError(t, l.Insert(l.Size(), 99))
		require.Equal(t, []int{0, 1, 10, 2, 3, 99}, slices.Collect(l.Values()))

		val, err := l.Remove(2)
		require.NoError(t, err)
		require.Equal(t, 10, val)
		require.Equal(t, []int{0, 1, 2, 3, 99}, slices.Collect(l.Values()))
		require.Equal(t, 3, lists.IndexOf(l, 3))
		require.Equal(t, -1, lists.IndexOf(l, 42))
	})

	t.Run(name+"/Boundary_Indices", func(t *testing.T) {
		l := factory(1, 2, 3)
		size := l.Size()

		for _, idx := range []int{-1, size, size + 1} {
			_, err := l.Get(idx)
			require.ErrorIs(t, err, lists.ErrIndexOutOfBounds, "Get(%d)", idx)
			require.ErrorIs(t, l.Set(idx, 99), lists.ErrIndexOutOfBounds, "Set(%d)", idx)
			_, err = l.Remove(idx)
			require.ErrorIs(t, err, lists.ErrIndexOutOfBounds, "Remove(%d)", idx)
		}

		// Insert allows index == size (append), but not size+1 or -1
		require.ErrorIs(t, l.Insert(-1, 99), lists.ErrIndexOutOfBounds)
		require.ErrorIs(t, l.Insert(size+1, 99), lists.ErrIndexOutOfBounds)
	})
}

func TestArrayList(t *testing.T) {
	RunListTests(t, "ArrayList", func(vals ...int) lists.List[int] {
		l := lists.NewArrayList[int](len(vals))
		l.Add(vals...)
		return l
	})
}

func TestLinkedList(t *testing.T) {
	RunListTests(t, "LinkedList", func(vals ...int) lists.List[int] {
		l := lists.NewLinkedList[int]()
		l.Add(vals...)
		return l
	})
}

func TestArrayList_Cursors(t *testing.T) {
	l := lists.NewArrayList[int](4)
	l.Add(1, 2, 3, 4)

	require.Equal(t, cursors.RandomAccess, l.Begin().Category())
	require.Equal(t, 4, cursors.Distance(l.Begin(), l.End()))

	for v := range cursors.All(l.Begin(), l.End()) {
		*v *= 10
	}
	require.Equal(t, []int{10, 20, 30, 40}, slices.Collect(l.Values()))
	require.Equal(t, []int{10, 20, 30, 40}, slices.Collect(cursors.All(l.CBegin(), l.CEnd())))
	require.Equal(t, "[10 20 30 40]", l.String())
}

func TestLinkedList_Cursors(t *testing.T) {
	l := lists.NewLinkedList[int]()
	l.Add(1, 2, 3)

	begin, end := l.Begin(), l.End()
	require.Equal(t, cursors.Bidirectional, begin.Category())
	require.Equal(t, 3, cursors.Distance(begin, end))

	last := cursors.Prev(end)
	require.Equal(t, 3, *last.Get())
	require.True(t, last.Next().Equal(end))

	require.Equal(t, []int{3, 2, 1}, values(slices.Collect(cursors.Backward(begin, end))))

	t.Run("Insert and erase through cursors", func(t *testing.T) {
		l := lists.NewLinkedList[int]()
		l.Add(1, 3)

		second := l.Begin().Next()
		inserted := l.InsertBefore(second, 2)
		require.Equal(t, 2, *inserted.Get())
		require.Equal(t, "[1, 2, 3]", l.String())

		// appending through End keeps End stable
		l.InsertBefore(l.End(), 4)
		require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.Values()))

		after := l.Erase(inserted)
		require.Equal(t, 3, *after.Get())
		require.Equal(t, []int{1, 3, 4}, slices.Collect(l.Values()))
		require.Equal(t, 3, l.Size())
	})

	t.Run("Empty list", func(t *testing.T) {
		l := lists.NewLinkedList[string]()
		require.True(t, l.Begin().Equal(l.End()))
		require.Equal(t, 0, cursors.Distance(l.Begin(), l.End()))
		require.Equal(t, "[]", l.String())
	})
}

func TestLinkedList_Backward(t *testing.T) {
	l := lists.NewLinkedList[string]()
	l.Add("a", "b", "c")

	var indices []int
	var values []string
	for i, v := range l.Backward() {
		indices = append(indices, i)
		values = append(values, v)
	}
	require.Equal(t, []int{2, 1, 0}, indices)
	require.Equal(t, []string{"c", "b", "a"}, values)
}

func TestForwardList(t *testing.T) {
	l := lists.NewForwardList[int]()
	require.True(t, l.IsEmpty())
	require.True(t, l.Begin().Equal(l.End()))

	l.Add(2, 3)
	l.PushFront(1)
	require.Equal(t, 3, l.Size())
	require.Equal(t, []int{1, 2, 3}, slices.Collect(l.Values()))

	require.Equal(t, cursors.Forward, l.Begin().Category())
	require.Equal(t, 3, cursors.Distance(l.Begin(), l.End()))
	require.Equal(t, 3, *cursors.Advance(l.Begin(), 2).Get())

	at := l.InsertAfter(l.Begin(), 15)
	require.Equal(t, 15, *at.Get())
	require.Equal(t, []int{1, 15, 2, 3}, slices.Collect(l.Values()))

	v, ok := l.PopFront()
	require.True(t, ok)
	require.Equal(t, 1, v)

	// appending after pops keeps the tail consistent
	for range 3 {
		l.PopFront()
	}
	require.True(t, l.IsEmpty())
	l.Add(7)
	require.Equal(t, []int{7}, slices.Collect(l.Values()))

	_, ok = lists.NewForwardList[int]().PopFront()
	require.False(t, ok)

	require.PanicsWithValue(t, "cursors.Advance: negative offset on a forward-only cursor", func() {
		cursors.Advance(l.Begin(), -1)
	})
}

func values[T any](ptrs []*T) []T {
	out := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}
