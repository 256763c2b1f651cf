/*
Package cursors defines value-semantic cursors: position markers into a
sequence that can be copied freely, compared, and moved.

A cursor type C implements one of three contracts, each a refinement of the
previous one:

  - [Forwarder]: Next, Equal and Category.
  - [Bidirectioner]: adds Prev.
  - [RandomAccessor]: adds Add, Diff and Less.

A cursor also implements [Reader] to expose the element at its position.
Mutable cursors such as [Slice] return a pointer into the sequence, read-only
cursors such as [ReadOnly] and [String] return a copy.

# Categories

Every cursor reports a [Category], one of [Forward], [Bidirectional] or
[RandomAccess]. Generic algorithms like [Distance] and
[Advance] use it to pick a constant time path. [Common] combines the
categories of several cursors with a strict-agreement rule: a composite of a
random access and a bidirectional cursor reports [NoCommonCategory], not
[Bidirectional].

# Ranges

Algorithms take half-open ranges [first, last):

	for v := range cursors.All(cursors.Begin(s), cursors.End(s)) {
		*v *= 2
	}

Cursors perform no bounds checks of their own. Dereferencing an end cursor
or comparing cursors of different sequences is a programming error.
*/
package cursors
