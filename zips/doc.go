/*
Package zips traverses several sequences in lockstep through a single cursor.

A zip cursor wraps one component cursor per sequence and moves all of them
together. Dereferencing it yields a tuple ([Tuple2], [Tuple3]) holding what
each component yields, in wrap order:

	s := "oooo"
	v := []int{1, 1, 1, 1}

	end := zips.NewRandom2(cursors.StringEnd(s), cursors.End(v))
	for z := zips.NewRandom2(cursors.StringBegin(s), cursors.Begin(v)); z.NotEqual(end); z.Advance() {
		c, n := z.Get().Unpack()
		fmt.Println(string(c), *n)
	}

# Capability tiers

Go cannot add methods to a type conditionally, so each arity comes in three
tiers, one per cursor contract:

  - [Zip2], [Zip3] built by [New2], [New3]: forward traversal.
  - [BidiZip2], [BidiZip3] built by [NewBidi2], [NewBidi3]: adds Prev and Retreat.
  - [RandomZip2], [RandomZip3] built by [NewRandom2], [NewRandom3]: adds offset
    arithmetic, Diff and ordering.

A factory only accepts components that satisfy its tier, so calling Prev on a
zip of forward-only cursors does not compile.

# Category

Category reports the strict agreement of the component categories (see
[cursors.Common]), capped at the tier. Mixing a random access cursor with a
bidirectional one yields [cursors.NoCommonCategory] even though both support
Prev; generic algorithms then fall back to step-by-step traversal.

# Equality

Two zip cursors are equal only when every pair of components is equal.
Diff and the ordering methods compare the first component only. Both rules
assume the zipped sequences have the same length, which is not checked.
*/
package zips
