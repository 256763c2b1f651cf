/*
Package fields provides multi-field arrays: containers that store each field
of an element in its own contiguous column (struct of arrays) while still
handing out whole elements.

	a := fields.NewArray2[float64, string]()
	a.PushBack(1.5, "x")
	a.PushBack(2.5, "y")

	for t := range a.All() {
		*t.V1 *= 2
	}

Columns share one length. Iteration over all columns is a random access zip
cursor (see package zips), so the generic algorithms in package cursors work
on a multi-field array the same way they work on a slice. A single column is
available as a plain slice through Field1, Field2 and Field3.

Cursors and column slices are invalidated by any operation that may
reallocate: PushBack, Reserve, Resize and Release.
*/
package fields
