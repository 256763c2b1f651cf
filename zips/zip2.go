package zips

import "lockstep/cursors"

// Zip2 advances two forward cursors in lockstep.
//
// It holds both component cursors by value: copying a Zip2 copies both
// positions and the copies move independently. The wrapped sequences are not
// owned and their lengths are not checked; callers zip sequences of equal
// length.
type Zip2[C1 cursors.Cursor[C1, R1], R1 any, C2 cursors.Cursor[C2, R2], R2 any] struct {
	c1 C1
	c2 C2
}

// New2 zips two cursors into a forward-only Zip2.
// Its Category never reports more than Forward, even over two random access
// cursors. Use [NewBidi2] or [NewRandom2] when the components support more.
func New2[C1 cursors.Cursor[C1, R1], R1 any, C2 cursors.Cursor[C2, R2], R2 any](c1 C1, c2 C2) Zip2[C1, R1, C2, R2] {
	return Zip2[C1, R1, C2, R2]{c1: c1, c2: c2}
}

// Get dereferences both components.
func (z Zip2[C1, R1, C2, R2]) Get() Tuple2[R1, R2] {
	return Tuple2[R1, R2]{V1: z.c1.Get(), V2: z.c2.Get()}
}

// Next returns a copy advanced by one position.
func (z Zip2[C1, R1, C2, R2]) Next() Zip2[C1, R1, C2, R2] {
	z.c1 = z.c1.Next()
	z.c2 = z.c2.Next()
	return z
}

// Advance moves z forward in place and returns it.
func (z *Zip2[C1, R1, C2, R2]) Advance() *Zip2[C1, R1, C2, R2] {
	*z = z.Next()
	return z
}

// PostAdvance moves z forward in place and returns its previous position.
func (z *Zip2[C1, R1, C2, R2]) PostAdvance() Zip2[C1, R1, C2, R2] {
	prev := *z
	*z = z.Next()
	return prev
}

// Equal reports whether every pair of components is equal.
func (z Zip2[C1, R1, C2, R2]) Equal(other Zip2[C1, R1, C2, R2]) bool {
	return z.c1.Equal(other.c1) && z.c2.Equal(other.c2)
}

func (z Zip2[C1, R1, C2, R2]) NotEqual(other Zip2[C1, R1, C2, R2]) bool {
	return !z.Equal(other)
}

// Category is the strict agreement of the component categories, capped at
// Forward.
func (z Zip2[C1, R1, C2, R2]) Category() cursors.Category {
	return cursors.Cap(cursors.Common(z.c1.Category(), z.c2.Category()), cursors.Forward)
}

// Cursors returns copies of the component cursors.
func (z Zip2[C1, R1, C2, R2]) Cursors() (C1, C2) {
	return z.c1, z.c2
}

// BidiZip2 advances and retreats two bidirectional cursors in lockstep.
type BidiZip2[C1 cursors.BidirectionalCursor[C1, R1], R1 any, C2 cursors.BidirectionalCursor[C2, R2], R2 any] struct {
	c1 C1
	c2 C2
}

// NewBidi2 zips two bidirectional cursors.
func NewBidi2[C1 cursors.BidirectionalCursor[C1, R1], R1 any, C2 cursors.BidirectionalCursor[C2, R2], R2 any](c1 C1, c2 C2) BidiZip2[C1, R1, C2, R2] {
	return BidiZip2[C1, R1, C2, R2]{c1: c1, c2: c2}
}

func (z BidiZip2[C1, R1, C2, R2]) Get() Tuple2[R1, R2] {
	return Tuple2[R1, R2]{V1: z.c1.Get(), V2: z.c2.Get()}
}

func (z BidiZip2[C1, R1, C2, R2]) Next() BidiZip2[C1, R1, C2, R2] {
	z.c1 = z.c1.Next()
	z.c2 = z.c2.Next()
	return z
}

func (z *BidiZip2[C1, R1, C2, R2]) Advance() *BidiZip2[C1, R1, C2, R2] {
	*z = z.Next()
	return z
}

func (z *BidiZip2[C1, R1, C2, R2]) PostAdvance() BidiZip2[C1, R1, C2, R2] {
	prev := *z
	*z = z.Next()
	return prev
}

// Prev returns a copy moved back by one position.
func (z BidiZip2[C1, R1, C2, R2]) Prev() BidiZip2[C1, R1, C2, R2] {
	z.c1 = z.c1.Prev()
	z.c2 = z.c2.Prev()
	return z
}

// Retreat moves z back in place and returns it.
func (z *BidiZip2[C1, R1, C2, R2]) Retreat() *BidiZip2[C1, R1, C2, R2] {
	*z = z.Prev()
	return z
}

// PostRetreat moves z back in place and returns its previous position.
func (z *BidiZip2[C1, R1, C2, R2]) PostRetreat() BidiZip2[C1, R1, C2, R2] {
	prev := *z
	*z = z.Prev()
	return prev
}

func (z BidiZip2[C1, R1, C2, R2]) Equal(other BidiZip2[C1, R1, C2, R2]) bool {
	return z.c1.Equal(other.c1) && z.c2.Equal(other.c2)
}

func (z BidiZip2[C1, R1, C2, R2]) NotEqual(other BidiZip2[C1, R1, C2, R2]) bool {
	return !z.Equal(other)
}

// Category is the strict agreement of the component categories, capped at
// Bidirectional. A random access component next to a bidirectional one
// yields NoCommonCategory.
func (z BidiZip2[C1, R1, C2, R2]) Category() cursors.Category {
	return cursors.Cap(cursors.Common(z.c1.Category(), z.c2.Category()), cursors.Bidirectional)
}

func (z BidiZip2[C1, R1, C2, R2]) Cursors() (C1, C2) {
	return z.c1, z.c2
}

// RandomZip2 zips two random access cursors and supports offset arithmetic.
//
// Diff and the ordering methods only look at the first component: for
// sequences of equal length every component pair gives the same answer.
type RandomZip2[C1 cursors.RandomAccessCursor[C1, R1], R1 any, C2 cursors.RandomAccessCursor[C2, R2], R2 any] struct {
	c1 C1
	c2 C2
}

// NewRandom2 zips two random access cursors.
func NewRandom2[C1 cursors.RandomAccessCursor[C1, R1], R1 any, C2 cursors.RandomAccessCursor[C2, R2], R2 any](c1 C1, c2 C2) RandomZip2[C1, R1, C2, R2] {
	return RandomZip2[C1, R1, C2, R2]{c1: c1, c2: c2}
}

func (z RandomZip2[C1, R1, C2, R2]) Get() Tuple2[R1, R2] {
	return Tuple2[R1, R2]{V1: z.c1.Get(), V2: z.c2.Get()}
}

func (z RandomZip2[C1, R1, C2, R2]) Next() RandomZip2[C1, R1, C2, R2] {
	z.c1 = z.c1.Next()
	z.c2 = z.c2.Next()
	return z
}

func (z *RandomZip2[C1, R1, C2, R2]) Advance() *RandomZip2[C1, R1, C2, R2] {
	*z = z.Next()
	return z
}

func (z *RandomZip2[C1, R1, C2, R2]) PostAdvance() RandomZip2[C1, R1, C2, R2] {
	prev := *z
	*z = z.Next()
	return prev
}

func (z RandomZip2[C1, R1, C2, R2]) Prev() RandomZip2[C1, R1, C2, R2] {
	z.c1 = z.c1.Prev()
	z.c2 = z.c2.Prev()
	return z
}

func (z *RandomZip2[C1, R1, C2, R2]) Retreat() *RandomZip2[C1, R1, C2, R2] {
	*z = z.Prev()
	return z
}

func (z *RandomZip2[C1, R1, C2, R2]) PostRetreat() RandomZip2[C1, R1, C2, R2] {
	prev := *z
	*z = z.Prev()
	return prev
}

// Add returns a copy with every component offset by n.
func (z RandomZip2[C1, R1, C2, R2]) Add(n int) RandomZip2[C1, R1, C2, R2] {
	z.c1 = z.c1.Add(n)
	z.c2 = z.c2.Add(n)
	return z
}

// Sub returns a copy with every component offset by -n.
func (z RandomZip2[C1, R1, C2, R2]) Sub(n int) RandomZip2[C1, R1, C2, R2] {
	return z.Add(-n)
}

// AddAssign offsets z in place by n and returns it.
func (z *RandomZip2[C1, R1, C2, R2]) AddAssign(n int) *RandomZip2[C1, R1, C2, R2] {
	*z = z.Add(n)
	return z
}

// SubAssign offsets z in place by -n and returns it.
func (z *RandomZip2[C1, R1, C2, R2]) SubAssign(n int) *RandomZip2[C1, R1, C2, R2] {
	*z = z.Add(-n)
	return z
}

// Diff returns z - other, measured on the first component.
func (z RandomZip2[C1, R1, C2, R2]) Diff(other RandomZip2[C1, R1, C2, R2]) int {
	return z.c1.Diff(other.c1)
}

func (z RandomZip2[C1, R1, C2, R2]) Less(other RandomZip2[C1, R1, C2, R2]) bool {
	return z.c1.Less(other.c1)
}

func (z RandomZip2[C1, R1, C2, R2]) LessEqual(other RandomZip2[C1, R1, C2, R2]) bool {
	return !other.c1.Less(z.c1)
}

func (z RandomZip2[C1, R1, C2, R2]) Greater(other RandomZip2[C1, R1, C2, R2]) bool {
	return other.c1.Less(z.c1)
}

func (z RandomZip2[C1, R1, C2, R2]) GreaterEqual(other RandomZip2[C1, R1, C2, R2]) bool {
	return !z.c1.Less(other.c1)
}

func (z RandomZip2[C1, R1, C2, R2]) Equal(other RandomZip2[C1, R1, C2, R2]) bool {
	return z.c1.Equal(other.c1) && z.c2.Equal(other.c2)
}

func (z RandomZip2[C1, R1, C2, R2]) NotEqual(other RandomZip2[C1, R1, C2, R2]) bool {
	return !z.Equal(other)
}

// Category is the strict agreement of the component categories.
func (z RandomZip2[C1, R1, C2, R2]) Category() cursors.Category {
	return cursors.Common(z.c1.Category(), z.c2.Category())
}

func (z RandomZip2[C1, R1, C2, R2]) Cursors() (C1, C2) {
	return z.c1, z.c2
}
