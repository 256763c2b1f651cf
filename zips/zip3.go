package zips

import "lockstep/cursors"

// Zip3 is the three-sequence form of Zip2.
type Zip3[C1 cursors.Cursor[C1, R1], R1 any, C2 cursors.Cursor[C2, R2], R2 any, C3 cursors.Cursor[C3, R3], R3 any] struct {
	c1 C1
	c2 C2
	c3 C3
}

// New3 zips three cursors into a forward-only Zip3.
// Use [NewRandom3] or [NewBidi3] when the richer category should be reported.
func New3[C1 cursors.Cursor[C1, R1], R1 any, C2 cursors.Cursor[C2, R2], R2 any, C3 cursors.Cursor[C3, R3], R3 any](c1 C1, c2 C2, c3 C3) Zip3[C1, R1, C2, R2, C3, R3] {
	return Zip3[C1, R1, C2, R2, C3, R3]{c1: c1, c2: c2, c3: c3}
}

func (z Zip3[C1, R1, C2, R2, C3, R3]) Get() Tuple3[R1, R2, R3] {
	return Tuple3[R1, R2, R3]{V1: z.c1.Get(), V2: z.c2.Get(), V3: z.c3.Get()}
}

func (z Zip3[C1, R1, C2, R2, C3, R3]) Next() Zip3[C1, R1, C2, R2, C3, R3] {
	z.c1 = z.c1.Next()
	z.c2 = z.c2.Next()
	z.c3 = z.c3.Next()
	return z
}

func (z *Zip3[C1, R1, C2, R2, C3, R3]) Advance() *Zip3[C1, R1, C2, R2, C3, R3] {
	*z = z.Next()
	return z
}

func (z *Zip3[C1, R1, C2, R2, C3, R3]) PostAdvance() Zip3[C1, R1, C2, R2, C3, R3] {
	prev := *z
	*z = z.Next()
	return prev
}

func (z Zip3[C1, R1, C2, R2, C3, R3]) Equal(other Zip3[C1, R1, C2, R2, C3, R3]) bool {
	return z.c1.Equal(other.c1) && z.c2.Equal(other.c2) && z.c3.Equal(other.c3)
}

func (z Zip3[C1, R1, C2, R2, C3, R3]) NotEqual(other Zip3[C1, R1, C2, R2, C3, R3]) bool {
	return !z.Equal(other)
}

func (z Zip3[C1, R1, C2, R2, C3, R3]) Category() cursors.Category {
	return cursors.Cap(cursors.Common(z.c1.Category(), z.c2.Category(), z.c3.Category()), cursors.Forward)
}

func (z Zip3[C1, R1, C2, R2, C3, R3]) Cursors() (C1, C2, C3) {
	return z.c1, z.c2, z.c3
}

// BidiZip3 is the three-sequence form of BidiZip2.
type BidiZip3[C1 cursors.BidirectionalCursor[C1, R1], R1 any, C2 cursors.BidirectionalCursor[C2, R2], R2 any, C3 cursors.BidirectionalCursor[C3, R3], R3 any] struct {
	c1 C1
	c2 C2
	c3 C3
}

func NewBidi3[C1 cursors.BidirectionalCursor[C1, R1], R1 any, C2 cursors.BidirectionalCursor[C2, R2], R2 any, C3 cursors.BidirectionalCursor[C3, R3], R3 any](c1 C1, c2 C2, c3 C3) BidiZip3[C1, R1, C2, R2, C3, R3] {
	return BidiZip3[C1, R1, C2, R2, C3, R3]{c1: c1, c2: c2, c3: c3}
}

func (z BidiZip3[C1, R1, C2, R2, C3, R3]) Get() Tuple3[R1, R2, R3] {
	return Tuple3[R1, R2, R3]{V1: z.c1.Get(), V2: z.c2.Get(), V3: z.c3.Get()}
}

func (z BidiZip3[C1, R1, C2, R2, C3, R3]) Next() BidiZip3[C1, R1, C2, R2, C3, R3] {
	z.c1 = z.c1.Next()
	z.c2 = z.c2.Next()
	z.c3 = z.c3.Next()
	return z
}

func (z *BidiZip3[C1, R1, C2, R2, C3, R3]) Advance() *BidiZip3[C1, R1, C2, R2, C3, R3] {
	*z = z.Next()
	return z
}

func (z *BidiZip3[C1, R1, C2, R2, C3, R3]) PostAdvance() BidiZip3[C1, R1, C2, R2, C3, R3] {
	prev := *z
	*z = z.Next()
	return prev
}

func (z BidiZip3[C1, R1, C2, R2, C3, R3]) Prev() BidiZip3[C1, R1, C2, R2, C3, R3] {
	z.c1 = z.c1.Prev()
	z.c2 = z.c2.Prev()
	z.c3 = z.c3.Prev()
	return z
}

func (z *BidiZip3[C1, R1, C2, R2, C3, R3]) Retreat() *BidiZip3[C1, R1, C2, R2, C3, R3] {
	*z = z.Prev()
	return z
}

func (z *BidiZip3[C1, R1, C2, R2, C3, R3]) PostRetreat() BidiZip3[C1, R1, C2, R2, C3, R3] {
	prev := *z
	*z = z.Prev()
	return prev
}

func (z BidiZip3[C1, R1, C2, R2, C3, R3]) Equal(other BidiZip3[C1, R1, C2, R2, C3, R3]) bool {
	return z.c1.Equal(other.c1) && z.c2.Equal(other.c2) && z.c3.Equal(other.c3)
}

func (z BidiZip3[C1, R1, C2, R2, C3, R3]) NotEqual(other BidiZip3[C1, R1, C2, R2, C3, R3]) bool {
	return !z.Equal(other)
}

func (z BidiZip3[C1, R1, C2, R2, C3, R3]) Category() cursors.Category {
	return cursors.Cap(cursors.Common(z.c1.Category(), z.c2.Category(), z.c3.Category()), cursors.Bidirectional)
}

func (z BidiZip3[C1, R1, C2, R2, C3, R3]) Cursors() (C1, C2, C3) {
	return z.c1, z.c2, z.c3
}

// RandomZip3 is the three-sequence form of RandomZip2.
type RandomZip3[C1 cursors.RandomAccessCursor[C1, R1], R1 any, C2 cursors.RandomAccessCursor[C2, R2], R2 any, C3 cursors.RandomAccessCursor[C3, R3], R3 any] struct {
	c1 C1
	c2 C2
	c3 C3
}

func NewRandom3[C1 cursors.RandomAccessCursor[C1, R1], R1 any, C2 cursors.RandomAccessCursor[C2, R2], R2 any, C3 cursors.RandomAccessCursor[C3, R3], R3 any](c1 C1, c2 C2, c3 C3) RandomZip3[C1, R1, C2, R2, C3, R3] {
	return RandomZip3[C1, R1, C2, R2, C3, R3]{c1: c1, c2: c2, c3: c3}
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Get() Tuple3[R1, R2, R3] {
	return Tuple3[R1, R2, R3]{V1: z.c1.Get(), V2: z.c2.Get(), V3: z.c3.Get()}
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Next() RandomZip3[C1, R1, C2, R2, C3, R3] {
	z.c1 = z.c1.Next()
	z.c2 = z.c2.Next()
	z.c3 = z.c3.Next()
	return z
}

func (z *RandomZip3[C1, R1, C2, R2, C3, R3]) Advance() *RandomZip3[C1, R1, C2, R2, C3, R3] {
	*z = z.Next()
	return z
}

func (z *RandomZip3[C1, R1, C2, R2, C3, R3]) PostAdvance() RandomZip3[C1, R1, C2, R2, C3, R3] {
	prev := *z
	*z = z.Next()
	return prev
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Prev() RandomZip3[C1, R1, C2, R2, C3, R3] {
	z.c1 = z.c1.Prev()
	z.c2 = z.c2.Prev()
	z.c3 = z.c3.Prev()
	return z
}

func (z *RandomZip3[C1, R1, C2, R2, C3, R3]) Retreat() *RandomZip3[C1, R1, C2, R2, C3, R3] {
	*z = z.Prev()
	return z
}

func (z *RandomZip3[C1, R1, C2, R2, C3, R3]) PostRetreat() RandomZip3[C1, R1, C2, R2, C3, R3] {
	prev := *z
	*z = z.Prev()
	return prev
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Add(n int) RandomZip3[C1, R1, C2, R2, C3, R3] {
	z.c1 = z.c1.Add(n)
	z.c2 = z.c2.Add(n)
	z.c3 = z.c3.Add(n)
	return z
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Sub(n int) RandomZip3[C1, R1, C2, R2, C3, R3] {
	return z.Add(-n)
}

func (z *RandomZip3[C1, R1, C2, R2, C3, R3]) AddAssign(n int) *RandomZip3[C1, R1, C2, R2, C3, R3] {
	*z = z.Add(n)
	return z
}

func (z *RandomZip3[C1, R1, C2, R2, C3, R3]) SubAssign(n int) *RandomZip3[C1, R1, C2, R2, C3, R3] {
	*z = z.Add(-n)
	return z
}

// Diff returns z - other, measured on the first component.
func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Diff(other RandomZip3[C1, R1, C2, R2, C3, R3]) int {
	return z.c1.Diff(other.c1)
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Less(other RandomZip3[C1, R1, C2, R2, C3, R3]) bool {
	return z.c1.Less(other.c1)
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) LessEqual(other RandomZip3[C1, R1, C2, R2, C3, R3]) bool {
	return !other.c1.Less(z.c1)
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Greater(other RandomZip3[C1, R1, C2, R2, C3, R3]) bool {
	return other.c1.Less(z.c1)
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) GreaterEqual(other RandomZip3[C1, R1, C2, R2, C3, R3]) bool {
	return !z.c1.Less(other.c1)
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Equal(other RandomZip3[C1, R1, C2, R2, C3, R3]) bool {
	return z.c1.Equal(other.c1) && z.c2.Equal(other.c2) && z.c3.Equal(other.c3)
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) NotEqual(other RandomZip3[C1, R1, C2, R2, C3, R3]) bool {
	return !z.Equal(other)
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Category() cursors.Category {
	return cursors.Common(z.c1.Category(), z.c2.Category(), z.c3.Category())
}

func (z RandomZip3[C1, R1, C2, R2, C3, R3]) Cursors() (C1, C2, C3) {
	return z.c1, z.c2, z.c3
}
