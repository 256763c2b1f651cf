package cursors

// Forwarder is the minimal positional contract.
// C is the cursor type itself, so Next returns a value of the same type.
type Forwarder[C any] interface {
	// Next returns a copy of the cursor moved one position forward.
	Next() C
	// Equal reports whether both cursors mark the same position.
	Equal(other C) bool
	// Category reports the contract the cursor guarantees.
	Category() Category
}

// Bidirectioner cursors can also step backward.
type Bidirectioner[C any] interface {
	Forwarder[C]
	// Prev returns a copy of the cursor moved one position backward.
	Prev() C
}

// RandomAccessor cursors support constant time offset and difference.
type RandomAccessor[C any] interface {
	Bidirectioner[C]
	// Add returns a copy of the cursor offset by n positions (n may be negative).
	Add(n int) C
	// Diff returns the signed number of positions from other to the receiver.
	Diff(other C) int
	// Less reports whether the receiver is before other.
	Less(other C) bool
}

// Reader dereferences a cursor.
// Mutable cursors return a pointer into the sequence, read-only cursors a value.
type Reader[R any] interface {
	Get() R
}

// Cursor is a forward cursor yielding R.
type Cursor[C any, R any] interface {
	Forwarder[C]
	Reader[R]
}

// BidirectionalCursor is a bidirectional cursor yielding R.
type BidirectionalCursor[C any, R any] interface {
	Bidirectioner[C]
	Reader[R]
}

// RandomAccessCursor is a random access cursor yielding R.
type RandomAccessCursor[C any, R any] interface {
	RandomAccessor[C]
	Reader[R]
}
