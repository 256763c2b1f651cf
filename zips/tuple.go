package zips

import "fmt"

// Tuple2 holds one value per zipped sequence, in wrap order.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// T2 builds a Tuple2.
func T2[A, B any](v1 A, v2 B) Tuple2[A, B] {
	return Tuple2[A, B]{V1: v1, V2: v2}
}

func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

// String implements fmt.Stringer for easier debugging.
func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V1, t.V2)
}

// Tuple3 holds one value per zipped sequence, in wrap order.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// T3 builds a Tuple3.
func T3[A, B, C any](v1 A, v2 B, v3 C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: v1, V2: v2, V3: v3}
}

func (t Tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.V1, t.V2, t.V3
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V1, t.V2, t.V3)
}
