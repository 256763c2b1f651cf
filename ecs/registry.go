// Package ecs is a small entity-component registry.
//
// Entities are integer ids. Each id owns one optional slot per component
// type, stored column-wise in a multi-field array so that systems iterating
// a single component touch contiguous memory.
package ecs

import (
	"fmt"

	"lockstep/fields"
	"lockstep/internal/logging"
	"lockstep/lists"
)

var (
	ErrUnknownEntity = fmt.Errorf("unknown entity")
	ErrNoComponent   = fmt.Errorf("component not set")
)

type slot[T any] struct {
	val T
	set bool
}

// Registry tracks entities carrying up to two component types, A and B.
type Registry[A, B any] struct {
	// columns: alive flag, component A, component B
	storage   *fields.Array3[bool, slot[A], slot[B]]
	available *lists.ArrayList[int]
	inUse     int
}

// NewRegistry returns a registry with initialSize free ids.
// Ids are handed out in ascending order.
func NewRegistry[A, B any](initialSize int) *Registry[A, B] {
	if initialSize < 0 {
		panic("ecs.NewRegistry: negative initial size")
	}
	r := &Registry[A, B]{
		storage:   fields.NewArray3[bool, slot[A], slot[B]](),
		available: lists.NewArrayList[int](initialSize),
	}
	r.storage.Resize(initialSize)
	for i := range initialSize {
		r.available.Add(initialSize - i - 1)
	}
	return r
}

// Create returns a free id. When none is left the storage doubles.
func (r *Registry[A, B]) Create() int {
	if r.available.IsEmpty() {
		r.grow()
	}
	id, _ := r.available.Remove(r.available.Size() - 1)
	alive, _ := r.storage.At(id)
	*alive.V1 = true
	r.inUse++
	return id
}

func (r *Registry[A, B]) grow() {
	prev := r.storage.Len()
	next := max(2*prev, 1)
	r.storage.Resize(next)
	for i := range next - prev {
		r.available.Add(next - i - 1)
	}
	logging.Debug().Int("from", prev).Int("to", next).Msg("registry storage grown")
}

// Erase clears every component of id and returns it to the free list.
func (r *Registry[A, B]) Erase(id int) error {
	e, err := r.entity(id)
	if err != nil {
		return err
	}
	*e.V1 = false
	*e.V2 = slot[A]{}
	*e.V3 = slot[B]{}
	r.available.Add(id)
	r.inUse--
	return nil
}

// Alive reports whether id was created and not erased since.
func (r *Registry[A, B]) Alive(id int) bool {
	_, err := r.entity(id)
	return err == nil
}

func (r *Registry[A, B]) Emplace1(id int, value A) error {
	e, err := r.entity(id)
	if err != nil {
		return err
	}
	*e.V2 = slot[A]{val: value, set: true}
	return nil
}

func (r *Registry[A, B]) Emplace2(id int, value B) error {
	e, err := r.entity(id)
	if err != nil {
		return err
	}
	*e.V3 = slot[B]{val: value, set: true}
	return nil
}

func (r *Registry[A, B]) Has1(id int) bool {
	e, err := r.entity(id)
	return err == nil && e.V2.set
}

func (r *Registry[A, B]) Has2(id int) bool {
	e, err := r.entity(id)
	return err == nil && e.V3.set
}

// Get1 returns the A component of id. The pointer stays valid until the
// registry grows.
func (r *Registry[A, B]) Get1(id int) (*A, error) {
	e, err := r.entity(id)
	if err != nil {
		return nil, err
	}
	if !e.V2.set {
		return nil, fmt.Errorf("entity %d: %w", id, ErrNoComponent)
	}
	return &e.V2.val, nil
}

// Get2 returns the B component of id.
func (r *Registry[A, B]) Get2(id int) (*B, error) {
	e, err := r.entity(id)
	if err != nil {
		return nil, err
	}
	if !e.V3.set {
		return nil, fmt.Errorf("entity %d: %w", id, ErrNoComponent)
	}
	return &e.V3.val, nil
}

// Remove1 drops the A component of id, if any.
func (r *Registry[A, B]) Remove1(id int) error {
	e, err := r.entity(id)
	if err != nil {
		return err
	}
	*e.V2 = slot[A]{}
	return nil
}

// Remove2 drops the B component of id, if any.
func (r *Registry[A, B]) Remove2(id int) error {
	e, err := r.entity(id)
	if err != nil {
		return err
	}
	*e.V3 = slot[B]{}
	return nil
}

// Size is the number of ids the storage can hold without growing.
func (r *Registry[A, B]) Size() int { return r.storage.Len() }

func (r *Registry[A, B]) InUse() int { return r.inUse }

func (r *Registry[A, B]) Available() int { return r.available.Size() }

func (r *Registry[A, B]) entity(id int) (e entityRef[A, B], err error) {
	e, err = r.storage.At(id)
	if err != nil || !*e.V1 {
		return e, fmt.Errorf("entity %d: %w", id, ErrUnknownEntity)
	}
	return e, nil
}
