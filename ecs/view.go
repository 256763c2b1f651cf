package ecs

import (
	"lockstep/cursors"
	"lockstep/zips"
)

type entityRef[A, B any] = zips.Tuple3[*bool, *slot[A], *slot[B]]

// Each calls fn for every live entity holding both components, in id order.
// Returning false from fn stops the walk.
func (r *Registry[A, B]) Each(fn func(id int, a *A, b *B) bool) {
	begin, end := r.storage.Begin(), r.storage.End()
	for z := begin; z.NotEqual(end); z.Advance() {
		alive, a, b := z.Get().Unpack()
		if !*alive || !a.set || !b.set {
			continue
		}
		if !fn(z.Diff(begin), &a.val, &b.val) {
			return
		}
	}
}

// Each1 calls fn for every live entity holding an A component.
func (r *Registry[A, B]) Each1(fn func(id int, a *A) bool) {
	begin, end := r.storage.View12()
	for z := begin; z.NotEqual(end); z.Advance() {
		ok, a := z.Get().Unpack()
		if *ok && a.set && !fn(z.Diff(begin), &a.val) {
			return
		}
	}
}

// Each2 calls fn for every live entity holding a B component.
func (r *Registry[A, B]) Each2(fn func(id int, b *B) bool) {
	begin, end := r.storage.View13()
	for z := begin; z.NotEqual(end); z.Advance() {
		ok, b := z.Get().Unpack()
		if *ok && b.set && !fn(z.Diff(begin), &b.val) {
			return
		}
	}
}

// Count returns the number of live entities holding both components.
func (r *Registry[A, B]) Count() int {
	return cursors.CountFunc(r.storage.CBegin(), r.storage.CEnd(), func(e zips.Tuple3[bool, slot[A], slot[B]]) bool {
		return e.V1 && e.V2.set && e.V3.set
	})
}
