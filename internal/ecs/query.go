package ecs

import "slices"

// Query iterates the holders of a primary component type, keeping only the
// entities that also hold every desired type and none of the undesired ones.
// Queries are values: Join and Ignore return a new Query and never modify
// the receiver.
//
// The primary table drives iteration, so the least populous type makes the
// cheapest primary.
type Query struct {
	w         *World
	primary   ComponentType
	desired   []ComponentType
	undesired []ComponentType
}

// Join returns a query that additionally requires the given types.
func (q Query) Join(types ...ComponentType) Query {
	q.desired = append(slices.Clip(q.desired), types...)
	return q
}

// Ignore returns a query that skips entities holding any of the given types.
func (q Query) Ignore(types ...ComponentType) Query {
	q.undesired = append(slices.Clip(q.undesired), types...)
	return q
}

func (q Query) matches(id EntityID) bool {
	for _, t := range q.desired {
		if !q.w.Has(id, t) {
			return false
		}
	}
	for _, t := range q.undesired {
		if q.w.Has(id, t) {
			return false
		}
	}
	return true
}

// ForEach calls fn for every matching entity. fn must not attach or detach
// components of the primary type; use MutatingForEach for that.
func (q Query) ForEach(fn func(EntityID)) {
	tab := q.w.tables[q.primary]
	if tab == nil {
		return
	}
	for i := 0; i < tab.Len(); i++ {
		id := tab.at(i)
		if q.matches(id) {
			fn(id)
		}
	}
}

// MutatingForEach is ForEach over a snapshot of the primary table, so fn may
// create and delete entities and attach or detach any component. Entities
// that lose their primary component during the call are not visited.
func (q Query) MutatingForEach(fn func(EntityID)) {
	tab := q.w.tables[q.primary]
	if tab == nil {
		return
	}
	for _, id := range tab.Entities() {
		if tab.Contains(id) && q.matches(id) {
			fn(id)
		}
	}
}

// Count returns the number of matching entities.
func (q Query) Count() int {
	n := 0
	q.ForEach(func(EntityID) { n++ })
	return n
}

// Entities returns the matching entities in table order.
func (q Query) Entities() []EntityID {
	var out []EntityID
	q.ForEach(func(id EntityID) { out = append(out, id) })
	return out
}

// The EachN helpers bind callback arguments by explicit type list: the
// requested types are joined to q and handed to fn in declared order.

// Each1 iterates q delivering each entity's A.
func Each1[A Component](q Query, fn func(EntityID, *A)) {
	a := storeOf[A](q.w)
	q.Join(a.typ).ForEach(func(id EntityID) {
		fn(id, a.Get(id))
	})
}

// Each2 iterates q delivering each entity's A and B.
func Each2[A, B Component](q Query, fn func(EntityID, *A, *B)) {
	a, b := storeOf[A](q.w), storeOf[B](q.w)
	q.Join(a.typ, b.typ).ForEach(func(id EntityID) {
		fn(id, a.Get(id), b.Get(id))
	})
}

// Each3 iterates q delivering each entity's A, B and C.
func Each3[A, B, C Component](q Query, fn func(EntityID, *A, *B, *C)) {
	a, b, c := storeOf[A](q.w), storeOf[B](q.w), storeOf[C](q.w)
	q.Join(a.typ, b.typ, c.typ).ForEach(func(id EntityID) {
		fn(id, a.Get(id), b.Get(id), c.Get(id))
	})
}

// Each4 iterates q delivering each entity's A, B, C and D.
func Each4[A, B, C, D Component](q Query, fn func(EntityID, *A, *B, *C, *D)) {
	a, b, c, d := storeOf[A](q.w), storeOf[B](q.w), storeOf[C](q.w), storeOf[D](q.w)
	q.Join(a.typ, b.typ, c.typ, d.typ).ForEach(func(id EntityID) {
		fn(id, a.Get(id), b.Get(id), c.Get(id), d.Get(id))
	})
}

// MutatingEach1 is Each1 over a snapshot; see Query.MutatingForEach.
func MutatingEach1[A Component](q Query, fn func(EntityID, *A)) {
	a := storeOf[A](q.w)
	q.Join(a.typ).MutatingForEach(func(id EntityID) {
		fn(id, a.Get(id))
	})
}

// MutatingEach2 is Each2 over a snapshot.
func MutatingEach2[A, B Component](q Query, fn func(EntityID, *A, *B)) {
	a, b := storeOf[A](q.w), storeOf[B](q.w)
	q.Join(a.typ, b.typ).MutatingForEach(func(id EntityID) {
		fn(id, a.Get(id), b.Get(id))
	})
}

// MutatingEach3 is Each3 over a snapshot.
func MutatingEach3[A, B, C Component](q Query, fn func(EntityID, *A, *B, *C)) {
	a, b, c := storeOf[A](q.w), storeOf[B](q.w), storeOf[C](q.w)
	q.Join(a.typ, b.typ, c.typ).MutatingForEach(func(id EntityID) {
		fn(id, a.Get(id), b.Get(id), c.Get(id))
	})
}

// MutatingEach4 is Each4 over a snapshot.
func MutatingEach4[A, B, C, D Component](q Query, fn func(EntityID, *A, *B, *C, *D)) {
	a, b, c, d := storeOf[A](q.w), storeOf[B](q.w), storeOf[C](q.w), storeOf[D](q.w)
	q.Join(a.typ, b.typ, c.typ, d.typ).MutatingForEach(func(id EntityID) {
		fn(id, a.Get(id), b.Get(id), c.Get(id), d.Get(id))
	})
}
