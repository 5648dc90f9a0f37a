package ecs

import "fmt"

// Schema is the declared set of component types a World stores. DeleteEntity
// and Clear fan out over exactly these tables.
type Schema struct {
	factories [MaxComponentTypes]func() table
}

// NewSchema returns an empty schema.
func NewSchema() *Schema { return &Schema{} }

// Declare adds component type T to s and returns s for chaining.
func Declare[T Component](s *Schema) *Schema {
	var zero T
	s.factories[zero.Type()] = func() table { return NewStore[T]() }
	return s
}

// World is the central entity registry and component store.
type World struct {
	ids    entityRegistry
	tables [MaxComponentTypes]table
}

// NewWorld creates an empty World with one table per declared type.
func NewWorld(s *Schema) *World {
	w := &World{}
	if s == nil {
		return w
	}
	for t, f := range s.factories {
		if f != nil {
			w.tables[t] = f()
		}
	}
	return w
}

// CreateEntity issues the next entity ID and attaches the given components.
func (w *World) CreateEntity(components ...Component) EntityID {
	id := w.ids.issue()
	for _, c := range components {
		w.Attach(id, c)
	}
	return id
}

// Attach adds a component whose static type is not known to the caller.
// The component type must have been declared in the world's schema.
func (w *World) Attach(id EntityID, c Component) {
	t := w.tables[c.Type()]
	if t == nil {
		panic(fmt.Errorf("ecs: %T (type %d) is not declared in the schema", c, c.Type()))
	}
	t.insertAny(id, c)
}

// DeleteEntity removes id from every table.
func (w *World) DeleteEntity(id EntityID) {
	for _, t := range w.tables {
		if t != nil {
			t.Remove(id)
		}
	}
}

// Clear empties every table and restarts ID issuance at 0.
func (w *World) Clear() {
	for _, t := range w.tables {
		if t != nil {
			t.Clear()
		}
	}
	w.ids.reset()
}

// Has reports whether entity id holds a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	tab := w.tables[t]
	return tab != nil && tab.Contains(id)
}

// RemoveType detaches the component of type t from id. No-op if absent.
func (w *World) RemoveType(id EntityID, t ComponentType) {
	if tab := w.tables[t]; tab != nil {
		tab.Remove(id)
	}
}

// Count returns how many entities hold a component of type t.
func (w *World) Count(t ComponentType) int {
	if tab := w.tables[t]; tab != nil {
		return tab.Len()
	}
	return 0
}

// NextEntity returns the ID the next CreateEntity call will issue.
func (w *World) NextEntity() EntityID { return w.ids.next }

// storeOf returns the typed table for T, creating it on first use.
func storeOf[T Component](w *World) *Store[T] {
	var zero T
	t := zero.Type()
	if w.tables[t] == nil {
		s := NewStore[T]()
		w.tables[t] = s
		return s
	}
	s, ok := w.tables[t].(*Store[T])
	if !ok {
		panic(&TypeClashError{Type: t, Existing: w.tables[t].Name(), Wanted: NewStore[T]().Name()})
	}
	return s
}

// Add attaches v to id. If id already holds a T the value is overwritten
// (last write wins).
func Add[T Component](w *World, id EntityID, v T) {
	storeOf[T](w).Insert(id, v)
}

// Replace attaches v to id, overwriting any existing T.
func Replace[T Component](w *World, id EntityID, v T) {
	storeOf[T](w).Insert(id, v)
}

// Remove detaches T from id. No-op if absent.
func Remove[T Component](w *World, id EntityID) {
	storeOf[T](w).Remove(id)
}

// Has reports whether id holds a T.
func Has[T Component](w *World, id EntityID) bool {
	return storeOf[T](w).Contains(id)
}

// Get returns id's T. It panics with *MissingComponentError if absent.
func Get[T Component](w *World, id EntityID) *T {
	return storeOf[T](w).Get(id)
}

// Lookup returns id's T, or false if absent.
func Lookup[T Component](w *World, id EntityID) (*T, bool) {
	return storeOf[T](w).Lookup(id)
}

// Unique returns the entity holding T. Callers use it where game design
// guarantees a single holder (one paddle). With no holder it returns
// NilEntity; with several it returns the one stored first.
func Unique[T Component](w *World) EntityID {
	s := storeOf[T](w)
	if s.Len() == 0 {
		return NilEntity
	}
	return s.at(0)
}

// UniqueStrict is Unique with the ambiguity reported as ErrNotUnique.
func UniqueStrict[T Component](w *World) (EntityID, error) {
	s := storeOf[T](w)
	if s.Len() != 1 {
		return NilEntity, ErrNotUnique
	}
	return s.at(0), nil
}

// FindAll returns a query over every holder of T, with no further filters.
func FindAll[T Component](w *World) Query {
	s := storeOf[T](w)
	return Query{w: w, primary: s.typ}
}
