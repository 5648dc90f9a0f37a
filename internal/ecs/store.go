package ecs

import "fmt"

// table is the type-erased view of a Store that the World and queries use.
type table interface {
	Contains(id EntityID) bool
	Remove(id EntityID)
	Len() int
	Entities() []EntityID
	Clear()
	Name() string

	at(i int) EntityID
	insertAny(id EntityID, c Component)
}

// Store is the table for one component type. Values live behind stable
// pointers, so a *T handed to a callback stays valid while other entities
// are attached to or detached from the same store.
type Store[T Component] struct {
	typ      ComponentType
	name     string
	entities []EntityID
	values   []*T
	index    map[EntityID]int
}

// NewStore creates an empty store for component type T.
func NewStore[T Component]() *Store[T] {
	var zero T
	return &Store[T]{
		typ:      zero.Type(),
		name:     fmt.Sprintf("%T", zero),
		entities: make([]EntityID, 0, 16),
		values:   make([]*T, 0, 16),
		index:    make(map[EntityID]int, 16),
	}
}

// Insert attaches v to id. Inserting over an existing value overwrites it
// in place.
func (s *Store[T]) Insert(id EntityID, v T) {
	if i, ok := s.index[id]; ok {
		*s.values[i] = v
		return
	}
	p := new(T)
	*p = v
	s.index[id] = len(s.entities)
	s.entities = append(s.entities, id)
	s.values = append(s.values, p)
}

// Remove detaches the component from id. No-op if absent.
func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	s.entities = s.entities[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	delete(s.index, id)
}

// Contains reports whether id holds this component.
func (s *Store[T]) Contains(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Get returns the component of id. It panics with *MissingComponentError
// when id does not hold it; use Lookup where absence is expected.
func (s *Store[T]) Get(id EntityID) *T {
	i, ok := s.index[id]
	if !ok {
		panic(&MissingComponentError{Type: s.typ, Name: s.name, Entity: id})
	}
	return s.values[i]
}

// Lookup returns the component of id, or false if absent.
func (s *Store[T]) Lookup(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.values[i], true
}

// Len returns the number of entities holding this component.
func (s *Store[T]) Len() int { return len(s.entities) }

// Entities returns a copy of the holders in table order.
func (s *Store[T]) Entities() []EntityID {
	out := make([]EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

// Clear empties the store.
func (s *Store[T]) Clear() {
	clear(s.values)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
	s.index = make(map[EntityID]int, 16)
}

// Name returns the Go type name of T, used in diagnostics.
func (s *Store[T]) Name() string { return s.name }

func (s *Store[T]) at(i int) EntityID { return s.entities[i] }

func (s *Store[T]) insertAny(id EntityID, c Component) {
	if p, ok := any(c).(*T); ok {
		s.Insert(id, *p)
		return
	}
	v, ok := c.(T)
	if !ok {
		panic(&TypeClashError{Type: s.typ, Existing: s.name, Wanted: fmt.Sprintf("%T", c)})
	}
	s.Insert(id, v)
}
