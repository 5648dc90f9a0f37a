package ecs

import (
	"errors"
	"fmt"
)

// ErrNotUnique is returned by UniqueStrict when zero or several entities
// hold the requested component.
var ErrNotUnique = errors.New("ecs: component is not held by exactly one entity")

// MissingComponentError is the panic value raised when a component is read
// from an entity that does not hold it.
type MissingComponentError struct {
	Type   ComponentType
	Name   string
	Entity EntityID
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("ecs: entity %d has no %s component (type %d)", e.Entity, e.Name, e.Type)
}

// TypeClashError is the panic value raised when two Go types declare the
// same ComponentType.
type TypeClashError struct {
	Type     ComponentType
	Existing string
	Wanted   string
}

func (e *TypeClashError) Error() string {
	return fmt.Sprintf("ecs: component type %d is %s, not %s", e.Type, e.Existing, e.Wanted)
}
