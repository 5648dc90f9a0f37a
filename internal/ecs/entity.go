package ecs

// EntityID identifies an entity in the world. IDs are issued from 0 upwards
// and are only handed out again after the world is cleared.
type EntityID uint64

// NilEntity is never issued by a World.
const NilEntity = ^EntityID(0)

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// MaxComponentTypes bounds the per-world table array.
const MaxComponentTypes = 64

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// entityRegistry is a plain counter; entities carry no data of their own.
type entityRegistry struct {
	next EntityID
}

func (r *entityRegistry) issue() EntityID {
	id := r.next
	r.next++
	return id
}

func (r *entityRegistry) reset() { r.next = 0 }
