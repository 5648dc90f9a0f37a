package component

import (
	"brickout/internal/ecs"
	"brickout/internal/physics"
)

const (
	CCircle    ecs.ComponentType = 3
	CRectangle ecs.ComponentType = 4
)

type Circle struct {
	Radius float64
}

func (Circle) Type() ecs.ComponentType { return CCircle }

// Rectangle is an axis-aligned box centred on the entity's Position.
type Rectangle struct {
	Width, Height float64
}

func (Rectangle) Type() ecs.ComponentType { return CRectangle }

// Bounds returns the box r occupies when centred on p.
func (r Rectangle) Bounds(p Position) physics.AABB {
	return physics.Box(p.Vec(), r.Width, r.Height)
}
