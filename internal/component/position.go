package component

import (
	"brickout/internal/ecs"
	"brickout/internal/physics"
)

const (
	CPosition ecs.ComponentType = 1
	CVelocity ecs.ComponentType = 2
)

// Position is the centre of an entity in world units.
type Position struct {
	X, Y float64
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Vec returns p as a vector.
func (p Position) Vec() physics.Vec { return physics.Vec{X: p.X, Y: p.Y} }

// Set moves p to v.
func (p *Position) Set(v physics.Vec) { p.X, p.Y = v.X, v.Y }

// Velocity is measured in world units per second.
type Velocity struct {
	X, Y float64
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }

func (v Velocity) Vec() physics.Vec { return physics.Vec{X: v.X, Y: v.Y} }

// VelocityOf converts a vector into a Velocity component.
func VelocityOf(v physics.Vec) Velocity { return Velocity{X: v.X, Y: v.Y} }
