package component

import (
	"time"

	"brickout/internal/ecs"
	"brickout/internal/physics"
)

const (
	CInput      ecs.ComponentType = 7
	CLink       ecs.ComponentType = 8
	CTimedEvent ecs.ComponentType = 9
)

// Input marks the entity steered by the left/right keys.
type Input struct{}

func (Input) Type() ecs.ComponentType { return CInput }

// Link pins an entity's Position to Target's Position plus Offset.
type Link struct {
	Target ecs.EntityID
	Offset physics.Vec
}

func (Link) Type() ecs.ComponentType { return CLink }

// TimedEvent runs Fn once the clock reaches When.
type TimedEvent struct {
	When time.Time
	Fn   func()
}

func (TimedEvent) Type() ecs.ComponentType { return CTimedEvent }
