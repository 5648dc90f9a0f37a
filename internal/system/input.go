package system

import (
	"brickout/internal/component"
	"brickout/internal/ecs"
)

// Key is a game control.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyLaunch
)

// Keys reports which controls are currently held.
type Keys interface {
	Held(Key) bool
}

// Steer gives every Input entity a horizontal velocity while left or right
// is held and stops it otherwise. Left wins when both are held.
func Steer(w *ecs.World, keys Keys, speed float64) {
	ecs.FindAll[component.Input](w).MutatingForEach(func(id ecs.EntityID) {
		switch {
		case keys.Held(KeyLeft):
			ecs.Replace(w, id, component.Velocity{X: -speed})
		case keys.Held(KeyRight):
			ecs.Replace(w, id, component.Velocity{X: speed})
		default:
			ecs.Remove[component.Velocity](w, id)
		}
	})
}
