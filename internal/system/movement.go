package system

import (
	"brickout/internal/component"
	"brickout/internal/ecs"
	"brickout/internal/physics"
)

// Move advances every entity with a Velocity by v*dt.
func Move(w *ecs.World, dt float64) {
	ecs.Each2(ecs.FindAll[component.Velocity](w), func(_ ecs.EntityID, pos *component.Position, v *component.Velocity) {
		pos.Set(pos.Vec().Add(v.Vec().Scale(dt)))
	})
}

// FollowLinks snaps every linked entity to its target plus offset. Links
// whose target is gone are left in place.
func FollowLinks(w *ecs.World) {
	ecs.Each2(ecs.FindAll[component.Link](w), func(_ ecs.EntityID, l *component.Link, pos *component.Position) {
		target, ok := ecs.Lookup[component.Position](w, l.Target)
		if !ok {
			return
		}
		pos.Set(target.Vec().Add(l.Offset))
	})
}

// Launch sends every ball off the paddle as if it had just bounced off it.
func Launch(w *ecs.World, speed float64) {
	pp, ok := ecs.Lookup[component.Position](w, ecs.Unique[component.TagPaddle](w))
	if !ok {
		return
	}
	from := pp.Vec()
	ecs.Each1(ecs.FindAll[component.TagBall](w), func(ball ecs.EntityID, pos *component.Position) {
		ecs.Replace(w, ball, component.VelocityOf(physics.Redirect(from, pos.Vec(), speed)))
	})
}
