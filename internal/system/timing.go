package system

import (
	"time"

	"brickout/internal/component"
	"brickout/internal/ecs"
)

// FireTimers runs every TimedEvent that is due at now. The event is
// detached before its callback runs, so a callback may schedule a new one
// on the same entity.
func FireTimers(w *ecs.World, now time.Time) {
	ecs.MutatingEach1(ecs.FindAll[component.TimedEvent](w), func(id ecs.EntityID, ev *component.TimedEvent) {
		if now.Before(ev.When) {
			return
		}
		fn := ev.Fn
		ecs.Remove[component.TimedEvent](w, id)
		if fn != nil {
			fn()
		}
	})
}

// PiercingLeft returns how long balls stay piercing, or 0 when no
// piercing timer is running.
func PiercingLeft(w *ecs.World, now time.Time) time.Duration {
	ev, ok := ecs.Lookup[component.TimedEvent](w, ecs.Unique[component.TagPiercingTimer](w))
	if !ok {
		return 0
	}
	return max(ev.When.Sub(now), 0)
}
