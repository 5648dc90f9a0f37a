package system

import (
	"brickout/internal/component"
	"brickout/internal/ecs"
)

// CheckGameOver deletes balls that fell past the bottom edge. When no ball
// is left it notifies the GameOverListeners once and reports true.
func CheckGameOver(w *ecs.World, height float64) bool {
	inPlay := false
	ecs.MutatingEach1(ecs.FindAll[component.TagBall](w), func(ball ecs.EntityID, pos *component.Position) {
		if pos.Y >= height {
			w.DeleteEntity(ball)
			return
		}
		inPlay = true
	})
	if inPlay {
		return false
	}
	ecs.Notify[component.GameOverListener](w, component.GameOver{})
	return true
}

// CullPowerUps deletes power-ups that fell past the bottom edge.
func CullPowerUps(w *ecs.World, height float64) int {
	n := 0
	ecs.MutatingEach1(ecs.FindAll[component.TagPowerUp](w), func(id ecs.EntityID, pos *component.Position) {
		if pos.Y >= height {
			w.DeleteEntity(id)
			n++
		}
	})
	return n
}

// BricksLeft returns how many bricks remain.
func BricksLeft(w *ecs.World) int {
	return ecs.FindAll[component.TagBrick](w).Count()
}
