package audio

import (
	"brickout/internal/component"
	"brickout/internal/ecs"
)

// Register attaches listeners that play p's effects on collisions and
// returns the listener entity.
func Register(w *ecs.World, p *Player) ecs.EntityID {
	return w.CreateEntity(
		component.BallPaddleListener{Fn: func(component.PaddleHit) { p.Play(SoundPaddle) }},
		component.BounceListener{Fn: func(component.BounceHit) { p.Play(SoundBounce) }},
		component.PaddlePowerUpListener{Fn: func(component.PowerUpHit) { p.Play(SoundPowerUp) }},
		component.GameOverListener{Fn: func(component.GameOver) { p.Play(SoundGameOver) }},
	)
}
