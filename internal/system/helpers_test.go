package system

import (
	"math/rand"
	"time"

	"brickout/internal/component"
	"brickout/internal/config"
	"brickout/internal/ecs"
	"brickout/internal/physics"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// recorder captures every event delivered to its listener entity.
type recorder struct {
	paddle []component.PaddleHit
	bounce []component.BounceHit
	walls  []component.PaddleWallHit
	power  []component.PowerUpHit
	over   int
}

func record(w *ecs.World) *recorder {
	r := &recorder{}
	w.CreateEntity(
		component.BallPaddleListener{Fn: func(e component.PaddleHit) { r.paddle = append(r.paddle, e) }},
		component.BounceListener{Fn: func(e component.BounceHit) { r.bounce = append(r.bounce, e) }},
		component.PaddleWallListener{Fn: func(e component.PaddleWallHit) { r.walls = append(r.walls, e) }},
		component.PaddlePowerUpListener{Fn: func(e component.PowerUpHit) { r.power = append(r.power, e) }},
		component.GameOverListener{Fn: func(component.GameOver) { r.over++ }},
	)
	return r
}

// newRules returns rules with a manual clock and a fixed power-up chance.
func newRules(chance float64) (*Rules, *ManualClock) {
	cfg := config.Default()
	cfg.PowerUp.Chance = chance
	clock := NewManualClock(epoch)
	return NewRules(cfg, clock, rand.New(rand.NewSource(1)), nil), clock
}

func addBall(w *ecs.World, at, vel physics.Vec) ecs.EntityID {
	return w.CreateEntity(
		component.TagBall{},
		component.Circle{Radius: 10},
		component.Position{X: at.X, Y: at.Y},
		component.VelocityOf(vel),
	)
}

func addBrick(w *ecs.World, at physics.Vec) ecs.EntityID {
	return w.CreateEntity(
		component.TagBrick{},
		component.TagBounce{},
		component.Position{X: at.X, Y: at.Y},
		component.Rectangle{Width: 20, Height: 20},
	)
}

func addBouncer(w *ecs.World, at physics.Vec, width, height float64) ecs.EntityID {
	return w.CreateEntity(
		component.TagWall{},
		component.TagBounce{},
		component.Position{X: at.X, Y: at.Y},
		component.Rectangle{Width: width, Height: height},
	)
}

func addPaddle(w *ecs.World, at physics.Vec) ecs.EntityID {
	return w.CreateEntity(
		component.TagPaddle{},
		component.Input{},
		component.Position{X: at.X, Y: at.Y},
		component.Rectangle{Width: 150, Height: 20},
	)
}

type heldKeys map[Key]bool

func (h heldKeys) Held(k Key) bool { return h[k] }
