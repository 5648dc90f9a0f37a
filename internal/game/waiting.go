package game

import (
	"brickout/internal/component"
	"brickout/internal/ecs"
	"brickout/internal/factory"
	"brickout/internal/system"
)

// waitingState builds the level and keeps the ball resting on the paddle
// until the player launches it.
type waitingState struct {
	g  *Game
	fx Effects
}

func (s *waitingState) Enter() {
	g, w := s.g, s.g.world
	w.Clear()
	paddle, ball := factory.Populate(w, g.cfg, g.bricks)
	g.keys.Release(system.KeyLaunch)

	s.fx.Use(func() func() {
		offset := ecs.Get[component.Position](w, ball).Vec().Sub(ecs.Get[component.Position](w, paddle).Vec())
		ecs.Add(w, ball, component.Link{Target: paddle, Offset: offset})
		return func() { ecs.Remove[component.Link](w, ball) }
	})
	s.fx.Use(func() func() {
		id := w.CreateEntity(component.PaddleWallListener{Fn: func(e component.PaddleWallHit) {
			g.rules.PaddleWall(w, e)
		}})
		return func() { w.DeleteEntity(id) }
	})
}

func (s *waitingState) Exit() { s.fx.Cleanup() }

func (s *waitingState) Update(dt float64) {
	g, w := s.g, s.g.world
	if g.keys.Held(system.KeyLaunch) {
		g.transition(StateRunning)
		return
	}
	system.Steer(w, g.keys, g.cfg.Paddle.Speed)
	system.Collide(w, dt)
	system.Move(w, dt)
	system.FollowLinks(w)
}
