package game

import (
	"brickout/internal/audio"
	"brickout/internal/system"
)

// runningState is live play: the ball is launched on entry and the rules
// resolve collisions until every ball is lost or every brick is broken.
type runningState struct {
	g    *Game
	fx   Effects
	over bool
}

func (s *runningState) Enter() {
	g, w := s.g, s.g.world
	s.over = false
	g.started = g.clock.Now()
	system.Launch(w, g.cfg.Ball.Speed)

	// Sound listeners come first so they still hear the game-over event
	// that clears the world.
	if g.audio != nil {
		s.fx.Use(func() func() {
			id := audio.Register(w, g.audio)
			return func() { w.DeleteEntity(id) }
		})
	}
	s.fx.Use(func() func() {
		g.rules.OnGameOver = func() {
			w.Clear()
			s.over = true
		}
		id := g.rules.Register(w)
		return func() {
			w.DeleteEntity(id)
			g.rules.OnGameOver = nil
		}
	})
}

func (s *runningState) Exit() { s.fx.Cleanup() }

func (s *runningState) Update(dt float64) {
	g, w := s.g, s.g.world
	h := g.cfg.Window.Height

	system.FireTimers(w, g.clock.Now())
	system.Steer(w, g.keys, g.cfg.Paddle.Speed)
	system.Collide(w, dt)
	system.Move(w, dt)
	system.CullPowerUps(w, h)

	if system.CheckGameOver(w, h) || s.over {
		g.gameOver()
		return
	}
	if system.BricksLeft(w) == 0 {
		g.levelCleared()
	}
}
