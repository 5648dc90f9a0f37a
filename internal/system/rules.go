package system

import (
	"math/rand"

	"go.uber.org/zap"

	"brickout/internal/component"
	"brickout/internal/config"
	"brickout/internal/ecs"
	"brickout/internal/factory"
	"brickout/internal/physics"
)

// Stats counts what happened during a level.
type Stats struct {
	BricksBroken      int
	PowerUpsCollected int
	Bounces           int
}

// Rules resolves the collisions reported by Collide: it owns the game's
// response to every collision event.
type Rules struct {
	Ball    config.BallConfig
	PowerUp config.PowerUpConfig
	Clock   Clock
	Rand    *rand.Rand
	Log     *zap.Logger

	// OnGameOver runs after the last ball leaves the field.
	OnGameOver func()

	Stats Stats
}

// NewRules returns rules configured from cfg.
func NewRules(cfg *config.Config, clock Clock, rng *rand.Rand, log *zap.Logger) *Rules {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rules{
		Ball:    cfg.Ball,
		PowerUp: cfg.PowerUp,
		Clock:   clock,
		Rand:    rng,
		Log:     log,
	}
}

// Register attaches the rule listeners to a new entity and returns it.
// Deleting that entity unregisters every rule at once.
func (r *Rules) Register(w *ecs.World) ecs.EntityID {
	return w.CreateEntity(
		component.BallPaddleListener{Fn: func(e component.PaddleHit) { r.BallPaddle(w, e) }},
		component.BounceListener{Fn: func(e component.BounceHit) { r.Bounce(w, e) }},
		component.PaddleWallListener{Fn: func(e component.PaddleWallHit) { r.PaddleWall(w, e) }},
		component.PaddlePowerUpListener{Fn: func(e component.PowerUpHit) { r.PaddlePowerUp(w, e) }},
		component.GameOverListener{Fn: func(component.GameOver) { r.GameOver() }},
	)
}

// BallPaddle sends the ball away from the paddle centre at full speed, so
// hitting the paddle's edge gives a steeper angle.
func (r *Rules) BallPaddle(w *ecs.World, e component.PaddleHit) {
	bp, ok := ecs.Lookup[component.Position](w, e.Ball)
	if !ok {
		return
	}
	pp, ok := ecs.Lookup[component.Position](w, e.Paddle)
	if !ok {
		return
	}
	v := physics.Redirect(pp.Vec(), bp.Vec(), r.Ball.Speed)
	ecs.Replace(w, e.Ball, component.VelocityOf(v))
}

// Bounce resolves one ball's batch of hits. Bricks are destroyed; each
// velocity axis is reflected at most once however many objects were hit
// on it. A piercing ball ignores bricks when deciding which axes to
// reflect.
func (r *Rules) Bounce(w *ecs.World, e component.BounceHit) {
	vel, ok := ecs.Lookup[component.Velocity](w, e.Ball)
	if !ok {
		return
	}
	piercing := ecs.Has[component.TagPiercing](w, e.Ball)

	var flipX, flipY bool
	for _, hit := range e.Hits {
		if ecs.Has[component.TagBrick](w, hit.Object) {
			r.breakBrick(w, hit.Object)
			if piercing {
				continue
			}
		}
		flipX = flipX || hit.CollidesInX
		flipY = flipY || hit.CollidesInY
	}
	if flipX {
		vel.X = -vel.X
	}
	if flipY {
		vel.Y = -vel.Y
	}
	if flipX || flipY {
		r.Stats.Bounces++
	}
}

func (r *Rules) breakBrick(w *ecs.World, brick ecs.EntityID) {
	pos, ok := ecs.Lookup[component.Position](w, brick)
	if !ok {
		return
	}
	at := pos.Vec()
	w.DeleteEntity(brick)
	r.Stats.BricksBroken++

	if r.Rand != nil && r.Rand.Float64() < r.PowerUp.Chance {
		id := factory.NewPowerUp(w, r.PowerUp, at)
		r.Log.Debug("power-up dropped", zap.Uint64("entity", uint64(id)), zap.Float64("x", at.X), zap.Float64("y", at.Y))
	}
}

// PaddleWall stops the paddle at the moment it touches the wall.
func (r *Rules) PaddleWall(w *ecs.World, e component.PaddleWallHit) {
	pos, ok := ecs.Lookup[component.Position](w, e.Paddle)
	if !ok {
		return
	}
	pos.Set(pos.Vec().Add(e.Displacement.Scale(e.TimeOfImpact)))
	ecs.Remove[component.Velocity](w, e.Paddle)
}

// PaddlePowerUp consumes the power-up and makes every ball piercing until
// the piercing timer runs out. Catching another power-up while piercing
// restarts the timer.
func (r *Rules) PaddlePowerUp(w *ecs.World, e component.PowerUpHit) {
	if !ecs.Has[component.TagPowerUp](w, e.PowerUp) {
		return
	}
	w.DeleteEntity(e.PowerUp)
	r.Stats.PowerUpsCollected++

	ecs.FindAll[component.TagBall](w).Ignore(component.CTagPiercing).MutatingForEach(func(ball ecs.EntityID) {
		ecs.Add(w, ball, component.TagPiercing{})
	})

	timer := ecs.Unique[component.TagPiercingTimer](w)
	if timer == ecs.NilEntity {
		timer = w.CreateEntity(component.TagPiercingTimer{})
	}
	until := r.Clock.Now().Add(r.PowerUp.PiercingDuration)
	ecs.Replace(w, timer, component.TimedEvent{
		When: until,
		Fn: func() {
			ecs.FindAll[component.TagPiercing](w).MutatingForEach(func(ball ecs.EntityID) {
				ecs.Remove[component.TagPiercing](w, ball)
			})
			w.DeleteEntity(timer)
			r.Log.Debug("piercing expired")
		},
	})
	r.Log.Debug("piercing active", zap.Time("until", until))
}

// GameOver forwards to OnGameOver.
func (r *Rules) GameOver() {
	r.Log.Info("game over",
		zap.Int("bricks_broken", r.Stats.BricksBroken),
		zap.Int("power_ups", r.Stats.PowerUpsCollected))
	if r.OnGameOver != nil {
		r.OnGameOver()
	}
}
