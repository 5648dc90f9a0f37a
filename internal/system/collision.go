package system

import (
	"math"

	"brickout/internal/component"
	"brickout/internal/ecs"
	"brickout/internal/physics"
)

// Collide detects this frame's collisions and notifies the matching
// listeners. It never resolves anything itself: velocities, positions and
// deletions are up to the listeners. dt is the frame time in seconds.
//
// Balls are tested twice, once displaced along X only and once along Y
// only, so a listener can tell which velocity component to reflect.
func Collide(w *ecs.World, dt float64) {
	collideBalls(w, dt)
	collidePaddleWalls(w, dt)
	collidePaddlePowerUps(w)
}

func collideBalls(w *ecs.World, dt float64) {
	ecs.MutatingEach3(ecs.FindAll[component.TagBall](w),
		func(ball ecs.EntityID, c *component.Circle, pos *component.Position, vel *component.Velocity) {
			step := vel.Vec().Scale(dt)
			nextX := physics.Vec{X: pos.X + step.X, Y: pos.Y}
			nextY := physics.Vec{X: pos.X, Y: pos.Y + step.Y}
			r := c.Radius

			var paddles []ecs.EntityID
			ecs.Each2(ecs.FindAll[component.TagPaddle](w),
				func(id ecs.EntityID, rect *component.Rectangle, p *component.Position) {
					box := rect.Bounds(*p)
					if physics.CircleCollides(nextX, r, box) || physics.CircleCollides(nextY, r, box) {
						paddles = append(paddles, id)
					}
				})
			for _, paddle := range paddles {
				ecs.Notify[component.BallPaddleListener](w, component.PaddleHit{Ball: ball, Paddle: paddle})
			}

			var hits []component.CollisionData
			ecs.MutatingEach2(ecs.FindAll[component.TagBounce](w),
				func(id ecs.EntityID, rect *component.Rectangle, p *component.Position) {
					box := rect.Bounds(*p)
					inX := physics.CircleCollides(nextX, r, box)
					inY := physics.CircleCollides(nextY, r, box)
					if inX || inY {
						hits = append(hits, component.CollisionData{Object: id, CollidesInX: inX, CollidesInY: inY})
					}
				})
			if len(hits) > 0 {
				ecs.Notify[component.BounceListener](w, component.BounceHit{Ball: ball, Hits: hits})
			}
		})
}

// collidePaddleWalls sweeps each moving paddle against every wall and
// reports the earliest contact.
func collidePaddleWalls(w *ecs.World, dt float64) {
	ecs.MutatingEach3(ecs.FindAll[component.TagPaddle](w),
		func(paddle ecs.EntityID, rect *component.Rectangle, pos *component.Position, vel *component.Velocity) {
			disp := vel.Vec().Scale(dt)
			box := rect.Bounds(*pos)

			best, wall := math.Inf(1), ecs.NilEntity
			ecs.Each2(ecs.FindAll[component.TagWall](w),
				func(id ecs.EntityID, wr *component.Rectangle, wp *component.Position) {
					if t, hit := physics.Sweep(box, disp, wr.Bounds(*wp)); hit && t < best {
						best, wall = t, id
					}
				})
			if wall == ecs.NilEntity {
				return
			}
			ecs.Notify[component.PaddleWallListener](w, component.PaddleWallHit{
				Paddle:       paddle,
				Wall:         wall,
				Displacement: disp,
				TimeOfImpact: best,
			})
		})
}

func collidePaddlePowerUps(w *ecs.World) {
	var hits []component.PowerUpHit
	ecs.Each2(ecs.FindAll[component.TagPaddle](w),
		func(paddle ecs.EntityID, rect *component.Rectangle, pos *component.Position) {
			box := rect.Bounds(*pos)
			ecs.Each2(ecs.FindAll[component.TagPowerUp](w),
				func(id ecs.EntityID, pr *component.Rectangle, pp *component.Position) {
					if physics.Overlaps(box, pr.Bounds(*pp)) {
						hits = append(hits, component.PowerUpHit{Paddle: paddle, PowerUp: id})
					}
				})
		})
	for _, h := range hits {
		ecs.Notify[component.PaddlePowerUpListener](w, h)
	}
}
