package component

import (
	"brickout/internal/ecs"
	"brickout/internal/physics"
)

// PaddleHit is raised when a ball touches the paddle.
type PaddleHit struct {
	Ball, Paddle ecs.EntityID
}

// CollisionData records which axis hypotheses hit Object.
type CollisionData struct {
	Object      ecs.EntityID
	CollidesInX bool
	CollidesInY bool
}

// BounceHit is every bounce rectangle one ball touched in a frame.
type BounceHit struct {
	Ball ecs.EntityID
	Hits []CollisionData
}

// PaddleWallHit is raised when the paddle's motion this frame would carry
// it into a wall. TimeOfImpact is the fraction of Displacement travelled
// before contact.
type PaddleWallHit struct {
	Paddle       ecs.EntityID
	Wall         ecs.EntityID
	Displacement physics.Vec
	TimeOfImpact float64
}

type PowerUpHit struct {
	Paddle, PowerUp ecs.EntityID
}

// GameOver is raised once the last ball leaves the field.
type GameOver struct{}
