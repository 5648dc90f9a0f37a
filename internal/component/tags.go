package component

import "brickout/internal/ecs"

const (
	CTagBall          ecs.ComponentType = 10
	CTagPaddle        ecs.ComponentType = 11
	CTagBrick         ecs.ComponentType = 12
	CTagWall          ecs.ComponentType = 13
	CTagPiercing      ecs.ComponentType = 14
	CTagPowerUp       ecs.ComponentType = 15
	CTagBounce        ecs.ComponentType = 16
	CTagPiercingTimer ecs.ComponentType = 17
)

type TagBall struct{}

func (TagBall) Type() ecs.ComponentType { return CTagBall }

type TagPaddle struct{}

func (TagPaddle) Type() ecs.ComponentType { return CTagPaddle }

// TagBrick marks destructible blocks.
type TagBrick struct{}

func (TagBrick) Type() ecs.ComponentType { return CTagBrick }

// TagWall marks the play-field boundaries the paddle cannot pass.
type TagWall struct{}

func (TagWall) Type() ecs.ComponentType { return CTagWall }

// TagPiercing marks a ball that passes through bricks instead of
// bouncing off them.
type TagPiercing struct{}

func (TagPiercing) Type() ecs.ComponentType { return CTagPiercing }

type TagPowerUp struct{}

func (TagPowerUp) Type() ecs.ComponentType { return CTagPowerUp }

// TagBounce marks rectangles the ball bounces off (walls and bricks).
type TagBounce struct{}

func (TagBounce) Type() ecs.ComponentType { return CTagBounce }

// TagPiercingTimer marks the entity holding the piercing expiry event.
type TagPiercingTimer struct{}

func (TagPiercingTimer) Type() ecs.ComponentType { return CTagPiercingTimer }
