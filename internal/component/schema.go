package component

import "brickout/internal/ecs"

// Schema declares every component type the game stores.
func Schema() *ecs.Schema {
	s := ecs.NewSchema()
	ecs.Declare[Position](s)
	ecs.Declare[Velocity](s)
	ecs.Declare[Circle](s)
	ecs.Declare[Rectangle](s)
	ecs.Declare[Visible](s)
	ecs.Declare[Style](s)
	ecs.Declare[Input](s)
	ecs.Declare[Link](s)
	ecs.Declare[TimedEvent](s)

	ecs.Declare[TagBall](s)
	ecs.Declare[TagPaddle](s)
	ecs.Declare[TagBrick](s)
	ecs.Declare[TagWall](s)
	ecs.Declare[TagPiercing](s)
	ecs.Declare[TagPowerUp](s)
	ecs.Declare[TagBounce](s)
	ecs.Declare[TagPiercingTimer](s)

	ecs.Declare[BallPaddleListener](s)
	ecs.Declare[BounceListener](s)
	ecs.Declare[PaddleWallListener](s)
	ecs.Declare[PaddlePowerUpListener](s)
	ecs.Declare[GameOverListener](s)
	return s
}

// NewWorld returns an empty world declaring every game component.
func NewWorld() *ecs.World { return ecs.NewWorld(Schema()) }
