package factory

import (
	"github.com/gdamore/tcell/v2"

	"brickout/assets"
	"brickout/internal/component"
	"brickout/internal/config"
	"brickout/internal/ecs"
	"brickout/internal/level"
	"brickout/internal/physics"
)

// NewPaddle creates the player's paddle centred horizontally, resting
// BorderDistance above the bottom edge.
func NewPaddle(w *ecs.World, cfg *config.Config) ecs.EntityID {
	p := cfg.Paddle
	return w.CreateEntity(
		component.Input{},
		component.TagPaddle{},
		component.Position{X: cfg.Window.Width / 2, Y: cfg.Window.Height - p.BorderDistance - p.Height/2},
		component.Rectangle{Width: p.Width, Height: p.Height},
		component.Style{Glyph: assets.GlyphPaddle, Color: assets.ColorPaddle},
		component.Visible{},
	)
}

// NewBall creates a ball resting on top of the paddle.
func NewBall(w *ecs.World, cfg *config.Config) ecs.EntityID {
	p := cfg.Paddle
	return w.CreateEntity(
		component.TagBall{},
		component.Circle{Radius: cfg.Ball.Radius},
		component.Position{X: cfg.Window.Width / 2, Y: cfg.Window.Height - p.BorderDistance - p.Height - cfg.Ball.Radius},
		component.Style{Glyph: assets.GlyphBall, Color: assets.ColorBall},
		component.Visible{},
	)
}

// NewBrick creates a destructible brick centred on c.
func NewBrick(w *ecs.World, cfg *config.Config, c physics.Vec, color tcell.Color) ecs.EntityID {
	return w.CreateEntity(
		component.TagBrick{},
		component.TagBounce{},
		component.Position{X: c.X, Y: c.Y},
		component.Rectangle{Width: cfg.Brick.Width, Height: cfg.Brick.Height},
		component.Style{Glyph: assets.GlyphBrick, Color: color},
		component.Visible{},
	)
}

// NewWall creates a boundary. Bouncing walls also deflect the ball; the
// floor only stops the paddle.
func NewWall(w *ecs.World, c physics.Vec, width, height float64, bounce bool) ecs.EntityID {
	id := w.CreateEntity(
		component.TagWall{},
		component.Position{X: c.X, Y: c.Y},
		component.Rectangle{Width: width, Height: height},
	)
	if bounce {
		ecs.Add(w, id, component.TagBounce{})
		ecs.Add(w, id, component.Style{Glyph: assets.GlyphWall, Color: assets.ColorWall})
		ecs.Add(w, id, component.Visible{})
	}
	return id
}

// NewWalls creates the top, left and right walls and the floor below the
// window.
func NewWalls(w *ecs.World, cfg *config.Config) {
	W, H, B := cfg.Window.Width, cfg.Window.Height, cfg.Window.Border
	NewWall(w, physics.Vec{X: W / 2, Y: B / 2}, W, B, true)
	NewWall(w, physics.Vec{X: B / 2, Y: H / 2}, B, H, true)
	NewWall(w, physics.Vec{X: W - B/2, Y: H / 2}, B, H, true)
	NewWall(w, physics.Vec{X: W / 2, Y: H + B/2}, W, B, false)
}

// NewPowerUp creates a power-up at c falling at the configured speed.
func NewPowerUp(w *ecs.World, cfg config.PowerUpConfig, c physics.Vec) ecs.EntityID {
	return w.CreateEntity(
		component.TagPowerUp{},
		component.Position{X: c.X, Y: c.Y},
		component.Velocity{X: 0, Y: cfg.Speed},
		component.Rectangle{Width: cfg.Size, Height: cfg.Size},
		component.Style{Glyph: assets.GlyphPowerUp, Color: assets.ColorPowerUp},
		component.Visible{},
	)
}

// Populate builds a level: walls, paddle, ball and the layout's bricks.
// It returns the paddle and ball.
func Populate(w *ecs.World, cfg *config.Config, bricks []level.Brick) (paddle, ball ecs.EntityID) {
	NewWalls(w, cfg)
	paddle = NewPaddle(w, cfg)
	ball = NewBall(w, cfg)
	for _, b := range bricks {
		NewBrick(w, cfg, b.Center, b.Color)
	}
	return paddle, ball
}
