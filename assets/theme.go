package assets

import (
	"embed"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used to paint entities into terminal cells.
const (
	GlyphBall    = '●'
	GlyphPaddle  = '█'
	GlyphBrick   = '▆'
	GlyphWall    = '░'
	GlyphPowerUp = '◆'
)

// Fixed palette for everything that is not a brick. Brick colours come
// from the level layout.
var (
	ColorBall     = tcell.ColorWhite
	ColorPiercing = tcell.ColorRed
	ColorPaddle   = tcell.ColorLightGray
	ColorWall     = tcell.ColorGray
	ColorPowerUp  = tcell.ColorYellow
	ColorHUD      = tcell.ColorSilver
)

// Levels holds the built-in level layouts.
//
//go:embed levels/*.yaml
var Levels embed.FS

// DefaultLevel is the layout loaded when no level file is configured.
const DefaultLevel = "levels/classic.yaml"
