package component

import (
	"brickout/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const (
	CVisible ecs.ComponentType = 5
	CStyle   ecs.ComponentType = 6
)

// Visible marks entities the renderer draws.
type Visible struct{}

func (Visible) Type() ecs.ComponentType { return CVisible }

// Style is how a shape is painted into terminal cells.
type Style struct {
	Glyph rune
	Color tcell.Color
}

func (Style) Type() ecs.ComponentType { return CStyle }
