package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"brickout/assets"
)

// HUD is the status shown under the play field.
type HUD struct {
	Level    string
	Round    int
	Bricks   int
	Broken   int
	Piercing time.Duration
	Prompt   string // centred over the field when non-empty
}

// DrawHUD renders the status bar at the bottom of the screen.
func (r *Renderer) DrawHUD(h HUD) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf(" %s  round %d  bricks %d  broken %d", h.Level, h.Round, h.Bricks, h.Broken)
	if h.Piercing > 0 {
		status += fmt.Sprintf("  PIERCING %.1fs", h.Piercing.Seconds())
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(assets.ColorHUD))

	if h.Prompt != "" {
		x := (screenW - runewidth.StringWidth(h.Prompt)) / 2
		r.drawText(max(x, 0), r.camera.Rows*2/3, h.Prompt, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
