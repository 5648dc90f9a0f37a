package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"brickout/internal/component"
	"brickout/internal/ecs"
)

// hudRows is the space reserved under the play field.
const hudRows = 2

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer fitting a worldW x worldH field into the
// screen above the HUD.
func NewRenderer(screen tcell.Screen, worldW, worldH float64) *Renderer {
	r := &Renderer{screen: screen, camera: &Camera{WorldWidth: worldW, WorldHeight: worldH}}
	r.Resize()
	return r
}

// Resize refits the camera after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(r.camera.WorldWidth, r.camera.WorldHeight, w, h-hudRows)
}

// Camera exposes the current world-to-cell mapping.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame renders every visible entity and the HUD.
func (r *Renderer) DrawFrame(w *ecs.World, hud HUD) {
	r.screen.Clear()
	r.drawRectangles(w)
	r.drawCircles(w)
	r.DrawHUD(hud)
	r.screen.Show()
}

func (r *Renderer) drawRectangles(w *ecs.World) {
	ecs.Each3(ecs.FindAll[component.Visible](w),
		func(_ ecs.EntityID, rect *component.Rectangle, pos *component.Position, st *component.Style) {
			x0, y0, x1, y1, ok := r.camera.Cells(rect.Bounds(*pos))
			if !ok {
				return
			}
			style := tcell.StyleDefault.Foreground(st.Color)
			step := max(runewidth.RuneWidth(st.Glyph), 1)
			for y := y0; y <= y1; y++ {
				for x := x0; x+step-1 <= x1; x += step {
					r.screen.SetContent(x, y, st.Glyph, nil, style)
				}
			}
		})
}

func (r *Renderer) drawCircles(w *ecs.World) {
	ecs.Each3(ecs.FindAll[component.Visible](w),
		func(_ ecs.EntityID, _ *component.Circle, pos *component.Position, st *component.Style) {
			sx, sy, ok := r.camera.WorldToScreen(pos.Vec())
			if !ok {
				return
			}
			r.screen.SetContent(sx, sy, st.Glyph, nil, tcell.StyleDefault.Foreground(st.Color).Bold(true))
		})
}
