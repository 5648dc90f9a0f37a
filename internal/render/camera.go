package render

import (
	"math"

	"brickout/internal/physics"
)

// Camera maps world units onto a block of terminal cells. The whole play
// field is always in view, so X and Y are scaled independently.
type Camera struct {
	WorldWidth  float64
	WorldHeight float64
	Cols        int // in terminal columns
	Rows        int // in terminal rows
}

// NewCamera fits a worldW x worldH field into cols x rows cells.
func NewCamera(worldW, worldH float64, cols, rows int) *Camera {
	return &Camera{WorldWidth: worldW, WorldHeight: worldH, Cols: max(cols, 1), Rows: max(rows, 1)}
}

func (c *Camera) col(x float64) float64 { return x * float64(c.Cols) / c.WorldWidth }
func (c *Camera) row(y float64) float64 { return y * float64(c.Rows) / c.WorldHeight }

// WorldToScreen converts a world point to the cell containing it.
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p physics.Vec) (sx, sy int, visible bool) {
	sx = int(math.Floor(c.col(p.X)))
	sy = int(math.Floor(c.row(p.Y)))
	visible = sx >= 0 && sx < c.Cols && sy >= 0 && sy < c.Rows
	return
}

// Cells returns the inclusive cell span covered by b, clipped to the
// viewport. ok is false when nothing of b is on screen. Every box covers
// at least one cell.
func (c *Camera) Cells(b physics.AABB) (x0, y0, x1, y1 int, ok bool) {
	x0 = int(math.Floor(c.col(b.Min.X)))
	y0 = int(math.Floor(c.row(b.Min.Y)))
	x1 = max(int(math.Ceil(c.col(b.Max.X)))-1, x0)
	y1 = max(int(math.Ceil(c.row(b.Max.Y)))-1, y0)

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.Cols-1), min(y1, c.Rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}
