package physics

import "math"

// AABB is an axis-aligned box given by its min and max corners.
type AABB struct {
	Min, Max Vec
}

// Box returns the AABB of a w*h rectangle centred on c.
func Box(c Vec, w, h float64) AABB {
	half := Vec{w / 2, h / 2}
	return AABB{Min: c.Sub(half), Max: c.Add(half)}
}

// Translate returns b moved by d.
func (b AABB) Translate(d Vec) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Center returns the centre of b.
func (b AABB) Center() Vec { return b.Min.Add(b.Max).Scale(0.5) }

// Overlaps reports whether a and b share interior area.
func Overlaps(a, b AABB) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// CircleCollides reports whether a circle of radius r centred on c overlaps
// box b. The circle centre is clamped into b; the circle collides when the
// squared distance to that closest point is at most r², so touching counts.
func CircleCollides(c Vec, r float64, b AABB) bool {
	closest := Vec{clamp(c.X, b.Min.X, b.Max.X), clamp(c.Y, b.Min.Y, b.Max.Y)}
	dx, dy := c.X-closest.X, c.Y-closest.Y
	return dx*dx+dy*dy <= r*r
}

// Sweep tests a box moving by d against a stationary box. It reports a hit
// when the displaced box would overlap wall, and returns the fraction of d
// (0 = now, 1 = the whole displacement) at which contact first occurs: the
// smallest non-negative per-side time, capped at 1.
func Sweep(moving AABB, d Vec, wall AABB) (float64, bool) {
	left := wall.Max.X - moving.Min.X
	right := wall.Min.X - moving.Max.X
	top := wall.Max.Y - moving.Min.Y
	bottom := wall.Min.Y - moving.Max.Y

	// Still separated after the move along some axis.
	if left <= d.X || d.X <= right || top <= d.Y || d.Y <= bottom {
		return 0, false
	}

	t := 1.0
	for _, c := range [...]float64{
		fraction(left, d.X),
		fraction(right, d.X),
		fraction(top, d.Y),
		fraction(bottom, d.Y),
	} {
		if c >= 0 && c < t {
			t = c
		}
	}
	return t, true
}

// fraction returns dist/v, or +Inf when there is no motion along the axis.
func fraction(dist, v float64) float64 {
	if v == 0 {
		return math.Inf(1)
	}
	return dist / v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
