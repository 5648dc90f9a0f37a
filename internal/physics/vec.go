// Package physics holds the geometry behind ball and paddle collisions:
// 2D vectors, axis-aligned boxes, circle-vs-box overlap, swept box
// time-of-impact and the paddle redirect.
package physics

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Div returns v / s.
func (v Vec) Div(s float64) Vec { return Vec{v.X / s, v.Y / s} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// FromAngle returns a vector of the given length pointing along angle
// (radians, y grows downwards as on screen).
func FromAngle(angle, length float64) Vec {
	return Vec{length * math.Cos(angle), length * math.Sin(angle)}
}

// Redirect returns a velocity of magnitude speed pointing from `from` to
// `to`. The ball leaves the paddle along the line from the paddle centre to
// the ball centre, so the angle depends on where the ball struck.
func Redirect(from, to Vec, speed float64) Vec {
	d := to.Sub(from)
	return FromAngle(math.Atan2(d.Y, d.X), speed)
}
