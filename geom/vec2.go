// Package geom provides the planar curve primitives that the rest of the
// SDF pipeline is built on: 2D vectors and linear/quadratic/cubic Bezier
// segments, with evaluation, tangents, point distance and scanline
// intersection.
package geom

import "math"

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Len2 returns the squared magnitude of v.
func (v Vec2) Len2() float64 {
	return v.Dot(v)
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Lerp returns the linear interpolation between v and other at parameter t.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	tc := 1 - t
	return Vec2{tc*v.X + t*other.X, tc*v.Y + t*other.Y}
}
