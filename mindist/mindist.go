// Package mindist tracks every unsplit curve segment of a glyph outline
// and answers nearest-point distance queries against the whole set. Unlike
// raster.Rasterizer, which needs Y-monotonic pieces to walk scanlines,
// distance queries are unaffected by monotonicity, so segments are kept in
// their original form here.
package mindist

import (
	"math"

	"github.com/rbrich/sdf-text/geom"
)

// OutlineDistance accumulates the segments of one or more glyph contours
// and reports the unsigned distance from any point to the nearest one.
type OutlineDistance struct {
	linear    []geom.LinearSegment
	quadratic []geom.QuadraticSegment
	cubic     []geom.CubicSegment
}

// PushLine adds a straight contour edge.
func (d *OutlineDistance) PushLine(p0, p1 geom.Vec2) {
	d.linear = append(d.linear, geom.LinearSegment{P0: p0, P1: p1})
}

// PushBezier2 adds a quadratic contour edge.
func (d *OutlineDistance) PushBezier2(p0, p1, p2 geom.Vec2) {
	d.quadratic = append(d.quadratic, geom.QuadraticSegment{P0: p0, P1: p1, P2: p2})
}

// PushBezier3 adds a cubic contour edge.
func (d *OutlineDistance) PushBezier3(p0, p1, p2, p3 geom.Vec2) {
	d.cubic = append(d.cubic, geom.CubicSegment{P0: p0, P1: p1, P2: p2, P3: p3})
}

// Distance returns the unsigned distance from p to the nearest segment
// pushed so far, or +Inf if nothing has been pushed.
func (d *OutlineDistance) Distance(p geom.Vec2) float64 {
	min := math.Inf(1)
	for _, s := range d.linear {
		if dist := s.Distance(p); dist < min {
			min = dist
		}
	}
	for _, s := range d.quadratic {
		if dist := s.Distance(p); dist < min {
			min = dist
		}
	}
	for _, s := range d.cubic {
		if dist := s.Distance(p); dist < min {
			min = dist
		}
	}
	return min
}
