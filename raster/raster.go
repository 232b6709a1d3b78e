// Package raster implements a scanline rasterizer that answers, for any
// horizontal line, the exact ordered list of x coordinates where a set of
// contours cross it and which way each crossing goes. It underlies the
// non-zero winding fill test used while rendering glyph signed distance
// fields: the fill side must match the true outline with zero slack, so
// every curve pushed in is first split into Y-monotonic pieces.
package raster

import (
	"math"

	"github.com/rbrich/sdf-text/geom"
	"github.com/rbrich/sdf-text/solve"
)

// OrientedCrossing is one scanline/contour intersection: the x coordinate
// at which it occurs, and the winding direction of the curve there (+1 for
// an upward-going crossing, -1 for downward).
type OrientedCrossing struct {
	Dir int8
	X   float64
}

type linearProfile struct {
	dir    int8
	p0, p1 geom.Vec2
}

type quadraticProfile struct {
	dir        int8
	p0, p1, p2 geom.Vec2
}

type cubicProfile struct {
	dir            int8
	p0, p1, p2, p3 geom.Vec2
}

// Rasterizer accumulates Y-monotonic curve profiles and answers scanline
// crossing queries against them. The zero value is ready to use.
type Rasterizer struct {
	linear    []linearProfile
	quadratic []quadraticProfile
	cubic     []cubicProfile
}

// ScanlineCrossings returns every crossing of the accumulated profiles at
// horizontal line y, sorted by ascending x. A profile spanning
// [p0.Y, pN.Y) is tested with a half-open interval so that a y exactly on
// a contour vertex is attributed to only one of the two segments meeting
// there, never both and never neither.
func (r *Rasterizer) ScanlineCrossings(y float64) []OrientedCrossing {
	var crossings []OrientedCrossing

	for _, prf := range r.linear {
		if y >= prf.p0.Y && y < prf.p1.Y {
			x := geom.LinearSegment{P0: prf.p0, P1: prf.p1}.IntersectionX(y)
			crossings = append(crossings, OrientedCrossing{Dir: prf.dir, X: x})
		}
	}
	for _, prf := range r.quadratic {
		if y >= prf.p0.Y && y < prf.p2.Y {
			x := geom.QuadraticSegment{P0: prf.p0, P1: prf.p1, P2: prf.p2}.IntersectionX(y)
			crossings = append(crossings, OrientedCrossing{Dir: prf.dir, X: x})
		}
	}
	for _, prf := range r.cubic {
		if y >= prf.p0.Y && y < prf.p3.Y {
			x := geom.CubicSegment{P0: prf.p0, P1: prf.p1, P2: prf.p2, P3: prf.p3}.IntersectionX(y)
			crossings = append(crossings, OrientedCrossing{Dir: prf.dir, X: x})
		}
	}

	insertionSortByX(crossings)
	return crossings
}

// insertionSortByX sorts in place. Crossing counts per scanline are small
// (single digits for ordinary glyph outlines), so insertion sort avoids
// sort.Slice's interface overhead without needing a dedicated type.
func insertionSortByX(c []OrientedCrossing) {
	for i := 1; i < len(c); i++ {
		v := c[i]
		j := i - 1
		for j >= 0 && c[j].X > v.X {
			c[j+1] = c[j]
			j--
		}
		c[j+1] = v
	}
}

// PushLine adds a straight contour edge. Horizontal edges (p0.Y == p1.Y)
// never produce a scanline crossing and are dropped.
func (r *Rasterizer) PushLine(p0, p1 geom.Vec2) {
	if p0.Y < p1.Y {
		r.linear = append(r.linear, linearProfile{dir: 1, p0: p0, p1: p1})
	}
	if p1.Y < p0.Y {
		r.linear = append(r.linear, linearProfile{dir: -1, p0: p1, p1: p0})
	}
}

// PushBezier2 adds a quadratic contour edge, splitting it at its Y
// extremum (if any) so every stored profile is Y-monotonic.
func (r *Rasterizer) PushBezier2(p0, p1, p2 geom.Vec2) {
	denom := p0.Y - 2*p1.Y + p2.Y
	t := (p0.Y - p1.Y) / denom
	if isFinite(t) && t > 0 && t < 1 {
		m0 := p0.Lerp(p1, t)
		m1 := p1.Lerp(p2, t)
		n0 := m0.Lerp(m1, t)
		r.pushBezier2Monotonic(p0, m0, n0)
		r.pushBezier2Monotonic(n0, m1, p2)
	} else {
		r.pushBezier2Monotonic(p0, p1, p2)
	}
}

func (r *Rasterizer) pushBezier2Monotonic(p0, p1, p2 geom.Vec2) {
	if p0.Y < p2.Y {
		r.quadratic = append(r.quadratic, quadraticProfile{dir: 1, p0: p0, p1: p1, p2: p2})
	}
	if p2.Y < p0.Y {
		r.quadratic = append(r.quadratic, quadraticProfile{dir: -1, p0: p2, p1: p1, p2: p0})
	}
}

// PushBezier3 adds a cubic contour edge, recursively splitting it at its
// (up to two) Y extrema so every stored profile is Y-monotonic.
func (r *Rasterizer) PushBezier3(p0, p1, p2, p3 geom.Vec2) {
	a := p3.Y - 3*p2.Y + 3*p1.Y - p0.Y
	b := 2 * (p2.Y - 2*p1.Y + p0.Y)
	c := p1.Y - p0.Y

	// Extrema within extremumEps of an endpoint are ignored: the half that is
	// recursed after a split has the split extremum at t=0, which rounding
	// can turn into a tiny positive root.
	const extremumEps = 1e-9
	var extrema []float64
	for _, t := range solve.Default.FindRootsQuadratic(a, b, c) {
		if isFinite(t) && t > extremumEps && t < 1-extremumEps {
			extrema = append(extrema, t)
		}
	}

	switch len(extrema) {
	case 0:
		r.pushBezier3Monotonic(p0, p1, p2, p3)
	case 1:
		t1 := extrema[0]
		m0, m1, m2 := p0.Lerp(p1, t1), p1.Lerp(p2, t1), p2.Lerp(p3, t1)
		n0, n1 := m0.Lerp(m1, t1), m1.Lerp(m2, t1)
		o0 := n0.Lerp(n1, t1)
		r.pushBezier3Monotonic(p0, m0, n0, o0)
		r.pushBezier3Monotonic(o0, n1, m2, p3)
	default:
		t1, t2 := extrema[0], extrema[1]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		m0, m1, m2 := p0.Lerp(p1, t1), p1.Lerp(p2, t1), p2.Lerp(p3, t1)
		n0, n1 := m0.Lerp(m1, t1), m1.Lerp(m2, t1)
		o0 := n0.Lerp(n1, t1)
		r.pushBezier3Monotonic(p0, m0, n0, o0)
		r.PushBezier3(o0, n1, m2, p3)
	}
}

func (r *Rasterizer) pushBezier3Monotonic(p0, p1, p2, p3 geom.Vec2) {
	if p0.Y < p3.Y {
		r.cubic = append(r.cubic, cubicProfile{dir: 1, p0: p0, p1: p1, p2: p2, p3: p3})
	}
	if p3.Y < p0.Y {
		r.cubic = append(r.cubic, cubicProfile{dir: -1, p0: p3, p1: p2, p2: p1, p3: p0})
	}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
