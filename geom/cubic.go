package geom

import "github.com/rbrich/sdf-text/solve"

// cubicDistanceSteps is the number of equal-width subintervals of [0, 1]
// scanned for sign changes before handing each bracket to Brent's method.
// Fifteen subintervals reliably bracket every sign change of f for the
// gently-curving outlines typical of font glyphs without materially
// slowing distance queries.
const cubicDistanceSteps = 15

// CubicSegment is a cubic Bezier curve through P0, with control points P1
// and P2, ending at P3.
type CubicSegment struct {
	P0, P1, P2, P3 Vec2
}

// EvalPoint evaluates the curve at parameter t via De Casteljau's algorithm.
func (s CubicSegment) EvalPoint(t float64) Vec2 {
	ab := s.P0.Lerp(s.P1, t)
	bc := s.P1.Lerp(s.P2, t)
	cd := s.P2.Lerp(s.P3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	return abc.Lerp(bcd, t)
}

// EvalTangent evaluates the curve's derivative at parameter t.
func (s CubicSegment) EvalTangent(t float64) Vec2 {
	mt := 1 - t
	a := s.P1.Sub(s.P0).Mul(3 * mt * mt)
	b := s.P2.Sub(s.P1).Mul(6 * mt * t)
	c := s.P3.Sub(s.P2).Mul(3 * t * t)
	return a.Add(b).Add(c)
}

// Distance returns the unsigned Euclidean distance from p to the curve.
//
// There is no closed form for the quintic that d/dt |C(t)-p|^2 = 0 reduces
// to, so the parameter range is split into cubicDistanceSteps equal
// subintervals and each sign change of f(t) = (C(t)-p).EvalTangent(t) is
// refined with Brent's method, matching the original implementation's use
// of a bracketed root finder over the same number of subintervals.
func (s CubicSegment) Distance(p Vec2) float64 {
	f := func(t float64) float64 {
		return s.EvalPoint(t).Sub(p).Dot(s.EvalTangent(t))
	}

	best := minEndpointDistance(p, s.P0, s.P3)
	opts := solve.DefaultOptions()

	const n = cubicDistanceSteps
	prevT := 0.0
	prevF := f(0)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		ft := f(t)
		if prevF == 0 {
			if d := p.Sub(s.EvalPoint(prevT)).Len(); d < best {
				best = d
			}
		} else if (prevF > 0) != (ft > 0) {
			if root, err := solve.Default.FindRootBrent(prevT, t, f, opts); err == nil {
				if d := p.Sub(s.EvalPoint(root)).Len(); d < best {
					best = d
				}
			}
		}
		prevT, prevF = t, ft
	}
	if prevF == 0 {
		if d := p.Sub(s.EvalPoint(prevT)).Len(); d < best {
			best = d
		}
	}
	return best
}

// IntersectionX returns the x coordinate where the curve crosses
// horizontal line y, for a segment already known to be Y-monotonic over
// its own parameter range (see raster's cubicProfile, which only ever calls
// this on monotonic pieces split at extrema).
func (s CubicSegment) IntersectionX(y float64) float64 {
	a := -s.P0.Y + 3*s.P1.Y - 3*s.P2.Y + s.P3.Y
	b := 3*s.P0.Y - 6*s.P1.Y + 3*s.P2.Y
	c := -3*s.P0.Y + 3*s.P1.Y
	d := s.P0.Y - y

	for _, t := range solve.Default.FindRootsCubic(a, b, c, d) {
		if t >= -1e-9 && t <= 1+1e-9 {
			return s.EvalPoint(clamp01(t)).X
		}
	}
	return LinearSegment{P0: s.P0, P1: s.P3}.IntersectionX(y)
}
