package geom

import "github.com/rbrich/sdf-text/solve"

// QuadraticSegment is a quadratic Bezier curve through P0, with control
// point P1, ending at P2.
type QuadraticSegment struct {
	P0, P1, P2 Vec2
}

// EvalPoint evaluates the curve at parameter t using the standard
// quadratic Bezier blend (1-t)^2 P0 + 2(1-t)t P1 + t^2 P2.
func (s QuadraticSegment) EvalPoint(t float64) Vec2 {
	mt := 1 - t
	return Vec2{
		X: mt*mt*s.P0.X + 2*mt*t*s.P1.X + t*t*s.P2.X,
		Y: mt*mt*s.P0.Y + 2*mt*t*s.P1.Y + t*t*s.P2.Y,
	}
}

// EvalTangent evaluates the curve's derivative at parameter t.
func (s QuadraticSegment) EvalTangent(t float64) Vec2 {
	a := s.P1.Sub(s.P0)
	b := s.P2.Sub(s.P1)
	return Vec2{
		X: 2*(1-t)*a.X + 2*t*b.X,
		Y: 2*(1-t)*a.Y + 2*t*b.Y,
	}
}

// Distance returns the unsigned Euclidean distance from p to the curve.
//
// The curve is written as Q(t) = P0 + 2t*a + t^2*b with a = P1-P0 and
// b = P0 - 2*P1 + P2. Setting d/dt |Q(t)-p|^2 = 0 yields the cubic
// b.b*t^3 + 3*(a.b)*t^2 + (2*a.a + m.b)*t + m.a = 0 where m = P0 - p; its
// real roots in [0, 1], together with the endpoints, are the candidate
// closest points.
func (s QuadraticSegment) Distance(p Vec2) float64 {
	a := s.P1.Sub(s.P0)
	b := s.P0.Sub(s.P1.Mul(2)).Add(s.P2)
	m := s.P0.Sub(p)

	a3 := b.Dot(b)
	a2 := 3 * a.Dot(b)
	a1 := 2*a.Dot(a) + m.Dot(b)
	a0 := m.Dot(a)

	best := minEndpointDistance(p, s.P0, s.P2)
	for _, t := range solve.Default.FindRootsCubic(a3, a2, a1, a0) {
		if t < 0 || t > 1 {
			continue
		}
		d := p.Sub(s.EvalPoint(t)).Len()
		if d < best {
			best = d
		}
	}
	return best
}

// IntersectionX returns the x coordinate where the curve crosses
// horizontal line y, restricted to the curve's own parameter range. The
// caller is expected to have already established that the segment spans y
// (see raster's quadraticProfile), so exactly one root in [0, 1] is expected.
func (s QuadraticSegment) IntersectionX(y float64) float64 {
	a := s.P0.Y - 2*s.P1.Y + s.P2.Y
	b := 2 * (s.P1.Y - s.P0.Y)
	c := s.P0.Y - y

	for _, t := range solve.Default.FindRootsQuadratic(a, b, c) {
		if t >= -1e-9 && t <= 1+1e-9 {
			return s.EvalPoint(clamp01(t)).X
		}
	}
	// No root in [0, 1]: fall back to a straight interpolation.
	return LinearSegment{P0: s.P0, P1: s.P2}.IntersectionX(y)
}

func minEndpointDistance(p, p0, p1 Vec2) float64 {
	d0 := p.Sub(p0).Len()
	d1 := p.Sub(p1).Len()
	if d0 < d1 {
		return d0
	}
	return d1
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
