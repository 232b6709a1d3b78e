package geom

// LinearSegment is a straight edge from P0 to P1.
type LinearSegment struct {
	P0, P1 Vec2
}

// Distance returns the unsigned Euclidean distance from p to the segment:
// project p onto the line through P0-P1, clamp the parameter to [0, 1], and
// measure the distance to the clamped projection.
func (s LinearSegment) Distance(p Vec2) float64 {
	ab := s.P1.Sub(s.P0)
	ap := p.Sub(s.P0)
	denom := ab.Len2()
	if denom == 0 {
		return ap.Len()
	}
	t := ap.Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := s.P0.Lerp(s.P1, t)
	return p.Sub(closest).Len()
}

// IntersectionX returns the x coordinate where the segment crosses
// horizontal line y. The caller must ensure P0.Y <= y <= P1.Y (or the
// reverse); behavior for y outside that range is an unclamped extrapolation.
func (s LinearSegment) IntersectionX(y float64) float64 {
	dy := s.P1.Y - s.P0.Y
	if dy == 0 {
		return s.P0.X
	}
	t := (y - s.P0.Y) / dy
	return s.P0.X + t*(s.P1.X-s.P0.X)
}
