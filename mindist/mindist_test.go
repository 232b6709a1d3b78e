package mindist

import (
	"math"
	"testing"

	"github.com/rbrich/sdf-text/geom"
)

func TestOutlineDistanceEmpty(t *testing.T) {
	var d OutlineDistance
	if got := d.Distance(geom.Vec2{}); !math.IsInf(got, 1) {
		t.Errorf("Distance() on empty outline = %v, want +Inf", got)
	}
}

func TestOutlineDistanceTakesMinimum(t *testing.T) {
	var d OutlineDistance
	d.PushLine(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 10, Y: 0})
	d.PushLine(geom.Vec2{X: 0, Y: 5}, geom.Vec2{X: 10, Y: 5})

	p := geom.Vec2{X: 5, Y: 1}
	got := d.Distance(p)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("Distance() = %v, want 1 (nearest of the two lines)", got)
	}
}

func TestOutlineDistanceMixedSegmentKinds(t *testing.T) {
	var d OutlineDistance
	d.PushLine(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 0, Y: 10})
	d.PushBezier2(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 5, Y: 5}, geom.Vec2{X: 0, Y: 10})
	d.PushBezier3(geom.Vec2{X: 100, Y: 200}, geom.Vec2{X: 250, Y: 400}, geom.Vec2{X: 400, Y: 200}, geom.Vec2{X: 400, Y: 400})

	// A point near the line should pick the line, not the far-away cubic.
	got := d.Distance(geom.Vec2{X: -1, Y: 5})
	if got > 5 {
		t.Errorf("Distance() = %v, want a small distance (nearest segment is the vertical line)", got)
	}
}
