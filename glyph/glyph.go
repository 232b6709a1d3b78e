// Package glyph assembles a single character's signed distance field: it
// loads an outline's contours into a rasterizer and a distance index, then
// walks the glyph's pixel rectangle row by row computing winding number
// and nearest-edge distance, quantizing the signed distance to a byte.
package glyph

import (
	"fmt"
	"math"

	"github.com/rbrich/sdf-text/geom"
	"github.com/rbrich/sdf-text/mindist"
	"github.com/rbrich/sdf-text/outline"
	"github.com/rbrich/sdf-text/raster"
)

// quantizeShift maps zero signed distance to the mid grey value.
const quantizeShift = 127.0

// quantizeScale is the 1920 constant from the original SDF renderer,
// divided by the face size to convert a distance in pixels to an SDF byte
// delta. Keeping it a named constant instead of re-deriving it preserves
// the documented scenario values.
const quantizeScale = 1920.0

// Glyph is one character's placement within an atlas and the pixel-space
// origin used while sampling its outline.
type Glyph struct {
	// X, Y are the glyph's top-left corner within the atlas buffer.
	X, Y int
	// Width, Height are the glyph's pixel dimensions, including padding.
	Width, Height int
	// XMin, YMin is the outline-space coordinate of the glyph rectangle's
	// bottom-left corner (padding already subtracted).
	XMin, YMin int
}

// Renderer computes glyph rectangles and renders their signed distance
// fields at a fixed face size and padding.
type Renderer struct {
	FaceSize int
	Padding  int
}

// Rect computes the pixel rectangle a glyph occupies, derived from its
// control box and the font's units-per-em, before any atlas placement.
// The box is expanded by Padding pixels on every side.
func (r Renderer) Rect(bbox outline.BBox, emSize int) Glyph {
	unit := r.unitSize(emSize)

	xmin := math.Floor(float64(bbox.MinX)/unit + 0.5)
	ymin := math.Floor(float64(bbox.MinY)/unit + 0.5)
	xmax := math.Floor(float64(bbox.MaxX)/unit + 0.5)
	ymax := math.Floor(float64(bbox.MaxY)/unit + 0.5)

	return Glyph{
		Width:  int(xmax-xmin) + 2*r.Padding,
		Height: int(ymax-ymin) + 2*r.Padding,
		XMin:   int(xmin) - r.Padding,
		YMin:   int(ymin) - r.Padding,
	}
}

func (r Renderer) unitSize(emSize int) float64 {
	return float64(emSize) * 64.0 / float64(r.FaceSize)
}

// RenderSDF renders g's signed distance field into buf, a pitch-wide byte
// buffer (typically the whole atlas), at g's already-assigned X/Y.
// contours come from the outline.Face that was loaded for this glyph;
// reverseFill flips the inside/outside test for contours wound the
// opposite way from the usual convention.
func (r Renderer) RenderSDF(contours []outline.Contour, emSize int, g Glyph, reverseFill bool, buf []byte, pitch int) error {
	if g.X+g.Width > pitch {
		return fmt.Errorf("glyph: rectangle at x=%d width=%d exceeds pitch %d", g.X, g.Width, pitch)
	}

	unit := r.unitSize(emSize)
	toVec2 := func(p outline.Point) geom.Vec2 {
		return geom.Vec2{X: float64(p.X) / unit, Y: float64(p.Y) / unit}
	}

	var rz raster.Rasterizer
	var dist mindist.OutlineDistance

	for _, c := range contours {
		p0 := toVec2(c.Start)
		for _, seg := range c.Segments {
			switch s := seg.(type) {
			case outline.LineSegment:
				p1 := toVec2(s.A)
				rz.PushLine(p0, p1)
				dist.PushLine(p0, p1)
				p0 = p1
			case outline.QuadSegment:
				p1, p2 := toVec2(s.A), toVec2(s.B)
				rz.PushBezier2(p0, p1, p2)
				dist.PushBezier2(p0, p1, p2)
				p0 = p2
			case outline.CubeSegment:
				p1, p2, p3 := toVec2(s.A), toVec2(s.B), toVec2(s.C)
				rz.PushBezier3(p0, p1, p2, p3)
				dist.PushBezier3(p0, p1, p2, p3)
				p0 = p3
			}
		}
	}

	scale := quantizeScale / float64(r.FaceSize)

	for yr := 0; yr < g.Height; yr++ {
		bufOffset := (g.Y+yr)*pitch + g.X
		row := buf[bufOffset : bufOffset+g.Width]

		y := float64(g.YMin+(g.Height-yr-1)) + 0.5
		crossings := rz.ScanlineCrossings(y)

		crossingIdx := 0
		wn := 0
		for xr := 0; xr < g.Width; xr++ {
			x := float64(g.XMin+xr) + 0.5
			p := geom.Vec2{X: x, Y: y}

			distMin := dist.Distance(p)

			for crossingIdx < len(crossings) && crossings[crossingIdx].X <= x {
				wn += int(crossings[crossingIdx].Dir)
				crossingIdx++
			}
			inside := wn > 0
			if reverseFill {
				inside = wn < 0
			}
			if inside {
				distMin = -distMin
			}

			v := quantizeShift - distMin*scale
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			row[xr] = byte(v)
		}
	}
	return nil
}
