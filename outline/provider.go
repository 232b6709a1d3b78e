// Package outline defines the abstract vector-font outline source that the
// glyph assembler consumes, plus a concrete adapter over
// golang.org/x/image/font/sfnt for real font files.
package outline

import "golang.org/x/image/math/fixed"

// ReverseFillBit is the fill-orientation flag bit: when set, a glyph's
// contours wind the opposite way from the usual TrueType convention and
// the assembler must flip the inside/outside test.
const ReverseFillBit = 0x4

// Point is a 26.6 fixed-point coordinate pair, the wire format every
// contour and bounding box is expressed in.
type Point = fixed.Point26_6

// Segment is one drawing instruction within a contour, following the
// point after Start (or after the previous segment's endpoint).
type Segment interface {
	isSegment()
}

// LineSegment draws a straight line to A.
type LineSegment struct{ A Point }

// QuadSegment draws a quadratic Bezier through control point A to B.
type QuadSegment struct{ A, B Point }

// CubeSegment draws a cubic Bezier through control points A, B to C.
type CubeSegment struct{ A, B, C Point }

func (LineSegment) isSegment() {}
func (QuadSegment) isSegment() {}
func (CubeSegment) isSegment() {}

// Contour is one closed outline loop: an implicit move to Start, followed
// by a sequence of line/curve segments that return to Start.
type Contour struct {
	Start    Point
	Segments []Segment
}

// BBox is a bounding box in 26.6 fixed point.
type BBox struct {
	MinX, MinY, MaxX, MaxY fixed.Int26_6
}

// Metrics carries the face-level metrics a caller needs for line layout,
// beyond what the glyph SDF assembler itself consumes.
type Metrics struct {
	Ascender, Descender fixed.Int26_6
}

// Face is an opened font at a fixed pixel size, positioned at a loaded
// glyph. It mirrors FreeType's FT_Face just enough to drive SDF rendering.
type Face interface {
	// SetPixelSize sets the rendering size in pixels per em.
	SetPixelSize(px int) error
	// EmSize returns the font's units-per-em.
	EmSize() int
	// LoadChar loads the outline for rune r with no hinting.
	LoadChar(r rune) error
	// Outline returns the contours of the most recently loaded glyph.
	Outline() ([]Contour, error)
	// CBox returns the control box of the most recently loaded glyph.
	CBox() BBox
	// FillFlags returns the glyph's fill orientation flags.
	FillFlags() int
	// SizeMetrics returns face-level metrics at the current pixel size.
	SizeMetrics() Metrics
}

// Provider opens font files and hands back a Face to load glyphs from.
type Provider interface {
	Open(path string, faceIndex int) (Face, error)
}
