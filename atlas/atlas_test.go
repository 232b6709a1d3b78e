package atlas

import (
	"testing"

	"github.com/rbrich/sdf-text/outline"
	"golang.org/x/image/math/fixed"
)

func fx(v int) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

// fakeFace is a minimal outline.Face that returns the same 10x10 square
// contour for every character, so Builder.Build can be exercised without a
// real font file on disk.
type fakeFace struct {
	loaded rune
	empty  map[rune]bool
}

func (f *fakeFace) SetPixelSize(int) error { return nil }
func (f *fakeFace) EmSize() int            { return 64 }
func (f *fakeFace) LoadChar(r rune) error  { f.loaded = r; return nil }

func (f *fakeFace) Outline() ([]outline.Contour, error) {
	if f.empty[f.loaded] {
		return nil, nil
	}
	return []outline.Contour{
		{
			Start: fixed.Point26_6{X: fx(0), Y: fx(0)},
			Segments: []outline.Segment{
				outline.LineSegment{A: fixed.Point26_6{X: fx(0), Y: fx(10)}},
				outline.LineSegment{A: fixed.Point26_6{X: fx(10), Y: fx(10)}},
				outline.LineSegment{A: fixed.Point26_6{X: fx(10), Y: fx(0)}},
				outline.LineSegment{A: fixed.Point26_6{X: fx(0), Y: fx(0)}},
			},
		},
	}, nil
}

func (f *fakeFace) CBox() outline.BBox {
	return outline.BBox{MinX: fx(0), MinY: fx(0), MaxX: fx(10), MaxY: fx(10)}
}

func (f *fakeFace) FillFlags() int { return 0 }

func (f *fakeFace) SizeMetrics() outline.Metrics {
	return outline.Metrics{Ascender: fx(52), Descender: fx(-12)}
}

type fakeProvider struct {
	face *fakeFace
}

func (p fakeProvider) Open(path string, faceIndex int) (outline.Face, error) {
	return p.face, nil
}

func TestBuilderBuildPacksAllCharacters(t *testing.T) {
	b := Builder{Provider: fakeProvider{face: &fakeFace{}}}
	cfg := Config{AtlasSide: 256, FaceSize: 64, Padding: 3, Chars: []rune("ABC")}

	a, err := b.Build("fake.ttf", 0, cfg)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(a.Glyphs) != 3 {
		t.Fatalf("Build() produced %d glyphs, want 3", len(a.Glyphs))
	}
	if a.Side != 256 {
		t.Errorf("Side = %d, want 256", a.Side)
	}
	if a.Ascender != 52 || a.Descender != -12 {
		t.Errorf("metrics = (%d,%d), want (52,-12)", a.Ascender, a.Descender)
	}

	// Each glyph rectangle is 10x10 plus 2*padding = 16x16, and must not
	// overlap another.
	seen := map[[2]int]rune{}
	for ch, g := range a.Glyphs {
		if g.Width != 16 || g.Height != 16 {
			t.Errorf("glyph %q size = %dx%d, want 16x16", ch, g.Width, g.Height)
		}
		for yy := g.Y; yy < g.Y+g.Height; yy++ {
			for xx := g.X; xx < g.X+g.Width; xx++ {
				key := [2]int{xx, yy}
				if prev, ok := seen[key]; ok {
					t.Fatalf("glyphs %q and %q overlap at (%d,%d)", prev, ch, xx, yy)
				}
				seen[key] = ch
			}
		}
	}
}

func TestBuilderBuildSkipsGlyphMissing(t *testing.T) {
	face := &fakeFace{empty: map[rune]bool{'B': true}}
	b := Builder{Provider: fakeProvider{face: face}}
	cfg := Config{AtlasSide: 256, FaceSize: 64, Padding: 3, Chars: []rune("ABC")}

	a, err := b.Build("fake.ttf", 0, cfg)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if _, ok := a.Glyphs['B']; ok {
		t.Error("expected 'B' to be skipped as GlyphMissing")
	}
	if len(a.Glyphs) != 2 {
		t.Errorf("Build() produced %d glyphs, want 2", len(a.Glyphs))
	}
}

func TestBuilderBuildAtlasFull(t *testing.T) {
	b := Builder{Provider: fakeProvider{face: &fakeFace{}}}
	// An atlas far too small for even one 16x16 glyph.
	cfg := Config{AtlasSide: 8, FaceSize: 64, Padding: 3, Chars: []rune("A")}

	if _, err := b.Build("fake.ttf", 0, cfg); err == nil {
		t.Error("Build() expected an error when the atlas cannot fit the glyph")
	}
}
