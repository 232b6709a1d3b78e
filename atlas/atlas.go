// Package atlas assembles a single signed distance field texture covering
// a requested set of characters: for each character it asks an
// outline.Provider for the glyph, places it with a packer.RectPacker, and
// renders its SDF with glyph.Renderer into a shared byte buffer.
package atlas

import (
	"fmt"

	sdftext "github.com/rbrich/sdf-text"
	"github.com/rbrich/sdf-text/glyph"
	"github.com/rbrich/sdf-text/outline"
	"github.com/rbrich/sdf-text/packer"
)

// Atlas is a finished SDF texture: a Side x Side byte buffer (one byte per
// pixel, 0 = far outside, 127 = on the outline, 255 = far inside) plus the
// pixel rectangle each requested character was placed at.
type Atlas struct {
	Buffer []byte
	Side   int
	Glyphs map[rune]glyph.Glyph

	Ascender  int
	Descender int
}

// Config carries everything Build needs to render one atlas. It mirrors
// the core's BuildConfig but at the atlas package's own layer, so this
// package stays independent of the root package's config type.
type Config struct {
	AtlasSide   int
	FaceSize    int
	Padding     int
	Chars       []rune
	ReverseFill bool
}

// Builder renders atlases from an outline.Provider and a font file.
type Builder struct {
	Provider outline.Provider
	// NewPacker constructs the RectPacker used for glyph placement. If
	// nil, packer.NewShelfPacker is used with no border or rect padding
	// (glyph rectangles already carry their own Padding margin).
	NewPacker func(side int) packer.RectPacker
}

// Build loads path (selecting faceIndex within a collection), renders
// every character in cfg.Chars at cfg.FaceSize, and packs them into a
// cfg.AtlasSide x cfg.AtlasSide texture.
func (b Builder) Build(path string, faceIndex int, cfg Config) (*Atlas, error) {
	face, err := b.Provider.Open(path, faceIndex)
	if err != nil {
		return nil, fmt.Errorf("atlas: open %s: %w", path, err)
	}
	if err := face.SetPixelSize(face.EmSize()); err != nil {
		return nil, fmt.Errorf("atlas: set pixel size: %w", err)
	}

	newPacker := b.NewPacker
	if newPacker == nil {
		newPacker = func(side int) packer.RectPacker {
			return packer.NewShelfPacker(side, side, 0, 0)
		}
	}
	pack := newPacker(cfg.AtlasSide)

	renderer := glyph.Renderer{FaceSize: cfg.FaceSize, Padding: cfg.Padding}

	a := &Atlas{
		Buffer: make([]byte, cfg.AtlasSide*cfg.AtlasSide),
		Side:   cfg.AtlasSide,
		Glyphs: make(map[rune]glyph.Glyph, len(cfg.Chars)),
	}

	metrics := face.SizeMetrics()
	a.Ascender = metrics.Ascender.Round()
	a.Descender = metrics.Descender.Round()

	emSize := face.EmSize()
	reverseFill := cfg.ReverseFill || face.FillFlags()&outline.ReverseFillBit != 0

	log := sdftext.Logger()

	for _, ch := range cfg.Chars {
		if err := face.LoadChar(ch); err != nil {
			return nil, fmt.Errorf("atlas: load char %q: %w", ch, err)
		}
		contours, err := face.Outline()
		if err != nil {
			return nil, fmt.Errorf("atlas: outline for %q: %w", ch, err)
		}
		if len(contours) == 0 {
			log.Warn("skipping character with no outline", "char", ch)
			continue // GlyphMissing: no outline for this character, skip it.
		}

		g := renderer.Rect(face.CBox(), emSize)

		x, y, ok := pack.Pack(g.Width, g.Height, false)
		if !ok {
			return nil, fmt.Errorf("atlas: no room for %q (%dx%d): %w",
				ch, g.Width, g.Height, sdftext.ErrAtlasFull)
		}
		g.X, g.Y = x, y

		if err := renderer.RenderSDF(contours, emSize, g, reverseFill, a.Buffer, a.Side); err != nil {
			return nil, fmt.Errorf("atlas: render %q: %w", ch, err)
		}
		a.Glyphs[ch] = g
		log.Debug("placed glyph", "char", ch, "x", g.X, "y", g.Y, "width", g.Width, "height", g.Height)
	}

	return a, nil
}
