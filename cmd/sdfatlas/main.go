// Command sdfatlas builds a signed distance field glyph atlas from a font
// file and writes it as a grayscale PNG plus a JSON sidecar describing
// where each character landed.
package main

import (
	"encoding/json"
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	sdftext "github.com/rbrich/sdf-text"
	"github.com/rbrich/sdf-text/atlas"
	"github.com/rbrich/sdf-text/outline"
)

func main() {
	var (
		fontPath  = flag.String("font", "", "font file to load (.ttf/.otf/.ttc)")
		faceIndex = flag.Int("face-index", 0, "face index within a font collection")
		side      = flag.Int("side", 1024, "atlas width and height in pixels")
		faceSize  = flag.Int("face-size", 64, "target glyph size in pixels")
		padding   = flag.Int("padding", 4, "pixels of SDF margin around each glyph")
		chars     = flag.String("chars", asciiPrintable(), "characters to render")
		output    = flag.String("output", "atlas.png", "output PNG path")
		reverse   = flag.Bool("reverse-fill", false, "flip the inside/outside test")
	)
	flag.Parse()

	cfg := sdftext.BuildConfig{
		FontPath:    *fontPath,
		FaceIndex:   *faceIndex,
		AtlasSide:   *side,
		FaceSize:    *faceSize,
		Padding:     *padding,
		Chars:       []rune(*chars),
		ReverseFill: *reverse,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	builder := atlas.Builder{Provider: outline.SFNTProvider{}}
	a, err := builder.Build(cfg.FontPath, cfg.FaceIndex, atlas.Config{
		AtlasSide:   cfg.AtlasSide,
		FaceSize:    cfg.FaceSize,
		Padding:     cfg.Padding,
		Chars:       cfg.Chars,
		ReverseFill: cfg.ReverseFill,
	})
	if err != nil {
		log.Fatalf("building atlas: %v", err)
	}

	if err := writePNG(*output, a); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
	if err := writeSidecar(*output+".json", a); err != nil {
		log.Fatalf("writing sidecar: %v", err)
	}

	log.Printf("atlas saved to %s (%dx%d, %d glyphs)", *output, a.Side, a.Side, len(a.Glyphs))
}

func writePNG(path string, a *atlas.Atlas) error {
	img := image.NewGray(image.Rect(0, 0, a.Side, a.Side))
	copy(img.Pix, a.Buffer)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

type sidecarGlyph struct {
	Char                string `json:"char"`
	X, Y, Width, Height int
	XMin, YMin          int
}

type sidecar struct {
	Side      int            `json:"side"`
	Ascender  int            `json:"ascender"`
	Descender int            `json:"descender"`
	Glyphs    []sidecarGlyph `json:"glyphs"`
}

func writeSidecar(path string, a *atlas.Atlas) error {
	s := sidecar{Side: a.Side, Ascender: a.Ascender, Descender: a.Descender}
	for ch, g := range a.Glyphs {
		s.Glyphs = append(s.Glyphs, sidecarGlyph{
			Char: string(ch),
			X:    g.X, Y: g.Y, Width: g.Width, Height: g.Height,
			XMin: g.XMin, YMin: g.YMin,
		})
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func asciiPrintable() string {
	var b []rune
	for r := rune(0x20); r < 0x7f; r++ {
		b = append(b, r)
	}
	return string(b)
}
