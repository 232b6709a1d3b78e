// Package packer places rectangles inside a fixed-size atlas, using a
// shelf-based packing strategy.
package packer

// RectPacker places rectangles of caller-chosen size within a bounded
// area, reporting the top-left corner of each placement.
type RectPacker interface {
	// Pack finds room for a w x h rectangle. allowRotation is accepted so
	// callers can request rotated placement, but ShelfPacker never rotates
	// (glyph SDFs are never rendered sideways).
	Pack(w, h int, allowRotation bool) (x, y int, ok bool)
}

// shelf is one horizontal strip of the atlas.
type shelf struct {
	y      int
	height int
	x      int
}

// ShelfPacker implements shelf-based rectangle packing: rectangles are
// placed left-to-right on the current shelf until none remain, then a new
// shelf opens below the tallest item seen on the previous one. A border
// pad is reserved once at the atlas edges, in addition to the
// inter-rectangle pad applied between neighbors on and across shelves.
type ShelfPacker struct {
	width, height      int
	borderPad, rectPad int
	shelves            []shelf
	usedArea           int
}

// NewShelfPacker creates a packer for a width x height area. borderPad is
// reserved along every edge before any rectangle is placed; rectPad
// separates adjacent rectangles on the same shelf and between shelves.
func NewShelfPacker(width, height, borderPad, rectPad int) *ShelfPacker {
	return &ShelfPacker{
		width:     width - 2*borderPad,
		height:    height - 2*borderPad,
		borderPad: borderPad,
		rectPad:   rectPad,
	}
}

// Pack finds space for a w x h rectangle and returns its top-left corner
// in the full atlas's coordinate space (border pad already added back in).
func (p *ShelfPacker) Pack(w, h int, allowRotation bool) (x, y int, ok bool) {
	paddedW := w + p.rectPad
	paddedH := h + p.rectPad

	for i := range p.shelves {
		sh := &p.shelves[i]
		if sh.x+paddedW > p.width {
			continue
		}
		if h > sh.height {
			if i == len(p.shelves)-1 && sh.y+paddedH <= p.height {
				sh.height = h
				x, y = sh.x, sh.y
				sh.x += paddedW
				p.usedArea += w * h
				return p.borderPad + x, p.borderPad + y, true
			}
			continue
		}
		x, y = sh.x, sh.y
		sh.x += paddedW
		p.usedArea += w * h
		return p.borderPad + x, p.borderPad + y, true
	}

	newY := 0
	if len(p.shelves) > 0 {
		last := p.shelves[len(p.shelves)-1]
		newY = last.y + last.height + p.rectPad
	}
	if newY+paddedH > p.height {
		return 0, 0, false
	}

	p.shelves = append(p.shelves, shelf{y: newY, height: h, x: paddedW})
	p.usedArea += w * h
	return p.borderPad, p.borderPad + newY, true
}

// Utilization returns the fraction of the packable area used so far.
func (p *ShelfPacker) Utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}
