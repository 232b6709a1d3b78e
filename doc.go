// Package sdftext renders signed distance field glyph atlases from vector
// fonts: it loads outlines through the outline package, rasterizes and
// measures them through the raster, mindist and geom packages, packs the
// results with the packer package, and assembles a single-channel SDF
// texture plus a per-character rectangle map.
package sdftext
