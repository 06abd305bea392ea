// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package quad

import "github.com/gogpu/glyphatlas/cache"

// InvisibleGlyph is the placeholder code shapers insert for the second code
// unit of some characters. It has no advance and is never drawn.
const InvisibleGlyph cache.GlyphCode = 0xFFFF

// GlyphList is a shaped run of glyphs in visual order.
//
// PosX must accept i == Len() and return the pen position after the last
// glyph; the renderer uses it to test the right edge of the final glyph
// against a clip.
type GlyphList interface {
	Len() int
	GlyphCode(i int) cache.GlyphCode
	PosX(i int) float64
	PosY(i int) float64
	CharOffset(i int) int
}

// Glyph is one positioned glyph of a Run.
type Glyph struct {
	Code cache.GlyphCode

	// X and Y are the pen position relative to the run origin.
	X, Y float64

	// Offset is the index of the first source character the glyph maps to.
	Offset int
}

// Run is a slice-backed GlyphList.
type Run struct {
	Glyphs []Glyph

	// Advance is the pen position after the last glyph.
	Advance float64
}

var _ GlyphList = (*Run)(nil)

// Len returns the number of glyphs.
func (r *Run) Len() int { return len(r.Glyphs) }

// GlyphCode returns the code of glyph i.
func (r *Run) GlyphCode(i int) cache.GlyphCode { return r.Glyphs[i].Code }

// PosX returns the x position of glyph i, or the run advance for i == Len().
func (r *Run) PosX(i int) float64 {
	if i == len(r.Glyphs) {
		return r.Advance
	}
	return r.Glyphs[i].X
}

// PosY returns the y position of glyph i, or 0 for i == Len().
func (r *Run) PosY(i int) float64 {
	if i == len(r.Glyphs) {
		return 0
	}
	return r.Glyphs[i].Y
}

// CharOffset returns the source character offset of glyph i.
func (r *Run) CharOffset(i int) int { return r.Glyphs[i].Offset }

// Append adds a glyph at pen position (x, y).
func (r *Run) Append(code cache.GlyphCode, x, y float64, offset int) {
	r.Glyphs = append(r.Glyphs, Glyph{Code: code, X: x, Y: y, Offset: offset})
}

// Bounds is an axis-aligned rectangle in user space.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}
