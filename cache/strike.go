// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/mask"
)

// Rasterizer produces coverage masks for glyphs.
type Rasterizer interface {
	// Rasterize renders code shifted right by phaseX and down by phaseY
	// pixels. It returns false if the strike has no such glyph. A mask with
	// zero width or height is whitespace.
	Rasterize(code GlyphCode, phaseX, phaseY float64) (*mask.Mask, bool)
}

// Strike is a font at one size and rendering configuration.
type Strike interface {
	Rasterizer

	// Mode returns the antialiasing mode of the masks the strike produces.
	Mode() atlas.Mode

	// SubPixel reports whether glyphs are positioned at fractional x offsets.
	SubPixel() bool
}
