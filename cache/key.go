// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import "github.com/gogpu/glyphatlas/atlas"

// GlyphCode is a rasterizer-assigned glyph identifier within one strike.
type GlyphCode uint32

// Key identifies one cache entry.
type Key struct {
	Code  GlyphCode
	Phase Phase
}

// segmentSize is the number of consecutive glyph codes sharing a segment.
const segmentSize = 32

// segmentKey selects one sparse segment: a block of 32 codes at one phase.
type segmentKey struct {
	Index uint32
	Phase Phase
}

type segment [segmentSize]*Placement

func (k Key) segment() (segmentKey, int) {
	return segmentKey{Index: uint32(k.Code) / segmentSize, Phase: k.Phase}, int(k.Code % segmentSize)
}

// Placement is a cached glyph: where its mask lives in the atlas and how to
// position and advance it. Placements are immutable; Rect stays valid until
// the owning atlas is reset.
type Placement struct {
	// OriginX and OriginY are the offset from the pen position to the top-left
	// texel of the mask inside Rect's border.
	OriginX, OriginY int

	// Border is the blank padding around the mask on every edge of Rect.
	Border int

	// XAdvance and YAdvance are the pen advance for this glyph and phase.
	XAdvance, YAdvance float64

	// Rect is the padded atlas rectangle, nil for glyphs with no pixels.
	Rect *atlas.Rect
}

// Visible reports whether the placement has pixels to draw.
func (p *Placement) Visible() bool {
	return p != nil && p.Rect != nil
}
