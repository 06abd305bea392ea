// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package quad

import (
	"math"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Transform maps user space points to device space.
type Transform interface {
	Apply(x, y float64) (float64, float64)
}

// Options control a single Draw call.
type Options struct {
	// Clip limits drawing horizontally. Glyphs wholly left of Clip.MinX are
	// skipped and the run stops at the first glyph starting past Clip.MaxX.
	// Vertical bounds are ignored. Nil disables clipping.
	Clip *Bounds

	// Start and End select the source characters [Start, End) drawn in
	// RangeColor; the rest use TextColor. Coloring is applied only when both
	// colors are set.
	Start, End int
	RangeColor *gputypes.Color
	TextColor  *gputypes.Color

	// Transform maps pen positions to device space. Nil means identity.
	Transform Transform
}

// Stats describes what a Draw call did.
type Stats struct {
	Quads      int // quads emitted
	Whitespace int // glyphs with an advance but no pixels
	Skipped    int // invisible placeholders and glyphs with no placement
	Clipped    int // glyphs not drawn because of the clip
}

// Renderer emits quads for glyph runs.
type Renderer struct {
	// Cache resolves glyphs to atlas placements.
	Cache *cache.Cache

	// Sink receives the quads.
	Sink VertexSink

	// Texture is the atlas texture used to normalize texture coordinates.
	// Nil selects the cache allocator's texture.
	Texture gpucontext.Texture

	// LCDTarget is the destination surface for LCD text. Its physical size
	// normalizes the destination coordinates of LCD quads.
	LCDTarget gpucontext.Texture
}

// Draw emits the glyphs of gl with the run origin at (x, y).
func (r *Renderer) Draw(gl GlyphList, x, y float64, opts Options) Stats {
	var st Stats

	tex := r.Texture
	if tex == nil {
		tex = r.Cache.Allocator().Texture()
	}
	lcd := r.Cache.Strike().Mode() == atlas.ModeLCD
	dstw, dsth := float32(1), float32(1)
	if lcd && r.LCDTarget != nil {
		dstw = float32(r.LCDTarget.Width())
		dsth = float32(r.LCDTarget.Height())
	}
	subPixel := r.Cache.Strike().SubPixel()
	coloring := opts.RangeColor != nil && opts.TextColor != nil
	var current *gputypes.Color

	n := gl.Len()
	for gi := 0; gi < n; gi++ {
		code := gl.GlyphCode(gi)
		if code == InvisibleGlyph {
			st.Skipped++
			continue
		}

		if c := opts.Clip; c != nil {
			// Clip in user space, before snapping and transforming.
			if x+gl.PosX(gi) > c.MaxX {
				st.Clipped += clipRest(gl, gi, &st)
				break
			}
			if x+gl.PosX(gi+1) < c.MinX {
				st.Clipped++
				continue
			}
		}

		px, py := x+gl.PosX(gi), y+gl.PosY(gi)
		frac := 0.0
		if subPixel {
			ix := math.Floor(px)
			frac = px - ix
			if frac >= 1 {
				// px is a tiny negative value that rounded up to a whole pixel.
				ix++
				frac = 0
			}
			px = ix
		}

		p := r.Cache.Lookup(code, frac)
		if p == nil {
			st.Skipped++
			continue
		}
		if !p.Visible() {
			st.Whitespace++
			continue
		}

		if coloring {
			want := opts.TextColor
			if off := gl.CharOffset(gi); opts.Start <= off && off < opts.End {
				want = opts.RangeColor
			}
			if current == nil || *current != *want {
				r.Sink.SetPerVertexColor(*want)
				current = want
			}
		}

		if opts.Transform != nil {
			px, py = opts.Transform.Apply(px, py)
		}
		r.emit(p, tex, px, py, lcd, dstw, dsth)
		st.Quads++
	}

	Logger().Debug("glyph run drawn",
		"glyphs", n,
		"quads", st.Quads,
		"clipped", st.Clipped,
		"skipped", st.Skipped)
	return st
}

// clipRest counts the glyphs from gi on that the clip drops. Invisible
// placeholders among them count as skipped.
func clipRest(gl GlyphList, gi int, st *Stats) int {
	clipped := 0
	for ; gi < gl.Len(); gi++ {
		if gl.GlyphCode(gi) == InvisibleGlyph {
			st.Skipped++
			continue
		}
		clipped++
	}
	return clipped
}

// emit builds the quad for placement p at device position (x, y).
func (r *Renderer) emit(p *cache.Placement, tex gpucontext.Texture, x, y float64, lcd bool, dstw, dsth float32) {
	rect := p.Rect
	border := p.Border
	gw := float32(rect.Width - 2*border)
	gh := float32(rect.Height - 2*border)
	tw := float32(tex.Width())
	th := float32(tex.Height())

	q := Quad{
		Y1: float32(p.OriginY) + round32(float32(y)),
		U1: float32(rect.X+border) / tw,
		V1: float32(rect.Y+border) / th,
	}
	q.Y2 = q.Y1 + gh
	q.U2 = q.U1 + gw/tw
	q.V2 = q.V1 + gh/th

	if !lcd {
		q.X1 = round32(float32(p.OriginX) + float32(x))
		q.X2 = q.X1 + gw
		r.Sink.AddQuad(q)
		return
	}

	// LCD masks hold three samples per pixel, so texel offsets and widths
	// are divided by three to reach device pixels.
	q.X1 = round32((float32(p.OriginX)/3+float32(x))*3) / 3
	q.X2 = q.X1 + gw/3
	r.Sink.AddLCDQuad(LCDQuad{
		Quad:  q,
		DstU1: q.X1 / dstw,
		DstV1: q.Y1 / dsth,
		DstU2: q.X2 / dstw,
		DstV2: q.Y2 / dsth,
	})
}

// round32 rounds half up, matching the rasterizer's pixel center convention.
func round32(v float32) float32 {
	return float32(math.Floor(float64(v) + 0.5))
}
