// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/glyphatlas/mask"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Errors returned by NewStrike.
var (
	ErrNilFont     = errors.New("raster: nil font")
	ErrInvalidSize = errors.New("raster: size must be positive")
)

// MaxSize is the largest supported strike size in pixels per em.
const MaxSize = 2048

// StrikeConfig selects the size and rendering mode of a strike.
type StrikeConfig struct {
	// Size is the font size in pixels per em.
	Size float64

	// Mode selects greyscale or LCD subpixel masks.
	Mode atlas.Mode

	// SubPixel enables rendering at quarter pixel horizontal offsets.
	SubPixel bool
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*sfnt.Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	return f, nil
}

// Strike rasterizes the glyphs of one font at one size and mode.
// It implements cache.Strike.
//
// Strike is not safe for concurrent use.
type Strike struct {
	font *sfnt.Font
	cfg  StrikeConfig
	ppem fixed.Int26_6

	buf  sfnt.Buffer
	rast vector.Rasterizer
}

var _ cache.Strike = (*Strike)(nil)

// NewStrike creates a strike of f.
func NewStrike(f *sfnt.Font, cfg StrikeConfig) (*Strike, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if !(cfg.Size > 0) || cfg.Size > MaxSize {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, cfg.Size)
	}
	return &Strike{
		font: f,
		cfg:  cfg,
		ppem: fixed.Int26_6(math.Round(cfg.Size * 64)),
	}, nil
}

// Mode returns the mask mode.
func (s *Strike) Mode() atlas.Mode { return s.cfg.Mode }

// SubPixel reports whether the strike renders at fractional x offsets.
func (s *Strike) SubPixel() bool { return s.cfg.SubPixel }

// Size returns the strike size in pixels per em.
func (s *Strike) Size() float64 { return s.cfg.Size }

// Font returns the underlying font.
func (s *Strike) Font() *sfnt.Font { return s.font }

// GlyphCode maps a rune to its glyph, reporting false if the font lacks it.
func (s *Strike) GlyphCode(r rune) (cache.GlyphCode, bool) {
	idx, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return cache.GlyphCode(idx), true
}

// Rasterize renders glyph code shifted by (phaseX, phaseY) pixels.
// Glyphs without an outline, such as spaces, produce an empty mask that
// still carries the advance.
func (s *Strike) Rasterize(code cache.GlyphCode, phaseX, phaseY float64) (*mask.Mask, bool) {
	if int(code) >= s.font.NumGlyphs() {
		return nil, false
	}
	idx := sfnt.GlyphIndex(code)

	adv, err := s.font.GlyphAdvance(&s.buf, idx, s.ppem, font.HintingNone)
	if err != nil {
		return nil, false
	}
	m := &mask.Mask{XAdvance: fixedToFloat(adv)}

	segs, err := s.font.LoadGlyph(&s.buf, idx, s.ppem, nil)
	if errors.Is(err, sfnt.ErrColoredGlyph) {
		return m, true
	}
	if err != nil {
		return nil, false
	}
	if len(segs) == 0 {
		return m, true
	}

	sx := float32(1)
	if s.cfg.Mode == atlas.ModeLCD {
		sx = 3
	}
	px, py := float32(phaseX), float32(phaseY)
	b := segs.Bounds()
	minX := int(math.Floor(float64((fixedToFloat32(b.Min.X) + px) * sx)))
	minY := int(math.Floor(float64(fixedToFloat32(b.Min.Y) + py)))
	maxX := int(math.Ceil(float64((fixedToFloat32(b.Max.X) + px) * sx)))
	maxY := int(math.Ceil(float64(fixedToFloat32(b.Max.Y) + py)))
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return m, true
	}

	// Map glyph space to mask space: shift by the phase, stretch x for LCD,
	// then move the bounds' top-left to the origin.
	tx := func(p fixed.Point26_6) (float32, float32) {
		return (fixedToFloat32(p.X)+px)*sx - float32(minX),
			fixedToFloat32(p.Y) + py - float32(minY)
	}

	s.rast.Reset(w, h)
	s.rast.DrawOp = draw.Src
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				s.rast.ClosePath()
			}
			s.rast.MoveTo(tx(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			s.rast.LineTo(tx(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := tx(seg.Args[0])
			x, y := tx(seg.Args[1])
			s.rast.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := tx(seg.Args[0])
			c2x, c2y := tx(seg.Args[1])
			x, y := tx(seg.Args[2])
			s.rast.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		s.rast.ClosePath()
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	s.rast.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	img.Rect = img.Rect.Add(image.Pt(minX, minY))

	return mask.FromAlpha(img, m.XAdvance, 0), true
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
