// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func testFont(t testing.TB) *sfnt.Font {
	t.Helper()
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont() error = %v", err)
	}
	return f
}

func testStrike(t testing.TB, cfg StrikeConfig) *Strike {
	t.Helper()
	s, err := NewStrike(testFont(t), cfg)
	if err != nil {
		t.Fatalf("NewStrike() error = %v", err)
	}
	return s
}

func code(t testing.TB, s *Strike, r rune) cache.GlyphCode {
	t.Helper()
	c, ok := s.GlyphCode(r)
	if !ok {
		t.Fatalf("font has no glyph for %q", r)
	}
	return c
}

func TestParseFont_Invalid(t *testing.T) {
	if _, err := ParseFont([]byte("not a font")); err == nil {
		t.Error("ParseFont(garbage) error = nil")
	}
}

func TestNewStrike_Errors(t *testing.T) {
	if _, err := NewStrike(nil, StrikeConfig{Size: 12}); !errors.Is(err, ErrNilFont) {
		t.Errorf("nil font error = %v, want ErrNilFont", err)
	}
	f := testFont(t)
	for _, size := range []float64{0, -4, MaxSize + 1} {
		if _, err := NewStrike(f, StrikeConfig{Size: size}); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %v error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestRasterize_Grey(t *testing.T) {
	s := testStrike(t, StrikeConfig{Size: 24})

	m, ok := s.Rasterize(code(t, s, 'A'), 0, 0)
	if !ok {
		t.Fatal("Rasterize('A') = false")
	}
	if m.Empty() {
		t.Fatal("'A' mask is empty")
	}
	if m.Width > 24 || m.Height > 24 {
		t.Errorf("mask %dx%d larger than the em square", m.Width, m.Height)
	}
	if m.OriginY >= 0 {
		t.Errorf("OriginY = %d, want negative (above baseline)", m.OriginY)
	}
	if m.XAdvance <= 0 {
		t.Errorf("XAdvance = %v, want > 0", m.XAdvance)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	var covered int
	for _, v := range m.Pix {
		if v != 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("'A' mask has no coverage")
	}
}

func TestRasterize_Space(t *testing.T) {
	s := testStrike(t, StrikeConfig{Size: 16})

	m, ok := s.Rasterize(code(t, s, ' '), 0, 0)
	if !ok {
		t.Fatal("Rasterize(' ') = false")
	}
	if !m.Empty() {
		t.Errorf("space mask = %dx%d, want empty", m.Width, m.Height)
	}
	if m.XAdvance <= 0 {
		t.Errorf("space XAdvance = %v, want > 0", m.XAdvance)
	}
}

func TestRasterize_OutOfRange(t *testing.T) {
	s := testStrike(t, StrikeConfig{Size: 16})
	if _, ok := s.Rasterize(cache.GlyphCode(s.Font().NumGlyphs()), 0, 0); ok {
		t.Error("Rasterize past NumGlyphs = true, want false")
	}
}

func TestRasterize_LCDTripleWidth(t *testing.T) {
	grey := testStrike(t, StrikeConfig{Size: 20})
	lcd := testStrike(t, StrikeConfig{Size: 20, Mode: atlas.ModeLCD})
	c := code(t, grey, 'W')

	gm, _ := grey.Rasterize(c, 0, 0)
	lm, _ := lcd.Rasterize(c, 0, 0)
	if lm.Height != gm.Height {
		t.Errorf("LCD height = %d, want %d", lm.Height, gm.Height)
	}
	if lm.Width < 3*gm.Width-4 || lm.Width > 3*gm.Width {
		t.Errorf("LCD width = %d, want about 3 x %d", lm.Width, gm.Width)
	}
	if lm.XAdvance != gm.XAdvance {
		t.Errorf("LCD XAdvance = %v, want %v", lm.XAdvance, gm.XAdvance)
	}
	if lcd.Mode() != atlas.ModeLCD {
		t.Errorf("Mode() = %v, want LCD", lcd.Mode())
	}
}

func TestRasterize_PhaseShiftsCoverage(t *testing.T) {
	s := testStrike(t, StrikeConfig{Size: 16, SubPixel: true})
	c := code(t, s, 'l')

	m0, _ := s.Rasterize(c, 0, 0)
	m1, _ := s.Rasterize(c, 0.5, 0)
	if m0.Width == m1.Width && m0.OriginX == m1.OriginX && bytes.Equal(m0.Packed(), m1.Packed()) {
		t.Error("half pixel phase produced an identical mask")
	}
	if !s.SubPixel() {
		t.Error("SubPixel() = false")
	}
}

func TestStrike_WithCache(t *testing.T) {
	s := testStrike(t, StrikeConfig{Size: 18})
	tex := atlas.NewMemoryTexture(256, 256, gputypes.TextureFormatR8Unorm)
	c := cache.New(atlas.NewAllocator(tex, nil, s.Mode()), s, cache.DefaultConfig())

	for _, r := range "Hello, World" {
		p := c.Lookup(code(t, s, r), 0)
		if p == nil {
			t.Fatalf("Lookup(%q) = nil", r)
		}
		if r == ' ' && p.Visible() {
			t.Error("space should not occupy atlas space")
		}
	}
	if c.Stats().Failures != 0 {
		t.Errorf("Failures = %d, want 0", c.Stats().Failures)
	}
	if tex.Uploads() == 0 {
		t.Error("no glyph pixels reached the texture")
	}
}

func BenchmarkRasterize(b *testing.B) {
	s := testStrike(b, StrikeConfig{Size: 16})
	c := code(b, s, 'g')
	for b.Loop() {
		s.Rasterize(c, 0.25, 0)
	}
}
