// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mask holds rasterized glyph coverage bitmaps and their metrics.
//
// A Mask is produced by a rasterizer and consumed once, when its pixels are
// copied into an atlas. Coverage is one byte per texel, 0 (empty) to 255
// (fully covered). In LCD mode a texel is one horizontal subpixel sample, so
// a mask is three times wider than the glyph's physical pixel width.
package mask

import (
	"errors"
	"image"
)

// ErrShortPixels is returned when Pix cannot hold Height rows of Stride bytes.
var ErrShortPixels = errors.New("mask: pixel buffer too short for mask geometry")

// Mask is a rasterized glyph: coverage pixels plus placement metrics.
type Mask struct {
	// Width and Height are the mask dimensions in texels.
	Width, Height int

	// OriginX and OriginY are the offset from the glyph origin (the leftmost
	// point of the baseline) to the mask's top-left texel. Y increases down,
	// so OriginY is negative for glyphs that sit above the baseline.
	OriginX, OriginY int

	// XAdvance and YAdvance are the pen advance in device pixels.
	XAdvance, YAdvance float64

	// Pix holds the coverage values, row by row.
	Pix []byte

	// Stride is the distance in bytes between two rows of Pix.
	Stride int
}

// New allocates a zeroed mask of the given size.
func New(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
		Stride: width,
	}
}

// FromAlpha wraps an alpha image as a glyph mask. The image bounds are
// interpreted relative to the glyph origin, the convention used by
// golang.org/x/image/font and the raster package. The pixels are shared,
// not copied.
func FromAlpha(img *image.Alpha, xAdvance, yAdvance float64) *Mask {
	if img == nil {
		return &Mask{XAdvance: xAdvance, YAdvance: yAdvance}
	}
	b := img.Rect
	return &Mask{
		Width:    b.Dx(),
		Height:   b.Dy(),
		OriginX:  b.Min.X,
		OriginY:  b.Min.Y,
		XAdvance: xAdvance,
		YAdvance: yAdvance,
		Pix:      img.Pix,
		Stride:   img.Stride,
	}
}

// Empty reports whether the mask has no visible pixels, as for whitespace.
func (m *Mask) Empty() bool {
	return m == nil || m.Width <= 0 || m.Height <= 0
}

// Validate checks that Pix covers the declared geometry.
func (m *Mask) Validate() error {
	if m.Empty() {
		return nil
	}
	if m.Stride < m.Width {
		return ErrShortPixels
	}
	if len(m.Pix) < (m.Height-1)*m.Stride+m.Width {
		return ErrShortPixels
	}
	return nil
}

// Row returns the y'th row of coverage values.
func (m *Mask) Row(y int) []byte {
	start := y * m.Stride
	return m.Pix[start : start+m.Width]
}

// At returns the coverage at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Stride+x]
}

// Packed returns the coverage values with no row padding. When the mask is
// already tightly packed the returned slice aliases Pix.
func (m *Mask) Packed() []byte {
	if m.Empty() {
		return nil
	}
	if m.Stride == m.Width {
		return m.Pix[:m.Width*m.Height]
	}
	out := make([]byte, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		copy(out[y*m.Width:], m.Row(y))
	}
	return out
}

// Bounds returns the mask rectangle relative to the glyph origin.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(m.OriginX, m.OriginY, m.OriginX+m.Width, m.OriginY+m.Height)
}
