// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlas

import (
	"image"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Texture is the backing surface of an atlas. It exposes its size and format
// and accepts sub-region uploads of tightly packed rows.
type Texture interface {
	gpucontext.Texture
	gpucontext.TextureRegionUpdater

	// Format returns the texel format.
	Format() gputypes.TextureFormat
}

// TextureFactory creates the backing texture for a new atlas.
type TextureFactory func(width, height int, format gputypes.TextureFormat) (Texture, error)

// Destroyer is implemented by textures that hold releasable resources.
type Destroyer interface {
	Destroy()
}

// MemoryTexture is a Texture backed by a CPU byte slice.
type MemoryTexture struct {
	mu     sync.RWMutex
	width  int
	height int
	format gputypes.TextureFormat
	bpp    int
	pix    []byte

	uploads int
}

var _ Texture = (*MemoryTexture)(nil)

// NewMemoryTexture allocates a zeroed texture.
func NewMemoryTexture(width, height int, format gputypes.TextureFormat) *MemoryTexture {
	bpp := BytesPerPixel(format)
	if bpp == 0 {
		bpp = 1
		format = gputypes.TextureFormatR8Unorm
	}
	return &MemoryTexture{
		width:  width,
		height: height,
		format: format,
		bpp:    bpp,
		pix:    make([]byte, width*height*bpp),
	}
}

// MemoryFactory is a TextureFactory producing MemoryTextures.
func MemoryFactory(width, height int, format gputypes.TextureFormat) (Texture, error) {
	return NewMemoryTexture(width, height, format), nil
}

// Width returns the texture width in texels.
func (t *MemoryTexture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *MemoryTexture) Height() int { return t.height }

// Format returns the texel format.
func (t *MemoryTexture) Format() gputypes.TextureFormat { return t.format }

// UpdateRegion copies w*h densely packed texels to (x, y).
func (t *MemoryTexture) UpdateRegion(x, y, w, h int, data []byte) error {
	if !(Rect{X: x, Y: y, Width: w, Height: h}).In(t.width, t.height) {
		return ErrRectOutOfBounds
	}
	rowBytes := w * t.bpp
	if len(data) != rowBytes*h {
		return ErrDataSize
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	stride := t.width * t.bpp
	for row := 0; row < h; row++ {
		off := (y+row)*stride + x*t.bpp
		copy(t.pix[off:off+rowBytes], data[row*rowBytes:(row+1)*rowBytes])
	}
	t.uploads++
	return nil
}

// Pixels returns a copy of the texture contents.
func (t *MemoryTexture) Pixels() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]byte, len(t.pix))
	copy(out, t.pix)
	return out
}

// At returns the first channel of the texel at (x, y).
func (t *MemoryTexture) At(x, y int) uint8 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pix[(y*t.width+x)*t.bpp]
}

// Uploads returns the number of successful UpdateRegion calls.
func (t *MemoryTexture) Uploads() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.uploads
}

// Image returns the coverage channel as an alpha image.
func (t *MemoryTexture) Image() *image.Alpha {
	t.mu.RLock()
	defer t.mu.RUnlock()
	img := image.NewAlpha(image.Rect(0, 0, t.width, t.height))
	for i := range img.Pix {
		img.Pix[i] = t.pix[i*t.bpp]
	}
	return img
}
