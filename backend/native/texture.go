// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphatlas/atlas"
)

// Texture errors.
var (
	// ErrTextureDestroyed is returned when writing to a destroyed texture.
	ErrTextureDestroyed = errors.New("native: texture has been destroyed")

	// ErrNilHALDevice is returned when creating a texture without a device.
	ErrNilHALDevice = errors.New("native: device is nil")

	// ErrNilHALQueue is returned when creating a texture without a queue.
	ErrNilHALQueue = errors.New("native: queue is nil")

	// ErrInvalidTextureSize is returned when texture dimensions are invalid.
	ErrInvalidTextureSize = errors.New("native: invalid texture size")

	// ErrUnsupportedFormat is returned for formats an atlas cannot hold.
	ErrUnsupportedFormat = errors.New("native: unsupported atlas format")
)

// Texture is an atlas.Texture backed by a HAL texture.
//
// UpdateRegion may be called from several goroutines; Destroy should be
// called once, after the last upload.
type Texture struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue
	tex    hal.Texture

	width  int
	height int
	format gputypes.TextureFormat
	bpp    int

	uploads   int
	destroyed bool
}

var (
	_ atlas.Texture   = (*Texture)(nil)
	_ atlas.Destroyer = (*Texture)(nil)
)

// NewTexture creates a 2D texture on device. Uploads go through queue.
func NewTexture(device hal.Device, queue hal.Queue, width, height int, format gputypes.TextureFormat) (*Texture, error) {
	if device == nil {
		return nil, ErrNilHALDevice
	}
	if queue == nil {
		return nil, ErrNilHALQueue
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	bpp := atlas.BytesPerPixel(format)
	if bpp == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         fmt.Sprintf("glyph_atlas_%dx%d", width, height),
		Size:          hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1}, //nolint:gosec // checked positive
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create atlas texture: %w", err)
	}

	return &Texture{
		device: device,
		queue:  queue,
		tex:    tex,
		width:  width,
		height: height,
		format: format,
		bpp:    bpp,
	}, nil
}

// Factory returns an atlas.TextureFactory creating textures on device.
func Factory(device hal.Device, queue hal.Queue) atlas.TextureFactory {
	return func(width, height int, format gputypes.TextureFormat) (atlas.Texture, error) {
		return NewTexture(device, queue, width, height, format)
	}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Format returns the texel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// Raw returns the underlying HAL texture for binding.
func (t *Texture) Raw() hal.Texture { return t.tex }

// UpdateRegion writes w*h densely packed texels at (x, y).
func (t *Texture) UpdateRegion(x, y, w, h int, data []byte) error {
	if !(atlas.Rect{X: x, Y: y, Width: w, Height: h}).In(t.width, t.height) {
		return atlas.ErrRectOutOfBounds
	}
	if len(data) != w*h*t.bpp {
		return atlas.ErrDataSize
	}
	if w == 0 || h == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return ErrTextureDestroyed
	}

	//nolint:gosec // coordinates are bounds-checked above
	t.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: 0,
			Origin:   hal.Origin3D{X: uint32(x), Y: uint32(y)},
			Aspect:   gputypes.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(w * t.bpp),
			RowsPerImage: uint32(h),
		},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
	t.uploads++
	return nil
}

// Uploads returns the number of region writes issued.
func (t *Texture) Uploads() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.uploads
}

// IsDestroyed reports whether Destroy has been called.
func (t *Texture) IsDestroyed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.destroyed
}

// Destroy releases the HAL texture. It is safe to call more than once.
func (t *Texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.device.DestroyTexture(t.tex)
	t.tex = nil
}
