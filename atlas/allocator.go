// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlas

import (
	"fmt"

	"github.com/gogpu/glyphatlas/mask"
)

// Allocator hands out atlas rectangles and writes glyph masks into them.
//
// One allocator exists per (rendering context, mode) pair and is shared by
// every glyph cache of that pair. When the packer is exhausted the whole
// atlas is reset: the flush hook runs first so queued quads never sample
// overwritten texels, then the epoch advances and the packer is cleared.
// Caches compare their recorded epoch against Epoch to learn that their
// placements are gone.
type Allocator struct {
	mode   Mode
	tex    Texture
	packer Packer
	bpp    int

	flush  func()
	epoch  uint64
	resets uint64

	zero    []byte // reusable zero-filled upload buffer
	scratch []byte // mask rows expanded to the texel format
}

// NewAllocator creates an allocator over tex. A nil packer selects a
// ShelfPacker covering the whole texture.
func NewAllocator(tex Texture, packer Packer, mode Mode) *Allocator {
	if packer == nil {
		packer = NewShelfPacker(tex.Width(), tex.Height())
	}
	bpp := BytesPerPixel(tex.Format())
	if bpp == 0 {
		bpp = 1
	}
	return &Allocator{
		mode:   mode,
		tex:    tex,
		packer: packer,
		bpp:    bpp,
	}
}

// Reserve asks the packer for a width x height rectangle. It returns false
// when the atlas is full.
func (a *Allocator) Reserve(width, height int) (Rect, bool) {
	r := Rect{Width: width, Height: height}
	if !a.packer.Add(&r) {
		return Rect{}, false
	}
	return r, true
}

// ResetAndRetry clears the atlas and reserves once more. Every rectangle
// handed out before the call becomes invalid. A rectangle that cannot fit an
// empty atlas yields a *TooLargeError and leaves the atlas untouched.
func (a *Allocator) ResetAndRetry(width, height int) (Rect, error) {
	tooLarge := &TooLargeError{
		Width: width, Height: height,
		AtlasWidth: a.tex.Width(), AtlasHeight: a.tex.Height(),
	}
	if width > a.tex.Width() || height > a.tex.Height() {
		return Rect{}, tooLarge
	}

	a.Reset()

	r, ok := a.Reserve(width, height)
	if !ok {
		return Rect{}, tooLarge
	}
	return r, nil
}

// Reset flushes pending work, invalidates every placement and empties the
// packer. Texel contents are left as they are; uploads zero their own
// rectangle before writing.
func (a *Allocator) Reset() {
	if a.flush != nil {
		a.flush()
	}
	a.epoch++
	a.resets++
	a.packer.Reset()

	Logger().Debug("atlas reset",
		"mode", a.mode,
		"resets", a.resets,
		"width", a.tex.Width(),
		"height", a.tex.Height())
}

// Upload zero-fills r and writes m's coverage at (r.X+border, r.Y+border).
// Clearing the whole rectangle first keeps the border blank even when r
// reuses space from before a reset.
func (a *Allocator) Upload(r Rect, m *mask.Mask, border int) error {
	if !r.In(a.tex.Width(), a.tex.Height()) {
		return ErrRectOutOfBounds
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if m.Width+2*border > r.Width || m.Height+2*border > r.Height {
		return ErrMaskTooLarge
	}

	if n := r.Width * r.Height * a.bpp; n > 0 {
		if len(a.zero) < n {
			a.zero = make([]byte, n)
		}
		if err := a.tex.UpdateRegion(r.X, r.Y, r.Width, r.Height, a.zero[:n]); err != nil {
			return fmt.Errorf("atlas: clear %dx%d at (%d,%d): %w", r.Width, r.Height, r.X, r.Y, err)
		}
	}

	if m.Empty() {
		return nil
	}
	data := a.expand(m)
	if err := a.tex.UpdateRegion(r.X+border, r.Y+border, m.Width, m.Height, data); err != nil {
		return fmt.Errorf("atlas: upload %dx%d mask: %w", m.Width, m.Height, err)
	}
	return nil
}

// expand returns the mask as tightly packed texels of the atlas format.
func (a *Allocator) expand(m *mask.Mask) []byte {
	packed := m.Packed()
	if a.bpp == 1 {
		return packed
	}
	n := len(packed) * a.bpp
	if cap(a.scratch) < n {
		a.scratch = make([]byte, n)
	}
	out := a.scratch[:n]
	for i, c := range packed {
		for j := 0; j < a.bpp; j++ {
			out[i*a.bpp+j] = c
		}
	}
	return out
}

// SetFlushHook installs the function run before every reset, typically the
// owning context's vertex flush. Pass nil to remove it.
func (a *Allocator) SetFlushHook(fn func()) {
	a.flush = fn
}

// Texture returns the backing texture.
func (a *Allocator) Texture() Texture { return a.tex }

// Mode returns the antialiasing mode of this atlas.
func (a *Allocator) Mode() Mode { return a.mode }

// Epoch returns a counter that advances on every reset.
func (a *Allocator) Epoch() uint64 { return a.epoch }

// Resets returns the number of resets performed.
func (a *Allocator) Resets() uint64 { return a.resets }
