// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mask

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	m := New(4, 3)
	if m.Width != 4 || m.Height != 3 {
		t.Fatalf("New(4, 3) size = %dx%d", m.Width, m.Height)
	}
	if m.Stride != 4 {
		t.Errorf("Stride = %d, want 4", m.Stride)
	}
	if len(m.Pix) != 12 {
		t.Errorf("len(Pix) = %d, want 12", len(m.Pix))
	}
	if m.Empty() {
		t.Error("4x3 mask should not be empty")
	}
}

func TestNew_NegativeClamped(t *testing.T) {
	m := New(-1, 5)
	if m.Width != 0 {
		t.Errorf("Width = %d, want 0", m.Width)
	}
	if !m.Empty() {
		t.Error("zero-width mask should be empty")
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		name string
		m    *Mask
		want bool
	}{
		{"nil", nil, true},
		{"zero width", &Mask{Width: 0, Height: 4}, true},
		{"zero height", &Mask{Width: 4, Height: 0}, true},
		{"visible", New(1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromAlpha(t *testing.T) {
	img := image.NewAlpha(image.Rect(-1, -7, 5, 2))
	img.SetAlpha(0, 0, color.Alpha{A: 200})

	m := FromAlpha(img, 7.5, 0)
	if m.Width != 6 || m.Height != 9 {
		t.Errorf("size = %dx%d, want 6x9", m.Width, m.Height)
	}
	if m.OriginX != -1 || m.OriginY != -7 {
		t.Errorf("origin = (%d, %d), want (-1, -7)", m.OriginX, m.OriginY)
	}
	if m.XAdvance != 7.5 {
		t.Errorf("XAdvance = %v, want 7.5", m.XAdvance)
	}
	// Glyph-space (0, 0) is texel (1, 7).
	if got := m.At(1, 7); got != 200 {
		t.Errorf("At(1, 7) = %d, want 200", got)
	}
	if got := m.Bounds(); got != img.Rect {
		t.Errorf("Bounds() = %v, want %v", got, img.Rect)
	}
}

func TestFromAlpha_Nil(t *testing.T) {
	m := FromAlpha(nil, 4, 0)
	if !m.Empty() {
		t.Error("mask from nil image should be empty")
	}
	if m.XAdvance != 4 {
		t.Errorf("XAdvance = %v, want 4", m.XAdvance)
	}
}

func TestValidate(t *testing.T) {
	good := New(3, 2)
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	short := &Mask{Width: 3, Height: 2, Stride: 3, Pix: make([]byte, 5)}
	if err := short.Validate(); !errors.Is(err, ErrShortPixels) {
		t.Errorf("Validate() = %v, want ErrShortPixels", err)
	}

	badStride := &Mask{Width: 3, Height: 1, Stride: 2, Pix: make([]byte, 8)}
	if err := badStride.Validate(); !errors.Is(err, ErrShortPixels) {
		t.Errorf("Validate() = %v, want ErrShortPixels", err)
	}

	var empty Mask
	if err := empty.Validate(); err != nil {
		t.Errorf("empty Validate() = %v, want nil", err)
	}
}

func TestPacked(t *testing.T) {
	// 2x2 mask stored with a stride of 3.
	m := &Mask{Width: 2, Height: 2, Stride: 3, Pix: []byte{1, 2, 99, 3, 4, 99}}
	got := m.Packed()
	want := []byte{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("len(Packed()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Packed()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	tight := New(2, 2)
	if p := tight.Packed(); &p[0] != &tight.Pix[0] {
		t.Error("Packed() on a tight mask should alias Pix")
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	m := New(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := m.At(p[0], p[1]); got != 0 {
			t.Errorf("At(%d, %d) = %d, want 0", p[0], p[1], got)
		}
	}
}
