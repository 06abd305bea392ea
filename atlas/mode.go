// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlas

// Mode is the antialiasing mode of an atlas. Atlases of different modes never
// share placements: LCD masks hold three horizontal samples per pixel.
type Mode uint8

const (
	// ModeGrey stores one coverage sample per pixel.
	ModeGrey Mode = iota

	// ModeLCD stores three horizontal subpixel samples per pixel.
	ModeLCD
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeGrey:
		return "Grey"
	case ModeLCD:
		return "LCD"
	default:
		return "Unknown"
	}
}

// Rect is an axis-aligned rectangle in atlas texel space.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// In reports whether r lies entirely within a w x h surface.
func (r Rect) In(w, h int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.X+r.Width <= w && r.Y+r.Height <= h
}
