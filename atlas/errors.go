// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas operations.
var (
	// ErrGlyphTooLarge is returned when a rectangle cannot fit an empty atlas.
	ErrGlyphTooLarge = errors.New("atlas: glyph larger than atlas")

	// ErrRectOutOfBounds is returned when an upload targets space outside the texture.
	ErrRectOutOfBounds = errors.New("atlas: rectangle outside texture bounds")

	// ErrMaskTooLarge is returned when a mask plus its border overflows the target rectangle.
	ErrMaskTooLarge = errors.New("atlas: mask does not fit rectangle")

	// ErrDataSize is returned when an upload has the wrong number of bytes.
	ErrDataSize = errors.New("atlas: pixel data size mismatch")

	// ErrNilFactory is returned when a registry has no texture factory.
	ErrNilFactory = errors.New("atlas: nil texture factory")

	// ErrUnknownAtlas is returned when releasing an atlas that was never acquired.
	ErrUnknownAtlas = errors.New("atlas: no such atlas")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// TooLargeError reports a rectangle that cannot be placed even in an empty atlas.
type TooLargeError struct {
	Width, Height           int
	AtlasWidth, AtlasHeight int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("atlas: glyph %dx%d larger than atlas %dx%d",
		e.Width, e.Height, e.AtlasWidth, e.AtlasHeight)
}

// Unwrap returns ErrGlyphTooLarge.
func (e *TooLargeError) Unwrap() error {
	return ErrGlyphTooLarge
}
