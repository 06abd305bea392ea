// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlas

import "github.com/gogpu/gputypes"

// Size limits for an atlas texture edge.
const (
	MinSize = 16
	MaxSize = 8192
)

// Config holds atlas texture configuration.
type Config struct {
	// Width and Height are the texture size in texels.
	// Default: 1024x1024
	Width, Height int

	// Format is the texture pixel format. Single channel formats store
	// coverage directly; RGBA formats replicate it into every channel.
	// Default: TextureFormatR8Unorm
	Format gputypes.TextureFormat
}

// DefaultConfig returns the default atlas configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1024,
		Height: 1024,
		Format: gputypes.TextureFormatR8Unorm,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < MinSize {
		return &ConfigError{Field: "Width", Reason: "must be at least 16"}
	}
	if c.Width > MaxSize {
		return &ConfigError{Field: "Width", Reason: "must be at most 8192"}
	}
	if c.Height < MinSize {
		return &ConfigError{Field: "Height", Reason: "must be at least 16"}
	}
	if c.Height > MaxSize {
		return &ConfigError{Field: "Height", Reason: "must be at most 8192"}
	}
	if BytesPerPixel(c.Format) == 0 {
		return &ConfigError{Field: "Format", Reason: "unsupported texture format"}
	}
	return nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Format == gputypes.TextureFormatUndefined {
		c.Format = d.Format
	}
	return c
}

// BytesPerPixel returns the texel size of the formats an atlas can use,
// or 0 for anything else.
func BytesPerPixel(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4
	default:
		return 0
	}
}
