// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package atlas manages the shared glyph texture atlas.
//
// An [Allocator] couples a rectangle [Packer] with a backing [Texture]. Glyph
// caches reserve space through it and upload coverage masks into the reserved
// rectangles. When the packer runs out of room the allocator clears the whole
// atlas and retries once; there is no per-glyph eviction.
//
// Atlases are partitioned by rendering context and antialiasing [Mode]. A
// [Registry] owns that mapping, creating allocators lazily and releasing them
// when the last user lets go.
//
// Allocators are not safe for concurrent use. All caches sharing one allocator
// must be driven from the goroutine that owns the rendering context. The
// registry itself may be used from any goroutine.
package atlas
