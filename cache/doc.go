// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache maps glyph identity and subpixel phase to atlas placements.
//
// A [Cache] belongs to one rendering context and one font strike. On a miss it
// asks the strike to rasterize the glyph, reserves atlas space through the
// shared [atlas.Allocator], uploads the coverage mask and remembers the
// resulting [Placement]. Whitespace is cached as a placement without a
// rectangle so the renderer still advances the pen.
//
// Storage is sparse: glyph codes are grouped in segments of 32 that are
// materialized on first use, one set of segments per subpixel phase. A
// document typically touches a handful of segments out of the thousands a
// large font spans.
//
// When the shared atlas fills up it is reset as a whole. Every cache records
// the allocator epoch it was filled under and clears itself on its next
// lookup after the epoch moves.
//
// Caches are not safe for concurrent use.
package cache
