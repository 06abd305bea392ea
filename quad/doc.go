// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package quad turns shaped glyph runs into textured quads.
//
// A [Renderer] walks a [GlyphList], resolves each glyph through a
// [cache.Cache] and hands quad geometry to a [VertexSink], normally a
// [Batch]. Vertical positions snap to whole pixels. Horizontal positions snap
// to whole pixels for greyscale atlases and to thirds of a pixel for LCD
// atlases, which store three subpixel samples per pixel.
//
// Clipping assumes glyph x positions never decrease along the run: the first
// glyph that starts past the clip's right edge ends the run.
package quad
