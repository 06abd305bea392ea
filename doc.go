// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyphatlas is a glyph texture-atlas cache for GPU text rendering.
//
// Glyph masks are rasterized on demand, packed into a shared atlas texture
// and drawn as textured quads. When an atlas fills up it is reset: pending
// quads are flushed first and every cache sharing the atlas drops its
// placements.
//
// # Packages
//
//   - mask: coverage bitmaps produced by rasterizers
//   - atlas: texture allocation, shelf packing and the per-context registry
//   - cache: glyph-to-placement lookup with sub-pixel phases
//   - quad: quad emission, vertex batches and the WGSL shaders
//   - raster: an x/image based Strike for TrueType/OpenType fonts
//   - shape: HarfBuzz shaping into glyph runs
//   - backend/native: atlas textures on a wgpu HAL device
//
// # Quick start
//
//	reg, _ := atlas.NewRegistry(atlas.MemoryFactory, atlas.DefaultConfig())
//	ctx, _ := glyphatlas.NewContext(reg, glyphatlas.ContextOptions{
//	    Flush: func(mode atlas.Mode, vs []quad.Vertex) { /* draw */ },
//	})
//	defer ctx.Close()
//
//	strike, _ := raster.NewStrike(fnt, raster.StrikeConfig{Size: 16})
//	c, _ := ctx.NewCache(strike)
//	run, _ := shaper.Shape("Hello", 16)
//	ctx.DrawText(c, run, 10, 40, quad.Options{})
//	ctx.Flush()
//
// # Logging
//
// All packages are silent by default. SetLogger enables structured logging
// through log/slog for this package and its sub-packages.
package glyphatlas
