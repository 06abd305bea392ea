// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shape turns text into glyph runs for the quad renderer.
//
// Shaping uses the HarfBuzz port in github.com/go-text/typesetting. A
// paragraph is first split into directional runs with
// golang.org/x/text/unicode/bidi; each run is shaped separately and the runs
// are laid out in visual order, so glyph x positions never decrease:
//
//	s, err := shape.NewShaper(goregular.TTF)
//	run, err := s.Shape("Hello, world", 16)
//	renderer.Draw(run, x, y, opts)
//
// Results are memoized per (text, size) in a bounded LRU. Returned runs are
// shared between callers and must not be modified.
package shape
