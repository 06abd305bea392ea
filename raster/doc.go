// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster renders glyph coverage masks from TrueType and OpenType
// outlines.
//
// A [Strike] loads outlines with golang.org/x/image/font/sfnt and fills them
// with the golang.org/x/image/vector rasterizer. In LCD mode outlines are
// stretched three times horizontally so every device pixel gets one sample
// per color stripe. Hinting is not applied.
package raster
