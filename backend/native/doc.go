// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package native backs glyph atlases with wgpu HAL textures.
//
// A Texture owns one 2D hal.Texture created with copy-destination and
// texture-binding usage. Atlas uploads become hal.Queue.WriteTexture calls
// for the dirty sub-rectangle only:
//
//	reg, err := atlas.NewRegistry(native.Factory(device, queue), atlas.DefaultConfig())
//
// Command submission and pipeline binding stay with the caller.
package native
