// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphatlas

import "errors"

// Errors returned by Context.
var (
	// ErrContextClosed is returned when using a Context after Close.
	ErrContextClosed = errors.New("glyphatlas: context is closed")

	// ErrNilRegistry is returned by NewContext without a registry.
	ErrNilRegistry = errors.New("glyphatlas: registry is nil")

	// ErrNilStrike is returned by NewCache without a strike.
	ErrNilStrike = errors.New("glyphatlas: strike is nil")
)
