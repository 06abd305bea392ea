// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphatlas

import (
	"log/slog"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/glyphatlas/internal/logging"
	"github.com/gogpu/glyphatlas/quad"
)

var logger logging.Var

// SetLogger configures the logger for glyphatlas and all its sub-packages.
// By default nothing is logged. Pass nil to restore silent behavior.
//
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: atlas creation, resets and teardown, draw statistics
//   - [slog.LevelWarn]: glyphs that could not be rasterized or uploaded
//
// Example:
//
//	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	l = logger.Load()
	atlas.SetLogger(l)
	cache.SetLogger(l)
	quad.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}
