// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package quad

import (
	"log/slog"

	"github.com/gogpu/glyphatlas/internal/logging"
)

var logger logging.Var

// SetLogger configures the logger for the quad package.
// Pass nil to restore the default silent logger.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the current quad package logger.
func Logger() *slog.Logger {
	return logger.Load()
}
