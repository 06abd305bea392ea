// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package logging holds the slog plumbing shared by the glyphatlas packages.
//
// Every package keeps its own Var so that the root package can propagate a
// logger to its sub-packages without an import cycle.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Nop returns a logger that discards all output.
func Nop() *slog.Logger { return slog.New(nopHandler{}) }

// Var stores a logger that can be swapped concurrently with logging.
// The zero value logs nothing.
type Var struct {
	p atomic.Pointer[slog.Logger]
}

// Load returns the stored logger, or a nop logger if none was stored.
func (v *Var) Load() *slog.Logger {
	if l := v.p.Load(); l != nil {
		return l
	}
	return nopLogger
}

// Store replaces the logger. Passing nil restores silent behavior.
func (v *Var) Store(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	v.p.Store(l)
}

var nopLogger = Nop()
