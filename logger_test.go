// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphatlas

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/glyphatlas/quad"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger_Propagates(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)

	if Logger() != l {
		t.Error("Logger() did not return the configured logger")
	}
	for name, got := range map[string]*slog.Logger{
		"atlas": atlas.Logger(),
		"cache": cache.Logger(),
		"quad":  quad.Logger(),
	} {
		if got != l {
			t.Errorf("%s.Logger() not updated", name)
		}
	}

	atlas.Logger().Debug("atlas message")
	if !strings.Contains(buf.String(), "atlas message") {
		t.Errorf("output %q missing sub-package message", buf.String())
	}
}

func TestSetLogger_NilRestoresSilent(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)

	for name, l := range map[string]*slog.Logger{
		"root":  Logger(),
		"atlas": atlas.Logger(),
		"cache": cache.Logger(),
		"quad":  quad.Logger(),
	} {
		if l == nil {
			t.Fatalf("%s logger is nil", name)
		}
		if l.Enabled(context.Background(), slog.LevelError) {
			t.Errorf("%s logger enabled after SetLogger(nil)", name)
		}
	}
}
