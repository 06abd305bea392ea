// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_Derived(t *testing.T) {
	h := nopHandler{}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(nopHandler); !ok {
		t.Error("WithAttrs should return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup should return nopHandler")
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
}

func TestVar_ZeroValueSilent(t *testing.T) {
	var v Var
	l := v.Load()
	if l == nil {
		t.Fatal("Load() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("zero Var should be disabled at all levels")
	}
}

func TestVar_StoreLoad(t *testing.T) {
	var v Var
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v.Store(custom)
	if v.Load() != custom {
		t.Fatal("Load() did not return the stored logger")
	}
	v.Load().Debug("atlas reset", "mode", "grey")
	if !strings.Contains(buf.String(), "atlas reset") {
		t.Errorf("expected log output, got %q", buf.String())
	}

	v.Store(nil)
	if v.Load().Enabled(context.Background(), slog.LevelError) {
		t.Error("Store(nil) should restore a disabled logger")
	}
}

func TestVar_Concurrent(t *testing.T) {
	var v Var
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			v.Load().Debug("read")
		}()
		go func() {
			defer wg.Done()
			v.Store(slog.Default())
			v.Store(nil)
		}()
	}
	wg.Wait()
}
