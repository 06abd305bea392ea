// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas/internal/lru"
)

func newTestShaper(t *testing.T) *Shaper {
	t.Helper()
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatalf("NewShaper: %v", err)
	}
	return s
}

func TestNewShaper_Errors(t *testing.T) {
	if _, err := NewShaper(nil); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("NewShaper(nil) = %v, want ErrEmptyFont", err)
	}
	if _, err := NewShaper([]byte("not a font")); err == nil {
		t.Error("NewShaper(garbage) = nil error")
	}
}

func TestShape_InvalidSize(t *testing.T) {
	s := newTestShaper(t)
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := s.Shape("a", size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Shape(size=%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestShape_Empty(t *testing.T) {
	s := newTestShaper(t)
	run, err := s.Shape("", 16)
	if err != nil {
		t.Fatal(err)
	}
	if run.Len() != 0 || run.Advance != 0 {
		t.Errorf("Shape(\"\") = %d glyphs advance %v, want empty", run.Len(), run.Advance)
	}
}

func TestShape_Latin(t *testing.T) {
	s := newTestShaper(t)
	const text = "Hello, world"
	run, err := s.Shape(text, 16)
	if err != nil {
		t.Fatal(err)
	}
	if run.Len() != len(text) {
		t.Fatalf("Len() = %d, want %d", run.Len(), len(text))
	}
	for i := 0; i < run.Len(); i++ {
		if run.CharOffset(i) != i {
			t.Errorf("CharOffset(%d) = %d, want %d", i, run.CharOffset(i), i)
		}
		if run.GlyphCode(i) == 0 {
			t.Errorf("glyph %d is .notdef", i)
		}
	}
	if run.PosX(0) != 0 {
		t.Errorf("PosX(0) = %v, want 0", run.PosX(0))
	}
	if run.PosX(run.Len()) <= run.PosX(run.Len()-1) {
		t.Errorf("Advance %v not past last glyph %v", run.PosX(run.Len()), run.PosX(run.Len()-1))
	}
}

func TestShape_Scales(t *testing.T) {
	s := newTestShaper(t)
	small, _ := s.Shape("mmmm", 10)
	large, _ := s.Shape("mmmm", 20)
	ratio := large.Advance / small.Advance
	if math.Abs(ratio-2) > 0.05 {
		t.Errorf("advance ratio = %v, want ~2", ratio)
	}
}

func TestShape_NonDecreasingX(t *testing.T) {
	s := newTestShaper(t)
	tests := []string{
		"plain ascii text",
		"abc אבג def",
		"שלום world",
		"mixed 123 العربية end",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			run, err := s.Shape(text, 14)
			if err != nil {
				t.Fatal(err)
			}
			for i := 1; i <= run.Len(); i++ {
				if run.PosX(i) < run.PosX(i-1) {
					t.Errorf("PosX(%d) = %v < PosX(%d) = %v", i, run.PosX(i), i-1, run.PosX(i-1))
				}
			}
		})
	}
}

func TestShape_RTLVisualOrder(t *testing.T) {
	s := newTestShaper(t)
	// "ab " then three Hebrew letters. Visually the Hebrew letters are drawn
	// right to left, so the last logical letter comes first after "ab ".
	run, err := s.Shape("ab אבג", 16)
	if err != nil {
		t.Fatal(err)
	}
	if run.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", run.Len())
	}
	for i := 0; i < 3; i++ {
		if run.CharOffset(i) != i {
			t.Errorf("CharOffset(%d) = %d, want %d", i, run.CharOffset(i), i)
		}
	}
	if got := run.CharOffset(3); got != 5 {
		t.Errorf("first Hebrew glyph offset = %d, want 5", got)
	}
	if got := run.CharOffset(5); got != 3 {
		t.Errorf("last Hebrew glyph offset = %d, want 3", got)
	}
}

func TestShape_Cached(t *testing.T) {
	s := newTestShaper(t)
	a, _ := s.Shape("cache me", 12)
	b, _ := s.Shape("cache me", 12)
	if a != b {
		t.Error("second Shape did not return the cached run")
	}
	c, _ := s.Shape("cache me", 13)
	if a == c {
		t.Error("different size returned the same run")
	}
	st := s.CacheStats()
	if st.Hits != 1 || st.Misses != 2 {
		t.Errorf("CacheStats() = %+v, want 1 hit 2 misses", st)
	}
	s.ClearCache()
	if d, _ := s.Shape("cache me", 12); d == a {
		t.Error("ClearCache kept the run")
	}
}

func TestShape_NoCache(t *testing.T) {
	s, err := NewShaperWithConfig(goregular.TTF, Config{})
	if err != nil {
		t.Fatal(err)
	}
	a, _ := s.Shape("x", 12)
	b, _ := s.Shape("x", 12)
	if a == b {
		t.Error("uncached shaper returned a shared run")
	}
	if st := s.CacheStats(); st != (lru.Stats{}) {
		t.Errorf("CacheStats() = %+v, want zero", st)
	}
}

func TestReverseRTL(t *testing.T) {
	runs := []dirRun{
		{0, 2, false},
		{2, 4, true},
		{4, 6, true},
		{6, 8, false},
		{8, 9, true},
	}
	reverseRTL(runs)
	want := []int{0, 4, 2, 6, 8}
	for i, r := range runs {
		if r.start != want[i] {
			t.Errorf("runs[%d].start = %d, want %d", i, r.start, want[i])
		}
	}
}

func BenchmarkShape_Uncached(b *testing.B) {
	s, err := NewShaperWithConfig(goregular.TTF, Config{})
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_, _ = s.Shape("The quick brown fox jumps over the lazy dog", 16)
	}
}
