// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/glyphatlas/internal/lru"
	"github.com/gogpu/glyphatlas/quad"
)

// Errors returned by the shaper.
var (
	ErrEmptyFont   = errors.New("shape: empty font data")
	ErrInvalidSize = errors.New("shape: size must be positive and finite")
)

// Config configures a Shaper.
type Config struct {
	// CacheSize is the number of shaped runs kept. Zero disables caching.
	CacheSize int

	// Language is the BCP 47 tag passed to the shaper.
	Language string
}

// DefaultConfig returns the default shaper configuration.
func DefaultConfig() Config {
	return Config{
		CacheSize: 256,
		Language:  "en",
	}
}

type runKey struct {
	text string
	size float64
}

// Shaper shapes text with a single font. It is safe for concurrent use.
//
// The parsed font.Font is shared; a font.Face is created per call because
// faces carry mutable caches. HarfbuzzShaper instances are pooled for the
// same reason.
type Shaper struct {
	font *font.Font
	lang language.Language
	pool sync.Pool
	runs *lru.Cache[runKey, *quad.Run]
}

// NewShaper parses an OpenType/TrueType font with the default configuration.
func NewShaper(fontData []byte) (*Shaper, error) {
	return NewShaperWithConfig(fontData, DefaultConfig())
}

// NewShaperWithConfig parses a font and creates a shaper with cfg.
// An empty Language falls back to "en".
func NewShaperWithConfig(fontData []byte, cfg Config) (*Shaper, error) {
	if len(fontData) == 0 {
		return nil, ErrEmptyFont
	}
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("shape: parse font: %w", err)
	}
	if cfg.Language == "" {
		cfg.Language = DefaultConfig().Language
	}

	s := &Shaper{
		font: face.Font,
		lang: language.NewLanguage(cfg.Language),
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	if cfg.CacheSize > 0 {
		s.runs = lru.New[runKey, *quad.Run](cfg.CacheSize)
	}
	return s, nil
}

// Shape lays out text at size pixels per em. The run starts at pen position
// zero; glyph offsets are rune indices into text.
func (s *Shaper) Shape(text string, size float64) (*quad.Run, error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return nil, ErrInvalidSize
	}
	if text == "" {
		return &quad.Run{}, nil
	}
	if s.runs == nil {
		return s.shape(text, size), nil
	}
	key := runKey{text: text, size: size}
	return s.runs.GetOrCreate(key, func() *quad.Run { return s.shape(text, size) }), nil
}

// CacheStats reports shaped-run cache statistics.
func (s *Shaper) CacheStats() lru.Stats {
	if s.runs == nil {
		return lru.Stats{}
	}
	return s.runs.Stats()
}

// ClearCache drops all memoized runs.
func (s *Shaper) ClearCache() {
	if s.runs != nil {
		s.runs.Clear()
	}
}

func (s *Shaper) shape(text string, size float64) *quad.Run {
	runes := []rune(text)
	face := font.NewFace(s.font)
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	out := &quad.Run{Glyphs: make([]quad.Glyph, 0, len(runes))}
	pen := 0.0
	for _, r := range visualRuns(text, len(runes)) {
		dir := di.DirectionLTR
		if r.rtl {
			dir = di.DirectionRTL
		}
		res := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: dir,
			Face:      face,
			Size:      fixed.Int26_6(math.Round(size * 64)),
			Script:    detectScript(runes[r.start:r.end]),
			Language:  s.lang,
		})
		// Output glyphs are already in visual order for both directions.
		for _, g := range res.Glyphs {
			out.Append(
				cache.GlyphCode(g.GlyphID),
				pen+fixedToFloat(g.XOffset),
				-fixedToFloat(g.YOffset), // go-text offsets are Y-up
				g.TextIndex(),
			)
			pen += fixedToFloat(g.Advance)
		}
	}
	out.Advance = pen
	return out
}

// dirRun is a directional run over rune indices [start, end).
type dirRun struct {
	start, end int
	rtl        bool
}

// visualRuns splits text into directional runs in visual order for a
// left-to-right paragraph. If bidi analysis fails the whole text is one
// left-to-right run.
func visualRuns(text string, n int) []dirRun {
	whole := []dirRun{{start: 0, end: n}}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ord, err := p.Order()
	if err != nil || ord.NumRuns() == 0 {
		return whole
	}

	runs := make([]dirRun, 0, ord.NumRuns())
	for i := 0; i < ord.NumRuns(); i++ {
		r := ord.Run(i)
		start, last := r.Pos()
		if start < 0 || last >= n || last < start {
			return whole
		}
		runs = append(runs, dirRun{
			start: start,
			end:   last + 1,
			rtl:   r.Direction() == bidi.RightToLeft,
		})
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].start < runs[j].start })
	reverseRTL(runs)
	return runs
}

// reverseRTL reverses every maximal sequence of adjacent right-to-left runs,
// which is the visual reordering for a left-to-right base level.
func reverseRTL(runs []dirRun) {
	for i := 0; i < len(runs); {
		if !runs[i].rtl {
			i++
			continue
		}
		j := i
		for j < len(runs) && runs[j].rtl {
			j++
		}
		for a, b := i, j-1; a < b; a, b = a+1, b-1 {
			runs[a], runs[b] = runs[b], runs[a]
		}
		i = j
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
