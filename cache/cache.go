// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"errors"

	"github.com/gogpu/glyphatlas/atlas"
)

// Config holds glyph cache configuration.
type Config struct {
	// Border is the blank padding in texels on every side of a glyph,
	// preventing neighbours from bleeding in under linear filtering.
	// Default: 1
	Border int
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{Border: 1}
}

// Stats holds cache statistics.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Resets   uint64 // times the cache was emptied by an atlas reset
	Failures uint64 // glyphs dropped because they could not be placed or uploaded
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache holds the placements of one strike in one shared atlas.
type Cache struct {
	alloc  *atlas.Allocator
	strike Strike
	border int

	segments map[segmentKey]*segment
	count    int
	epoch    uint64

	stats Stats
}

// New creates a cache that rasterizes with strike and stores into alloc.
// A negative border selects the default.
func New(alloc *atlas.Allocator, strike Strike, cfg Config) *Cache {
	if cfg.Border < 0 {
		cfg.Border = DefaultConfig().Border
	}
	return &Cache{
		alloc:    alloc,
		strike:   strike,
		border:   cfg.Border,
		segments: make(map[segmentKey]*segment),
		epoch:    alloc.Epoch(),
	}
}

// Lookup returns the placement of code at the given fractional x offset,
// rasterizing and uploading it on a miss. The phase is ignored unless the
// strike positions glyphs at subpixel offsets. A nil result means there is
// nothing to draw and no advance to apply: the glyph does not exist or could
// not be placed.
func (c *Cache) Lookup(code GlyphCode, phase float64) *Placement {
	c.syncEpoch()

	key := Key{Code: code}
	if c.strike.SubPixel() {
		key.Phase = QuantizePhase(phase)
	}
	if p := c.get(key); p != nil {
		c.stats.Hits++
		return p
	}
	c.stats.Misses++
	return c.fill(key)
}

// Peek returns the cached placement for key without rasterizing.
func (c *Cache) Peek(key Key) *Placement {
	c.syncEpoch()
	return c.get(key)
}

func (c *Cache) get(key Key) *Placement {
	sk, slot := key.segment()
	seg := c.segments[sk]
	if seg == nil {
		return nil
	}
	return seg[slot]
}

func (c *Cache) put(key Key, p *Placement) {
	sk, slot := key.segment()
	seg := c.segments[sk]
	if seg == nil {
		seg = new(segment)
		c.segments[sk] = seg
	}
	if seg[slot] == nil {
		c.count++
	}
	seg[slot] = p
}

// fill rasterizes key, places it in the atlas and caches the result.
func (c *Cache) fill(key Key) *Placement {
	m, ok := c.strike.Rasterize(key.Code, key.Phase.Offset(), 0)
	if !ok || m == nil {
		return nil
	}

	p := &Placement{
		OriginX:  m.OriginX,
		OriginY:  m.OriginY,
		Border:   c.border,
		XAdvance: m.XAdvance,
		YAdvance: m.YAdvance,
	}
	if m.Empty() {
		c.put(key, p)
		return p
	}

	w, h := m.Width+2*c.border, m.Height+2*c.border
	r, ok := c.alloc.Reserve(w, h)
	if !ok {
		var err error
		r, err = c.alloc.ResetAndRetry(w, h)
		// A reset wipes this cache too; drop the stale entries before
		// storing the new one.
		c.syncEpoch()
		if err != nil {
			c.fail(key, "glyph does not fit atlas", err)
			return nil
		}
	}

	if err := c.alloc.Upload(r, m, c.border); err != nil {
		c.fail(key, "glyph upload failed", err)
		return nil
	}

	p.Rect = &r
	c.put(key, p)
	return p
}

func (c *Cache) fail(key Key, msg string, err error) {
	c.stats.Failures++
	attrs := []any{
		"code", uint32(key.Code),
		"phase", key.Phase,
		"mode", c.alloc.Mode(),
		"err", err,
	}
	var tl *atlas.TooLargeError
	if errors.As(err, &tl) {
		attrs = append(attrs, "width", tl.Width, "height", tl.Height)
	}
	Logger().Warn(msg, attrs...)
}

// syncEpoch clears the cache if the atlas was reset since it was filled.
func (c *Cache) syncEpoch() {
	if e := c.alloc.Epoch(); e != c.epoch {
		c.epoch = e
		if c.count > 0 {
			c.Clear()
		}
		c.stats.Resets++
	}
}

// Clear drops every cached placement.
func (c *Cache) Clear() {
	clear(c.segments)
	c.count = 0
}

// Len returns the number of cached placements, whitespace included.
func (c *Cache) Len() int {
	return c.count
}

// Segments returns the number of materialized segments.
func (c *Cache) Segments() int {
	return len(c.segments)
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	return c.stats
}

// ResetStats zeroes the statistics.
func (c *Cache) ResetStats() {
	c.stats = Stats{}
}

// Allocator returns the shared atlas allocator.
func (c *Cache) Allocator() *atlas.Allocator { return c.alloc }

// Strike returns the strike the cache rasterizes with.
func (c *Cache) Strike() Strike { return c.strike }

// Border returns the padding around each glyph in texels.
func (c *Cache) Border() int { return c.border }
