// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphatlas

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/cache"
	"github.com/gogpu/glyphatlas/quad"
)

// ContextID identifies a rendering context in an atlas registry.
type ContextID = atlas.ContextID

// FlushFunc receives the buffered vertices of one atlas mode. The slice is
// reused after the call returns.
type FlushFunc func(mode atlas.Mode, vertices []quad.Vertex)

// ContextOptions configure a Context.
type ContextOptions struct {
	// ID selects the registry key. Zero assigns a fresh ID.
	ID ContextID

	// Flush draws buffered quads. It is called by Flush, by Close and before
	// an atlas the context draws from is reset. Nil discards the quads.
	Flush FlushFunc

	// LCDTarget is the surface LCD text is composited onto.
	LCDTarget gpucontext.Texture

	// BatchSize is the initial quad capacity of each batch.
	BatchSize int

	// Cache configures caches created by NewCache. Nil selects
	// cache.DefaultConfig.
	Cache *cache.Config
}

// DefaultBatchSize is the initial quad capacity used when
// ContextOptions.BatchSize is zero.
const DefaultBatchSize = 256

var nextContextID atomic.Uint64

// Context draws text for one rendering context. It owns one atlas per mode
// in the registry and one vertex batch per atlas.
//
// A Context is not safe for concurrent use.
type Context struct {
	id     ContextID
	reg    *atlas.Registry
	opts   ContextOptions
	closed bool

	cacheCfg cache.Config

	batches map[atlas.Mode]*quad.Batch
	caches  []*cache.Cache
}

// NewContext creates a context drawing from atlases in reg.
func NewContext(reg *atlas.Registry, opts ContextOptions) (*Context, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if opts.ID == 0 {
		opts.ID = ContextID(nextContextID.Add(1))
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	cacheCfg := cache.DefaultConfig()
	if opts.Cache != nil {
		cacheCfg = *opts.Cache
	}
	return &Context{
		id:       opts.ID,
		reg:      reg,
		opts:     opts,
		cacheCfg: cacheCfg,
		batches:  make(map[atlas.Mode]*quad.Batch),
	}, nil
}

// ID returns the registry key of the context.
func (c *Context) ID() ContextID { return c.id }

// NewCache creates a glyph cache for strike backed by the context's atlas
// for the strike's mode. Caches of the same mode share that atlas.
func (c *Context) NewCache(strike cache.Strike) (*cache.Cache, error) {
	if c.closed {
		return nil, ErrContextClosed
	}
	if strike == nil {
		return nil, ErrNilStrike
	}
	mode := strike.Mode()
	alloc, err := c.reg.Acquire(c.id, mode)
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: acquire %v atlas: %w", mode, err)
	}
	// Quads already batched reference the old layout; draw them first.
	alloc.SetFlushHook(func() { c.flushMode(mode) })

	gc := cache.New(alloc, strike, c.cacheCfg)
	c.caches = append(c.caches, gc)
	return gc, nil
}

// Batch returns the vertex batch for mode, creating it on first use.
func (c *Context) Batch(mode atlas.Mode) *quad.Batch {
	b, ok := c.batches[mode]
	if !ok {
		b = quad.NewBatch(c.opts.BatchSize)
		c.batches[mode] = b
	}
	return b
}

// DrawText batches the glyphs of gl through gc with the run origin at (x, y).
func (c *Context) DrawText(gc *cache.Cache, gl quad.GlyphList, x, y float64, opts quad.Options) (quad.Stats, error) {
	if c.closed {
		return quad.Stats{}, ErrContextClosed
	}
	return c.Renderer(gc).Draw(gl, x, y, opts), nil
}

// Renderer returns a quad renderer drawing gc's glyphs into the context's
// batch for gc's mode.
func (c *Context) Renderer(gc *cache.Cache) *quad.Renderer {
	return &quad.Renderer{
		Cache:     gc,
		Sink:      c.Batch(gc.Strike().Mode()),
		LCDTarget: c.opts.LCDTarget,
	}
}

// Flush draws every batched quad.
func (c *Context) Flush() {
	for _, mode := range []atlas.Mode{atlas.ModeGrey, atlas.ModeLCD} {
		c.flushMode(mode)
	}
}

func (c *Context) flushMode(mode atlas.Mode) {
	b, ok := c.batches[mode]
	if !ok {
		return
	}
	b.Flush(func(vs []quad.Vertex) {
		if c.opts.Flush != nil {
			c.opts.Flush(mode, vs)
		}
	})
}

// Caches returns the caches created by NewCache.
func (c *Context) Caches() []*cache.Cache { return c.caches }

// Close flushes pending quads and releases the context's atlases. Caches
// created by the context must not be used afterwards. Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.Flush()
	c.closed = true
	for _, gc := range c.caches {
		gc.Allocator().SetFlushHook(nil)
		gc.Clear()
	}
	n := c.reg.ReleaseContext(c.id)
	Logger().Debug("context closed", "id", uint64(c.id), "atlases", n)
	c.caches = nil
	return nil
}
