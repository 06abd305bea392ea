// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlas

import (
	"fmt"
	"sort"
	"sync"
)

// ContextID identifies a rendering context (a device or screen).
type ContextID uint64

// Key selects one atlas in a Registry.
type Key struct {
	Context ContextID
	Mode    Mode
}

type registryEntry struct {
	alloc *Allocator
	refs  int
}

// Registry owns the allocators of every (context, mode) pair.
//
// Allocators are created on first Acquire and destroyed when their reference
// count drops to zero or their context is released. The registry is safe for
// concurrent use; the allocators it returns are not.
type Registry struct {
	mu      sync.Mutex
	factory TextureFactory
	config  Config
	entries map[Key]*registryEntry
}

// NewRegistry creates a registry producing textures through factory.
// Zero fields of cfg take their DefaultConfig values.
func NewRegistry(factory TextureFactory, cfg Config) (*Registry, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		factory: factory,
		config:  cfg,
		entries: make(map[Key]*registryEntry),
	}, nil
}

// Acquire returns the allocator for (ctx, mode), creating it if needed, and
// takes a reference on it.
func (r *Registry) Acquire(ctx ContextID, mode Mode) (*Allocator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := Key{Context: ctx, Mode: mode}
	if e, ok := r.entries[key]; ok {
		e.refs++
		return e.alloc, nil
	}

	tex, err := r.factory(r.config.Width, r.config.Height, r.config.Format)
	if err != nil {
		return nil, fmt.Errorf("atlas: create %v texture for context %d: %w", mode, ctx, err)
	}
	alloc := NewAllocator(tex, nil, mode)
	r.entries[key] = &registryEntry{alloc: alloc, refs: 1}

	Logger().Debug("atlas created",
		"context", uint64(ctx),
		"mode", mode,
		"width", tex.Width(),
		"height", tex.Height(),
		"format", tex.Format())
	return alloc, nil
}

// Release drops one reference on (ctx, mode) and destroys the atlas when
// none remain.
func (r *Registry) Release(ctx ContextID, mode Mode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := Key{Context: ctx, Mode: mode}
	e, ok := r.entries[key]
	if !ok {
		return ErrUnknownAtlas
	}
	e.refs--
	if e.refs > 0 {
		return nil
	}
	r.destroyLocked(key, e)
	return nil
}

// ReleaseContext destroys every atlas of ctx regardless of reference counts
// and returns how many were removed.
func (r *Registry) ReleaseContext(ctx ContextID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for key, e := range r.entries {
		if key.Context != ctx {
			continue
		}
		r.destroyLocked(key, e)
		n++
	}
	return n
}

func (r *Registry) destroyLocked(key Key, e *registryEntry) {
	delete(r.entries, key)
	if d, ok := e.alloc.Texture().(Destroyer); ok {
		d.Destroy()
	}
	Logger().Debug("atlas destroyed",
		"context", uint64(key.Context),
		"mode", key.Mode,
		"resets", e.alloc.Resets())
}

// Refs returns the reference count of (ctx, mode), 0 if absent.
func (r *Registry) Refs(ctx ContextID, mode Mode) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[Key{Context: ctx, Mode: mode}]; ok {
		return e.refs
	}
	return 0
}

// Len returns the number of live atlases.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Keys returns the live atlas keys ordered by context, then mode.
func (r *Registry) Keys() []Key {
	r.mu.Lock()
	keys := make([]Key, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Context != keys[j].Context {
			return keys[i].Context < keys[j].Context
		}
		return keys[i].Mode < keys[j].Mode
	})
	return keys
}

// Config returns the atlas configuration used for new textures.
func (r *Registry) Config() Config {
	return r.config
}
