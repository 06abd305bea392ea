// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package lru provides a small thread-safe LRU cache.
//
//	c := lru.New[string, int](100)
//	c.Set("key", 42)
//	v, ok := c.Get("key")
//
// Entries beyond the capacity are evicted oldest first. Cache is safe for
// concurrent use and must not be copied after creation.
package lru
