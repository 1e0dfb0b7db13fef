// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a generic least-recently-used cache for values that
// are expensive to produce, such as rasterized tiles.
//
//	c := cache.New[int, *tile.Image](8)
//	img, err := c.GetOrCreate(3, func(index int) (*tile.Image, error) {
//	    return rasterizer.Rasterize(index, width)
//	})
//
// # Ownership
//
// LRU has no internal locking. It is meant to be owned by one render state
// and used from a single goroutine; callers that share one must synchronize
// externally.
package cache
