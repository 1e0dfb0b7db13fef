// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import "iter"

// LRU is a generic least-recently-used cache owned by a single goroutine.
//
// A capacity <= 0 means unbounded: entries are only removed by Delete,
// Clear or a later SetCapacity.
//
// LRU is NOT safe for concurrent use.
type LRU[K comparable, V any] struct {
	entries  map[K]*node[K, V]
	order    recency[K, V]
	capacity int
	onEvict  func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// Option configures an LRU during creation.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictHandler registers a function called for every entry removed to
// respect the capacity. It is not called for Delete or Clear.
func WithEvictHandler[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.onEvict = fn
	}
}

// New creates an LRU holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	c := &LRU[K, V]{
		entries:  make(map[K]*node[K, V]),
		capacity: capacity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(n)
	return n.value, true
}

// Peek returns the value for key without touching recency or statistics.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	n, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Contains reports whether key is cached.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Set stores value under key, replacing any previous value, and evicts the
// least recently used entries if the cache is over capacity.
func (c *LRU[K, V]) Set(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.order.moveToFront(n)
		return
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, or calls create, stores its
// result and returns it. If create fails nothing is stored and the error is
// returned unchanged.
//
// The value returned for a key is the same value on every call until the
// entry is evicted, deleted or cleared.
func (c *LRU[K, V]) GetOrCreate(key K, create func(K) (V, error)) (V, error) {
	if n, ok := c.entries[key]; ok {
		c.hits++
		c.order.moveToFront(n)
		return n.value, nil
	}
	c.misses++

	value, err := create(key)
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(key, value)
	return value, nil
}

// Delete removes key. It reports whether the key was present.
func (c *LRU[K, V]) Delete(key K) bool {
	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.unlink(n)
	delete(c.entries, key)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	clear(c.entries)
	c.order.clear()
}

// SetCapacity changes the capacity, evicting entries if the cache is now
// over the limit.
func (c *LRU[K, V]) SetCapacity(capacity int) {
	c.capacity = capacity
	c.trim()
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return len(c.entries)
}

// Capacity returns the configured capacity (<= 0 means unbounded).
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Keys iterates the cached keys from most to least recently used.
// The cache must not be modified during iteration.
func (c *LRU[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := c.order.head; n != nil; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   hitRate,
		Evictions: c.evictions,
	}
}

// ResetStats sets all counters to zero.
func (c *LRU[K, V]) ResetStats() {
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

func (c *LRU[K, V]) insert(key K, value V) {
	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.order.pushFront(n)
	c.trim()
}

// trim evicts from the tail until the cache fits its capacity.
func (c *LRU[K, V]) trim() {
	if c.capacity <= 0 {
		return
	}
	for c.order.len > c.capacity {
		n := c.order.back()
		c.order.unlink(n)
		delete(c.entries, n.key)
		c.evictions++
		if c.onEvict != nil {
			c.onEvict(n.key, n.value)
		}
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the configured capacity (<= 0 means unbounded).
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
	// Evictions is the number of entries removed to respect the capacity.
	Evictions uint64
}
