// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a rasterizer for a configuration.
type Factory func(Config) (Rasterizer, error)

var (
	registryMu sync.RWMutex
	strategies = make(map[string]Factory)
)

func init() {
	Register(StrategyDirect, func(cfg Config) (Rasterizer, error) {
		return NewDirect(cfg)
	})
	Register(StrategyRecording, func(cfg Config) (Rasterizer, error) {
		return NewRecorded(cfg)
	})
}

// Register makes a rasterization strategy available under name.
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("tile: Register factory is nil")
	}
	if _, dup := strategies[name]; dup {
		panic("tile: Register called twice for " + name)
	}
	strategies[name] = factory
}

// Unregister removes a strategy. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(strategies, name)
}

// New builds the rasterizer registered under name.
func New(name string, cfg Config) (Rasterizer, error) {
	registryMu.RLock()
	factory, ok := strategies[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return factory(cfg)
}

// Strategies returns the registered strategy names in sorted order.
func Strategies() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a strategy is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := strategies[name]
	return ok
}
