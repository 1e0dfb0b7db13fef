// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// StrategyDirect paints straight into an offscreen gg.Context.
const StrategyDirect = "direct"

// Direct rasterizes each tile by painting into a fresh offscreen context
// and snapshotting it.
type Direct struct {
	cfg  Config
	face text.Face
}

// NewDirect returns a direct rasterizer for cfg.
func NewDirect(cfg Config) (*Direct, error) {
	face, err := cfg.prepare()
	if err != nil {
		return nil, err
	}
	return &Direct{cfg: cfg, face: face}, nil
}

// Name implements Rasterizer.
func (r *Direct) Name() string {
	return StrategyDirect
}

// Rasterize implements Rasterizer.
func (r *Direct) Rasterize(index, width int) (*Image, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, r.cfg.Grid.TilePixels())
	defer func() { _ = dc.Close() }()

	if err := Paint(newContextCanvas(dc, r.face), r.cfg.Grid, r.cfg.Style, index, width); err != nil {
		return nil, fmt.Errorf("tile: paint tile %d: %w", index, err)
	}
	return snapshot(index, dc)
}
