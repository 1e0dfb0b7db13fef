// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tile rasterizes grid tiles into bitmaps.
//
// A tile is a horizontal band of Grid.RowsPerTile rows. Its content is
// drawn by Paint against a Canvas, in a fixed order: optional background,
// horizontal separators, vertical separators, then one row label per cell.
//
// Two strategies are registered:
//
//	direct     paints straight into an offscreen gg.Context
//	recording  captures a recording.Recording, then plays it back
//
// Both produce images of Grid.TilePixels() rows and are deterministic for
// a given (index, width). Strategies are looked up by name:
//
//	r, err := tile.New(tile.StrategyRecording, tile.DefaultConfig())
//	img, err := r.Rasterize(3, 1280)
package tile
