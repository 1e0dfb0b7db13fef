// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout defines the geometry of the virtual grid and the mapping
// from a scroll position to the tiles that must be drawn.
//
// The grid is split into horizontal tiles of a fixed number of rows. A
// viewport scrolled to pixel s with height h needs tiles
//
//	start = floor(s / TH)
//	end   = start + ceil((h + s mod TH) / TH)
//
// where TH is the tile height. The first tile is drawn at y = -(s mod TH).
//
//	g := layout.DefaultGrid()
//	r := g.Visible(700, 800)
//	for index, y := range r.All() {
//	    // composite tile index at (0, y)
//	}
package layout
