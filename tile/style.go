// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import "github.com/gogpu/gg"

// Style holds the fixed paint parameters used to draw a tile.
type Style struct {
	// Background fills the tile before the grid is drawn.
	// A fully transparent background is not painted.
	Background gg.RGBA

	// Separator is the color of the cell separator lines.
	Separator gg.RGBA

	// SeparatorWidth is the stroke width of separator lines in pixels.
	SeparatorWidth float64

	// Label is the color of the row labels.
	Label gg.RGBA
}

// DefaultStyle returns white labels on slate separators over a transparent
// background.
func DefaultStyle() Style {
	return Style{
		Background:     gg.Transparent,
		Separator:      gg.RGBA{R: 0.19, G: 0.24, B: 0.29, A: 1},
		SeparatorWidth: 1,
		Label:          gg.RGBA{R: 1, G: 1, B: 1, A: 1},
	}
}
