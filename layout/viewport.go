// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"iter"
)

// Range is the set of tiles intersecting a viewport, together with the
// vertical placement of the first tile.
//
// Tiles [Start, End) are drawn top to bottom. The first tile is shifted up by
// Offset pixels, so tile i lands at screen y = TileHeight*(i-Start) - Offset.
type Range struct {
	// Start is the index of the first visible tile.
	Start int

	// End is one past the index of the last visible tile.
	End int

	// Offset is the intra-tile scroll offset (scroll mod TileHeight).
	Offset int

	// TileHeight is the tile height in pixels the range was computed for.
	TileHeight int
}

// Visible computes the tiles needed to cover a viewport of the given height
// scrolled to scroll pixels.
//
// The division is floored and the remainder Euclidean, so the result also
// covers the viewport for negative scroll values. A non-positive height
// yields an empty range positioned at the scroll tile.
func (g Grid) Visible(scroll, height int) Range {
	th := g.TilePixels()
	offset := floorMod(scroll, th)
	start := floorDiv(scroll, th)
	count := 0
	if height > 0 {
		count = ceilDiv(height+offset, th)
	}
	return Range{
		Start:      start,
		End:        start + count,
		Offset:     offset,
		TileHeight: th,
	}
}

// MaxVisible returns the largest number of tiles a viewport of the given
// height can intersect at any scroll position.
func (g Grid) MaxVisible(height int) int {
	if height <= 0 {
		return 0
	}
	th := g.TilePixels()
	return ceilDiv(height+th-1, th)
}

// Len returns the number of tiles in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether the tile index is part of the range.
func (r Range) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// Y returns the screen y coordinate at which the tile is drawn.
func (r Range) Y(index int) int {
	return r.TileHeight*(index-r.Start) - r.Offset
}

// All iterates the tiles of the range in ascending index order,
// yielding each index with its screen y coordinate.
func (r Range) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := r.Start; i < r.End; i++ {
			if !yield(i, r.Y(i)) {
				return
			}
		}
	}
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("tiles[%d,%d) offset=%d", r.Start, r.End, r.Offset)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
