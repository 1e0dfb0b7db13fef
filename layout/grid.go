// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned by Grid.Validate for non-positive geometry.
var ErrInvalidGrid = errors.New("layout: invalid grid geometry")

// Default grid geometry.
const (
	// DefaultCellWidth is the width of one cell in pixels.
	DefaultCellWidth = 320.0

	// DefaultCellHeight is the height of one cell (one row) in pixels.
	DefaultCellHeight = 64.0

	// DefaultColumns is the number of columns of the grid.
	DefaultColumns = 7

	// DefaultRowsPerTile is the number of rows rendered into one tile.
	DefaultRowsPerTile = 10

	// DefaultTextInsetX is the horizontal offset of a label from the cell's left edge.
	DefaultTextInsetX = 20.0

	// DefaultTextInsetY is the baseline offset of a label from the cell's top edge.
	DefaultTextInsetY = 40.0
)

// Grid describes the fixed geometry of the infinite cell grid and its
// partition into tiles. A Grid is a value type and is never mutated after
// construction.
//
// The grid has a fixed number of columns and an unbounded number of rows.
// Rows are grouped into tiles of RowsPerTile consecutive rows; tile i covers
// rows [i*RowsPerTile, i*RowsPerTile+RowsPerTile).
type Grid struct {
	// CellWidth is the width of a cell in pixels.
	CellWidth float64

	// CellHeight is the height of a cell in pixels.
	CellHeight float64

	// Columns is the number of columns.
	Columns int

	// RowsPerTile is the number of rows per tile.
	RowsPerTile int

	// TextInsetX and TextInsetY position a cell label relative to the
	// cell's top-left corner. TextInsetY is the baseline.
	TextInsetX float64
	TextInsetY float64
}

// DefaultGrid returns the 7-column, 320x64 grid with 10 rows per tile.
func DefaultGrid() Grid {
	return Grid{
		CellWidth:   DefaultCellWidth,
		CellHeight:  DefaultCellHeight,
		Columns:     DefaultColumns,
		RowsPerTile: DefaultRowsPerTile,
		TextInsetX:  DefaultTextInsetX,
		TextInsetY:  DefaultTextInsetY,
	}
}

// Validate reports whether the geometry can be tiled.
// Tile heights must be whole pixels so that tiles stack without seams.
func (g Grid) Validate() error {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %gx%g", ErrInvalidGrid, g.CellWidth, g.CellHeight)
	}
	if g.Columns <= 0 {
		return fmt.Errorf("%w: columns=%d", ErrInvalidGrid, g.Columns)
	}
	if g.RowsPerTile <= 0 {
		return fmt.Errorf("%w: rows per tile=%d", ErrInvalidGrid, g.RowsPerTile)
	}
	if th := g.TileHeight(); th != math.Trunc(th) {
		return fmt.Errorf("%w: tile height %g is not a whole number of pixels", ErrInvalidGrid, th)
	}
	return nil
}

// TileHeight returns the height of one tile in pixels (CellHeight * RowsPerTile).
func (g Grid) TileHeight() float64 {
	return g.CellHeight * float64(g.RowsPerTile)
}

// TilePixels returns the tile height as an integer pixel count.
func (g Grid) TilePixels() int {
	return int(g.TileHeight())
}

// ContentWidth returns the total width spanned by all columns.
func (g Grid) ContentWidth() float64 {
	return g.CellWidth * float64(g.Columns)
}

// Rows returns the half-open row range [start, end) covered by the tile.
func (g Grid) Rows(index int) (start, end int) {
	start = index * g.RowsPerTile
	return start, start + g.RowsPerTile
}

// TileOf returns the index of the tile containing row.
func (g Grid) TileOf(row int) int {
	return floorDiv(row, g.RowsPerTile)
}
