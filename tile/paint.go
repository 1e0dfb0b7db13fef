// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"strconv"

	"github.com/gogpu/gridview/layout"
)

// Paint draws the content of one tile onto c.
//
// The tile spans [0, width] x [0, TileHeight]. Painting order is fixed:
// background, RowsPerTile+1 horizontal separators, Columns+1 vertical
// separators, then one label per cell holding the row number. The output
// depends only on the arguments.
func Paint(c Canvas, g layout.Grid, s Style, index, width int) error {
	w := float64(width)
	th := g.TileHeight()

	if s.Background.A > 0 {
		if err := c.FillRect(0, 0, w, th, s.Background); err != nil {
			return err
		}
	}

	for k := 0; k <= g.RowsPerTile; k++ {
		y := g.CellHeight * float64(k)
		if err := c.Line(0, y, w, y, s.SeparatorWidth, s.Separator); err != nil {
			return err
		}
	}

	for k := 0; k <= g.Columns; k++ {
		x := g.CellWidth * float64(k)
		if err := c.Line(x, 0, x, th, s.SeparatorWidth, s.Separator); err != nil {
			return err
		}
	}

	start, end := g.Rows(index)
	for row := start; row < end; row++ {
		label := Label(row)
		y := g.CellHeight*float64(row-start) + g.TextInsetY
		for col := 0; col < g.Columns; col++ {
			x := g.CellWidth*float64(col) + g.TextInsetX
			if err := c.Text(label, x, y, s.Label); err != nil {
				return err
			}
		}
	}
	return nil
}

// Label returns the text drawn in every cell of row.
func Label(row int) string {
	return strconv.Itoa(row)
}
