// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termview shows rendered frames in a terminal.
//
// Each terminal cell displays two vertically stacked pixels with the upper
// half block glyph: the foreground color is the top pixel and the background
// color the bottom one. Frames are downsampled to the cell grid with an
// x/image/draw scaler.
package termview

import (
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gridview/surface"
	"golang.org/x/image/draw"
)

// upperHalf is the glyph used for every image cell.
const upperHalf = '▀'

// DefaultScale is the number of surface pixels per half-cell.
const DefaultScale = 8

// Option configures a Presenter.
type Option func(*Presenter)

// WithScaler sets the interpolator used to fit frames to the terminal.
// The default is draw.ApproxBiLinear.
func WithScaler(s draw.Scaler) Option {
	return func(p *Presenter) {
		if s != nil {
			p.scaler = s
		}
	}
}

// WithScale sets how many surface pixels map to one half-cell.
func WithScale(n int) Option {
	return func(p *Presenter) {
		if n > 0 {
			p.scale = n
		}
	}
}

// Presenter paints frames onto a tcell screen. It satisfies gridview.Host.
//
// The bottom row is reserved for a status line when one is set.
type Presenter struct {
	screen tcell.Screen
	scaler draw.Scaler
	scale  int
	status string
	frames int
}

// New returns a presenter drawing to screen. The screen must be initialized.
func New(screen tcell.Screen, opts ...Option) *Presenter {
	p := &Presenter{
		screen: screen,
		scaler: draw.ApproxBiLinear,
		scale:  DefaultScale,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Now returns the wall clock time.
func (p *Presenter) Now() time.Time {
	return time.Now()
}

// SetStatus sets the text shown on the bottom row. An empty string gives
// the row back to the image.
func (p *Presenter) SetStatus(s string) {
	p.status = s
}

// Frames returns the number of frames presented.
func (p *Presenter) Frames() int {
	return p.frames
}

// Cells returns the terminal area available to the image, in cells.
func (p *Presenter) Cells() (cols, rows int) {
	cols, rows = p.screen.Size()
	if p.status != "" {
		rows--
	}
	return max(cols, 0), max(rows, 0)
}

// SurfaceSize returns the surface size, in pixels, that fills the image
// area at the configured scale.
func (p *Presenter) SurfaceSize() (width, height int) {
	cols, rows := p.Cells()
	return cols * p.scale, rows * 2 * p.scale
}

// Present shows the surface contents.
func (p *Presenter) Present(s *surface.Surface) error {
	img, err := s.Snapshot()
	if err != nil {
		return err
	}
	p.Draw(img)
	return nil
}

// Draw fits img into the image area and shows the screen.
func (p *Presenter) Draw(img image.Image) {
	cols, rows := p.Cells()
	if cols > 0 && rows > 0 {
		dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
		p.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				st := tcell.StyleDefault.
					Foreground(rgb(dst.RGBAAt(x, 2*y))).
					Background(rgb(dst.RGBAAt(x, 2*y+1)))
				p.screen.SetContent(x, y, upperHalf, nil, st)
			}
		}
	}
	p.drawStatus()
	p.screen.Show()
	p.frames++
}

func (p *Presenter) drawStatus() {
	if p.status == "" {
		return
	}
	cols, rows := p.screen.Size()
	st := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range p.status {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, rows-1, r, nil, st)
		x++
	}
	for ; x < cols; x++ {
		p.screen.SetContent(x, rows-1, ' ', nil, st)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
