// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Image is the rasterized bitmap of one tile.
//
// An Image is immutable once returned by a Rasterizer. Pixels are stored
// with straight (non-premultiplied) alpha, which is what gg.ImageBuf
// expects. The buffer is shared with whoever holds the Image; callers must
// not write to Buf.
type Image struct {
	index  int
	width  int
	height int
	buf    *gg.ImageBuf
}

// newImage snapshots src into a new tile image.
//
// gg hands out its pixmap as a premultiplied *image.RGBA, while ImageBuf
// copies those bytes verbatim as straight RGBA. Converting through NRGBA
// keeps translucent pixels from being attenuated twice when composited.
func newImage(index int, src image.Image) *Image {
	b := src.Bounds()
	straight := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(straight, straight.Bounds(), src, b.Min, draw.Src)
	return &Image{
		index:  index,
		width:  b.Dx(),
		height: b.Dy(),
		buf:    gg.ImageBufFromImage(straight),
	}
}

// Index returns the tile index the image was rendered for.
func (m *Image) Index() int {
	return m.index
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.height
}

// Buf returns the pixel buffer, for compositing with gg.Context.DrawImage.
func (m *Image) Buf() *gg.ImageBuf {
	return m.buf
}

// RGBAAt returns the color of the pixel at (x, y).
// Coordinates outside the image yield transparent black.
func (m *Image) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return color.RGBA{}
	}
	r, g, b, a := m.buf.GetRGBA(x, y)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Equal reports whether two images have the same size and identical pixels.
func (m *Image) Equal(o *Image) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil {
		return false
	}
	if m.width != o.width || m.height != o.height {
		return false
	}
	return bytes.Equal(m.buf.Data(), o.buf.Data())
}

// snapshot flushes shapes still queued on the GPU accelerator into dc and
// copies the result. Without the flush an accelerated context would hand
// out a partially drawn pixmap.
func snapshot(index int, dc *gg.Context) (*Image, error) {
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("tile: flush tile %d: %w", index, err)
	}
	return newImage(index, dc.Image()), nil
}
