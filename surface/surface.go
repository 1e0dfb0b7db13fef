// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// Errors returned by surfaces.
var (
	// ErrInvalidDimensions is returned for a width or height <= 0.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrClosed is returned when a closed surface or manager is used.
	ErrClosed = errors.New("surface: closed")
)

// Option configures surface creation.
type Option func(*options)

type options struct {
	provider gpucontext.DeviceProvider
}

// WithDeviceProvider shares the host's GPU device with gg's accelerator.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// Surface is a CPU pixel buffer with an optional GPU accelerator behind it.
//
// Surfaces are NOT safe for concurrent use.
type Surface struct {
	dc     *gg.Context
	closed bool
}

// New creates a surface of the given size in pixels.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.provider != nil {
		if err := gg.SetAcceleratorDeviceProvider(o.provider); err != nil {
			return nil, fmt.Errorf("surface: share GPU device: %w", err)
		}
	}

	return &Surface{dc: gg.NewContext(width, height)}, nil
}

// Context returns the gg context backing the surface.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.dc.Width()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.dc.Height()
}

// Clear replaces every pixel with c.
func (s *Surface) Clear(c gg.RGBA) {
	if s.closed {
		return
	}
	s.dc.ClearWithColor(c)
}

// DrawTile composites buf with its top-left corner at (x, y).
// Parts outside the surface are clipped; y may be negative.
func (s *Surface) DrawTile(buf *gg.ImageBuf, x, y int) {
	if s.closed || buf == nil {
		return
	}
	s.dc.DrawImage(buf, float64(x), float64(y))
}

// StrokeRect outlines the rectangle (x, y, w, h).
func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c gg.RGBA) error {
	if s.closed {
		return ErrClosed
	}
	s.dc.SetStrokeBrush(gg.Solid(c))
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawRectangle(x, y, w, h)
	return s.dc.Stroke()
}

// Flush makes all pending drawing visible in the pixel buffer.
func (s *Surface) Flush() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.dc.FlushGPU(); err != nil {
		return fmt.Errorf("surface: flush: %w", err)
	}
	return nil
}

// Snapshot flushes pending drawing and returns the surface pixels.
func (s *Surface) Snapshot() (*image.RGBA, error) {
	if err := s.Flush(); err != nil {
		return nil, err
	}
	img, ok := s.dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("surface: unexpected pixmap type %T", s.dc.Image())
	}
	return img, nil
}

// EncodePNG writes the surface as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.Flush(); err != nil {
		return err
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface as PNG to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.Flush(); err != nil {
		return err
	}
	return s.dc.SavePNG(path)
}

// Close releases the surface. Close is idempotent.
func (s *Surface) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}
