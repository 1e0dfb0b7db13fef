// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/gridview/layout"
)

// Errors returned by rasterizers.
var (
	// ErrInvalidWidth is returned when a tile is requested at a width <= 0.
	ErrInvalidWidth = errors.New("tile: invalid tile width")

	// ErrUnknownStrategy is returned by New for an unregistered strategy name.
	ErrUnknownStrategy = errors.New("tile: unknown strategy")
)

// Rasterizer turns a tile index into a bitmap.
//
// Rasterize is a pure function of (index, width) and the Config the
// rasterizer was built with: repeated calls return pixel-identical images.
type Rasterizer interface {
	// Name returns the registered strategy name.
	Name() string

	// Rasterize renders tile index at the given pixel width.
	// The image height is Grid.TilePixels().
	Rasterize(index, width int) (*Image, error)
}

// Config is the fixed input shared by every strategy.
type Config struct {
	Grid     layout.Grid
	Style    Style
	Typeface *Typeface
}

// DefaultConfig returns the default grid, style and typeface.
func DefaultConfig() Config {
	return Config{
		Grid:     layout.DefaultGrid(),
		Style:    DefaultStyle(),
		Typeface: DefaultTypeface(),
	}
}

// prepare validates cfg and loads its font face.
func (cfg *Config) prepare() (text.Face, error) {
	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	if cfg.Typeface == nil {
		cfg.Typeface = DefaultTypeface()
	}
	return cfg.Typeface.Face()
}

func checkWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	return nil
}
