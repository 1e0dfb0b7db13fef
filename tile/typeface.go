// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoFace is returned when a Typeface has no font data.
var ErrNoFace = errors.New("tile: typeface has no font data")

// DefaultFontSize is the label size in points.
const DefaultFontSize = 24.0

// Typeface is the font configuration used for tile labels.
//
// The font data is parsed lazily, exactly once, on the first call to Face.
// A parse failure is remembered and returned by every later call. One
// Typeface may be shared by any number of rasterizers.
type Typeface struct {
	data []byte
	size float64

	once   sync.Once
	source *text.FontSource
	face   text.Face
	upem   uint16
	err    error
}

// NewTypeface returns a typeface for TrueType/OpenType data at size points.
// The data is not parsed until the face is first needed.
func NewTypeface(data []byte, size float64) *Typeface {
	if size <= 0 {
		size = DefaultFontSize
	}
	return &Typeface{data: data, size: size}
}

// DefaultTypeface returns Go Regular at DefaultFontSize.
func DefaultTypeface() *Typeface {
	return NewTypeface(goregular.TTF, DefaultFontSize)
}

// Face returns the parsed font face, loading it on first use.
func (t *Typeface) Face() (text.Face, error) {
	t.once.Do(t.load)
	return t.face, t.err
}

// Size returns the font size in points.
func (t *Typeface) Size() float64 {
	return t.size
}

// UnitsPerEm returns the design units per em of the loaded font,
// or 0 if the font has not been loaded successfully.
func (t *Typeface) UnitsPerEm() uint16 {
	return t.upem
}

// Close releases the parsed font source.
func (t *Typeface) Close() error {
	if t.source == nil {
		return nil
	}
	return t.source.Close()
}

func (t *Typeface) load() {
	if len(t.data) == 0 {
		t.err = ErrNoFace
		return
	}

	// go-text rejects malformed tables that the glyph parser would only
	// trip over later, in the middle of a frame.
	parsed, err := font.ParseTTF(bytes.NewReader(t.data))
	if err != nil {
		t.err = fmt.Errorf("tile: parse typeface: %w", err)
		return
	}

	source, err := text.NewFontSource(t.data)
	if err != nil {
		t.err = fmt.Errorf("tile: load typeface: %w", err)
		return
	}

	t.source = source
	t.face = source.Face(t.size)
	t.upem = parsed.Upem()
}
