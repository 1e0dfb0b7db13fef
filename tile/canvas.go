// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Canvas is the set of paint primitives a tile is drawn with.
// Each call carries its own style so implementations need no shared state.
type Canvas interface {
	// FillRect fills the axis-aligned rectangle (x, y, w, h).
	FillRect(x, y, w, h float64, c gg.RGBA) error

	// Line strokes a straight line from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2, width float64, c gg.RGBA) error

	// Text draws s with its baseline origin at (x, y).
	Text(s string, x, y float64, c gg.RGBA) error
}

// contextCanvas paints directly into a gg.Context.
type contextCanvas struct {
	dc *gg.Context
}

func newContextCanvas(dc *gg.Context, face text.Face) contextCanvas {
	dc.SetFont(face)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinMiter)
	dc.SetMiterLimit(defaultMiterLimit)
	dc.ClearDash()
	return contextCanvas{dc: dc}
}

func (c contextCanvas) FillRect(x, y, w, h float64, col gg.RGBA) error {
	c.dc.SetFillBrush(gg.Solid(col))
	c.dc.DrawRectangle(x, y, w, h)
	return c.dc.Fill()
}

func (c contextCanvas) Line(x1, y1, x2, y2, width float64, col gg.RGBA) error {
	c.dc.SetStrokeBrush(gg.Solid(col))
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	return c.dc.Stroke()
}

func (c contextCanvas) Text(s string, x, y float64, col gg.RGBA) error {
	c.dc.SetColor(col.Color())
	c.dc.DrawString(s, x, y)
	return nil
}

// recorderCanvas appends commands to a display list.
type recorderCanvas struct {
	rec *recording.Recorder
}

func newRecorderCanvas(rec *recording.Recorder, face text.Face) recorderCanvas {
	rec.SetFont(face)
	rec.SetLineCap(recording.LineCapButt)
	rec.SetLineJoin(recording.LineJoinMiter)
	rec.SetMiterLimit(defaultMiterLimit)
	rec.ClearDash()
	return recorderCanvas{rec: rec}
}

func (c recorderCanvas) FillRect(x, y, w, h float64, col gg.RGBA) error {
	c.rec.SetFillStyle(recording.NewSolidBrush(col))
	c.rec.FillRectangle(x, y, w, h)
	return nil
}

func (c recorderCanvas) Line(x1, y1, x2, y2, width float64, col gg.RGBA) error {
	c.rec.SetStrokeStyle(recording.NewSolidBrush(col))
	c.rec.SetLineWidth(width)
	c.rec.DrawLine(x1, y1, x2, y2)
	c.rec.Stroke()
	return nil
}

func (c recorderCanvas) Text(s string, x, y float64, col gg.RGBA) error {
	c.rec.SetFillStyle(recording.NewSolidBrush(col))
	c.rec.DrawString(s, x, y)
	return nil
}

const defaultMiterLimit = 4.0
