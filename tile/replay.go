// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// replay is a recording.Backend that plays a tile display list back onto
// a gg.Context. Recording.Playback does not carry the font face, so the
// backend holds the face the list was recorded with.
type replay struct {
	ctx  *gg.Context
	face text.Face
}

var _ recording.Backend = (*replay)(nil)

func newReplay(face text.Face) *replay {
	return &replay{face: face}
}

func (b *replay) Begin(width, height int) error {
	b.ctx = gg.NewContext(width, height)
	b.ctx.SetFont(b.face)
	return nil
}

// End drains shapes queued on the GPU accelerator into the pixmap.
func (b *replay) End() error {
	return b.ctx.FlushGPU()
}

func (b *replay) close() {
	if b.ctx != nil {
		_ = b.ctx.Close()
	}
}

func (b *replay) Save() {
	b.ctx.Push()
}

func (b *replay) Restore() {
	b.ctx.Pop()
}

func (b *replay) SetTransform(m recording.Matrix) {
	b.ctx.SetTransform(gg.Matrix{
		A: m.A, B: m.B, C: m.C,
		D: m.D, E: m.E, F: m.F,
	})
}

func (b *replay) SetClip(path *gg.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.setPath(path)
	b.ctx.SetFillRule(convertFillRule(rule))
	b.ctx.Clip()
}

func (b *replay) ClearClip() {
	b.ctx.ResetClip()
}

func (b *replay) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.applyBrush(brush, true)
	b.ctx.SetFillRule(convertFillRule(rule))
	b.setPath(path)
	_ = b.ctx.Fill()
}

func (b *replay) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil {
		return
	}
	b.applyBrush(brush, false)
	b.applyStroke(stroke)
	b.setPath(path)
	_ = b.ctx.Stroke()
}

// FillRect fills rect, which is already in device space.
func (b *replay) FillRect(rect recording.Rect, brush recording.Brush) {
	b.applyBrush(brush, true)
	b.ctx.Identity()
	b.ctx.DrawRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	_ = b.ctx.Fill()
}

// DrawImage blits img unscaled at the destination origin. Tile lists never
// scale images.
func (b *replay) DrawImage(img image.Image, _, dst recording.Rect, _ recording.ImageOptions) {
	if img == nil {
		return
	}
	b.ctx.DrawImage(gg.ImageBufFromImage(img), dst.MinX, dst.MinY)
}

// DrawText draws s with the backend face, ignoring the nil face passed
// by Playback.
func (b *replay) DrawText(s string, x, y float64, face text.Face, brush recording.Brush) {
	if face == nil {
		face = b.face
	}
	b.ctx.SetFont(face)
	b.ctx.Identity()
	b.ctx.SetColor(brushColor(brush).Color())
	b.ctx.DrawString(s, x, y)
}

// setPath replaces the current path with path in device space.
func (b *replay) setPath(path *gg.Path) {
	b.ctx.ClearPath()
	b.ctx.Identity()
	path.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			b.ctx.MoveTo(c[0], c[1])
		case gg.LineTo:
			b.ctx.LineTo(c[0], c[1])
		case gg.QuadTo:
			b.ctx.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			b.ctx.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			b.ctx.ClosePath()
		}
	})
}

// applyBrush sets the fill or stroke brush. Tiles only record solid
// brushes; anything else falls back to black.
func (b *replay) applyBrush(brush recording.Brush, fill bool) {
	p := gg.Solid(brushColor(brush))
	if fill {
		b.ctx.SetFillBrush(p)
	} else {
		b.ctx.SetStrokeBrush(p)
	}
}

func (b *replay) applyStroke(stroke recording.Stroke) {
	b.ctx.SetLineWidth(stroke.Width)
	b.ctx.SetLineCap(convertLineCap(stroke.Cap))
	b.ctx.SetLineJoin(convertLineJoin(stroke.Join))
	b.ctx.SetMiterLimit(stroke.MiterLimit)

	if len(stroke.DashPattern) > 0 {
		b.ctx.SetDash(stroke.DashPattern...)
		b.ctx.SetDashOffset(stroke.DashOffset)
	} else {
		b.ctx.ClearDash()
	}
}

func brushColor(brush recording.Brush) gg.RGBA {
	if sb, ok := brush.(recording.SolidBrush); ok {
		return sb.Color
	}
	return gg.Black
}

func convertFillRule(rule recording.FillRule) gg.FillRule {
	if rule == recording.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func convertLineCap(lineCap recording.LineCap) gg.LineCap {
	switch lineCap {
	case recording.LineCapRound:
		return gg.LineCapRound
	case recording.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func convertLineJoin(join recording.LineJoin) gg.LineJoin {
	switch join {
	case recording.LineJoinRound:
		return gg.LineJoinRound
	case recording.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
