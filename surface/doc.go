// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface owns the drawing surface the grid is composited onto.
//
// A Surface wraps a gg.Context sized to the host's drawable area. Tiles are
// blitted into it, the frame is flushed (draining the gg GPU accelerator
// when one is registered), and the host presents the result.
//
// A Manager owns the current surface across resizes. Every resize replaces
// the surface with a new one and reports whether the width changed, since
// cached tiles are only valid for a single width.
//
//	m, err := surface.NewManager(1280, 720)
//	defer m.Close()
//
//	s := m.Current()
//	s.Clear(gg.RGBA{R: 0.094, G: 0.12, B: 0.15, A: 1})
//	s.DrawTile(img.Buf(), 0, -40)
//	_ = s.Flush()
//
// # GPU device sharing
//
// When the host already has a GPU device, pass it with WithDeviceProvider so
// that gg's accelerator renders on the same device instead of creating its
// own. Without a registered accelerator the option has no effect.
package surface
