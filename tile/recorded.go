// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"fmt"

	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// StrategyRecording records a display list first and replays it into a
// bitmap afterwards.
const StrategyRecording = "recording"

// Recorded rasterizes each tile in two steps: the paint commands are
// captured into a recording.Recording, then replayed onto an offscreen
// context. The display list can be inspected on its own through Record.
type Recorded struct {
	cfg  Config
	face text.Face
}

// NewRecorded returns a recording rasterizer for cfg.
func NewRecorded(cfg Config) (*Recorded, error) {
	face, err := cfg.prepare()
	if err != nil {
		return nil, err
	}
	return &Recorded{cfg: cfg, face: face}, nil
}

// Name implements Rasterizer.
func (r *Recorded) Name() string {
	return StrategyRecording
}

// Record captures the display list for tile index without rasterizing it.
func (r *Recorded) Record(index, width int) (*recording.Recording, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}

	rec := recording.NewRecorder(width, r.cfg.Grid.TilePixels())
	if err := Paint(newRecorderCanvas(rec, r.face), r.cfg.Grid, r.cfg.Style, index, width); err != nil {
		return nil, fmt.Errorf("tile: record tile %d: %w", index, err)
	}
	return rec.FinishRecording(), nil
}

// Rasterize implements Rasterizer.
func (r *Recorded) Rasterize(index, width int) (*Image, error) {
	list, err := r.Record(index, width)
	if err != nil {
		return nil, err
	}

	b := newReplay(r.face)
	defer b.close()

	if err := list.Playback(b); err != nil {
		return nil, fmt.Errorf("tile: replay tile %d: %w", index, err)
	}
	return snapshot(index, b.ctx)
}
