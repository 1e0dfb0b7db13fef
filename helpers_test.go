package gridview

import (
	"image"
	"testing"
	"time"

	"github.com/gogpu/gridview/layout"
	"github.com/gogpu/gridview/surface"
	"github.com/gogpu/gridview/tile"
	"golang.org/x/image/font/gofont/goregular"
)

// smallGrid keeps tiles cheap: 3 columns of 40x16 cells, 4 rows per tile.
func smallGrid() layout.Grid {
	return layout.Grid{
		CellWidth:   40,
		CellHeight:  16,
		Columns:     3,
		RowsPerTile: 4,
		TextInsetX:  2,
		TextInsetY:  12,
	}
}

func smallConfig(t *testing.T) tile.Config {
	t.Helper()
	tf := tile.NewTypeface(goregular.TTF, 10)
	t.Cleanup(func() { _ = tf.Close() })
	return tile.Config{
		Grid:     smallGrid(),
		Style:    tile.DefaultStyle(),
		Typeface: tf,
	}
}

// countingRasterizer records every call and can be told to fail.
type countingRasterizer struct {
	tile.Rasterizer
	calls  []int
	widths []int
	fail   map[int]error
}

func (r *countingRasterizer) Rasterize(index, width int) (*tile.Image, error) {
	r.calls = append(r.calls, index)
	r.widths = append(r.widths, width)
	if err := r.fail[index]; err != nil {
		return nil, err
	}
	return r.Rasterizer.Rasterize(index, width)
}

func (r *countingRasterizer) reset() {
	r.calls = nil
	r.widths = nil
}

func newCounting(t *testing.T, cfg tile.Config) *countingRasterizer {
	t.Helper()
	r, err := tile.NewDirect(cfg)
	if err != nil {
		t.Fatalf("NewDirect: %v", err)
	}
	return &countingRasterizer{Rasterizer: r, fail: make(map[int]error)}
}

// registerCounting registers a strategy that hands out a counting wrapper
// around the direct rasterizer.
func registerCounting(t *testing.T) (string, *countingRasterizer) {
	t.Helper()
	name := "counting/" + t.Name()
	cr := &countingRasterizer{fail: make(map[int]error)}
	tile.Register(name, func(cfg tile.Config) (tile.Rasterizer, error) {
		r, err := tile.NewDirect(cfg)
		if err != nil {
			return nil, err
		}
		cr.Rasterizer = r
		return cr, nil
	})
	t.Cleanup(func() { tile.Unregister(name) })
	return name, cr
}

// fakeHost advances its clock by step on every read and keeps the last
// presented frame.
type fakeHost struct {
	now       time.Time
	step      time.Duration
	presented int
	last      *image.RGBA
	err       error
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		now:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		step: time.Millisecond,
	}
}

func (h *fakeHost) Now() time.Time {
	h.now = h.now.Add(h.step)
	return h.now
}

func (h *fakeHost) Present(s *surface.Surface) error {
	h.presented++
	img, err := s.Snapshot()
	if err != nil {
		return err
	}
	h.last = img
	return h.err
}

func newState(t *testing.T, width, height int, opts ...Option) *State {
	t.Helper()
	st, err := Init(width, height, opts...)
	if err != nil {
		t.Fatalf("Init(%d, %d): %v", width, height, err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}
