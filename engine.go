package gridview

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gridview/layout"
	"github.com/gogpu/gridview/surface"
	"github.com/gogpu/gridview/tile"
)

// FrameStats describes one rendered frame.
type FrameStats struct {
	// Range is the set of tiles composited.
	Range layout.Range

	// Rasterized is the number of tiles drawn from scratch.
	Rasterized int

	// Reused is the number of tiles served from the cache.
	Reused int

	// Elapsed is the frame time measured with the host clock.
	Elapsed time.Duration
}

// State is the render state driven by a host: one surface, one tile cache
// and the current scroll position.
//
// A State is NOT safe for concurrent use. Every method returns
// ErrInvalidState when called on a nil or closed State.
type State struct {
	opts     options
	raster   tile.Rasterizer
	surfaces *surface.Manager
	tiles    *TileCache
	log      *slog.Logger
	scroll   int
	closed   bool
}

// Init creates the surface, the rasterizer and an empty tile cache for a
// viewport of width x height pixels.
func Init(width, height int, opts ...Option) (*State, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	r, err := tile.New(o.strategy, tile.Config{
		Grid:     o.grid,
		Style:    o.style,
		Typeface: o.typeface,
	})
	if err != nil {
		return nil, fmt.Errorf("gridview: init rasterizer: %w", err)
	}

	m, err := surface.NewManager(width, height, o.surfaceOpts...)
	if err != nil {
		return nil, fmt.Errorf("gridview: init surface: %w", err)
	}

	s := &State{
		opts:     o,
		raster:   r,
		surfaces: m,
		log:      log,
	}
	s.tiles = NewTileCache(r, width, o.capacity(height),
		WithClock(o.host.Now),
		WithCacheLogger(log))

	log.Info("gridview: surface created",
		"width", width,
		"height", height,
		"strategy", r.Name(),
		"cache_capacity", s.tiles.Stats().Capacity)
	return s, nil
}

func (s *State) check() error {
	if s == nil || s.closed {
		return ErrInvalidState
	}
	return nil
}

// ResizeSurface replaces the surface with one of the new size.
// Cached tiles are dropped when the width changes, since they are rendered
// at a specific width; a height-only change keeps them.
func (s *State) ResizeSurface(width, height int) error {
	if err := s.check(); err != nil {
		return err
	}

	ch, err := s.surfaces.Resize(width, height)
	if err != nil {
		return fmt.Errorf("gridview: resize surface: %w", err)
	}
	if !ch.Replaced {
		return nil
	}

	s.tiles.SetWidth(width)
	s.tiles.SetCapacity(s.opts.capacity(height))

	s.log.Info("gridview: surface resized",
		"width", width,
		"height", height,
		"width_changed", ch.WidthChanged,
		"generation", s.surfaces.Generation())
	return nil
}

// OnAnimationFrame redraws the whole viewport from the top of the grid.
func (s *State) OnAnimationFrame() error {
	_, err := s.Render(0)
	return err
}

// OnTranslate redraws the viewport scrolled to scroll pixels, reusing
// cached tiles. Scroll positions above the first row are clamped to 0.
func (s *State) OnTranslate(scroll int) error {
	_, err := s.Render(max(scroll, 0))
	return err
}

// Render composites the tiles covering the viewport at scroll, flushes the
// surface and presents it through the host.
//
// Tiles are fetched from the cache in ascending index order before the
// surface is touched, so no tile context is drawn to while the surface has
// shapes queued on a GPU accelerator. The first tile is shifted up by the
// intra-tile offset, so every visible row is covered by exactly one tile.
func (s *State) Render(scroll int) (FrameStats, error) {
	if err := s.check(); err != nil {
		return FrameStats{}, err
	}

	start := s.opts.host.Now()
	sf := s.surfaces.Current()
	rng := s.opts.grid.Visible(scroll, sf.Height())
	before := s.tiles.Stats().Rasterizations

	imgs := make([]*tile.Image, 0, rng.Len())
	for index := range rng.All() {
		img, err := s.tiles.GetOrCreate(index)
		if err != nil {
			return FrameStats{}, fmt.Errorf("gridview: tile %d: %w", index, err)
		}
		imgs = append(imgs, img)
	}

	sf.Clear(s.opts.background)
	for index, y := range rng.All() {
		sf.DrawTile(imgs[index-rng.Start].Buf(), 0, y)

		if s.opts.borders {
			err := sf.StrokeRect(0, float64(y), float64(sf.Width()), float64(rng.TileHeight),
				s.opts.borderWidth, s.opts.borderColor)
			if err != nil {
				return FrameStats{}, fmt.Errorf("gridview: tile %d border: %w", index, err)
			}
		}
	}

	if err := sf.Flush(); err != nil {
		return FrameStats{}, fmt.Errorf("gridview: %w", err)
	}
	if err := s.opts.host.Present(sf); err != nil {
		return FrameStats{}, fmt.Errorf("gridview: present: %w", err)
	}
	s.scroll = scroll

	rasterized := int(s.tiles.Stats().Rasterizations - before)
	stats := FrameStats{
		Range:      rng,
		Rasterized: rasterized,
		Reused:     rng.Len() - rasterized,
		Elapsed:    s.opts.host.Now().Sub(start),
	}
	s.log.Debug("gridview: frame",
		"scroll", scroll,
		"tiles", rng.String(),
		"rasterized", stats.Rasterized,
		"reused", stats.Reused,
		"took", stats.Elapsed)
	return stats, nil
}

// Scroll returns the scroll position of the last rendered frame.
func (s *State) Scroll() int {
	if s == nil {
		return 0
	}
	return s.scroll
}

// Surface returns the current surface, or nil for an invalid State.
func (s *State) Surface() *surface.Surface {
	if s.check() != nil {
		return nil
	}
	return s.surfaces.Current()
}

// Tiles returns the tile cache, or nil for an invalid State.
func (s *State) Tiles() *TileCache {
	if s.check() != nil {
		return nil
	}
	return s.tiles
}

// Strategy returns the name of the rasterization strategy in use.
func (s *State) Strategy() string {
	if s == nil {
		return ""
	}
	return s.raster.Name()
}

// Grid returns the grid geometry.
func (s *State) Grid() layout.Grid {
	if s == nil {
		return layout.Grid{}
	}
	return s.opts.grid
}

// Close releases the surface and drops the tile cache.
// Close on a nil or closed State returns ErrInvalidState.
func (s *State) Close() error {
	if err := s.check(); err != nil {
		return err
	}
	s.closed = true
	s.tiles.InvalidateAll()
	return s.surfaces.Close()
}
