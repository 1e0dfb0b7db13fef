package gridview

import (
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gridview/layout"
	"github.com/gogpu/gridview/surface"
	"github.com/gogpu/gridview/tile"
)

// Defaults.
const (
	// DefaultCacheMargin multiplies the number of tiles a viewport can show
	// to obtain the automatic tile cache capacity.
	DefaultCacheMargin = 3

	// DefaultBorderWidth is the stroke width of the diagnostic tile border.
	DefaultBorderWidth = 2.0
)

var (
	// DefaultBackground is the color the surface is cleared to every frame.
	DefaultBackground = gg.RGBA{R: 0.094, G: 0.12, B: 0.15, A: 1}

	// DefaultBorderColor is the color of the diagnostic tile border.
	DefaultBorderColor = gg.RGBA{R: 1, G: 0, B: 0, A: 1}
)

// Option configures a State during Init.
//
// Example:
//
//	st, err := gridview.Init(1280, 720,
//	    gridview.WithStrategy(tile.StrategyDirect),
//	    gridview.WithTileBorders(false),
//	)
type Option func(*options)

type options struct {
	grid       layout.Grid
	style      tile.Style
	background gg.RGBA
	strategy   string
	typeface   *tile.Typeface

	cacheLimit    int
	cacheLimitSet bool
	cacheMargin   int

	borders     bool
	borderColor gg.RGBA
	borderWidth float64

	host        Host
	logger      *slog.Logger
	surfaceOpts []surface.Option
}

func defaultOptions() options {
	return options{
		grid:        layout.DefaultGrid(),
		style:       tile.DefaultStyle(),
		background:  DefaultBackground,
		strategy:    tile.StrategyRecording,
		cacheMargin: DefaultCacheMargin,
		borders:     true,
		borderColor: DefaultBorderColor,
		borderWidth: DefaultBorderWidth,
		host:        headless{},
	}
}

// WithGrid sets the grid geometry.
func WithGrid(g layout.Grid) Option {
	return func(o *options) {
		o.grid = g
	}
}

// WithStyle sets the colors and stroke width tiles are painted with.
func WithStyle(s tile.Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithBackground sets the color the surface is cleared to before tiles are
// composited.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithStrategy selects the tile rasterization strategy by registered name.
// The default is tile.StrategyRecording.
func WithStrategy(name string) Option {
	return func(o *options) {
		o.strategy = name
	}
}

// WithTypeface sets the label font. The default is Go Regular at 24pt.
func WithTypeface(t *tile.Typeface) Option {
	return func(o *options) {
		o.typeface = t
	}
}

// WithCacheLimit fixes the tile cache capacity to n tiles.
// n <= 0 makes the cache unbounded.
func WithCacheLimit(n int) Option {
	return func(o *options) {
		o.cacheLimit = n
		o.cacheLimitSet = true
	}
}

// WithCacheMargin sets the multiplier used for the automatic cache
// capacity. Ignored when WithCacheLimit is given.
func WithCacheMargin(m int) Option {
	return func(o *options) {
		if m > 0 {
			o.cacheMargin = m
		}
	}
}

// WithTileBorders toggles the diagnostic red outline around each tile.
func WithTileBorders(on bool) Option {
	return func(o *options) {
		o.borders = on
	}
}

// WithHost sets the host environment. The default uses the wall clock and
// presents nothing.
func WithHost(h Host) Option {
	return func(o *options) {
		if h != nil {
			o.host = h
		}
	}
}

// WithLogger sets a logger for this State only. The default is Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSurfaceOptions passes options to every surface the State creates.
func WithSurfaceOptions(opts ...surface.Option) Option {
	return func(o *options) {
		o.surfaceOpts = append(o.surfaceOpts, opts...)
	}
}

// capacity returns the tile cache capacity for a viewport height.
func (o *options) capacity(height int) int {
	if o.cacheLimitSet {
		return max(o.cacheLimit, 0)
	}
	return max(o.grid.MaxVisible(height), 1) * o.cacheMargin
}
