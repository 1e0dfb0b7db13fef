package gridview

import (
	"log/slog"
	"time"

	"github.com/gogpu/gridview/cache"
	"github.com/gogpu/gridview/tile"
)

// TileCache memoizes rasterized tiles by index for a single tile width.
//
// Every entry is valid for the current width; changing the width drops all
// entries. A positive capacity bounds the number of tiles kept, evicting the
// least recently drawn. TileCache is NOT safe for concurrent use.
type TileCache struct {
	raster tile.Rasterizer
	lru    *cache.LRU[int, *tile.Image]
	width  int
	now    func() time.Time
	log    *slog.Logger

	rasterizations uint64
	invalidations  uint64
}

// TileCacheOption configures a TileCache.
type TileCacheOption func(*TileCache)

// WithClock sets the time source used for rasterization timing.
func WithClock(now func() time.Time) TileCacheOption {
	return func(c *TileCache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCacheLogger sets the logger for cache diagnostics.
func WithCacheLogger(l *slog.Logger) TileCacheOption {
	return func(c *TileCache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewTileCache returns an empty cache that rasterizes tiles of the given
// width with r. A capacity <= 0 means unbounded.
func NewTileCache(r tile.Rasterizer, width, capacity int, opts ...TileCacheOption) *TileCache {
	c := &TileCache{
		raster: r,
		width:  width,
		now:    time.Now,
		log:    Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lru = cache.New[int, *tile.Image](capacity, cache.WithEvictHandler(func(index int, _ *tile.Image) {
		c.log.Debug("gridview: tile evicted", "index", index)
	}))
	return c
}

// GetOrCreate returns the cached image for index, rasterizing and storing it
// on a miss. Until the next invalidation every call for the same index
// returns the same *tile.Image. A rasterization error is returned and
// nothing is stored.
func (c *TileCache) GetOrCreate(index int) (*tile.Image, error) {
	return c.lru.GetOrCreate(index, c.rasterize)
}

func (c *TileCache) rasterize(index int) (*tile.Image, error) {
	start := c.now()
	img, err := c.raster.Rasterize(index, c.width)
	if err != nil {
		return nil, err
	}
	c.rasterizations++
	c.log.Debug("gridview: draw tile",
		"index", index,
		"width", c.width,
		"strategy", c.raster.Name(),
		"took", c.now().Sub(start))
	return img, nil
}

// Contains reports whether index is cached, without touching recency.
func (c *TileCache) Contains(index int) bool {
	return c.lru.Contains(index)
}

// InvalidateAll drops every cached tile.
func (c *TileCache) InvalidateAll() {
	n := c.lru.Len()
	c.lru.Clear()
	c.invalidations++
	c.log.Debug("gridview: tile cache invalidated", "dropped", n, "width", c.width)
}

// Width returns the width tiles are rasterized at.
func (c *TileCache) Width() int {
	return c.width
}

// SetWidth changes the tile width. A different width invalidates the cache
// and reports true.
func (c *TileCache) SetWidth(width int) bool {
	if width == c.width {
		return false
	}
	c.width = width
	c.InvalidateAll()
	return true
}

// SetCapacity changes the maximum number of cached tiles, evicting the least
// recently used ones if needed. n <= 0 means unbounded.
func (c *TileCache) SetCapacity(n int) {
	c.lru.SetCapacity(n)
}

// Len returns the number of cached tiles.
func (c *TileCache) Len() int {
	return c.lru.Len()
}

// CacheStats describes tile cache activity.
type CacheStats struct {
	cache.Stats

	// Width is the current tile width.
	Width int

	// Rasterizations counts successful tile rasterizations.
	Rasterizations uint64

	// Invalidations counts InvalidateAll calls.
	Invalidations uint64
}

// Stats returns a snapshot of cache statistics.
func (c *TileCache) Stats() CacheStats {
	return CacheStats{
		Stats:          c.lru.Stats(),
		Width:          c.width,
		Rasterizations: c.rasterizations,
		Invalidations:  c.invalidations,
	}
}
