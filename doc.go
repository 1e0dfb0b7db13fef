// Package gridview renders an infinite, vertically scrolling grid of cells
// through a tile cache.
//
// # Overview
//
// The grid has a fixed number of columns and unbounded rows. Rows are
// grouped into tiles of layout.Grid.RowsPerTile rows. A tile is rasterized
// once into a bitmap, cached by index, and composited onto the surface at
// whatever vertical offset the current scroll position requires. Scrolling
// within already-seen tiles never repaints grid content.
//
// # Quick Start
//
//	st, err := gridview.Init(1280, 720)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//
//	_ = st.OnAnimationFrame()  // draw from the top
//	_ = st.OnTranslate(700)    // scroll; tiles 1 and 2 are rasterized
//	_ = st.OnTranslate(710)    // same tiles, only repositioned
//	_ = st.Surface().SavePNG("grid.png")
//
// # Host
//
// A State never talks to a display or the wall clock directly. It calls a
// Host, set with WithHost, to timestamp work and present finished frames.
// The default host presents nothing, which suits headless export and tests.
//
// # Architecture
//
//   - layout: grid geometry and visible tile ranges
//   - tile: tile painting and the direct and recording rasterizers
//   - cache: generic LRU backing the tile cache
//   - surface: the gg-backed drawing surface and its resize lifecycle
//
// # Logging
//
// Nothing is logged by default. Install a logger with SetLogger (shared with
// gg) or per State with WithLogger.
package gridview
