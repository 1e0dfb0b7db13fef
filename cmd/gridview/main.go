// Command gridview renders the tiled grid, either to a PNG file or
// interactively in the terminal.
//
// Headless export:
//
//	gridview -width 1280 -height 720 -scroll 700 -output grid.png
//
// Interactive viewer (mouse wheel, arrows, PgUp/PgDn, Home; q to quit):
//
//	gridview -interactive
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/tile"
)

func main() {
	var (
		width       = flag.Int("width", 1280, "surface width in pixels (headless)")
		height      = flag.Int("height", 720, "surface height in pixels (headless)")
		scroll      = flag.Int("scroll", 0, "initial scroll offset in pixels")
		strategy    = flag.String("strategy", tile.StrategyRecording, "tile rasterization strategy")
		output      = flag.String("output", "grid.png", "output file (headless)")
		interactive = flag.Bool("interactive", false, "run the terminal viewer")
		scale       = flag.Int("scale", 8, "surface pixels per half-cell (interactive)")
		borders     = flag.Bool("borders", true, "outline each tile")
		cacheLimit  = flag.Int("cache-limit", 0, "tile cache capacity; 0 sizes it from the viewport, <0 is unbounded")
		verbose     = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		gridview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []gridview.Option{
		gridview.WithStrategy(*strategy),
		gridview.WithTileBorders(*borders),
	}
	if *cacheLimit != 0 {
		opts = append(opts, gridview.WithCacheLimit(*cacheLimit))
	}

	var err error
	if *interactive {
		err = runTerminal(*scroll, *scale, opts)
	} else {
		err = export(*width, *height, *scroll, *output, opts)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func export(width, height, scroll int, output string, opts []gridview.Option) error {
	st, err := gridview.Init(width, height, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	stats, err := st.Render(max(scroll, 0))
	if err != nil {
		return err
	}
	if err := st.Surface().SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	log.Printf("Grid saved to %s (%dx%d, %s, %d tiles in %v)\n",
		output, width, height, stats.Range, stats.Rasterized, stats.Elapsed)
	return nil
}
