package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/internal/termview"
)

// frameInterval paces redraws. Input that arrives between two frames is
// folded into a single redraw.
const frameInterval = 16 * time.Millisecond

// Scroll steps in surface pixels.
const (
	wheelStep = 64
	lineStep  = 16
)

// viewer drives a State from terminal input.
type viewer struct {
	screen tcell.Screen
	view   *termview.Presenter
	st     *gridview.State

	scroll  int
	pending int
	resized bool
	dirty   bool
}

func runTerminal(scroll, scale int, opts []gridview.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	v, err := newViewer(screen, scale, opts)
	if err != nil {
		return err
	}
	defer func() { _ = v.st.Close() }()
	v.pending = scroll

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if err := v.frame(); err != nil {
				return err
			}
		}
	}
}

func newViewer(screen tcell.Screen, scale int, opts []gridview.Option) (*viewer, error) {
	view := termview.New(screen, termview.WithScale(scale))
	view.SetStatus(" gridview")

	w, h := view.SurfaceSize()
	st, err := gridview.Init(max(w, 1), max(h, 1), append(opts, gridview.WithHost(view))...)
	if err != nil {
		return nil, err
	}
	return &viewer{screen: screen, view: view, st: st, dirty: true}, nil
}

// handle records the effect of one event and reports whether to quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if e.Rune() == 'q' {
				return true
			}
		case tcell.KeyUp:
			v.pending -= lineStep
		case tcell.KeyDown:
			v.pending += lineStep
		case tcell.KeyPgUp:
			v.pending -= v.page()
		case tcell.KeyPgDn:
			v.pending += v.page()
		case tcell.KeyHome:
			v.scroll, v.pending = 0, 0
			v.dirty = true
		}

	case *tcell.EventMouse:
		switch {
		case e.Buttons()&tcell.WheelUp != 0:
			v.pending -= wheelStep
		case e.Buttons()&tcell.WheelDown != 0:
			v.pending += wheelStep
		}

	case *tcell.EventResize:
		v.resized = true
		v.screen.Sync()
	}
	return false
}

// page is one viewport height in surface pixels.
func (v *viewer) page() int {
	_, h := v.view.SurfaceSize()
	return max(h, lineStep)
}

// frame applies everything accumulated since the last frame with at most
// one redraw.
func (v *viewer) frame() error {
	if v.resized {
		v.resized = false
		w, h := v.view.SurfaceSize()
		if w > 0 && h > 0 {
			if err := v.st.ResizeSurface(w, h); err != nil {
				return err
			}
		}
		v.dirty = true
	}
	if v.pending != 0 {
		v.scroll = max(v.scroll+v.pending, 0)
		v.pending = 0
		v.dirty = true
	}
	if !v.dirty {
		return nil
	}
	v.dirty = false

	tiles := v.st.Tiles().Stats()
	v.view.SetStatus(fmt.Sprintf(" scroll %d  row %d  cached %d/%d  drawn %d  %s  q quit",
		v.scroll,
		v.scroll/int(v.st.Grid().CellHeight),
		tiles.Len, tiles.Capacity,
		tiles.Rasterizations,
		v.st.Strategy()))
	return v.st.OnTranslate(v.scroll)
}
