package gridview

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestTileCacheIdempotent(t *testing.T) {
	r := newCounting(t, smallConfig(t))
	c := NewTileCache(r, 120, 0)

	first, err := c.GetOrCreate(3)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := c.GetOrCreate(3)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first != second {
		t.Error("second lookup returned a different image")
	}
	if len(r.calls) != 1 {
		t.Errorf("rasterizations = %d, want 1", len(r.calls))
	}
	if first.Index() != 3 || first.Width() != 120 || first.Height() != 64 {
		t.Errorf("image = index %d %dx%d, want index 3 120x64", first.Index(), first.Width(), first.Height())
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Rasterizations != 1 {
		t.Errorf("stats = %+v, want 1 hit, 1 miss, 1 rasterization", st)
	}
}

func TestTileCacheSetWidth(t *testing.T) {
	r := newCounting(t, smallConfig(t))
	c := NewTileCache(r, 120, 0)

	old, err := c.GetOrCreate(0)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	if c.SetWidth(120) {
		t.Error("SetWidth with the same width reported a change")
	}
	if !c.Contains(0) {
		t.Fatal("same-width SetWidth dropped tiles")
	}

	if !c.SetWidth(80) {
		t.Error("SetWidth with a new width reported no change")
	}
	if c.Len() != 0 {
		t.Fatalf("Len() = %d after width change, want 0", c.Len())
	}

	fresh, err := c.GetOrCreate(0)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if fresh == old {
		t.Error("stale image reused after width change")
	}
	if fresh.Width() != 80 {
		t.Errorf("fresh width = %d, want 80", fresh.Width())
	}
	if !slices.Equal(r.widths, []int{120, 80}) {
		t.Errorf("rasterized widths = %v, want [120 80]", r.widths)
	}
	if got := c.Stats().Invalidations; got != 1 {
		t.Errorf("Invalidations = %d, want 1", got)
	}
}

func TestTileCacheInvalidateAll(t *testing.T) {
	r := newCounting(t, smallConfig(t))
	c := NewTileCache(r, 120, 0)

	for i := range 3 {
		if _, err := c.GetOrCreate(i); err != nil {
			t.Fatalf("GetOrCreate(%d): %v", i, err)
		}
	}
	c.InvalidateAll()
	if c.Len() != 0 {
		t.Fatalf("Len() = %d after InvalidateAll", c.Len())
	}

	r.reset()
	if _, err := c.GetOrCreate(1); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !slices.Equal(r.calls, []int{1}) {
		t.Errorf("calls after invalidation = %v, want [1]", r.calls)
	}
}

func TestTileCacheErrorNotStored(t *testing.T) {
	boom := errors.New("boom")
	r := newCounting(t, smallConfig(t))
	r.fail[2] = boom
	c := NewTileCache(r, 120, 0)

	if _, err := c.GetOrCreate(2); !errors.Is(err, boom) {
		t.Fatalf("GetOrCreate error = %v, want %v", err, boom)
	}
	if c.Contains(2) || c.Len() != 0 {
		t.Fatal("failed rasterization was cached")
	}
	if got := c.Stats().Rasterizations; got != 0 {
		t.Errorf("Rasterizations = %d, want 0", got)
	}

	delete(r.fail, 2)
	if _, err := c.GetOrCreate(2); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !c.Contains(2) {
		t.Error("successful retry was not cached")
	}
}

func TestTileCacheCapacity(t *testing.T) {
	r := newCounting(t, smallConfig(t))
	c := NewTileCache(r, 120, 2)

	for _, i := range []int{0, 1, 2} {
		if _, err := c.GetOrCreate(i); err != nil {
			t.Fatalf("GetOrCreate(%d): %v", i, err)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if c.Contains(0) {
		t.Error("least recently used tile 0 was kept")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}

	c.SetCapacity(1)
	if c.Len() != 1 || !c.Contains(2) {
		t.Errorf("after SetCapacity(1): Len() = %d, Contains(2) = %v", c.Len(), c.Contains(2))
	}
}

func TestTileCacheLogsTiming(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	host := newFakeHost()

	r := newCounting(t, smallConfig(t))
	c := NewTileCache(r, 120, 0, WithClock(host.Now), WithCacheLogger(log))
	if _, err := c.GetOrCreate(3); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"draw tile", "index=3", "width=120", "took=1ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
