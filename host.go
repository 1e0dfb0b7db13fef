package gridview

import (
	"time"

	"github.com/gogpu/gridview/surface"
)

// Host is the environment driving a State.
//
// The engine never reaches for the wall clock or a display on its own; it
// asks the host. Tests substitute a fake.
type Host interface {
	// Now returns the current time, used for timing diagnostics.
	Now() time.Time

	// Present shows a finished frame. The surface is only valid for the
	// duration of the call.
	Present(s *surface.Surface) error
}

// headless is the default Host: wall clock, nothing presented.
type headless struct{}

func (headless) Now() time.Time                 { return time.Now() }
func (headless) Present(*surface.Surface) error { return nil }
