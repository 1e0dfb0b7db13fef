// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"
)

func TestManagerResize(t *testing.T) {
	m, err := NewManager(100, 50)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })

	first := m.Current()
	tests := []struct {
		name string
		w, h int
		want Change
		gen  int
	}{
		{"same size", 100, 50, Change{}, 1},
		{"height only", 100, 80, Change{Replaced: true}, 2},
		{"width", 120, 80, Change{Replaced: true, WidthChanged: true}, 3},
		{"both", 60, 30, Change{Replaced: true, WidthChanged: true}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Resize(tt.w, tt.h)
			if err != nil {
				t.Fatalf("Resize: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resize(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
			if m.Generation() != tt.gen {
				t.Errorf("Generation() = %d, want %d", m.Generation(), tt.gen)
			}
			s := m.Current()
			if s.Width() != tt.w || s.Height() != tt.h {
				t.Errorf("surface = %dx%d, want %dx%d", s.Width(), s.Height(), tt.w, tt.h)
			}
		})
	}

	if m.Current() == first {
		t.Error("surface was not replaced")
	}
	if _, err := first.Snapshot(); !errors.Is(err, ErrClosed) {
		t.Errorf("Snapshot of replaced surface error = %v, want ErrClosed", err)
	}
}

func TestManagerResizeInvalid(t *testing.T) {
	m, err := NewManager(10, 10)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })

	cur := m.Current()
	if _, err := m.Resize(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
	if m.Current() != cur {
		t.Error("failed resize replaced the surface")
	}
}

func TestManagerClose(t *testing.T) {
	m, err := NewManager(10, 10)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if m.Current() != nil {
		t.Error("Current() after Close is not nil")
	}
	if _, err := m.Resize(20, 20); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize after Close error = %v, want ErrClosed", err)
	}
}

func TestNewManagerInvalid(t *testing.T) {
	if _, err := NewManager(0, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewManager(0, 0) error = %v, want ErrInvalidDimensions", err)
	}
}
