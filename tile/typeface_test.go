// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tile

import (
	"errors"
	"testing"
)

func TestDefaultTypeface(t *testing.T) {
	tf := DefaultTypeface()
	t.Cleanup(func() { _ = tf.Close() })

	if tf.Size() != DefaultFontSize {
		t.Errorf("Size() = %g, want %g", tf.Size(), DefaultFontSize)
	}
	if tf.UnitsPerEm() != 0 {
		t.Error("UnitsPerEm() reported before load")
	}

	face, err := tf.Face()
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if face == nil {
		t.Fatal("Face returned nil")
	}
	if tf.UnitsPerEm() == 0 {
		t.Error("UnitsPerEm() = 0 after load")
	}

	again, _ := tf.Face()
	if again != face {
		t.Error("Face parsed the font twice")
	}
}

func TestTypefaceErrors(t *testing.T) {
	if _, err := NewTypeface(nil, 12).Face(); !errors.Is(err, ErrNoFace) {
		t.Errorf("empty data error = %v, want ErrNoFace", err)
	}

	tf := NewTypeface([]byte("not a font"), 12)
	_, err := tf.Face()
	if err == nil {
		t.Fatal("garbage data loaded")
	}
	if errors.Is(err, ErrNoFace) {
		t.Errorf("garbage data error = %v, want a parse error", err)
	}
	if _, again := tf.Face(); again != err {
		t.Errorf("second Face error = %v, want the cached %v", again, err)
	}
	if err := tf.Close(); err != nil {
		t.Errorf("Close after failed load: %v", err)
	}
}

func TestTypefaceDefaultSize(t *testing.T) {
	if got := NewTypeface(nil, 0).Size(); got != DefaultFontSize {
		t.Errorf("Size() = %g, want %g", got, DefaultFontSize)
	}
}
