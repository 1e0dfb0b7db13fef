// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Change describes what a Manager.Resize did.
type Change struct {
	// Replaced is set when a new surface was created.
	Replaced bool

	// WidthChanged is set when the new surface differs in width.
	WidthChanged bool
}

// Manager owns the current surface across resizes.
type Manager struct {
	cur    *Surface
	opts   []Option
	gen    int
	closed bool
}

// NewManager creates a manager with an initial surface of the given size.
func NewManager(width, height int, opts ...Option) (*Manager, error) {
	s, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	return &Manager{cur: s, opts: opts, gen: 1}, nil
}

// Current returns the live surface, or nil after Close.
func (m *Manager) Current() *Surface {
	return m.cur
}

// Generation counts the surfaces created so far, starting at 1.
func (m *Manager) Generation() int {
	return m.gen
}

// Resize replaces the surface with one of the new size and releases the
// old one. A resize to the current size keeps the surface.
// On error the old surface stays current.
func (m *Manager) Resize(width, height int) (Change, error) {
	if m.closed {
		return Change{}, ErrClosed
	}
	if width == m.cur.Width() && height == m.cur.Height() {
		return Change{}, nil
	}

	s, err := New(width, height, m.opts...)
	if err != nil {
		return Change{}, err
	}

	ch := Change{Replaced: true, WidthChanged: width != m.cur.Width()}
	_ = m.cur.Close()
	m.cur = s
	m.gen++
	return ch, nil
}

// Close releases the current surface. Close is idempotent.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	err := m.cur.Close()
	m.cur = nil
	return err
}
