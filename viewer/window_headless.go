//go:build headless

// seehuhn.de/go/anim - animated 3D scenes in software
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package viewer

import (
	"image"
	"sync"
	"sync/atomic"
	"time"
)

// Window counts presented frames without showing them. The most recent
// frame is kept for Snapshot.
type Window struct {
	cfg Config
	fb  frameBuffer

	mu     sync.Mutex
	last   time.Time
	closed atomic.Bool
	frames atomic.Uint64
	done   chan struct{}
	once   sync.Once
}

// New creates a headless window.
func New(cfg Config) *Window {
	return &Window{
		cfg:  cfg.withDefaults(),
		done: make(chan struct{}),
	}
}

// Present counts img, unless the window has been closed.
func (w *Window) Present(img *image.RGBA) error {
	if w.closed.Load() {
		return nil
	}
	w.fb.store(img)
	w.frames.Add(1)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = pace(w.last, w.cfg.Delay)
	return nil
}

// Snapshot returns a copy of the most recently presented frame, or nil if
// no frame has been presented.
func (w *Window) Snapshot() *image.RGBA {
	return w.fb.snapshot()
}

// Frames returns the number of frames presented so far.
func (w *Window) Frames() uint64 {
	return w.frames.Load()
}

// Done returns a channel which is closed once the window is closed.
func (w *Window) Done() <-chan struct{} {
	return w.done
}

// Wait returns immediately, since there is no user to close the window.
func (w *Window) Wait() error {
	return nil
}

// Close closes the window.
func (w *Window) Close() error {
	w.closed.Store(true)
	w.once.Do(func() { close(w.done) })
	return nil
}
