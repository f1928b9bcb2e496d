//go:build !headless

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

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window is an ebiten window which shows the most recently presented frame.
// Window is safe for concurrent use.
type Window struct {
	cfg Config
	fb  frameBuffer

	screen *ebiten.Image // guarded by fb.mu

	mu     sync.Mutex
	last   time.Time
	err    error

	startOnce sync.Once
	started   atomic.Bool
	closed    atomic.Bool
	frames    atomic.Uint64
	ready     chan struct{}
	done      chan struct{}
}

// New creates a window. Nothing is shown until the first call to Present.
func New(cfg Config) *Window {
	return &Window{
		cfg:   cfg.withDefaults(),
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Present copies img into the window. After the window has been closed,
// frames are dropped silently.
func (w *Window) Present(img *image.RGBA) error {
	if w.closed.Load() {
		return nil
	}

	width, height := w.fb.store(img)
	w.startOnce.Do(func() { w.start(width, height) })
	w.frames.Add(1)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = pace(w.last, w.cfg.Delay)
	return nil
}

// start opens a window for frames of the given size and waits for the
// first frame to be drawn.
func (w *Window) start(width, height int) {
	ebiten.SetWindowSize(width*w.cfg.Scale, height*w.cfg.Scale)
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	w.started.Store(true)

	go func() {
		defer close(w.done)
		if err := ebiten.RunGame(w); err != nil {
			w.mu.Lock()
			w.err = err
			w.mu.Unlock()
		}
		w.closed.Store(true)
	}()

	select {
	case <-w.ready:
	case <-w.done:
	}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.closed.Store(true)
	}
	if w.closed.Load() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.fb.mu.Lock()
	if w.screen == nil || w.screen.Bounds().Dx() != w.fb.width || w.screen.Bounds().Dy() != w.fb.height {
		w.screen = ebiten.NewImage(w.fb.width, w.fb.height)
	}
	w.screen.WritePixels(w.fb.pix)
	w.fb.mu.Unlock()
	screen.DrawImage(w.screen, nil)

	select {
	case w.ready <- struct{}{}:
	default:
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.fb.size()
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

// Done returns a channel which is closed once the window is gone.
func (w *Window) Done() <-chan struct{} {
	return w.done
}

// Wait blocks until the user closes the window. It returns immediately if
// the window was never opened.
func (w *Window) Wait() error {
	if !w.started.Load() {
		return nil
	}
	<-w.done
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Close closes the window.
func (w *Window) Close() error {
	w.closed.Store(true)
	return w.Wait()
}
