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

// Package viewer shows rendered frames in a window.
//
// The window opens when the first frame is presented and stays open until
// it is closed by the user, Escape is pressed, or Close is called.
// Only one window per process is supported.
//
// Built with the "headless" tag, no window is opened and presented frames
// are only counted.
package viewer

import (
	"image"
	"sync"
	"time"
)

// Config describes the viewer window.
type Config struct {
	Title string

	// Scale is the integer zoom factor of the window. Values below 1 are
	// treated as 1.
	Scale int

	// Delay is the minimum time between two presented frames. Zero shows
	// frames as fast as they are rendered.
	Delay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "anim"
	}
	c.Scale = max(c.Scale, 1)
	c.Delay = max(c.Delay, 0)
	return c
}

// pace sleeps until at least delay has passed since last, and returns the
// current time.
func pace(last time.Time, delay time.Duration) time.Time {
	if delay > 0 && !last.IsZero() {
		if wait := delay - time.Since(last); wait > 0 {
			time.Sleep(wait)
		}
	}
	return time.Now()
}

// frameBuffer holds a copy of the most recently presented frame.
type frameBuffer struct {
	mu     sync.Mutex
	pix    []byte
	width  int
	height int
}

// store copies img into the buffer and returns its size.
func (f *frameBuffer) store(img *image.RGBA) (width, height int) {
	b := img.Bounds()
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.Dx() != f.width || b.Dy() != f.height {
		f.width, f.height = b.Dx(), b.Dy()
		f.pix = make([]byte, 4*f.width*f.height)
	}
	rowLen := 4 * f.width
	for y := range f.height {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(f.pix[y*rowLen:(y+1)*rowLen], src[:rowLen])
	}
	return f.width, f.height
}

// size returns the size of the stored frame.
func (f *frameBuffer) size() (width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

// snapshot returns a copy of the stored frame, or nil if nothing has been
// stored yet.
func (f *frameBuffer) snapshot() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pix == nil {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.pix)
	return img
}
