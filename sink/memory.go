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

package sink

import (
	"cmp"
	"image"
	"slices"
	"sync"
)

// Frame is an image recorded by Memory.
type Frame struct {
	Name  string
	Image *image.RGBA
}

// Memory keeps copies of all frames in memory. It is safe for concurrent
// use.
type Memory struct {
	mu     sync.Mutex
	frames []Frame
}

// WriteFrame stores a copy of img.
func (m *Memory) WriteFrame(name string, img *image.RGBA) error {
	cp := &image.RGBA{
		Pix:    slices.Clone(img.Pix),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	m.mu.Lock()
	m.frames = append(m.frames, Frame{Name: name, Image: cp})
	m.mu.Unlock()
	return nil
}

// Present stores a copy of img under the empty name, so that Memory can
// also record display requests.
func (m *Memory) Present(img *image.RGBA) error {
	return m.WriteFrame("", img)
}

// Frames returns the recorded frames, sorted by name. Frames with the same
// name stay in the order they were written.
func (m *Memory) Frames() []Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := slices.Clone(m.frames)
	slices.SortStableFunc(res, func(a, b Frame) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return res
}

// Get returns the last frame written under the given name, or nil.
func (m *Memory) Get(name string) *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.frames) - 1; i >= 0; i-- {
		if m.frames[i].Name == name {
			return m.frames[i].Image
		}
	}
	return nil
}

// Discard drops all frames.
type Discard struct{}

// WriteFrame does nothing.
func (Discard) WriteFrame(string, *image.RGBA) error { return nil }
