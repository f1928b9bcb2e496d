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

package anim

import (
	"image/color"
	"io/fs"
	"log/slog"
	"os"

	"seehuhn.de/go/anim/shade"
	"seehuhn.de/go/anim/sink"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := anim.New(
//		anim.WithSize(800, 600),
//		anim.WithWorkers(runtime.NumCPU()),
//	)
type Option func(*config)

// CullMode selects when triangles facing away from the viewer are skipped.
type CullMode int

const (
	// CullStatic culls back faces only in single-frame scenes.
	CullStatic CullMode = iota

	// CullAlways culls back faces in every frame.
	CullAlways

	// CullNever draws all triangles.
	CullNever
)

func (m CullMode) String() string {
	switch m {
	case CullStatic:
		return "static"
	case CullAlways:
		return "always"
	case CullNever:
		return "never"
	}
	return "unknown"
}

type config struct {
	width, height int
	resolution    int
	background    color.RGBA
	lineColor     color.RGBA
	lineWidth     float64
	lighting      shade.Lighting
	culling       CullMode
	outputDir     string
	writer        FrameWriter
	presenter     Presenter
	workers       int
	fsys          fs.FS
	logger        *slog.Logger
}

// defaultConfig returns the default renderer configuration.
func defaultConfig() config {
	return config{
		width:      500,
		height:     500,
		resolution: 100,
		background: color.RGBA{A: 255},
		lineColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		lighting:   shade.DefaultLighting(),
		culling:    CullStatic,
		outputDir:  "anim",
		writer:     &sink.Files{},
		workers:    1,
		fsys:       os.DirFS("."),
		logger:     newNopLogger(),
	}
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithResolution sets the number of steps used to tessellate spheres and
// tori. Non-positive values are ignored.
func WithResolution(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.resolution = n
		}
	}
}

// WithBackground sets the colour every frame starts from.
func WithBackground(bg color.RGBA) Option {
	return func(c *config) {
		c.background = bg
	}
}

// WithLineColor sets the colour of line commands.
func WithLineColor(col color.RGBA) Option {
	return func(c *config) {
		c.lineColor = col
	}
}

// WithLineWidth sets the width of line commands in pixels.
func WithLineWidth(w float64) Option {
	return func(c *config) {
		c.lineWidth = w
	}
}

// WithLighting replaces the default ambient light, light source and view
// direction.
func WithLighting(l shade.Lighting) Option {
	return func(c *config) {
		c.lighting = l
	}
}

// WithCulling sets the back-face culling mode.
func WithCulling(m CullMode) Option {
	return func(c *config) {
		c.culling = m
	}
}

// WithOutputDir sets the directory for the frames written at the end of
// every frame. Explicit save commands are not affected.
func WithOutputDir(dir string) Option {
	return func(c *config) {
		c.outputDir = dir
	}
}

// WithWriter sets the destination for finished frames and save commands.
// The default writes image files.
func WithWriter(w FrameWriter) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// WithPresenter sets the destination of display commands. Without a
// presenter, display commands are logged and otherwise ignored.
func WithPresenter(p Presenter) Option {
	return func(c *config) {
		c.presenter = p
	}
}

// WithWorkers sets the number of frames rendered concurrently.
// The writer and presenter must be safe for concurrent use if n > 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = max(n, 1)
	}
}

// WithFS sets the file system used to read mesh files.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		if fsys != nil {
			c.fsys = fsys
		}
	}
}

// WithLogger sets the logger. Pass nil to disable logging, which is the
// default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = newNopLogger()
		}
		c.logger = l
	}
}
