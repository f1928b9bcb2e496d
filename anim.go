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
	"context"
	"fmt"
	"image"
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/knob"
	"seehuhn.de/go/anim/mesh"
	"seehuhn.de/go/anim/raster"
	"seehuhn.de/go/anim/solid"
	"seehuhn.de/go/anim/xform"
)

// FrameWriter receives finished images. The image must not be retained
// after WriteFrame returns.
type FrameWriter interface {
	WriteFrame(name string, img *image.RGBA) error
}

// Presenter shows an image on screen. The image must not be retained
// after Present returns.
type Presenter interface {
	Present(img *image.RGBA) error
}

// Renderer renders scripts into sequences of images.
// A Renderer can be used for several scripts, also concurrently.
type Renderer struct {
	cfg config

	workspaces sync.Pool
}

// workspace holds the buffers of one frame. Workspaces are reused across
// frames and runs.
type workspace struct {
	canvas *raster.Canvas
	stack  *xform.Stack
	batch  solid.Batch
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&r.cfg)
	}
	r.workspaces.New = func() any {
		c := raster.NewCanvas(r.cfg.width, r.cfg.height)
		c.LineWidth = r.cfg.lineWidth
		return &workspace{canvas: c, stack: xform.NewStack()}
	}
	return r
}

// Report summarizes a run.
type Report struct {
	Frames    int
	Triangles raster.Stats

	// Written counts the images passed to the writer, including explicit
	// save commands.
	Written   int
	Displayed int

	// Skipped counts the mesh file records which could not be used.
	Skipped int
}

func (r Report) add(other Report) Report {
	return Report{
		Frames:    r.Frames + other.Frames,
		Triangles: r.Triangles.Add(other.Triangles),
		Written:   r.Written + other.Written,
		Displayed: r.Displayed + other.Displayed,
		Skipped:   r.Skipped + other.Skipped,
	}
}

// run holds the read-only state shared by all frames of one script.
type run struct {
	script *command.Script
	setup  knob.Setup
	knobs  knob.Table
	meshes map[string][]mgl64.Vec3
	cull   bool
}

// Render executes a script, producing one image per frame.
//
// Configuration errors are reported before any frame is rendered.
// Errors during a frame, such as an undefined knob or a pop from a
// single-level stack, abort the run.
func (r *Renderer) Render(ctx context.Context, script *command.Script) (Report, error) {
	var report Report
	logger := r.cfg.logger

	if err := script.Validate(); err != nil {
		return report, err
	}
	setup, err := knob.Scan(script.Commands)
	if err != nil {
		return report, err
	}
	if setup.DefaultedBasename {
		logger.Info("no basename found, using default", "basename", setup.Basename)
	}
	table, err := knob.Resolve(script.Commands, setup.Frames)
	if err != nil {
		return report, err
	}

	rn := &run{
		script: script,
		setup:  setup,
		knobs:  table,
	}
	switch r.cfg.culling {
	case CullAlways:
		rn.cull = true
	case CullStatic:
		rn.cull = setup.Frames == 1
	}

	report.Skipped, err = r.loadMeshes(rn)
	if err != nil {
		return report, err
	}

	logger.Info("rendering",
		"frames", setup.Frames,
		"basename", setup.Basename,
		"workers", r.cfg.workers)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.workers)
	for i := range setup.Frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fr, err := r.renderFrame(rn, i)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			mu.Lock()
			report = report.add(fr)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	logger.Info("done",
		"frames", report.Frames,
		"drawn", report.Triangles.Drawn,
		"culled", report.Triangles.Culled,
		"written", report.Written)
	return report, nil
}

// loadMeshes reads every mesh file named in the script once.
// It returns the total number of skipped records.
func (r *Renderer) loadMeshes(rn *run) (int, error) {
	var files []string
	for _, c := range rn.script.Commands {
		if m, ok := c.(command.Mesh); ok && !slices.Contains(files, m.File) {
			files = append(files, m.File)
		}
	}
	if len(files) == 0 {
		return 0, nil
	}

	rn.meshes = make(map[string][]mgl64.Vec3, len(files))
	skipped := 0
	b := &solid.Batch{}
	for _, name := range files {
		b.Reset()
		rep, err := mesh.LoadFile(r.cfg.fsys, name, b)
		if err != nil {
			return skipped, fmt.Errorf("mesh %q: %w", name, err)
		}
		rn.meshes[name] = slices.Clone(b.Points)
		skipped += len(rep.Skipped)

		if len(rep.Skipped) > 0 {
			r.cfg.logger.Warn("skipped mesh records",
				"file", name,
				"count", len(rep.Skipped),
				"first", rep.Skipped[0].Error())
		}
		r.cfg.logger.Debug("mesh loaded",
			"file", name,
			"vertices", rep.Vertices,
			"triangles", rep.Triangles)
	}
	return skipped, nil
}
