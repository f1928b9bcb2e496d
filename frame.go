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
	"fmt"
	"math"
	"path/filepath"

	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/raster"
	"seehuhn.de/go/anim/solid"
	"seehuhn.de/go/anim/xform"
)

// frame is the execution state of one frame. Nothing in a frame is shared
// with other frames except the read-only run.
type frame struct {
	r     *Renderer
	run   *run
	index int

	canvas *raster.Canvas
	stack  *xform.Stack
	batch  *solid.Batch
	report Report
}

// renderFrame executes all commands of the script for frame i and hands
// the result to the writer.
func (r *Renderer) renderFrame(rn *run, i int) (Report, error) {
	ws := r.workspaces.Get().(*workspace)
	defer r.workspaces.Put(ws)
	c := ws.canvas
	c.Clear(r.cfg.background)
	ws.stack.Reset()

	f := &frame{
		r:      r,
		run:    rn,
		index:  i,
		canvas: c,
		stack:  ws.stack,
		batch:  &ws.batch,
	}
	for pos, cmd := range rn.script.Commands {
		if err := f.exec(cmd); err != nil {
			return f.report, fmt.Errorf("command %d (%s): %w", pos, command.Op(cmd), err)
		}
	}

	name := filepath.Join(r.cfg.outputDir, fmt.Sprintf("%s%04d", rn.setup.Basename, i))
	if err := r.cfg.writer.WriteFrame(name, c.Image); err != nil {
		return f.report, err
	}
	f.report.Written++
	f.report.Frames = 1

	r.cfg.logger.Debug("frame",
		"index", i,
		"drawn", f.report.Triangles.Drawn,
		"culled", f.report.Triangles.Culled)
	return f.report, nil
}

// exec executes a single command.
func (f *frame) exec(cmd command.Command) error {
	k := 1.0
	if name := command.KnobOf(cmd); name != "" {
		v, err := f.run.knobs.Lookup(f.index, name)
		if err != nil {
			return err
		}
		k = v
	}

	b := f.batch
	n := f.r.cfg.resolution
	switch c := cmd.(type) {
	case command.Box:
		b.Reset()
		solid.Box(b, k*c.X, k*c.Y, k*c.Z, k*c.W, k*c.H, k*c.D)
		return f.drawTriangles(c.Material)
	case command.Sphere:
		b.Reset()
		solid.Sphere(b, k*c.X, k*c.Y, k*c.Z, k*c.R, n)
		return f.drawTriangles(c.Material)
	case command.Torus:
		b.Reset()
		solid.Torus(b, k*c.X, k*c.Y, k*c.Z, k*c.R0, k*c.R1, n)
		return f.drawTriangles(c.Material)
	case command.Mesh:
		// a mesh has no numeric arguments, so the knob has no effect
		b.Points = append(b.Points[:0], f.run.meshes[c.File]...)
		return f.drawTriangles(c.Material)
	case command.Line:
		b.Reset()
		solid.Line(b, k*c.X0, k*c.Y0, k*c.Z0, k*c.X1, k*c.Y1, k*c.Z1)
		b.Transform(f.stack.Top())
		f.canvas.DrawLines(b.Points, f.r.cfg.lineColor)

	case command.Move:
		f.stack.Compose(xform.Translate(k*c.X, k*c.Y, k*c.Z))
	case command.Scale:
		f.stack.Compose(xform.Scale(k*c.X, k*c.Y, k*c.Z))
	case command.Rotate:
		theta := c.Degrees * (math.Pi / 180) * k
		f.stack.Compose(xform.Rotate(c.Axis, theta))
	case command.Push:
		f.stack.Push()
	case command.Pop:
		return f.stack.Pop()

	case command.Display:
		p := f.r.cfg.presenter
		if p == nil {
			f.r.cfg.logger.Warn("display ignored, no presenter configured", "frame", f.index)
			return nil
		}
		if err := p.Present(f.canvas.Image); err != nil {
			return err
		}
		f.report.Displayed++
	case command.Save:
		if err := f.r.cfg.writer.WriteFrame(c.Name, f.canvas.Image); err != nil {
			return err
		}
		f.report.Written++

	case command.Frames, command.Basename, command.Vary:
		// handled before the first frame
	default:
		return fmt.Errorf("%w %T", command.ErrUnknownOp, cmd)
	}
	return nil
}

// drawTriangles transforms the current batch by the top of the stack and
// draws it with the named material.
func (f *frame) drawTriangles(material string) error {
	m, err := f.run.script.Symbols.Lookup(material)
	if err != nil {
		return err
	}
	f.batch.Transform(f.stack.Top())
	s := f.canvas.DrawTriangles(f.batch.Points, &m, &f.r.cfg.lighting, f.run.cull)
	f.report.Triangles = f.report.Triangles.Add(s)
	return nil
}
