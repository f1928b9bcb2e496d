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

package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/anim/shade"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Canvas is a pixel buffer together with its depth buffer.
//
// Scene coordinates have the origin in the lower left corner with y
// pointing up; the integer point (x, y) is the centre of image pixel
// (x, height-1-y).
//
// A Canvas is not safe for concurrent use. Use one canvas per goroutine.
type Canvas struct {
	Image *image.RGBA

	// Depth holds one value per pixel, in row-major order. Larger values
	// are nearer to the viewer.
	Depth []float64

	// LineWidth is the width of lines in pixels. Values up to 1 select
	// single-pixel lines.
	LineWidth float64

	r       *Rasterizer
	paint   color.RGBA
	corners [4]mgl64.Vec3

	plotDepth func(y, xMin int, depth []float64)
	plotFlat  func(y, xMin int, depth []float64)
}

// NewCanvas allocates a canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)}
	r := NewRasterizer(clip)
	r.CTM = DeviceMatrix(height)

	c := &Canvas{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
		Depth: make([]float64, width*height),
		r:     r,
	}
	c.plotDepth = c.spanDepth
	c.plotFlat = c.spanFlat
	c.Clear(color.RGBA{A: 255})
	return c
}

// DeviceMatrix returns the transformation from scene x and y to the device
// space of an image with the given height, so that integer scene
// coordinates fall on pixel centres.
func DeviceMatrix(height int) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, 0.5, float64(height) - 0.5}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.Image.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.Image.Rect.Dy()
}

// Clear fills the image with bg and sets every depth to infinitely far.
func (c *Canvas) Clear(bg color.RGBA) {
	pix := c.Image.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = bg.A
	}
	far := math.Inf(-1)
	for i := range c.Depth {
		c.Depth[i] = far
	}
}

// Stats counts the triangles seen by DrawTriangles.
type Stats struct {
	Drawn  int
	Culled int
}

// Add returns the sum of two statistics.
func (s Stats) Add(other Stats) Stats {
	return Stats{Drawn: s.Drawn + other.Drawn, Culled: s.Culled + other.Culled}
}

// DrawTriangles draws the triangles in pts, three points per triangle.
// Each triangle is flat-shaded with a single colour computed from its
// normal and centroid. If cull is set, triangles whose normal does not
// point towards the viewer are skipped.
//
// Trailing points which do not form a complete triangle are ignored.
func (c *Canvas) DrawTriangles(pts []mgl64.Vec3, m *shade.Material, l *shade.Lighting, cull bool) Stats {
	var s Stats
	for i := 0; i+2 < len(pts); i += 3 {
		p0, p1, p2 := pts[i], pts[i+1], pts[i+2]
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if cull && !(n.Dot(l.View) > 0) {
			s.Culled++
			continue
		}

		centroid := p0.Add(p1).Add(p2).Mul(1.0 / 3)
		c.paint = l.Flat(m, n, centroid)
		c.corners[0], c.corners[1], c.corners[2] = p0, p1, p2
		c.r.FillPolygon(c.corners[:3], c.plotDepth)
		s.Drawn++
	}
	return s
}

// spanDepth writes the pixels of a run which pass the depth test.
func (c *Canvas) spanDepth(y, xMin int, depth []float64) {
	row := y * c.Width()
	off := y*c.Image.Stride + xMin*4
	pix := c.Image.Pix
	for i, z := range depth {
		k := row + xMin + i
		if z > c.Depth[k] {
			c.Depth[k] = z
			o := off + 4*i
			pix[o+0] = c.paint.R
			pix[o+1] = c.paint.G
			pix[o+2] = c.paint.B
			pix[o+3] = c.paint.A
		}
	}
}

// spanFlat writes all pixels of a run, leaving the depth buffer alone.
func (c *Canvas) spanFlat(y, xMin int, depth []float64) {
	off := y*c.Image.Stride + xMin*4
	pix := c.Image.Pix
	for i := range depth {
		o := off + 4*i
		pix[o+0] = c.paint.R
		pix[o+1] = c.paint.G
		pix[o+2] = c.paint.B
		pix[o+3] = c.paint.A
	}
}
