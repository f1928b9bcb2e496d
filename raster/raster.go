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

// Package raster scan-converts triangles and line segments into a
// z-buffered RGB canvas.
//
// Scene coordinates are mapped to the pixel grid by an affine device
// transform acting on x and y; depth (z) is passed through unchanged and
// larger z is nearer to the viewer. There is no perspective: the view
// direction is fixed along the z axis.
package raster

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge represents a polygon edge in device coordinates, oriented so that
// y0 < y1.
type edge struct {
	x0, y0, z0 float64 // upper end point
	x1, y1, z1 float64 // lower end point
	dxdy       float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
	dzdy       float64 // (z1-z0)/(y1-y0), the same for depth
}

// crossing is the point where an edge meets the centre line of a scanline.
type crossing struct {
	x, z float64
}

// Rasterizer converts polygons to runs of covered pixels. A pixel is
// covered if its centre lies inside the polygon (even-odd rule); centres on
// a left or upper edge count as inside, centres on a right or lower edge
// do not, so that polygons sharing an edge never both cover a pixel.
// For every covered pixel the depth of the polygon plane at the pixel
// centre is reported.
//
// Create one instance and reuse it for many polygons. Internal buffers
// grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps scene x and y to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Internal buffers (reused across calls)
	edges     []edge     // edge list for the current polygon
	activeIdx []int      // indices of active edges
	crossings []crossing // edge crossings of the current scanline
	depth     []float64  // depth values of the current span; reused as output

	// Edge collection state (used by collectEdges/addEdge)
	edgeBBoxFirst bool    // true if no edges added yet
	edgeDevYMin   float64 // vertical extent in device space
	edgeDevYMax   float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle and
// the identity device transform.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Project maps the x and y coordinates of a scene point to device space.
func (r *Rasterizer) Project(p mgl64.Vec3) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p[0] + r.CTM[2]*p[1] + r.CTM[4],
		Y: r.CTM[1]*p[0] + r.CTM[3]*p[1] + r.CTM[5],
	}
}

// FillPolygon scan-converts the closed polygon with the given corners.
// The emit callback receives the covered pixels row by row, one run at a
// time: the run starts in column xMin of row y, and depth holds the
// interpolated depth for each pixel of the run. The depth slice is valid
// only during the call.
func (r *Rasterizer) FillPolygon(pts []mgl64.Vec3, emit func(y, xMin int, depth []float64)) {
	yMin, yMax, ok := r.collectEdges(pts)
	if !ok {
		return // empty, degenerate or clipped away
	}

	// Sort edges by y_min
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	// Active edge list (indices into r.edges)
	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		// Add edges that start at or above this scanline's centre
		for nextEdge < len(r.edges) && r.edges[nextEdge].y0 <= yc {
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}

		r.crossings = r.crossings[:0]
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]

			// Remove edges which end at or above the centre (swap with last)
			if e.y1 <= yc {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}

			r.crossings = append(r.crossings, crossing{
				x: e.x0 + e.dxdy*(yc-e.y0),
				z: e.z0 + e.dzdy*(yc-e.y0),
			})
			i++
		}

		if len(r.crossings) < 2 {
			continue
		}
		slices.SortFunc(r.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})
		for k := 0; k+1 < len(r.crossings); k += 2 {
			r.emitSpan(y, r.crossings[k], r.crossings[k+1], emit)
		}
	}
}

// collectEdges transforms the polygon to device space and builds the edge
// list. Returns the range of scanlines to visit (clamped to clip).
func (r *Rasterizer) collectEdges(pts []mgl64.Vec3) (yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true

	n := len(pts)
	if n < 3 {
		return 0, 0, false
	}
	for i := range n {
		r.addEdge(pts[i], pts[(i+1)%n])
	}
	if len(r.edges) == 0 {
		return 0, 0, false
	}

	// Clamp to clip bounds before converting to integers
	yMinF := max(math.Floor(r.edgeDevYMin), r.Clip.LLy)
	yMaxF := min(math.Ceil(r.edgeDevYMax), r.Clip.URy)
	if !(yMinF < yMaxF) { // also rejects NaN
		return 0, 0, false
	}
	return int(yMinF), int(yMaxF), true
}

// addEdge adds an edge from scene coordinates, transforming to device space.
func (r *Rasterizer) addEdge(p0, p1 mgl64.Vec3) {
	d0 := r.Project(p0)
	d1 := r.Project(p1)
	z0, z1 := p0[2], p1[2]

	// Skip horizontal edges
	dy := d1.Y - d0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	if dy < 0 {
		d0, d1 = d1, d0
		z0, z1 = z1, z0
		dy = -dy
	}

	r.edges = append(r.edges, edge{
		x0: d0.X, y0: d0.Y, z0: z0,
		x1: d1.X, y1: d1.Y, z1: z1,
		dxdy: (d1.X - d0.X) / dy,
		dzdy: (z1 - z0) / dy,
	})

	// Update vertical extent
	if r.edgeBBoxFirst {
		r.edgeDevYMin = d0.Y
		r.edgeDevYMax = d1.Y
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevYMin = min(r.edgeDevYMin, d0.Y)
		r.edgeDevYMax = max(r.edgeDevYMax, d1.Y)
	}
}

// emitSpan reports the pixels of row y whose centres lie in [left.x, right.x).
func (r *Rasterizer) emitSpan(y int, left, right crossing, emit func(y, xMin int, depth []float64)) {
	xStartF := max(math.Ceil(left.x-0.5), r.Clip.LLx)
	xEndF := min(math.Ceil(right.x-0.5), r.Clip.URx)
	if !(xStartF < xEndF) {
		return
	}
	xStart, xEnd := int(xStartF), int(xEndF)

	var dzdx float64
	if right.x > left.x {
		dzdx = (right.z - left.z) / (right.x - left.x)
	}

	n := xEnd - xStart
	r.depth = slices.Grow(r.depth[:0], n)[:n]
	for i := range r.depth {
		xc := float64(xStart+i) + 0.5
		r.depth[i] = left.z + (xc-left.x)*dzdx
	}
	emit(y, xStart, r.depth)
}

// Numerical tolerances for the rasterizer.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to take part in scan conversion. Edges with |y1 - y0| below this
	// threshold are skipped as horizontal.
	horizontalEdgeThreshold = 1e-10
)
