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

package solid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MinResolution is the smallest tessellation resolution used for spheres
// and tori. Smaller values are raised to this.
const MinResolution = 3

// Box adds the 12 triangles of an axis-aligned box. The corner (x, y, z) is
// the top-left-front corner: the box extends w to the right, h downwards
// and d backwards, i.e. it spans [x, x+w] × [y-h, y] × [z-d, z].
func Box(b *Batch, x, y, z, w, h, d float64) {
	x0, x1 := x, x+w
	y0, y1 := y, y-h
	z0, z1 := z, z-d

	// corners, named by (left/right, top/bottom, front/back)
	ltf := mgl64.Vec3{x0, y0, z0}
	lbf := mgl64.Vec3{x0, y1, z0}
	rtf := mgl64.Vec3{x1, y0, z0}
	rbf := mgl64.Vec3{x1, y1, z0}
	ltb := mgl64.Vec3{x0, y0, z1}
	lbb := mgl64.Vec3{x0, y1, z1}
	rtb := mgl64.Vec3{x1, y0, z1}
	rbb := mgl64.Vec3{x1, y1, z1}

	// front
	b.AddTriangle(ltf, lbf, rbf)
	b.AddTriangle(ltf, rbf, rtf)
	// back
	b.AddTriangle(ltb, rbb, lbb)
	b.AddTriangle(ltb, rtb, rbb)
	// top
	b.AddTriangle(ltb, ltf, rtf)
	b.AddTriangle(ltb, rtf, rtb)
	// bottom
	b.AddTriangle(lbb, rbf, lbf)
	b.AddTriangle(lbb, rbb, rbf)
	// right
	b.AddTriangle(rtf, rbf, rbb)
	b.AddTriangle(rtf, rbb, rtb)
	// left
	b.AddTriangle(ltf, lbb, lbf)
	b.AddTriangle(ltf, ltb, lbb)
}

// Sphere adds a sphere of radius r centred at (cx, cy, cz).
//
// The surface is generated by rotating a half circle in the x-y plane
// about the x axis: n half circles, each sampled at n+1 points from pole
// to pole. Neighbouring half circles are joined by two triangles per step,
// except next to the poles where a single triangle is used.
func Sphere(b *Batch, cx, cy, cz, r float64, n int) {
	n = max(n, MinResolution)

	// grid point (i, j) is the j-th point on the i-th half circle
	stride := n + 1
	b.grid = b.grid[:0]
	for i := range n {
		sinPhi, cosPhi := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		for j := range stride {
			sinTheta, cosTheta := halfTurn(j, n)
			b.grid = append(b.grid, mgl64.Vec3{
				cx + r*cosTheta,
				cy + r*sinTheta*cosPhi,
				cz + r*sinTheta*sinPhi,
			})
		}
	}

	for i := range n {
		next := (i + 1) % n
		for j := range n {
			p00 := b.grid[i*stride+j]
			p01 := b.grid[i*stride+j+1]
			p10 := b.grid[next*stride+j]
			p11 := b.grid[next*stride+j+1]
			switch j {
			case 0:
				b.AddTriangle(p00, p01, p11)
			case n - 1:
				b.AddTriangle(p00, p01, p10)
			default:
				b.AddTriangle(p00, p01, p11)
				b.AddTriangle(p00, p11, p10)
			}
		}
	}
}

// halfTurn returns sin and cos of π·j/n, with exact values at both poles.
func halfTurn(j, n int) (sin, cos float64) {
	switch j {
	case 0:
		return 0, 1
	case n:
		return 0, -1
	}
	return math.Sincos(math.Pi * float64(j) / float64(n))
}

// Torus adds a torus centred at (cx, cy, cz), lying in the x-z plane.
// The tube has radius r0, and its centre line is a circle of radius r1.
// The surface is tessellated on an n×n grid.
func Torus(b *Batch, cx, cy, cz, r0, r1 float64, n int) {
	n = max(n, MinResolution)

	// grid point (i, j): i-th position around the axis, j-th around the tube
	b.grid = b.grid[:0]
	for i := range n {
		sinPhi, cosPhi := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		for j := range n {
			sinTheta, cosTheta := math.Sincos(2 * math.Pi * float64(j) / float64(n))
			ring := r0*cosTheta + r1
			b.grid = append(b.grid, mgl64.Vec3{
				cx + cosPhi*ring,
				cy + r0*sinTheta,
				cz - sinPhi*ring,
			})
		}
	}

	for i := range n {
		next := (i + 1) % n
		for j := range n {
			jn := (j + 1) % n
			p00 := b.grid[i*n+j]
			p01 := b.grid[i*n+jn]
			p10 := b.grid[next*n+j]
			p11 := b.grid[next*n+jn]
			b.AddTriangle(p00, p10, p11)
			b.AddTriangle(p00, p11, p01)
		}
	}
}

// Line adds the segment from (x0, y0, z0) to (x1, y1, z1).
func Line(b *Batch, x0, y0, z0, x1, y1, z1 float64) {
	b.AddEdge(mgl64.Vec3{x0, y0, z0}, mgl64.Vec3{x1, y1, z1})
}
