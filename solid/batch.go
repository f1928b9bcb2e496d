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

// Package solid generates triangle and line geometry for the basic shapes:
// boxes, spheres, tori and line segments.
//
// Generators append to a caller supplied [Batch], so that repeated calls
// accumulate. All triangles are wound counter-clockwise when seen from
// outside the solid, so that (p1-p0)×(p2-p0) is the outward normal.
package solid

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/anim/xform"
)

// Batch is a transient list of points. Triangle batches hold the corners of
// each triangle in groups of three, line batches hold segment endpoints in
// groups of two.
type Batch struct {
	Points []mgl64.Vec3

	grid []mgl64.Vec3 // scratch space for parametric surfaces
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.Points = b.Points[:0]
}

// AddTriangle appends one triangle.
func (b *Batch) AddTriangle(p0, p1, p2 mgl64.Vec3) {
	b.Points = append(b.Points, p0, p1, p2)
}

// AddEdge appends one line segment.
func (b *Batch) AddEdge(p0, p1 mgl64.Vec3) {
	b.Points = append(b.Points, p0, p1)
}

// Transform maps every point of the batch through m, in place.
func (b *Batch) Transform(m mgl64.Mat4) {
	xform.ApplyAll(m, b.Points)
}

// NumTriangles returns the number of complete triangles in the batch.
func (b *Batch) NumTriangles() int {
	return len(b.Points) / 3
}
