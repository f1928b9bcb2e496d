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
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/anim/xform"
)

func normal(p0, p1, p2 mgl64.Vec3) mgl64.Vec3 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

func centroid(p0, p1, p2 mgl64.Vec3) mgl64.Vec3 {
	return p0.Add(p1).Add(p2).Mul(1.0 / 3)
}

// checkOutward verifies that every triangle's normal points away from the
// surface reference point returned by inside.
func checkOutward(t *testing.T, b *Batch, inside func(c mgl64.Vec3) mgl64.Vec3) {
	t.Helper()
	for i := 0; i+2 < len(b.Points); i += 3 {
		p0, p1, p2 := b.Points[i], b.Points[i+1], b.Points[i+2]
		c := centroid(p0, p1, p2)
		if d := normal(p0, p1, p2).Dot(c.Sub(inside(c))); d <= 0 {
			t.Errorf("triangle %d faces inwards (dot %g): %v %v %v", i/3, d, p0, p1, p2)
			return
		}
	}
}

func TestBox(t *testing.T) {
	b := &Batch{}
	Box(b, 0, 0, 0, 10, 10, 10)

	if b.NumTriangles() != 12 {
		t.Fatalf("expected 12 triangles, got %d", b.NumTriangles())
	}
	for _, p := range b.Points {
		if p.X() < 0 || p.X() > 10 || p.Y() < -10 || p.Y() > 0 || p.Z() < -10 || p.Z() > 0 {
			t.Errorf("corner %v outside [0,10]×[-10,0]×[-10,0]", p)
		}
	}

	center := mgl64.Vec3{5, -5, -5}
	checkOutward(t, b, func(mgl64.Vec3) mgl64.Vec3 { return center })
}

func TestBoxIdentityRoundTrip(t *testing.T) {
	a := &Batch{}
	Box(a, 1.5, -2.25, 3.125, 7, 11, 13)

	b := &Batch{}
	Box(b, 1.5, -2.25, 3.125, 7, 11, 13)
	b.Transform(xform.Identity())

	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Errorf("point %d: expected %v, got %v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestSphere(t *testing.T) {
	const n = 12
	center := mgl64.Vec3{3, -4, 5}
	const r = 7.0

	b := &Batch{}
	Sphere(b, center[0], center[1], center[2], r, n)

	// two triangles per grid cell, one next to each pole
	want := n * (2*n - 2)
	if b.NumTriangles() != want {
		t.Fatalf("expected %d triangles, got %d", want, b.NumTriangles())
	}
	for _, p := range b.Points {
		if d := p.Sub(center).Len(); d < r-1e-9 || d > r+1e-9 {
			t.Errorf("point %v is %g from the centre, want %g", p, d, r)
		}
	}
	checkOutward(t, b, func(mgl64.Vec3) mgl64.Vec3 { return center })
}

func TestTorus(t *testing.T) {
	const n = 10
	center := mgl64.Vec3{0, 1, 2}
	const r0, r1 = 2.0, 6.0

	b := &Batch{}
	Torus(b, center[0], center[1], center[2], r0, r1, n)

	if b.NumTriangles() != 2*n*n {
		t.Fatalf("expected %d triangles, got %d", 2*n*n, b.NumTriangles())
	}

	// nearest point on the tube's centre line
	tube := func(c mgl64.Vec3) mgl64.Vec3 {
		d := c.Sub(center)
		d[1] = 0
		return center.Add(d.Normalize().Mul(r1))
	}
	for _, p := range b.Points {
		if d := p.Sub(tube(p)).Len(); d < r0-1e-9 || d > r0+1e-9 {
			t.Errorf("point %v is %g from the tube centre, want %g", p, d, r0)
		}
	}
	checkOutward(t, b, tube)
}

func TestLowResolution(t *testing.T) {
	b := &Batch{}
	Sphere(b, 0, 0, 0, 1, 0)
	if got, want := b.NumTriangles(), MinResolution*(2*MinResolution-2); got != want {
		t.Errorf("expected %d triangles, got %d", want, got)
	}
}

func TestAccumulate(t *testing.T) {
	b := &Batch{}
	Line(b, 0, 0, 0, 1, 2, 3)
	Line(b, 4, 5, 6, 7, 8, 9)
	if len(b.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(b.Points))
	}
	if b.Points[3] != (mgl64.Vec3{7, 8, 9}) {
		t.Errorf("unexpected endpoint %v", b.Points[3])
	}

	b.Reset()
	if len(b.Points) != 0 {
		t.Errorf("expected empty batch after Reset, got %d points", len(b.Points))
	}
}
