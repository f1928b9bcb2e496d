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
	"fmt"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/anim/internal/imagetest"
	"seehuhn.de/go/anim/shade"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestCanvasOrientation(t *testing.T) {
	c := NewCanvas(10, 8)
	c.DrawLines([]mgl64.Vec3{{2, 3, 0}, {2, 3, 0}}, white)

	for y := range 8 {
		for x := range 10 {
			want := black
			if x == 2 && y == 8-1-3 {
				want = white
			}
			if got := c.Image.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestDepthOrder draws two overlapping triangles in both orders. The
// nearer triangle must win regardless of drawing order.
func TestDepthOrder(t *testing.T) {
	red := shade.Material{Red: shade.Coefficients{Ambient: 1}}
	blue := shade.Material{Blue: shade.Coefficients{Ambient: 1}}
	light := shade.Lighting{Ambient: mgl64.Vec3{255, 255, 255}, View: mgl64.Vec3{0, 0, 1}}

	near := []mgl64.Vec3{{0, 0, 5}, {15, 0, 5}, {0, 15, 5}}
	far := []mgl64.Vec3{{2, 2, -5}, {19, 2, 5.5}, {2, 19, -5}}

	a := NewCanvas(20, 20)
	a.DrawTriangles(near, &red, &light, false)
	a.DrawTriangles(far, &blue, &light, false)

	b := NewCanvas(20, 20)
	b.DrawTriangles(far, &blue, &light, false)
	b.DrawTriangles(near, &red, &light, false)

	if err := imagetest.Compare("DepthOrder", a.Image, b.Image); err != nil {
		t.Error(err)
	}

	// (3,3) is covered by both; the far triangle has depth < 5 there.
	if got := a.Image.RGBAAt(3, 20-1-3); got.R != 255 || got.B != 0 {
		t.Errorf("overlap pixel: got %v, want red", got)
	}
	// (17,3) lies outside the near triangle.
	if got := a.Image.RGBAAt(17, 20-1-3); got.B != 255 {
		t.Errorf("far-only pixel: got %v, want blue", got)
	}
}

func TestCulling(t *testing.T) {
	m := shade.DefaultMaterial()
	light := shade.DefaultLighting()

	ccw := []mgl64.Vec3{{1, 1, 0}, {8, 1, 0}, {1, 8, 0}}
	cw := []mgl64.Vec3{{1, 1, 0}, {1, 8, 0}, {8, 1, 0}}

	c := NewCanvas(10, 10)
	s := c.DrawTriangles(append(ccw, cw...), &m, &light, true)
	if s != (Stats{Drawn: 1, Culled: 1}) {
		t.Errorf("culling on: got %+v", s)
	}

	c = NewCanvas(10, 10)
	s = c.DrawTriangles(cw, &m, &light, false)
	if s != (Stats{Drawn: 1}) {
		t.Errorf("culling off: got %+v", s)
	}
	if got := c.Image.RGBAAt(2, 10-1-2); got == black {
		t.Error("back-facing triangle not drawn with culling off")
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(4, 3)
	m := shade.DefaultMaterial()
	light := shade.DefaultLighting()
	c.DrawTriangles([]mgl64.Vec3{{0, 0, 1}, {3, 0, 1}, {0, 2, 1}}, &m, &light, false)

	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	c.Clear(bg)
	for y := range 3 {
		for x := range 4 {
			if got := c.Image.RGBAAt(x, y); got != bg {
				t.Errorf("pixel (%d,%d): got %v", x, y, got)
			}
		}
	}
	for i, z := range c.Depth {
		if z > -1e300 {
			t.Errorf("depth %d not reset: %g", i, z)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 int
	}{
		{0, 0, 9, 4},
		{9, 4, 0, 0},
		{1, 8, 3, 0},
		{5, 5, 5, 1},
		{0, 6, 9, 6},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d_%d_%d_%d", tc.x0, tc.y0, tc.x1, tc.y1), func(t *testing.T) {
			const w, h = 10, 10
			c := NewCanvas(w, h)
			p0 := mgl64.Vec3{float64(tc.x0), float64(tc.y0), 0}
			p1 := mgl64.Vec3{float64(tc.x1), float64(tc.y1), 0}
			c.DrawLines([]mgl64.Vec3{p0, p1}, white)

			for _, p := range [][2]int{{tc.x0, tc.y0}, {tc.x1, tc.y1}} {
				if got := c.Image.RGBAAt(p[0], h-1-p[1]); got != white {
					t.Errorf("endpoint %v not drawn", p)
				}
			}

			want := max(abs(tc.x1-tc.x0), abs(tc.y1-tc.y0)) + 1
			if got := imagetest.CountColor(c.Image, white); got != want {
				t.Errorf("got %d pixels, want %d", got, want)
			}
		})
	}
}

func TestLineIgnoresDepth(t *testing.T) {
	c := NewCanvas(10, 10)
	m := shade.DefaultMaterial()
	light := shade.DefaultLighting()
	c.DrawTriangles([]mgl64.Vec3{{0, 0, 100}, {9, 0, 100}, {0, 9, 100}}, &m, &light, false)

	c.DrawLines([]mgl64.Vec3{{0, 1, -100}, {6, 1, -100}}, color.RGBA{G: 255, A: 255})
	if got := c.Image.RGBAAt(3, 10-1-1); got.G != 255 || got.R != 0 {
		t.Errorf("line hidden behind triangle: %v", got)
	}
}

func TestLineClipping(t *testing.T) {
	const w, h = 10, 10
	c := NewCanvas(w, h)
	c.DrawLines([]mgl64.Vec3{
		{-1e9, 5, 0}, {1e9, 5, 0}, // across the whole image
		{-50, -50, 0}, {-10, 40, 0}, // entirely outside
	}, white)

	for x := range w {
		if got := c.Image.RGBAAt(x, h-1-5); got != white {
			t.Errorf("pixel (%d,%d) not drawn", x, h-1-5)
		}
	}
	if got := imagetest.CountColor(c.Image, white); got != w {
		t.Errorf("got %d pixels, want %d", got, w)
	}
}

func TestThickLine(t *testing.T) {
	const w, h = 10, 10
	c := NewCanvas(w, h)
	c.LineWidth = 3
	c.DrawLines([]mgl64.Vec3{{2, 5, 0}, {8, 5, 0}}, white)

	for y := 2; y <= 8; y++ {
		want := y >= 4 && y <= 6
		got := c.Image.RGBAAt(5, h-1-y) == white
		if got != want {
			t.Errorf("pixel (5,%d): drawn=%t, want %t", y, got, want)
		}
	}
}
