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
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/vec"
)

// DrawLines draws the segments in pts, two points per segment, in the
// given colour. Lines are neither shaded nor depth tested.
//
// A trailing point without a partner is ignored.
func (c *Canvas) DrawLines(pts []mgl64.Vec3, col color.RGBA) {
	for i := 0; i+1 < len(pts); i += 2 {
		if c.LineWidth > 1 {
			c.thickLine(pts[i], pts[i+1], col)
		} else {
			c.thinLine(pts[i], pts[i+1], col)
		}
	}
}

// thinLine draws a one pixel wide line using Bresenham's algorithm.
func (c *Canvas) thinLine(p0, p1 mgl64.Vec3, col color.RGBA) {
	a := c.r.Project(p0)
	b := c.r.Project(p1)

	// Keep the integer walk short for segments which reach far outside
	// the image.
	lo := vec.Vec2{X: -1, Y: -1}
	hi := vec.Vec2{X: float64(c.Width()) + 1, Y: float64(c.Height()) + 1}
	if outside(a, lo, hi) || outside(b, lo, hi) {
		var ok bool
		a, b, ok = clipSegment(a, b, lo, hi)
		if !ok {
			return
		}
	}

	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// thickLine draws a line of width c.LineWidth as a filled quadrilateral.
// Zero-length segments are drawn as a single dot.
func (c *Canvas) thickLine(p0, p1 mgl64.Vec3, col color.RGBA) {
	d := vec.Vec2{X: p1[0] - p0[0], Y: p1[1] - p0[1]}
	length := d.Length()
	if !(length > zeroLengthThreshold) {
		c.thinLine(p0, p0, col)
		return
	}
	t := d.Mul(c.LineWidth / 2 / length)
	n := mgl64.Vec3{-t.Y, t.X, 0}

	c.paint = col
	c.corners[0] = p0.Add(n)
	c.corners[1] = p1.Add(n)
	c.corners[2] = p1.Sub(n)
	c.corners[3] = p0.Sub(n)
	c.r.FillPolygon(c.corners[:], c.plotFlat)
}

func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	c.Image.SetRGBA(x, y, col)
}

func outside(p, lo, hi vec.Vec2) bool {
	return !(p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y)
}

// clipSegment clips the segment from a to b to the rectangle [lo, hi],
// using the Liang-Barsky algorithm. The last return value is false if
// nothing of the segment remains.
func clipSegment(a, b, lo, hi vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
		return true
	}
	if !clip(-d.X, a.X-lo.X) || !clip(d.X, hi.X-a.X) ||
		!clip(-d.Y, a.Y-lo.Y) || !clip(d.Y, hi.Y-a.Y) {
		return a, b, false
	}
	if !(t0 <= t1) { // also rejects NaN
		return a, b, false
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// zeroLengthThreshold is the length below which a line segment is
// treated as a point.
const zeroLengthThreshold = 1e-10
