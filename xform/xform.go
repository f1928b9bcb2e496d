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

// Package xform provides the 4x4 homogeneous matrices used to place
// geometry, and the transform stack that composes them.
//
// Matrices are [mgl64.Mat4] values. Points are treated as column vectors
// with homogeneous coordinate 1, so that applying Multiply(a, b) to a point
// is the same as applying b first and then a.
package xform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Identity returns the identity matrix.
func Identity() mgl64.Mat4 {
	return mgl64.Ident4()
}

// Translate returns a matrix which moves points by (dx, dy, dz).
func Translate(dx, dy, dz float64) mgl64.Mat4 {
	return mgl64.Translate3D(dx, dy, dz)
}

// Scale returns a matrix which scales points about the origin.
func Scale(sx, sy, sz float64) mgl64.Mat4 {
	return mgl64.Scale3D(sx, sy, sz)
}

// RotateX returns a rotation by theta radians about the x axis.
func RotateX(theta float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(theta)
}

// RotateY returns a rotation by theta radians about the y axis.
func RotateY(theta float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(theta)
}

// RotateZ returns a rotation by theta radians about the z axis.
func RotateZ(theta float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(theta)
}

// Rotate returns a rotation by theta radians about the given axis.
func Rotate(axis Axis, theta float64) mgl64.Mat4 {
	switch axis {
	case AxisX:
		return RotateX(theta)
	case AxisY:
		return RotateY(theta)
	default:
		return RotateZ(theta)
	}
}

// Multiply returns the product a·b.
func Multiply(a, b mgl64.Mat4) mgl64.Mat4 {
	return a.Mul4(b)
}

// Apply maps the point p through m.
func Apply(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// ApplyAll maps every point of pts through m, in place.
func ApplyAll(m mgl64.Mat4, pts []mgl64.Vec3) {
	for i, p := range pts {
		pts[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
}

// Axis names a coordinate axis for rotations.
type Axis int

// The three rotation axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis converts "x", "y" or "z" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadAxis, s)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}
