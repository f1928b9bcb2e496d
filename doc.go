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

// Package anim renders animated 3D scenes in software.
//
// A scene is a [command.Script]: a list of commands which build geometry
// (boxes, spheres, tori, lines and polygon meshes), manipulate a stack of
// coordinate transforms, and save or display the image. Commands can be
// scaled by knobs, named parameters which vary linearly over a range of
// frames. Every frame is rendered from scratch with a scanline
// rasterizer, a depth buffer and flat shading.
//
// Frames are independent and can be rendered concurrently, see
// [WithWorkers].
package anim

//go:generate go run ./testcases/export
//go:generate go test -run TestAgainstReference -update .
