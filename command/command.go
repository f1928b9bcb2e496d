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

// Package command defines the scene description consumed by the renderer:
// an ordered list of commands together with a table of named materials.
//
// Every command kind is a separate struct type implementing [Command].
// For the optional references, the empty string means "none": a shape
// without a Material uses the symbol table's default material, a command
// without a Knob is not scaled.
package command

import (
	"errors"

	"seehuhn.de/go/anim/xform"
)

var (
	// ErrUnknownOp is returned when decoding an unknown operation name.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrArity indicates a command with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrArgType indicates an argument of the wrong type, for example a
	// string where a number is expected or a fractional frame number.
	ErrArgType = errors.New("invalid argument")

	// ErrUndefinedMaterial indicates a reference to a material which is
	// not in the symbol table.
	ErrUndefinedMaterial = errors.New("undefined material")

	// ErrBadAxis indicates an invalid rotation axis.
	ErrBadAxis = xform.ErrBadAxis
)

// Command is one step of a scene description.
type Command interface {
	isCommand()
}

// Box draws an axis-aligned box with its top-left-front corner at
// (X, Y, Z). The box extends W to the right, H downwards and D backwards.
type Box struct {
	X, Y, Z  float64
	W, H, D  float64
	Material string
	Knob     string
}

func (Box) isCommand() {}

// Sphere draws a sphere with centre (X, Y, Z) and radius R.
type Sphere struct {
	X, Y, Z  float64
	R        float64
	Material string
	Knob     string
}

func (Sphere) isCommand() {}

// Torus draws a torus around the y axis through (X, Y, Z). R0 is the
// radius of the tube, R1 the distance from the centre to the middle of
// the tube.
type Torus struct {
	X, Y, Z  float64
	R0, R1   float64
	Material string
	Knob     string
}

func (Torus) isCommand() {}

// Line draws an unshaded line segment.
type Line struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
	Knob       string
}

func (Line) isCommand() {}

// Mesh draws the triangles of a vertex/face file.
type Mesh struct {
	File     string
	Material string
	Knob     string
}

func (Mesh) isCommand() {}

// Move composes a translation onto the current coordinate system.
type Move struct {
	X, Y, Z float64
	Knob    string
}

func (Move) isCommand() {}

// Scale composes a scaling onto the current coordinate system.
type Scale struct {
	X, Y, Z float64
	Knob    string
}

func (Scale) isCommand() {}

// Rotate composes a rotation about a coordinate axis onto the current
// coordinate system. The angle is given in degrees.
type Rotate struct {
	Axis    xform.Axis
	Degrees float64
	Knob    string
}

func (Rotate) isCommand() {}

// Push saves a copy of the current coordinate system.
type Push struct{}

func (Push) isCommand() {}

// Pop restores the most recently saved coordinate system.
type Pop struct{}

func (Pop) isCommand() {}

// Display presents the current frame on screen.
type Display struct{}

func (Display) isCommand() {}

// Save writes the current frame to the named file.
type Save struct {
	Name string
}

func (Save) isCommand() {}

// Frames sets the number of frames of the animation.
type Frames struct {
	N int
}

func (Frames) isCommand() {}

// Basename sets the file name prefix for the frames of the animation.
type Basename struct {
	Name string
}

func (Basename) isCommand() {}

// Vary makes a knob change linearly from Start at StartFrame to End at
// EndFrame. Both frame numbers are inclusive.
type Vary struct {
	Knob       string
	StartFrame int
	EndFrame   int
	Start, End float64
}

func (Vary) isCommand() {}

// Op returns the operation name of a command, as used in the JSON format.
func Op(c Command) string {
	switch c.(type) {
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case Torus:
		return "torus"
	case Line:
		return "line"
	case Mesh:
		return "mesh"
	case Move:
		return "move"
	case Scale:
		return "scale"
	case Rotate:
		return "rotate"
	case Push:
		return "push"
	case Pop:
		return "pop"
	case Display:
		return "display"
	case Save:
		return "save"
	case Frames:
		return "frames"
	case Basename:
		return "basename"
	case Vary:
		return "vary"
	default:
		return "unknown"
	}
}

// KnobOf returns the knob which scales the arguments of c, or the empty
// string if the command is not scaled.
func KnobOf(c Command) string {
	switch c := c.(type) {
	case Box:
		return c.Knob
	case Sphere:
		return c.Knob
	case Torus:
		return c.Knob
	case Line:
		return c.Knob
	case Mesh:
		return c.Knob
	case Move:
		return c.Knob
	case Scale:
		return c.Knob
	case Rotate:
		return c.Knob
	default:
		return ""
	}
}

// MaterialOf returns the material reference of a shape command, or the
// empty string if there is none.
func MaterialOf(c Command) string {
	switch c := c.(type) {
	case Box:
		return c.Material
	case Sphere:
		return c.Material
	case Torus:
		return c.Material
	case Mesh:
		return c.Material
	default:
		return ""
	}
}
