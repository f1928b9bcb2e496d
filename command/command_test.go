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

package command

import (
	"bytes"
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/anim/shade"
	"seehuhn.de/go/anim/xform"
)

const sample = `{
  "commands": [
    {"op": "frames", "args": [10]},
    {"op": "basename", "args": ["spin"]},
    {"op": "vary", "knob": "k", "args": [0, 9, 0, 1]},
    {"op": "push"},
    {"op": "rotate", "args": ["y", 360], "knob": "k"},
    {"op": "box", "args": [-50, 50, 50, 100, 100, 100], "constants": "shiny"},
    {"op": "sphere", "args": [0, 0, 0, 30]},
    {"op": "torus", "args": [0, 0, 0, 10, 60], "knob": "k"},
    {"op": "line", "args": [0, 0, 0, 100, 100, 0]},
    {"op": "mesh", "args": ["cube.obj"], "constants": "shiny"},
    {"op": "move", "args": [1, 2, 3]},
    {"op": "scale", "args": [2, 2, 2]},
    {"op": "pop"},
    {"op": "display"},
    {"op": "save", "args": ["out.png"]}
  ],
  "symbols": {
    "shiny": {"red": [0.1, 0.2, 0.9], "green": [0.1, 0.2, 0.9], "blue": [0.3, 0.4, 0.5]}
  }
}`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	want := []Command{
		Frames{N: 10},
		Basename{Name: "spin"},
		Vary{Knob: "k", StartFrame: 0, EndFrame: 9, Start: 0, End: 1},
		Push{},
		Rotate{Axis: xform.AxisY, Degrees: 360, Knob: "k"},
		Box{X: -50, Y: 50, Z: 50, W: 100, H: 100, D: 100, Material: "shiny"},
		Sphere{R: 30},
		Torus{R0: 10, R1: 60, Knob: "k"},
		Line{X1: 100, Y1: 100},
		Mesh{File: "cube.obj", Material: "shiny"},
		Move{X: 1, Y: 2, Z: 3},
		Scale{X: 2, Y: 2, Z: 2},
		Pop{},
		Display{},
		Save{Name: "out.png"},
	}
	if !slices.Equal(s.Commands, want) {
		t.Errorf("got %v\nwant %v", s.Commands, want)
	}

	shiny, err := s.Symbols.Lookup("shiny")
	if err != nil {
		t.Fatal(err)
	}
	if shiny.Blue != (shade.Coefficients{Ambient: 0.3, Diffuse: 0.4, Specular: 0.5}) {
		t.Errorf("wrong blue coefficients %v", shiny.Blue)
	}
	def, _ := s.Symbols.Lookup("")
	if def != shade.DefaultMaterial() {
		t.Errorf("wrong default material %v", def)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"unknown", `{"commands":[{"op":"cone","args":[1]}]}`, ErrUnknownOp},
		{"arity", `{"commands":[{"op":"box","args":[1,2,3]}]}`, ErrArity},
		{"pop args", `{"commands":[{"op":"pop","args":[1]}]}`, ErrArity},
		{"string for number", `{"commands":[{"op":"move","args":[1,"2",3]}]}`, ErrArgType},
		{"number for string", `{"commands":[{"op":"save","args":[7]}]}`, ErrArgType},
		{"fractional frames", `{"commands":[{"op":"frames","args":[2.5]}]}`, ErrArgType},
		{"empty save name", `{"commands":[{"op":"save","args":[""]}]}`, ErrArgType},
		{"vary without knob", `{"commands":[{"op":"vary","args":[0,1,0,1]}]}`, ErrArgType},
		{"material", `{"commands":[{"op":"sphere","args":[0,0,0,1],"constants":"gold"}]}`, ErrUndefinedMaterial},
		{"axis", `{"commands":[{"op":"rotate","args":["w",90]}]}`, ErrBadAxis},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.in))
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	s1, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := Encode(buf, s1); err != nil {
		t.Fatal(err)
	}
	s2, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(s1.Commands, s2.Commands) {
		t.Errorf("commands changed:\n%v\n%v", s1.Commands, s2.Commands)
	}
	if !maps.Equal(s1.Symbols.Materials, s2.Symbols.Materials) {
		t.Errorf("materials changed:\n%v\n%v", s1.Symbols.Materials, s2.Symbols.Materials)
	}
}

func TestValidate(t *testing.T) {
	s := &Script{Symbols: NewSymbols()}
	s.Commands = []Command{Sphere{R: 1}, Rotate{Axis: xform.Axis(7)}}
	if err := s.Validate(); !errors.Is(err, ErrBadAxis) {
		t.Errorf("got %v, want %v", err, ErrBadAxis)
	}

	s.Commands = []Command{Box{Material: "metal"}}
	if err := s.Validate(); !errors.Is(err, ErrUndefinedMaterial) {
		t.Errorf("got %v, want %v", err, ErrUndefinedMaterial)
	}
	s.Symbols.Materials["metal"] = shade.DefaultMaterial()
	if err := s.Validate(); err != nil {
		t.Error(err)
	}
}

func TestKnobOf(t *testing.T) {
	if k := KnobOf(Vary{Knob: "k"}); k != "" {
		t.Errorf("vary reports knob %q", k)
	}
	if k := KnobOf(Rotate{Knob: "spin"}); k != "spin" {
		t.Errorf("rotate reports knob %q", k)
	}
	if m := MaterialOf(Line{}); m != "" {
		t.Errorf("line reports material %q", m)
	}
}
