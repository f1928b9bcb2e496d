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

package luascene

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/anim"
	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/sink"
	"seehuhn.de/go/anim/xform"
)

func load(t *testing.T, src string) *command.Script {
	t.Helper()
	s, err := Load(context.Background(), strings.NewReader(src), "scene.lua")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoad(t *testing.T) {
	s := load(t, `
material("shiny", {red = {0.1, 0.2, 0.9}, green = {0.1, 0.2, 0.9}, blue = {0.3, 0.4, 0.5}})
frames(10)
basename("spin")
vary("k", 0, 9, 0, 1)
push()
rotate("y", 360, {knob = "k"})
box(-50, 50, 50, 100, 100, 100, {material = "shiny"})
sphere(0, 0, 0, 30)
torus(0, 0, 0, 10, 60, {knob = "k"})
line(0, 0, 0, 100, 100, 0)
mesh("cube.obj", {material = "shiny"})
move(1, 2, 3)
scale(2, 2, 2)
pop()
display()
save("out.png")
`)

	want := []command.Command{
		command.Frames{N: 10},
		command.Basename{Name: "spin"},
		command.Vary{Knob: "k", StartFrame: 0, EndFrame: 9, Start: 0, End: 1},
		command.Push{},
		command.Rotate{Axis: xform.AxisY, Degrees: 360, Knob: "k"},
		command.Box{X: -50, Y: 50, Z: 50, W: 100, H: 100, D: 100, Material: "shiny"},
		command.Sphere{R: 30},
		command.Torus{R0: 10, R1: 60, Knob: "k"},
		command.Line{X1: 100, Y1: 100},
		command.Mesh{File: "cube.obj", Material: "shiny"},
		command.Move{X: 1, Y: 2, Z: 3},
		command.Scale{X: 2, Y: 2, Z: 2},
		command.Pop{},
		command.Display{},
		command.Save{Name: "out.png"},
	}
	if !slices.Equal(s.Commands, want) {
		t.Errorf("commands:\n got %v\nwant %v", s.Commands, want)
	}

	shiny, ok := s.Symbols.Materials["shiny"]
	if !ok {
		t.Fatal("material shiny not defined")
	}
	if shiny.Red.Specular != 0.9 || shiny.Blue.Ambient != 0.3 {
		t.Errorf("wrong coefficients: %+v", shiny)
	}
}

func TestProcedural(t *testing.T) {
	s := load(t, `
for i = 0, 4 do
    sphere(20*i, 10, 0, 5 + i)
end
`)
	if len(s.Commands) != 5 {
		t.Fatalf("got %d commands, want 5", len(s.Commands))
	}
	for i, c := range s.Commands {
		want := command.Sphere{X: 20 * float64(i), Y: 10, R: 5 + float64(i)}
		if c != want {
			t.Errorf("command %d: got %v, want %v", i, c, want)
		}
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		msg  string
	}{
		{"arity", "\nbox(1, 2)", ErrScript, "scene.lua:2"},
		{"type", `move(1, "x", 3)`, ErrScript, "scene.lua:1"},
		{"axis", `rotate("w", 10)`, ErrScript, "scene.lua:1"},
		{"option", `sphere(0, 0, 0, 1, {colour = "red"})`, ErrScript, "colour"},
		{"coefficients", `material("m", {red = {1, 2}})`, ErrScript, "red"},
		{"syntax", `box(`, ErrScript, "scene.lua"},
		{"runtime", `error("boom")`, ErrScript, "boom"},
		{"no os", `os.exit(1)`, ErrScript, ""},
		{"no dofile", `dofile("other.lua")`, ErrScript, ""},
		{"no io", `io.write("x")`, ErrScript, ""},
		{"material", `sphere(0, 0, 0, 1, {material = "gold"})`, command.ErrUndefinedMaterial, "gold"},
		{"save name", `save("")`, command.ErrArgType, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(context.Background(), strings.NewReader(c.src), "scene.lua")
			if !errors.Is(err, c.err) {
				t.Fatalf("got error %v, want %v", err, c.err)
			}
			if !strings.Contains(err.Error(), c.msg) {
				t.Errorf("error %q does not mention %q", err, c.msg)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, strings.NewReader("while true do end"), "loop.lua")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

// TestMatchesJSON renders the same scene from a Lua script and from a
// JSON script and compares the frames.
func TestMatchesJSON(t *testing.T) {
	const jsonSrc = `{
  "commands": [
    {"op": "frames", "args": [3]},
    {"op": "basename", "args": ["cmp"]},
    {"op": "vary", "knob": "turn", "args": [0, 2, 0, 1]},
    {"op": "move", "args": [32, 32, 0]},
    {"op": "rotate", "args": ["x", 30]},
    {"op": "rotate", "args": ["y", 90], "knob": "turn"},
    {"op": "box", "args": [-12, 12, 12, 24, 24, 24], "constants": "red"},
    {"op": "push"},
    {"op": "move", "args": [0, 20, 0]},
    {"op": "sphere", "args": [0, 0, 0, 8]},
    {"op": "pop"},
    {"op": "line", "args": [-30, -30, 0, 30, -30, 0]}
  ],
  "symbols": {
    "red": {"red": [0.3, 0.8, 0.4], "green": [0.1, 0.1, 0.1], "blue": [0.1, 0.1, 0.1]}
  }
}`
	const luaSrc = `
material("red", {red = {0.3, 0.8, 0.4}, green = {0.1, 0.1, 0.1}, blue = {0.1, 0.1, 0.1}})
frames(3)
basename("cmp")
vary("turn", 0, 2, 0, 1)
move(32, 32, 0)
rotate("x", 30)
rotate("y", 90, {knob = "turn"})
box(-12, 12, 12, 24, 24, 24, {material = "red"})
push()
move(0, 20, 0)
sphere(0, 0, 0, 8)
pop()
line(-30, -30, 0, 30, -30, 0)
`
	fromJSON, err := command.Decode(strings.NewReader(jsonSrc))
	if err != nil {
		t.Fatal(err)
	}
	fromLua := load(t, luaSrc)

	if !slices.Equal(fromJSON.Commands, fromLua.Commands) {
		t.Fatalf("commands differ:\njson %v\n lua %v", fromJSON.Commands, fromLua.Commands)
	}
	if !maps.Equal(fromJSON.Symbols.Materials, fromLua.Symbols.Materials) {
		t.Fatalf("materials differ")
	}

	var frames [2][]sink.Frame
	for i, s := range []*command.Script{fromJSON, fromLua} {
		mem := &sink.Memory{}
		r := anim.New(anim.WithSize(64, 64), anim.WithWriter(mem))
		if _, err := r.Render(context.Background(), s); err != nil {
			t.Fatal(err)
		}
		frames[i] = mem.Frames()
	}
	if len(frames[0]) != 3 || len(frames[1]) != 3 {
		t.Fatalf("got %d and %d frames, want 3", len(frames[0]), len(frames[1]))
	}
	for i := range frames[0] {
		a, b := frames[0][i], frames[1][i]
		if a.Name != b.Name {
			t.Errorf("frame %d: names %q and %q", i, a.Name, b.Name)
		}
		if a.Image.Rect != b.Image.Rect || string(a.Image.Pix) != string(b.Image.Pix) {
			t.Errorf("frame %d: images differ", i)
		}
	}
}
