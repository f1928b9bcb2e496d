package testcases

import (
	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/xform"
)

var animCases = []TestCase{
	{
		Name: "spin",
		Commands: []command.Command{
			command.Frames{N: 8},
			command.Basename{Name: "spin"},
			command.Vary{Knob: "turn", StartFrame: 0, EndFrame: 7, Start: 0, End: 1},
			move(32, 32, 0),
			command.Rotate{Axis: xform.AxisY, Degrees: 360, Knob: "turn"},
			command.Box{X: -12, Y: 12, Z: 12, W: 24, H: 24, D: 24, Material: "red"},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "slide",
		Commands: []command.Command{
			command.Frames{N: 6},
			command.Basename{Name: "slide"},
			command.Vary{Knob: "x", StartFrame: 0, EndFrame: 5, Start: 10, End: 54},
			command.Move{X: 1, Knob: "x"},
			command.Sphere{X: 0, Y: 32, Z: 0, R: 8},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "grow",
		Commands: []command.Command{
			command.Frames{N: 5},
			command.Basename{Name: "grow"},
			command.Vary{Knob: "size", StartFrame: 0, EndFrame: 4, Start: 0.2, End: 1},
			move(32, 32, 0),
			command.Scale{X: 1, Y: 1, Z: 1, Knob: "size"},
			command.Torus{R0: 5, R1: 18, Material: "shiny"},
		},
		Width:  64,
		Height: 64,
	},
	{
		// the knob scales position and size of the sphere alike
		Name: "shape_knob",
		Commands: []command.Command{
			command.Frames{N: 4},
			command.Basename{Name: "shape"},
			command.Vary{Knob: "k", StartFrame: 0, EndFrame: 3, Start: 0.25, End: 1},
			command.Sphere{X: 32, Y: 32, Z: 0, R: 20, Knob: "k"},
		},
		Width:  64,
		Height: 64,
	},
	{
		// a second vary command takes over part of the range
		Name: "two_phases",
		Commands: []command.Command{
			command.Frames{N: 6},
			command.Basename{Name: "phases"},
			command.Vary{Knob: "a", StartFrame: 0, EndFrame: 5, Start: 0, End: 90},
			command.Vary{Knob: "a", StartFrame: 3, EndFrame: 5, Start: 90, End: 0},
			command.Vary{Knob: "line", StartFrame: 0, EndFrame: 5, Start: 1, End: 2},
			move(32, 32, 0),
			command.Rotate{Axis: xform.AxisX, Degrees: 1, Knob: "a"},
			command.Box{X: -10, Y: 10, Z: 10, W: 20, H: 20, D: 20},
			command.Line{X0: -10, X1: 10, Knob: "line"},
		},
		Width:  64,
		Height: 64,
	},
}
