package testcases

import (
	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/xform"
)

var solidCases = []TestCase{
	{
		Name: "box_front",
		Commands: []command.Command{
			command.Box{X: 12, Y: 52, Z: 0, W: 40, H: 40, D: 40},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "box_turned",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisX, 30),
			rotate(xform.AxisY, 30),
			command.Box{X: -15, Y: 15, Z: 15, W: 30, H: 30, D: 30, Material: "red"},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "sphere",
		Commands: []command.Command{
			command.Sphere{X: 32, Y: 32, Z: 0, R: 25},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "sphere_shiny",
		Commands: []command.Command{
			command.Sphere{X: 32, Y: 32, Z: 0, R: 25, Material: "shiny"},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "torus",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisX, 60),
			command.Torus{R0: 6, R1: 20, Material: "matte"},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "sphere_in_torus",
		Commands: []command.Command{
			move(50, 50, 0),
			command.Sphere{R: 22, Material: "red"},
			rotate(xform.AxisX, 75),
			command.Torus{R0: 5, R1: 35, Material: "shiny"},
		},
		Width:  100,
		Height: 100,
	},
	{
		Name: "overlap",
		Commands: []command.Command{
			command.Box{X: 10, Y: 54, Z: 0, W: 30, H: 30, D: 10, Material: "matte"},
			command.Sphere{X: 40, Y: 24, Z: -2, R: 18, Material: "red"},
		},
		Width:  64,
		Height: 64,
	},
}
