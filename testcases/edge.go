package testcases

import (
	"seehuhn.de/go/anim/command"
)

var edgeCases = []TestCase{
	// ========================================
	// Geometry outside the canvas
	// ========================================
	{
		Name: "outside",
		Commands: []command.Command{
			command.Box{X: 100, Y: 100, Z: 0, W: 20, H: 20, D: 20},
			command.Sphere{X: -50, Y: 30, Z: 0, R: 20},
			command.Line{X0: -10, Y0: -10, X1: -5, Y1: 80},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "partly_outside",
		Commands: []command.Command{
			command.Sphere{X: 0, Y: 0, Z: 0, R: 30, Material: "red"},
			command.Box{X: 50, Y: 80, Z: 0, W: 30, H: 30, D: 10},
			command.Line{X0: -20, Y0: 40, X1: 90, Y1: 50},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "huge",
		Commands: []command.Command{
			command.Box{X: -1e6, Y: 1e6, Z: 0, W: 2e6, H: 2e6, D: 10, Material: "matte"},
			command.Sphere{X: 32, Y: 32, Z: 20, R: 10},
		},
		Width:  64,
		Height: 64,
	},

	// ========================================
	// Small and degenerate geometry
	// ========================================
	{
		Name: "tiny",
		Commands: []command.Command{
			command.Sphere{X: 10.3, Y: 10.7, Z: 0, R: 0.4},
			command.Box{X: 30.2, Y: 30.9, Z: 0, W: 0.5, H: 0.5, D: 0.5},
			command.Torus{X: 50, Y: 50, Z: 0, R0: 0.2, R1: 0.6},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "flat_box",
		Commands: []command.Command{
			command.Box{X: 10, Y: 50, Z: 0, W: 40, H: 0, D: 20},
			command.Box{X: 10, Y: 40, Z: 0, W: 0, H: 20, D: 20},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "zero_scale",
		Commands: []command.Command{
			command.Scale{X: 0, Y: 0, Z: 0},
			command.Sphere{X: 32, Y: 32, Z: 0, R: 20},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "point_line",
		Commands: []command.Command{
			command.Line{X0: 20, Y0: 20, X1: 20, Y1: 20},
			command.Line{X0: 40.4, Y0: 40.6, X1: 40.4, Y1: 40.6},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "coplanar",
		Commands: []command.Command{
			command.Box{X: 10, Y: 54, Z: 0, W: 30, H: 30, D: 10, Material: "red"},
			command.Box{X: 24, Y: 40, Z: 0, W: 30, H: 30, D: 10, Material: "shiny"},
		},
		Width:  64,
		Height: 64,
	},
}
