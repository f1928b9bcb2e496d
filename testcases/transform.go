package testcases

import (
	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/xform"
)

var transformCases = []TestCase{
	// ========================================
	// Scaling
	// ========================================
	{
		Name: "scale_2x",
		Commands: []command.Command{
			command.Scale{X: 2, Y: 2, Z: 2},
			command.Box{X: 6, Y: 26, Z: 0, W: 20, H: 20, D: 20},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "scale_half",
		Commands: []command.Command{
			command.Scale{X: 0.5, Y: 0.5, Z: 0.5},
			command.Sphere{X: 64, Y: 64, Z: 0, R: 40},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "scale_mirror",
		Commands: []command.Command{
			move(64, 0, 0),
			command.Scale{X: -1, Y: 1, Z: 1},
			command.Box{X: 8, Y: 40, Z: 0, W: 20, H: 30, D: 10, Material: "red"},
		},
		Width:  64,
		Height: 64,
	},

	// ========================================
	// Rotation
	// ========================================
	{
		Name: "rotate_x",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisX, 45),
			command.Box{X: -12, Y: 12, Z: 12, W: 24, H: 24, D: 24},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "rotate_y",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisY, 45),
			command.Box{X: -12, Y: 12, Z: 12, W: 24, H: 24, D: 24},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "rotate_z",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisZ, 45),
			command.Box{X: -12, Y: 12, Z: 12, W: 24, H: 24, D: 24},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "rotate_full_turn",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisZ, 360),
			command.Box{X: -12, Y: 12, Z: 12, W: 24, H: 24, D: 24},
		},
		Width:  64,
		Height: 64,
	},

	// ========================================
	// Composition
	// ========================================
	{
		Name: "move_rotate_scale",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisZ, 30),
			command.Scale{X: 1.5, Y: 0.75, Z: 1},
			command.Box{X: -10, Y: 10, Z: 10, W: 20, H: 20, D: 20, Material: "shiny"},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "scale_rotate_move",
		Commands: []command.Command{
			command.Scale{X: 1.5, Y: 0.75, Z: 1},
			rotate(xform.AxisZ, 30),
			move(32, 32, 0),
			command.Box{X: -10, Y: 10, Z: 10, W: 20, H: 20, D: 20, Material: "shiny"},
		},
		Width:  64,
		Height: 64,
	},
}
