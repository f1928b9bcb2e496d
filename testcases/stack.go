package testcases

import (
	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/xform"
)

var stackCases = []TestCase{
	{
		Name: "push_pop",
		Commands: []command.Command{
			command.Push{},
			move(40, 0, 0),
			command.Pop{},
			command.Box{X: 12, Y: 52, Z: 0, W: 20, H: 20, D: 20},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "siblings",
		Commands: []command.Command{
			move(32, 32, 0),
			command.Push{},
			move(-16, 0, 0),
			command.Sphere{R: 10, Material: "red"},
			command.Pop{},
			command.Push{},
			move(16, 0, 0),
			command.Sphere{R: 10, Material: "shiny"},
			command.Pop{},
			command.Box{X: -4, Y: 20, Z: 4, W: 8, H: 40, D: 8},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "robot",
		Commands: robot(),
		Width:    100,
		Height:   100,
	},
	{
		Name:     "nested",
		Commands: nested(6),
		Width:    100,
		Height:   100,
	},
}

// robot builds a figure from boxes and spheres using a hierarchy of
// coordinate systems.
func robot() []command.Command {
	return []command.Command{
		move(50, 50, 0),
		rotate(xform.AxisY, 20),
		command.Push{},
		// body
		command.Box{X: -15, Y: 20, Z: 10, W: 30, H: 35, D: 20, Material: "matte"},
		// head
		command.Push{},
		move(0, 30, 0),
		command.Sphere{R: 10, Material: "shiny"},
		command.Pop{},
		// left arm
		command.Push{},
		move(-15, 15, 0),
		rotate(xform.AxisZ, -30),
		command.Box{X: -20, Y: 4, Z: 4, W: 20, H: 8, D: 8, Material: "red"},
		command.Pop{},
		// right arm
		command.Push{},
		move(15, 15, 0),
		rotate(xform.AxisZ, 30),
		command.Box{X: 0, Y: 4, Z: 4, W: 20, H: 8, D: 8, Material: "red"},
		command.Pop{},
		// legs
		command.Push{},
		move(-8, -15, 0),
		command.Box{X: -5, Y: 0, Z: 5, W: 10, H: 30, D: 10},
		move(16, 0, 0),
		command.Box{X: -5, Y: 0, Z: 5, W: 10, H: 30, D: 10},
		command.Pop{},
		command.Pop{},
	}
}

// nested builds a chain of n cubes, each placed in the coordinate system
// of the previous one.
func nested(n int) []command.Command {
	res := []command.Command{move(20, 20, 0)}
	for range n {
		res = append(res,
			command.Push{},
			command.Box{X: -5, Y: 5, Z: 5, W: 10, H: 10, D: 10, Material: "shiny"},
			move(12, 8, 0),
			rotate(xform.AxisZ, 15),
			command.Scale{X: 0.95, Y: 0.95, Z: 0.95},
		)
	}
	for range n {
		res = append(res, command.Pop{})
	}
	return res
}
