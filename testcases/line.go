package testcases

import (
	"math"

	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/xform"
)

var lineCases = []TestCase{
	{
		Name: "horizontal",
		Commands: []command.Command{
			command.Line{X0: 5, Y0: 32, X1: 59, Y1: 32},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "vertical",
		Commands: []command.Command{
			command.Line{X0: 32, Y0: 5, X1: 32, Y1: 59},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "diagonal",
		Commands: []command.Command{
			command.Line{X0: 5, Y0: 5, X1: 59, Y1: 59},
			command.Line{X0: 5, Y0: 59, X1: 59, Y1: 5},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "star",
		Commands: starLines(32, 32, 28, 12),
		Width:    64,
		Height:   64,
	},
	{
		Name:      "thick",
		Commands:  starLines(32, 32, 28, 6),
		Width:     64,
		Height:    64,
		LineWidth: 3,
	},
	{
		Name: "over_box",
		Commands: []command.Command{
			command.Box{X: 12, Y: 52, Z: 0, W: 40, H: 40, D: 40, Material: "red"},
			command.Line{X0: 0, Y0: 32, Z0: -100, X1: 63, Y1: 32, Z1: -100},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "rotated",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisY, 60),
			command.Line{X0: -25, X1: 25},
			command.Line{Y0: -25, Y1: 25},
		},
		Width:  64,
		Height: 64,
	},
}

// starLines builds n lines radiating from (cx, cy).
func starLines(cx, cy, r float64, n int) []command.Command {
	var res []command.Command
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		res = append(res, command.Line{
			X0: cx, Y0: cy,
			X1: cx + r*cos, Y1: cy + r*sin,
		})
	}
	return res
}
