package testcases

import (
	"testing/fstest"

	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/xform"
)

// cube is a unit cube made of quads, centred on the origin.
const cube = `# unit cube
v -0.5 -0.5  0.5
v  0.5 -0.5  0.5
v  0.5  0.5  0.5
v -0.5  0.5  0.5
v -0.5 -0.5 -0.5
v  0.5 -0.5 -0.5
v  0.5  0.5 -0.5
v -0.5  0.5 -0.5
f 1 2 3 4
f 6 5 8 7
f 4 3 7 8
f 5 6 2 1
f 2 6 7 3
f 5 1 4 8
`

// pyramid uses triangles, OBJ style face tokens and contains records
// which are skipped.
const pyramid = `o pyramid
v 0 1 0
v -1 -1 1
v 1 -1 1
v 1 -1 -1
v -1 -1 -1
vn 0 1 0
f 1/1/1 2/2/1 3/3/1
f 1//1 3//1 4//1
f 1 4 5
f 1 5 2
f 2 5 4 3
f 1 2
f 1 2 9
v 1 2
`

var meshFiles = fstest.MapFS{
	"cube.obj":    {Data: []byte(cube)},
	"pyramid.obj": {Data: []byte(pyramid)},
}

var meshCases = []TestCase{
	{
		Name: "cube",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisX, 25),
			rotate(xform.AxisY, 35),
			command.Scale{X: 30, Y: 30, Z: 30},
			command.Mesh{File: "cube.obj", Material: "red"},
		},
		Width:  64,
		Height: 64,
		Files:  meshFiles,
	},
	{
		Name: "pyramid",
		Commands: []command.Command{
			move(32, 32, 0),
			rotate(xform.AxisX, 20),
			rotate(xform.AxisY, 30),
			command.Scale{X: 20, Y: 20, Z: 20},
			command.Mesh{File: "pyramid.obj", Material: "shiny"},
		},
		Width:  64,
		Height: 64,
		Files:  meshFiles,
	},
	{
		Name: "two_meshes",
		Commands: []command.Command{
			command.Push{},
			move(20, 32, 0),
			command.Scale{X: 16, Y: 16, Z: 16},
			command.Mesh{File: "cube.obj"},
			command.Pop{},
			move(44, 32, 0),
			command.Scale{X: 12, Y: 12, Z: 12},
			command.Mesh{File: "pyramid.obj", Material: "matte"},
			command.Mesh{File: "cube.obj", Material: "red"},
		},
		Width:  64,
		Height: 64,
		Files:  meshFiles,
	},
}
