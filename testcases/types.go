package testcases

import (
	"maps"
	"testing/fstest"

	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/shade"
	"seehuhn.de/go/anim/xform"
)

// TestCase defines a single reference scene.
type TestCase struct {
	Name      string            // lowercase a-z and _ only
	Commands  []command.Command // the scene
	Width     int               // canvas width in pixels
	Height    int               // canvas height in pixels
	LineWidth float64           // zero means one pixel wide lines
	Files     fstest.MapFS      // mesh files used by the scene (may be nil)
}

// Script returns the scene as a script, with all reference materials
// defined.
func (tc TestCase) Script() *command.Script {
	s := &command.Script{
		Commands: tc.Commands,
		Symbols:  command.NewSymbols(),
	}
	maps.Copy(s.Symbols.Materials, Materials)
	return s
}

// Materials are the named materials available to all reference scenes.
var Materials = map[string]shade.Material{
	"red": {
		Red:   shade.Coefficients{Ambient: 0.3, Diffuse: 0.8, Specular: 0.2},
		Green: shade.Coefficients{Ambient: 0.05, Diffuse: 0.1, Specular: 0.2},
		Blue:  shade.Coefficients{Ambient: 0.05, Diffuse: 0.1, Specular: 0.2},
	},
	"shiny": {
		Red:   shade.Coefficients{Ambient: 0.1, Diffuse: 0.3, Specular: 0.9},
		Green: shade.Coefficients{Ambient: 0.1, Diffuse: 0.3, Specular: 0.9},
		Blue:  shade.Coefficients{Ambient: 0.3, Diffuse: 0.6, Specular: 0.9},
	},
	"matte": {
		Red:   shade.Coefficients{Ambient: 0.4, Diffuse: 0.6, Specular: 0},
		Green: shade.Coefficients{Ambient: 0.4, Diffuse: 0.7, Specular: 0},
		Blue:  shade.Coefficients{Ambient: 0.2, Diffuse: 0.3, Specular: 0},
	},
}

// rotate is a helper to build a rotation without a knob.
func rotate(axis xform.Axis, degrees float64) command.Rotate {
	return command.Rotate{Axis: axis, Degrees: degrees}
}

// move is a helper to build a translation without a knob.
func move(x, y, z float64) command.Move {
	return command.Move{X: x, Y: y, Z: z}
}
