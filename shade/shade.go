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

// Package shade implements the lighting model: materials with ambient,
// diffuse and specular reflection coefficients, one ambient term and one
// light source, evaluated once per polygon (flat shading).
package shade

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Coefficients are the reflection coefficients of one colour channel.
// Each value is in the range [0, 1].
type Coefficients struct {
	Ambient  float64
	Diffuse  float64
	Specular float64
}

// Material describes how a surface reflects light, per colour channel.
type Material struct {
	Red, Green, Blue Coefficients
}

// DefaultMaterial returns the material used when a shape does not name one:
// a dull white.
func DefaultMaterial() Material {
	c := Coefficients{Ambient: 0.2, Diffuse: 0.5, Specular: 0.5}
	return Material{Red: c, Green: c, Blue: c}
}

func (m *Material) channel(k int) Coefficients {
	switch k {
	case 0:
		return m.Red
	case 1:
		return m.Green
	default:
		return m.Blue
	}
}

// Light is a single light source. Colour components are in the range
// [0, 255].
type Light struct {
	// Position is the location of a point light. For a directional light
	// it is the direction pointing towards the light.
	Position    mgl64.Vec3
	Directional bool

	Color mgl64.Vec3
}

// Lighting collects everything needed to shade a polygon besides its
// material and geometry.
type Lighting struct {
	Ambient mgl64.Vec3 // ambient light colour, components in [0, 255]
	Light   Light

	// View points from the scene towards the viewer.
	View mgl64.Vec3

	// SpecularExp is the exponent of the specular highlight.
	SpecularExp float64
}

// DefaultLighting returns a grey ambient term and a white light shining
// from the upper right front.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient: mgl64.Vec3{50, 50, 50},
		Light: Light{
			Position:    mgl64.Vec3{0.5, 0.75, 1},
			Directional: true,
			Color:       mgl64.Vec3{255, 255, 255},
		},
		View:        mgl64.Vec3{0, 0, 1},
		SpecularExp: 4,
	}
}

// Flat returns the colour of a polygon with normal n and centroid c.
// The normal does not need to be normalised. A zero normal only receives
// ambient light.
func (l *Lighting) Flat(m *Material, n, c mgl64.Vec3) color.RGBA {
	var diffuse, specular float64
	if n.Len() > 0 {
		n = n.Normalize()

		toLight := l.Light.Position
		if !l.Light.Directional {
			toLight = toLight.Sub(c)
		}
		var nl float64
		if toLight.Len() > 0 {
			toLight = toLight.Normalize()
			nl = n.Dot(toLight)
		}

		if nl > 0 {
			diffuse = nl
			r := n.Mul(2 * nl).Sub(toLight)
			if rv := r.Dot(unit(l.View)); rv > 0 {
				specular = math.Pow(rv, l.SpecularExp)
			}
		}
	}

	var out [3]uint8
	for k := range out {
		coef := m.channel(k)
		v := l.Ambient[k]*coef.Ambient +
			l.Light.Color[k]*coef.Diffuse*diffuse +
			l.Light.Color[k]*coef.Specular*specular
		out[k] = clamp255(v)
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 255}
}

func unit(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// clamp255 rounds v to the nearest displayable channel value.
func clamp255(v float64) uint8 {
	switch {
	case !(v > 0): // also catches NaN
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
