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

package shade

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

func TestFacingAway(t *testing.T) {
	l := DefaultLighting()
	m := DefaultMaterial()

	// only the ambient term remains: 50 * 0.2
	got := l.Flat(&m, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{})
	if got != gray(10) {
		t.Errorf("expected %v, got %v", gray(10), got)
	}
}

func TestHeadOn(t *testing.T) {
	l := DefaultLighting()
	l.Light.Position = mgl64.Vec3{0, 0, 1}

	// 10 + 127.5 diffuse + 127.5 specular, clamped
	m := DefaultMaterial()
	if got := l.Flat(&m, mgl64.Vec3{0, 0, 3}, mgl64.Vec3{}); got != gray(255) {
		t.Errorf("expected %v, got %v", gray(255), got)
	}

	// without specular reflection: 10 + 127.5
	m.Red.Specular, m.Green.Specular, m.Blue.Specular = 0, 0, 0
	if got := l.Flat(&m, mgl64.Vec3{0, 0, 3}, mgl64.Vec3{}); got != gray(138) {
		t.Errorf("expected %v, got %v", gray(138), got)
	}
}

func TestChannels(t *testing.T) {
	l := DefaultLighting()
	l.Light.Position = mgl64.Vec3{0, 0, 1}
	m := Material{
		Red:   Coefficients{Ambient: 1},
		Green: Coefficients{Diffuse: 0.4},
		Blue:  Coefficients{},
	}
	got := l.Flat(&m, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{})
	want := color.RGBA{R: 50, G: 102, B: 0, A: 255}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPointLight(t *testing.T) {
	l := DefaultLighting()
	l.Light = Light{Position: mgl64.Vec3{0, 0, 10}, Color: mgl64.Vec3{255, 255, 255}}
	m := Material{Red: Coefficients{Diffuse: 1}}

	// directly below the light the surface is lit fully
	below := l.Flat(&m, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 0})
	if below.R != 255 {
		t.Errorf("expected full red below the light, got %v", below)
	}

	// at a 45 degree angle the diffuse term drops to cos(45°)
	side := l.Flat(&m, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{10, 0, 0})
	if side.R != 180 {
		t.Errorf("expected red 180 at 45°, got %v", side)
	}
}

func TestDegenerateNormal(t *testing.T) {
	l := DefaultLighting()
	m := DefaultMaterial()
	if got := l.Flat(&m, mgl64.Vec3{}, mgl64.Vec3{}); got != gray(10) {
		t.Errorf("expected ambient only, got %v", got)
	}
}
