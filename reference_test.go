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

package anim

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/anim/internal/imagetest"
	"seehuhn.de/go/anim/testcases"
)

var update = flag.Bool("update", false, "write reference images instead of comparing")

func renderCase(t *testing.T, tc testcases.TestCase) []*image.RGBA {
	t.Helper()
	opts := []Option{
		WithSize(tc.Width, tc.Height),
		WithLineWidth(tc.LineWidth),
	}
	if tc.Files != nil {
		opts = append(opts, WithFS(tc.Files))
	}
	mem, _ := render(t, tc.Script(), opts...)

	var res []*image.RGBA
	for _, f := range mem.Frames() {
		res = append(res, f.Image)
	}
	return res
}

// TestAgainstReference compares every image written for a reference scene
// with testdata/reference/<category>_<name>[_<index>].png. Run with -update
// to regenerate the reference images after an intended change.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				images := renderCase(t, tc)
				for i, img := range images {
					refName := name
					if len(images) > 1 {
						refName = fmt.Sprintf("%s_%d", name, i)
					}
					refPath := filepath.Join("testdata", "reference", refName+".png")

					if *update {
						if err := imagetest.Save(refPath, img); err != nil {
							t.Fatal(err)
						}
						continue
					}

					ref, err := imagetest.Load(refPath)
					if errors.Is(err, fs.ErrNotExist) {
						t.Skipf("no reference image %s (generate with -update)", refPath)
					} else if err != nil {
						t.Fatalf("loading reference: %v", err)
					}
					if err := imagetest.Compare(refName, ref, img); err != nil {
						t.Errorf("image %d: %v", i, err)
					}
				}
			})
		}
	}
}

func findCase(t *testing.T, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("no test case %s_%s", category, name)
	return testcases.TestCase{}
}

// TestEdgeScenes checks properties of the edge case scenes which hold
// independently of the exact pixel values.
func TestEdgeScenes(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	frame := func(t *testing.T, name string) *image.RGBA {
		t.Helper()
		images := renderCase(t, findCase(t, "edge", name))
		if len(images) != 1 {
			t.Fatalf("got %d images, want 1", len(images))
		}
		return images[0]
	}
	area := func(img *image.RGBA) int {
		return img.Rect.Dx() * img.Rect.Dy()
	}

	// nothing reaches the canvas
	for _, name := range []string{"outside", "zero_scale", "flat_box"} {
		t.Run(name, func(t *testing.T) {
			img := frame(t, name)
			if n := area(img) - imagetest.CountColor(img, black); n != 0 {
				t.Errorf("%d pixels drawn, want none", n)
			}
		})
	}

	t.Run("huge", func(t *testing.T) {
		img := frame(t, "huge")
		if n := imagetest.CountColor(img, black); n != 0 {
			t.Errorf("%d background pixels, want none", n)
		}
	})

	t.Run("partly_outside", func(t *testing.T) {
		img := frame(t, "partly_outside")
		// scene (5, 5) lies on the red sphere around the origin
		if c := img.RGBAAt(5, 58); c == black || c.R <= c.G {
			t.Errorf("sphere pixel has colour %v, want red", c)
		}
		// scene (60, 60) lies on the box which extends past the corner
		if c := img.RGBAAt(60, 3); c == black {
			t.Error("box missing")
		}
	})

	t.Run("tiny", func(t *testing.T) {
		img := frame(t, "tiny")
		if n := area(img) - imagetest.CountColor(img, black); n > 4 {
			t.Errorf("%d pixels drawn for sub-pixel shapes", n)
		}
	})

	t.Run("point_line", func(t *testing.T) {
		img := frame(t, "point_line")
		if n := imagetest.CountColor(img, white); n != 2 {
			t.Errorf("%d white pixels, want 2", n)
		}
		for _, p := range []image.Point{{20, 43}, {40, 22}} {
			if img.RGBAAt(p.X, p.Y) != white {
				t.Errorf("pixel %v not drawn", p)
			}
		}
	})

	t.Run("coplanar", func(t *testing.T) {
		img := frame(t, "coplanar")
		// In the overlap, the box drawn first wins the depth test.
		if c := img.RGBAAt(32, 31); c.R <= c.B || c.R <= c.G {
			t.Errorf("overlap has colour %v, want the red box", c)
		}
		if c := img.RGBAAt(45, 48); c.B <= c.R {
			t.Errorf("second box has colour %v, want the shiny box", c)
		}
	})
}
