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

// Package imagetest has helpers for tests which compare rendered images.
package imagetest

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// DebugDir is where diff images are written when a comparison fails.
const DebugDir = "debug"

// Compare returns an error if the two images differ. On failure, a diff
// image called name.png is written to DebugDir.
func Compare(name string, expected, actual *image.RGBA) error {
	if expected.Bounds().Size() != actual.Bounds().Size() {
		return fmt.Errorf("size mismatch: %v vs %v", expected.Bounds(), actual.Bounds())
	}
	n := 0
	eb, ab := expected.Bounds(), actual.Bounds()
	for y := range eb.Dy() {
		for x := range eb.Dx() {
			if expected.RGBAAt(eb.Min.X+x, eb.Min.Y+y) != actual.RGBAAt(ab.Min.X+x, ab.Min.Y+y) {
				n++
			}
		}
	}
	if n > 0 {
		_ = WriteDiff(name, expected, actual)
		return fmt.Errorf("%d pixels differ", n)
	}
	return nil
}

// WriteDiff writes a 3-panel image to DebugDir: actual (left), the
// differing pixels in red (middle), expected (right).
func WriteDiff(name string, expected, actual *image.RGBA) (err error) {
	if err := os.MkdirAll(DebugDir, 0755); err != nil {
		return err
	}

	eb, ab := expected.Bounds(), actual.Bounds()
	w, h := eb.Dx(), eb.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			a := actual.RGBAAt(ab.Min.X+x, ab.Min.Y+y)
			e := expected.RGBAAt(eb.Min.X+x, eb.Min.Y+y)
			img.SetRGBA(x, y, a)
			if a != e {
				img.SetRGBA(x+w, y, color.RGBA{R: 255, A: 255})
			} else {
				img.SetRGBA(x+w, y, color.RGBA{A: 255})
			}
			img.SetRGBA(x+w*2, y, e)
		}
	}

	return Save(filepath.Join(DebugDir, name+".png"), img)
}

// Load reads a PNG file.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if img, ok := src.(*image.RGBA); ok {
		return img, nil
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img, nil
}

// Save writes img as a PNG file, creating the directory if needed.
func Save(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// CountColor returns the number of pixels of img with colour col.
func CountColor(img *image.RGBA, col color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == col {
				n++
			}
		}
	}
	return n
}
