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

// Package sink provides destinations for rendered frames: image files in
// several formats and an in-memory recorder for tests.
package sink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrFormat indicates an unsupported image format.
var ErrFormat = errors.New("unsupported image format")

// Files writes every frame to an image file. The format is chosen by the
// file name extension: ".png", ".bmp", ".tif", ".tiff" or ".pdf". Names
// without one of these extensions get the default extension appended.
// Missing directories are created.
//
// Files is safe for concurrent use, as long as different goroutines write
// different files.
type Files struct {
	// Format is the default format, without the leading dot.
	// The zero value selects PNG.
	Format string

	// Scale enlarges the images by an integer factor, using nearest
	// neighbour interpolation. Values up to 1 leave the size unchanged.
	Scale int
}

// WriteFrame implements the frame writer interface of the renderer.
func (f *Files) WriteFrame(name string, img *image.RGBA) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !known(ext) {
		def := f.Format
		if def == "" {
			def = "png"
		}
		ext = "." + strings.ToLower(def)
		if !known(ext) {
			return fmt.Errorf("%w %q", ErrFormat, def)
		}
		name += ext
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	var out image.Image = img
	if f.Scale > 1 {
		out = Enlarge(img, f.Scale)
	}

	if ext == ".pdf" {
		return WritePDF(name, out)
	}

	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = Encode(fd, ext, out)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return err
}

func known(ext string) bool {
	switch ext {
	case ".png", ".bmp", ".tif", ".tiff", ".pdf":
		return true
	}
	return false
}

// Encode writes img to w in the format given by the file name extension
// ext, which includes the leading dot. PDF output needs a file and is not
// supported here.
func Encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{
			Compression: tiff.Deflate,
			Predictor:   true,
		})
	}
	return fmt.Errorf("%w %q", ErrFormat, ext)
}

// Enlarge returns a copy of img, scaled up by the integer factor k.
func Enlarge(img image.Image, k int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*k, b.Dy()*k))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
