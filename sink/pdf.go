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

package sink

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes a greyscale proof of img as a single-page PDF file,
// one point per pixel. Horizontal runs of pixels with the same grey value
// are painted as a single rectangle.
func WritePDF(name string, img image.Image) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; images have the origin at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	for y := range h {
		x := 0
		for x < w {
			g := gray(img.At(b.Min.X+x, b.Min.Y+y))
			end := x + 1
			for end < w && gray(img.At(b.Min.X+end, b.Min.Y+y)) == g {
				end++
			}
			page.SetFillColor(pdfcolor.DeviceGray(float64(g) / 255))
			page.Rectangle(float64(x), float64(y), float64(end-x), 1)
			page.Fill()
			x = end
		}
	}

	return page.Close()
}

func gray(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
