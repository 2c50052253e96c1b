// seehuhn.de/go/handfont - turn hand-drawn glyphs into fonts
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

// Package testbitmap generates small bitmaps for use in tests.
package testbitmap

import (
	"image"
	"image/color"

	"seehuhn.de/go/handfont/raster"
)

// Ink is the pen color used by the drawing surface.
var Ink = color.NRGBA{A: 0xFF}

// Dots returns a white w×h bitmap with the given pixels set to [Ink].
func Dots(w, h int, pts ...image.Point) *raster.Bitmap {
	img := white(w, h)
	for _, p := range pts {
		img.SetNRGBA(p.X, p.Y, Ink)
	}
	return raster.FromImage(img)
}

// Rect returns a white w×h bitmap with the rectangle r filled with c.
func Rect(w, h int, r image.Rectangle, c color.NRGBA) *raster.Bitmap {
	img := white(w, h)
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return raster.FromImage(img)
}

// HLine returns a white w×h bitmap with a one pixel high line of [Ink]
// from (x0, y) to (x1-1, y).
func HLine(w, h, y, x0, x1 int) *raster.Bitmap {
	return Rect(w, h, image.Rect(x0, y, x1, y+1), Ink)
}

func white(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return img
}
