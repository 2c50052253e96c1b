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

// Package raster implements the immutable RGBA bitmaps captured from the
// drawing surface.
package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
)

// Bitmap is a fixed-size image with non-premultiplied 8-bit RGBA channels.
//
// A Bitmap never changes after construction.  All constructors copy their
// input and all accessors return copies.
type Bitmap struct {
	w, h int
	pix  []uint8
}

var _ image.Image = (*Bitmap)(nil)

// New returns a w×h bitmap where every pixel is opaque white.
func New(w, h int) *Bitmap {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	pix := make([]uint8, 4*w*h)
	for i := range pix {
		pix[i] = 0xFF
	}
	return &Bitmap{w: w, h: h, pix: pix}
}

// FromImage copies img into a new bitmap.  The top-left corner of the image
// bounds becomes the origin of the bitmap.
func FromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, 4*w*h)

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[4*y*w:4*(y+1)*w], src.Pix[i:i+4*w])
		}
		return &Bitmap{w: w, h: h, pix: pix}
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
	return &Bitmap{w: w, h: h, pix: pix}
}

// FromPix copies raw pixel data, four bytes (R, G, B, A) per pixel in
// row-major order, into a new bitmap.
func FromPix(w, h int, pix []uint8) (*Bitmap, error) {
	if w < 0 || h < 0 {
		return nil, errors.New("negative bitmap size")
	}
	if len(pix) != 4*w*h {
		return nil, errors.New("pixel data does not match bitmap size")
	}
	return &Bitmap{w: w, h: h, pix: bytes.Clone(pix)}, nil
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int { return b.w }

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int { return b.h }

// Size returns the dimensions of the bitmap.
func (b *Bitmap) Size() image.Point { return image.Pt(b.w, b.h) }

// Pix returns a copy of the raw pixel data.
func (b *Bitmap) Pix() []uint8 { return bytes.Clone(b.pix) }

// NRGBAAt returns the color of the pixel at (x, y).
// Pixels outside the bitmap are transparent black.
func (b *Bitmap) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return color.NRGBA{}
	}
	i := 4 * (y*b.w + x)
	s := b.pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// ColorModel implements the [image.Image] interface.
func (b *Bitmap) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements the [image.Image] interface.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }

// At implements the [image.Image] interface.
func (b *Bitmap) At(x, y int) color.Color { return b.NRGBAAt(x, y) }

// IsBlank reports whether every pixel is white.  Only the red, green and
// blue channels are inspected; the alpha channel is ignored.
func (b *Bitmap) IsBlank() bool {
	for i := 0; i+3 < len(b.pix); i += 4 {
		if b.pix[i] != 0xFF || b.pix[i+1] != 0xFF || b.pix[i+2] != 0xFF {
			return false
		}
	}
	return true
}

// Equal reports whether two bitmaps have the same size and pixels.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.w == other.w && b.h == other.h && bytes.Equal(b.pix, other.pix)
}
