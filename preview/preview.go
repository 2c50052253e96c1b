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

// Package preview renders sample text from the stored character drawings.
//
// Each stored drawing is scaled down into a square cell.  Characters
// without a drawing are shown as grey placeholder boxes, spaces leave a gap.
package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/raster"
)

// EmptyMessage is reported instead of an image when no characters have
// been drawn yet.
const EmptyMessage = "Draw some characters first!"

// Layout describes the geometry of the preview image.
type Layout struct {
	Width, Height int

	// CharWidth is the side length of a character cell.
	CharWidth int

	// Gutter is the extra horizontal space after every non-space character.
	Gutter int

	StartX    int
	BaselineY int

	// CellOffset is the distance from the top of a cell to the baseline.
	CellOffset int

	Placeholder color.NRGBA
	Background  color.NRGBA
}

// DefaultLayout is the layout used when a Composer has a zero Layout.
var DefaultLayout = Layout{
	Width:       600,
	Height:      100,
	CharWidth:   30,
	Gutter:      5,
	StartX:      10,
	BaselineY:   70,
	CellOffset:  25,
	Placeholder: color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
	Background:  color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// Source gives access to the stored character drawings.
// [*store.Store] implements this interface.
type Source interface {
	Get(r rune) (*raster.Bitmap, bool)
	Size() int
}

// CellKind tells what was drawn into a preview cell.
type CellKind int

// These are the possible cell kinds.
const (
	CellGlyph CellKind = iota
	CellPlaceholder
)

func (k CellKind) String() string {
	switch k {
	case CellGlyph:
		return "glyph"
	case CellPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Cell records the position of one character in the preview image.
type Cell struct {
	Char rune
	Kind CellKind
	Rect image.Rectangle
}

// Result is the outcome of [Composer.Compose].
type Result struct {
	// Image is the rendered preview.  This is nil if Message is set.
	Image *image.NRGBA

	Cells []Cell

	// Truncated is set if the text did not fit into the preview.
	Truncated bool

	Message string
}

// HasImage reports whether r contains a rendered preview.
func (r *Result) HasImage() bool {
	return r != nil && r.Image != nil
}

// Composer renders preview images.
type Composer struct {
	Layout Layout

	// Scaler is used to shrink the drawings into their cells.
	// If this is nil, [draw.BiLinear] is used.
	Scaler draw.Scaler
}

// Compose renders text using the drawings from src.
//
// The text is converted to Unicode normalization form NFC first and then
// laid out one code point at a time.  A base letter followed by a combining
// mark, like "e\u0301", therefore occupies a single cell for the composed
// character "é", rather than one cell per code point.
func (c *Composer) Compose(text string, src Source) *Result {
	if src.Size() == 0 {
		return &Result{Message: EmptyMessage}
	}

	l := c.Layout
	if l.Width <= 0 || l.Height <= 0 || l.CharWidth <= 0 {
		l = DefaultLayout
	}
	scaler := c.Scaler
	if scaler == nil {
		scaler = draw.BiLinear
	}

	img := image.NewNRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(l.Background), image.Point{}, draw.Src)
	placeholder := image.NewUniform(l.Placeholder)

	res := &Result{Image: img}
	x := l.StartX
	y := l.BaselineY - l.CellOffset
	runes := []rune(norm.NFC.String(text))
	for i, r := range runes {
		cell := image.Rect(x, y, x+l.CharWidth, y+l.CharWidth)
		if b, ok := src.Get(r); ok && b != nil {
			scaler.Scale(img, cell, b, b.Bounds(), draw.Over, nil)
			res.Cells = append(res.Cells, Cell{Char: r, Kind: CellGlyph, Rect: cell})
			x += l.CharWidth + l.Gutter
		} else if r == ' ' {
			x += l.CharWidth
		} else {
			draw.Draw(img, cell, placeholder, image.Point{}, draw.Src)
			res.Cells = append(res.Cells, Cell{Char: r, Kind: CellPlaceholder, Rect: cell})
			x += l.CharWidth + l.Gutter
		}

		if x > l.Width-l.CharWidth {
			res.Truncated = i < len(runes)-1
			break
		}
	}

	handfont.Logger().Debug("preview composed",
		"cells", len(res.Cells), "truncated", res.Truncated)
	return res
}
