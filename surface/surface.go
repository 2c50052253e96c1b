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

// Package surface implements the canvas on which characters are drawn.
//
// A Surface starts out white.  The pen paints black lines with round caps
// and joins; the eraser clears a square around the pointer to transparent
// black.  Erased pixels are therefore not white, and a surface which has been
// touched by the eraser is never blank.
package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/raster"
)

// Tool selects what happens when the pointer moves during a stroke.
type Tool int

// These are the available tools.
const (
	Pen Tool = iota
	Eraser
)

func (t Tool) String() string {
	switch t {
	case Pen:
		return "pen"
	case Eraser:
		return "eraser"
	default:
		return "unknown tool"
	}
}

// DefaultBrushSize is the brush size of a new surface.
const DefaultBrushSize = 5

var (
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ink   = image.NewUniform(color.NRGBA{A: 0xFF})
)

// Surface is a fixed-size drawing canvas.
// A Surface is not safe for concurrent use.
type Surface struct {
	img   *image.NRGBA
	tool  Tool
	brush int

	drawing bool
	last    [2]float64

	z *vector.Rasterizer
}

// New returns a white surface of the given size.
func New(w, h int) *Surface {
	s := &Surface{
		img:   image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		brush: DefaultBrushSize,
	}
	s.Clear()
	return s
}

// Size returns the dimensions of the surface.
func (s *Surface) Size() image.Point {
	return s.img.Rect.Size()
}

// SetTool selects the tool used for the following strokes.
func (s *Surface) SetTool(t Tool) {
	s.tool = t
}

// Tool returns the currently selected tool.
func (s *Surface) Tool() Tool {
	return s.tool
}

// SetBrushSize sets the pen width and the eraser radius.
// Values smaller than 1 are replaced by 1.
func (s *Surface) SetBrushSize(size int) {
	s.brush = max(size, 1)
}

// BrushSize returns the current brush size.
func (s *Surface) BrushSize() int {
	return s.brush
}

// BeginStroke starts a new stroke at (x, y).
// Nothing is drawn until the pointer moves.
func (s *Surface) BeginStroke(x, y float64) {
	s.drawing = true
	s.last = [2]float64{x, y}
}

// MoveTo continues the current stroke to (x, y).
// If no stroke is active, MoveTo does nothing.
func (s *Surface) MoveTo(x, y float64) {
	if !s.drawing {
		return
	}

	switch s.tool {
	case Pen:
		s.line(s.last[0], s.last[1], x, y)
	case Eraser:
		b := float64(s.brush)
		s.erase(x-b, y-b, 2*b, 2*b)
	}
	s.last = [2]float64{x, y}
}

// EndStroke finishes the current stroke.
func (s *Surface) EndStroke() {
	s.drawing = false
}

// Clear fills the surface with white.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(white), image.Point{}, draw.Src)
}

// Load replaces the contents of the surface with b.
func (s *Surface) Load(b *raster.Bitmap) error {
	if b.Size() != s.Size() {
		return &handfont.SizeMismatchError{Want: s.Size(), Got: b.Size()}
	}
	copy(s.img.Pix, b.Pix())
	return nil
}

// Paste draws img on top of the current contents, scaled to cover the
// whole surface.
func (s *Surface) Paste(img image.Image) {
	sr := img.Bounds()
	if sr.Size() == s.Size() {
		draw.Draw(s.img, s.img.Rect, img, sr.Min, draw.Over)
		return
	}
	draw.BiLinear.Scale(s.img, s.img.Rect, img, sr, draw.Over, nil)
}

// Bitmap returns a snapshot of the current contents.
func (s *Surface) Bitmap() *raster.Bitmap {
	return raster.FromImage(s.img)
}

// IsDrawn reports whether any pixel of the surface differs from white.
func (s *Surface) IsDrawn() bool {
	return !s.Bitmap().IsBlank()
}

// line paints a segment of width s.brush with round ends.
func (s *Surface) line(x0, y0, x1, y1 float64) {
	r := float64(s.brush) / 2

	dx, dy := x1-x0, y1-y0
	if d := math.Hypot(dx, dy); d > 0 {
		nx, ny := -dy/d*r, dx/d*r
		z := s.rasterizer()
		z.MoveTo(float32(x0+nx), float32(y0+ny))
		z.LineTo(float32(x1+nx), float32(y1+ny))
		z.LineTo(float32(x1-nx), float32(y1-ny))
		z.LineTo(float32(x0-nx), float32(y0-ny))
		z.ClosePath()
		z.Draw(s.img, s.img.Rect, ink, image.Point{})
	}

	s.dot(x0, y0, r)
	s.dot(x1, y1, r)
}

// dot paints a filled circle.
func (s *Surface) dot(x, y, r float64) {
	// control point distance for approximating a quarter circle by a
	// cubic Bézier curve
	const k = 0.5522847498307936
	c := r * k

	z := s.rasterizer()
	z.MoveTo(float32(x+r), float32(y))
	z.CubeTo(float32(x+r), float32(y+c), float32(x+c), float32(y+r), float32(x), float32(y+r))
	z.CubeTo(float32(x-c), float32(y+r), float32(x-r), float32(y+c), float32(x-r), float32(y))
	z.CubeTo(float32(x-r), float32(y-c), float32(x-c), float32(y-r), float32(x), float32(y-r))
	z.CubeTo(float32(x+c), float32(y-r), float32(x+r), float32(y-c), float32(x+r), float32(y))
	z.ClosePath()
	z.Draw(s.img, s.img.Rect, ink, image.Point{})
}

// erase sets the pixels of the given rectangle to transparent black.
// The corners are rounded to the nearest pixel boundary.
func (s *Surface) erase(x, y, w, h float64) {
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Intersect(s.img.Rect)
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// rasterizer returns a cleared rasterizer for the surface.
func (s *Surface) rasterizer() *vector.Rasterizer {
	size := s.Size()
	if s.z == nil {
		s.z = vector.NewRasterizer(size.X, size.Y)
	} else {
		s.z.Reset(size.X, size.Y)
	}
	return s.z
}
