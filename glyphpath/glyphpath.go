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

// Package glyphpath converts strokes from raster pixel space into glyph
// outlines in font units.
//
// The outlines are open polylines.  No attempt is made to close them into
// fillable contours or to smooth them with curves.
package glyphpath

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handfont/stroke"
)

// Polyline is a sequence of connected points in font units.
type Polyline []vec.Vec2

// Path is the outline of a glyph: a sequence of open polylines.
// The empty path is valid and describes an empty glyph.
type Path []Polyline

// Pen receives the drawing commands of a path.
// [seehuhn.de/go/sfnt/cff.Glyph] implements this interface.
type Pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

// Build maps strokes from a bitmap of the given height into font units.
//
// The bitmap height is scaled to unitsPerEm and the y-axis is flipped, so
// that the raster point (x, y) becomes
//
//	(x·unitsPerEm/height, (height-y)·unitsPerEm/height).
//
// Every stroke with at least two points becomes one polyline.  Shorter
// strokes are skipped.
func Build(strokes []stroke.Stroke, height int, unitsPerEm float64) Path {
	if height <= 0 {
		return nil
	}
	scale := unitsPerEm / float64(height)
	h := float64(height)

	var res Path
	for _, s := range strokes {
		if len(s) <= 1 {
			continue
		}
		line := make(Polyline, len(s))
		for i, p := range s {
			line[i] = vec.Vec2{X: p.X * scale, Y: (h - p.Y) * scale}
		}
		res = append(res, line)
	}
	return res
}

// IsEmpty reports whether the path draws nothing.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// NumPoints returns the total number of points in all polylines.
func (p Path) NumPoints() int {
	n := 0
	for _, line := range p {
		n += len(line)
	}
	return n
}

// Iter returns the path as a sequence of drawing commands.  Each polyline
// starts with [path.CmdMoveTo] and continues with [path.CmdLineTo]
// commands.  Subpaths are never closed.
func (p Path) Iter() iter.Seq2[path.Command, []vec.Vec2] {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, line := range p {
			for i := range line {
				cmd := path.CmdLineTo
				if i == 0 {
					cmd = path.CmdMoveTo
				}
				if !yield(cmd, line[i:i+1]) {
					return
				}
			}
		}
	}
}

// DrawTo replays the path on pen.
func (p Path) DrawTo(pen Pen) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			pen.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			pen.LineTo(pts[0].X, pts[0].Y)
		}
	}
}

// BBox returns the smallest rectangle containing all points of the path.
// The zero rectangle is returned for empty paths.
func (p Path) BBox() rect.Rect {
	if p.NumPoints() == 0 {
		return rect.Rect{}
	}
	bbox := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, line := range p {
		for _, pt := range line {
			bbox.LLx = min(bbox.LLx, pt.X)
			bbox.LLy = min(bbox.LLy, pt.Y)
			bbox.URx = max(bbox.URx, pt.X)
			bbox.URy = max(bbox.URy, pt.Y)
		}
	}
	return bbox
}
