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

// Package stroke finds pen strokes in a bitmap.
//
// The bitmap is sampled on a regular grid.  The foreground samples are then
// chained into strokes by repeatedly walking to the closest unvisited
// sample, as long as that sample is closer than a distance threshold.
// The result depends only on the order of the samples, so the same bitmap
// always produces the same strokes.
package stroke

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/raster"
)

// Point is a location in raster pixel space.
type Point = vec.Vec2

// Stroke is a chain of sampled points.  The order is the order in which
// the clustering visited the points, not the order in which they were
// drawn.
type Stroke []Point

// Default values for the fields of [Options].
const (
	DefaultStep      = 5
	DefaultThreshold = 50.0
	DefaultCap       = 100
)

// Options controls stroke extraction.  The zero value of each field selects
// the corresponding default.
type Options struct {
	// Step is the sampling stride in pixels.
	Step int

	// Threshold is the distance below which two samples are joined.
	Threshold float64

	// Cap is the maximal number of points in a stroke.
	Cap int

	// IsForeground decides which samples belong to the drawing.
	// The default is [IsInk].
	IsForeground func(color.NRGBA) bool
}

func (opt *Options) withDefaults() Options {
	var res Options
	if opt != nil {
		res = *opt
	}
	if res.Step <= 0 {
		res.Step = DefaultStep
	}
	if res.Threshold == 0 {
		res.Threshold = DefaultThreshold
	}
	if res.Cap <= 0 {
		res.Cap = DefaultCap
	}
	if res.IsForeground == nil {
		res.IsForeground = IsInk
	}
	return res
}

// IsInk reports whether a pixel is dark and mostly opaque.
func IsInk(c color.NRGBA) bool {
	return c.R < 128 && c.A > 128
}

// Extract samples b and clusters the foreground samples into strokes.
// If opt is nil, default options are used.
func Extract(b *raster.Bitmap, opt *Options) []Stroke {
	o := opt.withDefaults()
	points := Sample(b, o.Step, o.IsForeground)
	strokes := Cluster(points, o.Threshold, o.Cap)

	handfont.Logger().Debug("strokes extracted",
		"samples", len(points), "strokes", len(strokes))
	return strokes
}

// Sample visits every step-th pixel in both directions, starting at the
// top-left corner, and returns the coordinates of the pixels for which fg
// returns true.  Points are returned row by row, from top to bottom, and
// from left to right within a row.  A step smaller than one is treated as
// one.
func Sample(b *raster.Bitmap, step int, fg func(color.NRGBA) bool) []Point {
	if step < 1 {
		step = 1
	}
	if fg == nil {
		fg = IsInk
	}

	var points []Point
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			if fg(b.NRGBAAt(x, y)) {
				points = append(points, Point{X: float64(x), Y: float64(y)})
			}
		}
	}
	return points
}

// Cluster partitions points into strokes.
//
// Each stroke starts at the first point not used so far.  The stroke then
// grows by appending the unused point closest to its last point, provided
// that the distance is strictly less than threshold and the stroke has
// fewer than maxLen points.  If several points are equally close, the one
// which comes first in points is used.  Strokes consisting of a single
// point are dropped.
func Cluster(points []Point, threshold float64, maxLen int) []Stroke {
	if !(threshold > 0) || maxLen < 2 || len(points) < 2 {
		return nil
	}

	idx := newGrid(points, threshold)
	visited := make([]bool, len(points))
	t2 := threshold * threshold

	var strokes []Stroke
	for seed := range points {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		current := points[seed]
		s := Stroke{current}

		for len(s) < maxLen {
			next, ok := idx.nearest(current, t2, visited)
			if !ok {
				break
			}
			visited[next] = true
			current = points[next]
			s = append(s, current)
		}

		if len(s) > 1 {
			strokes = append(strokes, s)
		}
	}
	return strokes
}

type cellKey struct {
	x, y int
}

// grid buckets point indices into square cells of side length size.
// Two points closer than size always lie in neighbouring cells.
type grid struct {
	points []Point
	size   float64
	cells  map[cellKey][]int
}

func newGrid(points []Point, size float64) *grid {
	g := &grid{
		points: points,
		size:   size,
		cells:  make(map[cellKey][]int),
	}
	for i, p := range points {
		k := g.key(p)
		g.cells[k] = append(g.cells[k], i)
	}
	return g
}

func (g *grid) key(p Point) cellKey {
	return cellKey{
		x: int(math.Floor(p.X / g.size)),
		y: int(math.Floor(p.Y / g.size)),
	}
}

// nearest returns the index of the unvisited point closest to p, among the
// points with squared distance less than maxDist2.  Ties go to the lowest
// index.
func (g *grid) nearest(p Point, maxDist2 float64, visited []bool) (int, bool) {
	center := g.key(p)
	best := -1
	bestDist2 := maxDist2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cell := g.cells[cellKey{center.x + dx, center.y + dy}]
			for _, j := range cell {
				if visited[j] {
					continue
				}
				d := g.points[j].Sub(p)
				d2 := d.X*d.X + d.Y*d.Y
				if d2 < bestDist2 || d2 == bestDist2 && best >= 0 && j < best {
					best = j
					bestDist2 = d2
				}
			}
		}
	}
	return best, best >= 0
}
