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

package stroke

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/handfont/internal/testbitmap"
	"seehuhn.de/go/handfont/raster"
)

// clusterBrute is the quadratic reference version of Cluster.
func clusterBrute(points []Point, threshold float64, maxLen int) []Stroke {
	visited := make([]bool, len(points))
	var strokes []Stroke
	for i := range points {
		if visited[i] {
			continue
		}
		visited[i] = true
		current := points[i]
		s := Stroke{current}
		for len(s) < maxLen {
			nearest := -1
			nearestDist := threshold * threshold
			for j, p := range points {
				if visited[j] {
					continue
				}
				dx, dy := p.X-current.X, p.Y-current.Y
				dist := dx*dx + dy*dy
				if dist < nearestDist {
					nearest = j
					nearestDist = dist
				}
			}
			if nearest < 0 {
				break
			}
			visited[nearest] = true
			current = points[nearest]
			s = append(s, current)
		}
		if len(s) > 1 {
			strokes = append(strokes, s)
		}
	}
	return strokes
}

func TestIsInk(t *testing.T) {
	cases := []struct {
		c    color.NRGBA
		want bool
	}{
		{color.NRGBA{0, 0, 0, 255}, true},
		{color.NRGBA{127, 255, 255, 129}, true},
		{color.NRGBA{128, 0, 0, 255}, false},
		{color.NRGBA{0, 0, 0, 128}, false},
		{color.NRGBA{0, 0, 0, 0}, false},
		{color.NRGBA{255, 255, 255, 255}, false},
	}
	for _, test := range cases {
		if got := IsInk(test.c); got != test.want {
			t.Errorf("IsInk(%v) = %t, want %t", test.c, got, test.want)
		}
	}
}

func TestSample(t *testing.T) {
	b := testbitmap.Dots(12, 12,
		image.Pt(10, 5), image.Pt(5, 0), image.Pt(0, 0), image.Pt(3, 3), image.Pt(0, 10))
	got := Sample(b, 5, nil)
	want := []Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 10}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong samples (-want +got):\n%s", d)
	}

	// stride one sees every pixel
	got = Sample(b, 0, nil)
	if len(got) != 5 {
		t.Errorf("got %d samples at stride 1, want 5", len(got))
	}
}

func TestSampleCustomForeground(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	b := testbitmap.Rect(10, 10, image.Rect(0, 0, 10, 1), red)

	if got := Sample(b, 5, IsInk); len(got) != 0 {
		t.Errorf("red pixels counted as ink: %v", got)
	}
	isRed := func(c color.NRGBA) bool { return c.R > 200 && c.G < 50 }
	if got := Sample(b, 5, isRed); len(got) != 2 {
		t.Errorf("got %d red samples, want 2", len(got))
	}
}

func TestThresholdIsStrict(t *testing.T) {
	at := []Point{{X: 0, Y: 0}, {X: 30, Y: 40}} // distance 50
	if got := Cluster(at, 50, 100); len(got) != 0 {
		t.Errorf("points at the threshold were joined: %v", got)
	}

	below := []Point{{X: 0, Y: 0}, {X: 50 - 1e-9, Y: 0}}
	got := Cluster(below, 50, 100)
	if len(got) != 1 || len(got[0]) != 2 {
		t.Errorf("points below the threshold were not joined: %v", got)
	}
}

func TestCap(t *testing.T) {
	var points []Point
	for x := 0; x < 250; x++ {
		points = append(points, Point{X: float64(x)})
	}
	strokes := Cluster(points, 50, 100)

	var lengths []int
	for _, s := range strokes {
		lengths = append(lengths, len(s))
	}
	if d := cmp.Diff([]int{100, 100, 50}, lengths); d != "" {
		t.Errorf("wrong stroke lengths (-want +got):\n%s", d)
	}
	if strokes[1][0].X != 100 {
		t.Errorf("second stroke starts at %v", strokes[1][0])
	}
}

func TestTieBreak(t *testing.T) {
	cases := [][]Point{
		{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
	}
	for _, points := range cases {
		got := Cluster(points, 50, 100)
		want := []Stroke{Stroke(points)}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("wrong tie-break (-want +got):\n%s", d)
		}
	}
}

func TestIsolatedPointsDropped(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0}, {X: 10, Y: 0},
		{X: 500, Y: 500},
		{X: 1000, Y: 0}, {X: 1000, Y: 5}, {X: 1000, Y: 10},
	}
	got := Cluster(points, 50, 100)
	want := []Stroke{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 1000, Y: 0}, {X: 1000, Y: 5}, {X: 1000, Y: 10}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong strokes (-want +got):\n%s", d)
	}
}

func TestClusterDegenerate(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if got := Cluster(nil, 50, 100); got != nil {
		t.Errorf("empty input gave %v", got)
	}
	if got := Cluster(points[:1], 50, 100); got != nil {
		t.Errorf("single point gave %v", got)
	}
	if got := Cluster(points, 0, 100); got != nil {
		t.Errorf("zero threshold gave %v", got)
	}
	if got := Cluster(points, 50, 1); got != nil {
		t.Errorf("cap 1 gave %v", got)
	}
}

func TestClusterMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		n := rng.IntN(300)
		points := make([]Point, n)
		for i := range points {
			// coordinates on a 5 pixel lattice produce many ties
			points[i] = Point{
				X: float64(5 * rng.IntN(60)),
				Y: float64(5 * rng.IntN(60)),
			}
		}
		threshold := []float64{7.5, 12, 50}[round%3]
		maxLen := 2 + rng.IntN(120)

		got := Cluster(points, threshold, maxLen)
		want := clusterBrute(points, threshold, maxLen)
		if d := cmp.Diff(want, got); d != "" {
			t.Fatalf("round %d: grid and brute force differ (-want +got):\n%s", round, d)
		}

		for _, s := range got {
			if len(s) < 2 || len(s) > maxLen {
				t.Errorf("round %d: stroke of length %d", round, len(s))
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	b := testbitmap.Rect(100, 100, image.Rect(10, 10, 90, 30), testbitmap.Ink)
	first := Extract(b, nil)
	for i := 0; i < 5; i++ {
		if d := cmp.Diff(first, Extract(b, nil)); d != "" {
			t.Fatalf("run %d differs (-first +now):\n%s", i, d)
		}
	}
}

func TestExtractLine(t *testing.T) {
	b := testbitmap.HLine(100, 100, 50, 0, 100)
	strokes := Extract(b, nil)
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	s := strokes[0]
	if len(s) != 20 {
		t.Fatalf("got %d points, want 20", len(s))
	}
	for i, p := range s {
		if p.X != float64(5*i) || p.Y != 50 {
			t.Errorf("point %d is %v", i, p)
		}
	}
}

func TestExtractOptions(t *testing.T) {
	b := testbitmap.HLine(100, 100, 50, 0, 100)
	strokes := Extract(b, &Options{Step: 10, Cap: 4})
	if len(strokes) != 3 {
		t.Fatalf("got %d strokes, want 3", len(strokes))
	}
	for i, want := range []int{4, 4, 2} {
		if len(strokes[i]) != want {
			t.Errorf("stroke %d has %d points, want %d", i, len(strokes[i]), want)
		}
	}
}

func TestExtractBlank(t *testing.T) {
	if got := Extract(raster.New(50, 50), nil); len(got) != 0 {
		t.Errorf("blank bitmap gave %d strokes", len(got))
	}
}
