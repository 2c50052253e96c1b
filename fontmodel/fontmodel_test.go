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

package fontmodel

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/internal/testbitmap"
	"seehuhn.de/go/handfont/stroke"
)

func TestAssembleNoGlyphs(t *testing.T) {
	for _, specs := range [][]GlyphSpec{nil, {}} {
		f, err := Assemble("Test", specs, nil)
		if !errors.Is(err, handfont.ErrNoGlyphs) {
			t.Errorf("got error %v, want ErrNoGlyphs", err)
		}
		if f != nil {
			t.Error("font returned together with error")
		}
	}
}

func TestAssemble(t *testing.T) {
	specs := []GlyphSpec{
		{Char: 'I', Bitmap: testbitmap.Rect(100, 100, image.Rect(50, 0, 51, 100), testbitmap.Ink)},
		{Char: '-', Bitmap: testbitmap.HLine(100, 100, 50, 0, 100)},
		{Char: '.', Bitmap: testbitmap.Dots(100, 100, image.Pt(50, 95))},
	}
	f, err := Assemble("", specs, nil)
	if err != nil {
		t.Fatal(err)
	}

	if f.FamilyName != DefaultFamily || f.StyleName != "Regular" {
		t.Errorf("wrong names %q %q", f.FamilyName, f.StyleName)
	}
	if f.UnitsPerEm != 1000 || f.Ascender != 800 || f.Descender != -200 {
		t.Errorf("wrong metrics %d %d %d", f.UnitsPerEm, f.Ascender, f.Descender)
	}
	if f.NumGlyphs() != 4 {
		t.Fatalf("got %d glyphs, want 4", f.NumGlyphs())
	}

	notdef := f.Glyphs[0]
	if notdef.Name != ".notdef" || notdef.Unicode != 0 || !notdef.Path.IsEmpty() || notdef.AdvanceWidth != 650 {
		t.Errorf("bad .notdef glyph %+v", notdef)
	}

	var names []string
	for _, g := range f.Glyphs[1:] {
		names = append(names, g.Name)
		if g.AdvanceWidth != 650 {
			t.Errorf("glyph %q has width %d", g.Name, g.AdvanceWidth)
		}
	}
	if d := cmp.Diff([]string{"I", "-", "."}, names); d != "" {
		t.Errorf("wrong glyph order (-want +got):\n%s", d)
	}

	bar, ok := f.Lookup('I')
	if !ok {
		t.Fatal("glyph I not found")
	}
	if len(bar.Path) != 1 || len(bar.Path[0]) != 20 {
		t.Fatalf("unexpected outline for I: %v", bar.Path)
	}
	// first sample of the vertical bar is at the top of the bitmap
	if d := cmp.Diff(1000.0, bar.Path[0][0].Y); d != "" {
		t.Errorf("wrong top coordinate (-want +got):\n%s", d)
	}

	// a single dot gives no strokes, but the glyph is still present
	dot, ok := f.Lookup('.')
	if !ok || !dot.Path.IsEmpty() {
		t.Errorf("unexpected outline for '.': %v", dot)
	}

	if _, ok := f.Lookup('x'); ok {
		t.Error("found glyph for undrawn character")
	}
	if _, ok := f.Lookup(0); ok {
		t.Error("Lookup(0) should not find .notdef")
	}
}

func TestAssembleOptions(t *testing.T) {
	specs := []GlyphSpec{
		{Char: '-', Bitmap: testbitmap.HLine(100, 100, 50, 0, 100)},
	}
	f, err := Assemble("Test", specs, &Options{Extract: &stroke.Options{Cap: 5}})
	if err != nil {
		t.Fatal(err)
	}
	g, _ := f.Lookup('-')
	if len(g.Path) != 4 {
		t.Errorf("got %d polylines, want 4", len(g.Path))
	}
}

func TestAssembleContext(t *testing.T) {
	specs := []GlyphSpec{
		{Char: 'A', Bitmap: testbitmap.HLine(50, 50, 10, 0, 50)},
		{Char: 'B', Bitmap: testbitmap.HLine(50, 50, 20, 0, 50)},
		{Char: 'C', Bitmap: testbitmap.HLine(50, 50, 30, 0, 50)},
	}

	var calls [][2]int
	_, err := AssembleContext(context.Background(), "Test", specs, nil, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([][2]int{{1, 3}, {2, 3}, {3, 3}}, calls); d != "" {
		t.Errorf("wrong progress calls (-want +got):\n%s", d)
	}

	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	_, err = AssembleContext(ctx, "Test", specs, nil, func(done, total int) {
		n = done
		cancel()
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
	if n != 1 {
		t.Errorf("assembly continued after cancel, %d glyphs done", n)
	}
}

func TestAssembleMissingBitmap(t *testing.T) {
	_, err := Assemble("Test", []GlyphSpec{{Char: 'A'}}, nil)
	if err == nil {
		t.Error("missing bitmap not detected")
	}
}
