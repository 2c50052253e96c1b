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

package sfntenc

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/fontmodel"
	"seehuhn.de/go/handfont/glyphpath"
)

func testFont() *fontmodel.Font {
	bar := glyphpath.Path{
		{vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 100, Y: 700}, vec.Vec2{X: 500, Y: 700}},
	}
	return &fontmodel.Font{
		FamilyName: "TestHand",
		StyleName:  fontmodel.StyleName,
		UnitsPerEm: fontmodel.UnitsPerEm,
		Ascender:   fontmodel.Ascender,
		Descender:  fontmodel.Descender,
		Glyphs: []*fontmodel.Glyph{
			{Name: fontmodel.NotdefName, AdvanceWidth: fontmodel.AdvanceWidth},
			{Name: "A", Unicode: 'A', AdvanceWidth: fontmodel.AdvanceWidth, Path: bar},
			{Name: "B", Unicode: 'B', AdvanceWidth: fontmodel.AdvanceWidth, Path: bar},
			{Name: "/", Unicode: '/', AdvanceWidth: fontmodel.AdvanceWidth},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	f := testFont()
	enc := &Encoder{Created: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	data, err := enc.Encode(f)
	if err != nil {
		t.Fatal(err)
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsCFF() {
		t.Error("expected CFF outlines")
	}
	if info.NumGlyphs() != 4 {
		t.Errorf("NumGlyphs = %d, want 4", info.NumGlyphs())
	}
	if info.FamilyName != "TestHand" {
		t.Errorf("FamilyName = %q", info.FamilyName)
	}
	if info.UnitsPerEm != 1000 {
		t.Errorf("UnitsPerEm = %d", info.UnitsPerEm)
	}
	if info.Ascent != 800 || info.Descent != -200 {
		t.Errorf("Ascent/Descent = %d/%d", info.Ascent, info.Descent)
	}

	var gotNames []string
	for gid := range info.NumGlyphs() {
		gotNames = append(gotNames, info.GlyphName(glyph.ID(gid)))
		if w := float64(info.GlyphWidth(glyph.ID(gid))); w != 650 {
			t.Errorf("glyph %d: width %g, want 650", gid, w)
		}
	}
	wantNames := []string{".notdef", "A", "B", "slash"}
	if d := cmp.Diff(wantNames, gotNames); d != "" {
		t.Errorf("glyph names (-want +got):\n%s", d)
	}

	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	for r, want := range map[rune]glyph.ID{'A': 1, 'B': 2, '/': 3, 'C': 0} {
		if got := cmap.Lookup(r); got != want {
			t.Errorf("cmap[%q] = %d, want %d", r, got, want)
		}
	}
}

func TestWriteMatchesEncode(t *testing.T) {
	f := testFont()
	enc := &Encoder{Created: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}

	data, err := enc.Encode(f)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	n, err := enc.Write(buf, f)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("Write returned %d, wrote %d bytes", n, buf.Len())
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("Write and Encode produced different output")
	}
}

func TestMakeFontMetrics(t *testing.T) {
	f := testFont()
	f.Glyphs = append(f.Glyphs, &fontmodel.Glyph{
		Name:         "H",
		Unicode:      'H',
		AdvanceWidth: fontmodel.AdvanceWidth,
		Path:         glyphpath.Path{{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 650}}},
	})

	info, err := (&Encoder{}).MakeFont(f)
	if err != nil {
		t.Fatal(err)
	}
	if info.CapHeight != 650 {
		t.Errorf("CapHeight = %d, want 650", info.CapHeight)
	}
	if info.XHeight != 400 {
		t.Errorf("XHeight = %d, want 400", info.XHeight)
	}
	if !info.IsRegular {
		t.Error("font should be marked regular")
	}
	if info.CreationTime.IsZero() {
		t.Error("missing creation time")
	}
}

func TestGlyphNames(t *testing.T) {
	f := &fontmodel.Font{
		Glyphs: []*fontmodel.Glyph{
			{Name: fontmodel.NotdefName},
			{Unicode: 'a'},
			{Unicode: '0'},
			{Unicode: '{'},
			{Unicode: 'a'},
			{Unicode: 'a'},
		},
	}
	got := GlyphNames(f)
	want := []string{".notdef", "a", "zero", "braceleft", "a.1", "a.2"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}
}

func TestInvalidFonts(t *testing.T) {
	noNotdef := testFont()
	noNotdef.Glyphs = noNotdef.Glyphs[1:]
	noFamily := testFont()
	noFamily.FamilyName = ""
	noGlyphs := testFont()
	noGlyphs.Glyphs = nil

	cases := []struct {
		name string
		font *fontmodel.Font
		want error
	}{
		{"nil", nil, errMissingFont},
		{"no family", noFamily, errMissingFamily},
		{"no glyphs", noGlyphs, handfont.ErrNoGlyphs},
		{"no notdef", noNotdef, errMissingNotdef},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := (&Encoder{}).Encode(c.font)
			if !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
		})
	}
}

func TestInvalidCharacter(t *testing.T) {
	for _, r := range []rune{-1, 0, 0xD800, 0x110000} {
		f := testFont()
		f.Glyphs[1].Unicode = r
		_, err := (&Encoder{}).Encode(f)
		if !errors.Is(err, handfont.ErrInvalidCharacter) {
			t.Errorf("Unicode %d: got error %v, want ErrInvalidCharacter", r, err)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(testFont()); got != "TestHand.otf" {
		t.Errorf("FileName = %q", got)
	}
}
