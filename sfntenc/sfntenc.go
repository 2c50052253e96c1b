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

// Package sfntenc writes hand-drawn fonts as OpenType files with CFF
// outlines.
//
// The glyph outlines produced by [seehuhn.de/go/handfont/glyphpath] are open
// polylines.  CFF has no notion of open subpaths, so renderers close every
// subpath when filling the glyph.
package sfntenc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode/utf8"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/fontmodel"
)

// Encoder converts a [fontmodel.Font] into an OpenType font.
type Encoder struct {
	// Created is stored as the creation and modification time of the font.
	// If this is zero, the current time is used.
	Created time.Time
}

var _ fontmodel.Encoder = (*Encoder)(nil)

// Encode returns the OpenType representation of f.
func (e *Encoder) Encode(f *fontmodel.Font) ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := e.Write(buf, f)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the OpenType representation of f to w.
func (e *Encoder) Write(w io.Writer, f *fontmodel.Font) (int64, error) {
	info, err := e.MakeFont(f)
	if err != nil {
		return 0, err
	}
	n, err := info.Write(w)
	if err != nil {
		return n, err
	}

	handfont.Logger().Info("font written",
		"family", f.FamilyName, "glyphs", f.NumGlyphs(), "bytes", n)
	return n, nil
}

// MakeFont converts f into an [sfnt.Font] with CFF outlines.
func (e *Encoder) MakeFont(f *fontmodel.Font) (*sfnt.Font, error) {
	if err := check(f); err != nil {
		return nil, err
	}

	created := e.Created
	if created.IsZero() {
		created = time.Now()
	}

	upm := float64(f.UnitsPerEm)
	fontMatrix := matrix.Matrix{1 / upm, 0, 0, 1 / upm, 0, 0}

	glyphNames := GlyphNames(f)
	outlines := &cff.Outlines{
		Private: []*type1.PrivateDict{
			{
				BlueScale: 0.039625,
				BlueShift: 7,
				BlueFuzz:  1,
			},
		},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: make([]glyph.ID, 256),
	}
	cmapSubtable := cmap.Format4{}
	for i, g := range f.Glyphs {
		gid := glyph.ID(i)

		cffGlyph := cff.NewGlyph(glyphNames[i], float64(g.AdvanceWidth))
		g.Path.DrawTo(cffGlyph)
		outlines.Glyphs = append(outlines.Glyphs, cffGlyph)

		if i == 0 {
			continue
		}
		if g.Unicode >= 0 && g.Unicode < 256 {
			outlines.Encoding[g.Unicode] = gid
		}
		if g.Unicode <= 0xFFFF {
			cmapSubtable[uint16(g.Unicode)] = gid
		} else {
			handfont.Logger().Warn("character outside the BMP is not mapped",
				"char", string(g.Unicode))
		}
	}

	cmapData := cmapSubtable.Encode(0)
	cmapTable := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: cmapData,
		{PlatformID: 3, EncodingID: 1}: cmapData,
	}

	info := &sfnt.Font{
		FamilyName:         f.FamilyName,
		Width:              os2.WidthNormal,
		Weight:             os2.WeightNormal,
		IsRegular:          f.StyleName == fontmodel.StyleName,
		CreationTime:       created,
		ModificationTime:   created,
		PermUse:            os2.PermInstall,
		UnitsPerEm:         uint16(f.UnitsPerEm),
		FontMatrix:         fontMatrix,
		Ascent:             funit.Int16(f.Ascender),
		Descent:            funit.Int16(f.Descender),
		CapHeight:          funit.Int16(glyphHeight(f, 'H', f.Ascender)),
		XHeight:            funit.Int16(glyphHeight(f, 'x', f.Ascender/2)),
		UnderlinePosition:  funit.Float64(-upm / 10),
		UnderlineThickness: funit.Float64(upm / 20),
		Outlines:           outlines,
		CMapTable:          cmapTable,
	}
	return info, nil
}

// GlyphNames returns the PostScript glyph names used for the glyphs of f.
// The first glyph is always called ".notdef".  Names are unique; if two
// glyphs map to the same name, a numeric suffix is added to the later one.
func GlyphNames(f *fontmodel.Font) []string {
	res := make([]string, len(f.Glyphs))
	used := make(map[string]bool, len(f.Glyphs))
	for i, g := range f.Glyphs {
		var name string
		if i == 0 {
			name = fontmodel.NotdefName
		} else {
			name = names.FromUnicode(string(g.Unicode))
		}
		base := name
		for k := 1; used[name]; k++ {
			name = base + "." + strconv.Itoa(k)
		}
		used[name] = true
		res[i] = name
	}
	return res
}

// FileName returns the conventional file name for f.
func FileName(f *fontmodel.Font) string {
	return f.FamilyName + ".otf"
}

// glyphHeight returns the top of the outline for r, or def if r has no
// visible outline.
func glyphHeight(f *fontmodel.Font, r rune, def int) int {
	g, ok := f.Lookup(r)
	if !ok || g.Path.IsEmpty() {
		return def
	}
	return int(g.Path.BBox().URy + 0.5)
}

func check(f *fontmodel.Font) error {
	switch {
	case f == nil:
		return errMissingFont
	case f.FamilyName == "":
		return errMissingFamily
	case len(f.Glyphs) == 0:
		return handfont.ErrNoGlyphs
	case f.Glyphs[0].Name != fontmodel.NotdefName:
		return errMissingNotdef
	case f.UnitsPerEm < 16 || f.UnitsPerEm > 16384:
		return errUnitsPerEm
	}
	for i, g := range f.Glyphs[1:] {
		if g.Unicode <= 0 || !utf8.ValidRune(g.Unicode) {
			return fmt.Errorf("glyph %d: %w: %d",
				i+1, handfont.ErrInvalidCharacter, g.Unicode)
		}
	}
	return nil
}

var (
	errMissingFont   = errors.New("missing font")
	errMissingFamily = errors.New("missing font family name")
	errMissingNotdef = errors.New("first glyph must be .notdef")
	errUnitsPerEm    = errors.New("units per em out of range")
)
