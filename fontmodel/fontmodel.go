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

// Package fontmodel assembles hand-drawn glyphs into an in-memory font.
//
// The font model is independent of any file format.  Turning a [Font] into
// bytes is the job of an [Encoder], for example
// [seehuhn.de/go/handfont/sfntenc.Encoder].
package fontmodel

import (
	"context"
	"fmt"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/glyphpath"
	"seehuhn.de/go/handfont/raster"
	"seehuhn.de/go/handfont/stroke"
)

// Fixed metrics of every generated font, in font units.
const (
	UnitsPerEm   = 1000
	Ascender     = 800
	Descender    = -200
	AdvanceWidth = 650
)

const (
	// StyleName is the style of every generated font.
	StyleName = "Regular"

	// NotdefName is the name of the glyph shown for missing characters.
	NotdefName = ".notdef"

	// DefaultFamily is used when no family name is given.
	DefaultFamily = "MyHandFont"
)

// Glyph is the vector representation of one character.
type Glyph struct {
	Name         string
	Unicode      rune
	AdvanceWidth int
	Path         glyphpath.Path
}

// Font is a complete font, ready for encoding.
// The first glyph is always the .notdef glyph.
type Font struct {
	FamilyName string
	StyleName  string
	UnitsPerEm int
	Ascender   int
	Descender  int
	Glyphs     []*Glyph
}

// NumGlyphs returns the number of glyphs, including .notdef.
func (f *Font) NumGlyphs() int {
	return len(f.Glyphs)
}

// Lookup returns the glyph for the character r.
func (f *Font) Lookup(r rune) (*Glyph, bool) {
	if r == 0 {
		return nil, false
	}
	for _, g := range f.Glyphs {
		if g.Unicode == r {
			return g, true
		}
	}
	return nil, false
}

// GlyphSpec is a character together with its drawing.
type GlyphSpec struct {
	Char   rune
	Bitmap *raster.Bitmap
}

// Options controls font assembly.
type Options struct {
	// Extract is passed to [stroke.Extract].  If this is nil, the default
	// extraction options are used.
	Extract *stroke.Options
}

// Encoder converts a font into a binary font file.
type Encoder interface {
	Encode(f *Font) ([]byte, error)
}

// Assemble converts the drawings in specs into a font.  The glyphs follow
// the order of specs, after the .notdef glyph.
//
// If specs is empty, [handfont.ErrNoGlyphs] is returned.  If family is
// empty, [DefaultFamily] is used.
func Assemble(family string, specs []GlyphSpec, opt *Options) (*Font, error) {
	return AssembleContext(context.Background(), family, specs, opt, nil)
}

// AssembleContext is like [Assemble], but checks ctx before every glyph and
// reports progress after every glyph.  progress may be nil.
func AssembleContext(ctx context.Context, family string, specs []GlyphSpec, opt *Options, progress func(done, total int)) (*Font, error) {
	if len(specs) == 0 {
		return nil, handfont.ErrNoGlyphs
	}
	if family == "" {
		family = DefaultFamily
	}
	var extractOpt *stroke.Options
	if opt != nil {
		extractOpt = opt.Extract
	}

	glyphs := make([]*Glyph, 0, len(specs)+1)
	glyphs = append(glyphs, &Glyph{
		Name:         NotdefName,
		Unicode:      0,
		AdvanceWidth: AdvanceWidth,
	})

	log := handfont.Logger()
	for i, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if spec.Bitmap == nil {
			return nil, fmt.Errorf("glyph %q: missing bitmap", spec.Char)
		}

		strokes := stroke.Extract(spec.Bitmap, extractOpt)
		p := glyphpath.Build(strokes, spec.Bitmap.Height(), UnitsPerEm)
		glyphs = append(glyphs, &Glyph{
			Name:         string(spec.Char),
			Unicode:      spec.Char,
			AdvanceWidth: AdvanceWidth,
			Path:         p,
		})
		log.Debug("glyph assembled",
			"char", string(spec.Char), "strokes", len(p), "points", p.NumPoints())

		if progress != nil {
			progress(i+1, len(specs))
		}
	}

	return &Font{
		FamilyName: family,
		StyleName:  StyleName,
		UnitsPerEm: UnitsPerEm,
		Ascender:   Ascender,
		Descender:  Descender,
		Glyphs:     glyphs,
	}, nil
}
