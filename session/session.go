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

// Package session keeps the state of an interactive font drawing session.
//
// A Session ties together the drawing surface, the store of finished
// drawings and the character which is currently being drawn.
package session

import (
	"context"
	"fmt"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/fontmodel"
	"seehuhn.de/go/handfont/preview"
	"seehuhn.de/go/handfont/store"
	"seehuhn.de/go/handfont/surface"
)

// Options configures a new session.
// Zero values are replaced by the defaults.
type Options struct {
	Width, Height int
	BrushSize     int

	// Assemble controls how glyph outlines are derived on export.
	Assemble *fontmodel.Options

	Preview preview.Layout
}

// These are the default settings for a new session.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// Session is the state of one drawing session.
// A Session is not safe for concurrent use, but its store is.
type Session struct {
	surface  *surface.Surface
	store    *store.Store
	current  rune
	assemble *fontmodel.Options
	composer *preview.Composer
}

// New starts a session with an empty store.  The first character to draw
// is the first character of the character set.
func New(opt *Options) *Session {
	if opt == nil {
		opt = &Options{}
	}
	w := opt.Width
	if w <= 0 {
		w = DefaultWidth
	}
	h := opt.Height
	if h <= 0 {
		h = DefaultHeight
	}

	surf := surface.New(w, h)
	if opt.BrushSize > 0 {
		surf.SetBrushSize(opt.BrushSize)
	}

	return &Session{
		surface:  surf,
		store:    store.New(),
		current:  handfont.AllCharacters()[0],
		assemble: opt.Assemble,
		composer: &preview.Composer{Layout: opt.Preview},
	}
}

// Surface returns the drawing surface.
func (s *Session) Surface() *surface.Surface {
	return s.surface
}

// Store returns the finished drawings.
func (s *Session) Store() *store.Store {
	return s.store
}

// Current returns the character which is currently being drawn.
func (s *Session) Current() rune {
	return s.current
}

// Save stores the contents of the surface as the drawing for the current
// character.  If the surface is blank, [handfont.ErrEmptyCanvas] is returned
// and the store is not modified.
func (s *Session) Save() error {
	return s.store.Set(s.current, s.surface.Bitmap())
}

// Select makes r the current character.  If something has been drawn on the
// surface, it is first saved for the previous character.  The surface is then
// cleared and, if r has been drawn before, its drawing is loaded.
//
// If the stored drawing for r does not fit the surface, a
// [*handfont.SizeMismatchError] is returned and the session is unchanged.
func (s *Session) Select(r rune) error {
	stored, hasStored := s.store.Get(r)
	if hasStored && stored.Size() != s.surface.Size() {
		return &handfont.SizeMismatchError{Want: s.surface.Size(), Got: stored.Size()}
	}

	if s.surface.IsDrawn() {
		if err := s.Save(); err != nil {
			return err
		}
	}

	if hasStored {
		if err := s.surface.Load(stored); err != nil {
			return err
		}
	} else {
		s.surface.Clear()
	}
	s.current = r
	handfont.Logger().Debug("character selected", "char", string(r))
	return nil
}

// Next selects the character following the current one.
func (s *Session) Next() error {
	return s.Select(handfont.NextCharacter(s.current))
}

// Progress returns how many characters of the character set have been drawn.
func (s *Session) Progress() handfont.Progress {
	return s.store.Progress()
}

// Preview renders text using the stored drawings.
func (s *Session) Preview(text string) *preview.Result {
	return s.composer.Compose(text, s.store)
}

// Export assembles a font from all stored drawings and encodes it using enc.
// If nothing has been drawn, [handfont.ErrNoGlyphs] is returned without
// calling the encoder.  Encoder failures are reported as
// [*handfont.EncodingError].  progress may be nil.
func (s *Session) Export(ctx context.Context, family string, enc fontmodel.Encoder, progress func(done, total int)) ([]byte, error) {
	entries := s.store.Entries()
	if len(entries) == 0 {
		return nil, handfont.ErrNoGlyphs
	}

	specs := make([]fontmodel.GlyphSpec, len(entries))
	for i, e := range entries {
		specs[i] = fontmodel.GlyphSpec{Char: e.Char, Bitmap: e.Bitmap}
	}

	f, err := fontmodel.AssembleContext(ctx, family, specs, s.assemble, progress)
	if err != nil {
		return nil, fmt.Errorf("assemble font: %w", err)
	}

	data, err := enc.Encode(f)
	if err != nil {
		return nil, &handfont.EncodingError{Family: f.FamilyName, Err: err}
	}

	handfont.Logger().Info("font exported",
		"family", f.FamilyName, "glyphs", f.NumGlyphs(), "bytes", len(data))
	return data, nil
}
