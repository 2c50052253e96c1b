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

// Package store keeps the bitmaps drawn for each character of a session.
//
// A [Store] is the only owner of its entries.  Bitmaps are immutable, so
// callers may keep the values returned by [Store.Get] for as long as they
// like.
package store

import (
	"fmt"
	"slices"
	"sync"
	"unicode/utf8"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/raster"
)

// Entry is the stored state of one character.
type Entry struct {
	Char      rune
	Bitmap    *raster.Bitmap
	Completed bool
}

// Store maps characters to their drawn bitmaps.
//
// The methods of Store are safe for concurrent use.  Writes to the same
// character are serialised, reads and writes for different characters
// proceed independently.
type Store struct {
	mu      sync.RWMutex
	entries map[rune]*Entry

	lockMu sync.Mutex
	locks  map[rune]*sync.Mutex
}

// New returns an empty store.
func New() *Store {
	return &Store{
		entries: make(map[rune]*Entry),
		locks:   make(map[rune]*sync.Mutex),
	}
}

// IsBlank reports whether b contains no drawing.  A nil bitmap is blank.
func IsBlank(b *raster.Bitmap) bool {
	return b == nil || b.IsBlank()
}

// Set stores b as the drawing for r and marks r as completed.
// An existing entry for r is replaced.
//
// If b is blank, [handfont.ErrEmptyCanvas] is returned.  If r is not a
// valid character (see [ValidChar]), the error wraps
// [handfont.ErrInvalidCharacter].  In both cases the store is left
// unchanged.
func (s *Store) Set(r rune, b *raster.Bitmap) error {
	if !ValidChar(r) {
		return fmt.Errorf("%w: %d", handfont.ErrInvalidCharacter, r)
	}
	if IsBlank(b) {
		return handfont.ErrEmptyCanvas
	}

	l := s.keyLock(r)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	_, replaced := s.entries[r]
	s.entries[r] = &Entry{Char: r, Bitmap: b, Completed: true}
	s.mu.Unlock()

	handfont.Logger().Debug("character saved",
		"char", string(r), "replaced", replaced)
	return nil
}

// ValidChar reports whether a drawing can be stored for r.
// This is the case for all valid Unicode code points except U+0000,
// which is reserved for the .notdef glyph.
func ValidChar(r rune) bool {
	return r > 0 && utf8.ValidRune(r)
}

// Get returns the bitmap stored for r.
func (s *Store) Get(r rune) (*raster.Bitmap, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[r]
	if !ok {
		return nil, false
	}
	return e.Bitmap, true
}

// Completed reports whether a drawing has been saved for r.
func (s *Store) Completed(r rune) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[r]
	return ok && e.Completed
}

// Size returns the number of completed characters.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.entries {
		if e.Completed {
			n++
		}
	}
	return n
}

// Progress returns the number of completed characters relative to the
// size of the character set.
func (s *Store) Progress() handfont.Progress {
	return handfont.Progress{
		Completed: s.Size(),
		Total:     handfont.TotalCharacters(),
	}
}

// Entries returns a snapshot of all entries.  Characters of the character
// set come first, in the order of [handfont.AllCharacters], followed by all
// other characters in increasing code point order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	res := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		res = append(res, *e)
	}
	s.mu.RUnlock()

	slices.SortFunc(res, func(a, b Entry) int {
		return handfont.Compare(a.Char, b.Char)
	})
	return res
}

func (s *Store) keyLock(r rune) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	l, ok := s.locks[r]
	if !ok {
		l = &sync.Mutex{}
		s.locks[r] = l
	}
	return l
}
