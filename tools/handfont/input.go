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

package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/handfont"
)

var imageExtensions = []string{
	".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp",
}

// drawing is an image file holding the drawing of one character.
type drawing struct {
	Char rune
	Path string
}

// charFromName determines the character drawn in a file from the file
// name.  The base name (without extension) can be the character itself, a
// code point in the form "U+0041", or a PostScript glyph name like "slash".
func charFromName(fname string) (rune, bool) {
	base := filepath.Base(fname)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		return 0, false
	}

	if r, size := utf8.DecodeRuneInString(base); size == len(base) && r != utf8.RuneError {
		return r, true
	}

	if hex, ok := strings.CutPrefix(strings.ToUpper(base), "U+"); ok {
		x, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !utf8.ValidRune(rune(x)) {
			return 0, false
		}
		return rune(x), true
	}

	rr := []rune(names.ToUnicode(base, ""))
	if len(rr) != 1 || rr[0] == utf8.RuneError {
		return 0, false
	}
	return rr[0], true
}

// findDrawings lists the image files in dir which name a character.
// The result is sorted in character set order.
func findDrawings(dir string) ([]drawing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	log := handfont.Logger()
	seen := make(map[rune]string)
	var res []drawing
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !slices.Contains(imageExtensions, ext) {
			continue
		}
		r, ok := charFromName(e.Name())
		if !ok {
			log.Warn("cannot determine character, file ignored", "file", e.Name())
			continue
		}
		if other, dup := seen[r]; dup {
			return nil, fmt.Errorf("%s and %s both contain %q", other, e.Name(), r)
		}
		seen[r] = e.Name()
		res = append(res, drawing{Char: r, Path: filepath.Join(dir, e.Name())})
	}

	slices.SortFunc(res, func(a, b drawing) int {
		return handfont.Compare(a.Char, b.Char)
	})
	return res, nil
}

var errNoDrawings = errors.New("no drawings found")

// loadImage reads and decodes an image file.
func loadImage(fname string) (image.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}
