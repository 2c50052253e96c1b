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

package handfont

import (
	"cmp"
	"strconv"
)

// Category is a named group of characters the user can draw.
type Category struct {
	Name  string
	Runes []rune
}

var categories = []Category{
	{Name: "uppercase", Runes: []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")},
	{Name: "lowercase", Runes: []rune("abcdefghijklmnopqrstuvwxyz")},
	{Name: "numbers", Runes: []rune("0123456789")},
	{Name: "symbols", Runes: []rune(`!@#$%&*()_+-=[]{}|;:'",.<>?/`)},
}

var (
	allChars  []rune
	charIndex map[rune]int
)

func init() {
	charIndex = make(map[rune]int)
	for _, cat := range categories {
		for _, r := range cat.Runes {
			charIndex[r] = len(allChars)
			allChars = append(allChars, r)
		}
	}
}

// Categories returns the character categories in display order.
func Categories() []Category {
	res := make([]Category, len(categories))
	for i, cat := range categories {
		res[i] = Category{
			Name:  cat.Name,
			Runes: append([]rune(nil), cat.Runes...),
		}
	}
	return res
}

// AllCharacters returns the concatenation of all categories.
// This is the order used by [NextCharacter].
func AllCharacters() []rune {
	return append([]rune(nil), allChars...)
}

// TotalCharacters returns the number of characters in the character set.
func TotalCharacters() int {
	return len(allChars)
}

// CharacterIndex returns the position of r in [AllCharacters],
// or -1 if r is not part of the character set.
func CharacterIndex(r rune) int {
	idx, ok := charIndex[r]
	if !ok {
		return -1
	}
	return idx
}

// Compare orders characters for display and export.  Characters of the
// character set come first, in set order, followed by all other characters
// in code point order.  The result is negative, zero or positive, like
// [cmp.Compare].
func Compare(a, b rune) int {
	ia := CharacterIndex(a)
	ib := CharacterIndex(b)
	switch {
	case ia >= 0 && ib >= 0:
		return cmp.Compare(ia, ib)
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// IsDefined reports whether r is part of the character set.
func IsDefined(r rune) bool {
	_, ok := charIndex[r]
	return ok
}

// NextCharacter returns the character following r.  The last symbol wraps
// around to the first upper case letter.  Characters outside the set are
// treated as if they came just before the first character.
func NextCharacter(r rune) rune {
	idx := CharacterIndex(r)
	return allChars[(idx+1)%len(allChars)]
}

// Progress counts the drawn characters.
type Progress struct {
	Completed int
	Total     int
}

// Fraction returns the completed fraction in the range [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Completed) / float64(p.Total)
	if f > 1 {
		f = 1
	}
	return f
}

func (p Progress) String() string {
	return strconv.Itoa(p.Completed) + "/" + strconv.Itoa(p.Total)
}
