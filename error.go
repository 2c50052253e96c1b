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
	"errors"
	"fmt"
	"image"
)

var (
	// ErrEmptyCanvas is returned when a blank bitmap is saved.
	ErrEmptyCanvas = errors.New("nothing drawn on the canvas")

	// ErrNoGlyphs is returned when a font is requested but no characters
	// have been drawn.
	ErrNoGlyphs = errors.New("no glyphs to export")

	// ErrInvalidCharacter is returned when a drawing is saved for a value
	// which is not a valid Unicode character.
	ErrInvalidCharacter = errors.New("invalid character")
)

// EncodingError is returned when the binary font encoder fails.
type EncodingError struct {
	Family string
	Err    error
}

func (err *EncodingError) Error() string {
	middle := ""
	if err.Family != "" {
		middle = " " + err.Family
	}
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "cannot encode font" + middle + tail
}

func (err *EncodingError) Unwrap() error {
	return err.Err
}

// SizeMismatchError indicates a bitmap whose dimensions differ from the
// fixed dimensions of the drawing surface.
type SizeMismatchError struct {
	Want, Got image.Point
}

func (err *SizeMismatchError) Error() string {
	return fmt.Sprintf("bitmap size %dx%d does not match surface size %dx%d",
		err.Got.X, err.Got.Y, err.Want.X, err.Want.Y)
}
