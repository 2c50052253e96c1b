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

// Package handfont turns hand-drawn glyph bitmaps into a vector font.
//
// The work is split over several packages, leaves first:
//
//   - [seehuhn.de/go/handfont/raster] holds immutable RGBA bitmaps,
//   - [seehuhn.de/go/handfont/store] keeps one bitmap per character,
//   - [seehuhn.de/go/handfont/stroke] samples a bitmap on a grid and chains
//     the foreground samples into strokes,
//   - [seehuhn.de/go/handfont/glyphpath] maps strokes into font units,
//   - [seehuhn.de/go/handfont/fontmodel] assembles glyphs and metrics into
//     an in-memory font,
//   - [seehuhn.de/go/handfont/sfntenc] writes the font as an OpenType file,
//   - [seehuhn.de/go/handfont/preview] lays out stored bitmaps as a preview
//     image.
//
// [seehuhn.de/go/handfont/surface] and [seehuhn.de/go/handfont/session]
// provide the drawing canvas and the per-session state which connect these
// pieces.  A typical export looks like this:
//
//	s := session.New(nil)
//	... paint on s.Surface(), call s.Save() and s.Next() ...
//	data, err := s.Export(ctx, "MyHandFont", &sfntenc.Encoder{}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// This package contains the character set used for cycling through the
// characters, the shared error values and the package logger.
package handfont
