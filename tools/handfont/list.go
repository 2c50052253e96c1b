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
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/unicode/runenames"
	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/handfont"
)

// listCharacters prints the character set, grouped by category.
func listCharacters(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for i, cat := range handfont.Categories() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s:\n", cat.Name)
		for _, r := range cat.Runes {
			fmt.Fprintf(tw, "  %c\tU+%04X\t%s\t%s\n",
				r, r, names.FromUnicode(string(r)), runenames.Name(r))
		}
	}
	fmt.Fprintf(tw, "\n%d characters\n", handfont.TotalCharacters())
	return tw.Flush()
}
