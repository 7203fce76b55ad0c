// seehuhn.de/go/figtikz - convert figures to PGFPlots code
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

package style

import "strings"

var texSpecial = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'#':  `\#`,
	'%':  `\%`,
	'_':  `\_`,
	'^':  `\textasciicircum{}`,
	'~':  `\textasciitilde{}`,
}

// Escape prepares a string for inclusion in TeX code.  Text between
// pairs of dollar signs is math and is copied unchanged; in the rest,
// TeX special characters are escaped.  Newlines become line breaks.
func Escape(s string) string {
	balanced := strings.Count(s, "$")%2 == 0

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	inMath := false
	for _, r := range s {
		switch {
		case r == '$' && balanced:
			inMath = !inMath
			b.WriteRune(r)
		case inMath:
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\\`)
		default:
			if esc, ok := texSpecial[r]; ok {
				b.WriteString(esc)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Anchor returns the TikZ node anchor for a horizontal ("left",
// "center", "right") and vertical ("top", "center", "baseline",
// "bottom") text alignment.  Empty strings select left and baseline.
func Anchor(halign, valign string) string {
	var parts []string
	switch valign {
	case "top":
		parts = append(parts, "north")
	case "bottom":
		parts = append(parts, "south")
	case "center", "center_baseline":
		// pass
	default:
		parts = append(parts, "base")
	}
	switch halign {
	case "right":
		parts = append(parts, "east")
	case "center":
		// pass
	default:
		parts = append(parts, "west")
	}
	if len(parts) == 0 {
		return "center"
	}
	return strings.Join(parts, " ")
}

// LaTeX font size commands in a 10pt document.
var fontSizes = []struct {
	limit float64
	cmd   string
}{
	{5, `\tiny`},
	{7, `\scriptsize`},
	{8, `\footnotesize`},
	{9, `\small`},
	{10, `\normalsize`},
	{12, `\large`},
	{14.4, `\Large`},
	{17.28, `\LARGE`},
	{20.74, `\huge`},
}

// FontSize returns the LaTeX size command closest to a font size in
// points, or "" if size is not positive.
func FontSize(size float64) string {
	if size <= 0 {
		return ""
	}
	for _, fs := range fontSizes {
		if size <= fs.limit {
			return fs.cmd
		}
	}
	return `\Huge`
}

// LegendPosition translates a legend location into a position in axis
// description coordinates and the legend anchor.  The location "best"
// and the empty location are placed in the upper right corner.
func LegendPosition(loc string) (x, y float64, anchor string, ok bool) {
	switch loc {
	case "", "best", "upper right":
		return 0.97, 0.97, "north east", true
	case "upper left":
		return 0.03, 0.97, "north west", true
	case "lower left":
		return 0.03, 0.03, "south west", true
	case "lower right":
		return 0.97, 0.03, "south east", true
	case "right", "center right":
		return 0.97, 0.5, "east", true
	case "center left":
		return 0.03, 0.5, "west", true
	case "lower center":
		return 0.5, 0.03, "south", true
	case "upper center":
		return 0.5, 0.97, "north", true
	case "center":
		return 0.5, 0.5, "center", true
	}
	return 0, 0, "", false
}
