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

import (
	"fmt"
	"slices"
	"strings"
)

// LibPatterns is the TikZ library providing fill patterns.
const LibPatterns = "patterns"

var hatchPatterns = map[rune]string{
	'-':  "horizontal lines",
	'|':  "vertical lines",
	'/':  "north east lines",
	'\\': "north west lines",
	'+':  "grid",
	'x':  "crosshatch",
	'.':  "crosshatch dots",
	'*':  "fivepointed stars",
}

// Hatch translates a hatch string.  Repeated characters, which
// increase the hatch density, map to the same pattern.  The pattern of
// the first supported character is used.  Characters without a
// pattern counterpart are returned in bad, in order of appearance.
// If no character is supported, pattern is "".
func Hatch(h string) (pattern string, bad []rune) {
	for _, c := range h {
		p, ok := hatchPatterns[c]
		switch {
		case ok && pattern == "":
			pattern = p
		case !ok && !slices.Contains(bad, c):
			bad = append(bad, c)
		}
	}
	return pattern, bad
}

// HatchOption returns the TikZ option which draws the pattern on top
// of the fill.  The colour is a TikZ colour expression.
func HatchOption(pattern, color string) string {
	return fmt.Sprintf("postaction={pattern=%s, pattern color=%s}", pattern, color)
}

// BadHatchMessage formats the message for hatch characters without a
// pattern counterpart, for example
//
//	the hatches ['o', 'O'] do not have good PGF counterparts
func BadHatchMessage(bad []rune) string {
	quoted := make([]string, len(bad))
	for i, c := range bad {
		quoted[i] = "'" + string(c) + "'"
	}
	return "the hatches [" + strings.Join(quoted, ", ") + "] do not have good PGF counterparts"
}
