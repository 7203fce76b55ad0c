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

// Package style translates drawing attributes of the figure model
// (markers, hatches, dash patterns, line widths, colours, text
// alignment) into TikZ and PGFPlots options.
//
// The functions in this package are pure: they report required TikZ
// libraries and unsupported features through their return values.
package style

import "slices"

// LibPlotMarks is the TikZ library providing the extended marker set.
const LibPlotMarks = "plotmarks"

// Marker describes a PGFPlots plot mark.
type Marker struct {
	// Name is the value of the "mark" option.
	Name string

	// Options are additional entries for "mark options".
	Options []string

	// Library is the TikZ library needed for the mark, or "".
	Library string
}

// basicMarkers are available without loading a library.
var basicMarkers = map[string]string{
	".": "*",
	"o": "o",
	"+": "+",
	"P": "+",
	"x": "x",
	"X": "x",
}

type plotMark struct {
	name    string
	options []string
}

var plotMarks = map[string]plotMark{
	"v": {"triangle", []string{"rotate=180"}},
	"^": {"triangle", nil},
	"<": {"triangle", []string{"rotate=270"}},
	">": {"triangle", []string{"rotate=90"}},
	"1": {"Mercedes star flipped", nil},
	"2": {"Mercedes star", nil},
	"3": {"Mercedes star", []string{"rotate=90"}},
	"4": {"Mercedes star", []string{"rotate=270"}},
	"s": {"square", nil},
	"p": {"pentagon", nil},
	"*": {"asterisk", nil},
	"h": {"star", nil},
	"H": {"star", nil},
	"d": {"diamond", nil},
	"D": {"diamond", nil},
	"|": {"|", nil},
	"_": {"-", nil},
}

// Marks without an interior are never drawn filled.
var unfillable = []string{"|", "-", "asterisk", "star"}

// LookupMarker translates a marker symbol.  The second return value is
// false if no mark is drawn: either the symbol means "no marker" or
// there is no PGFPlots counterpart (the pixel marker ",").
func LookupMarker(symbol string, filled bool) (Marker, bool) {
	if name, ok := basicMarkers[symbol]; ok {
		if filled && name == "o" {
			return Marker{Name: "*", Library: LibPlotMarks}, true
		}
		return Marker{Name: name}, true
	}

	pm, ok := plotMarks[symbol]
	if !ok {
		return Marker{}, false
	}
	m := Marker{
		Name:    pm.name,
		Options: slices.Clone(pm.options),
		Library: LibPlotMarks,
	}
	if filled && !slices.Contains(unfillable, m.Name) {
		m.Name += "*"
	}
	return m, true
}
