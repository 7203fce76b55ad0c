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
	"image/color"

	"golang.org/x/image/colornames"
)

// xcolorBase lists the colours which xcolor predefines.
var xcolorBase = []struct {
	name    string
	r, g, b float64
}{
	{"black", 0, 0, 0},
	{"white", 1, 1, 1},
	{"red", 1, 0, 0},
	{"green", 0, 1, 0},
	{"blue", 0, 0, 1},
	{"cyan", 0, 1, 1},
	{"magenta", 1, 0, 1},
	{"yellow", 1, 1, 0},
	{"gray", 0.5, 0.5, 0.5},
	{"darkgray", 0.25, 0.25, 0.25},
	{"lightgray", 0.75, 0.75, 0.75},
	{"brown", 0.75, 0.5, 0.25},
	{"lime", 0.75, 1, 0},
	{"olive", 0.5, 0.5, 0},
	{"orange", 1, 0.5, 0},
	{"pink", 1, 0.75, 0.75},
	{"purple", 0.75, 0, 0.25},
	{"teal", 0, 0.5, 0.5},
	{"violet", 0.5, 0, 0.5},
}

func byte8(x float64) uint8 {
	return uint8(x*255 + 0.5)
}

// ColorName returns the name used for an 8-bit RGB colour in the
// generated code.  If builtin is true, the name refers to a colour
// predefined by xcolor.  Otherwise the name is derived from the
// nearest SVG colour name followed by the colour components (a single
// number for shades of gray), and the colour must be declared using
// DefineColor.
func ColorName(r, g, b uint8) (name string, builtin bool) {
	for _, c := range xcolorBase {
		if byte8(c.r) == r && byte8(c.g) == g && byte8(c.b) == b {
			return c.name, true
		}
	}

	base := nearestColorName(r, g, b)
	if r == g && g == b {
		return fmt.Sprintf("%s%d", base, r), false
	}
	return fmt.Sprintf("%s%d%d%d", base, r, g, b), false
}

// nearestColorName finds the SVG colour name closest to the given
// colour, in the RGB cube.
func nearestColorName(r, g, b uint8) string {
	best := ""
	bestDist := -1
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		dr := int(c.R) - int(r)
		dg := int(c.G) - int(g)
		db := int(c.B) - int(b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// DefineColor returns the xcolor declaration of a named colour.
func DefineColor(name string, r, g, b uint8) string {
	return fmt.Sprintf("\\definecolor{%s}{RGB}{%d,%d,%d}", name, r, g, b)
}

// RGBA8 converts any colour to non-premultiplied 8-bit RGBA.
func RGBA8(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
