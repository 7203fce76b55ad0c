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
	"math"
	"strings"

	"github.com/aclements/go-gg/palette"
)

// Colormap maps values in [0, 1] to colours.
type Colormap struct {
	Name string

	// pgf is the name of the equivalent PGFPlots colour map, or "" if
	// the map must be defined inline.
	pgf string

	palette palette.Continuous
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

var colormaps = map[string]*Colormap{
	"viridis": {
		Name:    "viridis",
		pgf:     "viridis",
		palette: palette.Viridis,
	},
	"gray": {
		Name: "gray",
		pgf:  "blackwhite",
		palette: palette.RGBGradient{Colors: []color.RGBA{
			rgb(0, 0, 0), rgb(255, 255, 255),
		}},
	},
	"hot": {
		Name: "hot",
		pgf:  "hot2",
		palette: palette.RGBGradient{Colors: []color.RGBA{
			rgb(11, 0, 0), rgb(94, 0, 0), rgb(178, 0, 0),
			rgb(255, 7, 0), rgb(255, 90, 0), rgb(255, 174, 0),
			rgb(255, 255, 4), rgb(255, 255, 130), rgb(255, 255, 255),
		}},
	},
	"cool": {
		Name: "cool",
		pgf:  "cool",
		palette: palette.RGBGradient{Colors: []color.RGBA{
			rgb(0, 255, 255), rgb(255, 0, 255),
		}},
	},
	"jet": {
		Name: "jet",
		pgf:  "jet",
		palette: palette.RGBGradient{Colors: []color.RGBA{
			rgb(0, 0, 128), rgb(0, 0, 255), rgb(0, 128, 255),
			rgb(0, 255, 255), rgb(128, 255, 128), rgb(255, 255, 0),
			rgb(255, 128, 0), rgb(255, 0, 0), rgb(128, 0, 0),
		}},
	},
	"coolwarm": {
		Name: "coolwarm",
		palette: palette.RGBGradient{Colors: []color.RGBA{
			rgb(59, 76, 192), rgb(124, 159, 249), rgb(192, 212, 245),
			rgb(242, 203, 183), rgb(238, 133, 105), rgb(180, 4, 38),
		}},
	},
}

// DefaultColormap is used when no colour map is given.
const DefaultColormap = "viridis"

// LookupColormap returns the colour map with the given name.  The empty
// name selects the default map.  For unknown names, the default map is
// returned together with false.
func LookupColormap(name string) (*Colormap, bool) {
	if name == "" {
		name = DefaultColormap
	}
	if cm, ok := colormaps[name]; ok {
		return cm, true
	}
	return colormaps[DefaultColormap], false
}

// Map returns the colour for a value in [0, 1].  Values outside the
// range are clamped; NaN maps to a transparent colour.
func (cm *Colormap) Map(x float64) color.NRGBA {
	if math.IsNaN(x) {
		return color.NRGBA{}
	}
	x = max(0, min(1, x))
	return RGBA8(cm.palette.Map(x))
}

// Normalize maps v to [0, 1] using the value limits lo and hi.
func Normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// Option returns the PGFPlots axis option selecting the colour map.
func (cm *Colormap) Option() string {
	if cm.pgf != "" {
		return "colormap/" + cm.pgf
	}
	g, ok := cm.palette.(palette.RGBGradient)
	if !ok {
		return "colormap/" + DefaultColormap
	}
	var b strings.Builder
	fmt.Fprintf(&b, "colormap={%s}{", cm.Name)
	for i, c := range g.Colors {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "rgb255=(%d,%d,%d)", c.R, c.G, c.B)
	}
	b.WriteByte('}')
	return b.String()
}
