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

package figure

import (
	"math"
	"strings"
)

// Default sizes, in points.
const (
	defaultLineWidth  = 1.5
	defaultMarkerSize = 6.0
)

// Tab10 is the default colour cycle.
var Tab10 = []RGBA{
	FromBytes(0x1f, 0x77, 0xb4),
	FromBytes(0xff, 0x7f, 0x0e),
	FromBytes(0x2c, 0xa0, 0x2c),
	FromBytes(0xd6, 0x27, 0x28),
	FromBytes(0x94, 0x67, 0xbd),
	FromBytes(0x8c, 0x56, 0x4b),
	FromBytes(0xe3, 0x77, 0xc2),
	FromBytes(0x7f, 0x7f, 0x7f),
	FromBytes(0xbc, 0xbd, 0x22),
	FromBytes(0x17, 0xbe, 0xcf),
}

func sqrt(x float64) float64 { return math.Sqrt(x) }

// nextColor returns the next colour of the axes colour cycle.
func (a *Axes) nextColor() RGBA {
	c := Tab10[a.cycle%len(Tab10)]
	a.cycle++
	return c
}

// Plot adds a line through the given points, using the next colour of
// the colour cycle.  The format is a short style string like "r--o",
// made of an optional colour letter, an optional line style and an
// optional marker.  An empty format draws a solid line without markers.
func (a *Axes) Plot(x, y []float64, format string) *Line {
	l := &Line{
		X:          x,
		Y:          y,
		Color:      a.nextColor(),
		Width:      defaultLineWidth,
		Style:      "-",
		MarkerSize: defaultMarkerSize,
	}
	applyFormat(l, format)
	a.Add(l)
	return l
}

// Step adds a step function.  Where is "pre", "post" or "mid".
func (a *Axes) Step(x, y []float64, where string) *Line {
	l := a.Plot(x, y, "")
	l.DrawStyle = "steps-" + where
	return l
}

// Scatter adds a scatter plot with uniform marker size.
func (a *Axes) Scatter(x, y []float64) *Scatter {
	s := &Scatter{
		X:      x,
		Y:      y,
		Color:  a.nextColor(),
		Marker: "o",
	}
	a.Add(s)
	return s
}

// Bar adds a bar plot with one bar of the given width centred at each
// x position.
func (a *Axes) Bar(x, height []float64, width float64) *BarContainer {
	b := &BarContainer{
		Color: a.nextColor(),
	}
	for i := range x {
		b.Bars = append(b.Bars, Bar{
			X:      x[i] - width/2,
			Width:  width,
			Height: height[i],
		})
	}
	a.Add(b)
	return b
}

// Imshow adds an image.  Shape is (rows, cols) for colour-mapped data
// or (rows, cols, channels) for RGB(A) data.
func (a *Axes) Imshow(data []float64, shape ...int) *Image {
	im := &Image{
		Data:     data,
		Shape:    shape,
		Colormap: "viridis",
	}
	a.Add(im)
	return im
}

// Text adds a text annotation at a position given in data coordinates.
func (a *Axes) Text(x, y float64, s string) *Text {
	t := &Text{X: x, Y: y, Text: s}
	a.Add(t)
	return t
}

// Plot3D adds a line to a three-dimensional axes.
func (a *Axes) Plot3D(x, y, z []float64, format string) *Line3D {
	l := &Line3D{
		Line: Line{
			X:          x,
			Y:          y,
			Color:      a.nextColor(),
			Width:      defaultLineWidth,
			Style:      "-",
			MarkerSize: defaultMarkerSize,
		},
		Z: z,
	}
	applyFormat(&l.Line, format)
	a.Add(l)
	return l
}

// Scatter3D adds a scatter plot to a three-dimensional axes.
func (a *Axes) Scatter3D(x, y, z []float64) *Scatter3D {
	s := &Scatter3D{
		Scatter: Scatter{
			X:      x,
			Y:      y,
			Color:  a.nextColor(),
			Marker: "o",
		},
		Z: z,
	}
	a.Add(s)
	return s
}

var formatColors = map[byte]RGBA{
	'b': {0, 0, 1, 1},
	'g': {0, 0.5, 0, 1},
	'r': {1, 0, 0, 1},
	'c': {0, 0.75, 0.75, 1},
	'm': {0.75, 0, 0.75, 1},
	'y': {0.75, 0.75, 0, 1},
	'k': {0, 0, 0, 1},
	'w': {1, 1, 1, 1},
}

const formatMarkers = ".,ov^<>1234sp*hH+xXDd|_P"

// applyFormat interprets a short style string like "k--" or "ro".
// Giving a marker but no line style turns the line off.
func applyFormat(l *Line, format string) {
	style := ""
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '-' && i+1 < len(format) && (format[i+1] == '-' || format[i+1] == '.'):
			style = format[i : i+2]
			i++
		case c == '-' || c == ':':
			style = string(c)
		default:
			if col, ok := formatColors[c]; ok {
				l.Color = col
			} else if strings.IndexByte(formatMarkers, c) >= 0 {
				l.Marker = string(c)
			}
		}
	}
	switch {
	case style != "":
		l.Style = style
	case l.Marker != "":
		l.Style = "None"
	}
}
