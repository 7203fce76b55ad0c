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

package testcases

import (
	"math"
	"slices"

	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/notice"
)

// cropped draws the diagonal through 20 points from 1 to 100 and
// limits both axes to the middle part.
func cropped(format string) func() *figure.Figure {
	return func() *figure.Figure {
		fig, a := single()
		x := linspace(1, 100, 20)
		a.Plot(x, slices.Clone(x), format)
		a.XLim = [2]float64{20, 80}
		a.YLim = [2]float64{20, 80}
		return fig
	}
}

var lineCases = []TestCase{
	{
		Name:   "plot",
		Figure: cropped(""),
		Points: 2,
	},
	{
		Name:   "line_no_markers",
		Figure: cropped("-"),
		Points: 2,
	},
	{
		Name:   "no_line_markers",
		Figure: cropped("*"),
		Points: 14,
	},
	{
		Name:   "line_markers",
		Figure: cropped("-*"),
		Points: 14,
	},
	{
		Name: "scatter",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(1, 100, 20)
			a.Scatter(x, slices.Clone(x))
			a.XLim = [2]float64{20, 80}
			a.YLim = [2]float64{20, 80}
			return fig
		},
		Points: 14,
	},
	{
		Name: "sine",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(1, 2*math.Pi, 100)
			a.Plot(x, apply(x, func(t float64) float64 { return math.Sin(8 * t) }), "-*")
			a.XLim = [2]float64{0.5 * math.Pi, 1.5 * math.Pi}
			a.YLim = [2]float64{-1, 1}
			return fig
		},
		Points: 62,
	},
	{
		Name: "step",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(1, 100, 20)
			a.Step(x, slices.Clone(x), "pre")
			a.XLim = [2]float64{20, 80}
			a.YLim = [2]float64{20, 80}
			return fig
		},
		Points:  20,
		Notices: []string{notice.FeatureStep},
	},
	{
		Name: "gap",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(0, 10, 11)
			y := linspace(0, 10, 11)
			y[5] = math.NaN()
			a.Plot(x, y, "")
			autoscale(a)
			return fig
		},
		Points: 5,
	},
	{
		Name: "invisible",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(1, 100, 20)
			l := a.Plot(x, slices.Clone(x), "")
			l.Style = "None"
			a.XLim = [2]float64{20, 80}
			a.YLim = [2]float64{20, 80}
			return fig
		},
		Points: 20,
	},
}

var subplotCases = []TestCase{
	{
		Name: "grid",
		Figure: func() *figure.Figure {
			fig := figure.New(figSize, figSize, figDPI)
			formats := []string{"-o", "-", "o", "--x"}
			for i, a := range fig.Subplots(2, 2) {
				x := linspace(1, 100, 20)
				a.Plot(x, slices.Clone(x), formats[i])
				a.XLim = [2]float64{20, 80}
				a.YLim = [2]float64{20, 80}
			}
			return fig
		},
		Points: 14 + 2 + 14 + 14,
	},
}
