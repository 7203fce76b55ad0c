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
)

// logPlot draws a single line with the given axis scales and limits
// taken from the data.
func logPlot(x, y []float64, xlog, ylog bool) func() *figure.Figure {
	return func() *figure.Figure {
		fig, a := single()
		a.Plot(slices.Clone(x), slices.Clone(y), "")
		if xlog {
			a.XScale = figure.ScaleLog
		}
		if ylog {
			a.YScale = figure.ScaleLog
		}
		autoscale(a)
		return fig
	}
}

var logCases = []TestCase{
	{
		Name:   "ylog",
		Figure: logPlot(linspace(0, 3, 100), apply(linspace(0, 3, 100), math.Exp), false, true),
		Points: 2,
	},
	{
		Name:   "xlog",
		Figure: logPlot(apply(linspace(0, 3, 100), math.Exp), linspace(0, 3, 100), true, false),
		Points: 2,
	},
	{
		Name:   "loglog",
		Figure: logPlot(apply(logspace(0, 1.5, 100), math.Exp), apply(logspace(0, 1.5, 100), math.Exp), true, true),
		Points: 2,
	},
	{
		Name:   "ylog_2",
		Figure: logPlot(arange(1, 100), arange(1, 100), false, true),
		Points: 9,
	},
	{
		Name:   "xlog_2",
		Figure: logPlot(arange(1, 100), arange(1, 100), true, false),
		Points: 9,
	},
	{
		Name:   "loglog_2",
		Figure: logPlot(arange(1, 100), arange(1, 100), true, true),
		Points: 2,
	},
	{
		Name: "loglog_3",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := logspace(-3, 3, 20)
			a.Plot(x, slices.Clone(x), "")
			a.XScale = figure.ScaleLog
			a.YScale = figure.ScaleLog
			a.XLim = [2]float64{1e-2, 1e2}
			a.YLim = [2]float64{1e-2, 1e2}
			return fig
		},
		Points: 2,
	},
	{
		Name: "xlog_3",
		Figure: func() *figure.Figure {
			fig, a := single()
			a.Plot(logspace(-3, 3, 20), linspace(1, 100, 20), "")
			a.XScale = figure.ScaleLog
			a.XLim = [2]float64{1e-2, 1e2}
			a.YLim = [2]float64{20, 80}
			return fig
		},
		Points: 2,
	},
}
