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

// largeCases contain long series, for benchmarks.
var largeCases = []TestCase{
	{
		Name: "ramp",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := arange(0, 100000)
			a.Plot(x, slices.Clone(x), "")
			autoscale(a)
			return fig
		},
		Points: 2,
	},
	{
		Name: "signal",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(0, 100, 100000)
			a.Plot(x, apply(x, func(t float64) float64 {
				return math.Sin(t) + 0.1*math.Sin(37*t)
			}), "")
			autoscale(a)
			return fig
		},
		Points: -1,
	},
}
