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

// helix returns a spiral with growing radius around the z axis.
func helix() (x, y, z []float64) {
	theta := linspace(-4*math.Pi, 4*math.Pi, 100)
	z = linspace(-2, 2, 100)
	x = make([]float64, len(z))
	y = make([]float64, len(z))
	for i := range z {
		r := z[i]*z[i] + 1
		x[i] = r * math.Sin(theta[i])
		y[i] = r * math.Cos(theta[i])
	}
	return x, y, z
}

func cube(a *figure.Axes) {
	a.XLim = [2]float64{-2, 2}
	a.YLim = [2]float64{-2, 2}
	a.ZLim = [2]float64{-2, 2}
}

var threeDCases = []TestCase{
	{
		Name: "plot3d",
		Figure: func() *figure.Figure {
			fig, a := single3D(30, 30)
			x, y, z := helix()
			a.Plot3D(x, y, z, "")
			cube(a)
			return fig
		},
		Points: -1,
	},
	{
		Name: "scatter3d",
		Figure: func() *figure.Figure {
			fig, a := single3D(30, 30)
			x, y, z := helix()
			a.Scatter3D(x, y, z)
			cube(a)
			return fig
		},
		Points: -1,
	},
	{
		Name: "straight3d",
		Figure: func() *figure.Figure {
			fig, a := single3D(30, 30)
			t := linspace(-1, 1, 50)
			a.Plot3D(t, slices.Clone(t), slices.Clone(t), "")
			cube(a)
			return fig
		},
		Points: 2,
	},
}
