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

	"seehuhn.de/go/figtikz/figure"
)

var annotateCases = []TestCase{
	{
		Name: "patches",
		Figure: func() *figure.Figure {
			fig, a := single()
			red := figure.RGBA{1, 0, 0, 1}
			a.Add(
				&figure.Patch{
					Shape:     figure.ShapeRectangle,
					XY:        [2]float64{1, 1},
					Width:     3,
					Height:    2,
					Angle:     30,
					FaceColor: &red,
					EdgeColor: &figure.Black,
					LineWidth: 1,
					Hatch:     "//o",
				},
				&figure.Patch{
					Shape:     figure.ShapeEllipse,
					XY:        [2]float64{6, 6},
					Width:     3,
					Height:    1.5,
					FaceColor: &figure.Tab10[1],
					Hatch:     "O",
				},
				&figure.Patch{
					Shape:     figure.ShapePolygon,
					Vertices:  [][2]float64{{7, 1}, {9, 1}, {8, 3}},
					EdgeColor: &figure.Tab10[2],
					LineWidth: 2,
					LineStyle: "--",
				},
			)
			a.XLim = [2]float64{0, 10}
			a.YLim = [2]float64{0, 10}
			return fig
		},
		Points: 0,
	},
	{
		Name: "image",
		Figure: func() *figure.Figure {
			fig, a := single()
			const n = 16
			data := make([]float64, n*n)
			for i := range n {
				for j := range n {
					data[i*n+j] = math.Sin(float64(i)/3) * math.Cos(float64(j)/4)
				}
			}
			a.Imshow(data, n, n)
			a.XLim = [2]float64{-0.5, n - 0.5}
			a.YLim = [2]float64{n - 0.5, -0.5}
			return fig
		},
		Points: 0,
	},
	{
		Name: "legend",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(0, 2*math.Pi, 50)
			sin := a.Plot(x, apply(x, math.Sin), "")
			sin.Name = "$\\sin x$"
			cos := a.Plot(x, apply(x, math.Cos), "--")
			cos.Name = "$\\cos x$"
			a.Plot(x, make([]float64, len(x)), "k:")
			a.Text(math.Pi, 0.5, "50% of the period")
			a.Legend = &figure.Legend{Loc: "lower left"}
			a.Title = "Trigonometry"
			a.XLabel = "x"
			a.YLabel = "y"
			a.Grid = true
			autoscale(a)
			return fig
		},
		Points: -1,
	},
}
