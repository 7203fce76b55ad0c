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
	"seehuhn.de/go/figtikz/notice"
)

// grid returns the faces of the surface z = f(x, y) over a square grid.
func grid(lo, hi, step float64, f func(x, y float64) float64) [][][3]float64 {
	var faces [][][3]float64
	for x := lo; x+step <= hi; x += step {
		for y := lo; y+step <= hi; y += step {
			face := [][3]float64{
				{x, y, f(x, y)},
				{x + step, y, f(x+step, y)},
				{x + step, y + step, f(x+step, y+step)},
				{x, y + step, f(x, y+step)},
			}
			faces = append(faces, face)
		}
	}
	return faces
}

func ripple(x, y float64) float64 {
	return math.Sin(math.Hypot(x, y))
}

// gridLines returns the lines of a wireframe plot, projected to the
// x-y plane.
func gridLines(lo, hi, step float64) [][][2]float64 {
	var segs [][][2]float64
	for v := lo; v <= hi; v += step {
		segs = append(segs,
			[][2]float64{{v, lo}, {v, hi}},
			[][2]float64{{lo, v}, {hi, v}})
	}
	return segs
}

var unsupportedCases = []TestCase{
	{
		Name: "bar",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(1, 100, 20)
			a.Bar(x, x, 4)
			a.XLim = [2]float64{20, 80}
			a.YLim = [2]float64{20, 80}
			return fig
		},
		Points:  0,
		Notices: []string{notice.FeatureBar},
	},
	{
		Name: "hist",
		Figure: func() *figure.Figure {
			fig, a := single()
			centres := linspace(5.95, 95.05, 10)
			counts := make([]float64, len(centres))
			for i := range counts {
				counts[i] = 2
			}
			a.Bar(centres, counts, 9.9)
			a.XLim = [2]float64{20, 80}
			a.YLim = [2]float64{20, 80}
			return fig
		},
		Points:  0,
		Notices: []string{notice.FeatureBar},
	},
	{
		Name: "wireframe3d",
		Figure: func() *figure.Figure {
			fig, a := single3D(30, -60)
			a.Add(&figure.LineCollection{
				Segments: gridLines(-3, 3, 0.5),
				Color:    figure.Tab10[0],
			})
			return fig
		},
		Points:  0,
		Notices: []string{notice.FeatureLineCollection},
	},
	{
		Name: "surface3d",
		Figure: func() *figure.Figure {
			fig, a := single3D(30, -60)
			a.Add(&figure.Surface3D{
				Polygons: grid(-5, 5, 0.25, ripple),
				Colormap: "coolwarm",
			})
			a.ZLim = [2]float64{-1.01, 1.01}
			return fig
		},
		Points:  0,
		Notices: []string{notice.FeatureSurface},
	},
	{
		Name: "contour3d",
		Figure: func() *figure.Figure {
			fig, a := single3D(30, -60)
			a.Add(&figure.ContourSet{
				Levels: []float64{0.5},
				Segments: [][][2]float64{
					{{-1, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 0}},
				},
				Colormap: "coolwarm",
			})
			return fig
		},
		Points:  0,
		Notices: []string{notice.FeatureContour},
	},
	{
		Name: "mixed",
		Figure: func() *figure.Figure {
			fig, a := single()
			x := linspace(1, 100, 20)
			a.Bar(x, x, 4)
			a.Add(&figure.LineCollection{Segments: gridLines(0, 100, 25)})
			a.Plot(linspace(1, 100, 20), linspace(1, 100, 20), "")
			a.XLim = [2]float64{20, 80}
			a.YLim = [2]float64{20, 80}
			return fig
		},
		Points:  2,
		Notices: []string{notice.FeatureBar, notice.FeatureLineCollection},
	},
}
