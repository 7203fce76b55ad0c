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

// Package testcases holds named example figures for the decimation and
// conversion tests, grouped by category in All.
package testcases

import (
	"math"

	"seehuhn.de/go/figtikz/figure"
)

// TestCase defines a single example figure.
type TestCase struct {
	Name string // lowercase a-z, 0-9 and _ only

	// Figure builds a fresh copy of the figure.
	Figure func() *figure.Figure

	// Points is the total number of points in all series after
	// decimation with the default tolerance.  A negative value means
	// that the number is not checked.
	Points int

	// Notices lists the features reported by the decimation, in
	// order.
	Notices []string
}

// Figures are 5in × 5in at 220 dpi.
const (
	figSize = 5
	figDPI  = 220
)

// single returns a figure with one axes at the default position.
func single() (*figure.Figure, *figure.Axes) {
	fig := figure.New(figSize, figSize, figDPI)
	return fig, fig.Subplots(1, 1)[0]
}

// single3D returns a figure with one three-dimensional axes.
func single3D(elev, azim float64) (*figure.Figure, *figure.Axes) {
	fig, a := single()
	a.Is3D = true
	a.Elev = elev
	a.Azim = azim
	return fig, a
}

// autoscale sets the limits of all axes from the data.
func autoscale(a *figure.Axes) {
	for _, axis := range []byte("xyz") {
		if err := a.Autoscale(axis); err != nil {
			panic(err)
		}
	}
}

// linspace returns n evenly spaced values from a to b.
func linspace(a, b float64, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return res
}

// logspace returns n values from 10^a to 10^b, evenly spaced on a log
// scale.
func logspace(a, b float64, n int) []float64 {
	return apply(linspace(a, b, n), func(x float64) float64 { return math.Pow(10, x) })
}

// arange returns the integers from a to b-1.
func arange(a, b int) []float64 {
	res := make([]float64, 0, b-a)
	for i := a; i < b; i++ {
		res = append(res, float64(i))
	}
	return res
}

func apply(x []float64, f func(float64) float64) []float64 {
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = f(v)
	}
	return res
}
