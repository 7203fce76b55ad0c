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

package decimate

import (
	"fmt"
	"math"

	"seehuhn.de/go/figtikz/coord"
	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/notice"
	"seehuhn.de/go/geom/vec"
)

// DefaultTolerance is the default tolerance, in points.
const DefaultTolerance = 1.0

// Options control the decimation of a figure.
type Options struct {
	// Tolerance is the largest change of the rendered figure, in
	// points, which is accepted when removing a point.  If this is
	// zero, DefaultTolerance is used.
	Tolerance float64
}

func (o *Options) tolerance() float64 {
	if o == nil || o.Tolerance <= 0 {
		return DefaultTolerance
	}
	return o.Tolerance
}

var unsupported = map[figure.Kind]notice.Notice{
	figure.KindBar:            notice.New(notice.FeatureBar, "simplifying bar containers (bar plots) is not supported"),
	figure.KindLineCollection: notice.New(notice.FeatureLineCollection, "simplifying line collections is not supported"),
	figure.KindSurface3D:      notice.New(notice.FeatureSurface, "simplifying 3-D polygon collections is not supported"),
	figure.KindContour:        notice.New(notice.FeatureContour, "simplifying contour sets is not supported"),
}

var stepNotice = notice.New(notice.FeatureStep, "simplifying step plots is not implemented")

// Keep returns the indices of the points of p which are needed to draw
// it.  The primitive is not modified.
//
// For primitive kinds which cannot be simplified, Keep returns a nil
// slice and a notice.  For kinds without a point series (patches,
// images and texts), both return values are nil.
func Keep(p figure.Primitive, opts *Options) ([]int, *notice.Notice, error) {
	a := p.Axes()
	if a == nil || a.Figure() == nil {
		return nil, nil, fmt.Errorf("%s: primitive is not part of a figure", p.Kind())
	}
	if err := p.Check(); err != nil {
		return nil, nil, err
	}
	dpi := a.Figure().DPI
	tol := coord.PointsToPixels(opts.tolerance(), dpi)
	px := func(pt float64) float64 { return coord.PointsToPixels(pt, dpi) }

	var s *Series
	switch p := p.(type) {
	case *figure.Line:
		if p.IsStep() {
			return nil, &stepNotice, nil
		}
		tr, err := a.Transform()
		if err != nil {
			return nil, nil, err
		}
		s = lineSeries(p, px)
		s.Points = project2D(tr, p.X, p.Y)
		box := tr.Box()
		s.Clip = &box

	case *figure.Scatter:
		tr, err := a.Transform()
		if err != nil {
			return nil, nil, err
		}
		s = scatterSeries(p, px)
		s.Points = project2D(tr, p.X, p.Y)
		box := tr.Box()
		s.Clip = &box

	case *figure.Line3D:
		if p.IsStep() {
			return nil, &stepNotice, nil
		}
		tr, err := a.Transform3D()
		if err != nil {
			return nil, nil, err
		}
		s = lineSeries(&p.Line, px)
		s.Points = project3D(tr, p.X, p.Y, p.Z)

	case *figure.Scatter3D:
		tr, err := a.Transform3D()
		if err != nil {
			return nil, nil, err
		}
		s = scatterSeries(&p.Scatter, px)
		s.Points = project3D(tr, p.X, p.Y, p.Z)

	default:
		if n, ok := unsupported[p.Kind()]; ok {
			return nil, &n, nil
		}
		return nil, nil, nil
	}

	if !s.Lines && !s.Markers {
		// Nothing is drawn, leave the series alone.
		return allIndices(len(s.Points)), nil, nil
	}
	return Simplify(s, tol), nil, nil
}

func lineSeries(l *figure.Line, px func(float64) float64) *Series {
	return &Series{
		Lines:     l.HasLine(),
		Markers:   l.HasMarkers(),
		LinePad:   px(l.Width) / 2,
		MarkerPad: px(l.MarkerSize) / 2,
	}
}

func scatterSeries(s *figure.Scatter, px func(float64) float64) *Series {
	var radius float64
	for i := range s.Len() {
		radius = max(radius, px(s.MarkerSize(i))/2)
		if !s.PerPointSizes() {
			break
		}
	}
	return &Series{
		Markers:   true,
		MarkerPad: radius,
	}
}

func project2D(tr *figure.Transform, x, y []float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(x))
	for i := range x {
		res[i] = tr.Apply(x[i], y[i])
	}
	return res
}

func project3D(tr *figure.Transform3D, x, y, z []float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(x))
	for i := range x {
		if math.IsNaN(z[i]) {
			res[i] = vec.Vec2{X: math.NaN(), Y: math.NaN()}
			continue
		}
		res[i] = tr.Apply(x[i], y[i], z[i])
	}
	return res
}

func allIndices(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i
	}
	return res
}

// selecter is implemented by primitives whose point buffers can be
// reduced in place.
type selecter interface {
	Select(keep []int)
}

// FigureInPlace simplifies all point series of the figure, replacing
// the data buffers of the primitives.  Primitives which cannot be
// simplified are left unchanged and are reported by a notice.
func FigureInPlace(fig *figure.Figure, opts *Options) ([]notice.Notice, error) {
	var notices notice.List
	for i, a := range fig.Axes {
		for _, p := range a.DrawOrder() {
			keep, n, err := Keep(p, opts)
			if err != nil {
				return notices.All(), fmt.Errorf("axes %d: %s: %w", i, p.Kind(), err)
			}
			if n != nil {
				notices.Add(*n)
			}
			if sel, ok := p.(selecter); ok && keep != nil {
				sel.Select(keep)
			}
		}
	}
	return notices.All(), nil
}

// Count returns the total number of points in all simplifiable
// series of the figure.
func Count(fig *figure.Figure) int {
	total := 0
	for _, a := range fig.Axes {
		for _, p := range a.Primitives {
			switch p := p.(type) {
			case *figure.Line:
				total += p.Len()
			case *figure.Scatter:
				total += p.Len()
			case *figure.Line3D:
				total += p.Len()
			case *figure.Scatter3D:
				total += p.Len()
			}
		}
	}
	return total
}
