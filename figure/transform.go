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
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// axisMap maps data values of one axis to the unit interval.
type axisMap struct {
	q    scale.Quantitative
	log  bool
	flip bool
}

func newAxisMap(lim [2]float64, s Scale, base int) (axisMap, error) {
	if math.IsNaN(lim[0]) || math.IsNaN(lim[1]) || math.IsInf(lim[0], 0) || math.IsInf(lim[1], 0) {
		return axisMap{}, fmt.Errorf("limits %v: %w", lim, ErrLimits)
	}
	switch s {
	case "", ScaleLinear:
		return axisMap{q: &scale.Linear{Min: lim[0], Max: lim[1]}}, nil
	case ScaleLog:
		if lim[0] <= 0 || lim[1] <= 0 {
			return axisMap{}, fmt.Errorf("log scale with limits %v: %w", lim, ErrLimits)
		}
		if base == 0 {
			base = 10
		}
		l, err := scale.NewLog(lim[0], lim[1], base)
		if err != nil {
			return axisMap{}, fmt.Errorf("%v: %w", err, ErrLimits)
		}
		return axisMap{q: &l, log: true, flip: lim[0] > lim[1]}, nil
	}
	return axisMap{}, fmt.Errorf("unknown axis scale %q: %w", s, ErrLimits)
}

// Map returns the position of x as a fraction of the axis length.
// Values which cannot be shown on a log axis map to NaN.
func (m axisMap) Map(x float64) float64 {
	if m.log && !(x > 0) {
		return math.NaN()
	}
	u := m.q.Map(x)
	if m.flip {
		u = 1 - u
	}
	return u
}

// Transform maps data coordinates of an axes to device pixels.
type Transform struct {
	x, y axisMap
	m    matrix.Matrix
	box  rect.Rect
}

// Transform returns the data-to-pixel transformation of the axes.
// An error wrapping ErrLimits is returned if the axis limits cannot be
// used with the axis scales.
func (a *Axes) Transform() (*Transform, error) {
	xm, err := newAxisMap(a.XLim, a.XScale, a.XLogBase)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	ym, err := newAxisMap(a.YLim, a.YScale, a.YLogBase)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	box := a.PixelBox()
	return &Transform{
		x:   xm,
		y:   ym,
		m:   matrix.Scale(box.URx-box.LLx, box.URy-box.LLy).Translate(box.LLx, box.LLy),
		box: box,
	}, nil
}

// Apply maps a point from data coordinates to device pixels.  Masked
// points (for example non-positive values on a log axis) map to NaN.
func (t *Transform) Apply(x, y float64) vec.Vec2 {
	u := t.x.Map(x)
	v := t.y.Map(y)
	return vec.Vec2{
		X: t.m[0]*u + t.m[2]*v + t.m[4],
		Y: t.m[1]*u + t.m[3]*v + t.m[5],
	}
}

// Box returns the axes box in device pixels.
func (t *Transform) Box() rect.Rect {
	return t.box
}

// Transform3D projects data coordinates of a three-dimensional axes to
// device pixels, using an orthographic view.
type Transform3D struct {
	x, y, z   axisMap
	right, up [3]float64
	m         matrix.Matrix
	box       rect.Rect
}

// Transform3D returns the projection of a three-dimensional axes.
// The data cube is normalised to the unit cube, rotated so that the
// viewer looks at it from elevation Elev and azimuth Azim, and scaled
// so that the projection of the cube fits into the axes box.
func (a *Axes) Transform3D() (*Transform3D, error) {
	var lims [3]axisMap
	for i, lim := range [][2]float64{a.XLim, a.YLim, a.ZLim} {
		m, err := newAxisMap(lim, ScaleLinear, 0)
		if err != nil {
			return nil, fmt.Errorf("%c axis: %w", "xyz"[i], err)
		}
		lims[i] = m
	}

	elev := a.Elev * math.Pi / 180
	azim := a.Azim * math.Pi / 180
	sa, ca := math.Sincos(azim)
	se, ce := math.Sincos(elev)

	box := a.PixelBox()
	return &Transform3D{
		x:     lims[0],
		y:     lims[1],
		z:     lims[2],
		right: [3]float64{-sa, ca, 0},
		up:    [3]float64{-se * ca, -se * sa, ce},
		m:     matrix.Scale(box.URx-box.LLx, box.URy-box.LLy).Translate(box.LLx, box.LLy),
		box:   box,
	}, nil
}

// Apply projects a point from data coordinates to device pixels.
func (t *Transform3D) Apply(x, y, z float64) vec.Vec2 {
	p := [3]float64{t.x.Map(x) - 0.5, t.y.Map(y) - 0.5, t.z.Map(z) - 0.5}
	u := (p[0]*t.right[0]+p[1]*t.right[1]+p[2]*t.right[2])/math.Sqrt(3) + 0.5
	v := (p[0]*t.up[0]+p[1]*t.up[1]+p[2]*t.up[2])/math.Sqrt(3) + 0.5
	return vec.Vec2{
		X: t.m[0]*u + t.m[2]*v + t.m[4],
		Y: t.m[1]*u + t.m[3]*v + t.m[5],
	}
}

// Box returns the axes box in device pixels.
func (t *Transform3D) Box() rect.Rect {
	return t.box
}

// TickValues returns the tick positions of the given axis ('x' or
// 'y').  Explicitly set ticks are returned unchanged.  Otherwise at
// most maxTicks ticks are chosen from the axis scale; ticks outside the
// axis limits are omitted.
func (a *Axes) TickValues(axis byte, maxTicks int) ([]float64, error) {
	var explicit []float64
	var lim [2]float64
	var s Scale
	var base int
	switch axis {
	case 'x':
		explicit, lim, s, base = a.XTicks, a.XLim, a.XScale, a.XLogBase
	case 'y':
		explicit, lim, s, base = a.YTicks, a.YLim, a.YScale, a.YLogBase
	default:
		return nil, fmt.Errorf("invalid axis %q", axis)
	}
	if explicit != nil {
		return explicit, nil
	}

	m, err := newAxisMap(lim, s, base)
	if err != nil {
		return nil, err
	}
	major, _ := m.q.Ticks(scale.TickOptions{Max: maxTicks})

	lo, hi := min(lim[0], lim[1]), max(lim[0], lim[1])
	eps := 1e-9 * (hi - lo)
	res := major[:0]
	for _, v := range major {
		if v >= lo-eps && v <= hi+eps {
			res = append(res, v)
		}
	}
	return res, nil
}
