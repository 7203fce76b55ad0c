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
)

// autoscaleMargin is the fraction of the data range added on both
// sides of the data.
const autoscaleMargin = 0.05

// Autoscale sets the limits of one axis ('x', 'y' or 'z') to the range
// of the data, extended by 5% on both sides.  On log axes the margin
// is applied to the logarithms and non-positive values are ignored.
// If the axes contains no finite data, the limits are not changed.
func (a *Axes) Autoscale(axis byte) error {
	var lim *[2]float64
	var log bool
	switch axis {
	case 'x':
		lim, log = &a.XLim, a.XScale == ScaleLog
	case 'y':
		lim, log = &a.YLim, a.YScale == ScaleLog
	case 'z':
		lim = &a.ZLim
	default:
		return fmt.Errorf("invalid axis %q", axis)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	add := func(vals ...float64) {
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) || log && v <= 0 {
				continue
			}
			if log {
				v = math.Log(v)
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	for _, p := range a.Primitives {
		switch p := p.(type) {
		case *Line:
			add(pick(axis, p.X, p.Y, nil)...)
		case *Scatter:
			add(pick(axis, p.X, p.Y, nil)...)
		case *Line3D:
			add(pick(axis, p.X, p.Y, p.Z)...)
		case *Scatter3D:
			add(pick(axis, p.X, p.Y, p.Z)...)
		case *BarContainer:
			for _, b := range p.Bars {
				switch axis {
				case 'x':
					add(b.X, b.X+b.Width)
				case 'y':
					add(b.Y, b.Y+b.Height)
				}
			}
		case *Image:
			if p.Check() != nil {
				continue
			}
			e := p.DataExtent()
			switch axis {
			case 'x':
				add(e[0], e[1])
			case 'y':
				add(e[2], e[3])
			}
		}
	}
	if lo > hi {
		return nil
	}

	d := (hi - lo) * autoscaleMargin
	if d == 0 {
		d = 0.5
	}
	lo, hi = lo-d, hi+d
	if log {
		lo, hi = math.Exp(lo), math.Exp(hi)
	}
	*lim = [2]float64{lo, hi}
	return nil
}

func pick(axis byte, x, y, z []float64) []float64 {
	switch axis {
	case 'x':
		return x
	case 'y':
		return y
	}
	return z
}
