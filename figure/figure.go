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

// Package figure holds the figure object graph which is converted to
// PGFPlots code: a Figure owns Axes, and each Axes owns the primitives
// drawn inside it.
//
// Besides the data, the package answers the questions the converter
// asks about the layout: the pixel box of an axes, the transformation
// from data coordinates to device pixels (linear or logarithmic), and
// the tick positions.
package figure

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Errors reported for malformed figure data.
var (
	ErrNoData = errors.New("no data")
	ErrShape  = errors.New("invalid data shape")
	ErrLength = errors.New("coordinate arrays differ in length")
	ErrLimits = errors.New("invalid axis limits")
)

// Figure is the root of the object graph.
type Figure struct {
	// Width and Height give the figure size in inches.
	Width, Height float64

	// DPI is the device resolution used for pixel-space computations.
	DPI float64

	Axes []*Axes
}

// New returns an empty figure of the given size (in inches) and
// resolution.
func New(width, height, dpi float64) *Figure {
	return &Figure{Width: width, Height: height, DPI: dpi}
}

// PixelSize returns the figure size in device pixels.
func (f *Figure) PixelSize() (w, h float64) {
	return f.Width * f.DPI, f.Height * f.DPI
}

// AddAxes adds a new two-dimensional axes.  The position is given as a
// fraction of the figure size.
func (f *Figure) AddAxes(pos rect.Rect) *Axes {
	a := &Axes{
		Position: pos,
		XLim:     [2]float64{0, 1},
		YLim:     [2]float64{0, 1},
		ZLim:     [2]float64{0, 1},
		fig:      f,
	}
	f.Axes = append(f.Axes, a)
	return a
}

// Subplot positions follow the usual plotting library defaults.
const (
	subplotLeft   = 0.125
	subplotRight  = 0.9
	subplotBottom = 0.11
	subplotTop    = 0.88
	subplotWSpace = 0.2
	subplotHSpace = 0.2
)

// Subplots adds a rows×cols grid of axes and returns them in row-major
// order, starting at the top left.
func (f *Figure) Subplots(rows, cols int) []*Axes {
	cellW := (subplotRight - subplotLeft) / (float64(cols) + subplotWSpace*float64(cols-1))
	cellH := (subplotTop - subplotBottom) / (float64(rows) + subplotHSpace*float64(rows-1))

	res := make([]*Axes, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			x0 := subplotLeft + float64(col)*cellW*(1+subplotWSpace)
			y1 := subplotTop - float64(row)*cellH*(1+subplotHSpace)
			res = append(res, f.AddAxes(rect.Rect{
				LLx: x0,
				LLy: y1 - cellH,
				URx: x0 + cellW,
				URy: y1,
			}))
		}
	}
	return res
}

// Check verifies the figure and all primitives it contains.
func (f *Figure) Check() error {
	if f.Width <= 0 || f.Height <= 0 || f.DPI <= 0 {
		return fmt.Errorf("figure size %gx%g at %g dpi: %w", f.Width, f.Height, f.DPI, ErrShape)
	}
	for i, a := range f.Axes {
		for _, p := range a.Primitives {
			if err := p.Check(); err != nil {
				return fmt.Errorf("axes %d: %s: %w", i, p.Kind(), err)
			}
		}
	}
	return nil
}

// Scale selects the mapping of one axis.
type Scale string

// These are the supported axis scales.  The empty string means linear.
const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

// Axes is a coordinate system inside a figure, together with the
// primitives drawn in it.
type Axes struct {
	// Position is the axes box, as a fraction of the figure size.
	Position rect.Rect `yaml:"position"`

	XLim [2]float64 `yaml:"xlim"`
	YLim [2]float64 `yaml:"ylim"`
	ZLim [2]float64 `yaml:"zlim,omitempty"`

	XScale   Scale `yaml:"xscale,omitempty"`
	YScale   Scale `yaml:"yscale,omitempty"`
	XLogBase int   `yaml:"xlogbase,omitempty"` // 0 means 10
	YLogBase int   `yaml:"ylogbase,omitempty"` // 0 means 10

	// Is3D selects a three-dimensional axes, seen from the direction
	// given by Elev and Azim (in degrees).
	Is3D bool    `yaml:"is3d,omitempty"`
	Elev float64 `yaml:"elev,omitempty"`
	Azim float64 `yaml:"azim,omitempty"`

	Title  string `yaml:"title,omitempty"`
	XLabel string `yaml:"xlabel,omitempty"`
	YLabel string `yaml:"ylabel,omitempty"`
	ZLabel string `yaml:"zlabel,omitempty"`

	// XTicks and YTicks, if set, replace the automatic tick locations.
	XTicks      []float64 `yaml:"xticks,omitempty"`
	YTicks      []float64 `yaml:"yticks,omitempty"`
	XTickLabels []string  `yaml:"xticklabels,omitempty"`
	YTickLabels []string  `yaml:"yticklabels,omitempty"`

	// XTickFormat and YTickFormat are printf-style formats for the
	// tick labels, for example "%.02f".
	XTickFormat string `yaml:"xtickformat,omitempty"`
	YTickFormat string `yaml:"ytickformat,omitempty"`

	Grid   bool    `yaml:"grid,omitempty"`
	Legend *Legend `yaml:"legend,omitempty"`

	Primitives []Primitive `yaml:"-"`

	fig   *Figure
	cycle int
}

// Legend describes the legend of an axes.  Entries are taken from the
// labels of the primitives.
type Legend struct {
	// Loc is the legend location, for example "upper right" or "best".
	Loc   string `yaml:"loc,omitempty"`
	Title string `yaml:"title,omitempty"`
}

// Figure returns the figure the axes belongs to.
func (a *Axes) Figure() *Figure {
	return a.fig
}

// Add appends primitives to the axes and links them back to it.
func (a *Axes) Add(ps ...Primitive) {
	for _, p := range ps {
		p.common().axes = a
		a.Primitives = append(a.Primitives, p)
	}
}

// DrawOrder returns the primitives in the order they are drawn:
// ascending z-order, with ties kept in insertion order.
func (a *Axes) DrawOrder() []Primitive {
	res := slices.Clone(a.Primitives)
	slices.SortStableFunc(res, func(p, q Primitive) int {
		switch zp, zq := p.Z(), q.Z(); {
		case zp < zq:
			return -1
		case zp > zq:
			return 1
		}
		return 0
	})
	return res
}

// PixelBox returns the axes box in device pixels, with the origin in
// the lower left corner of the figure.
func (a *Axes) PixelBox() rect.Rect {
	w, h := a.fig.PixelSize()
	return rect.Rect{
		LLx: a.Position.LLx * w,
		LLy: a.Position.LLy * h,
		URx: a.Position.URx * w,
		URy: a.Position.URy * h,
	}
}

// HasLegend reports whether a legend is shown for the axes.
func (a *Axes) HasLegend() bool {
	return a.Legend != nil
}
