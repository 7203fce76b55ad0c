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

package emit

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/notice"
	"seehuhn.de/go/figtikz/style"
)

// emitLine converts lines in two and three dimensions:
//
//	\addplot [color=steelblue31119180, line width=1.5pt]
//	table {%
//	0 1
//	1 2
//	};
func emitLine(s *State, p figure.Primitive) (Emission, error) {
	var l *figure.Line
	var z []float64
	switch p := p.(type) {
	case *figure.Line:
		l = p
	case *figure.Line3D:
		l = &p.Line
		z = p.Z
	default:
		return Emission{}, fmt.Errorf("unexpected type %T", p)
	}

	var res Emission
	if !l.HasLine() && !l.HasMarkers() {
		return res, nil
	}

	var opts []string
	if hasNaN(l.X, l.Y, z) {
		opts = append(opts, "unbounded coords=jump")
	}
	opts = append(opts, s.colorOptions("color", "opacity", l.Color, l.Opacity(l.Color))...)

	if l.HasLine() {
		if w := style.LineWidth(s.Format, l.Width, s.Strict); w != "" {
			opts = append(opts, w)
		}
		opts = append(opts, style.LineStyle(s.Format, l.Style, l.Dashes, l.DashOffset)...)
		if c, ok := style.Cap(l.CapStyle); ok {
			opts = append(opts, style.CapOption(c))
		}
		if j, ok := style.Join(l.JoinStyle); ok {
			opts = append(opts, style.JoinOption(j))
		}
		if l.IsStep() {
			opts = append(opts, style.DrawStyle(l.DrawStyle))
			res.Notices = append(res.Notices, notice.New(notice.FeatureStep,
				"step plots are drawn using PGFPlots' const plot handlers"))
		}
	} else {
		opts = append(opts, "only marks")
	}

	if l.HasMarkers() {
		m, ok := style.LookupMarker(l.Marker, l.MarkerFilled())
		switch {
		case ok:
			s.UseLibrary(m.Library)
			opts = append(opts,
				"mark="+m.Name,
				"mark size="+s.Format.Float(l.MarkerSize/2))
			if mo := s.markOptions(l, m); len(mo) > 0 {
				opts = append(opts, "mark options={"+strings.Join(mo, ", ")+"}")
			}
		case !l.HasLine():
			res.Notices = append(res.Notices, notice.New(notice.FeatureMarker,
				"marker %q has no PGFPlots counterpart", l.Marker))
			return res, nil
		}
	}

	if forgetPlot(p) {
		opts = append(opts, "forget plot")
	}

	cmd := `\addplot`
	if z != nil {
		cmd = `\addplot3`
	}
	res.Lines = append(res.Lines, cmd+" "+options(opts), "table {%")
	for i := range l.X {
		if z != nil {
			res.Lines = append(res.Lines, s.Format.Row(l.X[i], l.Y[i], z[i]))
		} else {
			res.Lines = append(res.Lines, s.Format.Row(l.X[i], l.Y[i]))
		}
	}
	res.Lines = append(res.Lines, "};")
	res.Lines = append(res.Lines, legendEntry(p)...)
	return res, nil
}

// markOptions returns the entries of "mark options" for a line.
func (s *State) markOptions(l *figure.Line, m style.Marker) []string {
	var res []string
	if l.HasLine() && len(style.LineStyle(s.Format, l.Style, l.Dashes, l.DashOffset)) > 0 {
		res = append(res, "solid")
	}
	res = append(res, m.Options...)

	if !l.MarkerFilled() {
		res = append(res, "fill opacity=0")
	} else if l.MarkerFaceColor != nil && *l.MarkerFaceColor != l.Color {
		res = append(res, s.colorOptions("fill", "fill opacity", *l.MarkerFaceColor, l.Opacity(*l.MarkerFaceColor))...)
	}
	if l.MarkerEdgeColor != nil && *l.MarkerEdgeColor != l.Color {
		res = append(res, "draw="+s.Color(*l.MarkerEdgeColor))
	}
	return res
}

func hasNaN(cols ...[]float64) bool {
	for _, col := range cols {
		for _, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}

// emitScatter converts scatter plots in two and three dimensions.
// Per-point colour values are passed as point meta data, per-point
// sizes through "visualization depends on".
func emitScatter(s *State, p figure.Primitive) (Emission, error) {
	var sc *figure.Scatter
	var z []float64
	switch p := p.(type) {
	case *figure.Scatter:
		sc = p
	case *figure.Scatter3D:
		sc = &p.Scatter
		z = p.Z
	default:
		return Emission{}, fmt.Errorf("unexpected type %T", p)
	}

	var res Emission
	marker := sc.Marker
	if marker == "" {
		marker = "o"
	}
	m, ok := style.LookupMarker(marker, true)
	if !ok {
		res.Notices = append(res.Notices, notice.New(notice.FeatureMarker,
			"marker %q has no PGFPlots counterpart", marker))
		return res, nil
	}
	s.UseLibrary(m.Library)

	opts := []string{"only marks"}
	if hasNaN(sc.X, sc.Y, z) {
		opts = append([]string{"unbounded coords=jump"}, opts...)
	}
	opts = append(opts, "mark="+m.Name)

	colorByValue := len(sc.Values) > 0
	if colorByValue {
		cm, known := style.LookupColormap(sc.Colormap)
		if !known {
			res.Notices = append(res.Notices, notice.New(notice.FeatureColormap,
				"unknown colour map %q, using %s", sc.Colormap, cm.Name))
		}
		opts = append(opts, "scatter", "scatter src=explicit")
		res.AxisOptions = append(res.AxisOptions, cm.Option())
		if sc.CLim != nil {
			res.AxisOptions = append(res.AxisOptions,
				"point meta min="+s.Format.Float(sc.CLim[0]),
				"point meta max="+s.Format.Float(sc.CLim[1]))
		}
	} else {
		opts = append(opts, s.colorOptions("color", "opacity", sc.Color, sc.Opacity(sc.Color))...)
	}

	var mo []string
	mo = append(mo, m.Options...)
	if sc.EdgeColor != nil {
		mo = append(mo, "draw="+s.Color(*sc.EdgeColor))
	}
	if sc.PerPointSizes() {
		opts = append(opts,
			`visualization depends on={\thisrow{sizedata} \as\perpointmarksize}`,
			`scatter/@pre marker code/.append style={/tikz/mark size=\perpointmarksize}`)
		if !colorByValue {
			opts = append(opts, "scatter")
			mo = append(mo, "fill="+s.Color(sc.Color))
		}
	} else {
		opts = append(opts, "mark size="+s.Format.Float(sc.MarkerSize(0)/2))
	}
	if len(mo) > 0 {
		opts = append(opts, "mark options={"+strings.Join(mo, ", ")+"}")
	}
	if forgetPlot(p) {
		opts = append(opts, "forget plot")
	}

	cmd := `\addplot`
	cols := []string{"x", "y"}
	if z != nil {
		cmd = `\addplot3`
		cols = append(cols, "z")
	}
	var keys []string
	for _, c := range cols {
		keys = append(keys, c+"="+c)
	}
	if colorByValue {
		cols = append(cols, "colordata")
		keys = append(keys, "meta=colordata")
	}
	if sc.PerPointSizes() {
		cols = append(cols, "sizedata")
	}

	res.Lines = append(res.Lines, cmd+" "+options(opts))
	if colorByValue || sc.PerPointSizes() {
		res.Lines = append(res.Lines, "table "+options(keys)+"{%", strings.Join(cols, " "))
	} else {
		res.Lines = append(res.Lines, "table {%")
	}

	row := make([]float64, 0, len(cols))
	for i := range sc.X {
		row = append(row[:0], sc.X[i], sc.Y[i])
		if z != nil {
			row = append(row, z[i])
		}
		if colorByValue {
			row = append(row, sc.Values[i])
		}
		if sc.PerPointSizes() {
			row = append(row, sc.MarkerSize(i)/2)
		}
		res.Lines = append(res.Lines, s.Format.Row(row...))
	}
	res.Lines = append(res.Lines, "};")
	res.Lines = append(res.Lines, legendEntry(p)...)
	return res, nil
}
