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

package figtikz

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"seehuhn.de/go/figtikz/coord"
	"seehuhn.de/go/figtikz/emit"
	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/notice"
	"seehuhn.de/go/figtikz/style"
)

// maxTicks bounds the number of automatic ticks per axis.
const maxTicks = 9

type walker struct {
	state   *emit.State
	opts    *Options
	fig     *figure.Figure
	notices notice.List
}

// axes returns the axis environment for one axes.
func (w *walker) axes(a *figure.Axes) ([]string, error) {
	var body []string
	var extra []string
	for _, p := range a.DrawOrder() {
		e, err := emit.Emit(w.state, p)
		if err != nil {
			return nil, err
		}
		body = append(body, e.Lines...)
		extra = append(extra, e.AxisOptions...)
		w.notices.Add(e.Notices...)
	}

	axisOpts, err := w.axisOptions(a)
	if err != nil {
		return nil, err
	}
	for _, o := range extra {
		if !slices.Contains(axisOpts, o) {
			axisOpts = append(axisOpts, o)
		}
	}

	res := []string{`\begin{axis}[`}
	for _, o := range axisOpts {
		res = append(res, o+",")
	}
	res = append(res, "]")
	if a.Legend != nil && a.Legend.Title != "" {
		res = append(res,
			`\addlegendimage{empty legend}`,
			`\addlegendentry{`+style.Escape(a.Legend.Title)+`}`)
	}
	res = append(res, body...)
	res = append(res, `\end{axis}`)
	return res, nil
}

func (w *walker) axisOptions(a *figure.Axes) ([]string, error) {
	f := w.state.Format
	dpi := w.fig.DPI
	box := a.PixelBox()

	var res []string
	if len(w.fig.Axes) > 1 {
		x := coord.PixelsToInches(box.LLx, dpi)
		y := coord.PixelsToInches(box.LLy, dpi)
		res = append(res, "at={("+f.Float(x)+"in,"+f.Float(y)+"in)}")
	}

	width := w.opts.AxisWidth
	if width == "" {
		width = f.Float(coord.PixelsToInches(box.URx-box.LLx, dpi)) + "in"
	}
	height := w.opts.AxisHeight
	if height == "" {
		height = f.Float(coord.PixelsToInches(box.URy-box.LLy, dpi)) + "in"
	}
	res = append(res,
		"scale only axis",
		"width="+width,
		"height="+height,
		"tick align=outside",
		"tick pos=left",
	)

	res = append(res, limitOptions(f, "x", a.XLim)...)
	res = append(res, limitOptions(f, "y", a.YLim)...)
	if a.Is3D {
		res = append(res, limitOptions(f, "z", a.ZLim)...)
		res = append(res, "view={"+f.Float(a.Azim+90)+"}{"+f.Float(a.Elev)+"}")
	}

	res = append(res, modeOptions("x", a.XScale, a.XLogBase)...)
	res = append(res, modeOptions("y", a.YScale, a.YLogBase)...)

	for _, l := range []struct{ key, text string }{
		{"title", a.Title},
		{"xlabel", a.XLabel},
		{"ylabel", a.YLabel},
		{"zlabel", a.ZLabel},
	} {
		if l.text != "" {
			res = append(res, l.key+"={"+style.Escape(l.text)+"}")
		}
	}

	if a.Grid {
		res = append(res, "xmajorgrids", "ymajorgrids")
		if a.Is3D {
			res = append(res, "zmajorgrids")
		}
	}

	if !a.Is3D {
		for _, t := range []struct {
			axis   byte
			labels []string
			format string
		}{
			{'x', a.XTickLabels, a.XTickFormat},
			{'y', a.YTickLabels, a.YTickFormat},
		} {
			opts, err := w.tickOptions(a, t.axis, t.labels, t.format)
			if err != nil {
				return nil, err
			}
			res = append(res, opts...)
		}
	}

	if a.Legend != nil {
		x, y, anchor, ok := style.LegendPosition(a.Legend.Loc)
		if !ok {
			w.notices.Add(notice.New(notice.FeatureLegendLocation,
				"unknown legend location %q, using upper right", a.Legend.Loc))
			x, y, anchor, _ = style.LegendPosition("")
		}
		res = append(res,
			"legend cell align={left}",
			"legend style={at={("+f.Float(x)+","+f.Float(y)+")}, anchor="+anchor+"}")
	}

	return res, nil
}

// limitOptions returns the axis limits.  Reversed limits are written in
// increasing order, with the axis direction reversed.
func limitOptions(f coord.Formatter, axis string, lim [2]float64) []string {
	lo, hi := lim[0], lim[1]
	var res []string
	if lo > hi {
		lo, hi = hi, lo
		res = append(res, axis+" dir=reverse")
	}
	return append([]string{
		axis + "min=" + f.Float(lo),
		axis + "max=" + f.Float(hi),
	}, res...)
}

func modeOptions(axis string, s figure.Scale, base int) []string {
	if s != figure.ScaleLog {
		return nil
	}
	res := []string{axis + "mode=log"}
	if base != 0 && base != 10 {
		res = append(res, fmt.Sprintf("log basis %s={%d}", axis, base))
	}
	return res
}

// tickOptions returns the tick positions and labels of one axis.  Ticks
// are only written when labels or a label format are given; otherwise
// PGFPlots chooses its own.
func (w *walker) tickOptions(a *figure.Axes, axis byte, labels []string, format string) ([]string, error) {
	explicit := a.XTicks
	if axis == 'y' {
		explicit = a.YTicks
	}
	if explicit == nil && labels == nil && format == "" {
		return nil, nil
	}

	ticks, err := a.TickValues(axis, maxTicks)
	if err != nil {
		return nil, err
	}
	f := w.state.Format
	name := string(axis)

	pos := make([]string, len(ticks))
	for i, v := range ticks {
		pos[i] = f.Float(v)
	}
	res := []string{name + "tick={" + strings.Join(pos, ",") + "}"}

	switch {
	case labels != nil:
		esc := make([]string, len(labels))
		for i, l := range labels {
			esc[i] = "{" + style.Escape(l) + "}"
		}
		res = append(res, name+"ticklabels={"+strings.Join(esc, ",")+"}")
	case format != "":
		esc := make([]string, len(ticks))
		for i, v := range ticks {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			esc[i] = "{" + style.Escape(fmt.Sprintf(format, v)) + "}"
		}
		res = append(res, name+"ticklabels={"+strings.Join(esc, ",")+"}")
	}
	return res, nil
}
