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

package style

import (
	"strings"

	"seehuhn.de/go/figtikz/coord"
	"seehuhn.de/go/pdf/graphics"
)

// LineStyle translates a line style ("-", "--", "-.", ":") or a custom
// dash pattern (on/off lengths in points) into TikZ options.  A solid
// line needs no option.
func LineStyle(f coord.Formatter, style string, dashes []float64, offset float64) []string {
	if len(dashes) > 0 {
		var b strings.Builder
		b.WriteString("dash pattern=")
		for i, d := range dashes {
			if i > 0 {
				b.WriteByte(' ')
			}
			if i%2 == 0 {
				b.WriteString("on ")
			} else {
				b.WriteString("off ")
			}
			b.WriteString(f.Float(d))
			b.WriteString("pt")
		}
		res := []string{b.String()}
		if offset != 0 {
			res = append(res, "dash phase="+f.Float(offset)+"pt")
		}
		return res
	}

	switch style {
	case "--", "dashed":
		return []string{"dashed"}
	case ":", "dotted":
		return []string{"dotted"}
	case "-.", "dashdot":
		return []string{"dash pattern=on 1pt off 3pt on 3pt off 3pt"}
	}
	return nil
}

// The named TikZ line widths, in points.  0.4pt is the TikZ default.
var namedWidths = []struct {
	width float64
	name  string
}{
	{0.1, "ultra thin"},
	{0.2, "very thin"},
	{0.4, ""},
	{0.6, "semithick"},
	{0.8, "thick"},
	{1.2, "very thick"},
	{1.6, "ultra thick"},
}

// LineWidth translates a line width in points.  Widths which match a
// named TikZ width use the name, unless strict is set.  The TikZ
// default width gives "".
func LineWidth(f coord.Formatter, w float64, strict bool) string {
	if !strict {
		for _, nw := range namedWidths {
			if w == nw.width {
				return nw.name
			}
		}
	}
	return "line width=" + f.Float(w) + "pt"
}

// Cap parses a line cap name ("butt", "round" or "projecting").
func Cap(name string) (graphics.LineCapStyle, bool) {
	switch name {
	case "butt":
		return graphics.LineCapButt, true
	case "round":
		return graphics.LineCapRound, true
	case "projecting":
		return graphics.LineCapSquare, true
	}
	return 0, false
}

// CapOption returns the TikZ option for a line cap style.
func CapOption(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "line cap=round"
	case graphics.LineCapSquare:
		return "line cap=rect"
	}
	return "line cap=butt"
}

// Join parses a line join name ("miter", "round" or "bevel").
func Join(name string) (graphics.LineJoinStyle, bool) {
	switch name {
	case "miter":
		return graphics.LineJoinMiter, true
	case "round":
		return graphics.LineJoinRound, true
	case "bevel":
		return graphics.LineJoinBevel, true
	}
	return 0, false
}

// JoinOption returns the TikZ option for a line join style.
func JoinOption(j graphics.LineJoinStyle) string {
	switch j {
	case graphics.LineJoinRound:
		return "line join=round"
	case graphics.LineJoinBevel:
		return "line join=bevel"
	}
	return "line join=miter"
}

// DrawStyle translates the step draw styles into a PGFPlots plot
// handler.  For other draw styles, "" is returned.
func DrawStyle(ds string) string {
	switch ds {
	case "steps", "steps-pre":
		return "const plot mark right"
	case "steps-post":
		return "const plot mark left"
	case "steps-mid":
		return "const plot mark mid"
	}
	return ""
}
