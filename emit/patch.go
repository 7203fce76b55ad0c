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
	"strings"

	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/notice"
	"seehuhn.de/go/figtikz/style"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// emitBars draws every bar of a bar plot as a separate rectangle.
func emitBars(s *State, p figure.Primitive) (Emission, error) {
	b, ok := p.(*figure.BarContainer)
	if !ok {
		return Emission{}, fmt.Errorf("unexpected type %T", p)
	}
	res := Emission{
		Notices: []notice.Notice{notice.New(notice.FeatureBar,
			"bar containers are drawn as individual rectangles")},
	}

	face := b.Color
	opts := s.colorOptions("fill", "fill opacity", face, b.Opacity(face))
	if b.EdgeColor != nil {
		opts = append(opts, s.colorOptions("draw", "draw opacity", *b.EdgeColor, b.Opacity(*b.EdgeColor))...)
		if w := style.LineWidth(s.Format, b.LineWidth, s.Strict); w != "" && b.LineWidth > 0 {
			opts = append(opts, w)
		}
	} else {
		opts = append(opts, "draw=none")
	}
	hatchColor := figure.Black
	if b.EdgeColor != nil {
		hatchColor = *b.EdgeColor
	}
	if h := s.Hatch(b.Hatch, hatchColor); h != "" {
		opts = append(opts, h)
	}

	f := s.Format
	for _, bar := range b.Bars {
		res.Lines = append(res.Lines, fmt.Sprintf(`\draw%s %s rectangle %s;`,
			options(opts),
			f.AxisCS(bar.X, bar.Y),
			f.AxisCS(bar.X+bar.Width, bar.Y+bar.Height)))
	}
	if entry := legendEntry(p); entry != nil {
		img := append([]string{"ybar", "ybar legend"}, opts...)
		res.Lines = append(res.Lines, `\addlegendimage{`+strings.Join(img, ",")+"}")
		res.Lines = append(res.Lines, entry...)
	}
	return res, nil
}

// kappa is the control point distance for approximating a quarter
// circle by a cubic Bézier curve.
const kappa = 0.5522847498307936

// outline returns the outline of the patch in data coordinates.
func outline(p *figure.Patch) (*path.Data, error) {
	m := matrix.RotateDeg(p.Angle).Translate(p.XY[0], p.XY[1])
	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*x + m[2]*y + m[4],
			Y: m[1]*x + m[3]*y + m[5],
		}
	}

	d := &path.Data{}
	switch p.Shape {
	case figure.ShapeRectangle:
		w, h := p.Width, p.Height
		d.MoveTo(pt(0, 0)).LineTo(pt(w, 0)).LineTo(pt(w, h)).LineTo(pt(0, h)).Close()
	case figure.ShapeEllipse:
		a, b := p.Width/2, p.Height/2
		ka, kb := kappa*a, kappa*b
		d.MoveTo(pt(a, 0)).
			CubeTo(pt(a, kb), pt(ka, b), pt(0, b)).
			CubeTo(pt(-ka, b), pt(-a, kb), pt(-a, 0)).
			CubeTo(pt(-a, -kb), pt(-ka, -b), pt(0, -b)).
			CubeTo(pt(ka, -b), pt(a, -kb), pt(a, 0)).
			Close()
	case figure.ShapePolygon:
		if len(p.Vertices) == 0 {
			return nil, figure.ErrNoData
		}
		// Vertices are in data coordinates and are not rotated.
		v := func(i int) vec.Vec2 { return vec.Vec2{X: p.Vertices[i][0], Y: p.Vertices[i][1]} }
		d.MoveTo(v(0))
		for i := 1; i < len(p.Vertices); i++ {
			d.LineTo(v(i))
		}
		if !p.Open {
			d.Close()
		}
	default:
		return nil, fmt.Errorf("patch shape %q: %w", p.Shape, figure.ErrShape)
	}
	return d, nil
}

// pathCode converts a path in data coordinates to TikZ path syntax.
func (s *State) pathCode(d *path.Data) string {
	f := s.Format
	var parts []string
	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p := d.Coords[coordIdx]
			parts = append(parts, f.AxisCS(p.X, p.Y))
			coordIdx++
		case path.CmdLineTo:
			p := d.Coords[coordIdx]
			parts = append(parts, "-- "+f.AxisCS(p.X, p.Y))
			coordIdx++
		case path.CmdQuadTo:
			c, p := d.Coords[coordIdx], d.Coords[coordIdx+1]
			parts = append(parts, ".. controls "+f.AxisCS(c.X, c.Y)+" .. "+f.AxisCS(p.X, p.Y))
			coordIdx += 2
		case path.CmdCubeTo:
			c1, c2, p := d.Coords[coordIdx], d.Coords[coordIdx+1], d.Coords[coordIdx+2]
			parts = append(parts, ".. controls "+f.AxisCS(c1.X, c1.Y)+" and "+f.AxisCS(c2.X, c2.Y)+" .. "+f.AxisCS(p.X, p.Y))
			coordIdx += 3
		case path.CmdClose:
			parts = append(parts, "-- cycle")
		}
	}
	return strings.Join(parts, " ")
}

// emitPatch draws a rectangle, ellipse or polygon:
//
//	\draw[draw=black, fill=red] (axis cs:0,0) -- (axis cs:1,0) -- (axis cs:1,1) -- cycle;
func emitPatch(s *State, p figure.Primitive) (Emission, error) {
	pa, ok := p.(*figure.Patch)
	if !ok {
		return Emission{}, fmt.Errorf("unexpected type %T", p)
	}
	d, err := outline(pa)
	if err != nil {
		return Emission{}, err
	}

	var opts []string
	if pa.EdgeColor != nil && pa.LineWidth != 0 {
		opts = append(opts, s.colorOptions("draw", "draw opacity", *pa.EdgeColor, pa.Opacity(*pa.EdgeColor))...)
		if w := style.LineWidth(s.Format, pa.LineWidth, s.Strict); w != "" {
			opts = append(opts, w)
		}
		opts = append(opts, style.LineStyle(s.Format, pa.LineStyle, nil, 0)...)
	} else {
		opts = append(opts, "draw=none")
	}
	if pa.FaceColor != nil {
		opts = append(opts, s.colorOptions("fill", "fill opacity", *pa.FaceColor, pa.Opacity(*pa.FaceColor))...)
	}
	hatchColor := figure.Black
	switch {
	case pa.HatchColor != nil:
		hatchColor = *pa.HatchColor
	case pa.EdgeColor != nil:
		hatchColor = *pa.EdgeColor
	}
	hatch := s.Hatch(pa.Hatch, hatchColor)
	if hatch != "" {
		opts = append(opts, hatch)
	}

	var res Emission
	if pa.EdgeColor == nil && pa.FaceColor == nil && hatch == "" {
		return res, nil
	}
	res.Lines = append(res.Lines, `\draw`+options(opts)+" "+s.pathCode(d)+";")
	if entry := legendEntry(p); entry != nil {
		img := append([]string{"area legend"}, opts...)
		res.Lines = append(res.Lines, `\addlegendimage{`+strings.Join(img, ",")+"}")
		res.Lines = append(res.Lines, entry...)
	}
	return res, nil
}
