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

// Command genpdf draws preview PDFs of the example figures.  Each data
// series is drawn twice: all points in light gray, and the points kept
// by the decimation in black, with a small square at every kept point.
// The axes boxes are outlined.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/figtikz/decimate"
	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc.Figure(), pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// series is a data series in device pixels.
type series struct {
	pts   []vec.Vec2
	keep  []int
	lines bool
}

func generatePDF(fig *figure.Figure, pdfPath string) error {
	w, h := fig.PixelSize()
	s := 72 / fig.DPI
	paper := &pdf.Rectangle{URx: w * s, URy: h * s}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// draw in device pixels
	page.Transform(matrix.Scale(s, s))

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	for _, a := range fig.Axes {
		b := a.PixelBox()
		page.Rectangle(b.LLx, b.LLy, b.URx-b.LLx, b.URy-b.LLy)
		page.Stroke()
	}

	var all []series
	for _, a := range fig.Axes {
		for _, p := range a.DrawOrder() {
			sr, err := project(p)
			if err != nil {
				return err
			}
			if sr != nil {
				all = append(all, *sr)
			}
		}
	}

	page.SetStrokeColor(color.DeviceGray(0.8))
	page.SetFillColor(color.DeviceGray(0.8))
	page.SetLineWidth(4)
	for _, sr := range all {
		drawSeries(page, sr.pts, nil, sr.lines, 3)
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetFillColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	for _, sr := range all {
		drawSeries(page, sr.pts, sr.keep, sr.lines, 1.5)
	}

	return page.Close()
}

// project returns the points of p in device pixels, together with the
// indices kept by the decimation.  Primitives without a point series
// give nil.
func project(p figure.Primitive) (*series, error) {
	keep, _, err := decimate.Keep(p, nil)
	if err != nil || keep == nil {
		return nil, err
	}

	a := p.Axes()
	sr := &series{keep: keep}
	switch p := p.(type) {
	case *figure.Line:
		tr, err := a.Transform()
		if err != nil {
			return nil, err
		}
		for i := range p.X {
			sr.pts = append(sr.pts, tr.Apply(p.X[i], p.Y[i]))
		}
		sr.lines = p.HasLine()
	case *figure.Scatter:
		tr, err := a.Transform()
		if err != nil {
			return nil, err
		}
		for i := range p.X {
			sr.pts = append(sr.pts, tr.Apply(p.X[i], p.Y[i]))
		}
	case *figure.Line3D:
		tr, err := a.Transform3D()
		if err != nil {
			return nil, err
		}
		for i := range p.X {
			sr.pts = append(sr.pts, tr.Apply(p.X[i], p.Y[i], p.Z[i]))
		}
		sr.lines = p.HasLine()
	case *figure.Scatter3D:
		tr, err := a.Transform3D()
		if err != nil {
			return nil, err
		}
		for i := range p.X {
			sr.pts = append(sr.pts, tr.Apply(p.X[i], p.Y[i], p.Z[i]))
		}
	default:
		return nil, nil
	}
	return sr, nil
}

// drawSeries draws the points with the given indices, or all points if
// idx is nil.  Non-finite points break the line.
func drawSeries(page *document.Page, pts []vec.Vec2, idx []int, lines bool, r float64) {
	if idx == nil {
		idx = make([]int, len(pts))
		for i := range idx {
			idx[i] = i
		}
	}

	if lines {
		open, drawn := false, false
		for _, i := range idx {
			p := pts[i]
			if !finite(p) {
				open = false
				continue
			}
			if open {
				page.LineTo(p.X, p.Y)
				drawn = true
			} else {
				page.MoveTo(p.X, p.Y)
				open = true
			}
		}
		if drawn {
			page.Stroke()
		}
	}

	n := 0
	for _, i := range idx {
		p := pts[i]
		if finite(p) {
			page.Rectangle(p.X-r, p.Y-r, 2*r, 2*r)
			n++
		}
	}
	if n > 0 {
		page.Fill()
	}
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
