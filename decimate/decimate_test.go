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

package decimate_test

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/figtikz/decimate"
	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/testcases"
	"seehuhn.de/go/geom/rect"
)

func TestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				fig := tc.Figure()
				before := decimate.Count(fig)

				notices, err := decimate.FigureInPlace(fig, nil)
				if err != nil {
					t.Fatal(err)
				}

				after := decimate.Count(fig)
				if after > before {
					t.Errorf("point count grew from %d to %d", before, after)
				}
				if tc.Points >= 0 && after != tc.Points {
					t.Errorf("got %d points, want %d", after, tc.Points)
				}

				var features []string
				for _, n := range notices {
					features = append(features, n.Feature)
				}
				if !slices.Equal(features, tc.Notices) {
					t.Errorf("got notices %q, want %q", features, tc.Notices)
				}

				if err := fig.Check(); err != nil {
					t.Errorf("figure broken after decimation: %v", err)
				}
			})
		}
	}
}

// TestStable checks that a second decimation pass removes nothing.
func TestStable(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			fig := tc.Figure()
			if _, err := decimate.FigureInPlace(fig, nil); err != nil {
				t.Fatal(err)
			}
			n := decimate.Count(fig)
			if _, err := decimate.FigureInPlace(fig, nil); err != nil {
				t.Fatal(err)
			}
			if m := decimate.Count(fig); m != n {
				t.Errorf("%s_%s: second pass reduced %d points to %d", category, tc.Name, n, m)
			}
		}
	}
}

func TestKeepEndpoints(t *testing.T) {
	fig := figure.New(5, 5, 220)
	a := fig.Subplots(1, 1)[0]
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	l := a.Plot(x, y, "")
	a.XLim = [2]float64{-1, 10}
	a.YLim = [2]float64{-1, 10}

	keep, n, err := decimate.Keep(l, nil)
	if err != nil || n != nil {
		t.Fatalf("unexpected result: %v %v", n, err)
	}
	if !slices.Equal(keep, []int{0, 9}) {
		t.Errorf("got %v, want [0 9]", keep)
	}
	if l.Len() != 10 {
		t.Error("Keep modified the line")
	}

	// A large tolerance does not remove the end points.
	keep, _, err = decimate.Keep(l, &decimate.Options{Tolerance: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if len(keep) == 0 || keep[0] != 0 || keep[len(keep)-1] != 9 {
		t.Errorf("end points lost: %v", keep)
	}
}

func TestKeepErrors(t *testing.T) {
	l := &figure.Line{X: []float64{0, 1}, Y: []float64{0, 1}}
	if _, _, err := decimate.Keep(l, nil); err == nil {
		t.Error("primitive without axes accepted")
	}

	fig := figure.New(5, 5, 100)
	a := fig.AddAxes(rect.Rect{LLx: 0.1, LLy: 0.1, URx: 0.9, URy: 0.9})
	l = a.Plot([]float64{0, 1, 2}, []float64{0, 1}, "")
	if _, _, err := decimate.Keep(l, nil); !errors.Is(err, figure.ErrLength) {
		t.Errorf("mismatched lengths: got %v", err)
	}

	fig = figure.New(5, 5, 100)
	a = fig.Subplots(1, 1)[0]
	a.Plot([]float64{1, 2, 3}, []float64{1, 2, 3}, "")
	a.XScale = figure.ScaleLog
	a.XLim = [2]float64{0, 10}
	if _, err := decimate.FigureInPlace(fig, nil); !errors.Is(err, figure.ErrLimits) {
		t.Errorf("log axis through zero: got %v", err)
	}
}

func TestKeepPassive(t *testing.T) {
	fig := figure.New(5, 5, 100)
	a := fig.Subplots(1, 1)[0]
	txt := a.Text(0, 0, "label")
	keep, n, err := decimate.Keep(txt, nil)
	if keep != nil || n != nil || err != nil {
		t.Errorf("text: got %v %v %v", keep, n, err)
	}
}
