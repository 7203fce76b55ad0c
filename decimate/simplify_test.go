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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(xy)/2)
	for i := range res {
		res[i] = vec.Vec2{X: xy[2*i], Y: xy[2*i+1]}
	}
	return res
}

var nan = math.NaN()

func TestSimplify(t *testing.T) {
	box := &rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}
	type testCase struct {
		name string
		s    Series
		tol  float64
		want []int
	}
	cases := []testCase{
		{
			name: "short",
			s:    Series{Points: pts(0, 0, 50, 50), Lines: true},
			tol:  1,
			want: []int{0, 1},
		},
		{
			name: "identical",
			s:    Series{Points: pts(1, 1, 1, 1, 1, 1, 1, 1, 1, 1), Lines: true},
			tol:  1,
			want: []int{0},
		},
		{
			name: "straight",
			s:    Series{Points: pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0), Lines: true},
			tol:  0.5,
			want: []int{0, 5},
		},
		{
			name: "corner",
			s:    Series{Points: pts(0, 0, 5, 0, 5, 5), Lines: true},
			tol:  1,
			want: []int{0, 1, 2},
		},
		{
			name: "nearly straight",
			s:    Series{Points: pts(0, 0, 5, 0.4, 10, 0), Lines: true},
			tol:  1,
			want: []int{0, 2},
		},
		{
			name: "close points",
			s:    Series{Points: pts(0, 0, 0.3, 0.3, 5, 5, 5.2, 5.1, 10, 0), Lines: true, Markers: true},
			tol:  1,
			want: []int{0, 2, 4},
		},
		{
			name: "last point kept",
			s:    Series{Points: pts(0, 0, 5, 0, 5.3, 0), Markers: true},
			tol:  1,
			want: []int{0, 2},
		},
		{
			name: "markers on a line",
			s:    Series{Points: pts(0, 0, 10, 0, 20, 0, 30, 0), Markers: true},
			tol:  1,
			want: []int{0, 1, 2, 3},
		},
		{
			name: "breaks",
			s: Series{
				Points: pts(nan, nan, 0, 0, 10, 0, nan, 0, 0, nan, 20, 0, 30, 0, nan, nan),
				Lines:  true,
			},
			tol:  1,
			want: []int{1, 2, 3, 5, 6},
		},
		{
			name: "breaks without lines",
			s: Series{
				Points:  pts(nan, nan, 0, 0, 10, 0, nan, 0, 0, nan, 20, 0, 30, 0, nan, nan),
				Markers: true,
			},
			tol:  1,
			want: []int{1, 2, 5, 6},
		},
		{
			name: "outside",
			s:    Series{Points: pts(-10, -10, -20, -10, -30, -10), Lines: true, Clip: box},
			tol:  1,
			want: []int{},
		},
		{
			name: "crossing",
			s: Series{
				Points: pts(-30, 50, -20, 50, -10, 50, 10, 50, 20, 60, 110, 50, 120, 50),
				Lines:  true,
				Clip:   box,
			},
			tol:  1,
			want: []int{2, 3, 4, 5},
		},
		{
			name: "leaving the box",
			s: Series{
				Points: pts(50, 50, 150, 50, 150, -50, 20, -50),
				Lines:  true,
				Clip:   box,
			},
			tol:  1,
			want: []int{0, 1},
		},
		{
			name: "marker padding",
			s: Series{
				Points:    pts(-3, 50, -30, 50, -60, 50, -90, 50),
				Markers:   true,
				Clip:      box,
				MarkerPad: 5,
			},
			tol:  1,
			want: []int{0, 1},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Simplify(&c.s, c.tol)
			if !slices.Equal(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

// TestSimplifyStable checks that simplifying the result of a
// simplification does not remove further points.
func TestSimplifyStable(t *testing.T) {
	const n = 2000
	var p []vec.Vec2
	for i := range n {
		x := float64(i) / n * 300
		p = append(p, vec.Vec2{X: x - 100, Y: 50 + 40*math.Sin(x/7) + 3*math.Sin(x*1.3)})
	}
	box := &rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}

	for _, markers := range []bool{false, true} {
		s := &Series{Points: p, Lines: true, Markers: markers, Clip: box, LinePad: 1, MarkerPad: 3}
		keep := Simplify(s, 1)
		if len(keep) == 0 || len(keep) >= n {
			t.Fatalf("markers=%t: kept %d of %d points", markers, len(keep), n)
		}
		if !slices.IsSorted(keep) {
			t.Fatalf("markers=%t: indices not increasing", markers)
		}

		s2 := *s
		s2.Points = make([]vec.Vec2, len(keep))
		for i, k := range keep {
			s2.Points[i] = p[k]
		}
		again := Simplify(&s2, 1)
		if len(again) != len(keep) {
			t.Errorf("markers=%t: second pass kept %d of %d points", markers, len(again), len(keep))
		}
	}
}

func TestCrosses(t *testing.T) {
	box := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	type testCase struct {
		a, b vec.Vec2
		want bool
	}
	cases := []testCase{
		{vec.Vec2{X: -5, Y: 5}, vec.Vec2{X: 15, Y: 5}, true},
		{vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 6, Y: 6}, true},
		{vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: -1, Y: 20}, false},
		{vec.Vec2{X: -5, Y: 6}, vec.Vec2{X: 6, Y: -5}, true},
		{vec.Vec2{X: -5, Y: 4}, vec.Vec2{X: 4, Y: -5}, false},
		{vec.Vec2{X: -5, Y: 2}, vec.Vec2{X: -2, Y: -5}, false},
		{vec.Vec2{X: 11, Y: 0}, vec.Vec2{X: 11, Y: 10}, false},
		{vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 10}, true},
	}
	for i, c := range cases {
		if got := crosses(box, c.a, c.b); got != c.want {
			t.Errorf("%d: crosses(%v, %v) = %t", i, c.a, c.b, got)
		}
	}
}
