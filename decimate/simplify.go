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

// Package decimate removes points from line and marker series which do
// not change the rendered figure.
//
// All decisions are taken in device space: a point is removed if it
// lies outside the visible part of the axes, if it is closer than the
// tolerance to a neighbouring point, or (for lines without markers) if
// it lies within the tolerance of the straight line through its
// neighbours.  The remaining points are always a subsequence of the
// original points.
package decimate

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Series is a sequence of points in device space.
type Series struct {
	// Points holds the device coordinates.  A point with a NaN
	// coordinate breaks the line into separate runs.
	Points []vec.Vec2

	// Lines and Markers indicate how the series is drawn.
	Lines, Markers bool

	// Clip is the visible area.  If Clip is nil, no point is
	// considered invisible.
	Clip *rect.Rect

	// LinePad and MarkerPad extend the visible area: line segments
	// within LinePad of the clip box, and markers centred within
	// MarkerPad of the clip box, are visible.
	LinePad, MarkerPad float64
}

// Simplify returns the indices of the points which need to be kept to
// draw the series, in increasing order.  Points closer than tol to the
// rendered shape of the series are redundant.
//
// The result is stable: simplifying the kept points again with the
// same tolerance does not remove any further points.
func Simplify(s *Series, tol float64) []int {
	n := len(s.Points)
	keep := make([]int, n)
	for i := range keep {
		keep[i] = i
	}
	if n < 3 {
		return keep
	}

	for {
		before := len(keep)
		keep = s.breaks(keep)
		if s.Clip != nil {
			keep = s.canvas(keep)
			keep = s.breaks(keep)
		}
		keep = s.dedupe(keep, tol)
		if s.Lines && !s.Markers {
			keep = s.collinear(keep, tol)
		}
		if len(keep) == before {
			return keep
		}
	}
}

func (s *Series) isBreak(i int) bool {
	p := s.Points[i]
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// breaks removes unnecessary break points: leading and trailing ones,
// and all but the first of consecutive ones.  Without lines, breaks
// have no effect and are all removed.
func (s *Series) breaks(keep []int) []int {
	res := keep[:0]
	prevBreak := true
	for _, i := range keep {
		if s.isBreak(i) {
			if prevBreak || !s.Lines {
				continue
			}
			prevBreak = true
		} else {
			prevBreak = false
		}
		res = append(res, i)
	}
	if len(res) > 0 && s.isBreak(res[len(res)-1]) {
		res = res[:len(res)-1]
	}
	return res
}

// runs calls fn for every maximal run of non-break points in keep.
// The function may shorten the run in place and returns its new
// length.
func (s *Series) runs(keep []int, fn func(run []int) int) []int {
	res := keep[:0]
	start := 0
	for start < len(keep) {
		if s.isBreak(keep[start]) {
			res = append(res, keep[start])
			start++
			continue
		}
		end := start
		for end < len(keep) && !s.isBreak(keep[end]) {
			end++
		}
		run := keep[start:end]
		m := fn(run)
		res = append(res, run[:m]...)
		start = end
	}
	return res
}

func pad(b *rect.Rect, d float64) rect.Rect {
	return rect.Rect{LLx: b.LLx - d, LLy: b.LLy - d, URx: b.URx + d, URy: b.URy + d}
}

func inside(b rect.Rect, p vec.Vec2) bool {
	return p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy
}

// canvas removes points outside the visible area.  A point is kept if
// it lies inside the padded clip box, if one of the segments to its
// neighbours crosses the box, or (for lines) if removing it would make
// the shortened line cross the box.  Markers keep their neighbours
// across the boundary, too, so that marker and line series are cut at
// the same places.
func (s *Series) canvas(keep []int) []int {
	var d float64
	if s.Lines {
		d = s.LinePad
	}
	if s.Markers {
		d = max(d, s.MarkerPad)
	}
	box := pad(s.Clip, d)

	return s.runs(keep, func(run []int) int {
		m := 0
		for j, i := range run {
			p := s.Points[i]
			visible := inside(box, p)
			if !visible && j > 0 && crosses(box, s.Points[run[j-1]], p) {
				visible = true
			}
			if !visible && j+1 < len(run) {
				next := s.Points[run[j+1]]
				visible = crosses(box, p, next) ||
					s.Lines && m > 0 && crosses(box, s.Points[run[m-1]], next)
			}
			if visible {
				run[m] = i
				m++
			}
		}
		return m
	})
}

// crosses reports whether the segment from a to b meets the box.
// This uses Liang-Barsky clipping.
func crosses(b rect.Rect, a, c vec.Vec2) bool {
	d := c.Sub(a)
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
		return true
	}
	return clip(-d.X, a.X-b.LLx) &&
		clip(d.X, b.URx-a.X) &&
		clip(-d.Y, a.Y-b.LLy) &&
		clip(d.Y, b.URy-a.Y) &&
		t0 <= t1
}

// dedupe removes points closer than tol to the previous kept point.
// The last point of a run is kept in place of the last kept point, so
// that the line ends at the right place.  Only runs of identical
// points collapse to a single point.
func (s *Series) dedupe(keep []int, tol float64) []int {
	return s.runs(keep, func(run []int) int {
		if len(run) < 2 {
			return len(run)
		}
		m := 1
		for _, i := range run[1:] {
			if s.Points[i].Sub(s.Points[run[m-1]]).Length() >= tol {
				run[m] = i
				m++
			}
		}
		last := run[len(run)-1]
		switch {
		case run[m-1] == last:
			// pass
		case m > 1:
			run[m-1] = last
		case s.Points[last] != s.Points[run[0]]:
			run[1] = last
			m = 2
		}
		return m
	})
}

// collinear removes points which lie within tol of the straight line
// replacing them.  All points removed between two kept points are
// checked against the new segment.
func (s *Series) collinear(keep []int, tol float64) []int {
	return s.runs(keep, func(run []int) int {
		if len(run) < 3 {
			return len(run)
		}
		m := 1
		anchor := 0 // index into run of the last kept point
		for j := 1; j < len(run)-1; j++ {
			a := s.Points[run[anchor]]
			b := s.Points[run[j+1]]
			redundant := true
			for k := anchor + 1; k <= j; k++ {
				if segmentDist(s.Points[run[k]], a, b) >= tol {
					redundant = false
					break
				}
			}
			if !redundant {
				run[m] = run[j]
				m++
				anchor = j
			}
		}
		run[m] = run[len(run)-1]
		return m + 1
	})
}

// segmentDist returns the distance of p from the segment from a to b.
func segmentDist(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(d) / l2
	t = max(0, min(1, t))
	return p.Sub(a.Add(d.Mul(t))).Length()
}
