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
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkSimplify measures the decimation of a noisy sine wave which
// extends beyond the clip box on both sides.
func BenchmarkSimplify(b *testing.B) {
	sizes := []int{1000, 10000, 100000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			pts := make([]vec.Vec2, size)
			for i := range pts {
				x := float64(i) / float64(size-1) * 1200
				noise := math.Sin(float64(i) * 12.9898)
				pts[i] = vec.Vec2{X: x - 100, Y: 500 + 300*math.Sin(x/80) + noise}
			}
			clip := rect.Rect{LLx: 0, LLy: 0, URx: 1000, URy: 1000}
			s := &Series{
				Points:  pts,
				Lines:   true,
				Clip:    &clip,
				LinePad: 1,
			}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				Simplify(s, 3)
			}
		})
	}
}

// BenchmarkSimplifyMarkers measures the decimation of a marker-only
// series, where the collinearity filter does not apply.
func BenchmarkSimplifyMarkers(b *testing.B) {
	const size = 100000
	pts := make([]vec.Vec2, size)
	for i := range pts {
		t := float64(i) / size * 2 * math.Pi
		pts[i] = vec.Vec2{X: 500 + 400*math.Cos(t), Y: 500 + 400*math.Sin(3*t)}
	}
	clip := rect.Rect{LLx: 0, LLy: 0, URx: 1000, URy: 1000}
	s := &Series{
		Points:    pts,
		Markers:   true,
		Clip:      &clip,
		MarkerPad: 10,
	}

	b.ReportAllocs()
	for b.Loop() {
		Simplify(s, 3)
	}
}
