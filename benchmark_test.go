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
	"testing"

	"seehuhn.de/go/figtikz/testcases"
)

// BenchmarkCleanAndRender converts the examples with long data series.
func BenchmarkCleanAndRender(b *testing.B) {
	for _, tc := range testcases.All["large"] {
		b.Run(tc.Name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				b.StopTimer()
				fig := tc.Figure()
				b.StartTimer()
				if _, err := CleanAndRender(fig, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRender converts the long series without decimation, which
// is dominated by number formatting.
func BenchmarkRender(b *testing.B) {
	for _, tc := range testcases.All["large"] {
		fig := tc.Figure()
		b.Run(tc.Name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Render(fig, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
