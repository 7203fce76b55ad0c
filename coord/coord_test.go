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

package coord

import (
	"errors"
	"math"
	"testing"
)

func TestFloat(t *testing.T) {
	cases := []struct {
		spec string
		in   float64
		want string
	}{
		{"", 1, "1"},
		{"", 0.1, "0.1"},
		{"", 1.0 / 3, "0.3333333333333333"},
		{"", -0.0, "0"},
		{"", 1e-7, "1e-07"},
		{"", math.NaN(), "nan"},
		{"", math.Inf(1), "inf"},
		{"", math.Inf(-1), "-inf"},
		{"g", 2.5, "2.5"},
		{".3f", 2.5, "2.500"},
		{".3f", -0.0001, "0.000"},
		{".2e", 12345, "1.23e+04"},
		{".6g", 1.0 / 3, "0.333333"},
		{":.1f", 0.26, "0.3"},
	}
	for _, c := range cases {
		f, err := ParseFormat(c.spec)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", c.spec, err)
		}
		if got := f.Float(c.in); got != c.want {
			t.Errorf("%q: Float(%g) = %q, want %q", c.spec, c.in, got, c.want)
		}
	}
}

func TestParseFormatErrors(t *testing.T) {
	for _, spec := range []string{"x", ".f3", "3f", ".-1f", "%d"} {
		_, err := ParseFormat(spec)
		if !errors.Is(err, ErrFormat) {
			t.Errorf("ParseFormat(%q): got %v, want ErrFormat", spec, err)
		}
	}
}

func TestExtent(t *testing.T) {
	var f Formatter
	got := f.Extent([4]float64{-0.5, 9.5, 9.5, -0.5})
	want := "xmin=-0.5, xmax=9.5, ymin=9.5, ymax=-0.5"
	if got != want {
		t.Errorf("Extent = %q, want %q", got, want)
	}

	f, _ = ParseFormat(".1f")
	got = f.Extent([4]float64{0, 1, 2, 3})
	want = "xmin=0.0, xmax=1.0, ymin=2.0, ymax=3.0"
	if got != want {
		t.Errorf("Extent = %q, want %q", got, want)
	}
}

func TestRowAndAxisCS(t *testing.T) {
	var f Formatter
	if got := f.Row(1, 2.5, math.NaN()); got != "1 2.5 nan" {
		t.Errorf("Row = %q", got)
	}
	if got := f.AxisCS(1, -2); got != "(axis cs:1,-2)" {
		t.Errorf("AxisCS = %q", got)
	}
	if got := f.RelAxisCS(0.5, 1); got != "(rel axis cs:0.5,1)" {
		t.Errorf("RelAxisCS = %q", got)
	}
}

func TestPosixPath(t *testing.T) {
	cases := map[string]string{
		"fig-img000.png":         "fig-img000.png",
		"sub/dir/fig.png":        "sub/dir/fig.png",
		`sub\dir\fig-img001.png`: "sub/dir/fig-img001.png",
	}
	for in, want := range cases {
		if got := PosixPath(in); got != want {
			t.Errorf("PosixPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnits(t *testing.T) {
	const dpi = 220
	px := PointsToPixels(1, dpi)
	if math.Abs(px-dpi/PointsPerInch) > 1e-12 {
		t.Errorf("PointsToPixels(1) = %g", px)
	}
	if pt := PixelsToPoints(px, dpi); math.Abs(pt-1) > 1e-12 {
		t.Errorf("round trip gave %g pt", pt)
	}
	if in := PixelsToInches(1100, dpi); in != 5 {
		t.Errorf("PixelsToInches = %g, want 5", in)
	}
}
