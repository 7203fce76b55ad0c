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
	"image/color"
	"slices"
	"testing"

	"seehuhn.de/go/figtikz/coord"
	"seehuhn.de/go/pdf/graphics"
)

func TestMarker(t *testing.T) {
	type testCase struct {
		symbol  string
		filled  bool
		name    string
		options []string
		lib     string
		ok      bool
	}
	cases := []testCase{
		{".", false, "*", nil, "", true},
		{"o", false, "o", nil, "", true},
		{"o", true, "*", nil, LibPlotMarks, true},
		{"P", true, "+", nil, "", true},
		{"X", false, "x", nil, "", true},
		{"v", false, "triangle", []string{"rotate=180"}, LibPlotMarks, true},
		{"v", true, "triangle*", []string{"rotate=180"}, LibPlotMarks, true},
		{"^", false, "triangle", nil, LibPlotMarks, true},
		{"<", false, "triangle", []string{"rotate=270"}, LibPlotMarks, true},
		{">", true, "triangle*", []string{"rotate=90"}, LibPlotMarks, true},
		{"4", false, "Mercedes star", []string{"rotate=270"}, LibPlotMarks, true},
		{"s", true, "square*", nil, LibPlotMarks, true},
		{"*", true, "asterisk", nil, LibPlotMarks, true},
		{"h", true, "star", nil, LibPlotMarks, true},
		{"_", true, "-", nil, LibPlotMarks, true},
		{"|", true, "|", nil, LibPlotMarks, true},
		{",", false, "", nil, "", false},
		{"None", false, "", nil, "", false},
		{"", true, "", nil, "", false},
	}
	for _, c := range cases {
		m, ok := LookupMarker(c.symbol, c.filled)
		if ok != c.ok || m.Name != c.name || m.Library != c.lib || !slices.Equal(m.Options, c.options) {
			t.Errorf("LookupMarker(%q, %t) = %+v, %t", c.symbol, c.filled, m, ok)
		}
	}
}

func TestHatch(t *testing.T) {
	type testCase struct {
		hatch   string
		pattern string
		bad     string
	}
	cases := []testCase{
		{"/", "north east lines", ""},
		{"\\\\", "north west lines", ""},
		{"+", "grid", ""},
		{"x", "crosshatch", ""},
		{".", "crosshatch dots", ""},
		{"*", "fivepointed stars", ""},
		{"o", "", "o"},
		{"oO", "", "oO"},
		{"o-o", "horizontal lines", "o"},
	}
	for _, c := range cases {
		pattern, bad := Hatch(c.hatch)
		if pattern != c.pattern || string(bad) != c.bad {
			t.Errorf("Hatch(%q) = %q, %q", c.hatch, pattern, string(bad))
		}
	}

	msg := BadHatchMessage([]rune{'o', 'O'})
	want := "the hatches ['o', 'O'] do not have good PGF counterparts"
	if msg != want {
		t.Errorf("got %q, want %q", msg, want)
	}
}

func TestLineStyle(t *testing.T) {
	f := coord.Formatter{}
	type testCase struct {
		style  string
		dashes []float64
		offset float64
		want   []string
	}
	cases := []testCase{
		{"-", nil, 0, nil},
		{"--", nil, 0, []string{"dashed"}},
		{":", nil, 0, []string{"dotted"}},
		{"-.", nil, 0, []string{"dash pattern=on 1pt off 3pt on 3pt off 3pt"}},
		{"--", []float64{5, 2.5}, 0, []string{"dash pattern=on 5pt off 2.5pt"}},
		{"-", []float64{1, 2, 3, 4}, 1.5, []string{"dash pattern=on 1pt off 2pt on 3pt off 4pt", "dash phase=1.5pt"}},
	}
	for _, c := range cases {
		got := LineStyle(f, c.style, c.dashes, c.offset)
		if !slices.Equal(got, c.want) {
			t.Errorf("LineStyle(%q, %v) = %q", c.style, c.dashes, got)
		}
	}
}

func TestLineWidth(t *testing.T) {
	f := coord.Formatter{}
	type testCase struct {
		w      float64
		strict bool
		want   string
	}
	cases := []testCase{
		{0.1, false, "ultra thin"},
		{0.4, false, ""},
		{0.8, false, "thick"},
		{1.6, false, "ultra thick"},
		{1.5, false, "line width=1.5pt"},
		{0.8, true, "line width=0.8pt"},
	}
	for _, c := range cases {
		if got := LineWidth(f, c.w, c.strict); got != c.want {
			t.Errorf("LineWidth(%g, %t) = %q, want %q", c.w, c.strict, got, c.want)
		}
	}
}

func TestCapJoin(t *testing.T) {
	c, ok := Cap("projecting")
	if !ok || c != graphics.LineCapSquare || CapOption(c) != "line cap=rect" {
		t.Errorf("projecting cap: %v %t %q", c, ok, CapOption(c))
	}
	if _, ok := Cap("pointy"); ok {
		t.Error("unknown cap style accepted")
	}
	j, ok := Join("bevel")
	if !ok || JoinOption(j) != "line join=bevel" {
		t.Errorf("bevel join: %v %t", j, ok)
	}
}

func TestDrawStyle(t *testing.T) {
	cases := map[string]string{
		"default":    "",
		"steps":      "const plot mark right",
		"steps-pre":  "const plot mark right",
		"steps-mid":  "const plot mark mid",
		"steps-post": "const plot mark left",
	}
	for in, want := range cases {
		if got := DrawStyle(in); got != want {
			t.Errorf("DrawStyle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestColorName(t *testing.T) {
	type testCase struct {
		r, g, b uint8
		name    string
		builtin bool
	}
	cases := []testCase{
		{0, 0, 0, "black", true},
		{255, 0, 0, "red", true},
		{128, 128, 128, "gray", true},
		{64, 64, 64, "darkgray", true},
		{31, 119, 180, "steelblue31119180", false},
		{255, 127, 14, "darkorange25512714", false},
		{176, 176, 176, "darkgray176", false},
		{127, 127, 127, "gray127", false},
	}
	for _, c := range cases {
		name, builtin := ColorName(c.r, c.g, c.b)
		if name != c.name || builtin != c.builtin {
			t.Errorf("ColorName(%d, %d, %d) = %q, %t", c.r, c.g, c.b, name, builtin)
		}
	}

	got := DefineColor("darkgray176", 176, 176, 176)
	if got != `\definecolor{darkgray176}{RGB}{176,176,176}` {
		t.Errorf("DefineColor: %q", got)
	}
}

func TestColormap(t *testing.T) {
	cm, ok := LookupColormap("gray")
	if !ok || cm.Option() != "colormap/blackwhite" {
		t.Fatalf("gray: %t %q", ok, cm.Option())
	}
	if c := cm.Map(0); c.R != 0 || c.A != 255 {
		t.Errorf("gray(0) = %v", c)
	}
	if c := cm.Map(2); c.R != 255 || c.G != 255 {
		t.Errorf("gray(2) = %v", c)
	}
	if c := cm.Map(0.5); c.R != c.G || c.G != c.B || c.R == 0 || c.R == 255 {
		t.Errorf("gray(0.5) = %v", c)
	}

	cm, ok = LookupColormap("viridis")
	if !ok || cm.Option() != "colormap/viridis" {
		t.Fatalf("viridis: %t %q", ok, cm.Option())
	}
	if c := cm.Map(0); c != (color.NRGBA{R: 0x44, G: 0x01, B: 0x54, A: 255}) {
		t.Errorf("viridis(0) = %v", c)
	}
	if c := cm.Map(1); c != (color.NRGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 255}) {
		t.Errorf("viridis(1) = %v", c)
	}

	cm, ok = LookupColormap("nonsense")
	if ok || cm.Name != DefaultColormap {
		t.Errorf("unknown map: %t %q", ok, cm.Name)
	}

	cm, _ = LookupColormap("coolwarm")
	want := "colormap={coolwarm}{rgb255=(59,76,192) rgb255=(124,159,249) rgb255=(192,212,245) rgb255=(242,203,183) rgb255=(238,133,105) rgb255=(180,4,38)}"
	if got := cm.Option(); got != want {
		t.Errorf("coolwarm: %q", got)
	}

	if got := Normalize(3, 2, 6); got != 0.25 {
		t.Errorf("Normalize: %g", got)
	}
}

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"plain":           "plain",
		"50% of a_b":      `50\% of a\_b`,
		"$\\alpha_1$ & b": `$\alpha_1$ \& b`,
		"costs $5":        `costs \$5`,
		"two\nlines":      `two\\lines`,
		"{~}":             `\{\textasciitilde{}\}`,
	}
	for in, want := range cases {
		if got := Escape(in); got != want {
			t.Errorf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAnchor(t *testing.T) {
	type testCase struct {
		ha, va, want string
	}
	cases := []testCase{
		{"", "", "base west"},
		{"center", "center", "center"},
		{"right", "top", "north east"},
		{"center", "bottom", "south"},
		{"left", "center", "west"},
	}
	for _, c := range cases {
		if got := Anchor(c.ha, c.va); got != c.want {
			t.Errorf("Anchor(%q, %q) = %q, want %q", c.ha, c.va, got, c.want)
		}
	}
}

func TestFontSize(t *testing.T) {
	cases := map[float64]string{
		0:  "",
		6:  `\scriptsize`,
		10: `\normalsize`,
		12: `\large`,
		30: `\Huge`,
	}
	for size, want := range cases {
		if got := FontSize(size); got != want {
			t.Errorf("FontSize(%g) = %q, want %q", size, got, want)
		}
	}
}

func TestLegendPosition(t *testing.T) {
	x, y, anchor, ok := LegendPosition("lower left")
	if !ok || x != 0.03 || y != 0.03 || anchor != "south west" {
		t.Errorf("lower left: %g %g %q %t", x, y, anchor, ok)
	}
	if _, _, _, ok := LegendPosition("somewhere"); ok {
		t.Error("unknown location accepted")
	}
}
