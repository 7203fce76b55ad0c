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
)

// Emission is the output for one primitive.
type Emission struct {
	// Lines holds the code, one line per entry, without newlines.
	Lines []string

	// AxisOptions are options the enclosing axis environment needs,
	// for example a colour map.
	AxisOptions []string

	Notices []notice.Notice
}

// An Emitter converts one kind of primitive.
type Emitter func(s *State, p figure.Primitive) (Emission, error)

var emitters = map[figure.Kind]Emitter{
	figure.KindLine:           emitLine,
	figure.KindLine3D:         emitLine,
	figure.KindScatter:        emitScatter,
	figure.KindScatter3D:      emitScatter,
	figure.KindBar:            emitBars,
	figure.KindPatch:          emitPatch,
	figure.KindImage:          emitImage,
	figure.KindText:           emitText,
	figure.KindSurface3D:      emitUnsupported,
	figure.KindLineCollection: emitUnsupported,
	figure.KindContour:        emitUnsupported,
}

// Emit converts a single primitive.  Primitives without a PGFPlots
// counterpart produce no code and a notice.
func Emit(s *State, p figure.Primitive) (Emission, error) {
	e, ok := emitters[p.Kind()]
	if !ok {
		e = emitUnsupported
	}
	res, err := e(s, p)
	if err != nil {
		return Emission{}, fmt.Errorf("%s: %w", p.Kind(), err)
	}
	return res, nil
}

var unsupportedNotices = map[figure.Kind]notice.Notice{
	figure.KindSurface3D:      notice.New(notice.FeatureSurface, "3-D polygon collections (surfaces) are not converted"),
	figure.KindLineCollection: notice.New(notice.FeatureLineCollection, "line collections are not converted"),
	figure.KindContour:        notice.New(notice.FeatureContour, "contour sets are not converted"),
}

func emitUnsupported(_ *State, p figure.Primitive) (Emission, error) {
	n, ok := unsupportedNotices[p.Kind()]
	if !ok {
		n = notice.New(p.Kind().String(), "primitives of kind %s are not converted", p.Kind())
	}
	return Emission{Notices: []notice.Notice{n}}, nil
}

// options formats a TikZ option list, including the brackets.
func options(opts []string) string {
	return "[" + strings.Join(opts, ", ") + "]"
}

// legendEntry returns the legend entry for p, if the axes has a legend
// and p has a label.
func legendEntry(p figure.Primitive) []string {
	label := p.Label()
	if label == "" || !p.Axes().HasLegend() {
		return nil
	}
	return []string{`\addlegendentry{` + style.Escape(label) + "}"}
}

// forgetPlot reports whether p must be excluded from the legend.
func forgetPlot(p figure.Primitive) bool {
	return p.Label() == "" && p.Axes().HasLegend()
}
