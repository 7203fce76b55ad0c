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

// Package coord formats numbers, coordinates and file names for the
// generated PGFPlots code and converts between device pixels and
// document lengths.
package coord

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// PointsPerInch is the length of one inch in TeX points.
const PointsPerInch = 72.27

// Formatter converts floating point values to strings.  All numbers in
// one generated document use the same Formatter.
//
// The zero value uses the shortest representation which reads back to
// the same float64 value.
type Formatter struct {
	verb byte
	prec int
	set  bool
}

// ErrFormat is returned by ParseFormat for malformed format specifiers.
var ErrFormat = errors.New("invalid float format")

// ParseFormat parses a format specifier of the form "[.N]V", where N is
// the precision and V is one of the verbs f, e or g.  The empty string
// and "g" select the shortest round-trippable representation.
func ParseFormat(spec string) (Formatter, error) {
	spec = strings.TrimPrefix(spec, ":")
	if spec == "" || spec == "g" {
		return Formatter{}, nil
	}

	verb := spec[len(spec)-1]
	switch verb {
	case 'f', 'e', 'g':
		// pass
	default:
		return Formatter{}, fmt.Errorf("%w %q", ErrFormat, spec)
	}

	prec := -1
	if rest := spec[:len(spec)-1]; rest != "" {
		if rest[0] != '.' {
			return Formatter{}, fmt.Errorf("%w %q", ErrFormat, spec)
		}
		n, err := strconv.Atoi(rest[1:])
		if err != nil || n < 0 || n > 30 {
			return Formatter{}, fmt.Errorf("%w %q", ErrFormat, spec)
		}
		prec = n
	}
	return Formatter{verb: verb, prec: prec, set: true}, nil
}

// Float formats a single value.  NaN is written as "nan" and infinities
// as "inf" and "-inf", which is what PGFPlots expects for unbounded
// coordinates.
func (f Formatter) Float(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		x = 0 // avoid "-0"
	}

	verb, prec := byte('g'), -1
	if f.set {
		verb, prec = f.verb, f.prec
	}
	s := strconv.FormatFloat(x, verb, prec, 64)
	if s[0] == '-' && strings.Trim(s[1:], "0.e+-") == "" {
		s = s[1:] // rounded to zero
	}
	return s
}

// Row formats the values of one table row, separated by single spaces.
func (f Formatter) Row(vals ...float64) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.Float(v))
	}
	return b.String()
}

// AxisCS formats a point in the axis coordinate system, for use in TikZ
// path commands.
func (f Formatter) AxisCS(x, y float64) string {
	return "(axis cs:" + f.Float(x) + "," + f.Float(y) + ")"
}

// RelAxisCS formats a point given as a fraction of the axis box.
func (f Formatter) RelAxisCS(x, y float64) string {
	return "(rel axis cs:" + f.Float(x) + "," + f.Float(y) + ")"
}

// Extent formats the four values xmin, xmax, ymin, ymax positionally.
func (f Formatter) Extent(e [4]float64) string {
	return "xmin=" + f.Float(e[0]) + ", xmax=" + f.Float(e[1]) +
		", ymin=" + f.Float(e[2]) + ", ymax=" + f.Float(e[3])
}

// PosixPath returns p with forward slashes as separators, independent of
// the host operating system.  TeX treats backslashes as escape
// characters, so they never appear in file names of the output.
func PosixPath(p string) string {
	p = filepath.ToSlash(p)
	return strings.ReplaceAll(p, `\`, "/")
}

// PointsToPixels converts a length in TeX points to device pixels.
func PointsToPixels(pt, dpi float64) float64 {
	return pt / PointsPerInch * dpi
}

// PixelsToPoints converts a length in device pixels to TeX points.
func PixelsToPoints(px, dpi float64) float64 {
	return px / dpi * PointsPerInch
}

// PixelsToInches converts a length in device pixels to inches.
func PixelsToInches(px, dpi float64) float64 {
	return px / dpi
}
