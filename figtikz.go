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

// Package figtikz converts figures into PGFPlots code for inclusion in
// LaTeX documents.
//
// Render walks the figure depth first, axes by axes and each axes in
// draw order, and emits one axis environment per axes.  CleanAndRender
// first removes the data points which do not change the appearance of
// the figure, and then renders the reduced figure.
//
// Features without a PGFPlots counterpart do not cause errors.  They
// are reported as notices in the Result.
package figtikz

//go:generate go run ./testcases/export

import (
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/figtikz/coord"
	"seehuhn.de/go/figtikz/decimate"
	"seehuhn.de/go/figtikz/emit"
	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/files"
	"seehuhn.de/go/figtikz/notice"
	"seehuhn.de/go/figtikz/style"
)

// Disclaimer is the comment written at the top of the generated code.
const Disclaimer = "% This file was created with figtikz."

// Options control the conversion.
type Options struct {
	// FloatFormat is used for all numbers in the output, for example
	// ".3f" or "g".  The empty string selects the shortest
	// representation which reads back to the same value.
	FloatFormat string

	// Tolerance is used by CleanAndRender, in points.
	Tolerance float64

	// AssetRoot is the directory where image files are written.  If
	// this is nil, figures containing images cannot be converted.
	AssetRoot *os.Root

	// AssetDir is the name of AssetRoot.  It is only used for the
	// file names in Result.Assets.
	AssetDir string

	// AssetBase is the common prefix of all asset file names.
	AssetBase string

	// RelativeDir is the asset directory as seen from the LaTeX
	// document.  It is prepended to the file names in the code.
	RelativeDir string

	// TargetWidth is the maximal width of image files, in pixels.
	// Zero means no limit.
	TargetWidth int

	// Strict disables the translation of line widths into the named
	// TikZ widths.
	Strict bool

	// Wrap encloses the code in a tikzpicture environment.
	Wrap bool

	// Disclaimer adds a comment line at the top of the code.
	Disclaimer bool

	// AxisWidth and AxisHeight, if set, replace the axes size taken
	// from the figure.  The values are TeX lengths like "8cm" or
	// "\figurewidth".
	AxisWidth, AxisHeight string
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{
		Tolerance:  decimate.DefaultTolerance,
		AssetBase:  "figure",
		Wrap:       true,
		Disclaimer: true,
	}
}

// Result is the outcome of a conversion.
type Result struct {
	// Code is the generated PGFPlots code.
	Code string

	// Libraries lists the TikZ libraries loaded by the code.
	Libraries []string

	// Notices reports features which could not be converted exactly.
	Notices []notice.Notice

	// Assets lists the files written, as native paths.
	Assets []string
}

// Render converts the figure.  The figure is not modified.
//
// If an error occurs, no code is returned.  Asset files written before
// the error stay on disk.
func Render(fig *figure.Figure, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	f, err := coord.ParseFormat(opts.FloatFormat)
	if err != nil {
		return nil, err
	}
	if err := fig.Check(); err != nil {
		return nil, err
	}

	alloc := files.NewAllocator(opts.AssetRoot, opts.AssetDir, opts.RelativeDir, opts.AssetBase)
	s := emit.NewState(f, alloc)
	s.Strict = opts.Strict
	s.TargetWidth = opts.TargetWidth

	w := &walker{
		state: s,
		opts:  opts,
		fig:   fig,
	}
	var body []string
	for i, a := range fig.Axes {
		lines, err := w.axes(a)
		if err != nil {
			return nil, fmt.Errorf("axes %d: %w", i, err)
		}
		if i > 0 {
			body = append(body, "")
		}
		body = append(body, lines...)
	}
	if bad := s.BadHatches(); len(bad) > 0 {
		w.notices.Add(notice.New(notice.FeatureHatch, "%s", style.BadHatchMessage(bad)))
	}

	libs := s.Libraries()
	var code []string
	if opts.Disclaimer {
		code = append(code, Disclaimer)
	}
	if len(libs) > 0 {
		code = append(code, `\usetikzlibrary{`+strings.Join(libs, ",")+"}")
	}
	if opts.Wrap {
		code = append(code, `\begin{tikzpicture}`, "")
	}
	if defs := s.ColorDefinitions(); len(defs) > 0 {
		code = append(code, defs...)
		code = append(code, "")
	}
	code = append(code, body...)
	if opts.Wrap {
		code = append(code, "", `\end{tikzpicture}`)
	}

	return &Result{
		Code:      strings.Join(code, "\n") + "\n",
		Libraries: libs,
		Notices:   w.notices.All(),
		Assets:    alloc.Created(),
	}, nil
}

// CleanAndRender removes redundant data points from the figure, in
// place, and then converts the figure.  The notices of both steps are
// combined in the result.
func CleanAndRender(fig *figure.Figure, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	cleanNotices, err := decimate.FigureInPlace(fig, &decimate.Options{Tolerance: opts.Tolerance})
	if err != nil {
		return nil, err
	}
	res, err := Render(fig, opts)
	if err != nil {
		return nil, err
	}

	var all notice.List
	all.Add(cleanNotices...)
	all.Add(res.Notices...)
	res.Notices = all.All()
	return res, nil
}
