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

// Package emit converts the primitives of a figure into PGFPlots code.
//
// Every emitter receives the shared State of the current conversion,
// which collects the TikZ libraries, colour definitions and notices
// needed for the whole document.
package emit

import (
	"slices"

	"seehuhn.de/go/figtikz/coord"
	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/files"
	"seehuhn.de/go/figtikz/style"
)

// State is the mutable context of one conversion.  A new State must be
// used for every conversion.
type State struct {
	// Format is used for all numbers in the output.
	Format coord.Formatter

	// Files allocates names for image files.  If this is nil, images
	// cannot be converted.
	Files *files.Allocator

	// Strict disables the named TikZ line widths.
	Strict bool

	// TargetWidth, if positive, is the maximal width in pixels of
	// image files.  Wider images are scaled down.
	TargetWidth int

	libs       map[string]bool
	colorDefs  []string
	colorNames map[[3]uint8]string
	badHatches []rune
}

// NewState returns a fresh conversion state.
func NewState(format coord.Formatter, alloc *files.Allocator) *State {
	return &State{
		Format:     format,
		Files:      alloc,
		libs:       make(map[string]bool),
		colorNames: make(map[[3]uint8]string),
	}
}

// UseLibrary records that the output needs the given TikZ library.
func (s *State) UseLibrary(name string) {
	if name != "" {
		s.libs[name] = true
	}
}

// Libraries returns the required TikZ libraries, in sorted order.
func (s *State) Libraries() []string {
	res := make([]string, 0, len(s.libs))
	for name := range s.libs {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Color returns the name to use for the colour c in the output.
// Colours which are not predefined by xcolor are recorded for
// ColorDefinitions.  The alpha component is ignored.
func (s *State) Color(c figure.RGBA) string {
	r, g, b := c.Bytes()
	key := [3]uint8{r, g, b}
	if name, ok := s.colorNames[key]; ok {
		return name
	}
	name, builtin := style.ColorName(r, g, b)
	if !builtin {
		s.colorDefs = append(s.colorDefs, style.DefineColor(name, r, g, b))
	}
	s.colorNames[key] = name
	return name
}

// ColorDefinitions returns the \definecolor commands for all colours
// used so far, in order of first use.
func (s *State) ColorDefinitions() []string {
	return slices.Clone(s.colorDefs)
}

// Hatch returns the option which draws the hatch pattern h in the
// given colour, or "" if h has no supported pattern.  Unsupported
// hatch characters are collected for BadHatches.
func (s *State) Hatch(h string, color figure.RGBA) string {
	if h == "" {
		return ""
	}
	pattern, bad := style.Hatch(h)
	for _, c := range bad {
		if !slices.Contains(s.badHatches, c) {
			s.badHatches = append(s.badHatches, c)
		}
	}
	if pattern == "" {
		return ""
	}
	s.UseLibrary(style.LibPatterns)
	return style.HatchOption(pattern, s.Color(color))
}

// BadHatches returns the hatch characters without a pattern
// counterpart seen so far, in order of first use.
func (s *State) BadHatches() []rune {
	return slices.Clone(s.badHatches)
}

// colorOptions returns the options setting the colour for the given
// TikZ key ("color", "fill", "draw", ...) together with the matching
// opacity option, if the colour is not opaque.
func (s *State) colorOptions(key, opacityKey string, c figure.RGBA, alpha float64) []string {
	res := []string{key + "=" + s.Color(c)}
	if alpha < 1 && opacityKey != "" {
		res = append(res, opacityKey+"="+s.Format.Float(alpha))
	}
	return res
}
