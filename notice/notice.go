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

// Package notice collects reports about figure features which have no
// PGFPlots counterpart.
//
// A notice is not an error: conversion continues with a best-effort or
// empty result for the affected object.  Callers decide whether to print,
// collect or ignore the notices.
package notice

import "fmt"

// Feature names.  Every stage of a conversion uses the same name for
// the same feature, so that a feature is reported once per call.
const (
	FeatureStep           = "step plot"
	FeatureBar            = "bar container"
	FeatureLineCollection = "line collection"
	FeatureSurface        = "3-D polygon collection"
	FeatureContour        = "contour set"
	FeatureHatch          = "hatch"
	FeatureMarker         = "marker"
	FeatureColormap       = "colormap"
	FeatureLegendLocation = "legend location"
)

// Notice reports one unsupported feature.
type Notice struct {
	// Feature names the class of objects or style values affected,
	// for example "bar container" or "hatch".
	Feature string

	// Message is a human readable description.
	Message string
}

func (n Notice) String() string {
	return "figtikz: " + n.Message
}

// New returns a notice for the given feature.
func New(feature, format string, args ...any) Notice {
	return Notice{
		Feature: feature,
		Message: fmt.Sprintf(format, args...),
	}
}

// List is an ordered collection of notices with at most one notice
// per feature.  The zero value is an empty list, ready to use.
type List struct {
	items []Notice
	seen  map[string]bool
}

// Add appends notices to the list.  Notices for a feature which is
// already present are dropped.
func (l *List) Add(n ...Notice) {
	if l.seen == nil {
		l.seen = make(map[string]bool)
	}
	for _, x := range n {
		if l.seen[x.Feature] {
			continue
		}
		l.seen[x.Feature] = true
		l.items = append(l.items, x)
	}
}

// Len returns the number of notices in the list.
func (l *List) Len() int {
	return len(l.items)
}

// All returns the notices in the order they were first added.
func (l *List) All() []Notice {
	res := make([]Notice, len(l.items))
	copy(res, l.items)
	return res
}
