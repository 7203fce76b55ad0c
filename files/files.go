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

// Package files hands out names for the asset files (images) written
// next to the generated code.
package files

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"seehuhn.de/go/figtikz/coord"
)

// Allocator creates numbered asset files inside an already opened
// directory.  Names have the form <base>-<kind><NNN><ext>, with one
// counter per kind, for example "figure-img000.png".
//
// An Allocator is used for a single conversion.  Concurrent
// conversions writing to the same directory are not supported.
type Allocator struct {
	root *os.Root

	// dir is the native path of the directory, used for the absolute
	// names returned by New.
	dir string

	// relDir is the prefix used for the names in the generated code.
	relDir string

	base     string
	counters map[string]int
	created  []string
}

// NewAllocator returns an allocator writing into root.  The directory
// name dir is only used to report absolute file names.  relDir is the
// directory as seen from the TeX document; it may be empty.
func NewAllocator(root *os.Root, dir, relDir, base string) *Allocator {
	if base == "" {
		base = "figure"
	}
	return &Allocator{
		root:     root,
		dir:      dir,
		relDir:   coord.PosixPath(relDir),
		base:     base,
		counters: make(map[string]int),
	}
}

// New reserves the next file name for the given kind of asset.  abs is
// the native path of the file, rel is the name to use in the generated
// code, always with forward slashes.
func (a *Allocator) New(kind, ext string) (abs, rel string) {
	n := a.counters[kind]
	a.counters[kind] = n + 1
	name := fmt.Sprintf("%s-%s%03d%s", a.base, kind, n, ext)

	abs = filepath.Join(a.dir, name)
	rel = name
	if a.relDir != "" {
		rel = path.Join(a.relDir, name)
	}
	return abs, rel
}

// Create reserves the next file name for the given kind of asset and
// opens the file for writing.  The caller must close the file.
func (a *Allocator) Create(kind, ext string) (w io.WriteCloser, abs, rel string, err error) {
	if a.root == nil {
		return nil, "", "", fmt.Errorf("no asset directory for %s file", kind)
	}
	abs, rel = a.New(kind, ext)
	f, err := a.root.Create(filepath.Base(abs))
	if err != nil {
		return nil, "", "", err
	}
	a.created = append(a.created, abs)
	return f, abs, rel, nil
}

// Created returns the absolute names of all files created so far.
func (a *Allocator) Created() []string {
	return append([]string(nil), a.created...)
}
