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

// Export writes all example figures as YAML documents to
// testdata/figures/, for use with the figtikz command.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/testcases"
)

func main() {
	dir := filepath.Join("testdata", "figures")
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := filepath.Join(dir, category+"_"+tc.Name+".yaml")
			if err := writeFigure(name, tc.Figure()); err != nil {
				panic(err)
			}
		}
	}
}

func writeFigure(name string, fig *figure.Figure) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = figure.Encode(f, fig)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
