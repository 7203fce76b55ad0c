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

package files

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNames(t *testing.T) {
	a := NewAllocator(nil, "/out", "plots", "fig")
	type result struct{ abs, rel string }
	var got []result
	for _, kind := range []string{"img", "img", "data", "img"} {
		abs, rel := a.New(kind, ".png")
		got = append(got, result{abs, rel})
	}
	want := []result{
		{filepath.Join("/out", "fig-img000.png"), "plots/fig-img000.png"},
		{filepath.Join("/out", "fig-img001.png"), "plots/fig-img001.png"},
		{filepath.Join("/out", "fig-data000.png"), "plots/fig-data000.png"},
		{filepath.Join("/out", "fig-img002.png"), "plots/fig-img002.png"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRelativeDirSlashes(t *testing.T) {
	a := NewAllocator(nil, "", `sub\dir`, "")
	_, rel := a.New("img", ".png")
	if rel != "sub/dir/figure-img000.png" {
		t.Errorf("got %q", rel)
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	root, err := os.OpenRoot(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer root.Close()

	a := NewAllocator(root, dir, "", "test")
	w, abs, rel, err := a.Create("img", ".png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if rel != "test-img000.png" {
		t.Errorf("rel = %q", rel)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "data" {
		t.Errorf("file contains %q", data)
	}
	if got := a.Created(); !slices.Equal(got, []string{abs}) {
		t.Errorf("Created() = %v", got)
	}

	b := NewAllocator(nil, dir, "", "test")
	if _, _, _, err := b.Create("img", ".png"); err == nil {
		t.Error("missing directory not reported")
	}
}
