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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/figtikz/decimate"
)

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figtikz.yaml")
	data := "output:\n  float_format: .4g\nclean:\n  enabled: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.FloatFormat != ".4g" || !cfg.Clean.Enabled {
		t.Errorf("settings not read: %+v", cfg)
	}
	if !cfg.Output.Wrap || !cfg.Output.Disclaimer {
		t.Error("defaults lost")
	}
	if cfg.Clean.Tolerance != decimate.DefaultTolerance {
		t.Errorf("tolerance %g", cfg.Clean.Tolerance)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "output: [1, 2\n"},
		{"tolerance", "clean:\n  tolerance: -1\n"},
		{"type", "output:\n  wrap: maybe\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("no error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v", cfg)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "figtikz.yaml")
	cfg := Default()
	cfg.Output.Wrap = false
	cfg.Output.AxisWidth = `\figurewidth`
	cfg.Assets.RelativeDir = "img"
	cfg.Clean.Tolerance = 0.5
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestToOptions(t *testing.T) {
	cfg := Default()
	cfg.Output.Strict = true
	cfg.Assets.Base = "plot"
	cfg.Assets.TargetWidth = 300
	cfg.Clean.Tolerance = 2

	opts := cfg.ToOptions()
	if !opts.Strict || opts.AssetBase != "plot" || opts.TargetWidth != 300 || opts.Tolerance != 2 {
		t.Errorf("wrong options: %+v", opts)
	}
	if !opts.Wrap || !opts.Disclaimer {
		t.Error("defaults lost")
	}

	opts = Default().ToOptions()
	if opts.AssetBase != "figure" {
		t.Errorf("asset base %q", opts.AssetBase)
	}
}
