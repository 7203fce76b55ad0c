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

// Package config handles the configuration of the figtikz command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/figtikz"
	"seehuhn.de/go/figtikz/decimate"
)

// Config is the root configuration structure.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Assets AssetsConfig `yaml:"assets"`
	Clean  CleanConfig  `yaml:"clean"`
}

// OutputConfig holds settings for the generated code.
type OutputConfig struct {
	FloatFormat string `yaml:"float_format"`
	Strict      bool   `yaml:"strict"`
	Wrap        bool   `yaml:"wrap"`
	Disclaimer  bool   `yaml:"disclaimer"`
	AxisWidth   string `yaml:"axis_width,omitempty"`
	AxisHeight  string `yaml:"axis_height,omitempty"`
}

// AssetsConfig holds settings for image files.
type AssetsConfig struct {
	// Dir is the directory where image files are written.  The empty
	// string means the directory of the output file.
	Dir string `yaml:"dir,omitempty"`

	// Base is the common prefix of the file names.  The empty string
	// means the base name of the output file.
	Base string `yaml:"base,omitempty"`

	// RelativeDir is the asset directory as seen from the LaTeX
	// document.
	RelativeDir string `yaml:"relative_dir,omitempty"`

	TargetWidth int `yaml:"target_width,omitempty"`
}

// CleanConfig holds settings for the removal of redundant points.
type CleanConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Tolerance float64 `yaml:"tolerance"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Wrap:       true,
			Disclaimer: true,
		},
		Clean: CleanConfig{
			Tolerance: decimate.DefaultTolerance,
		},
	}
}

// Load loads configuration from a file.  Settings missing in the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Clean.Tolerance <= 0 {
		return nil, fmt.Errorf("config %s: tolerance must be positive", path)
	}
	return cfg, nil
}

// LoadOrDefault loads the configuration from path, or returns the
// default if path is empty or does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ToOptions converts the configuration into conversion options.  The
// asset root is not opened here; the caller sets AssetRoot and
// AssetDir.
func (c *Config) ToOptions() *figtikz.Options {
	opts := figtikz.DefaultOptions()
	opts.FloatFormat = c.Output.FloatFormat
	opts.Strict = c.Output.Strict
	opts.Wrap = c.Output.Wrap
	opts.Disclaimer = c.Output.Disclaimer
	opts.AxisWidth = c.Output.AxisWidth
	opts.AxisHeight = c.Output.AxisHeight
	opts.Tolerance = c.Clean.Tolerance
	opts.RelativeDir = c.Assets.RelativeDir
	opts.TargetWidth = c.Assets.TargetWidth
	if c.Assets.Base != "" {
		opts.AssetBase = c.Assets.Base
	}
	return opts
}
