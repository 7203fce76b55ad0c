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

// Command figtikz converts a figure, given as a YAML document, into
// PGFPlots code.
//
// Usage:
//
//	figtikz [flags] [figure.yaml]
//
// Without an input file, the figure is read from standard input.  Image
// data is written to PNG files next to the output file, or into the
// directory given by -assets.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/figtikz"
	"seehuhn.de/go/figtikz/config"
	"seehuhn.de/go/figtikz/figure"
)

func main() {
	log.SetPrefix("figtikz: ")
	log.SetFlags(0)

	var (
		flagConfig    = flag.String("config", "", "read settings from `file`")
		flagOut       = flag.String("o", "", "write output to `file` (default: stdout)")
		flagAssets    = flag.String("assets", "", "write image files to `dir`")
		flagRelDir    = flag.String("reldir", "", "refer to image files via `dir` in the code")
		flagClean     = flag.Bool("clean", false, "remove data points which do not change the figure")
		flagTolerance = flag.Float64("tol", 0, "cleaning tolerance in `points`")
		flagFloat     = flag.String("float", "", "number `format`, for example .3f")
		flagWidth     = flag.Int("maxwidth", 0, "scale images down to at most `n` pixels wide")
		flagStrict    = flag.Bool("strict", false, "do not use named TikZ line widths")
		flagNoWrap    = flag.Bool("nowrap", false, "omit the tikzpicture environment")
		flagQuiet     = flag.Bool("q", false, "do not print notices")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [figure.yaml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadOrDefault(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "reldir":
			cfg.Assets.RelativeDir = *flagRelDir
		case "clean":
			cfg.Clean.Enabled = *flagClean
		case "tol":
			cfg.Clean.Tolerance = *flagTolerance
		case "float":
			cfg.Output.FloatFormat = *flagFloat
		case "maxwidth":
			cfg.Assets.TargetWidth = *flagWidth
		case "strict":
			cfg.Output.Strict = *flagStrict
		case "nowrap":
			cfg.Output.Wrap = !*flagNoWrap
		case "assets":
			cfg.Assets.Dir = *flagAssets
		}
	})
	if cfg.Clean.Tolerance <= 0 {
		log.Fatalf("invalid tolerance %g", cfg.Clean.Tolerance)
	}

	fig, err := readFigure(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	assetDir := cfg.Assets.Dir
	if assetDir == "" {
		assetDir = "."
		if *flagOut != "" {
			assetDir = filepath.Dir(*flagOut)
		}
	}
	if cfg.Assets.Base == "" && *flagOut != "" {
		base := filepath.Base(*flagOut)
		cfg.Assets.Base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	root, err := os.OpenRoot(assetDir)
	if err != nil {
		log.Fatal(err)
	}
	defer root.Close()

	opts := cfg.ToOptions()
	opts.AssetRoot = root
	opts.AssetDir = assetDir

	var res *figtikz.Result
	if cfg.Clean.Enabled {
		res, err = figtikz.CleanAndRender(fig, opts)
	} else {
		res, err = figtikz.Render(fig, opts)
	}
	if err != nil {
		log.Fatal(err)
	}

	if !*flagQuiet {
		for _, n := range res.Notices {
			log.Print(n.Message)
		}
	}

	if *flagOut == "" {
		_, err = io.WriteString(os.Stdout, res.Code)
	} else {
		err = os.WriteFile(*flagOut, []byte(res.Code), 0644)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func readFigure(name string) (*figure.Figure, error) {
	if name == "" || name == "-" {
		return figure.Decode(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fig, err := figure.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fig, nil
}
