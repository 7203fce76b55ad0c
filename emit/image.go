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

package emit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/notice"
	"seehuhn.de/go/figtikz/style"
)

// emitImage writes the image data to a PNG file and places the file
// into the axes:
//
//	\addplot graphics [includegraphics cmd=\pgfimage,xmin=-0.5, xmax=9.5, ymin=9.5, ymax=-0.5] {figure-img000.png};
func emitImage(s *State, p figure.Primitive) (Emission, error) {
	im, ok := p.(*figure.Image)
	if !ok {
		return Emission{}, fmt.Errorf("unexpected type %T", p)
	}
	if err := im.Check(); err != nil {
		return Emission{}, err
	}

	var res Emission
	var img *image.NRGBA
	if len(im.Shape) == 2 {
		cm, known := style.LookupColormap(im.Colormap)
		if !known {
			res.Notices = append(res.Notices, notice.New(notice.FeatureColormap,
				"unknown colour map %q, using %s", im.Colormap, cm.Name))
		}
		img = colorMapped(im, cm)
	} else {
		img = trueColor(im)
	}
	if s.TargetWidth > 0 && img.Rect.Dx() > s.TargetWidth {
		img = downscale(img, s.TargetWidth)
	}

	if s.Files == nil {
		return Emission{}, fmt.Errorf("no asset directory for image")
	}
	w, _, rel, err := s.Files.Create("img", ".png")
	if err != nil {
		return Emission{}, err
	}
	err = png.Encode(w, img)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Emission{}, err
	}

	res.Lines = append(res.Lines,
		`\addplot graphics [includegraphics cmd=\pgfimage,`+s.Format.Extent(im.DataExtent())+"] {"+rel+"};")
	return res, nil
}

// colorMapped converts single-channel image data using a colour map.
// Without explicit limits, the range of the finite data values is
// used.
func colorMapped(im *figure.Image, cm *style.Colormap) *image.NRGBA {
	rows, cols := im.Shape[0], im.Shape[1]

	var lo, hi float64
	if im.CLim != nil {
		lo, hi = im.CLim[0], im.CLim[1]
	} else {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range im.Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
		if lo > hi {
			lo, hi = 0, 1
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for row := range rows {
		y := row
		if im.FlipVertical() {
			y = rows - 1 - row
		}
		for col := range cols {
			v := im.Data[row*cols+col]
			img.SetNRGBA(col, y, cm.Map(style.Normalize(v, lo, hi)))
		}
	}
	return img
}

// trueColor converts RGB or RGBA data with values in [0, 1] to 8-bit
// colours.  Values are truncated, not rounded.
func trueColor(im *figure.Image) *image.NRGBA {
	rows, cols, channels := im.Shape[0], im.Shape[1], im.Shape[2]

	to8 := func(x float64) uint8 {
		switch {
		case !(x > 0):
			return 0
		case x >= 1:
			return 255
		}
		return uint8(x * 255)
	}

	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for row := range rows {
		y := row
		if im.FlipVertical() {
			y = rows - 1 - row
		}
		for col := range cols {
			base := (row*cols + col) * channels
			c := color.NRGBA{
				R: to8(im.Data[base]),
				G: to8(im.Data[base+1]),
				B: to8(im.Data[base+2]),
				A: 255,
			}
			if channels == 4 {
				c.A = to8(im.Data[base+3])
			}
			img.SetNRGBA(col, y, c)
		}
	}
	return img
}

// downscale reduces the image to the given width, keeping the aspect
// ratio.
func downscale(src *image.NRGBA, width int) *image.NRGBA {
	b := src.Bounds()
	height := max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
