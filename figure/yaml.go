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

package figure

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// figureDoc is the YAML representation of a figure.
type figureDoc struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	DPI    float64    `yaml:"dpi"`
	Axes   []*axesDoc `yaml:"axes"`
}

type axesDoc struct {
	Axes       `yaml:",inline"`
	Primitives []*yaml.Node `yaml:"primitives,omitempty"`
}

// newPrimitive returns an empty primitive of the given kind.
func newPrimitive(k Kind) Primitive {
	switch k {
	case KindLine:
		return &Line{}
	case KindScatter:
		return &Scatter{}
	case KindBar:
		return &BarContainer{}
	case KindPatch:
		return &Patch{}
	case KindImage:
		return &Image{}
	case KindText:
		return &Text{}
	case KindLine3D:
		return &Line3D{}
	case KindScatter3D:
		return &Scatter3D{}
	case KindSurface3D:
		return &Surface3D{}
	case KindLineCollection:
		return &LineCollection{}
	case KindContour:
		return &ContourSet{}
	}
	return nil
}

// Decode reads a figure from a YAML document.  Every primitive is a
// mapping with a "kind" key, giving the primitive type.
func Decode(r io.Reader) (*Figure, error) {
	doc := &figureDoc{}
	if err := yaml.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}

	fig := New(doc.Width, doc.Height, doc.DPI)
	for i, ad := range doc.Axes {
		a := new(Axes)
		*a = ad.Axes
		a.fig = fig
		a.Primitives = nil
		fig.Axes = append(fig.Axes, a)

		for j, node := range ad.Primitives {
			p, err := decodePrimitive(node)
			if err != nil {
				return nil, fmt.Errorf("axes %d: primitive %d: %w", i, j, err)
			}
			a.Add(p)
		}

		// Missing limits are taken from the data.
		for _, axis := range []byte("xyz") {
			lim := &a.XLim
			switch axis {
			case 'y':
				lim = &a.YLim
			case 'z':
				lim = &a.ZLim
			}
			if *lim == ([2]float64{}) {
				if err := a.Autoscale(axis); err != nil {
					return nil, err
				}
			}
		}
	}
	return fig, nil
}

func decodePrimitive(node *yaml.Node) (Primitive, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	var kindName string
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "kind" {
			kindName = node.Content[i+1].Value
			break
		}
	}
	if kindName == "" {
		return nil, fmt.Errorf("line %d: missing primitive kind", node.Line)
	}
	k, err := ParseKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}
	p := newPrimitive(k)
	if err := node.Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Encode writes a figure as a YAML document which can be read back
// using Decode.
func Encode(w io.Writer, fig *Figure) error {
	doc := &figureDoc{
		Width:  fig.Width,
		Height: fig.Height,
		DPI:    fig.DPI,
	}
	for _, a := range fig.Axes {
		ad := &axesDoc{Axes: *a}
		for _, p := range a.Primitives {
			node := &yaml.Node{}
			if err := node.Encode(p); err != nil {
				return fmt.Errorf("%s: %w", p.Kind(), err)
			}
			kindPair := []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: "kind"},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Kind().String()},
			}
			node.Content = append(kindPair, node.Content...)
			ad.Primitives = append(ad.Primitives, node)
		}
		doc.Axes = append(doc.Axes, ad)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
