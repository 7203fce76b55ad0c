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

	"seehuhn.de/go/figtikz/figure"
	"seehuhn.de/go/figtikz/style"
)

// emitText places a text node:
//
//	\draw (axis cs:1,2) node[anchor=base west]{label};
func emitText(s *State, p figure.Primitive) (Emission, error) {
	t, ok := p.(*figure.Text)
	if !ok {
		return Emission{}, fmt.Errorf("unexpected type %T", p)
	}
	if t.Text == "" {
		return Emission{}, nil
	}

	opts := []string{"anchor=" + style.Anchor(t.HAlign, t.VAlign)}
	col := figure.Black
	if t.Color != nil {
		col = *t.Color
	}
	if col != figure.Black {
		opts = append(opts, "text="+s.Color(col))
	}
	if a := t.Opacity(col); a < 1 {
		opts = append(opts, "text opacity="+s.Format.Float(a))
	}
	if t.Rotation != 0 {
		opts = append(opts, "rotate="+s.Format.Float(t.Rotation))
	}
	if size := style.FontSize(t.Size); size != "" {
		opts = append(opts, "font="+size)
	}

	pos := s.Format.AxisCS(t.X, t.Y)
	if t.Coords == "axes" {
		pos = s.Format.RelAxisCS(t.X, t.Y)
	}
	line := `\draw ` + pos + " node" + options(opts) + "{" + style.Escape(t.Text) + "};"
	return Emission{Lines: []string{line}}, nil
}
