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

package notice

import "testing"

func TestList(t *testing.T) {
	var l List
	l.Add(New("step plot", "first"))
	l.Add(New("hatch", "the hatch %q is not supported", "o"), New("step plot", "second"))
	l.Add(New("hatch", "the hatch %q is not supported", "O"))

	all := l.All()
	if l.Len() != 2 || len(all) != 2 {
		t.Fatalf("got %d notices, want 2", len(all))
	}
	if all[0].Message != "first" || all[1].Feature != "hatch" {
		t.Errorf("wrong notices: %v", all)
	}
	if s := all[1].String(); s != `figtikz: the hatch "o" is not supported` {
		t.Errorf("String() = %q", s)
	}

	all[0].Message = "changed"
	if l.All()[0].Message != "first" {
		t.Error("All returned the internal slice")
	}
}
