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

package testcases

import (
	"bytes"
	"maps"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/figtikz/figure"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("invalid name %q", name)
			}
			if seen[name] {
				t.Errorf("duplicate name %q", name)
			}
			seen[name] = true
		}
	}
}

// TestRoundTrip checks that every example survives a YAML round trip.
func TestRoundTrip(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				fig := tc.Figure()
				if err := fig.Check(); err != nil {
					t.Fatal(err)
				}

				buf1 := &bytes.Buffer{}
				if err := figure.Encode(buf1, fig); err != nil {
					t.Fatal(err)
				}
				fig2, err := figure.Decode(bytes.NewReader(buf1.Bytes()))
				if err != nil {
					t.Fatal(err)
				}
				buf2 := &bytes.Buffer{}
				if err := figure.Encode(buf2, fig2); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
					t.Errorf("round trip changed the figure:\n%s\n---\n%s", buf1, buf2)
				}
			})
		}
	}
}
