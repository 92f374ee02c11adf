// seehuhn.de/go/glyphren - rename glyphs in FontForge font sources
// Copyright (C) 2026  The glyphren Authors
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

package rename

import "testing"

func TestBuildName(t *testing.T) {
	s := newTestSession()
	s.Names = Registry{
		"k1":    "ka",
		"k2":    "kha",
		"xx":    ViramaName,
		"vir2":  ViramaName,
		"zwj":   ZWJName,
		"ZWJ":   ZWJName,
		"blank": "",
	}
	s.Virama = "xx"
	s.ZWJ = "zwj"

	cases := []struct {
		comps []string
		want  string
	}{
		{[]string{"k1", "k2"}, "kakha"},
		{[]string{"k1", "xx", "k2"}, "kakha"},
		{[]string{"k1", "xx"}, "ka"},
		{[]string{"k1", "VIRAMA", "k2"}, "kakha"},

		// chillu: base + virama + ZWJ
		{[]string{"k1", "xx", "ZWJ"}, "ka" + ChilluSuffix},
		{[]string{"k1", "xx", "zwj"}, "ka" + ChilluSuffix},
		{[]string{"k1", "VIRAMA", "zwj"}, "ka" + ChilluSuffix},

		// a ZWJ in any other position is dropped
		{[]string{"k1", "zwj"}, "ka"},
		{[]string{"k1", "k2", "zwj"}, "kakha"},
		{[]string{"k1", "xx", "xx", "zwj"}, "ka"},
		{[]string{"xx", "xx", "zwj"}, ""},

		// components mapped to the virama name are dropped, but do not
		// count towards a chillu
		{[]string{"k1", "vir2", "zwj"}, "ka"},

		// unknown components keep their own names
		{[]string{"k1", "q"}, "kaq"},
		{[]string{"blank", "k2"}, "blankkha"},
		{nil, ""},
	}
	for _, test := range cases {
		got := s.BuildName(test.comps)
		if got != test.want {
			t.Errorf("BuildName(%q) = %q, want %q", test.comps, got, test.want)
		}
	}
}

func TestBuildNameDiscoveredMarkers(t *testing.T) {
	s := newTestSession(
		atomic("ka", 0x0D15),
		atomic("chandrakkala", 0x0D4D),
		atomic("joiner", 0x200D),
		composite("kchil", lig("haln", "ka", "chandrakkala", "joiner")),
	)
	s.Run()

	if s.Virama != "chandrakkala" || s.ZWJ != "joiner" {
		t.Fatalf("markers not discovered: %q, %q", s.Virama, s.ZWJ)
	}
	if got := s.Glyphs[3].NewName; got != "ka"+ChilluSuffix {
		t.Errorf("chillu renamed to %q", got)
	}
}
