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

import "strings"

// BuildName constructs the name of a composite glyph from the names of its
// components.
//
// The registry names of the components are concatenated.  Viramas are left
// out, and so is the ZWJ, except that a sequence base+virama+ZWJ is named
// base+"chillu".  Components without a registry name contribute their own
// name.
func (s *Session) BuildName(components []string) string {
	var b strings.Builder
	viramas := 0
	for i, c := range components {
		if s.isZWJ(c) {
			if i == 2 && viramas == 1 && len(components) == 3 {
				b.WriteString(ChilluSuffix)
			}
			continue
		}
		if s.isVirama(c) {
			viramas++
			continue
		}

		mapped := s.Names[c]
		switch mapped {
		case "":
			b.WriteString(c)
		case ViramaName:
			// skip
		default:
			b.WriteString(mapped)
		}
	}
	return b.String()
}

func (s *Session) isZWJ(c string) bool {
	return c == ZWJName || s.ZWJ != "" && c == s.ZWJ
}

func (s *Session) isVirama(c string) bool {
	return c == viramaLiteral || s.Virama != "" && c == s.Virama
}
