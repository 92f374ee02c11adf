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

import "strconv"

// HalfForms lists half forms which keep their traditional name.  If the name
// built for a glyph is taken and HalfForms maps it to the current name of the
// glyph, the glyph is not renamed.
var HalfForms = map[string]string{
	"y1":   "y2",
	"y1xx": "y2",
	"r3":   "r4",
	"r3xx": "r4",
	"l3":   "l4",
	"l3xx": "l4",
	"v1":   "v2",
	"v1xx": "v2",
}

// Unique returns a name for glyph idx which is different from the current
// and new names of all other glyphs.  If candidate is taken, the suffixes
// "_1", "_2", ... are tried in turn.
func (s *Session) Unique(idx int, candidate string) string {
	self := s.Glyphs[idx].Name

	name := candidate
	seq := 0
	for s.taken(idx, name) {
		if HalfForms[name] == self {
			s.Log.Tracef("%s: keeping the half form name", self)
			return self
		}
		s.Log.Debugf("%s: name %q already taken", self, name)
		seq++
		name = candidate + "_" + strconv.Itoa(seq)
	}
	return name
}

// taken reports whether some glyph other than idx uses name, either as
// its current or its new name.
func (s *Session) taken(idx int, name string) bool {
	for i, g := range s.Glyphs {
		if i == idx {
			continue
		}
		if g.Name == name || g.NewName == name {
			return true
		}
	}
	return false
}
