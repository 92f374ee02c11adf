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

package reftab

import (
	"errors"
	"os"

	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt"
)

// FromFont derives a reference table from a font whose glyph names already
// follow the canonical convention.  All code points in the range from first
// to last (inclusive) which are mapped by the font's cmap table are included.
//
// If the font has no name for a glyph, the name from the Adobe Glyph List
// conventions is used instead.
func FromFont(f *sfnt.Font, first, last rune) (*Table, error) {
	if last < first {
		return nil, errors.New("empty code point range")
	}
	cmap, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}
	glyphNames := f.MakeGlyphNames()

	t := &Table{names: make(map[rune]string)}
	for r := first; r <= last; r++ {
		gid := cmap.Lookup(r)
		if gid == 0 {
			continue
		}
		var name string
		if int(gid) < len(glyphNames) {
			name = glyphNames[gid]
		}
		if name == "" {
			name = names.FromUnicode(string(r))
		}
		t.names[r] = name
	}
	return t, nil
}

// ReadFont reads a TrueType or OpenType font file, for use with [FromFont].
func ReadFont(fname string) (*sfnt.Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return sfnt.Read(fd)
}
