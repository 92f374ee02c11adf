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

import (
	"bufio"
	"io"
	"maps"
	"slices"
)

// Registry maps the current name of a glyph to its new name.
//
// An empty new name means that no new name is known.  Such entries are
// created for all glyphs used as ligature components, and for atomic glyphs
// whose code point is missing from the reference table.
type Registry map[string]string

// Resolved reports whether a non-empty new name is known for the glyph.
func (r Registry) Resolved(name string) bool {
	return r[name] != ""
}

// Keys returns the old names in sorted order.
func (r Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// WriteTo writes one "old new" line for every entry with a non-empty new
// name, sorted by old name.
func (r Registry) WriteTo(w io.Writer) (int64, error) {
	out := bufio.NewWriter(w)
	var total int64
	for _, old := range r.Keys() {
		n := r[old]
		if n == "" {
			continue
		}
		k, err := out.WriteString(old + " " + n + "\n")
		total += int64(k)
		if err != nil {
			return total, err
		}
	}
	return total, out.Flush()
}
