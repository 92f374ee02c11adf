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

package sfd

import "strings"

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t'
}

// ReplaceToken replaces every occurrence of old in text which forms a
// complete, separator-delimited token.  Occurrences which are part of a longer
// token are left alone, so that replacing "k1" turns "xxk1 k1 k1xx" into
// "xxk1 N k1xx".
func ReplaceToken(text, old, new string) string {
	if old == "" {
		return text
	}

	var b strings.Builder
	copied := 0
	pos := 0
	for {
		i := strings.Index(text[pos:], old)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(old)
		pos = end

		if start > 0 && !isSeparator(text[start-1]) {
			continue
		}
		if end < len(text) && !isSeparator(text[end]) {
			continue
		}
		b.WriteString(text[copied:start])
		b.WriteString(new)
		copied = end
	}
	if copied == 0 {
		return text
	}
	b.WriteString(text[copied:])
	return b.String()
}

// ReplaceTokens replaces every token of text which has a non-empty entry in
// names by that entry.  Tokens are separated by spaces and tabs; separators
// are preserved.
//
// The text is scanned once from left to right, so the result does not depend
// on the order of the map and a replacement is never replaced again.
func ReplaceTokens(text string, names map[string]string) string {
	var b strings.Builder
	changed := false
	i := 0
	for i < len(text) {
		if isSeparator(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}
		j := i
		for j < len(text) && !isSeparator(text[j]) {
			j++
		}
		tok := text[i:j]
		if n := names[tok]; n != "" && n != tok {
			b.WriteString(n)
			changed = true
		} else {
			b.WriteString(tok)
		}
		i = j
	}
	if !changed {
		return text
	}
	return b.String()
}

// ReplaceDeclaredName rewrites the glyph name of a "StartChar:" line, using
// [ReplaceToken] on the text after the keyword.  The line is returned
// unchanged if names has no new name for the glyph.
func ReplaceDeclaredName(line string, names map[string]string) string {
	keyword, rest, ok := strings.Cut(line, " ")
	if !ok || keyword != "StartChar:" {
		return line
	}
	ff := strings.Fields(rest)
	if len(ff) == 0 {
		return line
	}
	old := ff[0]
	n := names[old]
	if n == "" || n == old {
		return line
	}
	return keyword + " " + ReplaceToken(rest, old, n)
}
