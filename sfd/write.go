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

import (
	"bufio"
	"io"
	"strings"
)

// glyphListKeywords are the lookup lines which end in a list of glyph names.
var glyphListKeywords = map[string]bool{
	"Ligature2:":      true,
	"Substitution2:":  true,
	"AlternateSubs2:": true,
	"MultipleSubs2:":  true,
}

// Rewrite copies an SFD file from r to w, replacing glyph names according to
// names.  Glyph names are replaced in "StartChar:" lines and in the glyph
// lists of substitution and ligature lookups.  Names without a non-empty
// entry in names are kept.  Line terminators are copied unchanged.
func Rewrite(w io.Writer, r io.Reader, names map[string]string) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	for {
		line, err := in.ReadString('\n')
		if line != "" {
			body, eol := splitEOL(line)

			keyword, _, _ := strings.Cut(body, " ")
			switch {
			case keyword == "StartChar:":
				body = ReplaceDeclaredName(body, names)
			case glyphListKeywords[keyword]:
				body = replaceGlyphList(body, names)
			}

			out.WriteString(body)
			if _, werr := out.WriteString(eol); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
	}
	return out.Flush()
}

// splitEOL separates the line terminator ("\n", "\r\n" or nothing at the
// end of the input) from a line.
func splitEOL(line string) (string, string) {
	body, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return line, ""
	}
	if b, ok := strings.CutSuffix(body, "\r"); ok {
		return b, "\r\n"
	}
	return body, "\n"
}

func replaceGlyphList(line string, names map[string]string) string {
	_, start, ok := splitLookup(line)
	if !ok {
		return line
	}
	return line[:start] + ReplaceTokens(line[start:], names)
}
