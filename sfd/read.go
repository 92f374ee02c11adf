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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxLineLength bounds the length of a single line of an SFD file.
// Kerning and lookup lines can get long for large fonts.
const maxLineLength = 1 << 20

// Read scans an SFD file and returns the glyphs it defines, in file order.
//
// Malformed ligature lines are reported to log and skipped.  If log is nil,
// the standard logrus logger is used.
func Read(r io.Reader, log logrus.Ext1FieldLogger) ([]*Glyph, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	var glyphs []*Glyph
	seen := make(map[string]bool)
	var cur *Glyph

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		keyword, rest, _ := strings.Cut(line, " ")

		switch keyword {
		case "StartChar:":
			if cur != nil {
				return nil, &ParseError{Line: lineNo, Err: errNestedGlyph}
			}
			ff := strings.Fields(rest)
			if len(ff) == 0 {
				return nil, &ParseError{Line: lineNo, Err: errMissingName}
			}
			name := ff[0]
			if seen[name] {
				return nil, &ParseError{
					Line: lineNo,
					Err:  fmt.Errorf("duplicate glyph name %q", name),
				}
			}
			seen[name] = true
			cur = &Glyph{Name: name}
			log.Tracef("line %d: glyph %s", lineNo, name)

		case "Encoding:":
			// The font-wide "Encoding:" line precedes all glyphs.
			if cur == nil {
				continue
			}
			pos, code, err := parseEncoding(rest)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			cur.Pos = pos
			cur.Code = code

		case "Ligature2:":
			if cur == nil {
				continue
			}
			lig, err := parseLigature(line)
			if err != nil {
				log.WithField("glyph", cur.Name).Warnf("line %d: %v", lineNo, err)
				continue
			}
			cur.Ligatures = append(cur.Ligatures, lig)

		case "EndChar":
			if cur == nil {
				return nil, &ParseError{Line: lineNo, Err: errUnmatchedEnd}
			}
			if cur.Code == nil {
				cur.Code = Composite{}
			}
			glyphs = append(glyphs, cur)
			cur = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, &ParseError{Line: lineNo, Err: errUnterminated}
	}

	log.Debugf("read %d glyphs", len(glyphs))
	return glyphs, nil
}

// parseEncoding interprets the arguments of an "Encoding:" line inside a
// glyph definition.  The line has the form
//
//	Encoding: <slot> <unicode> <gid>
//
// where a unicode value of -1 marks an unencoded glyph.
func parseEncoding(args string) (int, Code, error) {
	ff := strings.Fields(args)
	if len(ff) < 2 {
		return 0, nil, errEncodingFields
	}
	pos, err := strconv.Atoi(ff[0])
	if err != nil {
		return 0, nil, fmt.Errorf("encoding slot: %w", err)
	}
	u, err := strconv.Atoi(ff[1])
	if err != nil {
		return 0, nil, fmt.Errorf("unicode value: %w", err)
	}
	if u < 0 {
		return pos, Composite{}, nil
	}
	return pos, Atomic(u), nil
}

// splitLookup locates the quoted subtable name of a lookup line like
//
//	Ligature2: "'akhn' Akhand lookup 0 subtable" k1 xx k1
//
// It returns the subtable name (without quotes) and the byte offset
// where the glyph list starts.
func splitLookup(line string) (string, int, bool) {
	i := strings.IndexByte(line, '"')
	if i < 0 {
		return "", 0, false
	}
	j := strings.IndexByte(line[i+1:], '"')
	if j < 0 {
		return "", 0, false
	}
	j += i + 1
	return line[i+1 : j], j + 1, true
}

func parseLigature(line string) (*Ligature, error) {
	subtable, start, ok := splitLookup(line)
	if !ok {
		return nil, errLookupQuotes
	}

	// The feature tag is quoted with single quotes at the start of the
	// subtable name.
	a := strings.IndexByte(subtable, '\'')
	if a < 0 {
		return nil, errLookupQuotes
	}
	b := strings.IndexByte(subtable[a+1:], '\'')
	if b < 0 {
		return nil, errLookupQuotes
	}
	tag := subtable[a+1 : a+1+b]

	comps := strings.Fields(line[start:])
	if len(comps) == 0 {
		return nil, errNoComponents
	}
	return &Ligature{Tag: tag, Components: comps}, nil
}
