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
	"errors"
	"strconv"
)

// ParseError is returned by [Read] when the structure of an SFD file cannot
// be understood.
type ParseError struct {
	Line int // 1-based line number, 0 if not known
	Err  error
}

func (err *ParseError) Error() string {
	head := "invalid SFD file"
	if err.Line > 0 {
		head += " (line " + strconv.Itoa(err.Line) + ")"
	}
	if err.Err == nil {
		return head
	}
	return head + ": " + err.Err.Error()
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

var (
	errMissingName    = errors.New("StartChar without glyph name")
	errNestedGlyph    = errors.New("StartChar inside a glyph definition")
	errUnmatchedEnd   = errors.New("EndChar without StartChar")
	errUnterminated   = errors.New("missing EndChar at end of file")
	errEncodingFields = errors.New("malformed Encoding line")
	errLookupQuotes   = errors.New("malformed lookup line")
	errNoComponents   = errors.New("ligature without components")
)
