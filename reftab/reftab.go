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

// Package reftab implements reference tables, which map Unicode code points
// to canonical glyph names.
//
// The text form of a reference table has one entry per line.  The first
// field is the code point in hexadecimal, the second field is the glyph name.
// Further fields are ignored:
//
//	0D15 ka # MALAYALAM LETTER KA
//	0D4D xx # MALAYALAM SIGN VIRAMA
//
// Blank lines and lines starting with "#" are skipped.
package reftab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Entry is a single entry of a reference table.
type Entry struct {
	Code rune
	Name string
}

// Table maps code points to canonical glyph names.
// A Table is not modified after it has been constructed.
type Table struct {
	names map[rune]string
}

// New returns a table containing the given entries.  If a code point occurs
// more than once, the last entry wins.
func New(entries []Entry) *Table {
	t := &Table{names: make(map[rune]string, len(entries))}
	for _, e := range entries {
		t.names[e.Code] = e.Name
	}
	return t
}

// Lookup returns the canonical name for the code point r.
func (t *Table) Lookup(r rune) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[r]
	return name, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Entries returns all entries of the table, sorted by code point.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	res := make([]Entry, 0, len(t.names))
	for r, name := range t.names {
		res = append(res, Entry{Code: r, Name: name})
	}
	slices.SortFunc(res, func(a, b Entry) int {
		return int(a.Code) - int(b.Code)
	})
	return res
}

// WriteTo writes the table in text form.  The Unicode character name of
// each code point is appended as a comment.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	out := bufio.NewWriter(w)
	var total int64
	for _, e := range t.Entries() {
		line := fmt.Sprintf("%04X %s", e.Code, e.Name)
		if comment := runenames.Name(e.Code); comment != "" && !strings.HasPrefix(comment, "<") {
			line += " # " + comment
		}
		n, err := out.WriteString(line + "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, out.Flush()
}

// ParseError is returned by [Read] for lines which are not valid table
// entries.  When this happens, no table is returned.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("reference table line %d: %q: %v", err.Line, err.Text, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

var (
	errMissingName = errors.New("missing glyph name")
	errInvalidCode = errors.New("invalid code point")
)

// Read reads a reference table in text form.
func Read(r io.Reader) (*Table, error) {
	t := &Table{names: make(map[rune]string)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		ff := strings.Fields(line)
		if len(ff) == 0 || strings.HasPrefix(ff[0], "#") {
			continue
		}
		if len(ff) < 2 || strings.HasPrefix(ff[1], "#") {
			return nil, &ParseError{Line: lineNo, Text: line, Err: errMissingName}
		}
		code, err := ParseCode(ff[0])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		t.names[code] = ff[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadFile reads a reference table from the named file.
func ReadFile(fname string) (*Table, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return Read(fd)
}

// ParseCode parses a hexadecimal code point.  The prefixes "0x" and "U+"
// are accepted.
func ParseCode(s string) (rune, error) {
	for _, prefix := range []string{"0x", "0X", "U+", "u+"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s = rest
			break
		}
	}
	x, err := strconv.ParseUint(s, 16, 32)
	if err != nil || x > unicode.MaxRune {
		return 0, errInvalidCode
	}
	return rune(x), nil
}
