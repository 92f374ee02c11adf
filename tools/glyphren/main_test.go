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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"
)

const testReference = `0D15 ka # MALAYALAM LETTER KA
0D23 nna # MALAYALAM LETTER NNA
0D4D xx # MALAYALAM SIGN VIRAMA
200D ZWJ # ZERO WIDTH JOINER
`

const testInput = `SplineFontDB: 3.0
FontName: Test
Encoding: UnicodeBmp
BeginChars: 65539 6

StartChar: k1
Encoding: 3349 3349 0
EndChar

StartChar: n3
Encoding: 3363 3363 1
EndChar

StartChar: virama
Encoding: 3405 3405 2
EndChar

StartChar: zwj
Encoding: 8205 8205 3
EndChar

StartChar: n3chil
Encoding: 65536 -1 4
Ligature2: "'haln' Halant forms lookup 0 subtable" n3 virama zwj
EndChar

StartChar: k1k1
Encoding: 65537 -1 5
Ligature2: "'akhn' Akhand lookup 1 subtable" k1 virama k1
Ligature2: "'pres' Presentation forms lookup 2 subtable" k1 k1
EndChar
EndChars
EndSplineFont
`

const testOutput = `SplineFontDB: 3.0
FontName: Test
Encoding: UnicodeBmp
BeginChars: 65539 6

StartChar: ka
Encoding: 3349 3349 0
EndChar

StartChar: nna
Encoding: 3363 3363 1
EndChar

StartChar: xx
Encoding: 3405 3405 2
EndChar

StartChar: ZWJ
Encoding: 8205 8205 3
EndChar

StartChar: nnachillu
Encoding: 65536 -1 4
Ligature2: "'haln' Halant forms lookup 0 subtable" nna xx ZWJ
EndChar

StartChar: kaka
Encoding: 65537 -1 5
Ligature2: "'akhn' Akhand lookup 1 subtable" ka xx ka
Ligature2: "'pres' Presentation forms lookup 2 subtable" ka ka
EndChar
EndChars
EndSplineFont
`

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cmd := newRootCmd(&options{log: log})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	ref := writeTestFile(t, dir, "ref.txt", []byte(testReference))
	in := writeTestFile(t, dir, "in.sfd", []byte(testInput))
	out := filepath.Join(dir, "out.sfd")
	mapFile := filepath.Join(dir, "map.txt")

	_, err := runCmd(t, "-r", ref, "-i", in, "-o", out, "--map", mapFile, "-l", "TRACE")
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testOutput, string(got)); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}

	names, err := os.ReadFile(mapFile)
	if err != nil {
		t.Fatal(err)
	}
	wantNames := "k1 ka\nk1k1 kaka\nn3 nna\nn3chil nnachillu\nvirama xx\nzwj ZWJ\n"
	if d := cmp.Diff(wantNames, string(names)); d != "" {
		t.Errorf("unexpected name map (-want +got):\n%s", d)
	}

	// renaming the output again changes nothing but the base names, which
	// are already canonical
	out2 := filepath.Join(dir, "out2.sfd")
	_, err = runCmd(t, "-r", ref, "-i", out, "-o", out2)
	if err != nil {
		t.Fatal(err)
	}
	got2, err := os.ReadFile(out2)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(string(got), string(got2)); d != "" {
		t.Errorf("second run changed the file (-first +second):\n%s", d)
	}
}

func TestRenameStdout(t *testing.T) {
	dir := t.TempDir()
	ref := writeTestFile(t, dir, "ref.txt", []byte(testReference))
	in := writeTestFile(t, dir, "in.sfd", []byte(testInput))

	got, err := runCmd(t, "--refnam", ref, "--insfd", in)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testOutput, got); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestRenameBadReference(t *testing.T) {
	dir := t.TempDir()
	ref := writeTestFile(t, dir, "ref.txt", []byte("0D15 ka\nnonsense\n"))
	in := writeTestFile(t, dir, "in.sfd", []byte(testInput))
	out := filepath.Join(dir, "out.sfd")

	_, err := runCmd(t, "-r", ref, "-i", in, "-o", out)
	if err == nil {
		t.Fatal("malformed reference table accepted")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error does not name the line: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output file created despite load error")
	}
}

func TestRenameMissingFlags(t *testing.T) {
	_, err := runCmd(t, "-i", "in.sfd")
	if err == nil {
		t.Error("missing reference table accepted")
	}
}

func TestReftab(t *testing.T) {
	dir := t.TempDir()
	font := writeTestFile(t, dir, "font.ttf", goregular.TTF)

	got, err := runCmd(t, "reftab", "--font", font, "--first", "41", "--last", "U+0042")
	if err != nil {
		t.Fatal(err)
	}
	want := "0041 A # LATIN CAPITAL LETTER A\n0042 B # LATIN CAPITAL LETTER B\n"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected table (-want +got):\n%s", d)
	}

	out := filepath.Join(dir, "ref.txt")
	_, err = runCmd(t, "reftab", "--font", font, "--first", "41", "--last", "42", "-o", out)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("unexpected file contents %q", data)
	}

	_, err = runCmd(t, "reftab", "--font", font, "--first", "zz")
	if err == nil {
		t.Error("invalid code point accepted")
	}
}

func TestVersion(t *testing.T) {
	got, err := runCmd(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "glyphren ") {
		t.Errorf("unexpected version output %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want logrus.Level
	}{
		{"DBG", logrus.DebugLevel},
		{"dbg", logrus.DebugLevel},
		{"TRACE", logrus.TraceLevel},
		{"", logrus.InfoLevel},
		{"LOG", logrus.InfoLevel},
	}
	for _, test := range cases {
		if got := parseLevel(test.in); got != test.want {
			t.Errorf("parseLevel(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}
