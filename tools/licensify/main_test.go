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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddHeader(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "x.go")
	body := "// Package x does nothing.\npackage x\n"
	if err := os.WriteFile(fname, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	for i, wantChanged := range []bool{true, false} {
		changed, err := addHeader(fname)
		if err != nil {
			t.Fatal(err)
		}
		if changed != wantChanged {
			t.Errorf("call %d: changed = %t, want %t", i+1, changed, wantChanged)
		}
	}

	got, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(header+body, string(got)); d != "" {
		t.Errorf("unexpected file contents (-want +got):\n%s", d)
	}
}

func TestAddHeaderUnexpected(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "x.go")
	if err := os.WriteFile(fname, []byte("\n\npackage x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := addHeader(fname)
	if !errors.Is(err, errNoPackage) {
		t.Errorf("got error %v, want %v", err, errNoPackage)
	}
}

func TestSkipDir(t *testing.T) {
	cases := map[string]bool{
		".":              false,
		"sfd":            false,
		"_examples":      true,
		".git":           true,
		"sfd/testdata":   true,
		"tools/glyphren": false,
	}
	for path, want := range cases {
		if got := skipDir(path); got != want {
			t.Errorf("skipDir(%q) = %t, want %t", path, got, want)
		}
	}
}
