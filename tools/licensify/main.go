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

// Licensify adds the license header to all Go source files below the
// current directory which do not have it yet.
package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const header = `// seehuhn.de/go/glyphren - rename glyphs in FontForge font sources
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

`

var errNoPackage = errors.New("file does not start with a comment or package clause")

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(path) {
				log.Debugf("skip %s", path)
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		changed, err := addHeader(path)
		if errors.Is(err, errNoPackage) {
			log.WithField("file", path).Warn("ATTENTION: unexpected file start")
			return nil
		} else if err != nil {
			return err
		}
		if changed {
			log.Infof("updated %s", path)
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

// skipDir reports whether the directory path is excluded from the walk.
// These are hidden directories and directories the go tool ignores.
func skipDir(path string) bool {
	base := filepath.Base(path)
	if base == "." {
		return false
	}
	return strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") ||
		base == "testdata"
}

// addHeader prepends the license header to the file path, unless it is
// already present.
func addHeader(path string) (bool, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	if bytes.HasPrefix(body, []byte(header)) {
		return false, nil
	}
	if !bytes.HasPrefix(body, []byte("package ")) && !bytes.HasPrefix(body, []byte("//")) {
		return false, errNoPackage
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)
	err = os.WriteFile(path, out, info.Mode().Perm())
	if err != nil {
		return false, err
	}
	return true, nil
}
