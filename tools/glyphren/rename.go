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
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/glyphren/reftab"
	"seehuhn.de/go/glyphren/rename"
	"seehuhn.de/go/glyphren/sfd"
	"seehuhn.de/go/glyphren/tools/internal/profile"
)

var errTerminal = errors.New("refusing to write SFD data to a terminal, use -o")

func runRename(cmd *cobra.Command, opt *options) error {
	log := opt.log

	stdout := cmd.OutOrStdout()
	if opt.outFile == "" && isTerminal(stdout) {
		return errTerminal
	}

	prof, err := profile.Start(opt.cpuprofile, opt.memprofile, log)
	if err != nil {
		return err
	}
	defer prof.Stop()

	ref, err := reftab.ReadFile(opt.refFile)
	if err != nil {
		return fmt.Errorf("loading reference table: %w", err)
	}
	log.Infof("loaded %d reference names from %s", ref.Len(), opt.refFile)

	glyphs, err := readGlyphs(opt.inFile, log)
	if err != nil {
		return err
	}

	sess := rename.NewSession(ref, glyphs)
	sess.Log = log
	counts := sess.Run()

	total := 0
	for _, n := range counts {
		total += n
	}
	log.Infof("%d composite glyphs renamed in %d passes", total, len(counts))
	for _, g := range sess.Unresolved() {
		log.Warnf("no new name for %s", g.Name)
	}

	if opt.outFile == "" {
		err = rewrite(stdout, opt.inFile, sess.Names)
	} else {
		err = writeFile(opt.outFile, func(w io.Writer) error {
			return rewrite(w, opt.inFile, sess.Names)
		})
	}
	if err != nil {
		return err
	}

	if opt.mapFile != "" {
		err = writeFile(opt.mapFile, func(w io.Writer) error {
			_, err := sess.Names.WriteTo(w)
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func readGlyphs(fname string, log logrus.Ext1FieldLogger) ([]*sfd.Glyph, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	glyphs, err := sfd.Read(fd, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	log.Infof("read %d glyphs from %s", len(glyphs), fname)
	return glyphs, nil
}

func rewrite(w io.Writer, inFile string, names rename.Registry) error {
	fd, err := os.Open(inFile)
	if err != nil {
		return err
	}
	defer fd.Close()

	return sfd.Rewrite(w, fd, names)
}

// writeFile creates fname and fills it using write.  If anything goes wrong,
// the file is removed again.
func writeFile(fname string, write func(io.Writer) error) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(fd)
	if closeErr := fd.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fname)
		return err
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	fd, ok := w.(*os.File)
	return ok && term.IsTerminal(int(fd.Fd()))
}
