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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/glyphren/reftab"
)

type reftabOptions struct {
	fontFile string
	first    string
	last     string
	outFile  string
}

func newReftabCmd(opt *options) *cobra.Command {
	ro := &reftabOptions{}
	cmd := &cobra.Command{
		Use:   "reftab --font reference.ttf [-o reference.txt]",
		Short: "Extract a reference table from a font",
		Long: `Reftab writes a reference table for use with glyphren -r.

The table lists the code points of the given range which the font maps to a
glyph, together with the names of these glyphs.  The font should be one which
already uses the canonical glyph names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReftab(cmd, opt, ro)
		},
	}

	f := cmd.Flags()
	f.StringVar(&ro.fontFile, "font", "", "TrueType or OpenType font `file`")
	f.StringVar(&ro.first, "first", "0D00", "first code point of the range, in hex")
	f.StringVar(&ro.last, "last", "0D7F", "last code point of the range, in hex")
	f.StringVarP(&ro.outFile, "output", "o", "", "output `file` (default standard output)")
	cmd.MarkFlagRequired("font")

	return cmd
}

func runReftab(cmd *cobra.Command, opt *options, ro *reftabOptions) error {
	first, err := reftab.ParseCode(ro.first)
	if err != nil {
		return fmt.Errorf("--first %q: %w", ro.first, err)
	}
	last, err := reftab.ParseCode(ro.last)
	if err != nil {
		return fmt.Errorf("--last %q: %w", ro.last, err)
	}

	font, err := reftab.ReadFont(ro.fontFile)
	if err != nil {
		return fmt.Errorf("%s: %w", ro.fontFile, err)
	}
	table, err := reftab.FromFont(font, first, last)
	if err != nil {
		return fmt.Errorf("%s: %w", ro.fontFile, err)
	}
	opt.log.Infof("%d code points between U+%04X and U+%04X are mapped",
		table.Len(), first, last)

	if ro.outFile == "" {
		_, err = table.WriteTo(cmd.OutOrStdout())
		return err
	}
	return writeFile(ro.outFile, func(w io.Writer) error {
		_, err := table.WriteTo(w)
		return err
	})
}
