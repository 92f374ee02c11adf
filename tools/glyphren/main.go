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

// Glyphren renames the glyphs of a FontForge SFD file to canonical names.
//
// Atomic glyphs are named after a reference table which maps code points to
// glyph names.  Composite glyphs are named after their components, using
// the ligature lookups in the SFD file.
//
// Usage:
//
//	glyphren -r reference.txt -i input.sfd -o output.sfd [-l DBG|TRACE]
//	glyphren reftab --font reference.ttf [--first 0D00] [--last 0D7F] [-o reference.txt]
//	glyphren version
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/glyphren/tools/internal/buildinfo"
)

// envLogLevel names the environment variable which supplies the default log
// level.
const envLogLevel = "GLYPHREN_LOG"

type options struct {
	refFile    string
	inFile     string
	outFile    string
	mapFile    string
	logLevel   string
	cpuprofile string
	memprofile string

	log *logrus.Logger
}

func main() {
	cmd := newRootCmd(&options{log: logrus.New()})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "glyphren:", err)
		os.Exit(1)
	}
}

func newRootCmd(opt *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "glyphren -r reference -i input.sfd [-o output.sfd]",
		Short: "Rename the glyphs of an SFD file to canonical names",
		Long: `Glyphren renames the glyphs of a FontForge SFD file.

Glyphs with a Unicode code point take their names from the reference table.
Composite glyphs are named after their components, as given by the ligature
lookups of the font: the names of the components are concatenated, viramas
are left out and base+virama+ZWJ becomes base+"chillu".  Names which are
already in use get a numeric suffix.`,
		Version:       buildinfo.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(opt.log, opt.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, opt)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opt.logLevel, "log", "l", os.Getenv(envLogLevel),
		"log level: DBG or TRACE (default from $"+envLogLevel+")")
	pf.StringVar(&opt.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	pf.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")

	f := root.Flags()
	f.StringVarP(&opt.refFile, "refnam", "r", "", "reference table `file`")
	f.StringVarP(&opt.inFile, "insfd", "i", "", "input SFD `file`")
	f.StringVarP(&opt.outFile, "outsfd", "o", "", "output SFD `file` (default standard output)")
	f.StringVar(&opt.mapFile, "map", "", "write the old and new glyph names to `file`")
	root.MarkFlagRequired("refnam")
	root.MarkFlagRequired("insfd")

	root.AddCommand(newReftabCmd(opt), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of glyphren",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "glyphren", buildinfo.Version())
		},
	}
}
