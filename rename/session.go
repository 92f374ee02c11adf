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

// Package rename derives canonical names for the glyphs of a font.
//
// Atomic glyphs take their names from a reference table.  Composite glyphs
// are named after their components: the new names of the components are
// concatenated, with the virama left out and virama+ZWJ sequences written as
// "chillu".  Since a composite can only be named once all of its components
// have names, the renaming proceeds in passes until a pass makes no progress.
package rename

import (
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/glyphren/reftab"
	"seehuhn.de/go/glyphren/sfd"
)

// These are the canonical names with special meaning during renaming.
const (
	// ViramaName is the reference name of the virama.
	ViramaName = "xx"

	// ZWJName is the reference name of the zero width joiner.
	// Ligature components of this name are also treated as ZWJ.
	ZWJName = "ZWJ"

	// ChilluSuffix is appended to the base glyph name of a chillu.
	ChilluSuffix = "chillu"

	// viramaLiteral is a component name which is always treated as a virama.
	viramaLiteral = "VIRAMA"
)

// A Session holds the state of one renaming run.
// Sessions must not be used concurrently.
type Session struct {
	Ref    *reftab.Table
	Glyphs []*sfd.Glyph

	// Names is the registry of new names.  It only grows during a run.
	Names Registry

	// Virama and ZWJ are the names of the glyphs which map to ViramaName
	// and ZWJName.  They are set by Seed.
	Virama string
	ZWJ    string

	Log logrus.Ext1FieldLogger
}

// NewSession prepares the renaming of glyphs using the reference table ref.
func NewSession(ref *reftab.Table, glyphs []*sfd.Glyph) *Session {
	return &Session{
		Ref:    ref,
		Glyphs: glyphs,
		Names:  make(Registry),
		Log:    logrus.StandardLogger(),
	}
}

// Run renames as many glyphs as possible.  It seeds the registry and then
// performs passes until a pass renames no glyph.  The return value lists the
// number of glyphs renamed in each pass; the last element is always zero.
func (s *Session) Run() []int {
	s.Seed()

	var counts []int
	for pass := 1; ; pass++ {
		n := s.Pass()
		s.Log.Infof("pass %d: %d glyphs renamed", pass, n)
		counts = append(counts, n)
		if n == 0 {
			return counts
		}
	}
}

// Seed enters the reference names of all atomic glyphs into the registry and
// determines the virama and ZWJ glyphs.
//
// Atomic glyphs whose code point is missing from the reference table are
// mapped to the empty string.
func (s *Session) Seed() {
	for _, g := range s.Glyphs {
		for _, lig := range g.Ligatures {
			for _, c := range lig.Components {
				if _, seen := s.Names[c]; !seen {
					s.Names[c] = ""
				}
			}
		}
	}

	for _, g := range s.Glyphs {
		r, ok := g.Rune()
		if !ok {
			continue
		}
		name, found := s.Ref.Lookup(r)
		if !found {
			s.Log.Debugf("no reference name for %s (U+%04X)", g.Name, r)
		}
		s.Names[g.Name] = name
		g.NewName = name
		s.Log.Debugf("base glyph %s -> %q", g.Name, name)
	}

	for _, old := range s.Names.Keys() {
		switch s.Names[old] {
		case ViramaName:
			s.Virama = old
		case ZWJName:
			s.ZWJ = old
		}
	}
	s.Log.Debugf("virama is %q, ZWJ is %q", s.Virama, s.ZWJ)
}

// Pass tries to rename every composite glyph which has not been renamed yet.
// It returns the number of glyphs renamed.
func (s *Session) Pass() int {
	count := 0
	for idx, g := range s.Glyphs {
		if len(g.Ligatures) == 0 || s.Names.Resolved(g.Name) {
			continue
		}

		comps, ok := s.selectComponents(g)
		if !ok {
			continue
		}

		candidate := s.BuildName(comps)
		newName := s.Unique(idx, candidate)

		s.Names[g.Name] = newName
		g.NewName = newName
		count++
		s.Log.Debugf("%s -> %s", g.Name, newName)
	}
	return count
}

// selectComponents chooses the ligature form used to name g.  All forms of
// the glyph must have fully resolved components.  A single form is used
// directly.  Otherwise the anchor form takes precedence, and without an
// anchor form the first form with the largest number of components is used.
func (s *Session) selectComponents(g *sfd.Glyph) ([]string, bool) {
	var maxComps, anchorComps []string
	hasAnchor := false
	for _, lig := range g.Ligatures {
		if len(lig.Components) > len(maxComps) {
			maxComps = lig.Components
		}
		if lig.Role() == sfd.RoleAnchor {
			hasAnchor = true
			anchorComps = lig.Components
		}
		for _, c := range lig.Components {
			if !s.Names.Resolved(c) {
				s.Log.Tracef("%s: component %s of %s form %q has no name yet",
					g.Name, c, lig.Role(), lig.Tag)
				return nil, false
			}
		}
	}

	switch {
	case len(g.Ligatures) == 1:
		return g.Ligatures[0].Components, true
	case hasAnchor:
		return anchorComps, true
	default:
		return maxComps, true
	}
}

// Unresolved returns the composite glyphs which have not been renamed.
func (s *Session) Unresolved() []*sfd.Glyph {
	var res []*sfd.Glyph
	for _, g := range s.Glyphs {
		if len(g.Ligatures) > 0 && g.NewName == "" {
			res = append(res, g)
		}
	}
	return res
}
