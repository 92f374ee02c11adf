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

// Package sfd reads and rewrites the glyph names of FontForge Spline Font
// Database (SFD) files.
//
// Only the parts of the file format which carry glyph names are interpreted:
// the "StartChar:" ... "EndChar" blocks, their "Encoding:" lines and the
// glyph lists of the lookup lines.  Everything else is passed through
// unchanged by [Rewrite].
package sfd

// Code describes how a glyph is encoded.  The value is either [Atomic] or
// [Composite].
type Code interface {
	isCode()
}

// Atomic is the Unicode code point of a glyph which is directly encoded.
type Atomic rune

// Composite marks a glyph which has no code point of its own.  Such glyphs
// are made up from other glyphs via ligature lookups.
type Composite struct{}

func (Atomic) isCode()    {}
func (Composite) isCode() {}

// Glyph is one glyph of an SFD file.
type Glyph struct {
	// Name is the glyph name as given in the "StartChar:" line.
	// Names are unique within a file.
	Name string

	// NewName is the name the glyph will be renamed to.
	// The empty string means that no new name has been assigned.
	NewName string

	// Pos is the encoding slot from the "Encoding:" line.
	Pos int

	// Code is the Unicode code point of the glyph, or Composite.
	Code Code

	// Ligatures lists the ligature lookups which produce this glyph,
	// in the order they appear in the file.
	Ligatures []*Ligature
}

// Rune returns the code point of an atomic glyph.
// The second return value is false for composite glyphs.
func (g *Glyph) Rune() (rune, bool) {
	r, ok := g.Code.(Atomic)
	return rune(r), ok
}

// Role distinguishes the anchor form of a composite glyph from all other
// ligature forms.
type Role int

// These are the possible roles of a ligature form.
const (
	RoleOther Role = iota
	RoleAnchor
)

func (r Role) String() string {
	switch r {
	case RoleAnchor:
		return "anchor"
	default:
		return "other"
	}
}

// AnchorTag is the feature tag of the anchor form.
const AnchorTag = "akhn"

// Ligature is one way of composing a glyph from a sequence of other glyphs.
type Ligature struct {
	// Tag is the OpenType feature tag of the lookup, e.g. "akhn" or "pres".
	Tag string

	// Components are the names of the glyphs which make up the ligature.
	Components []string
}

// Role returns RoleAnchor for ligatures from the akhn feature.
func (l *Ligature) Role() Role {
	if l.Tag == AnchorTag {
		return RoleAnchor
	}
	return RoleOther
}
