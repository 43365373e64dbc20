// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package predicate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/toeirei/passgen/internal/ucd"
)

// Values is a typed set of acceptable attribute values. The set of
// implementations is closed to this package.
type Values interface {
	// Attribute names the tested attribute, e.g. "block" or "gc".
	Attribute() string
	match(s Subject) bool
	len() int
	describe(include bool) string
}

// Blocks matches the Unicode block.
type Blocks []ucd.Block

// Categories matches the general category.
type Categories []ucd.GeneralCategory

// Scripts matches the script.
type Scripts []ucd.Script

// Ages matches the assignment age.
type Ages []ucd.Age

// BidiClasses matches the bidirectional class.
type BidiClasses []ucd.BidiClass

// GraphemeBreaks matches the grapheme cluster break value.
type GraphemeBreaks []ucd.GraphemeBreak

// IndicCategories matches the Indic syllabic category.
type IndicCategories []ucd.IndicCategory

// Ordinals matches exact code points.
type Ordinals []rune

// Property matches a binary property against the wanted value.
type Property struct {
	Name ucd.Property
	Want bool
}

func (Blocks) Attribute() string          { return "block" }
func (Categories) Attribute() string      { return "gc" }
func (Scripts) Attribute() string         { return "script" }
func (Ages) Attribute() string            { return "age" }
func (BidiClasses) Attribute() string     { return "bidi" }
func (GraphemeBreaks) Attribute() string  { return "gcb" }
func (IndicCategories) Attribute() string { return "insc" }
func (Ordinals) Attribute() string        { return "ordinal" }
func (Property) Attribute() string        { return "property" }

func (v Blocks) match(s Subject) bool     { return slices.Contains(v, s.Attributes().Block) }
func (v Categories) match(s Subject) bool { return slices.Contains(v, s.Attributes().Category) }
func (v Scripts) match(s Subject) bool    { return slices.Contains(v, s.Attributes().Script) }
func (v Ages) match(s Subject) bool       { return slices.Contains(v, s.Attributes().Age) }
func (v BidiClasses) match(s Subject) bool {
	return slices.Contains(v, s.Attributes().Bidi)
}
func (v GraphemeBreaks) match(s Subject) bool {
	return slices.Contains(v, s.Attributes().GraphemeBreak)
}
func (v IndicCategories) match(s Subject) bool {
	return slices.Contains(v, s.Attributes().Indic)
}
func (v Ordinals) match(s Subject) bool { return slices.Contains(v, s.Rune()) }
func (v Property) match(s Subject) bool { return s.HasProperty(v.Name) == v.Want }

func (v Blocks) len() int          { return len(v) }
func (v Categories) len() int      { return len(v) }
func (v Scripts) len() int         { return len(v) }
func (v Ages) len() int            { return len(v) }
func (v BidiClasses) len() int     { return len(v) }
func (v GraphemeBreaks) len() int  { return len(v) }
func (v IndicCategories) len() int { return len(v) }
func (v Ordinals) len() int        { return len(v) }
func (v Property) len() int {
	if v.Name == "" {
		return 0
	}
	return 1
}

func (v Blocks) describe(include bool) string          { return setString(v.Attribute(), include, v) }
func (v Categories) describe(include bool) string      { return setString(v.Attribute(), include, v) }
func (v Scripts) describe(include bool) string         { return setString(v.Attribute(), include, v) }
func (v Ages) describe(include bool) string            { return setString(v.Attribute(), include, v) }
func (v BidiClasses) describe(include bool) string     { return setString(v.Attribute(), include, v) }
func (v GraphemeBreaks) describe(include bool) string  { return setString(v.Attribute(), include, v) }
func (v IndicCategories) describe(include bool) string { return setString(v.Attribute(), include, v) }

func (v Ordinals) describe(include bool) string {
	parts := make([]string, len(v))
	for i, r := range v {
		parts[i] = fmt.Sprintf("U+%04X", r)
	}
	return setString(v.Attribute(), include, parts)
}

func (v Property) describe(include bool) string {
	op := "=="
	if !include {
		op = "!="
	}
	return fmt.Sprintf("%s %s %t", v.Name, op, v.Want)
}

func setString[T any](attr string, include bool, values []T) string {
	op := "in"
	if !include {
		op = "not in"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s %s [%s]", attr, op, strings.Join(parts, ", "))
}
