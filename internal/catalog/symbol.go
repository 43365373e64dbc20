// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package catalog

import (
	"fmt"

	"github.com/toeirei/passgen/internal/ucd"
)

// Symbol is one eligible character and its attributes.
type Symbol struct {
	r     rune
	attrs ucd.Attributes
	src   ucd.Source
}

// Rune returns the code point.
func (s Symbol) Rune() rune { return s.r }

// Attributes returns the attributes looked up at build time.
func (s Symbol) Attributes() ucd.Attributes { return s.attrs }

// HasProperty asks the attribute source for a binary property.
func (s Symbol) HasProperty(p ucd.Property) bool { return s.src.HasProperty(s.r, p) }

// String returns the character itself.
func (s Symbol) String() string { return string(s.r) }

// Label renders "U+0041 A LATIN CAPITAL LETTER A".
func (s Symbol) Label() string {
	name := ucd.Name(s.r)
	if name == "" {
		return fmt.Sprintf("U+%04X %c", s.r, s.r)
	}
	return fmt.Sprintf("U+%04X %c %s", s.r, s.r, name)
}
