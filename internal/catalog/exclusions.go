// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package catalog

import (
	p "github.com/toeirei/passgen/internal/predicate"
	"github.com/toeirei/passgen/internal/ucd"
)

var excludedCategories = p.Categories{
	ucd.Cc, ucd.Cf, ucd.Cn, ucd.Co, ucd.Cs, ucd.Mc, ucd.Mn, ucd.Zl, ucd.Zp,
}

var excludedBidi = p.BidiClasses{
	ucd.BidiAL, ucd.BidiAN, ucd.BidiB, ucd.BidiBN, ucd.BidiFSI, ucd.BidiLRE, ucd.BidiLRI, ucd.BidiLRO,
	ucd.BidiNSM, ucd.BidiPDF, ucd.BidiPDI, ucd.BidiR, ucd.BidiRLE, ucd.BidiRLI, ucd.BidiRLO, ucd.BidiS,
}

// UnsupportedBlocks are blocks common fonts do not render.
var UnsupportedBlocks = p.Blocks{
	"CJK Compatibility Ideographs Supplement",
	"CJK Unified Ideographs Extension B",
	"CJK Unified Ideographs Extension C",
	"CJK Unified Ideographs Extension D",
	"CJK Unified Ideographs Extension E",
	"CJK Unified Ideographs Extension F",
	"CJK Unified Ideographs Extension G",
	"CJK Unified Ideographs Extension H",
	"Cypro-Minoan",
	"Cyrillic Extended-D",
	"Dives Akuru",
	"Ethiopic Extended-B",
	"Egyptian Hieroglyph Format Controls",
	"Kaktovik Numerals",
	"Kana Extended-A",
	"Kana Extended-B",
	"Kana Supplement",
	"Kawi",
	"Khitan Small Script",
	"Latin Extended-F",
	"Latin Extended-G",
	"Makasar",
	"Nag Mundari",
	"Nandinagari",
	"Small Kana Extension",
	"Specials",
	"Tangsa",
	"Tangut Supplement",
	"Toto",
	"Unified Canadian Aboriginal Syllabics Extended-A",
	"Vithkuqi",
	"Znamenny Musical Notation",
}

// excludedOrdinals render as tofu or overlapping glyphs in common fonts.
var excludedOrdinals = p.Ordinals{0x332C, 0x1F908, 0x1F909, 0x1F90A, 0x1F90B}

// AgeGate keeps the characters of Block whose age is listed in Allowed and
// drops the rest of the block.
type AgeGate struct {
	Block   ucd.Block
	Allowed []ucd.Age
}

// AgeGates lists the blocks only partially supported by common fonts.
var AgeGates = []AgeGate{
	{"Balinese", []ucd.Age{ucd.V(5, 0)}},
	{"Brahmi", []ucd.Age{ucd.V(6, 0)}},
	{"Chakma", []ucd.Age{ucd.V(6, 1), ucd.V(11, 0)}},
	{"Takri", []ucd.Age{ucd.V(6, 1), ucd.V(12, 0)}},
	{"Ahom", []ucd.Age{ucd.V(8, 0), ucd.V(11, 0)}},
	{"Egyptian Hieroglyphs", []ucd.Age{ucd.V(5, 2)}},
	{"Tangut Components", []ucd.Age{ucd.V(9, 0)}},
	{"Musical Symbols", []ucd.Age{ucd.V(3, 1), ucd.V(8, 0)}},
	{"Enclosed Alphanumeric Supplement", []ucd.Age{ucd.V(5, 2), ucd.V(6, 0), ucd.V(6, 1), ucd.V(7, 0), ucd.V(9, 0), ucd.V(11, 0), ucd.V(12, 0)}},
	{"Enclosed Ideographic Supplement", []ucd.Age{ucd.V(5, 2), ucd.V(6, 0), ucd.V(9, 0)}},
	{"Supplemental Arrows-C", []ucd.Age{ucd.V(7, 0), ucd.V(13, 0)}},
	{"Symbols for Legacy Computing", []ucd.Age{ucd.V(13, 0)}},
	{"Ideographic Description Characters", []ucd.Age{ucd.V(13, 0)}},
	{"Bopomofo Extended", []ucd.Age{ucd.V(3, 0), ucd.V(6, 0)}},
	{"CJK Strokes", []ucd.Age{ucd.V(4, 1), ucd.V(5, 1)}},
	{"CJK Compatibility Ideographs", []ucd.Age{ucd.V(1, 1), ucd.V(3, 2), ucd.V(5, 2), ucd.V(6, 1)}},
	{"Arabic Presentation Forms-A", []ucd.Age{ucd.V(1, 1), ucd.V(4, 0)}},
}

// Predicate expresses the gate as not(all(block, not(any(age in allowed)))).
func (g AgeGate) Predicate() p.Predicate {
	return p.Negate(p.All(
		p.Is(p.Blocks{g.Block}),
		p.Negate(p.Any(p.Is(p.Ages(g.Allowed)))),
	))
}

// latinExtendedD keeps the 5.0 through 13.0 additions plus the 14.0
// modifier letters.
func latinExtendedD() p.Predicate {
	keep := p.Any(
		p.Is(p.Ages{
			ucd.V(5, 0), ucd.V(5, 1), ucd.V(6, 0), ucd.V(6, 1), ucd.V(7, 0),
			ucd.V(8, 0), ucd.V(9, 0), ucd.V(11, 0), ucd.V(12, 0), ucd.V(13, 0),
		}),
		p.All(p.Is(p.Ages{ucd.V(14, 0)}), p.Is(p.Categories{ucd.Lm})),
	)
	return p.Negate(p.All(p.Is(p.Blocks{"Latin Extended-D"}), p.Negate(keep)))
}

// Exclusions returns the global exclusion predicates. A symbol is eligible
// when it satisfies every one of them.
func Exclusions() []p.Predicate {
	out := []p.Predicate{
		p.IsNot(excludedCategories),
		p.IsNot(p.GraphemeBreaks{ucd.GBPrepend}),
		p.Is(p.Property{Name: ucd.Deprecated, Want: false}),
		p.IsNot(excludedBidi),
		p.IsNot(UnsupportedBlocks),
		p.IsNot(p.IndicCategories{ucd.ConsonantWithStacker}),
		p.IsNot(excludedOrdinals),
	}
	for _, g := range AgeGates {
		out = append(out, g.Predicate())
	}
	return append(out, latinExtendedD())
}

// Default builds the catalog from the embedded attribute table and the
// global exclusions.
func Default(opts ...Option) *Catalog {
	return Build(ucd.Default(), Exclusions(), opts...)
}
