// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package ucd

import (
	"fmt"
	"strconv"
	"strings"
)

// Block is a Unicode block name exactly as it appears in Blocks.txt.
type Block string

// NoBlock is reported for code points outside every block range.
const NoBlock Block = "No_Block"

// GeneralCategory is a two-letter Unicode general category.
type GeneralCategory string

// General categories.
const (
	Lu GeneralCategory = "Lu"
	Ll GeneralCategory = "Ll"
	Lt GeneralCategory = "Lt"
	Lm GeneralCategory = "Lm"
	Lo GeneralCategory = "Lo"
	Mn GeneralCategory = "Mn"
	Mc GeneralCategory = "Mc"
	Me GeneralCategory = "Me"
	Nd GeneralCategory = "Nd"
	Nl GeneralCategory = "Nl"
	No GeneralCategory = "No"
	Pc GeneralCategory = "Pc"
	Pd GeneralCategory = "Pd"
	Ps GeneralCategory = "Ps"
	Pe GeneralCategory = "Pe"
	Pi GeneralCategory = "Pi"
	Pf GeneralCategory = "Pf"
	Po GeneralCategory = "Po"
	Sm GeneralCategory = "Sm"
	Sc GeneralCategory = "Sc"
	Sk GeneralCategory = "Sk"
	So GeneralCategory = "So"
	Zs GeneralCategory = "Zs"
	Zl GeneralCategory = "Zl"
	Zp GeneralCategory = "Zp"
	Cc GeneralCategory = "Cc"
	Cf GeneralCategory = "Cf"
	Cs GeneralCategory = "Cs"
	Co GeneralCategory = "Co"
	Cn GeneralCategory = "Cn"
)

// generalCategories lists every category that has a standard library table.
// Cn is the complement and has none.
var generalCategories = []GeneralCategory{
	Lu, Ll, Lt, Lm, Lo, Mn, Mc, Me, Nd, Nl, No, Pc, Pd, Ps, Pe, Pi, Pf, Po,
	Sm, Sc, Sk, So, Zs, Zl, Zp, Cc, Cf, Cs, Co,
}

// ParseCategory validates a two-letter general category name.
func ParseCategory(s string) (GeneralCategory, error) {
	gc := GeneralCategory(s)
	if gc == Cn {
		return gc, nil
	}
	for _, known := range generalCategories {
		if known == gc {
			return gc, nil
		}
	}
	return "", fmt.Errorf("unknown general category %q", s)
}

// Script is a Unicode script name as used by the standard library
// (for example "Latin" or "Old_Italic").
type Script string

// UnknownScript is reported for code points without a script assignment.
const UnknownScript Script = "Unknown"

// Age is the Unicode version in which a code point was first assigned.
// The zero value means unassigned.
type Age struct {
	Major uint8
	Minor uint8
}

// Unassigned is the age of code points not assigned in any known version.
var Unassigned = Age{}

// V returns the age major.minor.
func V(major, minor uint8) Age { return Age{Major: major, Minor: minor} }

func (a Age) String() string {
	if a == Unassigned {
		return "NA"
	}
	return fmt.Sprintf("%d.%d", a.Major, a.Minor)
}

// Before reports whether a was assigned strictly earlier than b.
func (a Age) Before(b Age) bool {
	if a.Major != b.Major {
		return a.Major < b.Major
	}
	return a.Minor < b.Minor
}

// ParseAge accepts "5.2" and "5.2.0".
func ParseAge(s string) (Age, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Age{}, fmt.Errorf("invalid age %q", s)
	}
	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || major == 0 {
		return Age{}, fmt.Errorf("invalid age %q", s)
	}
	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Age{}, fmt.Errorf("invalid age %q", s)
	}
	return Age{Major: uint8(major), Minor: uint8(minor)}, nil
}

// BidiClass is a bidirectional class short name such as "L" or "AL".
type BidiClass string

// Bidi classes.
const (
	BidiL   BidiClass = "L"
	BidiR   BidiClass = "R"
	BidiEN  BidiClass = "EN"
	BidiES  BidiClass = "ES"
	BidiET  BidiClass = "ET"
	BidiAN  BidiClass = "AN"
	BidiCS  BidiClass = "CS"
	BidiB   BidiClass = "B"
	BidiS   BidiClass = "S"
	BidiWS  BidiClass = "WS"
	BidiON  BidiClass = "ON"
	BidiBN  BidiClass = "BN"
	BidiNSM BidiClass = "NSM"
	BidiAL  BidiClass = "AL"
	BidiLRO BidiClass = "LRO"
	BidiRLO BidiClass = "RLO"
	BidiLRE BidiClass = "LRE"
	BidiRLE BidiClass = "RLE"
	BidiPDF BidiClass = "PDF"
	BidiLRI BidiClass = "LRI"
	BidiRLI BidiClass = "RLI"
	BidiFSI BidiClass = "FSI"
	BidiPDI BidiClass = "PDI"
)

var bidiClasses = []BidiClass{
	BidiL, BidiR, BidiEN, BidiES, BidiET, BidiAN, BidiCS, BidiB, BidiS, BidiWS, BidiON, BidiBN,
	BidiNSM, BidiAL, BidiLRO, BidiRLO, BidiLRE, BidiRLE, BidiPDF, BidiLRI, BidiRLI, BidiFSI, BidiPDI,
}

// ParseBidiClass validates a bidi class short name.
func ParseBidiClass(s string) (BidiClass, error) {
	for _, c := range bidiClasses {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown bidi class %q", s)
}

// GraphemeBreak is a Grapheme_Cluster_Break property value.
type GraphemeBreak string

// Grapheme cluster break values.
const (
	GBOther             GraphemeBreak = "Other"
	GBCR                GraphemeBreak = "CR"
	GBLF                GraphemeBreak = "LF"
	GBControl           GraphemeBreak = "Control"
	GBExtend            GraphemeBreak = "Extend"
	GBZWJ               GraphemeBreak = "ZWJ"
	GBRegionalIndicator GraphemeBreak = "Regional_Indicator"
	GBPrepend           GraphemeBreak = "Prepend"
	GBSpacingMark       GraphemeBreak = "SpacingMark"
	GBL                 GraphemeBreak = "L"
	GBV                 GraphemeBreak = "V"
	GBT                 GraphemeBreak = "T"
	GBLV                GraphemeBreak = "LV"
	GBLVT               GraphemeBreak = "LVT"
)

var graphemeBreaks = []GraphemeBreak{
	GBOther, GBCR, GBLF, GBControl, GBExtend, GBZWJ, GBRegionalIndicator, GBPrepend,
	GBSpacingMark, GBL, GBV, GBT, GBLV, GBLVT,
}

// ParseGraphemeBreak validates a grapheme cluster break value.
func ParseGraphemeBreak(s string) (GraphemeBreak, error) {
	for _, g := range graphemeBreaks {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown grapheme cluster break %q", s)
}

// IndicCategory is an Indic_Syllabic_Category value. Only the consonant
// classes that affect eligibility are distinguished; the rest are Other.
type IndicCategory string

// Indic syllabic categories.
const (
	InSCOther               IndicCategory = "Other"
	ConsonantWithStacker    IndicCategory = "Consonant_With_Stacker"
	ConsonantPrecedingRepha IndicCategory = "Consonant_Preceding_Repha"
	ConsonantPrefixed       IndicCategory = "Consonant_Prefixed"
)

// ParseIndicCategory validates an Indic syllabic category value.
func ParseIndicCategory(s string) (IndicCategory, error) {
	switch c := IndicCategory(s); c {
	case InSCOther, ConsonantWithStacker, ConsonantPrecedingRepha, ConsonantPrefixed:
		return c, nil
	}
	return "", fmt.Errorf("unknown indic syllabic category %q", s)
}

// Property is a binary Unicode property name such as "Deprecated" or "Dash".
type Property string

// Frequently used properties.
const (
	Deprecated Property = "Deprecated"
	Alphabetic Property = "Alphabetic"
	Lowercase  Property = "Lowercase"
	Uppercase  Property = "Uppercase"
	Math       Property = "Math"
	WhiteSpace Property = "White_Space"
)

// Attributes holds every non-binary attribute of a code point.
type Attributes struct {
	Block         Block
	Category      GeneralCategory
	Script        Script
	Age           Age
	Bidi          BidiClass
	GraphemeBreak GraphemeBreak
	Indic         IndicCategory
}

// Source is the read-only attribute oracle consumed by the catalog.
type Source interface {
	// Lookup returns the attributes of r. ok is false when r is not a
	// Unicode scalar value.
	Lookup(r rune) (attrs Attributes, ok bool)
	// HasProperty reports whether r has the binary property p. Unknown
	// properties report false.
	HasProperty(r rune, p Property) bool
}
