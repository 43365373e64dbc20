// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package ucd

import "unicode"

// indicTable lists the Indic_Syllabic_Category values that matter for
// eligibility. Everything else is InSCOther.
var indicTable = []struct {
	lo, hi rune
	cat    IndicCategory
}{
	{0x0CF1, 0x0CF2, ConsonantWithStacker},
	{0x0D4E, 0x0D4E, ConsonantPrecedingRepha},
	{0x111C2, 0x111C3, ConsonantPrefixed},
	{0x11003, 0x11004, ConsonantWithStacker},
	{0x11460, 0x11461, ConsonantWithStacker},
	{0x1193F, 0x1193F, ConsonantPrefixed},
	{0x11941, 0x11941, ConsonantPrecedingRepha},
	{0x11A3A, 0x11A3A, ConsonantPrefixed},
	{0x11A84, 0x11A89, ConsonantPrefixed},
	{0x11D46, 0x11D46, ConsonantPrecedingRepha},
	{0x11F02, 0x11F02, ConsonantPrefixed},
	{0x1CF5, 0x1CF6, ConsonantWithStacker},
}

func indicCategory(r rune) IndicCategory {
	for _, e := range indicTable {
		if r >= e.lo && r <= e.hi {
			return e.cat
		}
	}
	return InSCOther
}

const (
	hangulSBase  = 0xAC00
	hangulSCount = 11172
	hangulTCount = 28
)

// graphemeBreak derives Grapheme_Cluster_Break following UAX #29.
func graphemeBreak(r rune, gc GeneralCategory, insc IndicCategory) GraphemeBreak {
	switch {
	case r == '\r':
		return GBCR
	case r == '\n':
		return GBLF
	case r == 0x200D:
		return GBZWJ
	case unicode.Is(unicode.Regional_Indicator, r):
		return GBRegionalIndicator
	case unicode.Is(unicode.Prepended_Concatenation_Mark, r),
		insc == ConsonantPrecedingRepha, insc == ConsonantPrefixed:
		return GBPrepend
	case r == 0x200C, gc == Mn, gc == Me, unicode.Is(unicode.Other_Grapheme_Extend, r),
		r >= 0x1F3FB && r <= 0x1F3FF:
		return GBExtend
	case gc == Cc, gc == Zl, gc == Zp, gc == Cs, gc == Cf:
		return GBControl
	case gc == Cn && unicode.Is(unicode.Other_Default_Ignorable_Code_Point, r):
		return GBControl
	case (r >= 0x1100 && r <= 0x115F) || (r >= 0xA960 && r <= 0xA97C):
		return GBL
	case (r >= 0x1160 && r <= 0x11A7) || (r >= 0xD7B0 && r <= 0xD7C6):
		return GBV
	case (r >= 0x11A8 && r <= 0x11FF) || (r >= 0xD7CB && r <= 0xD7FB):
		return GBT
	case r >= hangulSBase && r < hangulSBase+hangulSCount:
		if (r-hangulSBase)%hangulTCount == 0 {
			return GBLV
		}
		return GBLVT
	case gc == Mc:
		return GBSpacingMark
	}
	return GBOther
}

// derivedProperties are binary properties composed from a general
// category and an Other_* contributory table.
var derivedProperties = map[Property]struct {
	categories []*unicode.RangeTable
	other      *unicode.RangeTable
}{
	Alphabetic: {[]*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl}, unicode.Other_Alphabetic},
	Lowercase:  {[]*unicode.RangeTable{unicode.Ll}, unicode.Other_Lowercase},
	Uppercase:  {[]*unicode.RangeTable{unicode.Lu}, unicode.Other_Uppercase},
	Math:       {[]*unicode.RangeTable{unicode.Sm}, unicode.Other_Math},
}
