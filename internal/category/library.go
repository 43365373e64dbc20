// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package category

import (
	p "github.com/toeirei/passgen/internal/predicate"
	"github.com/toeirei/passgen/internal/ucd"
)

// LibraryOptions tunes the built-in definitions.
type LibraryOptions struct {
	// RequireEveryCategory gives every non-ASCII category a minimum of one
	// instead of zero.
	RequireEveryCategory bool
}

// asciiBasicSymbols are ! # $ % & * @ ^.
var asciiBasicSymbols = p.Ordinals{0x21, 0x23, 0x24, 0x25, 0x26, 0x2A, 0x40, 0x5E}

var basicLatin = p.Blocks{"Basic Latin"}

var notSpace = p.IsNot(p.Categories{ucd.Zs})

// Library returns the built-in category definitions in display order.
func Library(opts LibraryOptions) []Definition {
	extra := 0
	if opts.RequireEveryCategory {
		extra = 1
	}
	ascii := func(name string, match p.Predicate) Definition {
		return Definition{Name: name, Enabled: true, Minimum: 1, Match: match}
	}
	other := func(name string, match p.Predicate) Definition {
		return Definition{Name: name, Enabled: true, Minimum: extra, Match: match}
	}

	return []Definition{
		ascii("ASCII Lowercase Letters", p.All(p.Is(basicLatin), p.Is(p.Categories{ucd.Ll}))),
		ascii("ASCII Uppercase Letters", p.All(p.Is(basicLatin), p.Is(p.Categories{ucd.Lu}))),
		ascii("ASCII Digits", p.All(p.Is(basicLatin), p.Is(p.Categories{ucd.Nd}))),
		ascii("ASCII Basic Symbols", p.All(p.Is(basicLatin), p.Is(asciiBasicSymbols))),
		ascii("ASCII Extended Symbols", p.All(
			p.Is(basicLatin),
			p.Is(p.Categories{ucd.Pc, ucd.Pd, ucd.Pe, ucd.Po, ucd.Ps, ucd.Sk, ucd.Sm}),
			p.IsNot(asciiBasicSymbols),
		)),
		ascii("ASCII Space", p.All(p.Is(basicLatin), p.Is(p.Categories{ucd.Zs}))),
		other("African Characters", p.Is(p.Blocks{
			"Ethiopic", "Ethiopic Supplement", "Ethiopic Extended", "Tifinagh",
		})),
		other("CJK Characters", p.All(p.Is(p.Blocks{
			"NKo", "CJK Radicals Supplement", "CJK Symbols and Punctuation", "CJK Strokes",
			"Enclosed CJK Letters and Months", "CJK Compatibility", "CJK Unified Ideographs Extension A",
			"CJK Unified Ideographs", "CJK Compatibility Ideographs", "CJK Compatibility Forms",
		}), notSpace)),
		other("European Characters", p.All(notSpace, p.Any(
			p.Is(p.Blocks{
				"Greek and Coptic", "Greek Extended", "Cyrillic", "Cyrillic Extended-A",
				"Cyrillic Extended-B", "Cyrillic Extended-C", "Cyrillic Supplement", "Glagolitic",
				"Coptic", "Coptic Epact Numbers", "Armenian", "Georgian", "Georgian Extended",
				"Georgian Supplement", "Old Italic", "Gothic", "Old Permic", "Shavian", "Elbasan",
				"Caucasian Albanian", "Ogham", "Runic", "Duployan",
			}),
			p.All(p.Is(p.Blocks{"Alphabetic Presentation Forms"}), p.Is(p.Scripts{"Armenian"})),
		))),
		other("Extended Numbers", p.Is(p.Blocks{
			"Aegean Numbers", "Ancient Greek Numbers", "Mayan Numerals", "Counting Rod Numerals",
		})),
		other("Extended Symbols and Emojis", p.All(notSpace, p.Any(
			p.Is(p.Blocks{
				"General Punctuation", "Superscripts and Subscripts", "Letterlike Symbols",
				"Number Forms", "Arrows", "Mathematical Operators", "Miscellaneous Technical",
				"Optical Character Recognition", "Enclosed Alphanumerics", "Control Pictures",
				"Box Drawing", "Block Elements", "Geometric Shapes", "Geometric Shapes Extended",
				"Miscellaneous Symbols", "Dingbats", "Miscellaneous Mathematical Symbols-A",
				"Supplemental Arrows-A", "Braille Patterns", "Supplemental Arrows-B",
				"Supplemental Arrows-C", "Miscellaneous Mathematical Symbols-B",
				"Supplemental Mathematical Operators", "Miscellaneous Symbols and Arrows",
				"Supplemental Punctuation", "Ideographic Description Characters", "Vertical Forms",
				"Small Form Variants", "Halfwidth and Fullwidth Forms", "Ancient Symbols",
				"Phaistos Disc", "Deseret", "Miao", "Ideographic Symbols and Punctuation",
				"Phoenician", "Byzantine Musical Symbols", "Musical Symbols",
				"Ancient Greek Musical Notation", "Mathematical Alphanumeric Symbols",
				"Sutton SignWriting", "Nyiakeng Puachue Hmong", "Arabic Mathematical Alphabetic Symbols",
				"Mahjong Tiles", "Domino Tiles", "Playing Cards", "Enclosed Alphanumeric Supplement",
				"Enclosed Ideographic Supplement", "Miscellaneous Symbols and Pictographs", "Emoticons",
				"Transport and Map Symbols", "Alchemical Symbols", "Supplemental Symbols and Pictographs",
				"Chess Symbols", "Symbols and Pictographs Extended-A", "Symbols for Legacy Computing",
				"Ornamental Dingbats",
			}),
			p.All(p.Is(p.Blocks{"Alphabetic Presentation Forms"}), p.Is(p.Scripts{"Hebrew"})),
		))),
		other("First Nations Characters", p.Is(p.Blocks{
			"Cherokee", "Cherokee Supplement", "Unified Canadian Aboriginal Syllabics",
			"Unified Canadian Aboriginal Syllabics Extended", "Osage",
		})),
		other("Indian Characters", p.Is(p.Blocks{
			"Devanagari", "Devanagari Extended", "Devanagari Extended-A", "Bengali", "Gurmukhi",
			"Gujarati", "Oriya", "Tamil", "Tamil Supplement", "Telugu", "Kannada", "Malayalam",
			"Lepcha", "Ol Chiki", "Vedic Extensions", "Common Indic Number Forms", "Saurashtra",
			"Meetei Mayek", "Meetei Mayek Extensions", "Brahmi", "Kaithi", "Sora Sompeng",
			"Mahajani", "Sharada", "Grantha", "Modi", "Ahom", "Dogra", "Warang Citi", "Bhaiksuki",
			"Masaram Gondi", "Gunjala Gondi", "Wancho",
		})),
		other("IPA Extended Characters and Modifier Letters", p.Is(p.Blocks{
			"IPA Extensions", "Phonetic Extensions", "Phonetic Extensions Supplement",
			"Spacing Modifier Letters",
		})),
		other("Latin Lowercase Characters", p.Any(
			p.All(p.Is(p.Blocks{"Alphabetic Presentation Forms"}), p.Is(p.Scripts{"Latin"})),
			p.All(p.Is(p.Blocks{
				"Latin-1 Supplement", "Latin Extended-A", "Latin Extended Additional",
				"Latin Extended-B", "Latin Extended-C", "Latin Extended-D", "Latin Extended-E",
			}), p.Is(p.Categories{ucd.Ll})),
		)),
		other("Latin Uppercase Characters", p.All(p.Is(p.Blocks{
			"Latin-1 Supplement", "Latin Extended-A", "Latin Extended Additional",
			"Latin Extended-B", "Latin Extended-C", "Latin Extended-D",
		}), p.Is(p.Categories{ucd.Lu}))),
		other("Latin Symbols", p.All(
			p.Is(p.Blocks{"Latin-1 Supplement", "Latin Extended-D", "Latin Extended-E"}),
			p.Is(p.Categories{ucd.No, ucd.Pf, ucd.Pi, ucd.Po, ucd.Sc, ucd.Sk, ucd.Sm, ucd.So}),
		)),
		other("Other Latin Characters", p.All(p.Is(p.Blocks{
			"Latin-1 Supplement", "Latin Extended-B", "Latin Extended-C", "Latin Extended-D",
			"Latin Extended-E",
		}), p.Is(p.Categories{ucd.Lm, ucd.Lo, ucd.Lt}))),
		other("Linear A and Linear B Characters", p.Is(p.Blocks{
			"Linear A", "Linear B Ideograms", "Linear B Syllabary",
		})),
		other("Non-ASCII Space", p.All(p.IsNot(basicLatin), p.Is(p.Categories{ucd.Zs}))),
		other("Non-CJK Central and East Asian Characters", p.Is(p.Blocks{
			"Mongolian", "Mongolian Supplement", "Tai Le", "New Tai Lue", "Kangxi Radicals",
			"Hangul Jamo", "Hangul Jamo Extended-A", "Hangul Jamo Extended-B", "Hiragana",
			"Katakana", "Katakana Phonetic Extensions", "Bopomofo", "Bopomofo Extended",
			"Hangul Compatibility Jamo", "Kanbun", "Yijing Hexagram Symbols", "Yi Syllables",
			"Yi Radicals", "Vai", "Modifier Tone Letters", "Hangul Syllables", "Nushu",
			"Tai Xuan Jing Symbols",
		})),
		other("South and Southeast Asian Characters", p.Is(p.Blocks{
			"Sinhala", "Sinhala Archaic Numbers", "Thai", "Lao", "Tibetan", "Myanmar",
			"Myanmar Extended-A", "Myanmar Extended-B", "Tagalog", "Hanunoo", "Buhid", "Tagbanwa",
			"Khmer", "Limbu", "Khmer Symbols", "Buginese", "Tai Tham", "Balinese", "Sundanese",
			"Sundanese Supplement", "Batak", "Syloti Nagri", "Phags-pa", "Kayah Li", "Rejang",
			"Javanese", "Cham", "Tai Viet", "Lisu", "Chakma", "Khojki", "Multani", "Khudawadi",
			"Newa", "Tirhuta", "Siddham", "Takri", "Zanabazar Square", "Soyombo", "Pau Cin Hau",
			"Marchen", "Mro", "Pahawh Hmong",
		})),
		other("West Asian and Middle Eastern Characters", p.Is(p.Blocks{
			"Arabic", "Arabic Presentation Forms-A", "Carian", "Lycian", "Ugaritic", "Old Persian",
			"Avestan", "Cuneiform", "Cuneiform Numbers and Punctuation", "Early Dynastic Cuneiform",
			"Tangut", "Tangut Components", "Anatolian Hieroglyphs",
		})),
	}
}
