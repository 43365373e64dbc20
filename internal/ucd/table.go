// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package ucd

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/runenames"
)

//go:embed data/Blocks.txt data/DerivedAge.txt
var dataFS embed.FS

// Version is the Unicode version of the embedded data. It matches the
// standard library tables the general category and script come from.
const Version = "15.0.0"

// Table is the embedded attribute oracle. It is safe for concurrent use.
type Table struct {
	version    string
	blocks     []valueRange
	categories spanIndex
	scripts    spanIndex
	ages       *ageIndex
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the process-wide table built from the embedded data.
// It panics if the embedded data is malformed.
func Default() *Table {
	defaultOnce.Do(func() {
		blocks, err := dataFS.ReadFile("data/Blocks.txt")
		if err != nil {
			defaultErr = err
			return
		}
		ages, err := dataFS.ReadFile("data/DerivedAge.txt")
		if err != nil {
			defaultErr = err
			return
		}
		defaultTable, defaultErr = Load(bytes.NewReader(blocks), bytes.NewReader(ages))
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("ucd: embedded data: %v", defaultErr))
	}
	return defaultTable
}

// Load builds a table from a Blocks.txt stream and a DerivedAge.txt
// stream. Both files must carry the same version in their header line when
// they carry one.
func Load(blocks, ages io.Reader) (*Table, error) {
	b, blocksVersion, err := parseRanges(blocks)
	if err != nil {
		return nil, fmt.Errorf("parse blocks: %w", err)
	}
	a, agesVersion, err := parseRanges(ages)
	if err != nil {
		return nil, fmt.Errorf("parse ages: %w", err)
	}
	if blocksVersion != "" && agesVersion != "" && blocksVersion != agesVersion {
		return nil, fmt.Errorf("block data is Unicode %s but age data is Unicode %s", blocksVersion, agesVersion)
	}
	ageIdx, err := newAgeIndex(a)
	if err != nil {
		return nil, err
	}
	cats := make(map[string]*unicode.RangeTable, len(generalCategories))
	for _, gc := range generalCategories {
		if t, ok := unicode.Categories[string(gc)]; ok {
			cats[string(gc)] = t
		}
	}
	version := blocksVersion
	if version == "" {
		version = agesVersion
	}
	return &Table{
		version:    version,
		blocks:     b,
		categories: newSpanIndex(cats),
		scripts:    newSpanIndex(unicode.Scripts),
		ages:       ageIdx,
	}, nil
}

// Lookup implements Source.
func (t *Table) Lookup(r rune) (Attributes, bool) {
	if !utf8.ValidRune(r) {
		return Attributes{}, false
	}
	a := Attributes{
		Block:    t.Block(r),
		Category: Cn,
		Script:   UnknownScript,
		Age:      Unassigned,
	}
	if gc, ok := t.categories.find(r); ok {
		a.Category = GeneralCategory(gc)
	}
	if sc, ok := t.scripts.find(r); ok {
		a.Script = Script(sc)
	}
	a.Age = t.ages.lookup(r)
	p, _ := bidi.LookupRune(r)
	a.Bidi = bidiNames[p.Class()]
	a.Indic = indicCategory(r)
	a.GraphemeBreak = graphemeBreak(r, a.Category, a.Indic)
	return a, true
}

// Version reports the Unicode version named in the data file headers, or
// "" when the files carry none.
func (t *Table) Version() string { return t.version }

// Block returns the block containing r, or NoBlock.
func (t *Table) Block(r rune) Block {
	if br, ok := findRange(t.blocks, r); ok {
		return Block(br.value)
	}
	return NoBlock
}

// Blocks lists every known block in code point order.
func (t *Table) Blocks() []Block {
	out := make([]Block, len(t.blocks))
	for i, b := range t.blocks {
		out[i] = Block(b.value)
	}
	return out
}

// HasBlock reports whether name is a known block.
func (t *Table) HasBlock(name Block) bool {
	for _, b := range t.blocks {
		if b.value == string(name) {
			return true
		}
	}
	return false
}

// BlockRange returns the first and last code point of a block.
func (t *Table) BlockRange(name Block) (lo, hi rune, ok bool) {
	for _, b := range t.blocks {
		if b.value == string(name) {
			return b.lo, b.hi, true
		}
	}
	return 0, 0, false
}

// HasProperty implements Source.
func (t *Table) HasProperty(r rune, p Property) bool {
	if d, ok := derivedProperties[p]; ok {
		return unicode.IsOneOf(d.categories, r) || unicode.Is(d.other, r)
	}
	if tbl, ok := unicode.Properties[string(p)]; ok {
		return unicode.Is(tbl, r)
	}
	return false
}

// KnownProperty reports whether p can be answered by HasProperty.
func KnownProperty(p Property) bool {
	if _, ok := derivedProperties[p]; ok {
		return true
	}
	_, ok := unicode.Properties[string(p)]
	return ok
}

// Properties lists every property name HasProperty understands, sorted.
func Properties() []Property {
	out := make([]Property, 0, len(unicode.Properties)+len(derivedProperties))
	for name := range unicode.Properties {
		out = append(out, Property(name))
	}
	for name := range derivedProperties {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Name returns the character name of r, or "" when it has none.
func Name(r rune) string {
	return runenames.Name(r)
}

var bidiNames = map[bidi.Class]BidiClass{
	bidi.L: BidiL, bidi.R: BidiR, bidi.EN: BidiEN, bidi.ES: BidiES, bidi.ET: BidiET,
	bidi.AN: BidiAN, bidi.CS: BidiCS, bidi.B: BidiB, bidi.S: BidiS, bidi.WS: BidiWS,
	bidi.ON: BidiON, bidi.BN: BidiBN, bidi.NSM: BidiNSM, bidi.AL: BidiAL,
	bidi.LRO: BidiLRO, bidi.RLO: BidiRLO, bidi.LRE: BidiLRE, bidi.RLE: BidiRLE,
	bidi.PDF: BidiPDF, bidi.LRI: BidiLRI, bidi.RLI: BidiRLI, bidi.FSI: BidiFSI,
	bidi.PDI: BidiPDI,
}
