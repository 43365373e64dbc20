// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package category

import (
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/passgen/internal/catalog"
	p "github.com/toeirei/passgen/internal/predicate"
	"github.com/toeirei/passgen/internal/testutil"
	"github.com/toeirei/passgen/internal/ucd"
)

func byName(t *testing.T, cats []*Category, name string) *Category {
	t.Helper()
	for _, c := range cats {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("category %q not found", name)
	return nil
}

func TestASCIIPartition(t *testing.T) {
	cats := Partition(testutil.ASCIICatalog(), Library(LibraryOptions{}))
	tests := []struct {
		name string
		want int
	}{
		{"ASCII Lowercase Letters", 26},
		{"ASCII Uppercase Letters", 26},
		{"ASCII Digits", 10},
		{"ASCII Basic Symbols", 8},
		{"ASCII Extended Symbols", 24},
		{"ASCII Space", 1},
		{"Non-ASCII Space", 0},
		{"CJK Characters", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := byName(t, cats, tt.name)
			if c.Len() != tt.want {
				t.Fatalf("Len = %d, want %d", c.Len(), tt.want)
			}
			if c.ActiveLen() != tt.want {
				t.Fatalf("ActiveLen = %d, want %d", c.ActiveLen(), tt.want)
			}
		})
	}
	if got := string(byName(t, cats, "ASCII Basic Symbols").ActiveRunes()); got != "!#$%&*@^" {
		t.Fatalf("basic symbols = %q", got)
	}
	ext := string(byName(t, cats, "ASCII Extended Symbols").ActiveRunes())
	if strings.ContainsAny(ext, "!#$%&*@^ ") {
		t.Fatalf("extended symbols overlap basic symbols or space: %q", ext)
	}
}

func TestLibraryMinimums(t *testing.T) {
	for _, require := range []bool{false, true} {
		defs := Library(LibraryOptions{RequireEveryCategory: require})
		if len(defs) != 23 {
			t.Fatalf("library has %d definitions, want 23", len(defs))
		}
		for _, d := range defs {
			want := 0
			if require || strings.HasPrefix(d.Name, "ASCII ") {
				want = 1
			}
			if d.Minimum != want {
				t.Errorf("require=%v %q minimum = %d, want %d", require, d.Name, d.Minimum, want)
			}
			if !d.Enabled {
				t.Errorf("%q should start enabled", d.Name)
			}
		}
	}
}

func TestLibraryIsWellFormed(t *testing.T) {
	tbl := ucd.Default()
	seen := map[string]bool{}
	for _, d := range Library(LibraryOptions{}) {
		if seen[d.Name] {
			t.Errorf("duplicate category %q", d.Name)
		}
		seen[d.Name] = true
		if err := p.Validate(d.Match); err != nil {
			t.Errorf("%q: %v", d.Name, err)
		}
		p.Walk(d.Match, func(n p.Predicate) bool {
			if a, ok := n.(*p.Atom); ok {
				if blocks, ok := a.Values().(p.Blocks); ok {
					for _, b := range blocks {
						if !tbl.HasBlock(b) {
							t.Errorf("%q names unknown block %q", d.Name, b)
						}
					}
				}
			}
			return true
		})
	}
}

func TestLibraryOnFullCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("scans the whole code space")
	}
	cats := Partition(catalog.Default(), Library(LibraryOptions{}))
	members := map[string]rune{
		"African Characters":                           0x1200,
		"CJK Characters":                               0x4E00,
		"European Characters":                          0x03A9,
		"Extended Numbers":                             0x10107,
		"Extended Symbols and Emojis":                  0x1F600,
		"First Nations Characters":                     0x13A0,
		"Indian Characters":                            0x0905,
		"IPA Extended Characters and Modifier Letters": 0x0250,
		"Latin Lowercase Characters":                   0x00E9,
		"Latin Uppercase Characters":                   0x00C9,
		"Latin Symbols":                                0x00A9,
		"Other Latin Characters":                       0x00AA,
		"Linear A and Linear B Characters":             0x10000,
		"Non-ASCII Space":                              0x3000,
		"Non-CJK Central and East Asian Characters":    0x3042,
		"South and Southeast Asian Characters":         0x0E01,
		"West Asian and Middle Eastern Characters":     0x10380,
	}
	for name, r := range members {
		c := byName(t, cats, name)
		found := false
		for _, got := range c.ActiveRunes() {
			if got == r {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%q should contain %U", name, r)
		}
	}
	for _, c := range cats {
		if c.Len() == 0 {
			t.Errorf("%q is empty", c.Name())
		}
	}
	if c := byName(t, cats, "CJK Characters"); containsRune(c, 0x3000) {
		t.Errorf("CJK Characters must not contain the ideographic space")
	}
}

func containsRune(c *Category, r rune) bool {
	for _, got := range c.ActiveRunes() {
		if got == r {
			return true
		}
	}
	return false
}

func TestSymbolToggles(t *testing.T) {
	c := New(testutil.ASCIICatalog(), Definition{
		Name: "Digits", Enabled: true, Minimum: 1,
		Match: p.Is(p.Categories{ucd.Nd}),
	})
	if c.Len() != 10 || !c.Active() {
		t.Fatalf("Len = %d Active = %v", c.Len(), c.Active())
	}
	on, err := c.ToggleSymbol(0)
	if err != nil || on {
		t.Fatalf("ToggleSymbol(0) = %v, %v", on, err)
	}
	if c.ActiveLen() != 9 {
		t.Fatalf("ActiveLen = %d, want 9", c.ActiveLen())
	}
	sym, enabled, err := c.Member(0)
	if err != nil || enabled || sym.Rune() != '0' {
		t.Fatalf("Member(0) = %q %v %v", sym.Rune(), enabled, err)
	}
	if got := string(c.ActiveRunes()); got != "123456789" {
		t.Fatalf("ActiveRunes = %q", got)
	}
	// setting the same state twice does not double count
	if err := c.SetSymbolEnabled(1, false); err != nil {
		t.Fatal(err)
	}
	if err := c.SetSymbolEnabled(1, false); err != nil {
		t.Fatal(err)
	}
	if c.ActiveLen() != 8 {
		t.Fatalf("ActiveLen = %d, want 8", c.ActiveLen())
	}
	c.SetAllSymbols(false)
	if c.ActiveLen() != 0 || c.Active() {
		t.Fatalf("all disabled: ActiveLen = %d Active = %v", c.ActiveLen(), c.Active())
	}
	c.SetAllSymbols(true)
	if c.ActiveLen() != 10 {
		t.Fatalf("ActiveLen = %d, want 10", c.ActiveLen())
	}
	if c.Toggle() || c.Active() {
		t.Fatalf("Toggle should disable the category")
	}
}

func TestBounds(t *testing.T) {
	c := New(testutil.ASCIICatalog(), Definition{Name: "Space", Match: p.Is(p.Categories{ucd.Zs})})
	for _, i := range []int{-1, 1, 100} {
		if _, _, err := c.Member(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Member(%d) err = %v", i, err)
		}
		if _, err := c.ToggleSymbol(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ToggleSymbol(%d) err = %v", i, err)
		}
		var be *BoundsError
		if err := c.SetSymbolEnabled(i, true); !errors.As(err, &be) || be.Index != i || be.Len != 1 {
			t.Errorf("SetSymbolEnabled(%d) err = %v", i, err)
		}
	}
	if err := c.SetMinimum(-1); !errors.Is(err, ErrInvalidMinimum) {
		t.Fatalf("SetMinimum(-1) err = %v", err)
	}
	if err := c.SetMinimum(3); err != nil || c.Minimum() != 3 {
		t.Fatalf("SetMinimum(3) = %v, minimum %d", err, c.Minimum())
	}
}

func TestPreviewAndLabel(t *testing.T) {
	cat := testutil.ASCIICatalog()
	letters := New(cat, Definition{Name: "Lower", Enabled: true, Minimum: 2, Match: p.Is(p.Categories{ucd.Ll})})
	if got, want := letters.Preview(), "abcdefghijklmnopqrst..."; got != want {
		t.Fatalf("Preview = %q, want %q", got, want)
	}
	digits := New(cat, Definition{Name: "Digits", Match: p.Is(p.Categories{ucd.Nd})})
	if got := digits.Preview(); got != "0123456789" {
		t.Fatalf("Preview = %q", got)
	}
	want := "Lower - Enabled - 26/26 Enabled Code Points - Minimum Characters Required: 2"
	if got := letters.Label(); got != want {
		t.Fatalf("Label = %q, want %q", got, want)
	}
	if got := digits.Label(); !strings.Contains(got, "Disabled") || !strings.Contains(got, "10/10") {
		t.Fatalf("Label = %q", got)
	}
}

func TestPartitionKeepsOrder(t *testing.T) {
	defs := Library(LibraryOptions{})
	cats := Partition(testutil.ASCIICatalog(), defs)
	for i := range defs {
		if cats[i].Name() != defs[i].Name {
			t.Fatalf("category %d = %q, want %q", i, cats[i].Name(), defs[i].Name)
		}
	}
}
