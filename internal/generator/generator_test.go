// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/toeirei/passgen/internal/catalog"
	"github.com/toeirei/passgen/internal/category"
	p "github.com/toeirei/passgen/internal/predicate"
	"github.com/toeirei/passgen/internal/random"
	"github.com/toeirei/passgen/internal/ucd"
)

var ascii = catalog.Build(ucd.Default(), catalog.Exclusions(), catalog.WithRange(0, 0x7F))

func newCat(name string, minimum int, match p.Predicate) *category.Category {
	return category.New(ascii, category.Definition{Name: name, Enabled: true, Minimum: minimum, Match: match})
}

func digits(minimum int) *category.Category {
	return newCat("Digits", minimum, p.Is(p.Categories{ucd.Nd}))
}

func letters(minimum int) *category.Category {
	return newCat("Letters", minimum, p.Is(p.Categories{ucd.Ll}))
}

func newSource(t *testing.T) *random.Source {
	t.Helper()
	s, err := random.New()
	if err != nil {
		t.Fatalf("random.New: %v", err)
	}
	return s
}

// countingRand records every call so tests can assert no draw happened.
type countingRand struct{ calls int }

func (c *countingRand) IntN(n int) int {
	c.calls++
	return 0
}

func (c *countingRand) Shuffle(n int, swap func(i, j int)) { c.calls++ }

func TestDigitsAndLetters(t *testing.T) {
	rng := newSource(t)
	cfg := Configuration{Length: 5, Categories: []*category.Category{digits(2), letters(0)}}
	for i := 0; i < 200; i++ {
		pw, err := Generate(cfg, rng)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if utf8.RuneCountInString(pw) != 5 {
			t.Fatalf("%q has %d runes", pw, utf8.RuneCountInString(pw))
		}
		nd := 0
		for _, r := range pw {
			switch {
			case r >= '0' && r <= '9':
				nd++
			case r >= 'a' && r <= 'z':
			default:
				t.Fatalf("%q contains %q outside the active sets", pw, r)
			}
		}
		if nd < 2 {
			t.Fatalf("%q has %d digits, want at least 2", pw, nd)
		}
	}
}

func TestMinimumsAndClosure(t *testing.T) {
	rng := newSource(t)
	upper := newCat("Upper", 3, p.Is(p.Categories{ucd.Lu}))
	space := newCat("Space", 1, p.Is(p.Categories{ucd.Zs}))
	cfg := Configuration{Length: 12, Categories: []*category.Category{digits(2), letters(1), upper, space}}
	for i := 0; i < 200; i++ {
		pw, err := Generate(cfg, rng)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		var nd, nl, nu, ns int
		for _, r := range pw {
			switch {
			case r >= '0' && r <= '9':
				nd++
			case r >= 'a' && r <= 'z':
				nl++
			case r >= 'A' && r <= 'Z':
				nu++
			case r == ' ':
				ns++
			default:
				t.Fatalf("%q contains %q", pw, r)
			}
		}
		if nd < 2 || nl < 1 || nu < 3 || ns < 1 || nd+nl+nu+ns != 12 {
			t.Fatalf("%q: digits=%d lower=%d upper=%d space=%d", pw, nd, nl, nu, ns)
		}
	}
}

func TestEmptiedCategoryIsSkipped(t *testing.T) {
	d := digits(3)
	d.SetAllSymbols(false)
	l := letters(1)
	cfg := Configuration{Length: 4, Categories: []*category.Category{d, l}}
	if got := cfg.TotalMinimum(); got != 1 {
		t.Fatalf("TotalMinimum = %d, want 1", got)
	}
	if got := len(cfg.Active()); got != 1 {
		t.Fatalf("Active = %d categories, want 1", got)
	}
	pw, err := Generate(cfg, newSource(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.ContainsAny(pw, "0123456789") {
		t.Fatalf("%q draws from a category with no enabled symbols", pw)
	}
}

func TestDisabledSymbolsNeverDrawn(t *testing.T) {
	d := digits(0)
	for i := 1; i < d.Len(); i++ {
		if err := d.SetSymbolEnabled(i, false); err != nil {
			t.Fatal(err)
		}
	}
	pw, err := Generate(Configuration{Length: 64, Categories: []*category.Category{d}}, newSource(t))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pw != strings.Repeat("0", 64) {
		t.Fatalf("got %q, want only zeros", pw)
	}
}

func TestRejectsInvalidConfiguration(t *testing.T) {
	off := letters(1)
	off.SetEnabled(false)
	tests := []struct {
		name string
		cfg  Configuration
	}{
		{"zero length", Configuration{Length: 0, Categories: []*category.Category{letters(0)}}},
		{"negative length", Configuration{Length: -3, Categories: []*category.Category{letters(0)}}},
		{"no categories", Configuration{Length: 8}},
		{"all disabled", Configuration{Length: 8, Categories: []*category.Category{off}}},
		{"minimums exceed length", Configuration{Length: 3, Categories: []*category.Category{digits(2), letters(2)}}},
		{"minimum exceeds symbols", Configuration{Length: 20, Categories: []*category.Category{digits(11)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &countingRand{}
			pw, err := Generate(tt.cfg, rng)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("err = %v, want ErrConfiguration", err)
			}
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("err is %T", err)
			}
			if pw != "" || rng.calls != 0 {
				t.Fatalf("rejected configuration produced %q after %d draws", pw, rng.calls)
			}
		})
	}
}

func TestExactLengthWithoutMinimums(t *testing.T) {
	rng := newSource(t)
	for _, n := range []int{1, 2, 17, 128, 1000} {
		pw, err := Generate(Configuration{Length: n, Categories: []*category.Category{letters(0)}}, rng)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		if got := utf8.RuneCountInString(pw); got != n {
			t.Fatalf("length %d produced %d runes", n, got)
		}
	}
}

func TestShuffleIsUniform(t *testing.T) {
	rng := newSource(t)
	cats := []*category.Category{
		newCat("a", 1, p.Is(p.Ordinals{'a'})),
		newCat("b", 1, p.Is(p.Ordinals{'b'})),
		newCat("c", 1, p.Is(p.Ordinals{'c'})),
	}
	cfg := Configuration{Length: 3, Categories: cats}
	const trials = 6000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		pw, err := Generate(cfg, rng)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		counts[pw]++
	}
	if len(counts) != 6 {
		t.Fatalf("saw %d permutations, want 6: %v", len(counts), counts)
	}
	// chi-square with 5 degrees of freedom; 20.5 is the 0.001 critical value
	expected := float64(trials) / 6
	chi := 0.0
	for perm, c := range counts {
		if len(perm) != 3 || strings.Count(perm, "a") != 1 || strings.Count(perm, "b") != 1 {
			t.Fatalf("%q is not a permutation of abc", perm)
		}
		d := float64(c) - expected
		chi += d * d / expected
	}
	if chi > 20.5 {
		t.Fatalf("permutation counts look biased (chi2=%.1f): %v", chi, counts)
	}
}
