// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package predicate

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/toeirei/passgen/internal/ucd"
)

func TestCompileFromYAML(t *testing.T) {
	src := `
all:
  - block: [Basic Latin]
  - gc: [Lu, Ll]
  - not:
      ordinals: ["U+0049", "l"]
`
	var s Spec
	if err := yaml.Unmarshal([]byte(src), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p, err := s.Compile(func(b ucd.Block) bool { return b == "Basic Latin" })
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !Eval(p, upperA) {
		t.Fatalf("compiled predicate should match A")
	}
	capI := upperA
	capI.r = 'I'
	if Eval(p, capI) {
		t.Fatalf("compiled predicate should exclude I")
	}
}

func TestCompileErrors(t *testing.T) {
	yes := true
	cases := []struct {
		name string
		spec Spec
	}{
		{"empty", Spec{}},
		{"two keys", Spec{Block: []string{"Hebrew"}, Category: []string{"Lu"}}},
		{"unknown block", Spec{Block: []string{"Klingon"}}},
		{"unknown gc", Spec{Category: []string{"Xx"}}},
		{"unknown script", Spec{Script: []string{"Klingon"}}},
		{"bad age", Spec{Age: []string{"five"}}},
		{"bad bidi", Spec{Bidi: []string{"XX"}}},
		{"bad property", Spec{Property: "Shiny", Value: &yes}},
		{"bad ordinal", Spec{Ordinals: []string{"U+ZZZZ"}}},
		{"exclude on composite", Spec{Any: []Spec{{Block: []string{"Hebrew"}}}, Exclude: true}},
		{"nested error", Spec{All: []Spec{{Script: []string{"Latin"}}, {}}}},
	}
	known := func(b ucd.Block) bool { return b == "Hebrew" }
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.spec.Compile(known); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("got %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestCompileExcludeAndProperty(t *testing.T) {
	no := false
	p, err := Spec{Property: "Deprecated", Value: &no}.Compile(nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if Eval(p, napos) || !Eval(p, upperA) {
		t.Fatalf("Deprecated == false evaluated wrongly")
	}
	p, err = Spec{Script: []string{"Latin"}, Exclude: true}.Compile(nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if Eval(p, upperA) || !Eval(p, alef) {
		t.Fatalf("excluded script evaluated wrongly")
	}
}

func TestParseOrdinal(t *testing.T) {
	cases := map[string]rune{"U+00E9": 0xE9, "0x41": 'A', "é": 0xE9, "u+1F600": 0x1F600}
	for in, want := range cases {
		got, err := ParseOrdinal(in)
		if err != nil || got != want {
			t.Errorf("ParseOrdinal(%q) = %U, %v; want %U", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "ab", "U+D800", "0x110000"} {
		if _, err := ParseOrdinal(bad); err == nil {
			t.Errorf("ParseOrdinal(%q) should fail", bad)
		}
	}
}
