// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package predicate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toeirei/passgen/internal/ucd"
)

// Spec is the declarative form of a predicate as written in a config file.
// Exactly one node key must be set. Exclude flips the polarity of an
// attribute test.
//
//	match:
//	  all:
//	    - block: [Basic Latin]
//	    - gc: [Lu, Ll]
//	    - not:
//	        ordinals: ["U+0049", "U+006C"]
type Spec struct {
	All      []Spec   `mapstructure:"all" yaml:"all,omitempty"`
	Any      []Spec   `mapstructure:"any" yaml:"any,omitempty"`
	Not      *Spec    `mapstructure:"not" yaml:"not,omitempty"`
	Block    []string `mapstructure:"block" yaml:"block,omitempty"`
	Category []string `mapstructure:"gc" yaml:"gc,omitempty"`
	Script   []string `mapstructure:"script" yaml:"script,omitempty"`
	Age      []string `mapstructure:"age" yaml:"age,omitempty"`
	Bidi     []string `mapstructure:"bidi" yaml:"bidi,omitempty"`
	Grapheme []string `mapstructure:"gcb" yaml:"gcb,omitempty"`
	Indic    []string `mapstructure:"insc" yaml:"insc,omitempty"`
	Property string   `mapstructure:"property" yaml:"property,omitempty"`
	Value    *bool    `mapstructure:"value" yaml:"value,omitempty"`
	Ordinals []string `mapstructure:"ordinals" yaml:"ordinals,omitempty"`
	Exclude  bool     `mapstructure:"exclude" yaml:"exclude,omitempty"`
}

// BlockChecker reports whether a block name is known.
type BlockChecker func(ucd.Block) bool

// Compile converts s into a Predicate. known, when non-nil, rejects
// unknown block names.
func (s Spec) Compile(known BlockChecker) (Predicate, error) {
	return s.compile(known, "match")
}

func (s Spec) compile(known BlockChecker, path string) (Predicate, error) {
	keys := s.setKeys()
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s: no predicate key set", ErrInvalidSpec, path)
	}
	if len(keys) > 1 {
		return nil, fmt.Errorf("%w: %s: more than one predicate key set (%s)", ErrInvalidSpec, path, strings.Join(keys, ", "))
	}
	if s.Exclude && (s.All != nil || s.Any != nil || s.Not != nil) {
		return nil, fmt.Errorf("%w: %s: exclude only applies to attribute tests", ErrInvalidSpec, path)
	}

	switch keys[0] {
	case "all", "any":
		list := s.All
		if keys[0] == "any" {
			list = s.Any
		}
		children := make([]Predicate, 0, len(list))
		for i, c := range list {
			p, err := c.compile(known, fmt.Sprintf("%s.%s[%d]", path, keys[0], i))
			if err != nil {
				return nil, err
			}
			children = append(children, p)
		}
		if keys[0] == "all" {
			return All(children...), nil
		}
		return Any(children...), nil
	case "not":
		p, err := s.Not.compile(known, path+".not")
		if err != nil {
			return nil, err
		}
		return Negate(p), nil
	}

	v, err := s.values(known)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSpec, path, err)
	}
	if s.Exclude {
		return IsNot(v), nil
	}
	return Is(v), nil
}

func (s Spec) setKeys() []string {
	var keys []string
	add := func(set bool, name string) {
		if set {
			keys = append(keys, name)
		}
	}
	add(s.All != nil, "all")
	add(s.Any != nil, "any")
	add(s.Not != nil, "not")
	add(len(s.Block) > 0, "block")
	add(len(s.Category) > 0, "gc")
	add(len(s.Script) > 0, "script")
	add(len(s.Age) > 0, "age")
	add(len(s.Bidi) > 0, "bidi")
	add(len(s.Grapheme) > 0, "gcb")
	add(len(s.Indic) > 0, "insc")
	add(s.Property != "", "property")
	add(len(s.Ordinals) > 0, "ordinals")
	return keys
}

func (s Spec) values(known BlockChecker) (Values, error) {
	switch {
	case len(s.Block) > 0:
		out := make(Blocks, len(s.Block))
		for i, b := range s.Block {
			if known != nil && !known(ucd.Block(b)) {
				return nil, fmt.Errorf("unknown block %q", b)
			}
			out[i] = ucd.Block(b)
		}
		return out, nil
	case len(s.Category) > 0:
		return parseAll(s.Category, ucd.ParseCategory, func(v []ucd.GeneralCategory) Values { return Categories(v) })
	case len(s.Script) > 0:
		out := make(Scripts, len(s.Script))
		for i, sc := range s.Script {
			if _, ok := unicode.Scripts[sc]; !ok && sc != string(ucd.UnknownScript) {
				return nil, fmt.Errorf("unknown script %q", sc)
			}
			out[i] = ucd.Script(sc)
		}
		return out, nil
	case len(s.Age) > 0:
		return parseAll(s.Age, ucd.ParseAge, func(v []ucd.Age) Values { return Ages(v) })
	case len(s.Bidi) > 0:
		return parseAll(s.Bidi, ucd.ParseBidiClass, func(v []ucd.BidiClass) Values { return BidiClasses(v) })
	case len(s.Grapheme) > 0:
		return parseAll(s.Grapheme, ucd.ParseGraphemeBreak, func(v []ucd.GraphemeBreak) Values { return GraphemeBreaks(v) })
	case len(s.Indic) > 0:
		return parseAll(s.Indic, ucd.ParseIndicCategory, func(v []ucd.IndicCategory) Values { return IndicCategories(v) })
	case s.Property != "":
		p := ucd.Property(s.Property)
		if !ucd.KnownProperty(p) {
			return nil, fmt.Errorf("unknown property %q", s.Property)
		}
		want := true
		if s.Value != nil {
			want = *s.Value
		}
		return Property{Name: p, Want: want}, nil
	default:
		return parseAll(s.Ordinals, ParseOrdinal, func(v []rune) Values { return Ordinals(v) })
	}
}

func parseAll[T any](in []string, parse func(string) (T, error), wrap func([]T) Values) (Values, error) {
	out := make([]T, len(in))
	for i, s := range in {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return wrap(out), nil
}

// ParseOrdinal accepts "U+00E9", "0xE9" or a single literal character.
func ParseOrdinal(s string) (rune, error) {
	var hex string
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		hex = s[2:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	default:
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || size != len(s) {
			return 0, fmt.Errorf("invalid ordinal %q", s)
		}
		return r, nil
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, fmt.Errorf("invalid ordinal %q", s)
	}
	return rune(n), nil
}
