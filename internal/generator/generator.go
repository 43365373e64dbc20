// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"github.com/toeirei/passgen/internal/category"
)

// Rand is the randomness a generation needs. *random.Source implements it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Configuration is the password length plus the categories to draw from.
type Configuration struct {
	Length     int
	Categories []*category.Category
}

// Active returns the categories that take part in generation.
func (c Configuration) Active() []*category.Category {
	var out []*category.Category
	for _, cat := range c.Categories {
		if cat.Active() {
			out = append(out, cat)
		}
	}
	return out
}

// TotalMinimum sums the minimums of the active categories.
func (c Configuration) TotalMinimum() int {
	total := 0
	for _, cat := range c.Active() {
		total += cat.Minimum()
	}
	return total
}

// Validate checks that a password can be produced.
func (c Configuration) Validate() error {
	if c.Length < 1 {
		return &ConfigurationError{Reason: "length must be at least 1"}
	}
	active := c.Active()
	if len(active) == 0 {
		return &ConfigurationError{Reason: "no active categories"}
	}
	total := 0
	for _, cat := range active {
		if cat.Minimum() > cat.ActiveLen() {
			return &ConfigurationError{
				Reason:   "minimum exceeds enabled symbols",
				Category: cat.Name(),
				Want:     cat.Minimum(),
				Have:     cat.ActiveLen(),
			}
		}
		total += cat.Minimum()
	}
	if total > c.Length {
		return &ConfigurationError{Reason: "minimums exceed length", Want: total, Have: c.Length}
	}
	return nil
}

// Generate produces a password of exactly cfg.Length characters.
func Generate(cfg Configuration, rng Rand) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	active := cfg.Active()
	out := make([]rune, 0, cfg.Length)
	var union []rune
	for _, cat := range active {
		runes := cat.ActiveRunes()
		for range cat.Minimum() {
			out = append(out, runes[rng.IntN(len(runes))])
		}
		union = append(union, runes...)
	}
	for len(out) < cfg.Length {
		out = append(out, union[rng.IntN(len(union))])
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	password := string(out)
	clear(out)
	clear(union)
	return password, nil
}
