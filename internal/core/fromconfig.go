// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"github.com/toeirei/passgen/internal/category"
	"github.com/toeirei/passgen/internal/config"
	"github.com/toeirei/passgen/internal/ucd"
	"github.com/toeirei/passgen/util/slicest"
)

// OptionsFromConfig translates loaded settings into session options: the
// built-in library plus compiled custom categories, and the per-category
// overrides. Recorder and catalog are left for the caller.
func OptionsFromConfig(c config.Config) (Options, error) {
	defs := category.Library(category.LibraryOptions{RequireEveryCategory: c.RequireEveryCategory})
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		seen[strings.ToLower(d.Name)] = true
	}

	known := ucd.Default().HasBlock
	for _, cc := range c.Custom {
		name := strings.TrimSpace(cc.Name)
		if name == "" {
			return Options{}, fmt.Errorf("custom category without a name")
		}
		if seen[strings.ToLower(name)] {
			return Options{}, fmt.Errorf("custom category %q: name already in use", name)
		}
		seen[strings.ToLower(name)] = true
		if cc.Minimum < 0 {
			return Options{}, fmt.Errorf("custom category %q: %w: %d", name, category.ErrInvalidMinimum, cc.Minimum)
		}
		match, err := cc.Match.Compile(known)
		if err != nil {
			return Options{}, fmt.Errorf("custom category %q: %w", name, err)
		}
		defs = append(defs, category.Definition{Name: name, Enabled: cc.Enabled, Minimum: cc.Minimum, Match: match})
	}

	overrides := slicest.Map(c.Categories, func(o config.CategoryOverride) Override {
		return Override{Name: o.Name, Enabled: o.Enabled, Minimum: o.Minimum}
	})

	return Options{Length: c.Length, Definitions: defs, Overrides: overrides}, nil
}
