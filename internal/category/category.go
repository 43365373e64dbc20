// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package category

import (
	"fmt"
	"strings"
	"sync"

	"github.com/toeirei/passgen/internal/catalog"
	"github.com/toeirei/passgen/internal/predicate"
)

// PreviewLength is the number of characters Preview shows before
// truncating.
const PreviewLength = 20

// Definition declares a category before it is matched against a catalog.
type Definition struct {
	Name    string
	Enabled bool
	Minimum int
	Match   predicate.Predicate
}

// Category is a named group of catalog symbols. Members are stored as
// catalog indices; symbol data is never copied.
type Category struct {
	name    string
	enabled bool
	minimum int
	match   predicate.Predicate

	catalog  *catalog.Catalog
	members  []int
	disabled []bool
	active   int
}

// New matches def against every symbol of cat.
func New(cat *catalog.Catalog, def Definition) *Category {
	c := &Category{
		name:    def.Name,
		enabled: def.Enabled,
		minimum: def.Minimum,
		match:   def.Match,
		catalog: cat,
	}
	if c.minimum < 0 {
		c.minimum = 0
	}
	for i, s := range cat.Symbols() {
		if predicate.Eval(def.Match, s) {
			c.members = append(c.members, i)
		}
	}
	c.disabled = make([]bool, len(c.members))
	c.active = len(c.members)
	return c
}

// Partition builds one category per definition, in order. Definitions are
// matched concurrently; the catalog is only read.
func Partition(cat *catalog.Catalog, defs []Definition) []*Category {
	out := make([]*Category, len(defs))
	var wg sync.WaitGroup
	for i, def := range defs {
		wg.Add(1)
		go func(i int, def Definition) {
			defer wg.Done()
			out[i] = New(cat, def)
		}(i, def)
	}
	wg.Wait()
	return out
}

// Name returns the display name.
func (c *Category) Name() string { return c.name }

// Predicate returns the membership predicate.
func (c *Category) Predicate() predicate.Predicate { return c.match }

// Enabled reports the category switch.
func (c *Category) Enabled() bool { return c.enabled }

// SetEnabled sets the category switch.
func (c *Category) SetEnabled(enabled bool) { c.enabled = enabled }

// Toggle flips the category switch and returns the new state.
func (c *Category) Toggle() bool {
	c.enabled = !c.enabled
	return c.enabled
}

// Minimum returns the number of characters a password must draw from
// this category.
func (c *Category) Minimum() int { return c.minimum }

// SetMinimum changes the minimum. Upper bounds depend on the password
// length and are checked by the owner of the configuration.
func (c *Category) SetMinimum(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMinimum, n)
	}
	c.minimum = n
	return nil
}

// Len returns the number of member symbols.
func (c *Category) Len() int { return len(c.members) }

// ActiveLen returns the number of enabled member symbols, regardless of
// the category switch.
func (c *Category) ActiveLen() int { return c.active }

// Active reports whether the category takes part in generation: it is
// enabled and has at least one enabled symbol.
func (c *Category) Active() bool { return c.enabled && c.active > 0 }

// Member returns the i-th member and whether it is enabled.
func (c *Category) Member(i int) (catalog.Symbol, bool, error) {
	if err := c.check(i); err != nil {
		return catalog.Symbol{}, false, err
	}
	return c.catalog.At(c.members[i]), !c.disabled[i], nil
}

// ToggleSymbol flips the i-th member and returns its new state.
func (c *Category) ToggleSymbol(i int) (bool, error) {
	if err := c.check(i); err != nil {
		return false, err
	}
	enabled := c.disabled[i]
	c.setSymbol(i, enabled)
	return enabled, nil
}

// SetSymbolEnabled sets the i-th member's switch.
func (c *Category) SetSymbolEnabled(i int, enabled bool) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.setSymbol(i, enabled)
	return nil
}

// SetAllSymbols enables or disables every member.
func (c *Category) SetAllSymbols(enabled bool) {
	for i := range c.disabled {
		c.disabled[i] = !enabled
	}
	if enabled {
		c.active = len(c.members)
	} else {
		c.active = 0
	}
}

func (c *Category) setSymbol(i int, enabled bool) {
	if c.disabled[i] == !enabled {
		return
	}
	c.disabled[i] = !enabled
	if enabled {
		c.active++
	} else {
		c.active--
	}
}

func (c *Category) check(i int) error {
	if i < 0 || i >= len(c.members) {
		return &BoundsError{What: "symbol", Index: i, Len: len(c.members)}
	}
	return nil
}

// ActiveRunes returns the enabled members in catalog order.
func (c *Category) ActiveRunes() []rune {
	out := make([]rune, 0, c.active)
	for i, idx := range c.members {
		if !c.disabled[i] {
			out = append(out, c.catalog.At(idx).Rune())
		}
	}
	return out
}

// Preview shows the first PreviewLength enabled members, followed by
// "..." when there are more.
func (c *Category) Preview() string {
	var b strings.Builder
	n := 0
	for i, idx := range c.members {
		if c.disabled[i] {
			continue
		}
		if n == PreviewLength {
			b.WriteString("...")
			break
		}
		b.WriteRune(c.catalog.At(idx).Rune())
		n++
	}
	return b.String()
}

// Label renders the one-line summary used in listings.
func (c *Category) Label() string {
	state := "Disabled"
	if c.enabled {
		state = "Enabled"
	}
	return fmt.Sprintf("%s - %s - %d/%d Enabled Code Points - Minimum Characters Required: %d",
		c.name, state, c.active, len(c.members), c.minimum)
}
