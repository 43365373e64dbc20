// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/toeirei/passgen/internal/catalog"
	"github.com/toeirei/passgen/internal/category"
	"github.com/toeirei/passgen/internal/db"
	"github.com/toeirei/passgen/internal/generator"
	"github.com/toeirei/passgen/internal/logging"
	"github.com/toeirei/passgen/internal/random"
	"github.com/toeirei/passgen/internal/security"
	"github.com/toeirei/passgen/util/slicest"
)

// DefaultLength is used when Options.Length is zero.
const DefaultLength = 128

// Override adjusts a category by name after it is built. Nil fields are
// left alone.
type Override struct {
	Name    string
	Enabled *bool
	Minimum *int
}

// Options configures NewSession. Zero values select the built-in catalog
// and library with every category required, the default length and no
// history.
type Options struct {
	Length      int
	Catalog     *catalog.Catalog
	Definitions []category.Definition
	Overrides   []Override
	Recorder    Recorder
	NewRand     RandFactory
}

// CategoryInfo is a read-only snapshot of one category.
type CategoryInfo struct {
	Index   int
	Name    string
	Enabled bool
	Active  int
	Total   int
	Minimum int
	Preview string
	Label   string
	Match   string
}

// SymbolInfo is a read-only snapshot of one category member.
type SymbolInfo struct {
	Index   int
	Rune    rune
	Label   string
	Enabled bool
}

// Session holds the categories and length for a run of generations.
type Session struct {
	mu         sync.Mutex
	length     int
	categories []*category.Category
	recorder   Recorder
	newRand    RandFactory
}

func defaultRand() (generator.Rand, error) {
	return random.New()
}

// NewSession partitions the catalog into categories and applies overrides.
func NewSession(opts Options) (*Session, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	cat := opts.Catalog
	if cat == nil {
		start := time.Now()
		cat = catalog.Default()
		logging.Debugf("catalog: %d symbols in %s", cat.Len(), time.Since(start))
	}
	defs := opts.Definitions
	if defs == nil {
		defs = category.Library(category.LibraryOptions{RequireEveryCategory: true})
	}

	start := time.Now()
	s := &Session{
		length:     length,
		categories: category.Partition(cat, defs),
		recorder:   opts.Recorder,
		newRand:    opts.NewRand,
	}
	if s.newRand == nil {
		s.newRand = defaultRand
	}
	logging.Debugf("categories: %d partitioned in %s", len(s.categories), time.Since(start))

	for _, o := range opts.Overrides {
		if err := s.applyOverride(o); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) applyOverride(o Override) error {
	i, err := s.lookup(o.Name)
	if err != nil {
		return err
	}
	c := s.categories[i]
	if o.Enabled != nil {
		c.SetEnabled(*o.Enabled)
	}
	if o.Minimum != nil {
		if err := c.SetMinimum(*o.Minimum); err != nil {
			return fmt.Errorf("category %q: %w", c.Name(), err)
		}
	}
	return nil
}

func (s *Session) lookup(name string) (int, error) {
	for i, c := range s.categories {
		if strings.EqualFold(c.Name(), strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func (s *Session) category(i int) (*category.Category, error) {
	if i < 0 || i >= len(s.categories) {
		return nil, &category.BoundsError{What: "category", Index: i, Len: len(s.categories)}
	}
	return s.categories[i], nil
}

func info(i int, c *category.Category) CategoryInfo {
	return CategoryInfo{
		Index:   i,
		Name:    c.Name(),
		Enabled: c.Enabled(),
		Active:  c.ActiveLen(),
		Total:   c.Len(),
		Minimum: c.Minimum(),
		Preview: c.Preview(),
		Label:   c.Label(),
		Match:   c.Predicate().String(),
	}
}

// Categories returns a snapshot of every category in order.
func (s *Session) Categories() []CategoryInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CategoryInfo, len(s.categories))
	for i, c := range s.categories {
		out[i] = info(i, c)
	}
	return out
}

// Category returns a snapshot of category i.
func (s *Session) Category(i int) (CategoryInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(i)
	if err != nil {
		return CategoryInfo{}, err
	}
	return info(i, c), nil
}

// Lookup finds a category by name, ignoring case.
func (s *Session) Lookup(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(name)
}

// ToggleCategory flips category i and returns its new state.
func (s *Session) ToggleCategory(i int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(i)
	if err != nil {
		return false, err
	}
	return c.Toggle(), nil
}

// SetCategoryEnabled sets the switch of category i.
func (s *Session) SetCategoryEnabled(i int, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(i)
	if err != nil {
		return err
	}
	c.SetEnabled(enabled)
	return nil
}

// SetOnly enables exactly the categories at the given indices.
func (s *Session) SetOnly(indices []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	keep := make([]bool, len(s.categories))
	for _, i := range indices {
		if _, err := s.category(i); err != nil {
			return err
		}
		keep[i] = true
	}
	for i, c := range s.categories {
		c.SetEnabled(keep[i])
	}
	return nil
}

// SetMinimum sets the minimum of category i.
func (s *Session) SetMinimum(i, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(i)
	if err != nil {
		return err
	}
	return c.SetMinimum(n)
}

// ToggleSymbol flips member sym of category cat and returns its new state.
func (s *Session) ToggleSymbol(cat, sym int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(cat)
	if err != nil {
		return false, err
	}
	return c.ToggleSymbol(sym)
}

// SetAllSymbols enables or disables every member of category cat.
func (s *Session) SetAllSymbols(cat int, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(cat)
	if err != nil {
		return err
	}
	c.SetAllSymbols(enabled)
	return nil
}

// Symbols returns a snapshot of the members of category cat.
func (s *Session) Symbols(cat int) ([]SymbolInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(cat)
	if err != nil {
		return nil, err
	}
	out := make([]SymbolInfo, c.Len())
	for i := range out {
		sym, enabled, err := c.Member(i)
		if err != nil {
			return nil, err
		}
		out[i] = SymbolInfo{Index: i, Rune: sym.Rune(), Label: sym.Label(), Enabled: enabled}
	}
	return out, nil
}

// Length returns the password length.
func (s *Session) Length() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.length
}

// SetLength changes the password length.
func (s *Session) SetLength(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.length = n
	return nil
}

func (s *Session) config() generator.Configuration {
	return generator.Configuration{Length: s.length, Categories: s.categories}
}

// TotalMinimum sums the minimums of the active categories.
func (s *Session) TotalMinimum() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config().TotalMinimum()
}

// MaxMinimum is the largest minimum category i can take without the
// active minimums exceeding the length or its enabled symbols.
func (s *Session) MaxMinimum(i int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(i)
	if err != nil {
		return 0, err
	}
	others := s.config().TotalMinimum()
	if c.Active() {
		others -= c.Minimum()
	}
	return max(0, min(s.length-others, c.ActiveLen())), nil
}

// CanEnable reports whether enabling category i keeps the active minimums
// within the length. A category without enabled symbols never becomes
// active, so it never counts against the length.
func (s *Session) CanEnable(i int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(i)
	if err != nil {
		return false, err
	}
	if c.Active() || c.ActiveLen() == 0 {
		return true, nil
	}
	return s.length >= s.config().TotalMinimum()+c.Minimum(), nil
}

// Validate reports whether the current settings can produce a password.
func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config().Validate()
}

// GeneratePassword produces one password.
func (s *Session) GeneratePassword(ctx context.Context) (security.Secret, error) {
	out, err := s.GeneratePasswords(ctx, 1)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// GeneratePasswords produces n passwords from one freshly seeded source and
// records a single history entry for the batch.
func (s *Session) GeneratePasswords(ctx context.Context, n int) ([]security.Secret, error) {
	if n < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	cfg := s.config()
	if err := cfg.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	rng, err := s.newRand()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	out := make([]security.Secret, 0, n)
	for range n {
		pw, err := generator.Generate(cfg, rng)
		if err != nil {
			s.mu.Unlock()
			return nil, err
		}
		out = append(out, security.FromString(pw))
	}
	entry := db.Entry{
		Length:       cfg.Length,
		Count:        n,
		TotalMinimum: cfg.TotalMinimum(),
		Categories:   slicest.Map(cfg.Active(), (*category.Category).Name),
	}
	rec := s.recorder
	s.mu.Unlock()

	if rec != nil {
		if err := rec.Record(ctx, entry); err != nil {
			logging.Warnf("history: %v", err)
		}
	}
	return out, nil
}
