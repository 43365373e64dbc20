// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package catalog

import (
	"runtime"
	"sort"
	"sync"
	"unicode"

	"github.com/toeirei/passgen/internal/predicate"
	"github.com/toeirei/passgen/internal/ucd"
)

// Catalog is the immutable, code point ordered list of eligible symbols.
type Catalog struct {
	symbols []Symbol
}

type options struct {
	lo, hi  rune
	workers int
}

// Option customizes Build.
type Option func(*options)

// WithRange limits the scan to lo..hi inclusive.
func WithRange(lo, hi rune) Option {
	return func(o *options) { o.lo, o.hi = lo, hi }
}

// WithWorkers sets how many goroutines scan the code space.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Build scans the code space and keeps every symbol that passes all
// exclusions. The output does not depend on the worker count.
func Build(src ucd.Source, exclusions []predicate.Predicate, opts ...Option) *Catalog {
	o := options{lo: 0, hi: unicode.MaxRune, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hi < o.lo {
		return &Catalog{}
	}
	filter := predicate.All(exclusions...)

	total := int(o.hi-o.lo) + 1
	workers := o.workers
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers
	parts := make([][]Symbol, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := o.lo + rune(w*chunk)
		end := start + rune(chunk) - 1
		if end > o.hi {
			end = o.hi
		}
		wg.Add(1)
		go func(w int, start, end rune) {
			defer wg.Done()
			var out []Symbol
			for r := start; r <= end; r++ {
				attrs, ok := src.Lookup(r)
				if !ok {
					continue
				}
				s := Symbol{r: r, attrs: attrs, src: src}
				if predicate.Eval(filter, s) {
					out = append(out, s)
				}
			}
			parts[w] = out
		}(w, start, end)
	}
	wg.Wait()

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	symbols := make([]Symbol, 0, n)
	for _, p := range parts {
		symbols = append(symbols, p...)
	}
	return &Catalog{symbols: symbols}
}

// Len returns the number of symbols.
func (c *Catalog) Len() int { return len(c.symbols) }

// At returns the i-th symbol.
func (c *Catalog) At(i int) Symbol { return c.symbols[i] }

// Symbols returns the backing slice. Callers must not modify it.
func (c *Catalog) Symbols() []Symbol { return c.symbols }

// Index returns the position of r in the catalog.
func (c *Catalog) Index(r rune) (int, bool) {
	i := sort.Search(len(c.symbols), func(i int) bool { return c.symbols[i].r >= r })
	if i < len(c.symbols) && c.symbols[i].r == r {
		return i, true
	}
	return 0, false
}

// Contains reports whether r is eligible.
func (c *Catalog) Contains(r rune) bool {
	_, ok := c.Index(r)
	return ok
}
