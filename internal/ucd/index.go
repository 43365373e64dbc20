// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package ucd

import (
	"sort"
	"unicode"
)

// span is a contiguous run of code points sharing one table name.
type span struct {
	lo, hi rune
	name   string
}

// spanIndex answers "which of these disjoint tables holds r" with a single
// binary search instead of probing every table.
type spanIndex []span

func newSpanIndex(tables map[string]*unicode.RangeTable) spanIndex {
	var idx spanIndex
	add := func(lo, hi, stride rune, name string) {
		if stride == 1 {
			idx = append(idx, span{lo: lo, hi: hi, name: name})
			return
		}
		for r := lo; r <= hi; r += stride {
			idx = append(idx, span{lo: r, hi: r, name: name})
		}
	}
	for name, t := range tables {
		for _, r16 := range t.R16 {
			add(rune(r16.Lo), rune(r16.Hi), rune(r16.Stride), name)
		}
		for _, r32 := range t.R32 {
			add(rune(r32.Lo), rune(r32.Hi), rune(r32.Stride), name)
		}
	}
	sort.Slice(idx, func(i, j int) bool { return idx[i].lo < idx[j].lo })
	return idx
}

func (x spanIndex) find(r rune) (string, bool) {
	i := sort.Search(len(x), func(i int) bool { return x[i].hi >= r })
	if i < len(x) && x[i].lo <= r {
		return x[i].name, true
	}
	return "", false
}
