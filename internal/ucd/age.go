// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package ucd

import (
	"fmt"
	"sort"
)

type agedRange struct {
	lo, hi rune
	age    Age
}

// ageIndex resolves assignment ages from DerivedAge.txt ranges.
type ageIndex struct {
	ranges []agedRange
}

func newAgeIndex(records []valueRange) (*ageIndex, error) {
	idx := &ageIndex{ranges: make([]agedRange, 0, len(records))}
	for _, rec := range records {
		age, err := ParseAge(rec.value)
		if err != nil {
			return nil, fmt.Errorf("age %04X..%04X: %w", rec.lo, rec.hi, err)
		}
		idx.ranges = append(idx.ranges, agedRange{lo: rec.lo, hi: rec.hi, age: age})
	}
	return idx, nil
}

func (x *ageIndex) lookup(r rune) Age {
	i := sort.Search(len(x.ranges), func(i int) bool { return x.ranges[i].hi >= r })
	if i < len(x.ranges) && x.ranges[i].lo <= r {
		return x.ranges[i].age
	}
	return Unassigned
}
