// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package ucd

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// valueRange is one "lo..hi; value" record of a UCD text file.
type valueRange struct {
	lo, hi rune
	value  string
}

// parseRanges reads the UCD range format shared by Blocks.txt and
// DerivedAge.txt. Records are returned sorted by lo; overlaps are rejected.
// The version comes from a "# Name-X.Y.Z.txt" first line, if present.
func parseRanges(r io.Reader) ([]valueRange, string, error) {
	var out []valueRange
	var version string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if line == 1 {
			version = headerVersion(text)
		}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		fields := strings.SplitN(text, ";", 2)
		if len(fields) != 2 {
			return nil, "", fmt.Errorf("line %d: missing ';'", line)
		}
		lo, hi, err := parseCodeRange(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, "", fmt.Errorf("line %d: %w", line, err)
		}
		value := strings.TrimSpace(fields[1])
		if value == "" {
			return nil, "", fmt.Errorf("line %d: empty value", line)
		}
		out = append(out, valueRange{lo: lo, hi: hi, value: value})
	}
	if err := sc.Err(); err != nil {
		return nil, "", err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].lo < out[j].lo })
	for i := 1; i < len(out); i++ {
		if out[i].lo <= out[i-1].hi {
			return nil, "", fmt.Errorf("range %04X..%04X overlaps %04X..%04X", out[i].lo, out[i].hi, out[i-1].lo, out[i-1].hi)
		}
	}
	return out, version, nil
}

// headerVersion extracts "15.0.0" from "# Blocks-15.0.0.txt".
func headerVersion(line string) string {
	name, ok := strings.CutPrefix(line, "# ")
	if !ok {
		return ""
	}
	name, ok = strings.CutSuffix(strings.TrimSpace(name), ".txt")
	if !ok {
		return ""
	}
	i := strings.LastIndexByte(name, '-')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

func parseCodeRange(s string) (rune, rune, error) {
	loStr, hiStr, found := strings.Cut(s, "..")
	lo, err := strconv.ParseUint(loStr, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid code point %q", loStr)
	}
	if !found {
		return rune(lo), rune(lo), nil
	}
	hi, err := strconv.ParseUint(hiStr, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid code point %q", hiStr)
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("inverted range %s", s)
	}
	return rune(lo), rune(hi), nil
}

// findRange returns the record containing r.
func findRange(ranges []valueRange, r rune) (valueRange, bool) {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].hi >= r })
	if i < len(ranges) && ranges[i].lo <= r {
		return ranges[i], true
	}
	return valueRange{}, false
}
