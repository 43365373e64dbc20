// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks for missing, undefined or orphaned translation keys.
// It scans the Go sources for i18n.T() calls and compares them against the
// embedded YAML locale files.
//
// Usage:
//
//	go run ./tools/i18n-linter [root]
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found key.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

var keyCall = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// Report is the outcome of one lint run.
type Report struct {
	// Undefined keys are used in code but absent from the primary locale.
	Undefined map[string][]Location
	// Orphaned keys are defined in the primary locale but never used.
	Orphaned []string
	// Missing maps a secondary locale file to the primary keys it lacks.
	Missing map[string][]string
}

// Failed reports whether the run found blocking problems. Orphaned keys
// only warn.
func (r Report) Failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	report, err := lint(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	printReport(os.Stdout, report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("scanning sources: %w", err)
	}
	dir := filepath.Join(root, localesDir)
	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}

	report := Report{Undefined: map[string][]Location{}, Missing: map[string][]string{}}
	for key, locs := range used {
		if _, ok := primary[key]; !ok {
			report.Undefined[key] = locs
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	sort.Strings(report.Orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		secondary, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", filepath.Base(file), err)
		}
		var missing []string
		for key := range primary {
			if _, ok := secondary[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			report.Missing[filepath.Base(file)] = missing
		}
	}
	return report, nil
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintln(w, "--- Undefined keys (used in code, not in the primary locale) ---")
	if len(r.Undefined) == 0 {
		fmt.Fprintln(w, "  none")
	}
	keys := make([]string, 0, len(r.Undefined))
	for k := range r.Undefined {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		loc := r.Undefined[k][0]
		fmt.Fprintf(w, "  - %s (%s:%d)\n", k, loc.Filepath, loc.Line)
	}

	fmt.Fprintln(w, "--- Missing translations ---")
	if len(r.Missing) == 0 {
		fmt.Fprintln(w, "  none")
	}
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		for _, k := range r.Missing[f] {
			fmt.Fprintf(w, "  - %s: %s\n", f, k)
		}
	}

	fmt.Fprintln(w, "--- Orphaned keys (defined but unused) ---")
	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, k := range r.Orphaned {
		fmt.Fprintf(w, "  - %s\n", k)
	}
}

// findUsedKeys scans non-test .go files for i18n.T("key") calls. Tools and
// directories starting with "_", "." or named testdata are skipped.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || name == "testdata" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range keyCall.FindAllStringSubmatch(line, -1) {
				keys[m[1]] = append(keys[m[1]], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts nested maps into dot-separated keys. Flat files with
// dotted keys pass through unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
