// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := map[string]struct{}{}
	flattenYAML("", map[string]any{
		"tui":         map[string]any{"title": "x"},
		"cli.version": "y",
	}, keys)
	for _, want := range []string{"tui.title", "cli.version"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected %s in %v", want, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "a.go"), `package pkg
func f() {
	_ = i18n.T("used.key")
	_ = i18n.T("undefined.key", 1)
}`)
	writeFile(t, filepath.Join(root, "pkg", "a_test.go"), `package pkg
func g() { _ = i18n.T("test.only") }`)
	writeFile(t, filepath.Join(root, "_examples", "b.go"), `package b
func h() { _ = i18n.T("ignored.key") }`)
	writeFile(t, filepath.Join(root, localesDir, "en.yaml"), "\"used.key\": a\n\"orphan.key\": b\n")
	writeFile(t, filepath.Join(root, localesDir, "de.yaml"), "\"used.key\": a\n")

	report, err := lint(root)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(report.Undefined) != 1 {
		t.Fatalf("expected one undefined key, got %v", report.Undefined)
	}
	locs := report.Undefined["undefined.key"]
	if len(locs) != 1 || locs[0].Line != 4 {
		t.Fatalf("unexpected location %v", locs)
	}
	if len(report.Orphaned) != 1 || report.Orphaned[0] != "orphan.key" {
		t.Fatalf("unexpected orphans %v", report.Orphaned)
	}
	if got := report.Missing["de.yaml"]; len(got) != 1 || got[0] != "orphan.key" {
		t.Fatalf("unexpected missing keys %v", report.Missing)
	}
	if !report.Failed() {
		t.Fatalf("undefined and missing keys should fail")
	}

	var buf bytes.Buffer
	printReport(&buf, report)
	for _, want := range []string{"undefined.key", "de.yaml: orphan.key", "- orphan.key"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("report missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLintRepository(t *testing.T) {
	report, err := lint(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if report.Failed() {
		var buf bytes.Buffer
		printReport(&buf, report)
		t.Fatalf("locale files are inconsistent:\n%s", buf.String())
	}
}
