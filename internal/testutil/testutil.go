// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds helpers shared by package tests.
package testutil

import (
	"sync"
	"testing"

	"github.com/toeirei/passgen/internal/catalog"
	"github.com/toeirei/passgen/internal/ucd"
)

var asciiCatalog = sync.OnceValue(func() *catalog.Catalog {
	return catalog.Build(ucd.Default(), catalog.Exclusions(), catalog.WithRange(0, 0x7F))
})

// ASCIICatalog returns a catalog limited to U+0000..U+007F. It is built
// once and shared; catalogs are read-only.
func ASCIICatalog() *catalog.Catalog { return asciiCatalog() }

// IsolateConfig points the user config and home directories at a fresh
// temp dir and returns it.
func IsolateConfig(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("APPDATA", dir)
	return dir
}
