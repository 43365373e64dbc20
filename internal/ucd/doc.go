// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ucd is a read-only oracle over Unicode character attributes.
//
// General category, script and binary properties come from the standard
// library tables. Bidi classes and names come from golang.org/x/text. Block
// ranges and assignment ages are embedded as the UCD files Blocks.txt and
// DerivedAge.txt under data/. Grapheme cluster break and the Indic syllabic
// categories the catalog cares about are derived here.
//
// Every source is pinned to the same Unicode version, Version.
package ucd
