// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package generator assembles passwords from categories: per-category
// minimums are drawn first, the remainder is filled from the union of all
// active categories and the result is shuffled.
package generator
