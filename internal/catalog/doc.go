// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package catalog builds the master list of characters eligible for
// passwords.
//
// Every Unicode scalar value is tested against the global exclusion
// predicates. A character survives only when all of them pass. The result
// is ordered by code point and never changes after Build returns.
package catalog
