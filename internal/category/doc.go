// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package category groups catalog symbols into named categories that can be
// switched on and off, each with a minimum number of characters a password
// must draw from it. Categories may overlap.
package category
