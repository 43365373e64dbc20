// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the passgen command line using cobra. The root
// command opens the terminal UI when attached to a terminal and otherwise
// behaves like `passgen generate`.
package cli
