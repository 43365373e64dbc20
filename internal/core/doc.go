// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core owns a password generation session: the category list, the
// password length and the generation entry point the command line and the
// terminal UI drive. A Session is safe for concurrent use.
package core
