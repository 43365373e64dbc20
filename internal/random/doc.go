// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package random provides the cryptographically secure randomness used for
// password generation: a ChaCha20 keystream keyed from operating system
// entropy. There is no fallback to a weaker generator.
package random
