// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

// Redacted is what a Secret prints as.
const Redacted = "[SECRET]"

// Secret is a UTF-8 password. Formatting, JSON and text encoding all
// print Redacted; only Reveal and Use expose the contents.
type Secret []byte

// FromString copies in into a new Secret.
func FromString(in string) Secret { return Secret([]byte(in)) }

// FromBytes copies in into a new Secret.
func FromBytes(in []byte) Secret {
	out := make([]byte, len(in))
	copy(out, in)
	return Secret(out)
}

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return Redacted }

// Format implements fmt.Formatter so every verb is redacted.
func (s Secret) Format(f fmt.State, c rune) {
	_, _ = io.WriteString(f, Redacted)
}

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(Redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(Redacted), nil }

// Reveal returns the password as a string. The string cannot be zeroed;
// call it only at the point of output.
func (s Secret) Reveal() string { return string(s) }

// Len returns the length in characters.
func (s Secret) Len() int { return utf8.RuneCount(s) }

// Use executes fn with the underlying bytes (not a copy).
func (s Secret) Use(fn func([]byte) error) error {
	return fn([]byte(s))
}

// Zero overwrites the underlying byte slice with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	clear(*s)
}
