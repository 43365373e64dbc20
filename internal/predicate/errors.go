// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package predicate

import "errors"

var (
	// ErrInvalid reports a structurally broken predicate tree.
	ErrInvalid = errors.New("invalid predicate")
	// ErrInvalidSpec reports a declarative predicate that cannot be compiled.
	ErrInvalidSpec = errors.New("invalid predicate spec")
)
