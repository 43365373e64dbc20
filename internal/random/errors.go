// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package random

import (
	"errors"
	"fmt"
)

// ErrEntropy is matched by every *EntropyError.
var ErrEntropy = errors.New("entropy unavailable")

// EntropyError reports that the operating system could not supply a seed.
type EntropyError struct {
	Read int
	Err  error
}

func (e *EntropyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("entropy unavailable after %d of %d bytes: %v", e.Read, KeySize, e.Err)
	}
	return fmt.Sprintf("entropy unavailable after %d of %d bytes", e.Read, KeySize)
}

func (e *EntropyError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrEntropy) match.
func (e *EntropyError) Is(target error) bool { return target == ErrEntropy }
