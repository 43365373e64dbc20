// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError describes why a configuration cannot produce a
// password. No randomness is consumed when it is returned.
type ConfigurationError struct {
	Reason   string
	Category string
	Want     int
	Have     int
}

func (e *ConfigurationError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("invalid configuration: %s: category %q needs %d, has %d", e.Reason, e.Category, e.Want, e.Have)
	}
	if e.Want != 0 || e.Have != 0 {
		return fmt.Sprintf("invalid configuration: %s (%d > %d)", e.Reason, e.Want, e.Have)
	}
	return "invalid configuration: " + e.Reason
}

// Is makes errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
