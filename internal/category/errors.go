// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package category

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *BoundsError.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidMinimum reports a negative minimum.
	ErrInvalidMinimum = errors.New("invalid minimum")
)

// BoundsError reports an index outside a collection.
type BoundsError struct {
	What  string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

// Is makes errors.Is(err, ErrOutOfRange) match.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfRange }
