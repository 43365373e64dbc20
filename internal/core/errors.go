// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"

	"github.com/toeirei/passgen/internal/category"
)

var (
	// ErrUnknownCategory reports a category name that matches nothing.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidLength reports a password length below one.
	ErrInvalidLength = errors.New("invalid length")
	// ErrOutOfRange is shared with the category package so a single
	// errors.Is check covers both category and symbol indices.
	ErrOutOfRange = category.ErrOutOfRange
)
