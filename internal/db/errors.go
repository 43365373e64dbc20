// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

var (
	// ErrHistoryDisabled is returned by history commands when no store is
	// configured.
	ErrHistoryDisabled = errors.New("history is disabled")
	// ErrUnsupportedType reports an unknown database type.
	ErrUnsupportedType = errors.New("unsupported database type")
	// ErrDuplicate is returned when attempting to insert a record that already exists.
	ErrDuplicate = errors.New("duplicate record")
)

// MapDBError maps common constraint violations to package sentinels. The
// mapping is string based so this file does not import driver packages.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
