// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db stores the optional generation history. It records when a
// password was generated and with which settings, never the password
// itself. SQLite, PostgreSQL and MySQL are supported through bun.
package db
