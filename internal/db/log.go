// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/toeirei/passgen/internal/logging"

func dbLogf(format string, v ...any) {
	logging.Debugf(format, v...)
}
