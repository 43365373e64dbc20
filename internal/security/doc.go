// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security holds generated passwords in a wrapper that redacts
// itself wherever it might be formatted, logged or encoded by accident.
package security
