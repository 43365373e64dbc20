// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads passgen settings from defaults, passgen.yaml,
// PASSGEN_* environment variables and command-line flags, in increasing
// order of precedence.
package config
