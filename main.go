// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passgen.
//
// Usage:
//
//	go run . [flags]
//	./passgen [flags]
//
// This launches the interactive TUI on a terminal and prints a password
// otherwise. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/passgen/internal/logging"
	"github.com/toeirei/passgen/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("passgen: %v", err)
		os.Exit(1)
	}
}
