// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"fmt"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than holding on to L.
var L = newLogger()

// exit terminates the process after Fatalf; tests replace it.
var exit = os.Exit

func newLogger() *clog.Logger {
	l := clog.New(os.Stderr)
	l.SetLevel(clog.WarnLevel)
	return l
}

// SetLevel parses a level name (debug, info, warn, error, fatal) and applies
// it to L. An empty name selects warn.
func SetLevel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "warn"
	}
	lvl, err := clog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetDebug switches between debug and the default warn level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.WarnLevel)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}

// Fatalf logs an error-level message and exits with status 1.
func Fatalf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
	exit(1)
}
