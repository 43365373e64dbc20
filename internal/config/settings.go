// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"github.com/toeirei/passgen/internal/predicate"
)

// DefaultLength is the password length when nothing else is configured.
const DefaultLength = 128

// Config is the full set of passgen settings.
type Config struct {
	Length               int                `mapstructure:"length" yaml:"length"`
	Language             string             `mapstructure:"language" yaml:"language"`
	Copy                 bool               `mapstructure:"copy" yaml:"copy"`
	Print                bool               `mapstructure:"print" yaml:"print"`
	RequireEveryCategory bool               `mapstructure:"require_every_category" yaml:"require_every_category"`
	Categories           []CategoryOverride `mapstructure:"categories" yaml:"categories,omitempty"`
	Custom               []CustomCategory   `mapstructure:"custom" yaml:"custom,omitempty"`
	History              History            `mapstructure:"history" yaml:"history"`
	Log                  Log                `mapstructure:"log" yaml:"log"`
}

// CategoryOverride adjusts a built-in category by name. Nil fields keep
// the built-in value.
type CategoryOverride struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Minimum *int   `mapstructure:"minimum" yaml:"minimum,omitempty"`
}

// CustomCategory declares an additional category with a predicate.
type CustomCategory struct {
	Name    string         `mapstructure:"name" yaml:"name"`
	Enabled bool           `mapstructure:"enabled" yaml:"enabled"`
	Minimum int            `mapstructure:"minimum" yaml:"minimum"`
	Match   predicate.Spec `mapstructure:"match" yaml:"match"`
}

// History selects the optional generation history store.
type History struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Type    string `mapstructure:"type" yaml:"type"`
	Dsn     string `mapstructure:"dsn" yaml:"dsn"`
}

// Log configures the logger.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the viper defaults for every scalar key.
func Defaults() map[string]any {
	return map[string]any{
		"length":                 DefaultLength,
		"language":               "en",
		"copy":                   false,
		"print":                  true,
		"require_every_category": true,
		"history.enabled":        false,
		"history.type":           "sqlite",
		"history.dsn":            DefaultHistoryDSN(),
		"log.level":              "warn",
	}
}

// Default returns the configuration produced by Defaults alone.
func Default() Config {
	return Config{
		Length:               DefaultLength,
		Language:             "en",
		Print:                true,
		RequireEveryCategory: true,
		History:              History{Type: "sqlite", Dsn: DefaultHistoryDSN()},
		Log:                  Log{Level: "warn"},
	}
}
