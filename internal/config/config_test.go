// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/passgen/internal/config"
	"github.com/toeirei/passgen/internal/predicate"
	"github.com/toeirei/passgen/internal/testutil"
	"github.com/toeirei/passgen/internal/ucd"
)

// isolate points the user config dir at a temp dir and resets viper.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := testutil.IsolateConfig(t)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return tmp
}

func writeUserConfig(t *testing.T, dir, body string) {
	t.Helper()
	cfgDir := filepath.Join(dir, "passgen")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "passgen.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	isolate(t)
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := cfg.Default()
	if got.Length != want.Length || got.Language != want.Language || got.Print != want.Print ||
		got.Copy != want.Copy || got.RequireEveryCategory != want.RequireEveryCategory {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got.History.Enabled || got.History.Type != "sqlite" || got.History.Dsn == "" {
		t.Fatalf("history defaults = %+v", got.History)
	}
	if got.Log.Level != "warn" {
		t.Fatalf("log level = %q", got.Log.Level)
	}
}

func TestLoadConfig_UserFile(t *testing.T) {
	dir := isolate(t)
	writeUserConfig(t, dir, `length: 24
require_every_category: false
categories:
  - name: ASCII Space
    enabled: false
  - name: ASCII Digits
    minimum: 4
custom:
  - name: Hex
    enabled: true
    minimum: 2
    match:
      all:
        - block: [Basic Latin]
        - ordinals: ["U+0041", "U+0042", "c"]
history:
  enabled: true
  type: postgres
  dsn: postgres://user@localhost/passgen
`)
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Length != 24 || got.RequireEveryCategory {
		t.Fatalf("got length=%d require=%v", got.Length, got.RequireEveryCategory)
	}
	if len(got.Categories) != 2 {
		t.Fatalf("overrides = %+v", got.Categories)
	}
	space := got.Categories[0]
	if space.Name != "ASCII Space" || space.Enabled == nil || *space.Enabled || space.Minimum != nil {
		t.Fatalf("space override = %+v", space)
	}
	digits := got.Categories[1]
	if digits.Enabled != nil || digits.Minimum == nil || *digits.Minimum != 4 {
		t.Fatalf("digits override = %+v", digits)
	}
	if len(got.Custom) != 1 || got.Custom[0].Name != "Hex" || got.Custom[0].Minimum != 2 {
		t.Fatalf("custom = %+v", got.Custom)
	}
	p, err := got.Custom[0].Match.Compile(ucd.Default().HasBlock)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.Kind() != predicate.KindAnd {
		t.Fatalf("compiled %s", p)
	}
	if !got.History.Enabled || got.History.Type != "postgres" {
		t.Fatalf("history = %+v", got.History)
	}
	// untouched keys keep their defaults
	if got.Language != "en" || !got.Print {
		t.Fatalf("defaults lost: %+v", got)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeUserConfig(t, dir, "length: 24\nlanguage: de\n")
	t.Setenv("PASSGEN_LENGTH", "40")
	t.Setenv("PASSGEN_HISTORY_ENABLED", "true")
	t.Setenv("PASSGEN_LOG_LEVEL", "debug")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Length != 40 {
		t.Fatalf("length = %d, want 40 from env", got.Length)
	}
	if got.Language != "de" {
		t.Fatalf("language = %q, want de from file", got.Language)
	}
	if !got.History.Enabled || got.Log.Level != "debug" {
		t.Fatalf("nested env keys not applied: %+v %+v", got.History, got.Log)
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PASSGEN_LENGTH", "40")

	cmd := &cobra.Command{}
	cmd.Flags().Int("length", 0, "length")
	if err := cmd.Flags().Set("length", "12"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Length != 12 {
		t.Fatalf("length = %d, want 12 from flag", got.Length)
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("length: 9\ncopy: true\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Length != 9 || !got.Copy {
		t.Fatalf("got %+v", got)
	}

	missing := filepath.Join(tmp, "nope.yaml")
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &missing); err == nil {
		t.Fatalf("expected an error for a missing explicit file")
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)
	c := cfg.Default()
	c.Length = 33
	off := false
	c.Categories = []cfg.CategoryOverride{{Name: "ASCII Space", Enabled: &off}}
	c.Custom = []cfg.CustomCategory{{
		Name: "Vowels", Enabled: true, Minimum: 1,
		Match: predicate.Spec{Ordinals: []string{"a", "e", "i", "o", "u"}},
	}}

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	want, err := cfg.GetConfigPath(false)
	if err != nil || path != want {
		t.Fatalf("wrote %q, GetConfigPath = %q (%v)", path, want, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Length != 33 || len(got.Categories) != 1 || len(got.Custom) != 1 {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.Custom[0].Match.Ordinals[4] != "u" {
		t.Fatalf("custom match = %+v", got.Custom[0].Match)
	}
}
