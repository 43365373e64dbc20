// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/passgen/internal/config"
	"github.com/toeirei/passgen/internal/i18n"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var system, force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(i18n.T("cli.config.exists", path))
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			def := config.Default()
			if err := config.WriteConfigTo(&def, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config.written", path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// redactDSN hides the password of URL-style DSNs.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Print the effective settings and environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", compositeVersion())
			fmt.Fprintf(out, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			if p, err := config.GetConfigPath(false); err == nil {
				fmt.Fprintf(out, "user config: %s\n", p)
			}
			if p, err := config.GetConfigPath(true); err == nil {
				fmt.Fprintf(out, "system config: %s\n", p)
			}
			fmt.Fprintf(out, "locales: %v (active %s)\n", i18n.Locales(), i18n.GetLang())

			effective := appConfig
			effective.History.Dsn = redactDSN(effective.History.Dsn)
			data, err := yaml.Marshal(&effective)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "---")
			_, err = out.Write(data)
			return err
		},
	}
}
