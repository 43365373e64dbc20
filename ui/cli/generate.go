// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/passgen/internal/config"
	"github.com/toeirei/passgen/internal/core"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/logging"
	"github.com/toeirei/passgen/internal/random"
	"github.com/toeirei/passgen/internal/security"
	"github.com/toeirei/passgen/util/slicest"
)

// generateOptions holds the flags that select categories for one run.
// Length, copy and print are read through the config so files and the
// environment can set them too.
type generateOptions struct {
	count   int
	disable []string
	only    []string
	minimum []string
}

func registerGenerateFlags(fs *pflag.FlagSet, o *generateOptions) {
	fs.IntP("length", "l", config.DefaultLength, "Password length in characters")
	fs.Bool("copy", false, "Copy the password(s) to the clipboard")
	fs.Bool("print", true, "Print the password(s) to standard output")
	fs.IntVarP(&o.count, "count", "n", 1, "Number of passwords to generate")
	fs.StringArrayVar(&o.disable, "disable", nil, "Disable a category by name (repeatable)")
	fs.StringArrayVar(&o.only, "only", nil, "Enable only the named categories (repeatable)")
	fs.StringArrayVar(&o.minimum, "min", nil, "Set a category minimum as name=N (repeatable)")
}

func newGenerateCmd() *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Long: `Generates passwords from the enabled categories.

Examples:
  passgen generate -l 32
  passgen generate --only "ASCII Lowercase Letters" --only "ASCII Digits" -l 20
  passgen generate --min "ASCII Digits=4" -n 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, o)
		},
	}
	registerGenerateFlags(cmd.Flags(), o)
	return cmd
}

// applySelection applies --only, then --disable, then --min.
func applySelection(s *core.Session, o *generateOptions) error {
	if len(o.only) > 0 {
		indices, err := slicest.MapX(o.only, s.Lookup)
		if err != nil {
			return err
		}
		if err := s.SetOnly(indices); err != nil {
			return err
		}
	}
	for _, name := range o.disable {
		i, err := s.Lookup(name)
		if err != nil {
			return err
		}
		if err := s.SetCategoryEnabled(i, false); err != nil {
			return err
		}
	}
	for _, spec := range o.minimum {
		name, value, ok := strings.Cut(spec, "=")
		if !ok {
			return errors.New(i18n.T("cli.generate.min_format", spec))
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.New(i18n.T("cli.generate.min_format", spec))
		}
		i, err := s.Lookup(name)
		if err != nil {
			return err
		}
		if err := s.SetMinimum(i, n); err != nil {
			return err
		}
	}
	return nil
}

func runGenerate(cmd *cobra.Command, o *generateOptions) error {
	if o.count < 1 {
		o.count = 1
	}
	s, cleanup, err := buildSession(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := applySelection(s, o); err != nil {
		return err
	}

	passwords, err := s.GeneratePasswords(cmd.Context(), o.count)
	if errors.Is(err, random.ErrEntropy) {
		logging.Fatalf("%s: %v", i18n.T("cli.generate.entropy"), err)
		return err
	}
	if err != nil {
		return err
	}
	defer func() {
		for _, pw := range passwords {
			pw.Zero()
		}
	}()

	if !appConfig.Print && !appConfig.Copy {
		logging.Warnf("%s", i18n.T("cli.generate.no_output"))
	}

	out := cmd.OutOrStdout()
	if appConfig.Print {
		for _, pw := range passwords {
			if _, err := fmt.Fprintln(out, pw.Reveal()); err != nil {
				return err
			}
		}
	}
	if appConfig.Copy {
		if err := clipboardWrite(joinSecrets(passwords)); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cli.generate.copy_error"), err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.generate.copied", len(passwords)))
	}
	return nil
}

func joinSecrets(secrets []security.Secret) string {
	return strings.Join(slicest.Map(secrets, security.Secret.Reveal), "\n")
}
