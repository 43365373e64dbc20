// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/passgen/internal/db"
	"github.com/toeirei/passgen/internal/i18n"
)

// openHistory opens the configured history store.
func openHistory(ctx context.Context) (*db.Store, error) {
	if !appConfig.History.Enabled {
		return nil, db.ErrHistoryDisabled
	}
	st, err := db.Open(ctx, appConfig.History.Type, appConfig.History.Dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("cli.history.open_error"), err)
	}
	return st, nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the generation history",
		Long: `The generation history records when passwords were generated, their
length and the categories used. Passwords themselves are never stored.
Enable it with 'history.enabled: true' in the config file.`,
	}
	cmd.AddCommand(newHistoryListCmd(), newHistoryExportCmd(), newHistoryPruneCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent generations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			entries, err := st.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, i18n.T("cli.history.empty"))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintln(out, i18n.T("cli.history.entry",
					e.CreatedAt.Local().Format(time.RFC3339),
					e.Count, e.Length, e.TotalMinimum,
					strings.Join(e.Categories, ", ")))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries (0 lists all)")
	return cmd
}

func newHistoryExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the history as zstd-compressed JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			f, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
			if err != nil {
				return fmt.Errorf("could not create export file: %w", err)
			}
			n, err := st.Export(cmd.Context(), f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history.exported", n, args[0]))
			return nil
		},
	}
}

func newHistoryPruneCmd() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete history entries older than a duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}
			st, err := openHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			n, err := st.Prune(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history.pruned", n))
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Age of the entries to delete")
	return cmd
}
