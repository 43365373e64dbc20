// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/passgen/internal/i18n"
)

func newCategoriesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "categories [name]",
		Short: "List categories or the code points of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := buildSession(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, c := range s.Categories() {
					fmt.Fprintln(out, c.Label)
				}
				fmt.Fprintln(out, i18n.T("cli.categories.summary", s.Length(), s.TotalMinimum()))
				return nil
			}

			idx, err := s.Lookup(args[0])
			if err != nil {
				return err
			}
			info, err := s.Category(idx)
			if err != nil {
				return err
			}
			syms, err := s.Symbols(idx)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, info.Label)
			fmt.Fprintln(out, i18n.T("cli.categories.match", info.Match))
			shown := syms
			if limit > 0 && len(shown) > limit {
				shown = shown[:limit]
			}
			for _, sym := range shown {
				box := "[ ]"
				if sym.Enabled {
					box = "[x]"
				}
				fmt.Fprintf(out, "%s %s\n", box, sym.Label)
			}
			if rest := len(syms) - len(shown); rest > 0 {
				fmt.Fprintln(out, i18n.T("cli.categories.more", rest))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of code points to list (0 lists all)")
	return cmd
}
