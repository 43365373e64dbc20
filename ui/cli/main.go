// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, configuration loading and the version
// helpers shared by every subcommand.

package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/passgen/buildvars"
	"github.com/toeirei/passgen/internal/catalog"
	"github.com/toeirei/passgen/internal/config"
	"github.com/toeirei/passgen/internal/core"
	"github.com/toeirei/passgen/internal/i18n"
	"github.com/toeirei/passgen/internal/logging"
	"github.com/toeirei/passgen/internal/tui"
	"golang.org/x/term"
)

const modulePath = "github.com/toeirei/passgen"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool

var appConfig config.Config

// Seams replaced in tests.
var (
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	}
	runTUI         = tui.Run
	clipboardWrite = clipboard.WriteAll
	// newCatalog returns nil to select the built-in catalog.
	newCatalog = func() *catalog.Catalog { return nil }
)

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Length == 0 {
		appConfig.Length = config.DefaultLength
	}
	if appConfig.Language == "" {
		appConfig.Language = "en"
	}

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	if verbose {
		logging.SetDebug(true)
	}

	i18n.Init(appConfig.Language)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// buildSession creates a session from the loaded settings. With record set
// and history enabled the session records generations and the returned
// cleanup closes the store.
func buildSession(ctx context.Context, record bool) (*core.Session, func(), error) {
	opts, err := core.OptionsFromConfig(appConfig)
	if err != nil {
		return nil, nil, err
	}
	opts.Catalog = newCatalog()

	cleanup := func() {}
	if record && appConfig.History.Enabled {
		st, err := openHistory(ctx)
		if err != nil {
			return nil, nil, err
		}
		opts.Recorder = st
		cleanup = func() {
			if err := st.Close(); err != nil {
				logging.Warnf("history: %v", err)
			}
		}
	}

	s, err := core.NewSession(opts)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return s, cleanup, nil
}

// saveLanguage persists a language picked in the terminal UI.
func saveLanguage(lang string) error {
	appConfig.Language = lang
	_, err := config.WriteConfigFile(&appConfig, false)
	return err
}

// Execute runs the CLI entrypoint.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. Every call
// returns a fresh tree so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	genOpts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Passgen generates passwords from the whole Unicode repertoire.",
		Long: `Passgen draws passwords from categories of Unicode characters.
Every enabled category contributes at least its minimum number of
characters, the rest of the length is filled from all enabled
characters and the result is shuffled.

Running without a subcommand on a terminal launches the interactive TUI.
Otherwise one password is printed, as with 'passgen generate'.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return runGenerate(cmd, genOpts)
			}
			s, cleanup, err := buildSession(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := applySelection(s, genOpts); err != nil {
				return err
			}
			return runTUI(s, tui.Options{Copy: clipboardWrite, SaveLanguage: saveLanguage})
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Output language ("en", "de")`)
	registerGenerateFlags(cmd.Flags(), genOpts)

	cmd.AddCommand(
		newGenerateCmd(),
		newCategoriesCmd(),
		newHistoryCmd(),
		newConfigCmd(),
		newDebugCmd(),
		newVersionCmd(),
	)
	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only list our module among the dependencies.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
		},
	}
}
