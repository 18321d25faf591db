// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pylot-dev/pylot/internal/config"
	"github.com/pylot-dev/pylot/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the effective configuration, loaded by initRootConfig.
	cfg *config.Config

	// rootCmd represents the base command. Invoked without a subcommand it
	// runs the full launch sequence, so a bare `pylot` in a project
	// directory is all that's needed.
	rootCmd = &cobra.Command{
		Use:   "pylot [-- app args...]",
		Short: "A one-shot launcher for Python applications",
		Long: TitleStyle.Render("pylot") + SubtitleStyle.Render(" - a one-shot launcher for Python applications") + `

pylot performs a single linear startup sequence: it probes for a virtual
environment (.venv before venv), activates the first one it finds, installs
the dependencies declared in requirements.txt or pyproject.toml, and starts
your application, passing its exit code through as pylot's own.

No flags are required — behavior is driven by the files in your project
directory, optionally refined by a pylot.cue config file.

` + SubtitleStyle.Render("Examples:") + `
  pylot                     Launch the app in the current directory
  pylot run --strict        Abort if dependency installation fails
  pylot env                 Show which environment would be activated
  pylot config init         Scaffold a default config file`,
		Args: cobra.ArbitraryArgs,
		RunE: runLaunch,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pylot/config.cue)")

	// The root command doubles as `run`, so it shares run's flags.
	addRunFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and maps ExitError onto the process exit
// status, so the launched application's exit code passes through unchanged.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and applies it to global state.
func initRootConfig() {
	opts := config.LoadOptions{}
	if cfgFile != "" {
		opts.ConfigFilePath = cfgFile
	}

	loaded, _, err := config.LoadWithPath(context.Background(), opts)
	if err != nil {
		// Surface config loading problems but continue with defaults: a
		// broken config file should not make the launcher unusable.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded == nil {
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
