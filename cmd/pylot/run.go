// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pylot-dev/pylot/internal/issue"
	"github.com/pylot-dev/pylot/internal/launch"
	"github.com/pylot-dev/pylot/internal/manifest"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// strictInstall aborts before launch when dependency installation fails.
	strictInstall bool
	// skipInstall skips the dependency-installation step entirely.
	skipInstall bool
	// logFile tees application output to a file.
	logFile string
	// chdir changes the project root before the sequence starts.
	chdir string

	runCmd = &cobra.Command{
		Use:   "run [-- app args...]",
		Short: "Locate, activate, install, and launch",
		Long: `Run the full startup sequence: probe for a virtual environment, activate
the first match, install declared dependencies, and start the application.
Arguments after -- are passed to the application unchanged.

The application's exit code becomes pylot's exit code.`,
		Args: cobra.ArbitraryArgs,
		RunE: runLaunch,
	}
)

func init() {
	addRunFlags(runCmd)
}

// addRunFlags registers the launch flags. The root command doubles as `run`,
// so both commands share these definitions (and their backing variables).
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&strictInstall, "strict", false, "abort when dependency installation fails")
	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "skip the dependency-installation step")
	cmd.Flags().StringVar(&logFile, "log-file", "", "tee application output to a file")
	cmd.Flags().StringVarP(&chdir, "chdir", "C", "", "project root to launch from (default is the current directory)")
}

// runLaunch is the RunE handler for both the bare root command and `run`.
func runLaunch(cmd *cobra.Command, args []string) error {
	effective := *cfg
	if logFile != "" {
		effective.LogFile = logFile
	}

	launcher := launch.NewLauncher(launch.Options{
		Config:      &effective,
		Root:        chdir,
		Args:        args,
		SkipInstall: skipInstall,
		Strict:      strictInstall,
		Logger:      newLogger(),
	})

	result := launcher.Launch(cmd.Context())

	if result.Error != nil {
		renderLaunchError(result.Error)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		code := result.ExitCode
		if code.IsSuccess() {
			code = 1
		}
		return &ExitError{Code: code, Err: result.Error}
	}

	if !result.ExitCode.IsSuccess() {
		if verbose {
			fmt.Fprintf(os.Stdout, "%s Application exited with code %s\n",
				WarningStyle.Render("!"), result.ExitCode)
		}
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: result.ExitCode}
	}

	return nil
}

// newLogger builds the diagnostics logger honoring the verbose flag.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pylot"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// renderLaunchError prints a styled help card for known failures, then the
// error itself.
func renderLaunchError(err error) {
	if id, ok := issueIDFor(err); ok {
		if rendered, renderErr := issue.Get(id).Render(issueStyle()); renderErr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

// issueIDFor maps launcher errors onto the issue catalog.
func issueIDFor(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, launch.ErrInterpreterNotFound):
		return issue.InterpreterNotFoundId, true
	case errors.Is(err, launch.ErrEntrypointNotFound):
		return issue.EntrypointNotFoundId, true
	case errors.Is(err, launch.ErrInstallFailed):
		return issue.InstallFailedId, true
	case errors.Is(err, manifest.ErrManifestNotFound):
		return issue.ManifestNotFoundId, true
	default:
		return 0, false
	}
}

// issueStyle selects the glamour style for issue cards from the configured
// color scheme.
func issueStyle() string {
	if cfg != nil && cfg.UI.ColorScheme == "light" {
		return "light"
	}
	return "dark"
}
