// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/pylot-dev/pylot/internal/issue"
	"github.com/pylot-dev/pylot/internal/launch"
	"github.com/pylot-dev/pylot/internal/manifest"
	"github.com/pylot-dev/pylot/internal/venv"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install declared dependencies without launching",
	Long: `Run only the dependency-installation step: locate and activate the virtual
environment, then install the manifest's packages into it. Installation
failures are always fatal here — there is no application launch to fall
through to.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, _ []string) error {
	root := chdir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}
		root = cwd
	}

	logger := newLogger()

	candidates := make([]venv.Candidate, 0, len(cfg.Candidates))
	for _, c := range cfg.Candidates {
		candidates = append(candidates, venv.Candidate(c))
	}
	outcome := venv.Locate(root, candidates, runtime.GOOS)

	env, err := venv.Activate(outcome, os.Environ(), runtime.GOOS)
	switch {
	case err != nil:
		logger.Warn("virtual environment unusable, falling back to system environment", "error", err)
	case !outcome.Found():
		logger.Warn("no virtual environment found, continuing with the system environment")
	}

	execCtx := launch.NewExecutionContext(cmd.Context(), env, root)

	python, err := execCtx.ResolveInterpreter(cfg.Interpreter)
	if err != nil {
		renderLaunchError(err)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1, Err: err}
	}

	m, err := manifest.Resolve(root, cfg.Manifest)
	if err != nil {
		renderLaunchError(err)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1, Err: err}
	}
	if !m.Found() {
		if rendered, renderErr := issue.Get(issue.ManifestNotFoundId).Render(issueStyle()); renderErr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
		return errors.New("no dependency manifest found")
	}

	installer := &launch.Installer{Command: cfg.Install.Command}
	res := installer.Install(execCtx, python, m)
	if !res.Success() {
		if res.Error == nil {
			res.Error = &launch.InstallFailedError{ExitCode: res.ExitCode}
		}
		renderLaunchError(res.Error)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		code := res.ExitCode
		if code.IsSuccess() {
			code = 1
		}
		return &ExitError{Code: code, Err: res.Error}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s dependencies installed from %s\n",
		SuccessStyle.Render("✓"), PathStyle.Render(m.Path()))
	return nil
}
