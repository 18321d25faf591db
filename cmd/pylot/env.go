// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pylot-dev/pylot/internal/venv"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show which virtual environment would be activated",
	Long: `Probe the configured candidate paths in order and report the environment
that would be activated, without installing or launching anything.`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func runEnv(cmd *cobra.Command, _ []string) error {
	root := chdir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}
		root = cwd
	}

	candidates := make([]venv.Candidate, 0, len(cfg.Candidates))
	for _, c := range cfg.Candidates {
		candidates = append(candidates, venv.Candidate(c))
	}

	outcome := venv.Locate(root, candidates, runtime.GOOS)
	if !outcome.Found() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s no virtual environment found (probed: %v)\n",
			WarningStyle.Render("∅"), cfg.Candidates)
		return nil
	}

	env, err := venv.Activate(outcome, os.Environ(), runtime.GOOS)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n",
			WarningStyle.Render("!"), PathStyle.Render(outcome.Descriptor().Root), err)
		return nil
	}

	desc := outcome.Descriptor()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", SuccessStyle.Render("✓"), PathStyle.Render(desc.Root))
	fmt.Fprintf(out, "  python:   %s\n", desc.Python)
	fmt.Fprintf(out, "  activate: %s\n", desc.ActivateScript)
	fmt.Fprintf(out, "  PATH:     %s\n", env.Path())
	return nil
}
