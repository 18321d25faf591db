// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/pylot-dev/pylot/internal/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a project-local pylot.cue",
	Long: `Write a pylot.cue with the default configuration into the current
directory. The file is picked up automatically on the next launch; edit it
to pin an interpreter, entry point, or install policy for this project.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(config.LocalConfigFileName); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", config.LocalConfigFileName)
	}

	if err := os.WriteFile(config.LocalConfigFileName, []byte(config.GenerateCUE(config.DefaultConfig())), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.LocalConfigFileName, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		SuccessStyle.Render("✓"), PathStyle.Render(config.LocalConfigFileName))
	return nil
}
