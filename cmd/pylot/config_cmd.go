// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pylot-dev/pylot/internal/config"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage pylot configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := config.LoadOptions{}
			if cfgFile != "" {
				opts.ConfigFilePath = cfgFile
			}
			effective, path, err := config.LoadWithPath(context.Background(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, SubtitleStyle.Render("// no config file found, showing defaults"))
			} else {
				fmt.Fprintln(out, SubtitleStyle.Render("// loaded from "+path))
			}
			fmt.Fprint(out, config.GenerateCUE(effective))
			return nil
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s config at %s\n",
				SuccessStyle.Render("✓"),
				PathStyle.Render(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)))
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
