// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pylot-dev/pylot/internal/issue"
	"github.com/pylot-dev/pylot/pkg/cueutil"
	"github.com/pylot-dev/pylot/pkg/platform"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "pylot"
	// ConfigFileName is the name of the global config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// LocalConfigFileName is the project-local config file probed in the
	// current directory when no global file exists.
	LocalConfigFileName = "pylot.cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the pylot configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. Callers that want caching can wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("interpreter", defaults.Interpreter)
	v.SetDefault("entrypoint", defaults.Entrypoint)
	v.SetDefault("workdir", defaults.WorkDir)
	v.SetDefault("candidates", defaults.Candidates)
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("install.continue_on_failure", defaults.Install.ContinueOnFailure)
	v.SetDefault("install.command", defaults.Install.Command)
	v.SetDefault("hooks.pre_install", defaults.Hooks.PreInstall)
	v.SetDefault("hooks.pre_launch", defaults.Hooks.PreLaunch)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	resolvedPath := ""

	// If a custom config file path is set via --config flag, use it exclusively.
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'pylot config show' to see the effective configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadCUEIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, "", wrapConfigParseError(err, opts.ConfigFilePath)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}

		cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		switch {
		case fileExists(cuePath):
			if err := loadCUEIntoViper(v, cuePath); err != nil {
				return nil, "", wrapConfigParseError(err, cuePath)
			}
			resolvedPath = cuePath
		case fileExists(LocalConfigFileName):
			// Project-local config in the current directory.
			if err := loadCUEIntoViper(v, LocalConfigFileName); err != nil {
				return nil, "", wrapConfigParseError(err, LocalConfigFileName)
			}
			resolvedPath = LocalConfigFileName
		}
		// No config file found: defaults apply, not an error.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate constraints that CUE cannot express (e.g., non-blank
	// candidate entries).
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Remove empty entries from the candidates list").
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// wrapConfigParseError attaches remediation context to a CUE parse failure.
func wrapConfigParseError(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("Run 'pylot config init' to regenerate a default config").
		Wrap(err).
		BuildError()
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Note: config decodes to map[string]any (not a struct) for Viper
// integration, and validates with Concrete(false) because all config fields
// are optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// CreateDefaultConfig creates a default global config file if it doesn't exist.
func CreateDefaultConfig() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(cfgPath); err == nil {
		return nil // File exists
	}

	return os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644)
}

// Save writes the configuration to the global config file.
func Save(cfg *Config) error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// pylot configuration file\n")
	sb.WriteString("// See https://github.com/pylot-dev/pylot for documentation.\n\n")

	if cfg.Interpreter != "" {
		sb.WriteString(fmt.Sprintf("interpreter: %q\n", cfg.Interpreter))
	}
	sb.WriteString(fmt.Sprintf("entrypoint: %q\n", cfg.Entrypoint))
	if cfg.WorkDir != "" {
		sb.WriteString(fmt.Sprintf("workdir: %q\n", cfg.WorkDir))
	}

	if len(cfg.Candidates) > 0 {
		sb.WriteString("\ncandidates: [\n")
		for _, cand := range cfg.Candidates {
			sb.WriteString(fmt.Sprintf("\t%q,\n", cand))
		}
		sb.WriteString("]\n")
	}

	if cfg.Manifest != "" {
		sb.WriteString(fmt.Sprintf("\nmanifest: %q\n", cfg.Manifest))
	}
	if cfg.LogFile != "" {
		sb.WriteString(fmt.Sprintf("log_file: %q\n", cfg.LogFile))
	}

	sb.WriteString("\ninstall: {\n")
	sb.WriteString(fmt.Sprintf("\tcontinue_on_failure: %v\n", cfg.Install.ContinueOnFailure))
	if cfg.Install.Command != "" {
		sb.WriteString(fmt.Sprintf("\tcommand: %q\n", cfg.Install.Command))
	}
	sb.WriteString("}\n")

	if cfg.Hooks.PreInstall != "" || cfg.Hooks.PreLaunch != "" {
		sb.WriteString("\nhooks: {\n")
		if cfg.Hooks.PreInstall != "" {
			sb.WriteString(fmt.Sprintf("\tpre_install: %q\n", cfg.Hooks.PreInstall))
		}
		if cfg.Hooks.PreLaunch != "" {
			sb.WriteString(fmt.Sprintf("\tpre_launch: %q\n", cfg.Hooks.PreLaunch))
		}
		sb.WriteString("}\n")
	}

	sb.WriteString("\nui: {\n")
	sb.WriteString(fmt.Sprintf("\tcolor_scheme: %q\n", cfg.UI.ColorScheme))
	sb.WriteString(fmt.Sprintf("\tverbose: %v\n", cfg.UI.Verbose))
	sb.WriteString("}\n")

	return sb.String()
}
