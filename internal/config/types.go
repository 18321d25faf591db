// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidCandidate is the sentinel error wrapped by InvalidCandidateError.
	ErrInvalidCandidate = errors.New("invalid candidate path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the terminal color scheme for styled output.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidCandidateError is returned when a configured candidate path is
	// empty or whitespace-only.
	InvalidCandidateError struct {
		Index int
	}

	// InvalidConfigError aggregates field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// InstallConfig controls the dependency-installation step.
	InstallConfig struct {
		// ContinueOnFailure keeps going to launch when pip fails. Defaults to
		// true so an unreachable package index does not block local runs; set
		// false (or pass --strict) to abort before launch instead.
		ContinueOnFailure bool `mapstructure:"continue_on_failure"`
		// Command overrides the whole install invocation with a shell
		// snippet, run in the activated environment.
		Command string `mapstructure:"command"`
	}

	// HooksConfig holds optional shell snippets run in the embedded
	// interpreter at fixed points of the startup sequence.
	HooksConfig struct {
		// PreInstall runs after activation, before dependency installation.
		PreInstall string `mapstructure:"pre_install"`
		// PreLaunch runs after installation, before the application starts.
		PreLaunch string `mapstructure:"pre_launch"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// Config is the root configuration.
	Config struct {
		// Interpreter overrides interpreter resolution (a path or a name
		// looked up on the execution environment's PATH). Empty means auto:
		// the venv interpreter when activated, python3/python.exe otherwise.
		Interpreter string `mapstructure:"interpreter"`
		// Entrypoint is the application entry file handed to the interpreter.
		Entrypoint string `mapstructure:"entrypoint"`
		// WorkDir is the project root the whole sequence runs in. Empty
		// means the current directory.
		WorkDir string `mapstructure:"workdir"`
		// Candidates is the ordered list of environment directories to
		// probe; the first with an activation descriptor wins.
		Candidates []string `mapstructure:"candidates"`
		// Manifest pins the dependency manifest path. Empty means auto
		// (requirements.txt, then pyproject.toml).
		Manifest string `mapstructure:"manifest"`
		// LogFile tees the application's output to a file.
		LogFile string `mapstructure:"log_file"`

		Install InstallConfig `mapstructure:"install"`
		Hooks   HooksConfig   `mapstructure:"hooks"`
		UI      UIConfig      `mapstructure:"ui"`
	}
)

// DefaultConfig returns the configuration that applies with no config file
// present.
func DefaultConfig() *Config {
	return &Config{
		Entrypoint: "app.py",
		Candidates: []string{".venv", "venv"},
		Install:    InstallConfig{ContinueOnFailure: true},
		UI:         UIConfig{ColorScheme: ColorSchemeAuto},
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: %s, %s, %s)",
		e.Value, ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is for programmatic detection.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidCandidateError) Error() string {
	return fmt.Sprintf("candidates[%d]: path must not be empty", e.Index)
}

// Unwrap returns ErrInvalidCandidate so callers can use errors.Is for programmatic detection.
func (e *InvalidCandidateError) Unwrap() error { return ErrInvalidCandidate }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid returns whether the ColorScheme is one of the defined schemes,
// and a list of validation errors if it is not.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: s}}
	}
}

// IsValid returns whether the Config passes the validation rules the CUE
// schema cannot express, and the field errors if it does not.
func (c *Config) IsValid() (bool, []error) {
	var fieldErrs []error

	for i, cand := range c.Candidates {
		if strings.TrimSpace(cand) == "" {
			fieldErrs = append(fieldErrs, &InvalidCandidateError{Index: i})
		}
	}

	if valid, errs := c.UI.ColorScheme.IsValid(); !valid {
		fieldErrs = append(fieldErrs, errs...)
	}

	if len(fieldErrs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: fieldErrs}}
	}
	return true, nil
}
