// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scheme ColorScheme
		want   bool
	}{
		{name: "auto", scheme: ColorSchemeAuto, want: true},
		{name: "dark", scheme: ColorSchemeDark, want: true},
		{name: "light", scheme: ColorSchemeLight, want: true},
		{name: "empty", scheme: "", want: false},
		{name: "unknown", scheme: "neon", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, errs := tt.scheme.IsValid()
			if got != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, got, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidColorScheme) {
				t.Errorf("validation error does not wrap ErrInvalidColorScheme: %v", errs[0])
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Entrypoint != "app.py" {
		t.Errorf("Entrypoint = %q, want %q", cfg.Entrypoint, "app.py")
	}
	if len(cfg.Candidates) != 2 || cfg.Candidates[0] != ".venv" || cfg.Candidates[1] != "venv" {
		t.Errorf("Candidates = %v, want hidden directory probed first", cfg.Candidates)
	}
	if !cfg.Install.ContinueOnFailure {
		t.Error("Install.ContinueOnFailure = false, want true by default")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}

	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("DefaultConfig().IsValid() = false: %v", errs)
	}
}

func TestConfigIsValid(t *testing.T) {
	t.Parallel()

	t.Run("blank candidate", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Candidates = []string{".venv", "   "}

		valid, errs := cfg.IsValid()
		if valid {
			t.Fatal("IsValid() = true with a blank candidate")
		}
		if !errors.Is(errs[0], ErrInvalidConfig) {
			t.Errorf("error does not wrap ErrInvalidConfig: %v", errs[0])
		}

		var invalid *InvalidConfigError
		if !errors.As(errs[0], &invalid) {
			t.Fatalf("error is not a *InvalidConfigError: %v", errs[0])
		}
		if len(invalid.FieldErrors) != 1 || !errors.Is(invalid.FieldErrors[0], ErrInvalidCandidate) {
			t.Errorf("FieldErrors = %v, want a single ErrInvalidCandidate", invalid.FieldErrors)
		}

		var candErr *InvalidCandidateError
		if !errors.As(invalid.FieldErrors[0], &candErr) {
			t.Fatalf("field error is not a *InvalidCandidateError: %v", invalid.FieldErrors[0])
		}
		if candErr.Index != 1 {
			t.Errorf("InvalidCandidateError.Index = %d, want 1", candErr.Index)
		}
	})

	t.Run("invalid color scheme", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.UI.ColorScheme = "neon"

		valid, errs := cfg.IsValid()
		if valid {
			t.Fatal("IsValid() = true with an unknown color scheme")
		}

		var invalid *InvalidConfigError
		if !errors.As(errs[0], &invalid) {
			t.Fatalf("error is not a *InvalidConfigError: %v", errs[0])
		}
		if !errors.Is(invalid.FieldErrors[0], ErrInvalidColorScheme) {
			t.Errorf("field error does not wrap ErrInvalidColorScheme: %v", invalid.FieldErrors[0])
		}
	})

	t.Run("field errors aggregate", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Candidates = []string{"", ""}
		cfg.UI.ColorScheme = "neon"

		var invalid *InvalidConfigError
		_, errs := cfg.IsValid()
		if !errors.As(errs[0], &invalid) {
			t.Fatalf("error is not a *InvalidConfigError: %v", errs[0])
		}
		if len(invalid.FieldErrors) != 3 {
			t.Errorf("FieldErrors has %d entries, want 3: %v", len(invalid.FieldErrors), invalid.FieldErrors)
		}
	})
}
