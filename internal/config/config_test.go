// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	cfg, path, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("LoadWithPath() returned error: %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty when only defaults apply", path)
	}
	if cfg.Entrypoint != "app.py" {
		t.Errorf("Entrypoint = %q, want default %q", cfg.Entrypoint, "app.py")
	}
	if len(cfg.Candidates) != 2 || cfg.Candidates[0] != ".venv" {
		t.Errorf("Candidates = %v, want defaults", cfg.Candidates)
	}
	if !cfg.Install.ContinueOnFailure {
		t.Error("Install.ContinueOnFailure = false, want the default true")
	}
}

func TestLoadFromGlobalFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeConfigFile(t, dir, `
entrypoint: "server.py"
interpreter: "python3.12"
candidates: [".env310", ".venv"]
manifest: "requirements/prod.txt"
install: {
	continue_on_failure: false
	command: "uv pip sync requirements/prod.txt"
}
hooks: {
	pre_launch: "echo launching"
}
ui: {
	color_scheme: "dark"
	verbose: true
}
`)

	cfg, path, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("LoadWithPath() returned error: %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if cfg.Entrypoint != "server.py" {
		t.Errorf("Entrypoint = %q, want %q", cfg.Entrypoint, "server.py")
	}
	if cfg.Interpreter != "python3.12" {
		t.Errorf("Interpreter = %q, want %q", cfg.Interpreter, "python3.12")
	}
	if len(cfg.Candidates) != 2 || cfg.Candidates[0] != ".env310" {
		t.Errorf("Candidates = %v, want the configured probe order", cfg.Candidates)
	}
	if cfg.Install.ContinueOnFailure {
		t.Error("Install.ContinueOnFailure = true, want the configured false")
	}
	if cfg.Install.Command == "" {
		t.Error("Install.Command is empty, want the configured override")
	}
	if cfg.Hooks.PreLaunch != "echo launching" {
		t.Errorf("Hooks.PreLaunch = %q, want the configured snippet", cfg.Hooks.PreLaunch)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark || !cfg.UI.Verbose {
		t.Errorf("UI = %+v, want dark and verbose", cfg.UI)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, `entrypoint: "main.py"`)

	cfg, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("LoadWithPath() returned error: %v", err)
	}
	if cfg.Entrypoint != "main.py" {
		t.Errorf("Entrypoint = %q, want %q", cfg.Entrypoint, "main.py")
	}
	if len(cfg.Candidates) != 2 || cfg.Candidates[0] != ".venv" {
		t.Errorf("Candidates = %v, want the defaults untouched", cfg.Candidates)
	}
	if !cfg.Install.ContinueOnFailure {
		t.Error("Install.ContinueOnFailure = false, want the default true")
	}
}

func TestLoadExplicitFile(t *testing.T) {
	t.Parallel()

	t.Run("existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.cue")
		if err := os.WriteFile(path, []byte(`entrypoint: "run.py"`), 0o644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg, resolved, err := LoadWithPath(context.Background(), LoadOptions{ConfigFilePath: path})
		if err != nil {
			t.Fatalf("LoadWithPath() returned error: %v", err)
		}
		if resolved != path {
			t.Errorf("resolved path = %q, want %q", resolved, path)
		}
		if cfg.Entrypoint != "run.py" {
			t.Errorf("Entrypoint = %q, want %q", cfg.Entrypoint, "run.py")
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.cue")
		if _, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigFilePath: path}); err == nil {
			t.Error("LoadWithPath() with a missing explicit file returned nil error")
		}
	})
}

func TestLoadRejectsBadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantIs  error
	}{
		{
			name:    "syntax error",
			content: `entrypoint: "unterminated`,
		},
		{
			name:    "schema violation",
			content: `ui: color_scheme: "neon"`,
		},
		{
			name:    "wrong type",
			content: `candidates: "not-a-list"`,
		},
		{
			name:    "blank candidate",
			content: `candidates: [".venv", ""]`,
			wantIs:  ErrInvalidCandidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfigFile(t, dir, tt.content)

			_, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("LoadWithPath() returned nil error for a bad config")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error does not wrap %v: %v", tt.wantIs, err)
			}
		})
	}
}

func TestLoadCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := LoadWithPath(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadWithPath() on a canceled context = %v, want context.Canceled", err)
	}
}

func TestProviderLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, `entrypoint: "worker.py"`)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Entrypoint != "worker.py" {
		t.Errorf("Entrypoint = %q, want %q", cfg.Entrypoint, "worker.py")
	}
}

func TestGenerateCUERoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Interpreter = "python3.11"
	cfg.Manifest = "requirements-dev.txt"
	cfg.Hooks.PreInstall = "echo preparing"
	cfg.UI.ColorScheme = ColorSchemeLight

	dir := t.TempDir()
	writeConfigFile(t, dir, GenerateCUE(cfg))

	loaded, _, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("LoadWithPath() of generated CUE returned error: %v", err)
	}
	if loaded.Interpreter != cfg.Interpreter {
		t.Errorf("Interpreter = %q, want %q", loaded.Interpreter, cfg.Interpreter)
	}
	if loaded.Entrypoint != cfg.Entrypoint {
		t.Errorf("Entrypoint = %q, want %q", loaded.Entrypoint, cfg.Entrypoint)
	}
	if loaded.Manifest != cfg.Manifest {
		t.Errorf("Manifest = %q, want %q", loaded.Manifest, cfg.Manifest)
	}
	if loaded.Hooks.PreInstall != cfg.Hooks.PreInstall {
		t.Errorf("Hooks.PreInstall = %q, want %q", loaded.Hooks.PreInstall, cfg.Hooks.PreInstall)
	}
	if loaded.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("UI.ColorScheme = %q, want %q", loaded.UI.ColorScheme, ColorSchemeLight)
	}
}

func TestGenerateCUEContent(t *testing.T) {
	t.Parallel()

	out := GenerateCUE(DefaultConfig())

	for _, want := range []string{
		`entrypoint: "app.py"`,
		`".venv"`,
		`"venv"`,
		"continue_on_failure: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateCUE() output missing %q:\n%s", want, out)
		}
	}
}
