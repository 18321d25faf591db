// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pylot-dev/pylot/internal/manifest"
)

// writeStubPython writes a shell script standing in for the interpreter. It
// records its arguments to <dir>/args.txt and exits with the given code.
func writeStubPython(t *testing.T, dir string, exitCode int) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub interpreter scripts require a POSIX shell")
	}

	path := filepath.Join(dir, "python3")
	script := "#!/bin/sh\necho \"$@\" > \"" + filepath.Join(dir, "args.txt") + "\"\nexit " + ExitCode(exitCode).String() + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write stub interpreter: %v", err)
	}
	return path
}

func TestInstallNoManifestIsNoop(t *testing.T) {
	t.Parallel()

	ctx, _, _ := testExecContext(t, t.TempDir(), nil)

	installer := &Installer{}
	res := installer.Install(ctx, "/nonexistent/python", manifest.None())
	if !res.Success() {
		t.Errorf("Install(None) = {%v %v}, want success without touching the interpreter",
			res.ExitCode, res.Error)
	}
}

func TestInstallRunsPip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	python := writeStubPython(t, dir, 0)
	ctx, _, _ := testExecContext(t, dir, []string{"PATH=" + dir})

	m := manifest.Of(manifest.KindRequirements, filepath.Join(dir, "requirements.txt"))

	installer := &Installer{}
	if res := installer.Install(ctx, python, m); !res.Success() {
		t.Fatalf("Install() = {%v %v}, want success", res.ExitCode, res.Error)
	}

	recorded, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	if err != nil {
		t.Fatalf("stub interpreter was not invoked: %v", err)
	}
	want := strings.Join(m.InstallArgs(), " ")
	if got := strings.TrimSpace(string(recorded)); got != want {
		t.Errorf("interpreter arguments = %q, want %q", got, want)
	}
}

func TestInstallPreservesExitCode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	python := writeStubPython(t, dir, 3)
	ctx, _, _ := testExecContext(t, dir, []string{"PATH=" + dir})

	m := manifest.Of(manifest.KindRequirements, filepath.Join(dir, "requirements.txt"))

	installer := &Installer{}
	res := installer.Install(ctx, python, m)
	if res.ExitCode != 3 {
		t.Errorf("Install().ExitCode = %v, want 3", res.ExitCode)
	}
	if res.Error != nil {
		t.Errorf("Install().Error = %v, want nil for a pip exit status", res.Error)
	}
}

func TestInstallMissingInterpreterIsAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, _, _ := testExecContext(t, dir, []string{"PATH=" + dir})

	m := manifest.Of(manifest.KindRequirements, filepath.Join(dir, "requirements.txt"))

	installer := &Installer{}
	res := installer.Install(ctx, filepath.Join(dir, "python3"), m)
	if res.Success() {
		t.Fatal("Install() with a missing interpreter reported success")
	}
	if res.Error == nil {
		t.Error("Install().Error = nil, want a start failure")
	}
}

func TestInstallCommandOverride(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ctx, stdout, _ := testExecContext(t, t.TempDir(), nil)

		installer := &Installer{Command: "echo custom install"}
		if res := installer.Install(ctx, "/nonexistent/python", manifest.None()); !res.Success() {
			t.Fatalf("Install() = {%v %v}, want success", res.ExitCode, res.Error)
		}
		if got := stdout.String(); got != "custom install\n" {
			t.Errorf("override stdout = %q, want %q", got, "custom install\n")
		}
	})

	t.Run("exit status is preserved", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := testExecContext(t, t.TempDir(), nil)

		installer := &Installer{Command: "exit 9"}
		res := installer.Install(ctx, "/nonexistent/python",
			manifest.Of(manifest.KindRequirements, "requirements.txt"))
		if res.ExitCode != 9 {
			t.Errorf("Install().ExitCode = %v, want 9", res.ExitCode)
		}
		if res.Error != nil {
			t.Errorf("Install().Error = %v, want nil for a command exit status", res.Error)
		}
	})

	t.Run("parse failure", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := testExecContext(t, t.TempDir(), nil)

		installer := &Installer{Command: "for do done ((("}
		res := installer.Install(ctx, "/nonexistent/python", manifest.None())
		if res.Success() {
			t.Fatal("Install() with an unparseable command reported success")
		}
		if res.Error == nil {
			t.Error("Install().Error = nil, want a parse error")
		}
	})
}
