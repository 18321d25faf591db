// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"fmt"
	"os/exec"

	"github.com/pylot-dev/pylot/internal/manifest"
)

// Installer runs the dependency-installation step synchronously inside the
// execution environment. Its output passes through to the parent's streams
// unmodified.
type Installer struct {
	// Command overrides the pip invocation with a shell snippet, run by the
	// embedded interpreter in the same environment.
	Command string
}

// Install installs the manifest's dependencies using `<python> -m pip`.
// A None manifest is a no-op success: there is nothing to install. The
// caller decides what a failed Result means (warn-and-continue vs abort).
func (i *Installer) Install(ctx *ExecutionContext, python string, m manifest.Manifest) *Result {
	if i.Command != "" {
		return runShellSnippet(ctx, "install", i.Command)
	}

	if !m.Found() {
		return NewSuccessResult()
	}

	cmd := exec.CommandContext(ctx.Context, python, m.InstallArgs()...)
	cmd.Dir = ctx.WorkDir
	cmd.Env = ctx.Env.Environ()
	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr
	cmd.Stdin = ctx.Stdin

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(1, fmt.Errorf("failed to run pip: %w", err))
	}

	return NewSuccessResult()
}
