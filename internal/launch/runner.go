// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner starts the target application as a child process and blocks until
// it terminates. Standard streams are inherited so the launcher is a
// transparent passthrough; the child's exit code becomes the Result's.
type Runner struct {
	// LogFile tees the application's output to this file when set. On POSIX
	// systems the child runs under a pseudo-terminal so it keeps behaving as
	// if attached to the terminal while being logged.
	LogFile string
}

// Run launches `<python> <entrypoint> [args...]` in the execution context.
// A missing entry point fails fast with a diagnostic instead of handing a
// nonexistent file to the interpreter.
func (r *Runner) Run(ctx *ExecutionContext, python, entrypoint string, args []string) *Result {
	if !filepath.IsAbs(entrypoint) {
		entrypoint = filepath.Join(ctx.WorkDir, entrypoint)
	}
	if info, err := os.Stat(entrypoint); err != nil || info.IsDir() {
		return NewErrorResult(1, &EntrypointNotFoundError{Path: entrypoint})
	}

	argv := append([]string{entrypoint}, args...)
	cmd := exec.CommandContext(ctx.Context, python, argv...)
	cmd.Dir = ctx.WorkDir
	cmd.Env = ctx.Env.Environ()

	if r.LogFile != "" {
		logFile, err := os.OpenFile(r.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return NewErrorResult(1, fmt.Errorf("failed to open log file: %w", err))
		}
		defer logFile.Close()
		return runWithTee(ctx, cmd, logFile)
	}

	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr
	cmd.Stdin = ctx.Stdin

	return waitResult(cmd.Run())
}

// waitResult maps a cmd.Run/Wait error onto a Result, preserving the child's
// exit code for normal non-zero termination.
func waitResult(err error) *Result {
	if err == nil {
		return NewSuccessResult()
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
	}
	return NewErrorResult(1, fmt.Errorf("failed to start application: %w", err))
}
