// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Hook name constants for diagnostics.
const (
	HookPreInstall = "pre_install"
	HookPreLaunch  = "pre_launch"
)

// RunHook executes a configured shell snippet in the embedded interpreter
// with the execution context's environment. No system shell is involved, so
// hooks behave the same across platforms. A non-zero exit or an interpreter
// error is returned as a *HookFailedError.
func RunHook(ctx *ExecutionContext, name, script string) error {
	if strings.TrimSpace(script) == "" {
		return nil
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return &HookFailedError{Hook: name, Cause: fmt.Errorf("syntax error: %w", err)}
	}

	runner, err := interp.New(
		interp.Dir(ctx.WorkDir),
		interp.Env(expand.ListEnviron(ctx.Env.Environ()...)),
		interp.StdIO(ctx.Stdin, ctx.Stdout, ctx.Stderr),
	)
	if err != nil {
		return &HookFailedError{Hook: name, Cause: fmt.Errorf("failed to create interpreter: %w", err)}
	}

	if err := runner.Run(ctx.Context, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &HookFailedError{Hook: name, Cause: fmt.Errorf("exit status %d", int(exitStatus))}
		}
		return &HookFailedError{Hook: name, Cause: err}
	}

	return nil
}

// runShellSnippet executes a shell snippet as a stage of its own (used for
// the install command override) and maps the shell's exit status onto a
// Result, mirroring how child processes are handled.
func runShellSnippet(ctx *ExecutionContext, name, script string) *Result {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to parse %s command: %w", name, err))
	}

	runner, err := interp.New(
		interp.Dir(ctx.WorkDir),
		interp.Env(expand.ListEnviron(ctx.Env.Environ()...)),
		interp.StdIO(ctx.Stdin, ctx.Stdout, ctx.Stderr),
	)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to create interpreter: %w", err))
	}

	if err := runner.Run(ctx.Context, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return NewExitCodeResult(ExitCode(exitStatus))
		}
		return NewErrorResult(1, fmt.Errorf("%s command failed: %w", name, err))
	}

	return NewSuccessResult()
}
