//go:build windows

// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"io"
	"os/exec"
)

// runWithTee copies the child's output to both the context's stdout and the
// log writer. Windows has no pty support here, so the child sees a pipe.
func runWithTee(ctx *ExecutionContext, cmd *exec.Cmd, logw io.Writer) *Result {
	cmd.Stdout = io.MultiWriter(ctx.Stdout, logw)
	cmd.Stderr = io.MultiWriter(ctx.Stderr, logw)
	cmd.Stdin = ctx.Stdin

	return waitResult(cmd.Run())
}
