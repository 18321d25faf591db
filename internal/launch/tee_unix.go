//go:build !windows

// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// runWithTee starts the command under a pseudo-terminal and copies its
// combined output to both the context's stdout and the log writer. The pty
// keeps the child line-buffered and color-capable as if it were attached to
// the terminal directly.
func runWithTee(ctx *ExecutionContext, cmd *exec.Cmd, logw io.Writer) *Result {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("failed to start application: %w", err))
	}
	defer ptmx.Close()

	// Forward parent stdin to the child's terminal. The goroutine exits when
	// the pty closes after the child terminates.
	go func() {
		_, _ = io.Copy(ptmx, ctx.Stdin)
	}()

	// Drain until the child closes its side. A pty read error after the
	// child exits (EIO on Linux) is the normal end-of-stream signal.
	_, _ = io.Copy(io.MultiWriter(ctx.Stdout, logw), ptmx)

	return waitResult(cmd.Wait())
}
