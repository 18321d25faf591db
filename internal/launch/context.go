// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pylot-dev/pylot/internal/venv"
)

// ExecutionContext carries everything a stage needs to run a child process.
// It is built once per launch and threaded through the install and launch
// steps; nothing in it is process-global, so stages compose without side
// effects leaking to callers.
type ExecutionContext struct {
	// Context is the Go context for cancellation.
	Context context.Context
	// Env is the (possibly activated) execution environment.
	Env venv.ExecEnv
	// WorkDir is the project root all stages run in.
	WorkDir string
	// Stdout is where child standard output goes.
	Stdout io.Writer
	// Stderr is where child standard error goes.
	Stderr io.Writer
	// Stdin is where child standard input comes from.
	Stdin io.Reader
	// Verbose enables verbose diagnostics.
	Verbose bool
}

// NewExecutionContext creates an execution context with stdio connected to
// the parent's streams.
func NewExecutionContext(ctx context.Context, env venv.ExecEnv, workDir string) *ExecutionContext {
	return &ExecutionContext{
		Context: ctx,
		Env:     env,
		WorkDir: workDir,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}

// ResolveInterpreter resolves the Python interpreter for this context.
// An override may be an explicit path or a bare executable name looked up on
// the context's PATH; empty means auto (the venv interpreter when activated,
// the platform default name otherwise).
func (c *ExecutionContext) ResolveInterpreter(override string) (string, error) {
	if override == "" {
		python, err := c.Env.Python()
		if err != nil {
			return "", &InterpreterNotFoundError{Name: "", Cause: err}
		}
		return python, nil
	}

	if strings.ContainsAny(override, `/\`) {
		// Explicit path: verify it resolves.
		if _, err := c.Env.LookPath(override); err != nil {
			return "", &InterpreterNotFoundError{Name: override, Cause: err}
		}
		return override, nil
	}

	python, err := c.Env.LookPath(override)
	if err != nil {
		return "", &InterpreterNotFoundError{Name: override, Cause: err}
	}
	return python, nil
}
