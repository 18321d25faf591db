// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
)

var (
	// ErrInterpreterNotFound is the sentinel error wrapped by InterpreterNotFoundError.
	ErrInterpreterNotFound = errors.New("python interpreter not found")
	// ErrEntrypointNotFound is the sentinel error wrapped by EntrypointNotFoundError.
	ErrEntrypointNotFound = errors.New("entry point not found")
	// ErrInstallFailed is the sentinel error wrapped by InstallFailedError.
	ErrInstallFailed = errors.New("dependency installation failed")
	// ErrHookFailed is the sentinel error wrapped by HookFailedError.
	ErrHookFailed = errors.New("hook failed")
)

type (
	// InterpreterNotFoundError is returned when no Python interpreter can be
	// resolved, neither from a virtual environment nor from PATH.
	InterpreterNotFoundError struct {
		// Name is the configured interpreter override, or "" for auto resolution.
		Name  string
		Cause error
	}

	// EntrypointNotFoundError is returned when the application entry file
	// does not exist. Launching is impossible; this is always fatal.
	EntrypointNotFoundError struct {
		Path string
	}

	// InstallFailedError is returned in strict mode when the dependency
	// installation step exits non-zero.
	InstallFailedError struct {
		ExitCode ExitCode
	}

	// HookFailedError is returned when a configured hook snippet fails.
	HookFailedError struct {
		Hook  string
		Cause error
	}
)

// Error implements the error interface.
func (e *InterpreterNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("python interpreter %q not found: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("no python interpreter found: %v", e.Cause)
}

// Unwrap returns ErrInterpreterNotFound so callers can use errors.Is for programmatic detection.
func (e *InterpreterNotFoundError) Unwrap() error { return ErrInterpreterNotFound }

// Error implements the error interface.
func (e *EntrypointNotFoundError) Error() string {
	return fmt.Sprintf("application entry point %s does not exist", e.Path)
}

// Unwrap returns ErrEntrypointNotFound so callers can use errors.Is for programmatic detection.
func (e *EntrypointNotFoundError) Unwrap() error { return ErrEntrypointNotFound }

// Error implements the error interface.
func (e *InstallFailedError) Error() string {
	return fmt.Sprintf("dependency installation failed with exit code %s", e.ExitCode)
}

// Unwrap returns ErrInstallFailed so callers can use errors.Is for programmatic detection.
func (e *InstallFailedError) Unwrap() error { return ErrInstallFailed }

// Error implements the error interface.
func (e *HookFailedError) Error() string {
	return fmt.Sprintf("hook %s failed: %v", e.Hook, e.Cause)
}

// Unwrap returns ErrHookFailed so callers can use errors.Is for programmatic detection.
func (e *HookFailedError) Unwrap() error { return ErrHookFailed }
