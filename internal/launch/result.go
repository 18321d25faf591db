// SPDX-License-Identifier: MPL-2.0

package launch

// Result contains the outcome of a launch stage or of the whole sequence.
// The top-level Result's ExitCode becomes pylot's own termination status
// (pass-through invariant).
type Result struct {
	// ExitCode is the exit code of the child process (or of the failing stage).
	ExitCode ExitCode
	// Error contains any infrastructure error that occurred. A non-zero
	// ExitCode with a nil Error is normal process termination, not a failure
	// of the launcher itself.
	Error error
}

// Success returns true if the stage completed with exit code 0 and no error.
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Error == nil
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than launcher failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}
