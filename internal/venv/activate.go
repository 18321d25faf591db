// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pylot-dev/pylot/pkg/platform"

	"golang.org/x/exp/slices"
)

// ErrCorruptEnv is the sentinel error wrapped by CorruptEnvError.
var ErrCorruptEnv = errors.New("corrupt virtual environment")

type (
	// ExecEnv is an immutable execution context for child processes. It is
	// built once from an Outcome plus a base environment and threaded through
	// the install and launch steps; the process-wide environment is never
	// touched.
	ExecEnv struct {
		environ   []string
		desc      *Descriptor
		activated bool
		goos      string
	}

	// CorruptEnvError is returned when an activation descriptor exists but
	// the environment behind it is missing its interpreter. It is a warning:
	// activation falls back to the ambient environment and proceeds.
	CorruptEnvError struct {
		Descriptor *Descriptor
		Missing    string
	}
)

// Error implements the error interface.
func (e *CorruptEnvError) Error() string {
	return fmt.Sprintf("virtual environment at %s is missing %s", e.Descriptor.Root, e.Missing)
}

// Unwrap returns ErrCorruptEnv so callers can use errors.Is for programmatic detection.
func (e *CorruptEnvError) Unwrap() error { return ErrCorruptEnv }

// Activate builds the ExecEnv for the given Outcome on top of base (usually
// os.Environ()). When the outcome is NotFound the returned ExecEnv mirrors
// base unchanged. When a descriptor is found, the returned environment has
// the venv bin dir prepended to PATH, VIRTUAL_ENV set to the venv root, and
// PYTHONHOME dropped.
//
// A descriptor that exists but has no interpreter behind it yields an
// ambient (non-activated) ExecEnv together with a *CorruptEnvError; callers
// surface it as a warning and proceed.
func Activate(outcome Outcome, base []string, goos string) (ExecEnv, error) {
	if !outcome.Found() {
		return ExecEnv{environ: slices.Clone(base), goos: goos}, nil
	}

	desc := outcome.Descriptor()
	if !fileExists(desc.Python) {
		return ExecEnv{environ: slices.Clone(base), goos: goos},
			&CorruptEnvError{Descriptor: desc, Missing: desc.Python}
	}

	environ := make([]string, 0, len(base)+2)
	for _, e := range base {
		name, _, ok := strings.Cut(e, "=")
		if !ok {
			environ = append(environ, e)
			continue
		}
		switch name {
		case platform.EnvVarPythonHome, platform.EnvVarVirtualEnv, platform.EnvVarPath:
			// Replaced or dropped below.
		default:
			environ = append(environ, e)
		}
	}

	environ = append(environ,
		platform.EnvVarVirtualEnv+"="+desc.Root,
		platform.EnvVarPath+"="+desc.BinDir+string(os.PathListSeparator)+lookupEnv(base, platform.EnvVarPath),
	)

	return ExecEnv{environ: environ, desc: desc, activated: true, goos: goos}, nil
}

// Activated reports whether a virtual environment backs this ExecEnv.
func (e ExecEnv) Activated() bool { return e.activated }

// Descriptor returns the activated environment's descriptor, or nil for an
// ambient ExecEnv.
func (e ExecEnv) Descriptor() *Descriptor { return e.desc }

// Environ returns a copy of the child-process environment.
func (e ExecEnv) Environ() []string { return slices.Clone(e.environ) }

// Path returns the PATH value of this ExecEnv.
func (e ExecEnv) Path() string { return lookupEnv(e.environ, platform.EnvVarPath) }

// Python resolves the interpreter this ExecEnv launches with: the venv
// interpreter when activated, otherwise the first interpreter found on the
// ExecEnv's own PATH.
func (e ExecEnv) Python() (string, error) {
	if e.activated {
		return e.desc.Python, nil
	}
	return e.LookPath(platform.PythonExecutableName(e.goos))
}

// LookPath resolves an executable name against the ExecEnv's PATH rather
// than the process environment.
func (e ExecEnv) LookPath(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) {
		if isExecutable(name, e.goos) {
			return name, nil
		}
		return "", fmt.Errorf("executable %q not found", name)
	}

	for _, dir := range filepath.SplitList(e.Path()) {
		if dir == "" {
			continue
		}
		full := filepath.Join(dir, name)
		if isExecutable(full, e.goos) {
			return full, nil
		}
	}

	return "", fmt.Errorf("executable %q not found in PATH", name)
}

func isExecutable(path, goos string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if goos == platform.Windows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// lookupEnv returns the value of name in environ, or "" when absent.
func lookupEnv(environ []string, name string) string {
	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok && k == name {
			return v
		}
	}
	return ""
}
