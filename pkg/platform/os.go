// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Environment variable names manipulated during virtual environment activation.
const (
	// EnvVarVirtualEnv points at the root of the active virtual environment.
	EnvVarVirtualEnv = "VIRTUAL_ENV"
	// EnvVarPath is the executable search path.
	EnvVarPath = "PATH"
	// EnvVarPythonHome overrides the Python installation prefix. It must be
	// dropped on activation or the venv interpreter resolves the wrong stdlib.
	EnvVarPythonHome = "PYTHONHOME"
)
