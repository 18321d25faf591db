// SPDX-License-Identifier: MPL-2.0

package platform

import "path/filepath"

// Virtual environment layout per platform. POSIX venvs place executables
// under bin/ with an activate script; Windows venvs use Scripts\ with
// activate.bat.
const (
	posixBinDir     = "bin"
	posixActivate   = "activate"
	posixPython     = "python"
	windowsBinDir   = "Scripts"
	windowsActivate = "activate.bat"
	windowsPython   = "python.exe"
)

// VenvBinDir returns the executable directory inside a venv root for the
// given GOOS.
func VenvBinDir(root, goos string) string {
	if goos == Windows {
		return filepath.Join(root, windowsBinDir)
	}
	return filepath.Join(root, posixBinDir)
}

// VenvActivateScript returns the path of the activation descriptor inside a
// venv root for the given GOOS. Its existence is what marks a candidate
// directory as a usable environment.
func VenvActivateScript(root, goos string) string {
	if goos == Windows {
		return filepath.Join(root, windowsBinDir, windowsActivate)
	}
	return filepath.Join(root, posixBinDir, posixActivate)
}

// VenvPython returns the interpreter path inside a venv root for the given GOOS.
func VenvPython(root, goos string) string {
	if goos == Windows {
		return filepath.Join(root, windowsBinDir, windowsPython)
	}
	return filepath.Join(root, posixBinDir, posixPython)
}

// PythonExecutableName returns the bare interpreter executable name used when
// resolving from PATH on the given GOOS.
func PythonExecutableName(goos string) string {
	if goos == Windows {
		return windowsPython
	}
	return "python3"
}
