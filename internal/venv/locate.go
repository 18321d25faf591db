// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"os"
	"path/filepath"

	"github.com/pylot-dev/pylot/pkg/platform"
)

type (
	// Candidate is a directory to probe for a virtual environment, relative
	// to the project root (absolute paths are used as-is). Order is
	// significant: the first candidate with an activation descriptor wins
	// and no further probing happens.
	Candidate string

	// Descriptor describes a located virtual environment. It is created by
	// external tooling (python -m venv) and never mutated by pylot.
	Descriptor struct {
		// Root is the absolute path of the environment directory.
		Root string
		// ActivateScript is the activation descriptor whose existence marked
		// the candidate as an environment.
		ActivateScript string
		// BinDir is the executable directory to prepend to PATH.
		BinDir string
		// Python is the expected interpreter path inside the environment.
		Python string
	}

	// Outcome is the tagged result of locating an environment: either a
	// Descriptor was found, or nothing was. Fields are unexported so callers
	// must branch through Found() rather than rely on ambient state.
	Outcome struct {
		desc *Descriptor
	}
)

// DefaultCandidates returns the built-in probe order: the hidden project
// environment directory is checked before the visible one.
func DefaultCandidates() []Candidate {
	return []Candidate{".venv", "venv"}
}

// NotFound returns the Outcome representing "no environment located".
func NotFound() Outcome {
	return Outcome{}
}

// Found wraps a Descriptor in an Outcome. Intended for tests and for
// callers that already hold a descriptor.
func Found(desc *Descriptor) Outcome {
	return Outcome{desc: desc}
}

// Found reports whether an environment was located.
func (o Outcome) Found() bool {
	return o.desc != nil
}

// Descriptor returns the located descriptor, or nil when none was found.
func (o Outcome) Descriptor() *Descriptor {
	return o.desc
}

// Locate probes candidates under root in order and returns the first one
// that contains an activation descriptor for the given GOOS. A candidate
// without a descriptor is skipped silently; none matching yields NotFound.
// Locate has no side effects and never fails: absence is an expected outcome.
//
// The goos parameter keeps the function pure — production callers pass
// runtime.GOOS, tests pass a fixed value.
func Locate(root string, candidates []Candidate, goos string) Outcome {
	for _, c := range candidates {
		dir := string(c)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}

		script := platform.VenvActivateScript(dir, goos)
		if !fileExists(script) {
			continue
		}

		return Found(&Descriptor{
			Root:           dir,
			ActivateScript: script,
			BinDir:         platform.VenvBinDir(dir, goos),
			Python:         platform.VenvPython(dir, goos),
		})
	}

	return NotFound()
}

// fileExists checks if a path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
