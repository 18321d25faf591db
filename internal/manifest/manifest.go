// SPDX-License-Identifier: MPL-2.0

// Package manifest resolves the project's dependency declaration. The
// manifest contents stay opaque to pylot — they are handed to pip untouched.
// Only pyproject.toml gets a minimal structural check (a [project] table)
// so that unrelated TOML files are not mistaken for a manifest.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// KindRequirements is a pip requirements file (requirements.txt).
	KindRequirements Kind = "requirements"
	// KindPyproject is a PEP 621 project file (pyproject.toml).
	KindPyproject Kind = "pyproject"

	requirementsFileName = "requirements.txt"
	pyprojectFileName    = "pyproject.toml"
)

// ErrManifestNotFound is the sentinel error wrapped by NotFoundError.
var ErrManifestNotFound = errors.New("dependency manifest not found")

type (
	// Kind identifies the manifest format.
	Kind string

	// Manifest is the tagged result of manifest resolution. The zero value
	// means "no manifest" — a normal outcome, the install step just has
	// nothing to do.
	Manifest struct {
		kind Kind
		path string
	}

	// NotFoundError is returned when an explicitly configured manifest path
	// does not exist. Auto-discovery never produces it.
	NotFoundError struct {
		Path string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dependency manifest %s does not exist", e.Path)
}

// Unwrap returns ErrManifestNotFound so callers can use errors.Is for programmatic detection.
func (e *NotFoundError) Unwrap() error { return ErrManifestNotFound }

// None returns the Manifest representing "no dependency declaration".
func None() Manifest { return Manifest{} }

// Of creates a Manifest without probing the filesystem. Intended for tests.
func Of(kind Kind, path string) Manifest { return Manifest{kind: kind, path: path} }

// Found reports whether a manifest was resolved.
func (m Manifest) Found() bool { return m.path != "" }

// Kind returns the manifest format, or "" for None.
func (m Manifest) Kind() Kind { return m.kind }

// Path returns the manifest file path, or "" for None.
func (m Manifest) Path() string { return m.path }

// InstallArgs returns the interpreter arguments that install this manifest
// via pip (`<python> <args...>`). None yields nil.
func (m Manifest) InstallArgs() []string {
	switch m.kind {
	case KindRequirements:
		return []string{"-m", "pip", "install", "-r", m.path}
	case KindPyproject:
		return []string{"-m", "pip", "install", filepath.Dir(m.path)}
	default:
		return nil
	}
}

// Resolve finds the dependency manifest for a project. When explicit is set
// it is used as-is (relative to root) and must exist. Otherwise
// requirements.txt is probed first, then pyproject.toml; neither existing
// yields None with no error.
func Resolve(root, explicit string) (Manifest, error) {
	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if !fileExists(path) {
			return None(), &NotFoundError{Path: path}
		}
		return Manifest{kind: kindOf(path), path: path}, nil
	}

	if path := filepath.Join(root, requirementsFileName); fileExists(path) {
		return Manifest{kind: KindRequirements, path: path}, nil
	}

	if path := filepath.Join(root, pyprojectFileName); fileExists(path) {
		ok, err := hasProjectTable(path)
		if err != nil {
			return None(), fmt.Errorf("probe %s: %w", path, err)
		}
		if ok {
			return Manifest{kind: KindPyproject, path: path}, nil
		}
	}

	return None(), nil
}

// kindOf classifies an explicit manifest path by its file name; anything
// that is not a pyproject.toml is treated as a requirements file.
func kindOf(path string) Kind {
	if filepath.Base(path) == pyprojectFileName {
		return KindPyproject
	}
	return KindRequirements
}

// hasProjectTable reports whether a pyproject.toml declares a [project]
// table. The table contents are not interpreted.
func hasProjectTable(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("invalid TOML: %w", err)
	}

	_, ok := doc["project"]
	return ok, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
