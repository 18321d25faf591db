// SPDX-License-Identifier: MPL-2.0

// Package venv locates and activates Python virtual environments.
//
// Locating probes an ordered list of candidate directories for an activation
// descriptor and yields a tagged Outcome (found or not found — absence is a
// normal result, never an error). Activating turns an Outcome into an
// immutable ExecEnv value that carries the adjusted PATH, VIRTUAL_ENV, and
// PYTHONHOME for child processes; the ambient process environment is never
// mutated.
package venv
