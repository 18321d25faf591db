// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/pylot/config.cue (or XDG equivalent
// on Linux, ~/Library/Application Support/pylot/config.cue on macOS,
// %APPDATA%\pylot\config.cue on Windows), with a project-local pylot.cue in
// the current directory taking effect when no global file exists. Every
// option has a default that reproduces the zero-configuration behavior:
// probe .venv then venv, install requirements.txt, launch app.py.
//
// Configuration is validated against a CUE schema (config_schema.cue) so
// invalid files fail with clear, path-qualified error messages.
package config
