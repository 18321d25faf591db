// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for CUE-based configuration files:
// size limits and user-facing error formatting with JSON-path locations.
package cueutil
