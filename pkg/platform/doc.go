// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes OS-specific knowledge: GOOS name constants,
// the on-disk layout of Python virtual environments per platform, and the
// names of the environment variables that activation manipulates.
package platform
