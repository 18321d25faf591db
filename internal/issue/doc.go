// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines error types that carry remediation steps, plus a catalog of
// Markdown-formatted help cards for the failures a launcher user is most
// likely to hit (missing interpreter, missing entry point, failed install).
package issue
